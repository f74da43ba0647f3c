package colour

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns a solid block of width cells in colour c.
func Preview(c RGB8, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a block of colour c with text centred on it. The
// text is black or white, whichever contrasts more.
func PreviewWithText(c RGB8, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := RGB8{R: 255, G: 255, B: 255, A: 255}
	lum := relativeLuminance(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	// Crossover where black and white give equal contrast.
	if lum > 0.179 {
		fg = RGB8{A: 255}
	}

	text = runewidth.Truncate(text, width, "")
	pad := width - runewidth.StringWidth(text)
	left := pad / 2
	text = strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)

	return background(c) + foreground(fg) + text + ansiReset
}

func background(c RGB8) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func foreground(c RGB8) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
