package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/csscolour/internal/colour"
	"github.com/jmylchreest/csscolour/internal/config"
	"github.com/jmylchreest/csscolour/internal/util"
)

// printer renders results in the configured format.
type printer struct {
	w         io.Writer
	precision int
	json      bool
	preview   bool
}

func newPrinter(w io.Writer, s config.Settings, getenv func(string) string) *printer {
	p := &printer{
		w:         w,
		precision: s.Precision,
		json:      s.Format == config.FormatJSON,
	}
	// Swatches would corrupt JSON.
	p.preview = !p.json && previewEnabled(s.Preview, w, getenv)
	return p
}

// previewEnabled decides whether to print ANSI swatches. In auto mode that
// needs a colour-capable terminal on w.
func previewEnabled(mode string, w io.Writer, getenv func(string) string) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) number(f float64) string {
	return util.FormatFloat(f, p.precision)
}

// css formats v in CSS notation with components rounded to the precision.
func (p *printer) css(v *colour.Value) string {
	r := v.Copy()
	for i, c := range r.Components() {
		if c.Kind == colour.KindNumber || c.Kind == colour.KindPercentage {
			c.Value = util.Round(c.Value, p.precision)
			_ = r.SetComponent(i, c)
		}
	}
	if a := r.Alpha(); a.Kind == colour.KindNumber || a.Kind == colour.KindPercentage {
		a.Value = util.Round(a.Value, p.precision)
		r.SetAlpha(a)
	}
	return r.String()
}

// swatch returns a preview block followed by a space, or "" when previews
// are off or v has no sRGB rendition.
func (p *printer) swatch(v *colour.Value) string {
	if !p.preview {
		return ""
	}
	c, err := colour.ToRGB8(v)
	if err != nil {
		return ""
	}
	return colour.Preview(c, 4) + " "
}

func (p *printer) println(parts ...string) error {
	_, err := fmt.Fprintln(p.w, strings.Join(parts, " "))
	return err
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colourJSON is the JSON form of a colour. None components are null.
type colourJSON struct {
	CSS        string     `json:"css"`
	Space      string     `json:"space"`
	Components []*float64 `json:"components"`
	Alpha      *float64   `json:"alpha"`
	Hex        string     `json:"hex,omitempty"`
}

func (p *printer) colourJSON(v *colour.Value) (colourJSON, error) {
	nums, err := v.Numbers()
	if err != nil {
		return colourJSON{}, err
	}
	out := colourJSON{
		CSS:        p.css(v),
		Space:      string(v.Space()),
		Components: make([]*float64, v.Len()),
	}
	for i := range v.Len() {
		if !v.Component(i).IsNone() {
			n := util.Round(nums[i], p.precision)
			out.Components[i] = &n
		}
	}
	if !v.Alpha().IsNone() {
		a := util.Round(nums[v.Len()], p.precision)
		out.Alpha = &a
	}
	if c, err := colour.ToRGB8(v); err == nil {
		out.Hex = c.Hex()
	}
	return out, nil
}
