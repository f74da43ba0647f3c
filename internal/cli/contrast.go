package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/csscolour/internal/colour"
	"github.com/jmylchreest/csscolour/internal/util"
)

// WCAG 2 contrast thresholds.
var contrastLevels = []struct {
	name  string
	ratio float64
}{
	{"AA large", 3},
	{"AA", 4.5},
	{"AAA large", 4.5},
	{"AAA", 7},
}

type contrastResult struct {
	Ratio  float64         `json:"ratio"`
	Levels map[string]bool `json:"levels"`
}

func (a *app) newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colours",
		Long: `Compute the WCAG 2 contrast ratio between two colours and the conformance
levels it meets. Colours are gamut mapped to sRGB first.

Examples:
  csscolour contrast black white
  csscolour contrast '#777' '#fff'`,
		Args: cobra.ExactArgs(2),
		RunE: a.runContrast,
	}
}

// labelledSwatch renders v as a block with label printed on it.
func labelledSwatch(v *colour.Value, label string) string {
	c, err := colour.ToRGB8(v)
	if err != nil {
		return label
	}
	return colour.PreviewWithText(c, label, 8)
}

func (a *app) runContrast(cmd *cobra.Command, args []string) error {
	fg, err := ParseColour(args[0], a.keywords)
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	bg, err := ParseColour(args[1], a.keywords)
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[1], err)
	}
	ratio, err := colour.ContrastRatio(fg, bg)
	if err != nil {
		return err
	}

	p := a.printer(cmd.OutOrStdout())
	if p.json {
		res := contrastResult{Ratio: util.Round(ratio, p.precision), Levels: make(map[string]bool)}
		for _, l := range contrastLevels {
			res.Levels[l.name] = ratio >= l.ratio
		}
		return p.encode(res)
	}

	if err := p.println(p.number(ratio) + ":1"); err != nil {
		return err
	}
	if p.preview {
		if err := p.println(labelledSwatch(fg, "fg"), labelledSwatch(bg, "bg")); err != nil {
			return err
		}
	}
	table := NewTable("Level", "Minimum", "Pass")
	for _, l := range contrastLevels {
		table.AddRow(l.name, p.number(l.ratio)+":1", yesNo(ratio >= l.ratio))
	}
	_, err = table.WriteTo(p.w)
	return err
}
