package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/csscolour/internal/colour"
)

type convertResult struct {
	Input   string     `json:"input"`
	Output  colourJSON `json:"output"`
	InGamut bool       `json:"in_gamut"`
}

func (a *app) newConvertCmd() *cobra.Command {
	var (
		to    colour.Space
		clamp bool
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours to another colour space",
		Long: `Convert one or more colours to a target colour space.

Without --clamp the exact result is printed, even when it falls outside the
target gamut. With --clamp RGB, HSL and HWB results are gamut mapped, including
colours already written in the target space. Mapping lowers chroma at constant
lightness and hue, in OKLab for OKLab and OKLCh inputs and in CIE Lab otherwise.

Examples:
  csscolour convert '#ff8800' --to oklch
  csscolour convert 'color(display-p3 0 1 0)' --to srgb --clamp
  csscolour convert rebeccapurple 'lab 50 20 -30' --to hwb`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args, to, clamp)
		},
	}

	cmd.Flags().VarP(newSpaceValue(colour.SpaceSRGB, &to), "to", "t", "target colour space ("+spaceNames()+")")
	cmd.Flags().BoolVarP(&clamp, "clamp", "c", false, "gamut map into the target space")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string, to colour.Space, clamp bool) error {
	p := a.printer(cmd.OutOrStdout())
	results := make([]convertResult, 0, len(args))

	for _, arg := range args {
		v, err := ParseColour(arg, a.keywords)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}
		var out *colour.Value
		if clamp {
			out, err = colour.MapToGamut(v, to)
		} else {
			out, err = colour.ConvertValue(v, to, false)
		}
		if err != nil {
			return fmt.Errorf("convert %q: %w", arg, err)
		}
		inGamut, err := colour.IsInGamut(v, to)
		if err != nil {
			return fmt.Errorf("convert %q: %w", arg, err)
		}
		a.logger.Debug("converted", "input", arg, "from", v.Space(), "to", to, "clamp", clamp, "in_gamut", inGamut)

		if p.json {
			cj, err := p.colourJSON(out)
			if err != nil {
				return err
			}
			results = append(results, convertResult{Input: arg, Output: cj, InGamut: inGamut})
			continue
		}

		line := p.swatch(out) + p.css(out)
		if !inGamut && !clamp {
			line += " (out of gamut)"
		}
		if err := p.println(line); err != nil {
			return err
		}
	}

	if p.json {
		return p.encode(results)
	}
	return nil
}
