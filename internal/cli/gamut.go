package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/csscolour/internal/colour"
)

type gamutResult struct {
	Input   string     `json:"input"`
	Space   string     `json:"space"`
	InGamut bool       `json:"in_gamut"`
	Mapped  colourJSON `json:"mapped"`
}

func (a *app) newGamutCmd() *cobra.Command {
	var space colour.Space

	cmd := &cobra.Command{
		Use:   "gamut <colour>...",
		Short: "Check colours against an RGB gamut and map them into it",
		Long: `Check whether colours fit the gamut of an RGB space and show the gamut
mapped result. Mapping lowers chroma at constant lightness and hue until the
clipped colour is within a just noticeable difference (ΔE2000 below 2). It
works in OKLab for OKLab and OKLCh inputs and in CIE Lab for everything else.

Examples:
  csscolour gamut 'color(display-p3 0 1 0)'
  csscolour gamut 'oklch 0.7 0.3 150' 'lab 50 100 0' --space display-p3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGamut(cmd, args, space)
		},
	}

	cmd.Flags().VarP(newSpaceValue(colour.SpaceSRGB, &space), "space", "s", "gamut to check against")
	return cmd
}

func (a *app) runGamut(cmd *cobra.Command, args []string, space colour.Space) error {
	p := a.printer(cmd.OutOrStdout())
	table := NewTable("Colour", "In gamut", "Mapped")
	results := make([]gamutResult, 0, len(args))

	for _, arg := range args {
		v, err := ParseColour(arg, a.keywords)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}
		in, err := colour.IsInGamut(v, space)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		mapped, err := colour.MapToGamut(v, space)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}

		if p.json {
			cj, err := p.colourJSON(mapped)
			if err != nil {
				return err
			}
			results = append(results, gamutResult{Input: arg, Space: string(space), InGamut: in, Mapped: cj})
			continue
		}
		table.AddRow(arg, yesNo(in), p.css(mapped))
	}

	if p.json {
		return p.encode(results)
	}
	_, err := table.WriteTo(p.w)
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
