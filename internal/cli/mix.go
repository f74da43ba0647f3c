package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/csscolour/internal/colour"
)

type mixResult struct {
	Space  string     `json:"space"`
	Hue    string     `json:"hue"`
	Result colourJSON `json:"result"`
}

func (a *app) newMixCmd() *cobra.Command {
	var (
		space  colour.Space
		hue    colour.HueMethod
		p1, p2 float64
	)

	cmd := &cobra.Command{
		Use:   "mix <colour> <colour>",
		Short: "Mix two colours like CSS color-mix()",
		Long: `Mix two colours in an interpolation space, following CSS color-mix().

Percentages default to 50/50. Given one, the other is its complement. Given
both, they are scaled to sum to 100 and a sum below 100 makes the result
translucent. Polar spaces interpolate hue with --hue (shorter, longer,
increasing, decreasing).

The space and hue method default to the mix_space and hue settings.

Examples:
  csscolour mix red blue
  csscolour mix red blue --in oklch --hue longer
  csscolour mix '#fff' black --in srgb --p1 25`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			first, err := a.mixOperand(args[0], p1, flags.Changed("p1"))
			if err != nil {
				return err
			}
			second, err := a.mixOperand(args[1], p2, flags.Changed("p2"))
			if err != nil {
				return err
			}
			return a.runMix(cmd, first, second)
		},
	}

	cmd.Flags().Var(newSpaceValue(colour.SpaceOKLab, &space), "in", "interpolation space ("+spaceNames()+")")
	cmd.Flags().Var(newHueValue(colour.HueShorter, &hue), "hue", "hue interpolation method for polar spaces")
	cmd.Flags().Float64Var(&p1, "p1", 0, "percentage of the first colour")
	cmd.Flags().Float64Var(&p2, "p2", 0, "percentage of the second colour")
	return cmd
}

// mixOperand parses arg. Bare words go to the mixer's keyword table so that
// keyword errors are reported by the mixer.
func (a *app) mixOperand(arg string, pct float64, hasPct bool) (colour.MixOperand, error) {
	var op colour.MixOperand
	if isKeyword(arg) {
		op = colour.KeywordOperand(arg)
	} else {
		v, err := ParseColour(arg, nil)
		if err != nil {
			return op, fmt.Errorf("parse %q: %w", arg, err)
		}
		op = colour.Operand(v)
	}
	if hasPct {
		op = op.WithPercent(pct)
	}
	return op, nil
}

func isKeyword(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	}) < 0
}

func (a *app) runMix(cmd *cobra.Command, first, second colour.MixOperand) error {
	m, err := colour.NewMixer(a.settings.MixSpace, a.settings.Hue, colour.WithKeywords(a.keywords))
	if err != nil {
		return err
	}
	out, err := m.Mix(first, second)
	if err != nil {
		return err
	}

	p := a.printer(cmd.OutOrStdout())
	if p.json {
		cj, err := p.colourJSON(out)
		if err != nil {
			return err
		}
		return p.encode(mixResult{Space: string(m.Space()), Hue: m.HueMethod().String(), Result: cj})
	}
	return p.println(p.swatch(out) + p.css(out))
}
