package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/csscolour/internal/colour"
	"github.com/jmylchreest/csscolour/internal/util"
)

// Colour difference methods.
const (
	methodCIEDE2000 = "2000"
	methodOK        = "ok"
)

type deltaEResult struct {
	Method string  `json:"method"`
	DeltaE float64 `json:"delta_e"`
}

func (a *app) newDeltaECmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:     "deltae <colour> <colour>",
		Aliases: []string{"diff"},
		Short:   "Measure the difference between two colours",
		Long: `Measure the perceptual difference between two colours.

Methods:
  2000  CIEDE2000 in CIE Lab (D50). A difference below about 2 is hard to see.
  ok    Euclidean distance in OKLab.

Examples:
  csscolour deltae '#ff0000' '#fe0101'
  csscolour deltae red orange --method ok`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeltaE(cmd, args, method)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", methodCIEDE2000, "difference formula (2000, ok)")
	return cmd
}

func (a *app) runDeltaE(cmd *cobra.Command, args []string, method string) error {
	colours := make([]*colour.Value, len(args))
	for i, arg := range args {
		v, err := ParseColour(arg, a.keywords)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}
		colours[i] = v
	}

	var (
		d   float64
		err error
	)
	method = strings.ToLower(strings.TrimSpace(method))
	switch method {
	case methodCIEDE2000, "de2000", "ciede2000":
		method = methodCIEDE2000
		d, err = colour.DeltaE2000(colours[0], colours[1])
	case methodOK, "oklab":
		method = methodOK
		d, err = colour.DeltaEOKValues(colours[0], colours[1])
	default:
		return fmt.Errorf("%w: difference method %q", colour.ErrUnsupported, method)
	}
	if err != nil {
		return err
	}

	p := a.printer(cmd.OutOrStdout())
	if p.json {
		return p.encode(deltaEResult{Method: method, DeltaE: util.Round(d, p.precision)})
	}
	return p.println(p.number(d))
}
