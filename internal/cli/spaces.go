package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/csscolour/internal/colour"
)

type spaceInfo struct {
	Name    string `json:"name"`
	Model   string `json:"model"`
	White   string `json:"white"`
	Polar   bool   `json:"polar"`
	Bounded bool   `json:"bounded"`
}

func (a *app) newSpacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the supported colour spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.printer(cmd.OutOrStdout())

			infos := make([]spaceInfo, 0, len(colour.Spaces()))
			for _, s := range colour.Spaces() {
				infos = append(infos, spaceInfo{
					Name:    string(s),
					Model:   s.Model().String(),
					White:   s.White().String(),
					Polar:   s.IsPolar(),
					Bounded: s.IsRGBLike(),
				})
			}
			if p.json {
				return p.encode(infos)
			}

			table := NewTable("Space", "Model", "White", "Polar", "RGB gamut")
			for _, s := range infos {
				table.AddRow(s.Name, s.Model, s.White, yesNo(s.Polar), yesNo(s.Bounded))
			}
			_, err := table.WriteTo(p.w)
			return err
		},
	}
}
