package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/csscolour/internal/keyword"
)

type keywordInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Hex  string `json:"hex"`
}

func (a *app) newKeywordsCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "keywords [filter]",
		Short: "List colour keywords",
		Long: `List the colour keywords csscolour resolves, optionally only those whose name
contains filter.

System colours use the values of a light colour scheme.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter string
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}
			return a.runKeywords(cmd, filter, kind)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "all", "keyword kind (all, named, system, transparent)")
	return cmd
}

func (a *app) runKeywords(cmd *cobra.Command, filter, kind string) error {
	kind = strings.ToLower(kind)
	switch kind {
	case "all", keyword.KindNamed.String(), keyword.KindSystem.String(), keyword.KindTransparent.String():
	default:
		return fmt.Errorf("unknown keyword kind %q", kind)
	}

	var infos []keywordInfo
	for _, name := range a.keywords.Names() {
		if !strings.Contains(name, filter) {
			continue
		}
		e, err := a.keywords.Entry(name)
		if err != nil {
			return err
		}
		if kind != "all" && e.Kind.String() != kind {
			continue
		}
		infos = append(infos, keywordInfo{Name: e.Name, Kind: e.Kind.String(), Hex: e.RGB.Hex()})
	}
	a.logger.Debug("keywords listed", "filter", filter, "kind", kind, "count", len(infos))

	p := a.printer(cmd.OutOrStdout())
	if p.json {
		if infos == nil {
			infos = []keywordInfo{}
		}
		return p.encode(infos)
	}

	table := NewTable("Keyword", "Kind", "Hex")
	for _, k := range infos {
		table.AddRow(k.Name, k.Kind, k.Hex)
	}
	_, err := table.WriteTo(p.w)
	return err
}
