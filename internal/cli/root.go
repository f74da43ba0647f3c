// Package cli provides the command-line interface for csscolour.
package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/csscolour/internal/colour"
	"github.com/jmylchreest/csscolour/internal/config"
	"github.com/jmylchreest/csscolour/internal/keyword"
	"github.com/jmylchreest/csscolour/internal/version"
)

// app holds the state shared by every command of one command tree.
type app struct {
	getenv func(string) string

	// persistent flags
	verbose    bool
	quiet      bool
	configPath string
	precision  int
	preview    string
	format     string

	logger   hclog.Logger
	settings config.Settings
	keywords *keyword.Table
}

// NewRootCmd builds the csscolour command tree. Each call returns an
// independent tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(os.Getenv)
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	a := &app{
		getenv:   getenv,
		logger:   hclog.NewNullLogger(),
		settings: config.Defaults(),
		keywords: keyword.Default,
	}

	root := &cobra.Command{
		Use:   "csscolour",
		Short: "Convert, mix and compare CSS colours",
		Long: `csscolour converts colours between the CSS Color 4 colour spaces, mixes
them the way color-mix() does, maps them into RGB gamuts and measures colour
differences.

Colours can be written as hex (#f80), CSS functions (oklch(0.7 0.1 30)),
color() (color(display-p3 1 0 0)), a space name and components
("lab 50 20 -30 / 0.5") or a keyword (rebeccapurple).

Settings are read from $XDG_CONFIG_HOME/csscolour/config.{yaml,toml,json},
then CSSCOLOUR_* environment variables, then flags.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/csscolour/config.yaml)")
	pf.IntVarP(&a.precision, "precision", "p", config.Defaults().Precision, "decimal places to print")
	pf.StringVar(&a.preview, "preview", config.PreviewAuto, "colour swatches (auto, always, never)")
	pf.StringVarP(&a.format, "format", "f", config.FormatText, "output format (text, json)")

	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(
		a.newVersionCmd(),
		a.newConvertCmd(),
		a.newMixCmd(),
		a.newDeltaECmd(),
		a.newGamutCmd(),
		a.newContrastCmd(),
		a.newSpacesCmd(),
		a.newKeywordsCmd(),
	)
	return root
}

// setup configures logging and resolves settings before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := hclog.Warn
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "csscolour",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
	colour.SetLogger(a.logger.Named("engine"))

	settings, path, err := config.Resolve(a.configPath, a.getenv, a.flagLayer(cmd))
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger.Debug("settings resolved",
		"config", path,
		"mix_space", settings.MixSpace,
		"hue", settings.Hue,
		"precision", settings.Precision,
		"preview", settings.Preview,
		"format", settings.Format,
		"system_colors", settings.SystemColors,
		"colours", len(settings.Colours),
	)

	keywords, err := keywordTable(settings)
	if err != nil {
		return err
	}
	a.keywords = keywords
	return nil
}

// keywordTable builds the keyword table for settings. Custom colours may be
// written in any syntax ParseColour accepts, including built-in keywords.
func keywordTable(s config.Settings) (*keyword.Table, error) {
	if s.SystemColors && len(s.Colours) == 0 {
		return keyword.Default, nil
	}
	var opts []keyword.Option
	if !s.SystemColors {
		opts = append(opts, keyword.WithoutSystemColors())
	}
	for _, name := range slices.Sorted(maps.Keys(s.Colours)) {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("colours: empty colour name")
		}
		v, err := ParseColour(s.Colours[name], keyword.Default)
		if err != nil {
			return nil, fmt.Errorf("colours.%s: %w", name, err)
		}
		c, err := colour.ToRGB8(v)
		if err != nil {
			return nil, fmt.Errorf("colours.%s: %w", name, err)
		}
		opts = append(opts, keyword.WithColor(name, c))
	}
	return keyword.New(opts...), nil
}

// flagLayer collects the flags the user set. Unset flags leave the config
// file and environment in charge.
func (a *app) flagLayer(cmd *cobra.Command) config.Config {
	var layer config.Config
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	str := func(name string) *string {
		s := flags.Lookup(name).Value.String()
		return &s
	}

	if changed("precision") {
		layer.Precision = &a.precision
	}
	if changed("preview") {
		layer.Preview = &a.preview
	}
	if changed("format") {
		layer.Format = &a.format
	}
	if changed("in") {
		layer.MixSpace = str("in")
	}
	if changed("hue") {
		layer.Hue = str("hue")
	}
	return layer
}

func (a *app) printer(w io.Writer) *printer {
	return newPrinter(w, a.settings, a.getenv)
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.printer(cmd.OutOrStdout())
			if p.json {
				return p.encode(version.GetInfo())
			}
			return p.println(version.String())
		},
	}
}
