// Package config loads csscolour settings from config files and the
// environment.
package config

import "github.com/jmylchreest/csscolour/internal/colour"

// Config is one layer of settings as read from a file, the environment or
// flags. Nil fields are unset and leave lower layers in place.
type Config struct {
	MixSpace  *string `yaml:"mix_space" toml:"mix_space" json:"mix_space"`
	Hue       *string `yaml:"hue" toml:"hue" json:"hue"`
	Precision *int    `yaml:"precision" toml:"precision" json:"precision"`
	Preview   *string `yaml:"preview" toml:"preview" json:"preview"`
	Format    *string `yaml:"format" toml:"format" json:"format"`

	// SystemColors keeps the CSS system colour keywords (canvas, linktext...).
	SystemColors *bool `yaml:"system_colors" toml:"system_colors" json:"system_colors"`
	// Colours adds named colour keywords, each written in any colour syntax
	// the CLI accepts.
	Colours map[string]string `yaml:"colours" toml:"colours" json:"colours"`
}

// Settings is the effective configuration after merging every layer.
type Settings struct {
	MixSpace  colour.Space
	Hue       colour.HueMethod
	Precision int
	Preview   string
	Format    string

	SystemColors bool
	Colours      map[string]string
}

// Preview modes.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MaxPrecision is the largest number of decimals worth printing for a float64.
const MaxPrecision = 17

// Defaults returns the built-in settings. Mixing happens in OKLab, the CSS
// default interpolation space.
func Defaults() Settings {
	return Settings{
		MixSpace:  colour.SpaceOKLab,
		Hue:       colour.HueShorter,
		Precision: 4,
		Preview:   PreviewAuto,
		Format:    FormatText,

		SystemColors: true,
	}
}
