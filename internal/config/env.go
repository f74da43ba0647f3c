package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvConfig    = "CSSCOLOUR_CONFIG"
	EnvMixSpace  = "CSSCOLOUR_MIX_SPACE"
	EnvHue       = "CSSCOLOUR_HUE"
	EnvPrecision = "CSSCOLOUR_PRECISION"
	EnvPreview   = "CSSCOLOUR_PREVIEW"
	EnvFormat    = "CSSCOLOUR_FORMAT"

	EnvSystemColors = "CSSCOLOUR_SYSTEM_COLORS"
)

// FromEnv builds a layer from CSSCOLOUR_* variables. Empty variables are
// ignored.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setInt := func(target **int, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid integer value for %s: %q", key, raw))
			return
		}
		*target = &v
	}

	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid boolean value for %s: %q", key, raw))
			return
		}
		*target = &v
	}

	setString(&cfg.MixSpace, EnvMixSpace)
	setString(&cfg.Hue, EnvHue)
	setInt(&cfg.Precision, EnvPrecision)
	setString(&cfg.Preview, EnvPreview)
	setString(&cfg.Format, EnvFormat)
	setBool(&cfg.SystemColors, EnvSystemColors)

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
