package config

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/jmylchreest/csscolour/internal/colour"
)

// Merge applies layers over base, later layers winning, and validates the
// result.
func Merge(base Settings, layers ...Config) (Settings, error) {
	out := base
	var errs []error
	for _, layer := range layers {
		if layer.MixSpace != nil {
			s, err := CanonicalizeMixSpace(*layer.MixSpace)
			if err != nil {
				errs = append(errs, err)
			} else {
				out.MixSpace = s
			}
		}
		if layer.Hue != nil {
			h, err := colour.ParseHueMethod(*layer.Hue)
			if err != nil {
				errs = append(errs, fmt.Errorf("invalid hue: %w", err))
			} else {
				out.Hue = h
			}
		}
		if layer.Precision != nil {
			out.Precision = *layer.Precision
		}
		if layer.Preview != nil {
			out.Preview = strings.TrimSpace(*layer.Preview)
		}
		if layer.Format != nil {
			out.Format = strings.TrimSpace(*layer.Format)
		}
		if layer.SystemColors != nil {
			out.SystemColors = *layer.SystemColors
		}
		if len(layer.Colours) > 0 {
			// Copy so later layers never write into a map the caller owns.
			merged := make(map[string]string, len(out.Colours)+len(layer.Colours))
			maps.Copy(merged, out.Colours)
			maps.Copy(merged, layer.Colours)
			out.Colours = merged
		}
	}
	if len(errs) > 0 {
		return out, errors.Join(errs...)
	}
	return Normalize(out)
}
