package config

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/csscolour/internal/colour"
)

// CanonicalizeMixSpace parses a mix space name. Custom profile spaces cannot
// be interpolated in and are rejected.
func CanonicalizeMixSpace(raw string) (colour.Space, error) {
	s, err := colour.ParseSpace(raw)
	if err != nil {
		return "", fmt.Errorf("invalid mix_space: %w", err)
	}
	if !s.Known() {
		return "", fmt.Errorf("invalid mix_space: %s is not a built-in space", raw)
	}
	return s, nil
}

func CanonicalizePreview(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	if mode == "" {
		return PreviewAuto, nil
	}
	switch mode {
	case PreviewAuto, PreviewAlways, PreviewNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid preview: %s", raw)
	}
}

func CanonicalizeFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		return FormatText, nil
	}
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format: %s", raw)
	}
}

func ValidatePrecision(n int) error {
	if n < 0 || n > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d", MaxPrecision)
	}
	return nil
}

// Normalize canonicalises and validates s.
func Normalize(s Settings) (Settings, error) {
	var err error
	if s.Preview, err = CanonicalizePreview(s.Preview); err != nil {
		return s, err
	}
	if s.Format, err = CanonicalizeFormat(s.Format); err != nil {
		return s, err
	}
	if err := ValidatePrecision(s.Precision); err != nil {
		return s, err
	}
	if !s.MixSpace.Known() {
		return s, fmt.Errorf("invalid mix_space: %q", s.MixSpace)
	}
	return s, nil
}
