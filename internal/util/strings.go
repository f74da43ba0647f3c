// Package util provides shared utility functions used across the application.
package util

import (
	"math"
	"strconv"
	"strings"
)

// StripHash removes the # prefix from a hex colour string.
func StripHash(hex string) string {
	return strings.TrimPrefix(strings.TrimSpace(hex), "#")
}

// FormatFloat formats v with at most prec decimals, dropping trailing zeros.
// Negative zero prints as "0".
func FormatFloat(v float64, prec int) string {
	v = Round(v, prec)
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round rounds v to prec decimals. A negative prec leaves v unchanged.
func Round(v float64, prec int) float64 {
	if prec < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(prec))
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
