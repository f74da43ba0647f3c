package colour

import "math"

// Luminance returns the WCAG 2.0 relative luminance of v, between 0 (darkest)
// and 1 (lightest). Out of gamut colours are gamut mapped to sRGB first and
// alpha is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(v *Value) (float64, error) {
	rgb, err := v.ToSRGB(true)
	if err != nil {
		return 0, err
	}
	return relativeLuminance(rgb[0], rgb[1], rgb[2]), nil
}

func relativeLuminance(r, g, b float64) float64 {
	return 0.2126*gammaCorrect(r) + 0.7152*gammaCorrect(g) + 0.0722*gammaCorrect(b)
}

// gammaCorrect linearises an encoded channel using the WCAG threshold.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG 2.0 contrast ratio between two colours, from
// 1 to 21. Normal text needs 4.5:1 for AA, large text 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b *Value) (float64, error) {
	l1, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	l2, err := Luminance(b)
	if err != nil {
		return 0, err
	}
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), nil
}
