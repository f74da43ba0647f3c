package colour

import "math"

// rgbToHSL converts encoded sRGB to HSL.
// Returns hue (0-360), saturation (0-100), lightness (0-100). Achromatic
// colours report hue 0.
func rgbToHSL(rgb Vec3) Vec3 {
	r, g, b := rgb[0], rgb[1], rgb[2]

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l := (maxVal + minVal) / 2

	if delta == 0 {
		return Vec3{0, 0, l * 100}
	}

	// Saturation.
	var s float64
	if div := math.Min(l, 1-l); div != 0 {
		s = (maxVal - l) / div
	}

	// Hue.
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	// Out of gamut input can produce a negative saturation.
	if s < 0 {
		h += 180
		s = -s
	}

	return Vec3{normalizeHue(h), s * 100, l * 100}
}

// hslToRGB converts HSL to encoded sRGB.
// h is hue in degrees, s is saturation (0-100), l is lightness (0-100).
func hslToRGB(hsl Vec3) Vec3 {
	h := normalizeHue(hsl[0])
	s := hsl[1] / 100
	l := hsl[2] / 100

	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		a := s * math.Min(l, 1-l)
		return l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
	}

	return Vec3{f(0), f(8), f(4)}
}

// rgbToHWB converts encoded sRGB to HWB (hue, whiteness, blackness).
func rgbToHWB(rgb Vec3) Vec3 {
	hsl := rgbToHSL(rgb)
	white := math.Min(rgb[0], math.Min(rgb[1], rgb[2]))
	black := 1 - math.Max(rgb[0], math.Max(rgb[1], rgb[2]))
	return Vec3{hsl[0], white * 100, black * 100}
}

// hwbToRGB converts HWB to encoded sRGB. Whiteness and blackness summing to
// 100 or more produce a grey.
func hwbToRGB(hwb Vec3) Vec3 {
	white := hwb[1] / 100
	black := hwb[2] / 100
	if white+black >= 1 {
		grey := white / (white + black)
		return Vec3{grey, grey, grey}
	}

	rgb := hslToRGB(Vec3{hwb[0], 100, 50})
	for i := range rgb {
		rgb[i] = rgb[i]*(1-white-black) + white
	}
	return rgb
}
