package colour

import "math"

// CIE Lab constants, in their exact rational form.
const (
	labEpsilon = 216.0 / 24389
	labKappa   = 24389.0 / 27
)

// xyzToLab converts D50 relative XYZ to CIE Lab.
func xyzToLab(xyz Vec3) Vec3 {
	f := func(t float64) float64 {
		if t > labEpsilon {
			return math.Cbrt(t)
		}
		return (labKappa*t + 16) / 116
	}

	fx := f(xyz[0] / D50.X)
	fy := f(xyz[1] / D50.Y)
	fz := f(xyz[2] / D50.Z)

	return Vec3{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// labToXYZ converts CIE Lab to D50 relative XYZ.
func labToXYZ(lab Vec3) Vec3 {
	fy := (lab[0] + 16) / 116
	fx := lab[1]/500 + fy
	fz := fy - lab[2]/200

	var x, y, z float64
	if fx3 := fx * fx * fx; fx3 > labEpsilon {
		x = fx3
	} else {
		x = (116*fx - 16) / labKappa
	}
	if lab[0] > labKappa*labEpsilon {
		y = fy * fy * fy
	} else {
		y = lab[0] / labKappa
	}
	if fz3 := fz * fz * fz; fz3 > labEpsilon {
		z = fz3
	} else {
		z = (116*fz - 16) / labKappa
	}

	return Vec3{x * D50.X, y * D50.Y, z * D50.Z}
}

// toPolar reparametrises a cartesian (L, a, b) point as (L, C, h) with h in
// degrees within [0, 360). A zero chroma yields hue 0.
func toPolar(lab Vec3) Vec3 {
	c := math.Hypot(lab[1], lab[2])
	if c == 0 {
		return Vec3{lab[0], 0, 0}
	}
	return Vec3{lab[0], c, normalizeHue(math.Atan2(lab[2], lab[1]) * 180 / math.Pi)}
}

// toCartesian is the inverse of toPolar.
func toCartesian(lch Vec3) Vec3 {
	h := lch[2] * math.Pi / 180
	return Vec3{lch[0], lch[1] * math.Cos(h), lch[1] * math.Sin(h)}
}

// normalizeHue wraps an angle in degrees into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
