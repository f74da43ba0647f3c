package colour

import "math"

// Gamut mapping parameters.
const (
	// gamutJND is the largest ΔE2000 accepted between a point and its clip.
	gamutJND = 2.0

	// maxLabChroma bounds the chroma fed to the search, which otherwise can
	// diverge on absurd inputs. maxOKLabChroma is the same bound in OKLab
	// units (100% chroma is 125 in Lab and 0.4 in OKLab).
	maxLabChroma   = 400.0
	maxOKLabChroma = maxLabChroma * 0.4 / 125

	initialFactor    = 0.97
	initialEpsilon   = 0.025
	epsilonShrink    = 0.15
	convergedEpsilon = 9e-5
)

// maxGamutIterations caps the chroma search. The search normally settles in a
// few dozen steps.
var maxGamutIterations = 2000

// gamutMapper maps points of a Lab-like working space into an RGB gamut.
type gamutMapper struct {
	profile *Profile
	ok      bool
}

// mapGamut returns the in-gamut RGB approximation, in gamut space gs, of the
// colour c of space src. OKLab and OKLCh colours are mapped in OKLab, every
// other colour in CIE Lab.
func mapGamut(src Space, c Vec3, gs Space) Vec3 {
	m := gamutMapper{profile: mustProfile(gs), ok: src.isOK()}
	working := SpaceLab
	if m.ok {
		working = SpaceOKLab
	}
	return m.mapPoint(transform(src, c, working))
}

func (m gamutMapper) whiteL() float64 {
	if m.ok {
		return 1
	}
	return 100
}

func (m gamutMapper) maxChroma() float64 {
	if m.ok {
		return maxOKLabChroma
	}
	return maxLabChroma
}

// toRGB converts a working point to unclipped RGB.
func (m gamutMapper) toRGB(p Vec3) Vec3 {
	var xyz Vec3
	var white WhitePoint
	if m.ok {
		xyz, white = okLabToXYZ(p), D65
	} else {
		xyz, white = labToXYZ(p), D50
	}
	return m.profile.FromXYZ(Adapt(xyz, white, m.profile.white))
}

// fromRGB converts RGB back to a working point.
func (m gamutMapper) fromRGB(rgb Vec3) Vec3 {
	xyz := m.profile.ToXYZ(rgb)
	if m.ok {
		return xyzToOKLab(Adapt(xyz, m.profile.white, D65))
	}
	return xyzToLab(Adapt(xyz, m.profile.white, D50))
}

// deltaE measures ΔE2000 between two working points.
func (m gamutMapper) deltaE(p, q Vec3) float64 {
	if m.ok {
		p = xyzToLab(Adapt(okLabToXYZ(p), D65, D50))
		q = xyzToLab(Adapt(okLabToXYZ(q), D65, D50))
	}
	return CIEDE2000(p[0], p[1], p[2], q[0], q[1], q[2])
}

// clipDelta clips p's RGB form to the gamut and reports how far the clip
// moved it.
func (m gamutMapper) clipDelta(p Vec3) (Vec3, float64) {
	clipped := clip(m.toRGB(p))
	return clipped, m.deltaE(p, m.fromRGB(clipped))
}

// mapPoint runs the chroma search. The in-gamut boundary is not convex in
// Lab for every profile, so the search oscillates: it scales chroma down by
// factor until the clip is within tolerance, then turns around with a smaller
// step, shrinking epsilon on every reversal until it converges.
func (m gamutMapper) mapPoint(p Vec3) Vec3 {
	if p[0] >= m.whiteL() {
		return Vec3{1, 1, 1}
	}
	if p[0] <= 0 {
		return Vec3{0, 0, 0}
	}

	if chroma := math.Hypot(p[1], p[2]); chroma > m.maxChroma() {
		scale := m.maxChroma() / chroma
		p[1] *= scale
		p[2] *= scale
	}

	clipped, de := m.clipDelta(p)
	if de < gamutJND {
		Logger().Trace("gamut mapped", "profile", m.profile.space, "iterations", 0, "rgb", clipped)
		return clipped
	}

	factor := initialFactor
	epsilon := initialEpsilon
	iterations := 0
	for epsilon >= convergedEpsilon {
		if iterations == maxGamutIterations {
			Logger().Warn("gamut mapping did not converge", "point", p, "epsilon", epsilon)
			break
		}
		iterations++

		p[1] *= factor
		p[2] *= factor
		clipped, de = m.clipDelta(p)

		switch {
		case factor < 1 && de < gamutJND:
			factor = 1 + epsilon
			epsilon *= epsilonShrink
		case factor > 1 && de >= gamutJND:
			factor = 1 - epsilon
			epsilon *= epsilonShrink
		}
	}

	Logger().Trace("gamut mapped", "profile", m.profile.space, "iterations", iterations, "rgb", clipped)
	return clipped
}

func clip(rgb Vec3) Vec3 {
	for i, ch := range rgb {
		rgb[i] = math.Min(1, math.Max(0, ch))
	}
	return rgb
}
