package colour

import (
	"fmt"
	"math"
)

// pow25To7 is 25⁷.
const pow25To7 = 6103515625.0

// CIEDE2000 returns the CIEDE2000 colour difference between two CIE Lab
// colours, with unit weighting factors.
func CIEDE2000(l1, a1, b1, l2, a2, b2 float64) float64 {
	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cBar7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25To7)))

	a1p := (1 + g) * a1
	a2p := (1 + g) * a2
	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	h1p := hueRadians(b1, a1p)
	h2p := hueRadians(b2, a2p)

	dLp := l2 - l1
	dCp := c2p - c1p

	chromaProduct := c1p * c2p
	var dhp float64
	if chromaProduct != 0 {
		dhp = h2p - h1p
		if dhp > math.Pi {
			dhp -= 2 * math.Pi
		} else if dhp < -math.Pi {
			dhp += 2 * math.Pi
		}
	}
	dHp := 2 * math.Sqrt(chromaProduct) * math.Sin(dhp/2)

	lBarp := (l1 + l2) / 2
	cBarp := (c1p + c2p) / 2

	// Mean hue; when the two hues straddle the 0/2π discontinuity the plain
	// average points the wrong way and is corrected by π.
	hBarp := h1p + h2p
	if chromaProduct != 0 {
		if math.Abs(h1p-h2p) > math.Pi {
			if hBarp < 2*math.Pi {
				hBarp += 2 * math.Pi
			} else {
				hBarp -= 2 * math.Pi
			}
		}
		hBarp /= 2
	}

	t := 1 - 0.17*math.Cos(hBarp-deg2rad(30)) +
		0.24*math.Cos(2*hBarp) +
		0.32*math.Cos(3*hBarp+deg2rad(6)) -
		0.20*math.Cos(4*hBarp-deg2rad(63))

	dTheta := deg2rad(30) * math.Exp(-sq((rad2deg(hBarp)-275)/25))
	cBarp7 := math.Pow(cBarp, 7)
	rc := 2 * math.Sqrt(cBarp7/(cBarp7+pow25To7))

	lTerm := sq(lBarp - 50)
	sl := 1 + 0.015*lTerm/math.Sqrt(20+lTerm)
	sc := 1 + 0.045*cBarp
	sh := 1 + 0.015*cBarp*t
	rt := -math.Sin(2*dTheta) * rc

	dl := dLp / sl
	dc := dCp / sc
	dh := dHp / sh

	return math.Sqrt(dl*dl + dc*dc + dh*dh + rt*dc*dh)
}

// DeltaEOK returns the Euclidean distance between two OKLab colours.
func DeltaEOK(ok1, ok2 Vec3) float64 {
	dl := ok1[0] - ok2[0]
	da := ok1[1] - ok2[1]
	db := ok1[2] - ok2[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE2000 converts both colours to CIE Lab and returns their CIEDE2000
// difference.
func DeltaE2000(a, b *Value) (float64, error) {
	p, q, err := bothIn(a, b, SpaceLab)
	if err != nil {
		return 0, err
	}
	return CIEDE2000(p[0], p[1], p[2], q[0], q[1], q[2]), nil
}

// DeltaEOKValues converts both colours to OKLab and returns their ΔEOK.
func DeltaEOKValues(a, b *Value) (float64, error) {
	p, q, err := bothIn(a, b, SpaceOKLab)
	if err != nil {
		return 0, err
	}
	return DeltaEOK(p, q), nil
}

func bothIn(a, b *Value, s Space) (Vec3, Vec3, error) {
	pa, err := Convert(a, s, false)
	if err != nil {
		return Vec3{}, Vec3{}, fmt.Errorf("first colour: %w", err)
	}
	pb, err := Convert(b, s, false)
	if err != nil {
		return Vec3{}, Vec3{}, fmt.Errorf("second colour: %w", err)
	}
	return Vec3{pa[0], pa[1], pa[2]}, Vec3{pb[0], pb[1], pb[2]}, nil
}

// hueRadians returns atan2(y, x) in [0, 2π), or 0 at the origin.
func hueRadians(y, x float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	h := math.Atan2(y, x)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func rad2deg(r float64) float64 { return r * 180 / math.Pi }

func sq(v float64) float64 { return v * v }
