package colour

import "fmt"

// WhitePoint is a reference illuminant expressed as XYZ with Y normalised to 1.
type WhitePoint struct {
	X, Y, Z float64
}

// WhitePointFromXY builds a white point from its xy chromaticity.
func WhitePointFromXY(x, y float64) WhitePoint {
	return WhitePoint{X: x / y, Y: 1, Z: (1 - x - y) / y}
}

// Standard illuminants, using the chromaticities CSS Color 4 publishes.
var (
	D50 = WhitePointFromXY(0.3457, 0.3585)
	D65 = WhitePointFromXY(0.3127, 0.3290)
)

// String names the standard illuminants and prints others as XYZ.
func (w WhitePoint) String() string {
	switch w {
	case D50:
		return "D50"
	case D65:
		return "D65"
	}
	return fmt.Sprintf("XYZ(%g, %g, %g)", w.X, w.Y, w.Z)
}

func (w WhitePoint) vec() Vec3 {
	return Vec3{w.X, w.Y, w.Z}
}

// bradfordCone is the Bradford cone response matrix.
var bradfordCone = Matrix3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

// Fixed Bradford matrices for the D50/D65 pair.
var (
	d65ToD50 = Matrix3{
		{1.0479297925449969, 0.022946870601609652, -0.05019226628920524},
		{0.02962780877005599, 0.9904344267538799, -0.017073799063418826},
		{-0.009243040646204504, 0.015055191490298152, 0.7518742814281371},
	}
	d50ToD65 = Matrix3{
		{0.955473421488075, -0.02309845494876471, 0.06325924320057072},
		{-0.0283697093338637, 1.0099953980813041, 0.021041441191917323},
		{0.012314014864481998, -0.020507649298898964, 1.330365926242124},
	}
)

// BradfordMatrix computes the chromatic adaptation matrix taking XYZ values
// relative to src into XYZ values relative to dst.
func BradfordMatrix(src, dst WhitePoint) Matrix3 {
	coneInv, _ := bradfordCone.Inverse()

	s := bradfordCone.Apply(src.vec())
	d := bradfordCone.Apply(dst.vec())
	scale := diagonal(d[0]/s[0], d[1]/s[1], d[2]/s[2])

	return coneInv.Mul(scale.Mul(bradfordCone))
}

// Adapt remaps xyz from the src white point to the dst white point.
func Adapt(xyz Vec3, src, dst WhitePoint) Vec3 {
	switch {
	case src == dst:
		return xyz
	case src == D50 && dst == D65:
		return d50ToD65.Apply(xyz)
	case src == D65 && dst == D50:
		return d65ToD50.Apply(xyz)
	}
	return BradfordMatrix(src, dst).Apply(xyz)
}
