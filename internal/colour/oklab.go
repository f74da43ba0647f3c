package colour

import "math"

var (
	xyzToLMS = Matrix3{
		{0.8190224432164319, 0.3619062562801221, -0.12887378261216414},
		{0.0329836671980271, 0.9292868468965546, 0.03614466816999844},
		{0.048177199566046255, 0.26423952494422764, 0.6335478258136937},
	}
	lmsToOKLab = Matrix3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	okLabToLMS = Matrix3{
		{0.99999999845051981432, 0.39633779217376785678, 0.21580375806075880339},
		{1.0000000088817607767, -0.1055613423236563494, -0.063854174771705903402},
		{1.0000000546724109177, -0.089484182094965759684, -1.2914855378640917399},
	}
	lmsToXYZ = Matrix3{
		{1.2268798733741557, -0.5578149965554813, 0.28139105017721583},
		{-0.04057576262431372, 1.1122868293970594, -0.07171106666151701},
		{-0.07637294974672142, -0.4214933239627914, 1.5869240244272418},
	}
)

// xyzToOKLab converts D65 relative XYZ to OKLab.
func xyzToOKLab(xyz Vec3) Vec3 {
	lms := xyzToLMS.Apply(xyz)
	return lmsToOKLab.Apply(Vec3{math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2])})
}

// okLabToXYZ converts OKLab to D65 relative XYZ.
func okLabToXYZ(lab Vec3) Vec3 {
	lms := okLabToLMS.Apply(lab)
	return lmsToXYZ.Apply(Vec3{lms[0] * lms[0] * lms[0], lms[1] * lms[1] * lms[1], lms[2] * lms[2] * lms[2]})
}
