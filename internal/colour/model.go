package colour

// modelOps is the per-model half of the conversion engine. Each model knows
// how to reach XYZ relative to its own space's white and how to come back.
type modelOps struct {
	toXYZ   func(s Space, c Vec3) Vec3
	fromXYZ func(s Space, xyz Vec3) Vec3
}

// models is the dispatch table keyed by Model. ModelProfile has no entry:
// custom profiles only convert to themselves.
var models = [...]modelOps{
	ModelRGB: {
		toXYZ:   func(s Space, c Vec3) Vec3 { return mustProfile(s).ToXYZ(c) },
		fromXYZ: func(s Space, xyz Vec3) Vec3 { return mustProfile(s).FromXYZ(xyz) },
	},
	ModelHSL: {
		toXYZ:   func(_ Space, c Vec3) Vec3 { return mustProfile(SpaceSRGB).ToXYZ(hslToRGB(c)) },
		fromXYZ: func(_ Space, xyz Vec3) Vec3 { return rgbToHSL(mustProfile(SpaceSRGB).FromXYZ(xyz)) },
	},
	ModelHWB: {
		toXYZ:   func(_ Space, c Vec3) Vec3 { return mustProfile(SpaceSRGB).ToXYZ(hwbToRGB(c)) },
		fromXYZ: func(_ Space, xyz Vec3) Vec3 { return rgbToHWB(mustProfile(SpaceSRGB).FromXYZ(xyz)) },
	},
	ModelLab: {
		toXYZ:   labFamilyToXYZ,
		fromXYZ: labFamilyFromXYZ,
	},
	ModelLCh: {
		toXYZ: func(s Space, c Vec3) Vec3 { return labFamilyToXYZ(s, toCartesian(c)) },
		fromXYZ: func(s Space, xyz Vec3) Vec3 {
			return toPolar(labFamilyFromXYZ(s, xyz))
		},
	},
	ModelXYZ: {
		toXYZ:   func(_ Space, c Vec3) Vec3 { return c },
		fromXYZ: func(_ Space, xyz Vec3) Vec3 { return xyz },
	},
}

func labFamilyToXYZ(s Space, lab Vec3) Vec3 {
	if s.isOK() {
		return okLabToXYZ(lab)
	}
	return labToXYZ(lab)
}

func labFamilyFromXYZ(s Space, xyz Vec3) Vec3 {
	if s.isOK() {
		return xyzToOKLab(xyz)
	}
	return xyzToLab(xyz)
}

// srgbBased reports whether s is sRGB or one of its cylindrical forms, which
// convert among themselves without going through XYZ.
func srgbBased(s Space) bool {
	return s == SpaceSRGB || s == SpaceHSL || s == SpaceHWB
}

func toEncodedSRGB(s Space, c Vec3) Vec3 {
	switch s {
	case SpaceHSL:
		return hslToRGB(c)
	case SpaceHWB:
		return hwbToRGB(c)
	}
	return c
}

func fromEncodedSRGB(s Space, rgb Vec3) Vec3 {
	switch s {
	case SpaceHSL:
		return rgbToHSL(rgb)
	case SpaceHWB:
		return rgbToHWB(rgb)
	}
	return rgb
}
