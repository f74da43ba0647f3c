package colour

import (
	"fmt"
	"strings"
)

// gamutTolerance is how far a channel may stray outside [0,1] and still count
// as in gamut.
const gamutTolerance = 1e-4

// Convert converts v to target and returns the chromatic components followed
// by alpha. With clamp set, a result outside an RGB-like target's gamut is
// replaced by its gamut-mapped approximation. Converting to the colour's own
// space returns its components unchanged; use MapToGamut to also map those.
//
// Unknown spaces, and any conversion into or out of a custom profile other
// than the identity, fail with ErrUnsupported. Components that cannot be
// resolved fail with ErrInvalidState.
func Convert(v *Value, target Space, clamp bool) ([]float64, error) {
	return convert(v, target, func(src Space, c Vec3, dst Space) Vec3 {
		return convertVec(src, c, dst, clamp)
	})
}

// ConvertValue is like Convert but packages the result as a new colour in
// target. A "none" alpha is kept as is.
func ConvertValue(v *Value, target Space, clamp bool) (*Value, error) {
	nums, err := Convert(v, target, clamp)
	if err != nil {
		return nil, err
	}
	return packValue(v, target, nums)
}

// MapToGamut converts v to target and gamut maps the result when target has
// an RGB gamut. Unlike Convert it also maps a colour that is already in target
// but lies outside its gamut. Targets without a gamut convert exactly.
func MapToGamut(v *Value, target Space) (*Value, error) {
	nums, err := convert(v, target, mapVec)
	if err != nil {
		return nil, err
	}
	return packValue(v, target, nums)
}

func convert(v *Value, target Space, fn func(src Space, c Vec3, dst Space) Vec3) ([]float64, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil colour", ErrInvalidState)
	}
	target, err := checkSpace(target)
	if err != nil {
		return nil, err
	}

	src := v.space.canonical()
	if src.IsCustom() || target.IsCustom() {
		if src != target {
			return nil, fmt.Errorf("%w: cannot convert %s to %s", ErrUnsupported, v.space, target)
		}
		return v.Numbers()
	}

	c, err := v.vec()
	if err != nil {
		return nil, err
	}
	alpha, err := v.alphaNumber()
	if err != nil {
		return nil, err
	}

	out := fn(src, c, target)
	return []float64{out[0], out[1], out[2], alpha}, nil
}

func packValue(v *Value, target Space, nums []float64) (*Value, error) {
	target, _ = checkSpace(target)

	comps := make([]Component, len(nums)-1)
	for i := range comps {
		comps[i] = Number(nums[i])
	}
	out, err := NewValue(target, comps...)
	if err != nil {
		return nil, err
	}
	if v.alpha.IsNone() {
		out.alpha = v.alpha
	} else {
		out.alpha = Number(nums[len(nums)-1])
	}
	return out, nil
}

// IsInGamut reports whether v lies within the gamut of target, allowing the
// same tolerance the gamut mapper uses. Spaces without a gamut (Lab, LCh,
// XYZ) contain every colour.
func IsInGamut(v *Value, target Space) (bool, error) {
	if v == nil {
		return false, fmt.Errorf("%w: nil colour", ErrInvalidState)
	}
	target, err := checkSpace(target)
	if err != nil {
		return false, err
	}
	src := v.space.canonical()
	if src.IsCustom() || target.IsCustom() {
		return false, fmt.Errorf("%w: no gamut check between %s and %s", ErrUnsupported, v.space, target)
	}

	gs, bounded := target.gamutSpace()
	if !bounded {
		return true, nil
	}
	c, err := v.vec()
	if err != nil {
		return false, err
	}
	return inGamut(transform(src, c, gs)), nil
}

// checkSpace validates s and returns its canonical form.
func checkSpace(s Space) (Space, error) {
	name := strings.TrimSpace(string(s))
	if isCustomName(name) {
		return Space(name), nil
	}
	return ParseSpace(name)
}

// convertVec converts resolved components between two built-in spaces.
func convertVec(src Space, c Vec3, dst Space, clamp bool) Vec3 {
	if src == dst {
		return c
	}
	if !clamp {
		return transform(src, c, dst)
	}
	return mapVec(src, c, dst)
}

// mapVec converts c to dst and gamut maps the result if dst is bounded and
// the result falls outside. src may equal dst.
func mapVec(src Space, c Vec3, dst Space) Vec3 {
	out := transform(src, c, dst)
	gs, bounded := dst.gamutSpace()
	if !bounded {
		return out
	}
	rgb := out
	if gs != dst {
		rgb = transform(src, c, gs)
	}
	if inGamut(rgb) {
		return out
	}

	mapped := mapGamut(src, c, gs)
	if gs != dst {
		return fromEncodedSRGB(dst, mapped)
	}
	return mapped
}

// transform converts without any clamping. Lab and LCh (and their OK forms)
// are reparametrised directly, sRGB and its cylindrical forms are converted
// among themselves, and everything else goes through XYZ.
func transform(src Space, c Vec3, dst Space) Vec3 {
	if src == dst {
		return c
	}
	ss, _ := src.info()
	ds, _ := dst.info()

	switch {
	case ss.model == ModelLab && ds.model == ModelLCh && src.isOK() == dst.isOK():
		return toPolar(c)
	case ss.model == ModelLCh && ds.model == ModelLab && src.isOK() == dst.isOK():
		return toCartesian(c)
	case srgbBased(src) && srgbBased(dst):
		return fromEncodedSRGB(dst, toEncodedSRGB(src, c))
	}

	xyz := models[ss.model].toXYZ(src, c)
	xyz = Adapt(xyz, ss.white, ds.white)
	return models[ds.model].fromXYZ(dst, xyz)
}

func inGamut(rgb Vec3) bool {
	for _, ch := range rgb {
		if ch < -gamutTolerance || ch > 1+gamutTolerance {
			return false
		}
	}
	return true
}
