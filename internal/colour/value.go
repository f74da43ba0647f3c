package colour

import (
	"fmt"
	"strings"
)

// Value is a colour in a specific space: a fixed number of chromatic
// components plus one alpha component.
//
// A Value has a single owner. It may be read concurrently, but it must not be
// mutated while other goroutines read it. Use Copy to share it between two
// derived colours.
type Value struct {
	space Space
	comps []Component
	alpha Component
}

// NewValue creates a colour in space with the given chromatic components and
// an opaque alpha. Built-in spaces take exactly three components; a custom
// "--" profile takes at least one.
func NewValue(space Space, comps ...Component) (*Value, error) {
	space = Space(strings.TrimSpace(string(space)))
	if !space.IsCustom() {
		s, err := ParseSpace(string(space))
		if err != nil {
			return nil, err
		}
		space = s
	}
	if err := checkCount(space, len(comps)); err != nil {
		return nil, err
	}

	v := &Value{
		space: space,
		comps: make([]Component, len(comps)),
		alpha: opaque,
	}
	copy(v.comps, comps)
	return v, nil
}

// FromNumbers creates a colour from plain numbers. nums holds the chromatic
// components optionally followed by alpha.
func FromNumbers(space Space, nums ...float64) (*Value, error) {
	n := len(nums)
	if !space.IsCustom() {
		n = min(n, 3)
	}
	comps := make([]Component, n)
	for i := range comps {
		comps[i] = Number(nums[i])
	}
	v, err := NewValue(space, comps...)
	if err != nil {
		return nil, err
	}
	if len(nums) == n+1 {
		v.alpha = Number(nums[n])
	} else if len(nums) > n+1 {
		return nil, fmt.Errorf("%w: %d numbers for %s", ErrInvalidState, len(nums), space)
	}
	return v, nil
}

// MustFromNumbers is like FromNumbers but panics on error. It is intended for
// colour tables built from constants.
func MustFromNumbers(space Space, nums ...float64) *Value {
	v, err := FromNumbers(space, nums...)
	if err != nil {
		panic(err)
	}
	return v
}

func checkCount(space Space, n int) error {
	if space.IsCustom() {
		if n < 1 {
			return fmt.Errorf("%w: %s needs at least one component", ErrInvalidState, space)
		}
		return nil
	}
	if n != 3 {
		return fmt.Errorf("%w: %s takes 3 components, got %d", ErrInvalidState, space, n)
	}
	return nil
}

// Space returns the colour space of v.
func (v *Value) Space() Space { return v.space }

// Model returns the colour model of v.
func (v *Value) Model() Model { return v.space.Model() }

// Len returns the number of chromatic components.
func (v *Value) Len() int { return len(v.comps) }

// Component returns the i-th chromatic component. It panics if i is out of range.
func (v *Value) Component(i int) Component { return v.comps[i] }

// Components returns a copy of the chromatic components.
func (v *Value) Components() []Component {
	out := make([]Component, len(v.comps))
	copy(out, v.comps)
	return out
}

// Alpha returns the alpha component.
func (v *Value) Alpha() Component { return v.alpha }

// SetComponent replaces the i-th chromatic component.
func (v *Value) SetComponent(i int, c Component) error {
	if i < 0 || i >= len(v.comps) {
		return fmt.Errorf("%w: component index %d out of range for %s", ErrInvalidState, i, v.space)
	}
	v.comps[i] = c
	return nil
}

// SetComponents replaces every chromatic component. The count is fixed by
// the colour model and cannot change.
func (v *Value) SetComponents(comps ...Component) error {
	if len(comps) != len(v.comps) {
		return fmt.Errorf("%w: %s takes %d components, got %d", ErrInvalidState, v.space, len(v.comps), len(comps))
	}
	copy(v.comps, comps)
	return nil
}

// SetAlpha replaces the alpha component.
func (v *Value) SetAlpha(c Component) {
	v.alpha = c
}

// Copy returns an independent copy of v.
func (v *Value) Copy() *Value {
	c := &Value{
		space: v.space,
		comps: make([]Component, len(v.comps)),
		alpha: v.alpha,
	}
	copy(c.comps, v.comps)
	return c
}

// Numbers resolves v to plain numbers: the chromatic components followed by
// alpha. Percentages are scaled to the component's reference range and
// "none" becomes zero.
func (v *Value) Numbers() ([]float64, error) {
	out := make([]float64, len(v.comps)+1)
	if v.space.IsCustom() {
		for i, c := range v.comps {
			n, err := c.resolve(1)
			if err != nil {
				return nil, fmt.Errorf("%s component %d: %w", v.space, i, err)
			}
			out[i] = n
		}
	} else {
		vec, err := v.vec()
		if err != nil {
			return nil, err
		}
		copy(out, vec[:])
	}

	a, err := v.alphaNumber()
	if err != nil {
		return nil, err
	}
	out[len(v.comps)] = a
	return out, nil
}

// ToXYZ returns v as D65 relative XYZ.
func (v *Value) ToXYZ() (Vec3, error) {
	nums, err := Convert(v, SpaceXYZD65, false)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{nums[0], nums[1], nums[2]}, nil
}

// ToSRGB returns v as sRGB components followed by alpha. With clamp set,
// out of gamut colours are gamut mapped, sRGB ones included.
func (v *Value) ToSRGB(clamp bool) ([]float64, error) {
	if !clamp {
		return Convert(v, SpaceSRGB, false)
	}
	return convert(v, SpaceSRGB, mapVec)
}

// vec resolves the three chromatic components of a built-in space.
func (v *Value) vec() (Vec3, error) {
	si, ok := v.space.info()
	if !ok {
		return Vec3{}, fmt.Errorf("%w: colour space %q", ErrUnsupported, v.space)
	}
	var out Vec3
	for i, c := range v.comps {
		n, err := c.resolve(si.ref[i])
		if err != nil {
			return Vec3{}, fmt.Errorf("%s component %d: %w", v.space, i, err)
		}
		out[i] = n
	}
	return out, nil
}

func (v *Value) alphaNumber() (float64, error) {
	a, err := v.alpha.resolve(1)
	if err != nil {
		return 0, fmt.Errorf("alpha: %w", err)
	}
	return a, nil
}

// String formats v in CSS functional notation, for example "lab(50 20 -10)" or
// "color(display-p3 1 0 0 / 0.5)".
func (v *Value) String() string {
	var b strings.Builder
	switch v.space.canonical() {
	case SpaceHSL, SpaceHWB, SpaceLab, SpaceLCh, SpaceOKLab, SpaceOKLCh:
		b.WriteString(string(v.space))
		b.WriteByte('(')
	default:
		b.WriteString("color(")
		b.WriteString(string(v.space))
		b.WriteByte(' ')
	}
	for i, c := range v.comps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	if v.alpha != opaque {
		b.WriteString(" / ")
		b.WriteString(v.alpha.String())
	}
	b.WriteByte(')')
	return b.String()
}
