package colour

import (
	"fmt"
	"strings"
)

// Space identifies a colour space: one of the built-in constants or a custom
// "--name" profile.
type Space string

// Built-in colour spaces.
const (
	SpaceSRGB        Space = "srgb"
	SpaceSRGBLinear  Space = "srgb-linear"
	SpaceDisplayP3   Space = "display-p3"
	SpaceA98RGB      Space = "a98-rgb"
	SpaceProPhotoRGB Space = "prophoto-rgb"
	SpaceRec2020     Space = "rec2020"
	SpaceXYZD50      Space = "xyz-d50"
	SpaceXYZD65      Space = "xyz-d65"
	SpaceLab         Space = "lab"
	SpaceLCh         Space = "lch"
	SpaceOKLab       Space = "oklab"
	SpaceOKLCh       Space = "oklch"
	SpaceHSL         Space = "hsl"
	SpaceHWB         Space = "hwb"

	// SpaceXYZ is an alias of SpaceXYZD65.
	SpaceXYZ Space = "xyz"
)

// Model is the colour model a space belongs to. It fixes how many components a
// colour carries and how they are interpreted.
type Model uint8

const (
	ModelRGB Model = iota
	ModelHSL
	ModelHWB
	ModelLab
	ModelLCh
	ModelXYZ
	ModelProfile
)

// String returns the lower-case model name.
func (m Model) String() string {
	switch m {
	case ModelRGB:
		return "rgb"
	case ModelHSL:
		return "hsl"
	case ModelHWB:
		return "hwb"
	case ModelLab:
		return "lab"
	case ModelLCh:
		return "lch"
	case ModelXYZ:
		return "xyz"
	case ModelProfile:
		return "profile"
	default:
		return fmt.Sprintf("Model(%d)", uint8(m))
	}
}

// category groups analogous components across spaces, so a missing component
// can be carried forward when a colour is converted for interpolation.
type category uint8

const (
	catNone category = iota
	catRed
	catGreen
	catBlue
	catLightness
	catColourfulness
	catHue
	catOpponentA
	catOpponentB
)

type spaceInfo struct {
	model   Model
	white   WhitePoint
	rgbLike bool
	// hue is the index of the hue component, -1 for cartesian spaces.
	hue int
	// ref is the number 100% resolves to, per component. Zero means a
	// percentage is not accepted there.
	ref    [3]float64
	analog [3]category
}

var (
	rgbRef    = [3]float64{1, 1, 1}
	rgbAnalog = [3]category{catRed, catGreen, catBlue}
	cylRef    = [3]float64{0, 100, 100}
)

// spaceOrder lists the built-in spaces in presentation order.
var spaceOrder = []Space{
	SpaceSRGB, SpaceSRGBLinear, SpaceDisplayP3, SpaceA98RGB, SpaceProPhotoRGB, SpaceRec2020,
	SpaceXYZD50, SpaceXYZD65, SpaceLab, SpaceLCh, SpaceOKLab, SpaceOKLCh, SpaceHSL, SpaceHWB,
}

var spaces = map[Space]spaceInfo{
	SpaceSRGB:        {model: ModelRGB, white: D65, rgbLike: true, hue: -1, ref: rgbRef, analog: rgbAnalog},
	SpaceSRGBLinear:  {model: ModelRGB, white: D65, rgbLike: true, hue: -1, ref: rgbRef, analog: rgbAnalog},
	SpaceDisplayP3:   {model: ModelRGB, white: D65, rgbLike: true, hue: -1, ref: rgbRef, analog: rgbAnalog},
	SpaceA98RGB:      {model: ModelRGB, white: D65, rgbLike: true, hue: -1, ref: rgbRef, analog: rgbAnalog},
	SpaceProPhotoRGB: {model: ModelRGB, white: D50, rgbLike: true, hue: -1, ref: rgbRef, analog: rgbAnalog},
	SpaceRec2020:     {model: ModelRGB, white: D65, rgbLike: true, hue: -1, ref: rgbRef, analog: rgbAnalog},
	SpaceXYZD50:      {model: ModelXYZ, white: D50, hue: -1, ref: rgbRef, analog: rgbAnalog},
	SpaceXYZD65:      {model: ModelXYZ, white: D65, hue: -1, ref: rgbRef, analog: rgbAnalog},
	SpaceLab: {
		model: ModelLab, white: D50, hue: -1,
		ref:    [3]float64{100, 125, 125},
		analog: [3]category{catLightness, catOpponentA, catOpponentB},
	},
	SpaceLCh: {
		model: ModelLCh, white: D50, hue: 2,
		ref:    [3]float64{100, 150, 0},
		analog: [3]category{catLightness, catColourfulness, catHue},
	},
	SpaceOKLab: {
		model: ModelLab, white: D65, hue: -1,
		ref:    [3]float64{1, 0.4, 0.4},
		analog: [3]category{catLightness, catOpponentA, catOpponentB},
	},
	SpaceOKLCh: {
		model: ModelLCh, white: D65, hue: 2,
		ref:    [3]float64{1, 0.4, 0},
		analog: [3]category{catLightness, catColourfulness, catHue},
	},
	SpaceHSL: {
		model: ModelHSL, white: D65, hue: 0, ref: cylRef,
		analog: [3]category{catHue, catColourfulness, catLightness},
	},
	SpaceHWB: {
		model: ModelHWB, white: D65, hue: 0, ref: cylRef,
		analog: [3]category{catHue, catNone, catNone},
	},
}

// ParseSpace resolves a colour space name. Built-in names are matched
// case-insensitively; "--" custom names are kept verbatim. Anything else fails
// with ErrUnsupported.
func ParseSpace(name string) (Space, error) {
	name = strings.TrimSpace(name)
	if isCustomName(name) {
		return Space(name), nil
	}
	s := Space(strings.ToLower(name)).canonical()
	if _, ok := spaces[s]; !ok {
		return "", fmt.Errorf("%w: colour space %q", ErrUnsupported, name)
	}
	return s, nil
}

// Spaces returns the built-in colour spaces.
func Spaces() []Space {
	out := make([]Space, len(spaceOrder))
	copy(out, spaceOrder)
	return out
}

func isCustomName(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "--")
}

func (s Space) canonical() Space {
	if s == SpaceXYZ {
		return SpaceXYZD65
	}
	return s
}

// IsCustom reports whether s is a "--" custom profile space.
func (s Space) IsCustom() bool {
	return isCustomName(string(s))
}

// Known reports whether s is a built-in space.
func (s Space) Known() bool {
	_, ok := spaces[s.canonical()]
	return ok
}

func (s Space) info() (spaceInfo, bool) {
	si, ok := spaces[s.canonical()]
	return si, ok
}

// Model returns the colour model of s. Custom spaces use ModelProfile.
func (s Space) Model() Model {
	if si, ok := s.info(); ok {
		return si.model
	}
	return ModelProfile
}

// IsRGBLike reports whether s has a [0,1] gamut per channel.
func (s Space) IsRGBLike() bool {
	si, ok := s.info()
	return ok && si.rgbLike
}

// IsPolar reports whether s has a hue component.
func (s Space) IsPolar() bool {
	si, ok := s.info()
	return ok && si.hue >= 0
}

// HueIndex returns the index of the hue component, or -1 when s has none.
func (s Space) HueIndex() int {
	if si, ok := s.info(); ok {
		return si.hue
	}
	return -1
}

// White returns the reference illuminant of s. Custom spaces report D65.
func (s Space) White() WhitePoint {
	if si, ok := s.info(); ok {
		return si.white
	}
	return D65
}

// gamutSpace returns the RGB space whose gamut bounds s, if any. HSL and HWB
// are bounded by sRGB.
func (s Space) gamutSpace() (Space, bool) {
	si, ok := s.info()
	if !ok {
		return "", false
	}
	switch {
	case si.rgbLike:
		return s.canonical(), true
	case si.model == ModelHSL, si.model == ModelHWB:
		return SpaceSRGB, true
	}
	return "", false
}

// isOK reports whether s uses OKLab coordinates.
func (s Space) isOK() bool {
	return s == SpaceOKLab || s == SpaceOKLCh
}
