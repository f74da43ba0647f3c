package colour

import (
	"fmt"
	"math"
	"sync"
)

// Profile describes an RGB-like colour space: its transfer function pair, its
// linear RGB to XYZ matrices and its reference white. Profiles are immutable
// and shared process wide.
type Profile struct {
	space     Space
	white     WhitePoint
	linearize func(float64) float64
	compand   func(float64) float64
	toXYZ     Matrix3
	fromXYZ   Matrix3
}

var (
	profilesOnce sync.Once
	profiles     map[Space]*Profile
)

// LookupProfile returns the profile of an RGB-like space. Custom "--" spaces
// are opaque and, like every non RGB-like space, fail with ErrUnsupported.
func LookupProfile(s Space) (*Profile, error) {
	profilesOnce.Do(buildProfiles)
	if p, ok := profiles[s.canonical()]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: no RGB profile for %q", ErrUnsupported, s)
}

// mustProfile is for spaces already known to be RGB-like.
func mustProfile(s Space) *Profile {
	p, err := LookupProfile(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Space returns the colour space the profile describes.
func (p *Profile) Space() Space { return p.space }

// White returns the profile's reference illuminant.
func (p *Profile) White() WhitePoint { return p.white }

// GammaCompanding encodes a linear-light channel value.
func (p *Profile) GammaCompanding(linear float64) float64 { return p.compand(linear) }

// Linearize decodes a gamma-encoded channel value to linear light.
func (p *Profile) Linearize(encoded float64) float64 { return p.linearize(encoded) }

// LinearToXYZ maps linear RGB to XYZ relative to the profile white.
func (p *Profile) LinearToXYZ(rgb Vec3) Vec3 { return p.toXYZ.Apply(rgb) }

// XYZToLinear maps XYZ relative to the profile white to linear RGB.
func (p *Profile) XYZToLinear(xyz Vec3) Vec3 { return p.fromXYZ.Apply(xyz) }

// ToXYZ decodes an encoded RGB triple to XYZ.
func (p *Profile) ToXYZ(rgb Vec3) Vec3 {
	return p.LinearToXYZ(Vec3{p.linearize(rgb[0]), p.linearize(rgb[1]), p.linearize(rgb[2])})
}

// FromXYZ encodes XYZ as an RGB triple. The result is not clipped.
func (p *Profile) FromXYZ(xyz Vec3) Vec3 {
	lin := p.XYZToLinear(xyz)
	return Vec3{p.compand(lin[0]), p.compand(lin[1]), p.compand(lin[2])}
}

func buildProfiles() {
	profiles = map[Space]*Profile{
		SpaceSRGB: {
			space: SpaceSRGB, white: D65,
			linearize: srgbLinearize, compand: srgbCompand,
			toXYZ: srgbToXYZ, fromXYZ: xyzToSRGB,
		},
		SpaceSRGBLinear: {
			space: SpaceSRGBLinear, white: D65,
			linearize: identity, compand: identity,
			toXYZ: srgbToXYZ, fromXYZ: xyzToSRGB,
		},
		SpaceDisplayP3: {
			space: SpaceDisplayP3, white: D65,
			linearize: srgbLinearize, compand: srgbCompand,
			toXYZ: p3ToXYZ, fromXYZ: xyzToP3,
		},
		SpaceA98RGB: {
			space: SpaceA98RGB, white: D65,
			linearize: a98Linearize, compand: a98Compand,
			toXYZ: a98ToXYZ, fromXYZ: xyzToA98,
		},
		SpaceProPhotoRGB: {
			space: SpaceProPhotoRGB, white: D50,
			linearize: prophotoLinearize, compand: prophotoCompand,
			toXYZ: prophotoToXYZ, fromXYZ: xyzToProphoto,
		},
		SpaceRec2020: {
			space: SpaceRec2020, white: D65,
			linearize: rec2020Linearize, compand: rec2020Compand,
			toXYZ: rec2020ToXYZ, fromXYZ: xyzToRec2020,
		},
	}
}

func identity(v float64) float64 { return v }

// Transfer functions extend symmetrically below zero so that out of gamut
// values survive a round trip.

func srgbLinearize(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 0.04045 {
		return v / 12.92
	}
	return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), v)
}

func srgbCompand(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 0.0031308 {
		return v * 12.92
	}
	return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, v)
}

func a98Linearize(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 563.0/256), v)
}

func a98Compand(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 256.0/563), v)
}

func prophotoLinearize(v float64) float64 {
	const et2 = 16.0 / 512
	abs := math.Abs(v)
	if abs <= et2 {
		return v / 16
	}
	return math.Copysign(math.Pow(abs, 1.8), v)
}

func prophotoCompand(v float64) float64 {
	const et = 1.0 / 512
	abs := math.Abs(v)
	if abs >= et {
		return math.Copysign(math.Pow(abs, 1/1.8), v)
	}
	return 16 * v
}

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020Linearize(v float64) float64 {
	abs := math.Abs(v)
	if abs < rec2020Beta*4.5 {
		return v / 4.5
	}
	return math.Copysign(math.Pow((abs+rec2020Alpha-1)/rec2020Alpha, 1/0.45), v)
}

func rec2020Compand(v float64) float64 {
	abs := math.Abs(v)
	if abs > rec2020Beta {
		return math.Copysign(rec2020Alpha*math.Pow(abs, 0.45)-(rec2020Alpha-1), v)
	}
	return 4.5 * v
}

// RGB primaries matrices. D65 spaces use the rational forms published in
// CSS Color 4; ProPhoto is relative to D50.
var (
	srgbToXYZ = Matrix3{
		{506752.0 / 1228815, 87881.0 / 245763, 12673.0 / 70218},
		{87098.0 / 409605, 175762.0 / 245763, 12673.0 / 175545},
		{7918.0 / 409605, 87881.0 / 737289, 1001167.0 / 1053270},
	}
	xyzToSRGB = Matrix3{
		{12831.0 / 3959, -329.0 / 214, -1974.0 / 3959},
		{-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810},
		{705.0 / 12673, -2585.0 / 12673, 705.0 / 667},
	}

	p3ToXYZ = Matrix3{
		{608311.0 / 1250200, 189793.0 / 714400, 198249.0 / 1000160},
		{35783.0 / 156275, 247089.0 / 357200, 198249.0 / 2500400},
		{0, 32229.0 / 714400, 5220557.0 / 5000800},
	}
	xyzToP3 = Matrix3{
		{446124.0 / 178915, -333277.0 / 357830, -72051.0 / 178915},
		{-14852.0 / 17905, 63121.0 / 35810, 423.0 / 17905},
		{11844.0 / 330415, -50337.0 / 660830, 316169.0 / 330415},
	}

	a98ToXYZ = Matrix3{
		{573536.0 / 994567, 263643.0 / 1420810, 187206.0 / 994567},
		{591459.0 / 1989134, 6239551.0 / 9945670, 374412.0 / 4972835},
		{53769.0 / 1989134, 351524.0 / 4972835, 4929758.0 / 4972835},
	}
	xyzToA98 = Matrix3{
		{1829569.0 / 896150, -506331.0 / 896150, -308931.0 / 896150},
		{-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810},
		{16779.0 / 1248040, -147721.0 / 1248040, 1266979.0 / 1248040},
	}

	prophotoToXYZ = Matrix3{
		{0.7977604896723027, 0.13518583717574031, 0.0313493495815248},
		{0.2880711282292934, 0.7118432178101014, 0.00008565396060525902},
		{0, 0, 0.8251046025104601},
	}
	xyzToProphoto = Matrix3{
		{1.3457989731028281, -0.25558010007997534, -0.05110628506753401},
		{-0.5446224939028347, 1.5082327413132781, 0.02053603239147973},
		{0, 0, 1.2119675456389454},
	}

	rec2020ToXYZ = Matrix3{
		{63426534.0 / 99577255, 20160776.0 / 139408157, 47086771.0 / 278816314},
		{26158966.0 / 99577255, 472592308.0 / 697040785, 8267143.0 / 139408157},
		{0, 19567812.0 / 697040785, 295819943.0 / 278816314},
	}
	xyzToRec2020 = Matrix3{
		{30757411.0 / 17917100, -6372589.0 / 17917100, -4539589.0 / 17917100},
		{-19765991.0 / 29648200, 47925759.0 / 29648200, 467509.0 / 29648200},
		{792561.0 / 44930125, -1921689.0 / 44930125, 42328811.0 / 44930125},
	}
)
