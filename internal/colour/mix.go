package colour

import (
	"fmt"
	"math"
	"strings"
)

// HueMethod selects which way round the hue circle two hues are blended.
type HueMethod uint8

const (
	HueShorter HueMethod = iota
	HueLonger
	HueIncreasing
	HueDecreasing
)

// String returns the CSS keyword for h.
func (h HueMethod) String() string {
	switch h {
	case HueShorter:
		return "shorter"
	case HueLonger:
		return "longer"
	case HueIncreasing:
		return "increasing"
	case HueDecreasing:
		return "decreasing"
	default:
		return fmt.Sprintf("HueMethod(%d)", uint8(h))
	}
}

// ParseHueMethod parses "shorter", "longer", "increasing" or "decreasing",
// optionally followed by "hue". An empty string selects the default, shorter.
func ParseHueMethod(s string) (HueMethod, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "hue"))
	switch s {
	case "", "shorter":
		return HueShorter, nil
	case "longer":
		return HueLonger, nil
	case "increasing":
		return HueIncreasing, nil
	case "decreasing":
		return HueDecreasing, nil
	}
	return HueShorter, fmt.Errorf("%w: hue interpolation method %q", ErrUnsupported, s)
}

// KeywordTable resolves named and system colour keywords.
type KeywordTable interface {
	Lookup(name string) (*Value, error)
}

// MixOperand is one side of a color-mix(): a colour or a keyword, with an
// optional percentage.
type MixOperand struct {
	Colour     *Value
	Keyword    string
	Percent    float64
	HasPercent bool
}

// Operand returns an operand for v without a percentage.
func Operand(v *Value) MixOperand {
	return MixOperand{Colour: v}
}

// KeywordOperand returns an operand naming a colour keyword.
func KeywordOperand(name string) MixOperand {
	return MixOperand{Keyword: name}
}

// WithPercent returns o with percentage p (50 means 50%).
func (o MixOperand) WithPercent(p float64) MixOperand {
	o.Percent = p
	o.HasPercent = true
	return o
}

// Mixer blends colours in a fixed interpolation space.
type Mixer struct {
	space    Space
	info     spaceInfo
	hue      HueMethod
	keywords KeywordTable
}

// MixerOption configures a Mixer.
type MixerOption func(*Mixer)

// WithKeywords lets operands name colours through t.
func WithKeywords(t KeywordTable) MixerOption {
	return func(m *Mixer) {
		m.keywords = t
	}
}

// NewMixer declares a mix in space with the given hue method. Spaces that
// cannot be interpolated in, such as custom profiles, are rejected here with
// ErrUnsupported rather than at mix time.
func NewMixer(space Space, hue HueMethod, opts ...MixerOption) (*Mixer, error) {
	s, err := checkSpace(space)
	if err != nil {
		return nil, err
	}
	si, ok := s.info()
	if !ok {
		return nil, fmt.Errorf("%w: cannot interpolate in %s", ErrUnsupported, space)
	}
	if hue > HueDecreasing {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, hue)
	}

	m := &Mixer{space: s, info: si, hue: hue}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Mix declares a mixer and blends a with b in one call.
func Mix(a, b MixOperand, space Space, hue HueMethod) (*Value, error) {
	m, err := NewMixer(space, hue)
	if err != nil {
		return nil, err
	}
	return m.Mix(a, b)
}

// Space returns the interpolation space.
func (m *Mixer) Space() Space { return m.space }

// HueMethod returns the hue interpolation method.
func (m *Mixer) HueMethod() HueMethod { return m.hue }

// mixInput is an operand converted into the mix space, remembering which
// components are missing.
type mixInput struct {
	c         Vec3
	none      [3]bool
	alpha     float64
	alphaNone bool
}

// Mix blends a and b. Omitted percentages default to 50/50, or to the
// complement of the other side; two given percentages are normalised by their
// sum, and a sum below 100 scales the resulting alpha.
//
// A component missing ("none") on one side takes the other side's value as
// is; missing on both sides it becomes zero.
func (m *Mixer) Mix(a, b MixOperand) (*Value, error) {
	fa, fb, alphaScale, err := fractions(a, b)
	if err != nil {
		return nil, err
	}

	va, err := m.resolve(a)
	if err != nil {
		return nil, fmt.Errorf("first colour: %w", err)
	}
	vb, err := m.resolve(b)
	if err != nil {
		return nil, fmt.Errorf("second colour: %w", err)
	}

	ia, err := m.prepare(va)
	if err != nil {
		return nil, fmt.Errorf("first colour: %w", err)
	}
	ib, err := m.prepare(vb)
	if err != nil {
		return nil, fmt.Errorf("second colour: %w", err)
	}

	Logger().Debug("mixing", "space", m.space, "hue", m.hue, "a", va, "b", vb, "fa", fa, "fb", fb)

	comps := make([]Component, 3)
	for i := range comps {
		var n float64
		switch {
		case i == m.info.hue && !ia.none[i] && !ib.none[i]:
			n = interpolateHue(ia.c[i], ib.c[i], fa, fb, m.hue)
		default:
			n = interpolate(ia.c[i], ib.c[i], ia.none[i], ib.none[i], fa, fb)
		}
		comps[i] = Number(n)
	}

	out, err := NewValue(m.space, comps...)
	if err != nil {
		return nil, err
	}
	alpha := interpolate(ia.alpha, ib.alpha, ia.alphaNone, ib.alphaNone, fa, fb)
	out.alpha = Number(alpha * alphaScale)
	return out, nil
}

func (m *Mixer) resolve(o MixOperand) (*Value, error) {
	switch {
	case o.Colour != nil:
		return o.Colour, nil
	case o.Keyword == "":
		return nil, fmt.Errorf("%w: empty operand", ErrInvalidState)
	case m.keywords == nil:
		return nil, fmt.Errorf("%w: no keyword table to resolve %q", ErrInvalidState, o.Keyword)
	}
	return m.keywords.Lookup(o.Keyword)
}

// prepare converts v into the mix space. Missing components survive the
// conversion when the target has an analogous component, and a hue that
// becomes powerless (zero chroma or saturation) is treated as missing.
func (m *Mixer) prepare(v *Value) (mixInput, error) {
	var in mixInput

	src := v.space.canonical()
	si, ok := src.info()
	if !ok {
		return in, fmt.Errorf("%w: cannot mix %s: %w", ErrInvalidState, v.space, ErrUnsupported)
	}
	c, err := v.vec()
	if err != nil {
		return in, err
	}
	if in.alpha, err = v.alphaNumber(); err != nil {
		return in, err
	}
	in.alphaNone = v.alpha.IsNone()

	if src == m.space {
		in.c = c
		for i, comp := range v.comps {
			in.none[i] = comp.IsNone()
		}
		return in, nil
	}

	in.c = transform(src, c, m.space)
	for i, comp := range v.comps {
		if !comp.IsNone() || si.analog[i] == catNone {
			continue
		}
		for j, cat := range m.info.analog {
			if cat == si.analog[i] {
				in.none[j] = true
			}
		}
	}
	if h := m.info.hue; h >= 0 && !in.none[h] && m.powerlessHue(in.c) {
		in.none[h] = true
	}
	return in, nil
}

// achromaticEpsilon is the colourfulness, relative to its 100% reference,
// below which a hue carries no information.
const achromaticEpsilon = 1e-5

func (m *Mixer) powerlessHue(c Vec3) bool {
	switch m.info.model {
	case ModelHWB:
		return c[1]+c[2] >= 100-achromaticEpsilon*100
	case ModelHSL, ModelLCh:
		return math.Abs(c[1]) < achromaticEpsilon*m.info.ref[1]
	}
	return false
}

// fractions returns the weights of a and b, and the alpha multiplier.
func fractions(a, b MixOperand) (float64, float64, float64, error) {
	for _, o := range []MixOperand{a, b} {
		if o.HasPercent && (o.Percent < 0 || o.Percent > 100 || math.IsNaN(o.Percent)) {
			return 0, 0, 0, fmt.Errorf("%w: mix percentage %g%% outside [0, 100]", ErrInvalidState, o.Percent)
		}
	}

	pa, pb := 50.0, 50.0
	switch {
	case a.HasPercent && b.HasPercent:
		pa, pb = a.Percent, b.Percent
	case a.HasPercent:
		pa, pb = a.Percent, 100-a.Percent
	case b.HasPercent:
		pa, pb = 100-b.Percent, b.Percent
	}

	sum := pa + pb
	if math.Abs(sum) < 1e-9 {
		return 0, 0, 0, fmt.Errorf("%w: mix percentages sum to zero", ErrInvalidState)
	}
	alphaScale := 1.0
	if sum < 100 {
		alphaScale = sum / 100
	}
	return pa / sum, pb / sum, alphaScale, nil
}

func interpolate(a, b float64, noneA, noneB bool, fa, fb float64) float64 {
	switch {
	case noneA && noneB:
		return 0
	case noneA:
		return b
	case noneB:
		return a
	}
	return a*fa + b*fb
}

// interpolateHue blends two angles in degrees along the arc method selects.
func interpolateHue(a, b, fa, fb float64, method HueMethod) float64 {
	a = normalizeHue(a)
	b = normalizeHue(b)
	diff := b - a

	switch method {
	case HueShorter:
		if diff > 180 {
			a += 360
		} else if diff < -180 {
			b += 360
		}
	case HueLonger:
		if 0 < diff && diff < 180 {
			a += 360
		} else if -180 < diff && diff <= 0 {
			b += 360
		}
	case HueIncreasing:
		if diff < 0 {
			b += 360
		}
	case HueDecreasing:
		if diff > 0 {
			a += 360
		}
	}

	return normalizeHue(a*fa + b*fb)
}
