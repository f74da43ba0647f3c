package colour

import (
	"errors"
	"fmt"
	"testing"
)

type stubKeywords map[string]*Value

func (s stubKeywords) Lookup(name string) (*Value, error) {
	if v, ok := s[name]; ok {
		return v.Copy(), nil
	}
	return nil, fmt.Errorf("%w: unknown keyword %q", ErrInvalidState, name)
}

func mustMix(t *testing.T, a, b MixOperand, space Space, hue HueMethod) []float64 {
	t.Helper()
	v, err := Mix(a, b, space, hue)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}
	if v.Space() != space {
		t.Fatalf("Mix() space = %s, want %s", v.Space(), space)
	}
	nums, err := v.Numbers()
	if err != nil {
		t.Fatalf("Numbers() error = %v", err)
	}
	return nums
}

func TestMixWhiteBlack(t *testing.T) {
	white := Operand(MustFromNumbers(SpaceSRGB, 1, 1, 1))
	black := Operand(MustFromNumbers(SpaceSRGB, 0, 0, 0))

	got := mustMix(t, white, black, SpaceSRGB, HueShorter)
	if !componentsApprox(SpaceSRGB, got, []float64{0.5, 0.5, 0.5, 1}, 1e-12) {
		t.Errorf("Mix() = %v, want mid grey", got)
	}

	v, _ := Mix(white, black, SpaceSRGB, HueShorter)
	rgb, err := ToRGB8(v)
	if err != nil {
		t.Fatal(err)
	}
	if rgb.Hex() != "#808080" {
		t.Errorf("Hex() = %s, want #808080", rgb.Hex())
	}
}

func TestMixHueMethods(t *testing.T) {
	red := Operand(MustFromNumbers(SpaceHSL, 0, 100, 50))
	blue := Operand(MustFromNumbers(SpaceHSL, 240, 100, 50))

	tests := []struct {
		method HueMethod
		a, b   MixOperand
		want   float64
	}{
		{method: HueShorter, a: red, b: blue, want: 300},
		{method: HueLonger, a: red, b: blue, want: 120},
		{method: HueIncreasing, a: red, b: blue, want: 120},
		{method: HueDecreasing, a: red, b: blue, want: 300},
		{method: HueShorter, a: blue, b: red, want: 300},
		{method: HueIncreasing, a: blue, b: red, want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			got := mustMix(t, tt.a, tt.b, SpaceHSL, tt.method)
			if !approx(got[0], tt.want, 1e-9) {
				t.Errorf("hue = %g, want %g", got[0], tt.want)
			}
		})
	}

	shorter := mustMix(t, red, blue, SpaceHSL, HueShorter)
	longer := mustMix(t, red, blue, SpaceHSL, HueLonger)
	if d := shorter[0] - longer[0]; !approx(d, 180, 1e-9) {
		t.Errorf("shorter and longer differ by %g, want 180", d)
	}
}

func TestInterpolateHue(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		method HueMethod
		want   float64
	}{
		{name: "shorter across zero", a: 350, b: 10, method: HueShorter, want: 0},
		{name: "longer across zero", a: 350, b: 10, method: HueLonger, want: 180},
		{name: "increasing wraps", a: 350, b: 10, method: HueIncreasing, want: 0},
		{name: "decreasing the long way", a: 350, b: 10, method: HueDecreasing, want: 180},
		{name: "unnormalised input", a: -10, b: 370, method: HueShorter, want: 0},
		{name: "equal hues longer", a: 90, b: 90, method: HueLonger, want: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interpolateHue(tt.a, tt.b, 0.5, 0.5, tt.method); !approx(got, tt.want, 1e-9) {
				t.Errorf("interpolateHue(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMixNone(t *testing.T) {
	a, _ := NewValue(SpaceLab, NoneComponent(), Number(20), Number(30))
	b := MustFromNumbers(SpaceLab, 5, 40, -10)

	tests := []struct {
		percent float64
		wantA   float64
	}{
		{percent: 0, wantA: 40},
		{percent: 10, wantA: 38},
		{percent: 50, wantA: 30},
		{percent: 90, wantA: 22},
		{percent: 100, wantA: 20},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%g%%", tt.percent), func(t *testing.T) {
			got := mustMix(t, Operand(a).WithPercent(tt.percent), Operand(b), SpaceLab, HueShorter)
			if got[0] != 5 {
				t.Errorf("L = %g, want exactly 5", got[0])
			}
			if !approx(got[1], tt.wantA, 1e-12) {
				t.Errorf("a = %g, want %g", got[1], tt.wantA)
			}
		})
	}

	both, _ := NewValue(SpaceLab, NoneComponent(), Number(20), Number(30))
	got := mustMix(t, Operand(a), Operand(both), SpaceLab, HueShorter)
	if got[0] != 0 {
		t.Errorf("L with both none = %g, want 0", got[0])
	}

	alphaNone := MustFromNumbers(SpaceSRGB, 1, 0, 0)
	alphaNone.SetAlpha(NoneComponent())
	got = mustMix(t, Operand(alphaNone), Operand(MustFromNumbers(SpaceSRGB, 0, 0, 1, 0.4)), SpaceSRGB, HueShorter)
	if got[3] != 0.4 {
		t.Errorf("alpha = %g, want 0.4", got[3])
	}
}

func TestMixCarriesMissingComponentsForward(t *testing.T) {
	// Missing chroma in lch carries to oklch chroma, and the resulting
	// achromatic colour has a powerless hue.
	a, _ := NewValue(SpaceLCh, Number(50), NoneComponent(), Number(120))
	b := MustFromNumbers(SpaceOKLCh, 0.5, 0.1, 200)

	got := mustMix(t, Operand(a), Operand(b), SpaceOKLCh, HueShorter)
	if got[1] != 0.1 {
		t.Errorf("chroma = %g, want 0.1", got[1])
	}
	if got[2] != 200 {
		t.Errorf("hue = %g, want 200", got[2])
	}

	// Red in rgb has no analogue in lab, so a missing red is just zero.
	c, _ := NewValue(SpaceSRGB, NoneComponent(), Number(1), Number(1))
	cyan, _ := ConvertValue(MustFromNumbers(SpaceSRGB, 0, 1, 1), SpaceLab, false)
	got = mustMix(t, Operand(c), Operand(cyan), SpaceLab, HueShorter)
	want, _ := cyan.Numbers()
	if !componentsApprox(SpaceLab, got, want, 1e-6) {
		t.Errorf("Mix() = %v, want %v", got, want)
	}
}

func TestMixPowerlessHue(t *testing.T) {
	white := MustFromNumbers(SpaceSRGB, 1, 1, 1)
	blue := MustFromNumbers(SpaceSRGB, 0, 0, 1)
	blueLCh, err := Convert(blue, SpaceOKLCh, false)
	if err != nil {
		t.Fatal(err)
	}

	got := mustMix(t, Operand(white), Operand(blue), SpaceOKLCh, HueLonger)
	if !approx(got[2], blueLCh[2], 1e-9) {
		t.Errorf("hue = %g, want blue's hue %g", got[2], blueLCh[2])
	}

	grey := MustFromNumbers(SpaceSRGB, 0.5, 0.5, 0.5)
	got = mustMix(t, Operand(grey), Operand(MustFromNumbers(SpaceHSL, 200, 80, 40)), SpaceHSL, HueShorter)
	if got[0] != 200 {
		t.Errorf("hsl hue = %g, want 200", got[0])
	}
}

func TestMixPercentages(t *testing.T) {
	a := MustFromNumbers(SpaceSRGB, 1, 0, 0)
	b := MustFromNumbers(SpaceSRGB, 0, 0, 1)

	tests := []struct {
		name      string
		pa, pb    float64
		hasA      bool
		hasB      bool
		wantRed   float64
		wantAlpha float64
	}{
		{name: "default", wantRed: 0.5, wantAlpha: 1},
		{name: "first only", pa: 25, hasA: true, wantRed: 0.25, wantAlpha: 1},
		{name: "second only", pb: 25, hasB: true, wantRed: 0.75, wantAlpha: 1},
		{name: "normalised above 100", pa: 80, pb: 80, hasA: true, hasB: true, wantRed: 0.5, wantAlpha: 1},
		{name: "sum below 100 scales alpha", pa: 20, pb: 20, hasA: true, hasB: true, wantRed: 0.5, wantAlpha: 0.4},
		{name: "uneven", pa: 30, pb: 10, hasA: true, hasB: true, wantRed: 0.75, wantAlpha: 0.4},
		{name: "all of one side", pa: 100, pb: 0, hasA: true, hasB: true, wantRed: 1, wantAlpha: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oa, ob := Operand(a), Operand(b)
			if tt.hasA {
				oa = oa.WithPercent(tt.pa)
			}
			if tt.hasB {
				ob = ob.WithPercent(tt.pb)
			}
			got := mustMix(t, oa, ob, SpaceSRGB, HueShorter)
			if !approx(got[0], tt.wantRed, 1e-12) || !approx(got[3], tt.wantAlpha, 1e-12) {
				t.Errorf("Mix() = %v, want red %g alpha %g", got, tt.wantRed, tt.wantAlpha)
			}
		})
	}
}

func TestMixErrors(t *testing.T) {
	red := Operand(MustFromNumbers(SpaceSRGB, 1, 0, 0))
	blue := Operand(MustFromNumbers(SpaceSRGB, 0, 0, 1))
	unresolved, _ := NewValue(SpaceSRGB, Number(1), Unresolved(), Number(0))
	custom, _ := NewValue("--brand", Number(0.5))

	tests := []struct {
		name    string
		a, b    MixOperand
		space   Space
		wantErr error
	}{
		{name: "percentages sum to zero", a: red.WithPercent(0), b: blue.WithPercent(0), space: SpaceSRGB, wantErr: ErrInvalidState},
		{name: "negative percentage", a: red.WithPercent(-10), b: blue, space: SpaceSRGB, wantErr: ErrInvalidState},
		{name: "percentage above 100", a: red, b: blue.WithPercent(120), space: SpaceSRGB, wantErr: ErrInvalidState},
		{name: "unresolved operand", a: red, b: Operand(unresolved), space: SpaceOKLab, wantErr: ErrInvalidState},
		{name: "custom operand", a: Operand(custom), b: blue, space: SpaceOKLab, wantErr: ErrInvalidState},
		{name: "keyword without table", a: KeywordOperand("red"), b: blue, space: SpaceOKLab, wantErr: ErrInvalidState},
		{name: "empty operand", a: MixOperand{}, b: blue, space: SpaceOKLab, wantErr: ErrInvalidState},
		{name: "custom space", a: red, b: blue, space: "--brand", wantErr: ErrUnsupported},
		{name: "unknown space", a: red, b: blue, space: "cmyk", wantErr: ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Mix(tt.a, tt.b, tt.space, HueShorter); !errors.Is(err, tt.wantErr) {
				t.Errorf("Mix() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewMixerRejectsAtDeclaration(t *testing.T) {
	if _, err := NewMixer("--brand", HueShorter); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NewMixer(--brand) error = %v, want ErrUnsupported", err)
	}
	if _, err := NewMixer(SpaceOKLCh, HueMethod(9)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NewMixer(bad hue) error = %v, want ErrUnsupported", err)
	}

	m, err := NewMixer("OKLCH", HueLonger)
	if err != nil {
		t.Fatalf("NewMixer() error = %v", err)
	}
	if m.Space() != SpaceOKLCh || m.HueMethod() != HueLonger {
		t.Errorf("NewMixer() = %s %s", m.Space(), m.HueMethod())
	}
}

func TestMixerKeywords(t *testing.T) {
	table := stubKeywords{
		"white": MustFromNumbers(SpaceSRGB, 1, 1, 1),
		"black": MustFromNumbers(SpaceSRGB, 0, 0, 0),
	}
	m, err := NewMixer(SpaceSRGB, HueShorter, WithKeywords(table))
	if err != nil {
		t.Fatal(err)
	}

	v, err := m.Mix(KeywordOperand("white").WithPercent(75), KeywordOperand("black"))
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}
	got, _ := v.Numbers()
	if !componentsApprox(SpaceSRGB, got, []float64{0.75, 0.75, 0.75, 1}, 1e-12) {
		t.Errorf("Mix() = %v", got)
	}

	if _, err := m.Mix(KeywordOperand("chartreuse"), KeywordOperand("black")); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Mix(unknown keyword) error = %v, want ErrInvalidState", err)
	}
}

func TestMixDoesNotModifyOperands(t *testing.T) {
	a, _ := NewValue(SpaceLCh, Number(50), NoneComponent(), Number(120))
	before := a.String()
	if _, err := Mix(Operand(a), Operand(MustFromNumbers(SpaceSRGB, 0, 0, 1)), SpaceOKLCh, HueShorter); err != nil {
		t.Fatal(err)
	}
	if a.String() != before {
		t.Errorf("operand changed from %s to %s", before, a)
	}
}

func TestParseHueMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    HueMethod
		wantErr bool
	}{
		{in: "", want: HueShorter},
		{in: "shorter", want: HueShorter},
		{in: "longer hue", want: HueLonger},
		{in: "INCREASING", want: HueIncreasing},
		{in: " decreasing hue ", want: HueDecreasing},
		{in: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHueMethod(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHueMethod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseHueMethod(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
