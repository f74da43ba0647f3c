package colour

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestGamutMappingLandsInGamut(t *testing.T) {
	sources := []*Value{
		MustFromNumbers(SpaceDisplayP3, 1, 0, 0),
		MustFromNumbers(SpaceRec2020, 0, 1, 0),
		MustFromNumbers(SpaceProPhotoRGB, 0.1, 0.2, 0.95),
		MustFromNumbers(SpaceLab, 50, 150, 0),
		MustFromNumbers(SpaceLCh, 90, 130, 250),
		MustFromNumbers(SpaceOKLCh, 0.7, 0.4, 30),
		MustFromNumbers(SpaceOKLab, 0.2, -0.3, 0.3),
		MustFromNumbers(SpaceLab, 40, 1000, -1000),
		MustFromNumbers(SpaceXYZD65, 0.1, 0.9, 0.1),
	}
	targets := []Space{SpaceSRGB, SpaceDisplayP3, SpaceA98RGB, SpaceRec2020, SpaceHSL, SpaceHWB}

	for _, target := range targets {
		t.Run(string(target), func(t *testing.T) {
			for _, src := range sources {
				mapped, err := ConvertValue(src, target, true)
				if err != nil {
					t.Fatalf("ConvertValue(%s) error = %v", src, err)
				}
				in, err := IsInGamut(mapped, target)
				if err != nil {
					t.Fatalf("IsInGamut() error = %v", err)
				}
				if !in {
					t.Errorf("%s mapped to %s, which is out of gamut", src, mapped)
				}
			}
		})
	}
}

func TestGamutMappingKeepsInGamutColours(t *testing.T) {
	v := MustFromNumbers(SpaceLab, 50, 20, -30)
	want, err := Convert(v, SpaceSRGB, false)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Convert(v, SpaceSRGB, true)
	if err != nil {
		t.Fatal(err)
	}
	if !componentsApprox(SpaceSRGB, got, want, 0) {
		t.Errorf("clamped = %v, want %v", got, want)
	}
}

func TestGamutMappingLightnessExtremes(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want []float64
	}{
		{name: "lab white with chroma", v: MustFromNumbers(SpaceLab, 100, 50, 0), want: []float64{1, 1, 1, 1}},
		{name: "lab beyond white", v: MustFromNumbers(SpaceLab, 120, 0, 80), want: []float64{1, 1, 1, 1}},
		{name: "lab black with chroma", v: MustFromNumbers(SpaceLab, 0, 20, 90), want: []float64{0, 0, 0, 1}},
		{name: "oklch beyond white", v: MustFromNumbers(SpaceOKLCh, 1.2, 0.1, 30), want: []float64{1, 1, 1, 1}},
		{name: "oklab negative lightness", v: MustFromNumbers(SpaceOKLab, -0.1, 0.2, 0), want: []float64{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.v, SpaceSRGB, true)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !componentsApprox(SpaceSRGB, got, tt.want, 0) {
				t.Errorf("Convert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGamutMappingPreservesHue(t *testing.T) {
	got, err := Convert(MustFromNumbers(SpaceDisplayP3, 1, 0, 0), SpaceSRGB, true)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] < got[1] || got[0] < got[2] {
		t.Errorf("mapped display-p3 red = %v, want red to dominate", got)
	}

	mapped := MustFromNumbers(SpaceSRGB, got[0], got[1], got[2])
	de, err := DeltaE2000(mapped, MustFromNumbers(SpaceDisplayP3, 1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if de > 20 {
		t.Errorf("ΔE2000 to the source = %g, want a close match", de)
	}
}

func TestGamutMappingLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Trace,
		Output: &buf,
	}))
	defer SetLogger(nil)

	if _, err := Convert(MustFromNumbers(SpaceOKLCh, 0.7, 0.4, 30), SpaceSRGB, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "gamut mapped") {
		t.Errorf("log output %q does not mention gamut mapping", buf.String())
	}
}

func TestMapToGamut(t *testing.T) {
	tests := []struct {
		name   string
		v      *Value
		target Space
		want   []float64
	}{
		{name: "srgb beyond red", v: MustFromNumbers(SpaceSRGB, 1.2, 0, 0), target: SpaceSRGB},
		{name: "display-p3 beyond red", v: MustFromNumbers(SpaceDisplayP3, 1.2, 0, 0), target: SpaceDisplayP3},
		{name: "srgb negative green", v: MustFromNumbers(SpaceSRGB, 0.5, -0.3, 0.5), target: SpaceSRGB},
		{name: "srgb beyond white", v: MustFromNumbers(SpaceSRGB, 1.2, 1.2, 1.2), target: SpaceSRGB, want: []float64{1, 1, 1, 1}},
		{name: "hsl from srgb", v: MustFromNumbers(SpaceSRGB, 1.2, 0, 0), target: SpaceHSL},
		{name: "in gamut unchanged", v: MustFromNumbers(SpaceSRGB, 0.2, 0.4, 0.6, 0.5), target: SpaceSRGB, want: []float64{0.2, 0.4, 0.6, 0.5}},
		{name: "lab unbounded", v: MustFromNumbers(SpaceLab, 50, 150, 0), target: SpaceLab, want: []float64{50, 150, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped, err := MapToGamut(tt.v, tt.target)
			if err != nil {
				t.Fatalf("MapToGamut() error = %v", err)
			}
			if mapped.Space() != tt.target {
				t.Fatalf("space = %s, want %s", mapped.Space(), tt.target)
			}
			in, err := IsInGamut(mapped, tt.target)
			if err != nil {
				t.Fatal(err)
			}
			if !in {
				t.Errorf("MapToGamut() = %s, which is out of gamut", mapped)
			}
			if tt.want == nil {
				return
			}
			got, err := mapped.Numbers()
			if err != nil {
				t.Fatal(err)
			}
			if !componentsApprox(tt.target, got, tt.want, 1e-9) {
				t.Errorf("MapToGamut() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapToGamutKeepsNoneAlpha(t *testing.T) {
	v := MustFromNumbers(SpaceSRGB, 1.2, 0, 0)
	v.SetAlpha(NoneComponent())

	mapped, err := MapToGamut(v, SpaceSRGB)
	if err != nil {
		t.Fatal(err)
	}
	if !mapped.Alpha().IsNone() {
		t.Errorf("alpha = %v, want none", mapped.Alpha())
	}

	// Convert keeps same-space colours exact even when clamping.
	got, err := Convert(MustFromNumbers(SpaceSRGB, 1.2, 0, 0), SpaceSRGB, true)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 1.2 {
		t.Errorf("Convert() = %v, want the input unchanged", got)
	}
}

func TestGamutMappingIterationCap(t *testing.T) {
	saved := maxGamutIterations
	maxGamutIterations = 3
	t.Cleanup(func() { maxGamutIterations = saved })

	var buf bytes.Buffer
	SetLogger(hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Warn,
		Output: &buf,
	}))
	defer SetLogger(nil)

	got, err := Convert(MustFromNumbers(SpaceLab, 50, 150, 0), SpaceSRGB, true)
	if err != nil {
		t.Fatal(err)
	}
	for i, ch := range got[:3] {
		if ch < 0 || ch > 1 {
			t.Errorf("channel %d = %g, want it clipped to [0, 1]", i, ch)
		}
	}
	if !strings.Contains(buf.String(), "gamut mapping did not converge") {
		t.Errorf("log output %q does not warn about the iteration cap", buf.String())
	}
}
