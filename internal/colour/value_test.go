package colour

import (
	"errors"
	"testing"
)

func TestNewValue(t *testing.T) {
	tests := []struct {
		name    string
		space   Space
		comps   []Component
		wantErr error
	}{
		{name: "lab", space: SpaceLab, comps: []Component{Number(50), Number(0), Number(0)}},
		{name: "case insensitive", space: "OKLab", comps: []Component{Number(0.5), Number(0), Number(0)}},
		{name: "custom with four channels", space: "--cmyk", comps: []Component{Number(0), Number(0), Number(0), Number(1)}},
		{name: "too few", space: SpaceSRGB, comps: []Component{Number(1), Number(1)}, wantErr: ErrInvalidState},
		{name: "too many", space: SpaceHSL, comps: []Component{Number(1), Number(1), Number(1), Number(1)}, wantErr: ErrInvalidState},
		{name: "custom empty", space: "--cmyk", wantErr: ErrInvalidState},
		{name: "unknown space", space: "cmyk", comps: []Component{Number(1), Number(1), Number(1)}, wantErr: ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewValue(tt.space, tt.comps...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewValue() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewValue() unexpected error: %v", err)
			}
			if v.Len() != len(tt.comps) {
				t.Errorf("Len() = %d, want %d", v.Len(), len(tt.comps))
			}
			if v.Alpha() != Number(1) {
				t.Errorf("Alpha() = %v, want 1", v.Alpha())
			}
		})
	}
}

func TestFromNumbers(t *testing.T) {
	v, err := FromNumbers(SpaceSRGB, 0.1, 0.2, 0.3, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if v.Alpha() != Number(0.4) {
		t.Errorf("Alpha() = %v, want 0.4", v.Alpha())
	}

	if _, err := FromNumbers(SpaceSRGB, 1, 2, 3, 4, 5); !errors.Is(err, ErrInvalidState) {
		t.Errorf("FromNumbers(5 numbers) error = %v, want ErrInvalidState", err)
	}
	if _, err := FromNumbers(SpaceSRGB, 1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("FromNumbers(1 number) error = %v, want ErrInvalidState", err)
	}

	custom, err := FromNumbers("--ink", 0.5, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if custom.Len() != 2 || custom.Alpha() != Number(1) {
		t.Errorf("custom FromNumbers = %s", custom)
	}
}

func TestValueMutation(t *testing.T) {
	v := MustFromNumbers(SpaceLab, 50, 10, 20)
	c := v.Copy()

	if err := v.SetComponent(1, NoneComponent()); err != nil {
		t.Fatal(err)
	}
	if !v.Component(1).IsNone() {
		t.Error("SetComponent did not take effect")
	}
	if c.Component(1).IsNone() {
		t.Error("Copy shares components with the original")
	}

	if err := v.SetComponent(3, Number(1)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SetComponent(3) error = %v, want ErrInvalidState", err)
	}
	if err := v.SetComponents(Number(1), Number(2)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SetComponents(2) error = %v, want ErrInvalidState", err)
	}

	comps := v.Components()
	comps[0] = Number(99)
	if v.Component(0) != Number(50) {
		t.Error("Components returned the internal slice")
	}
}

func TestValueString(t *testing.T) {
	half := MustFromNumbers(SpaceDisplayP3, 1, 0, 0)
	half.SetAlpha(Number(0.5))
	hsl, _ := NewValue(SpaceHSL, Number(120), Percentage(100), Percentage(50))
	withNone, _ := NewValue(SpaceOKLCh, Number(0.7), NoneComponent(), Number(30))
	custom, _ := NewValue("--ink", Number(0.25), Unresolved())

	tests := []struct {
		v    *Value
		want string
	}{
		{v: MustFromNumbers(SpaceLab, 50, 20, -10), want: "lab(50 20 -10)"},
		{v: half, want: "color(display-p3 1 0 0 / 0.5)"},
		{v: hsl, want: "hsl(120 100% 50%)"},
		{v: withNone, want: "oklch(0.7 none 30)"},
		{v: MustFromNumbers(SpaceXYZ, 0.5, 0.25, 0), want: "color(xyz-d65 0.5 0.25 0)"},
		{v: custom, want: "color(--ink 0.25 <unresolved>)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueModel(t *testing.T) {
	tests := []struct {
		space Space
		want  Model
		polar bool
	}{
		{space: SpaceSRGB, want: ModelRGB},
		{space: SpaceProPhotoRGB, want: ModelRGB},
		{space: SpaceHSL, want: ModelHSL, polar: true},
		{space: SpaceHWB, want: ModelHWB, polar: true},
		{space: SpaceOKLab, want: ModelLab},
		{space: SpaceLCh, want: ModelLCh, polar: true},
		{space: SpaceXYZD50, want: ModelXYZ},
		{space: "--ink", want: ModelProfile},
	}

	for _, tt := range tests {
		t.Run(string(tt.space), func(t *testing.T) {
			if got := tt.space.Model(); got != tt.want {
				t.Errorf("Model() = %s, want %s", got, tt.want)
			}
			if got := tt.space.IsPolar(); got != tt.polar {
				t.Errorf("IsPolar() = %v, want %v", got, tt.polar)
			}
		})
	}
}

func TestValueHelpers(t *testing.T) {
	v := MustFromNumbers(SpaceSRGB, 1, 1, 1)
	xyz, err := v.ToXYZ()
	if err != nil {
		t.Fatal(err)
	}
	if !vecApprox(xyz, D65.vec(), 1e-9) {
		t.Errorf("ToXYZ() = %v, want D65 white", xyz)
	}

	rgb, err := MustFromNumbers(SpaceDisplayP3, 0, 1, 0).ToSRGB(true)
	if err != nil {
		t.Fatal(err)
	}
	for i, ch := range rgb[:3] {
		if ch < 0 || ch > 1 {
			t.Errorf("ToSRGB(clamp) channel %d = %g, outside [0, 1]", i, ch)
		}
	}
}
