package keyword

import (
	"errors"
	"image/color"
	"slices"
	"testing"

	"github.com/jmylchreest/csscolour/internal/colour"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    colour.RGB8
		wantErr error
	}{
		{name: "red", want: colour.RGB8{R: 255, A: 255}},
		{name: "RebeccaPurple", want: colour.RGB8{R: 0x66, G: 0x33, B: 0x99, A: 255}},
		{name: "  white ", want: colour.RGB8{R: 255, G: 255, B: 255, A: 255}},
		{name: "transparent", want: colour.RGB8{}},
		{name: "CanvasText", want: colour.RGB8{A: 255}},
		{name: "LinkText", want: colour.RGB8{B: 0xee, A: 255}},
		{name: "currentcolor", wantErr: colour.ErrInvalidState},
		{name: "currentColor", wantErr: colour.ErrInvalidState},
		{name: "notacolour", wantErr: colour.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Default.Lookup(tt.name)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Lookup(%q) error = %v, want %v", tt.name, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.name, err)
			}
			if v.Space() != colour.SpaceSRGB {
				t.Errorf("Lookup(%q) space = %s, want srgb", tt.name, v.Space())
			}
			got, err := colour.ToRGB8(v)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookupReturnsIndependentValues(t *testing.T) {
	a, _ := Default.Lookup("red")
	if err := a.SetComponent(0, colour.Number(0)); err != nil {
		t.Fatal(err)
	}
	b, _ := Default.Lookup("red")
	if b.Component(0) != colour.Number(1) {
		t.Error("modifying one lookup result changed the table")
	}
}

func TestEntryKinds(t *testing.T) {
	tests := map[string]Kind{
		"navy":        KindNamed,
		"buttonface":  KindSystem,
		"transparent": KindTransparent,
	}
	for name, want := range tests {
		e, err := Default.Entry(name)
		if err != nil {
			t.Fatalf("Entry(%q) error = %v", name, err)
		}
		if e.Kind != want {
			t.Errorf("Entry(%q).Kind = %s, want %s", name, e.Kind, want)
		}
	}
}

func TestOptions(t *testing.T) {
	table := New(WithoutSystemColors(), WithColor("Brand", color.RGBA{R: 1, G: 2, B: 3, A: 255}))

	if table.Contains("canvas") {
		t.Error("WithoutSystemColors kept canvas")
	}
	if !table.Contains("red") {
		t.Error("named colours missing")
	}
	v, err := table.Lookup("BRAND")
	if err != nil {
		t.Fatalf("Lookup(BRAND) error = %v", err)
	}
	if got, _ := colour.ToRGB8(v); got != (colour.RGB8{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Lookup(BRAND) = %+v", got)
	}

	names := table.Names()
	if !slices.IsSorted(names) {
		t.Error("Names() not sorted")
	}
	if !slices.Contains(names, "brand") || slices.Contains(names, "canvas") {
		t.Errorf("Names() = %v", names)
	}
}

func TestMixWithKeywords(t *testing.T) {
	m, err := colour.NewMixer(colour.SpaceSRGB, colour.HueShorter, colour.WithKeywords(Default))
	if err != nil {
		t.Fatal(err)
	}
	v, err := m.Mix(colour.KeywordOperand("white"), colour.KeywordOperand("black"))
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}
	got, _ := colour.ToRGB8(v)
	if got.Hex() != "#808080" {
		t.Errorf("Mix(white, black) = %s, want #808080", got.Hex())
	}

	if _, err := m.Mix(colour.KeywordOperand("currentcolor"), colour.KeywordOperand("black")); !errors.Is(err, colour.ErrInvalidState) {
		t.Errorf("Mix(currentcolor) error = %v, want ErrInvalidState", err)
	}
}
