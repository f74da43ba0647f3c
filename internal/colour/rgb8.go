package colour

import (
	"fmt"
	"image/color"
	"math"
)

// RGB8 is an 8-bit sRGB colour with straight (non-premultiplied) alpha.
type RGB8 struct {
	R, G, B, A uint8
}

// String returns the colour in CSS rgb() notation.
func (c RGB8) String() string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgb(%d, %d, %d, %s)", c.R, c.G, c.B, Number(float64(c.A)/255).String())
}

// Hex returns the colour as #rrggbb, or #rrggbbaa when not opaque.
func (c RGB8) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color.
func (c RGB8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Value returns c as an sRGB colour.
func (c RGB8) Value() *Value {
	return MustFromNumbers(SpaceSRGB,
		float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

// ToRGB8 converts v to gamut mapped sRGB and quantises it to bytes.
func ToRGB8(v *Value) (RGB8, error) {
	nums, err := v.ToSRGB(true)
	if err != nil {
		return RGB8{}, err
	}
	return RGB8{
		R: toByte(nums[0]),
		G: toByte(nums[1]),
		B: toByte(nums[2]),
		A: toByte(nums[3]),
	}, nil
}

// RGB8FromColor converts any color.Color to RGB8.
func RGB8FromColor(c color.Color) RGB8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB8{R: n.R, G: n.G, B: n.B, A: n.A}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}
