package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/csscolour/internal/colour"
)

// spaceValue is a pflag.Value holding a colour space.
// Only built-in spaces are accepted.
type spaceValue struct {
	space *colour.Space
}

var (
	_ pflag.Value = (*spaceValue)(nil)
	_ pflag.Value = (*hueValue)(nil)
)

func newSpaceValue(def colour.Space, p *colour.Space) *spaceValue {
	*p = def
	return &spaceValue{space: p}
}

func (v *spaceValue) String() string { return string(*v.space) }

func (v *spaceValue) Set(s string) error {
	space, err := colour.ParseSpace(s)
	if err != nil {
		return err
	}
	if !space.Known() {
		return fmt.Errorf("%w: %s has no built-in conversions", colour.ErrUnsupported, space)
	}
	*v.space = space
	return nil
}

func (v *spaceValue) Type() string { return "space" }

// hueValue is a pflag.Value holding a hue interpolation method.
type hueValue struct {
	hue *colour.HueMethod
}

func newHueValue(def colour.HueMethod, p *colour.HueMethod) *hueValue {
	*p = def
	return &hueValue{hue: p}
}

func (v *hueValue) String() string { return v.hue.String() }

func (v *hueValue) Set(s string) error {
	h, err := colour.ParseHueMethod(s)
	if err != nil {
		return err
	}
	*v.hue = h
	return nil
}

func (v *hueValue) Type() string { return "hue" }

// spaceNames lists the built-in spaces for help text.
func spaceNames() string {
	names := make([]string, 0, len(colour.Spaces()))
	for _, s := range colour.Spaces() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
