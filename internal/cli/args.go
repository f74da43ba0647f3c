package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/csscolour/internal/colour"
	"github.com/jmylchreest/csscolour/internal/util"
)

// ParseColour parses a colour argument. It accepts hex colours ("#f80",
// "#ff880080"), CSS functional notation ("rgb(255 128 0)", "lab(50 20 -30 /
// 0.5)", "color(display-p3 1 0 0)"), a space name followed by components
// ("oklch 0.7 0.1 30") and, when keywords is not nil, colour keywords.
//
// Components are numbers, percentages or "none". Hues also take the deg, rad,
// grad and turn units. Commas are accepted wherever CSS allows whitespace.
func ParseColour(arg string, keywords colour.KeywordTable) (*colour.Value, error) {
	s := strings.TrimSpace(arg)
	if s == "" {
		return nil, fmt.Errorf("%w: empty colour", colour.ErrInvalidState)
	}

	if strings.HasPrefix(s, "#") {
		c, err := parseHex(s)
		if err != nil {
			return nil, err
		}
		return c.Value(), nil
	}

	if open := strings.IndexByte(s, '('); open > 0 {
		if !strings.HasSuffix(s, ")") {
			return nil, fmt.Errorf("%w: unbalanced parentheses in %q", colour.ErrInvalidState, arg)
		}
		fn := strings.ToLower(strings.TrimSpace(s[:open]))
		tokens := tokenize(s[open+1 : len(s)-1])
		switch fn {
		case "color":
			if len(tokens) == 0 {
				return nil, fmt.Errorf("%w: color() needs a colour space", colour.ErrInvalidState)
			}
			return build(tokens[0], tokens[1:], false)
		case "rgb", "rgba":
			return build(string(colour.SpaceSRGB), tokens, true)
		case "hsla":
			return build(string(colour.SpaceHSL), tokens, false)
		default:
			return build(fn, tokens, false)
		}
	}

	if fields := tokenize(s); len(fields) > 1 {
		return build(fields[0], fields[1:], false)
	}

	if keywords == nil {
		return nil, fmt.Errorf("%w: cannot parse colour %q", colour.ErrInvalidState, arg)
	}
	return keywords.Lookup(s)
}

// parseHex accepts #rgb, #rgba, #rrggbb and #rrggbbaa.
func parseHex(s string) (colour.RGB8, error) {
	hex := util.StripHash(s)
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colour.RGB8{}, fmt.Errorf("%w: invalid hex colour %q", colour.ErrInvalidState, s)
	}

	switch len(hex) {
	case 3:
		return colour.RGB8{R: uint8(n>>8) * 17, G: uint8(n>>4&0xf) * 17, B: uint8(n&0xf) * 17, A: 255}, nil
	case 4:
		return colour.RGB8{R: uint8(n>>12) * 17, G: uint8(n>>8&0xf) * 17, B: uint8(n>>4&0xf) * 17, A: uint8(n&0xf) * 17}, nil
	case 6:
		return colour.RGB8{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
	case 8:
		return colour.RGB8{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
	}
	return colour.RGB8{}, fmt.Errorf("%w: hex colour %q must have 3, 4, 6 or 8 digits", colour.ErrInvalidState, s)
}

// tokenize splits a component list on whitespace and commas, keeping "/" as
// its own token.
func tokenize(body string) []string {
	body = strings.ReplaceAll(body, "/", " / ")
	return strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func build(spaceName string, tokens []string, rgb255 bool) (*colour.Value, error) {
	space, err := colour.ParseSpace(spaceName)
	if err != nil {
		return nil, err
	}

	var alpha string
	for i, tok := range tokens {
		if tok != "/" {
			continue
		}
		if i != len(tokens)-2 {
			return nil, fmt.Errorf("%w: expected exactly one alpha after /", colour.ErrInvalidState)
		}
		alpha = tokens[i+1]
		tokens = tokens[:i]
		break
	}
	// A fourth component on a three-component space is alpha, as in legacy
	// rgba(r, g, b, a).
	if alpha == "" && !space.IsCustom() && len(tokens) == 4 {
		alpha = tokens[3]
		tokens = tokens[:3]
	}

	hue := space.HueIndex()
	comps := make([]colour.Component, len(tokens))
	for i, tok := range tokens {
		c, err := parseComponent(tok, i == hue)
		if err != nil {
			return nil, err
		}
		if rgb255 && c.Kind == colour.KindNumber {
			c.Value /= 255
		}
		comps[i] = c
	}

	v, err := colour.NewValue(space, comps...)
	if err != nil {
		return nil, err
	}
	if alpha != "" {
		a, err := parseComponent(alpha, false)
		if err != nil {
			return nil, err
		}
		v.SetAlpha(a)
	}
	return v, nil
}

var angleUnits = []struct {
	suffix string
	toDeg  float64
}{
	// grad before rad so the longer suffix wins.
	{"deg", 1},
	{"grad", 0.9},
	{"rad", 180 / math.Pi},
	{"turn", 360},
}

func parseComponent(tok string, hue bool) (colour.Component, error) {
	low := strings.ToLower(tok)
	if low == "none" {
		return colour.NoneComponent(), nil
	}
	if num, ok := strings.CutSuffix(low, "%"); ok {
		f, err := parseNumber(num, tok)
		return colour.Percentage(f), err
	}
	if hue {
		for _, u := range angleUnits {
			if num, ok := strings.CutSuffix(low, u.suffix); ok {
				f, err := parseNumber(num, tok)
				return colour.Number(f * u.toDeg), err
			}
		}
	}
	f, err := parseNumber(low, tok)
	return colour.Number(f), err
}

func parseNumber(s, tok string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: invalid component %q", colour.ErrInvalidState, tok)
	}
	return f, nil
}
