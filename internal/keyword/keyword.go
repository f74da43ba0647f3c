// Package keyword resolves CSS colour keywords: the named colours, the
// "transparent" keyword and the CSS system colours.
package keyword

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/jmylchreest/csscolour/internal/colour"
)

// Kind classifies a keyword.
type Kind uint8

const (
	KindNamed Kind = iota
	KindSystem
	KindTransparent
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindSystem:
		return "system"
	case KindTransparent:
		return "transparent"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// currentColor depends on the element being styled.
const currentColor = "currentcolor"

// cssNamed adds the CSS named colours that postdate the SVG 1.1 list.
var cssNamed = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

// systemColors holds the CSS system colours for a light colour scheme, using
// the values common browsers ship.
var systemColors = map[string]color.RGBA{
	"accentcolor":      {R: 0x00, G: 0x75, B: 0xff, A: 0xff},
	"accentcolortext":  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"activetext":       {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"buttonborder":     {R: 0x76, G: 0x76, B: 0x76, A: 0xff},
	"buttonface":       {R: 0xef, G: 0xef, B: 0xef, A: 0xff},
	"buttontext":       {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"canvas":           {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"canvastext":       {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"field":            {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"fieldtext":        {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"graytext":         {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"highlight":        {R: 0xb5, G: 0xd5, B: 0xff, A: 0xff},
	"highlighttext":    {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"linktext":         {R: 0x00, G: 0x00, B: 0xee, A: 0xff},
	"mark":             {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	"marktext":         {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"selecteditem":     {R: 0x00, G: 0x75, B: 0xff, A: 0xff},
	"selecteditemtext": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"visitedtext":      {R: 0x55, G: 0x1a, B: 0x8b, A: 0xff},
}

// Entry is a resolved keyword.
type Entry struct {
	Name string
	Kind Kind
	RGB  colour.RGB8
}

// Table looks keywords up case-insensitively. The zero value is not usable;
// create one with New. A Table is safe for concurrent use.
type Table struct {
	entries map[string]Entry
	names   []string
}

// Option configures a Table.
type Option func(*Table)

// WithoutSystemColors drops the system colours from the table.
func WithoutSystemColors() Option {
	return func(t *Table) {
		for name, e := range t.entries {
			if e.Kind == KindSystem {
				delete(t.entries, name)
			}
		}
	}
}

// WithColor adds or replaces a named colour.
func WithColor(name string, c color.Color) Option {
	return func(t *Table) {
		key := fold(name)
		t.entries[key] = Entry{Name: key, Kind: KindNamed, RGB: colour.RGB8FromColor(c)}
	}
}

// New builds a keyword table.
func New(opts ...Option) *Table {
	t := &Table{entries: make(map[string]Entry, len(colornames.Map)+len(systemColors)+1)}
	for name, c := range colornames.Map {
		t.entries[name] = Entry{Name: name, Kind: KindNamed, RGB: colour.RGB8FromColor(c)}
	}
	for name, c := range cssNamed {
		t.entries[name] = Entry{Name: name, Kind: KindNamed, RGB: colour.RGB8FromColor(c)}
	}
	for name, c := range systemColors {
		t.entries[name] = Entry{Name: name, Kind: KindSystem, RGB: colour.RGB8FromColor(c)}
	}
	t.entries["transparent"] = Entry{Name: "transparent", Kind: KindTransparent}

	for _, opt := range opts {
		opt(t)
	}

	t.names = make([]string, 0, len(t.entries))
	for name := range t.entries {
		t.names = append(t.names, name)
	}
	slices.Sort(t.names)
	return t
}

// Default is the table with every CSS keyword.
var Default = New()

// Entry returns the entry for name.
func (t *Table) Entry(name string) (Entry, error) {
	key := fold(name)
	if key == currentColor {
		return Entry{}, fmt.Errorf("%w: %s depends on the element being styled", colour.ErrInvalidState, name)
	}
	e, ok := t.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: unknown colour keyword %q", colour.ErrInvalidState, name)
	}
	return e, nil
}

// Lookup resolves name to an sRGB colour. It implements colour.KeywordTable.
// "currentcolor" and unknown names fail with colour.ErrInvalidState.
func (t *Table) Lookup(name string) (*colour.Value, error) {
	e, err := t.Entry(name)
	if err != nil {
		return nil, err
	}
	return e.RGB.Value(), nil
}

// Contains reports whether name is a keyword this table resolves.
func (t *Table) Contains(name string) bool {
	_, ok := t.entries[fold(name)]
	return ok
}

// Names returns every keyword in lexical order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

func fold(name string) string {
	// cases.Caser is stateful, so make one per call.
	return cases.Fold().String(strings.TrimSpace(name))
}
