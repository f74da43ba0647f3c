package colour

import (
	"fmt"
	"strconv"
)

// ComponentKind tags the resolved form of a colour component.
type ComponentKind uint8

const (
	// KindNumber is a plain number in the component's reference range.
	KindNumber ComponentKind = iota
	// KindPercentage is a percentage of the component's reference range.
	KindPercentage
	// KindNone is the CSS "none" keyword: explicitly indeterminate, not zero.
	KindNone
	// KindUnresolved marks a value the collaborator could not reduce to a
	// number, such as a leftover var() or calc() expression.
	KindUnresolved
)

// String returns the kind name.
func (k ComponentKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindPercentage:
		return "percentage"
	case KindNone:
		return "none"
	case KindUnresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("ComponentKind(%d)", uint8(k))
	}
}

// Component is one channel of a colour value.
type Component struct {
	Kind  ComponentKind
	Value float64
}

// Number returns a number component.
func Number(v float64) Component { return Component{Kind: KindNumber, Value: v} }

// Percentage returns a percentage component; 50 means 50%.
func Percentage(v float64) Component { return Component{Kind: KindPercentage, Value: v} }

// NoneComponent returns a "none" component.
func NoneComponent() Component { return Component{Kind: KindNone} }

// Unresolved returns a component that cannot be used numerically.
func Unresolved() Component { return Component{Kind: KindUnresolved} }

// opaque is the default alpha. Component is a value type, so every colour
// gets its own copy.
var opaque = Number(1)

// IsNone reports whether c is the "none" keyword.
func (c Component) IsNone() bool { return c.Kind == KindNone }

// String formats c the way it would appear in CSS.
func (c Component) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Value, 'f', -1, 64)
	case KindPercentage:
		return strconv.FormatFloat(c.Value, 'f', -1, 64) + "%"
	case KindNone:
		return "none"
	default:
		return "<unresolved>"
	}
}

// resolve returns the number c stands for. ref is what 100% means for the
// component; zero forbids percentages (hues). "none" resolves to zero.
func (c Component) resolve(ref float64) (float64, error) {
	switch c.Kind {
	case KindNumber:
		return c.Value, nil
	case KindPercentage:
		if ref == 0 {
			return 0, fmt.Errorf("%w: percentage %s not allowed here", ErrInvalidState, c)
		}
		return c.Value / 100 * ref, nil
	case KindNone:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %s component", ErrInvalidState, c.Kind)
	}
}
