package colour

import "errors"

var (
	// ErrUnsupported is returned when a colour space, profile or method has no
	// implementation. It is never worth retrying.
	ErrUnsupported = errors.New("unsupported")

	// ErrInvalidState is returned when a colour cannot be resolved to numbers:
	// a leftover unresolved expression, a component of the wrong type, or a
	// degenerate percentage sum in a mix. It only fails the call that hit it.
	ErrInvalidState = errors.New("invalid state")
)
