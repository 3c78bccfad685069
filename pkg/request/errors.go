package request

import "errors"

var (
	// ErrNotIntegral is returned when a manifest names a type that is not a
	// fixed-width integral type.
	ErrNotIntegral = errors.New("request: type is not integral")
	// ErrOutOfRange is returned when a value does not fit its declared type.
	ErrOutOfRange = errors.New("request: value out of range")
	// ErrInvalidName is returned when a request name is not a Go identifier.
	ErrInvalidName = errors.New("request: name is not a valid Go identifier")
	// ErrDuplicateName is returned when two requests share a name.
	ErrDuplicateName = errors.New("request: duplicate name")
)
