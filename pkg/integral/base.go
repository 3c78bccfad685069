package integral

import (
	"errors"
	"fmt"
)

// ErrInvalidBase is returned when a base falls outside [MinBase, MaxBase].
var ErrInvalidBase = errors.New("integral: base must be between 2 and 16")

// Base is the radix used when formatting.
type Base uint8

const (
	Binary  Base = 2
	Octal   Base = 8
	Decimal Base = 10
	Hex     Base = 16

	MinBase Base = Binary
	MaxBase Base = Hex

	// DefaultBase is used by callers that accept an optional base.
	DefaultBase = Decimal
)

// digits maps a digit value to its character. Letters are uppercase.
const digits = "0123456789ABCDEF"

// Validate reports whether b can index the digit alphabet.
func (b Base) Validate() error {
	if b < MinBase || b > MaxBase {
		return fmt.Errorf("%w: got %d", ErrInvalidBase, b)
	}
	return nil
}

// Valid is the boolean form of Validate.
func (b Base) Valid() bool {
	return b >= MinBase && b <= MaxBase
}
