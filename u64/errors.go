package u64

import (
	"errors"
	"fmt"
)

var (
	ErrTooLong   = errors.New("too long, max 16 hex digits (8 bytes)")
	ErrNotHex    = errors.New("not a hex string")
	ErrNotScalar = errors.New("not a string-like scalar value")
)

// An InvalidInputError is returned when a Uint64 cannot be constructed
// from the given input. It is the only error the package produces.
type InvalidInputError struct {
	Input any
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("u64: invalid input %#v: %s", e.Input, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }
