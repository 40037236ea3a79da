// Package numeric: sentinel error set.
// Tests MUST check these via errors.Is; no helper panics on user input.

package numeric

import "errors"

var (
	// ErrOverflow is returned when an exact integer result would exceed the
	// uint64 range (Factorial for n > 20, Fibonacci for n > 93). Refusing is
	// deliberate — silent modular wraparound would be indistinguishable from
	// a correct small result.
	ErrOverflow = errors.New("numeric: result exceeds uint64 range")

	// ErrNegativePrecision is returned by RoundToPrecision when the requested
	// number of decimal places is negative.
	ErrNegativePrecision = errors.New("numeric: precision must be non-negative")
)
