// Package calc: sentinel error set.
// Tests MUST check these via errors.Is; no method panics on user input.

package calc

import "errors"

var (
	// ErrUnknownOperation is returned by Calculate when no registered
	// operation matches the requested name.
	ErrUnknownOperation = errors.New("calc: unknown operation")

	// ErrNilOperation is returned by Register when handed a nil Operation.
	ErrNilOperation = errors.New("calc: nil operation")

	// ErrDuplicateOperation is returned by Register when an operation with
	// the same name is already present.
	ErrDuplicateOperation = errors.New("calc: operation already registered")

	// ErrDivideByZero is returned by the division operation when the divisor
	// magnitude is below the zero threshold.
	ErrDivideByZero = errors.New("calc: division by zero")
)
