// Package numeric: named constants.
package numeric

// DefaultEpsilon is the tolerance used with ApproxEqual when a caller has no
// stricter requirement.
const DefaultEpsilon = 1e-9

// Commonly referenced irrational constants, truncated to 12 decimal places.
const (
	// GoldenRatio is (1+√5)/2.
	GoldenRatio = 1.618033988749

	// Sqrt2 is √2.
	Sqrt2 = 1.414213562373

	// Sqrt3 is √3.
	Sqrt3 = 1.732050807569

	// Pi is the circle constant π.
	Pi = 3.14159265359

	// E is Euler's number.
	E = 2.71828182846
)
