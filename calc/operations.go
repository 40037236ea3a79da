// Package calc: the Operation interface and the built-in operation set.
package calc

// Canonical names of the built-in operations.
const (
	OpAddition       = "addition"
	OpSubtraction    = "subtraction"
	OpMultiplication = "multiplication"
	OpDivision       = "division"
)

// divisionZeroThreshold is the divisor magnitude below which division is
// refused instead of producing ±Inf.
const divisionZeroThreshold = 1e-9

// Operation is a named binary operation over float64. Implementations must
// be pure: no shared state, no side effects beyond the returned value.
type Operation interface {
	// Name returns the dispatch key; it must be stable and unique within a
	// Calculator.
	Name() string

	// Apply computes the operation on (a, b), or reports why it cannot.
	Apply(a, b float64) (float64, error)
}

// addition is the built-in "addition" operation.
type addition struct{}

func (addition) Name() string { return OpAddition }

func (addition) Apply(a, b float64) (float64, error) { return a + b, nil }

// subtraction is the built-in "subtraction" operation.
type subtraction struct{}

func (subtraction) Name() string { return OpSubtraction }

func (subtraction) Apply(a, b float64) (float64, error) { return a - b, nil }

// multiplication is the built-in "multiplication" operation.
type multiplication struct{}

func (multiplication) Name() string { return OpMultiplication }

func (multiplication) Apply(a, b float64) (float64, error) { return a * b, nil }

// division is the built-in "division" operation. A divisor within
// divisionZeroThreshold of zero yields ErrDivideByZero rather than ±Inf.
type division struct{}

func (division) Name() string { return OpDivision }

func (division) Apply(a, b float64) (float64, error) {
	if b < divisionZeroThreshold && -b < divisionZeroThreshold { // |b| < threshold
		return 0, ErrDivideByZero
	}

	return a / b, nil
}
