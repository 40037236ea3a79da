// Package numeric: scalar helper functions.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// maxFactorialArg is the largest n with n! representable in uint64 (20! fits,
// 21! does not).
const maxFactorialArg = 20

// maxFibonacciArg is the largest n with F(n) representable in uint64 (F(93)
// fits, F(94) does not).
const maxFibonacciArg = 93

// Number is the constraint shared by the variadic helpers: any type whose
// underlying type is a fixed-width integer or a float.
type Number interface {
	constraints.Integer | constraints.Float
}

// Factorial computes n! iteratively with 0! = 1.
// Returns ErrOverflow for n > 20 rather than wrapping modulo 2⁶⁴.
// Complexity: O(n).
func Factorial(n uint64) (uint64, error) {
	if n > maxFactorialArg {
		return 0, ErrOverflow
	}

	result := uint64(1) // 0! = 1 base case
	for i := uint64(2); i <= n; i++ {
		result *= i
	}

	return result, nil
}

// Power computes base^exp for a non-negative integer exponent by repeated
// multiplication, with base^0 = 1. Negative exponents are unrepresentable by
// the parameter type — there is deliberately no reciprocal path.
// Overflow/Inf follows ordinary float64 arithmetic.
// Complexity: O(exp).
func Power(base float64, exp uint) float64 {
	result := 1.0 // base^0 = 1
	for i := uint(0); i < exp; i++ {
		result *= base
	}

	return result
}

// Fibonacci computes F(n) iteratively with F(0) = 0, F(1) = 1.
// Returns ErrOverflow for n > 93 rather than wrapping modulo 2⁶⁴.
// Complexity: O(n), constant memory — no recursion, no memo table needed at
// this input range.
func Fibonacci(n uint) (uint64, error) {
	if n > maxFibonacciArg {
		return 0, ErrOverflow
	}

	var prev, curr uint64 = 0, 1 // F(0), F(1)
	if n == 0 {
		return prev, nil
	}
	for i := uint(2); i <= n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr, nil
}

// IsEven reports whether v is divisible by two. Works for any integer type,
// signed or unsigned. Complexity: O(1).
func IsEven[T constraints.Integer](v T) bool {
	return v%2 == 0
}

// ApproxEqual reports |a-b| < eps using the two-sided formulation
// (a-b < eps) && (b-a < eps), deliberately avoiding an absolute-value call.
// The two forms differ subtly at extremes; with a NaN operand both
// comparisons are false, so NaN never approximately equals anything —
// including itself. Use DefaultEpsilon when no stricter tolerance applies.
// Complexity: O(1).
func ApproxEqual[T constraints.Float](a, b, eps T) bool {
	return (a-b < eps) && (b-a < eps)
}

// Sum accumulates one-or-more values of the same numeric type left to right.
// The base case — no trailing arguments — returns the sole argument.
// Complexity: O(len(rest)).
func Sum[T Number](first T, rest ...T) T {
	acc := first
	for _, v := range rest { // strict left-to-right order
		acc += v
	}

	return acc
}

// RoundToPrecision rounds value to the given number of decimal places using
// half-away-from-zero rounding. Returns ErrNegativePrecision when precision
// is negative. Complexity: O(1).
func RoundToPrecision(value float64, precision int) (float64, error) {
	if precision < 0 {
		return 0, ErrNegativePrecision
	}

	multiplier := math.Pow(10, float64(precision))

	return math.Round(value*multiplier) / multiplier, nil
}
