// Package numeric provides the small scalar helpers that accompany the
// fixed-shape matrix core: factorial, integer power, Fibonacci, parity,
// two-sided epsilon comparison, variadic summation, rounding, a handful of
// named constants, and a capability probe (HasSize).
//
// Every function is a pure, synchronous computation. Helpers whose result
// can exceed the representable range (Factorial, Fibonacci) refuse with
// ErrOverflow instead of silently wrapping.
//
// See the examples in this package for usage patterns.
package numeric
