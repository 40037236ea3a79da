// Package calc provides a dynamic-dispatch calculator core: a registry of
// named binary operations over float64 plus a history of computed results.
// It is the application-layer companion to the matrix and numeric packages —
// no menus, no parsing, no I/O; callers feed it already-validated numbers.
//
// The calc package provides:
//
//   - Operation, the interface a pluggable binary operation implements.
//   - Calculator, which dispatches by operation name, records every
//     successful result in its history, and optionally logs each calculation
//     through a caller-supplied *slog.Logger.
//   - Built-in operations: addition, subtraction, multiplication, and
//     division (division refuses near-zero divisors with ErrDivideByZero).
//
// A Calculator is not safe for concurrent use; guard it externally if shared.
package calc
