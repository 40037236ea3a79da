// Package matrix provides generic fixed-shape dense matrices over numeric
// element types, with construction, elementwise algebra, multiplication,
// and small-shape determinants.
//
// The matrix package provides:
//
//   - Matrix[T], a row-major dense value type whose shape (rows, cols) is
//     fixed at construction and immutable afterwards.
//   - Construction via New (zero-filled), NewFilled (scalar fill) and
//     FromRows (truncating nested literal: extra entries dropped, missing
//     entries stay zero).
//   - Pure algebra kernels Add, Sub, Mul, Scale, Transpose — operands are
//     never mutated, results are freshly allocated.
//   - Det2x2 / Det3x3 cofactor determinants and Transform2x2, an elementwise
//     map whose result element type may differ from the input type.
//
// Element types are gated by the Numeric constraint at compile time; shape
// compatibility between operands is checked at the start of every operation
// and reported through sentinel errors (errors.Is), never panics.
//
// See the examples in this package for usage patterns.
package matrix
