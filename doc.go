// Package fixmat is a small, pure-Go toolkit for fixed-shape numeric
// matrices and the scalar helpers that usually travel with them.
//
// 🚀 What is fixmat?
//
//	A value-oriented, allocation-light library that brings together:
//		• matrix/   — generic fixed-shape matrices: construction (zero, fill,
//		  truncating literal), elementwise Add/Sub, Mul contraction, Scale,
//		  Transpose, 2×2/3×3 determinants and elementwise Transform
//		• numeric/  — factorial, integer power, Fibonacci, parity, two-sided
//		  epsilon comparison, variadic sum, named constants and a small
//		  capability probe (HasSize)
//		• calc/     — a dynamic-dispatch operation registry with calculation
//		  history, for application layers that consume the numeric core
//		• geometry/ — point & circle helpers: distance, containment, area
//
// ✨ Why choose fixmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – shapes fixed at construction, operands never
//     mutated, sentinel errors matched via errors.Is
//   - Pure computation – no cgo, no goroutines, no hidden state
//   - Generic – element types are constrained at compile time; a type that
//     is not closed under +, -, *, / simply does not instantiate
//
// Every algebra operation returns a freshly constructed value; inputs may be
// shared freely for reads across goroutines.
//
// See the runnable programs under examples/ for end-to-end usage.
package fixmat
