// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("Op: %w", ErrX) at the
// facade when context is essential — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows <= 0 or
	// cols <= 0), or when a fixed-shape routine (Det2x2, Det3x3, Transform2x2)
	// receives a matrix of the wrong shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates incompatible shapes between operands:
	// Add/Sub with differing (rows, cols), or Mul where a.Cols() != b.Rows().
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
