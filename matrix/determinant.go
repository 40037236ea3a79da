// Package matrix: small-shape determinants and elementwise transform.
// Determinants are provided for the 2×2 and 3×3 shapes only, via the direct
// cofactor formulas; there is no general N×N expansion. NaN/±Inf entries
// propagate through ordinary float arithmetic — no singularity check.
package matrix

import "fmt"

// Operation name constants for this file's facades.
const (
	opDet2x2       = "Det2x2"
	opDet3x3       = "Det3x3"
	opTransform2x2 = "Transform2x2"
)

// Det2x2 computes the determinant of a 2×2 matrix: a·d − b·c.
//
// Errors: ErrNilMatrix (nil input), ErrBadShape (shape is not 2×2).
// Complexity: O(1).
func Det2x2[T Numeric](m *Matrix[T]) (T, error) {
	var zero T
	if m == nil {
		return zero, opErrorf(opDet2x2, ErrNilMatrix)
	}
	if m.rows != 2 || m.cols != 2 {
		return zero, opErrorf(opDet2x2, ErrBadShape)
	}

	// | a b |
	// | c d |  ⇒  ad − bc
	return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
}

// Det3x3 computes the determinant of a 3×3 matrix by cofactor expansion
// along the first row:
//
//	| a b c |
//	| d e f |  ⇒  a(ei−fh) − b(di−fg) + c(dh−eg)
//	| g h i |
//
// Errors: ErrNilMatrix (nil input), ErrBadShape (shape is not 3×3).
// Complexity: O(1).
func Det3x3[T Numeric](m *Matrix[T]) (T, error) {
	var zero T
	if m == nil {
		return zero, opErrorf(opDet3x3, ErrNilMatrix)
	}
	if m.rows != 3 || m.cols != 3 {
		return zero, opErrorf(opDet3x3, ErrBadShape)
	}

	a, b, c := m.data[0], m.data[1], m.data[2]
	d, e, f := m.data[3], m.data[4], m.data[5]
	g, h, i := m.data[6], m.data[7], m.data[8]

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g), nil
}

// Grid2x2 is the result of Transform2x2: a fixed 2×2 grid whose element type
// carries no numeric constraint, so a transform may map numbers to any type
// (e.g. float64 → bool). Row-major: Grid2x2[R]{{r00, r01}, {r10, r11}}.
type Grid2x2[R any] [2][2]R

// Rows returns 2. Complexity: O(1).
func (Grid2x2[R]) Rows() int { return 2 }

// Cols returns 2. Complexity: O(1).
func (Grid2x2[R]) Cols() int { return 2 }

// At retrieves the element at (row, col), or ErrOutOfRange when an index is
// outside 0..1. Complexity: O(1).
func (g Grid2x2[R]) At(row, col int) (R, error) {
	if row < 0 || row > 1 || col < 0 || col > 1 {
		var zero R
		return zero, fmt.Errorf("Grid2x2.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g[row][col], nil
}

// Transform2x2 applies fn to every cell of a 2×2 matrix and returns the
// resulting 2×2 grid. The result element type R is fn's return type and may
// differ from the input element type T. The input matrix is never mutated.
//
// Errors: ErrNilMatrix (nil input), ErrBadShape (shape is not 2×2).
// Complexity: O(1) — exactly four fn applications.
func Transform2x2[T Numeric, R any](m *Matrix[T], fn func(T) R) (Grid2x2[R], error) {
	var res Grid2x2[R]
	if m == nil {
		return res, opErrorf(opTransform2x2, ErrNilMatrix)
	}
	if m.rows != 2 || m.cols != 2 {
		return res, opErrorf(opTransform2x2, ErrBadShape)
	}

	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			res[i][j] = fn(m.data[i*2+j])
		}
	}

	return res, nil
}
