// Package matrix: pure algebra kernels over Matrix[T].
// All kernels perform strict fail-fast validation up front, never mutate
// their operands, and return a freshly allocated result. Loop orders are
// fixed for determinism.
package matrix

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateBinarySameShape checks that a and b are non-nil and share an
// identical (rows, cols) shape. Complexity: O(1).
func validateBinarySameShape[T Numeric](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return ErrShapeMismatch
	}

	return nil
}

// elementwiseResult validates a, b for an elementwise kernel and allocates
// the result. Internal helper for Add/Sub sharing validation and allocation.
// A sign multiplier is deliberately NOT shared here: Numeric admits unsigned
// element types, for which -1 is unrepresentable.
// Complexity: O(rows·cols) space for the result.
func elementwiseResult[T Numeric](a, b *Matrix[T], opTag string) (*Matrix[T], error) {
	// Validate operands and shapes
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	res, err := New[T](a.rows, a.cols)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B.
// Operands must share an identical shape; neither is mutated.
//
// Errors: ErrNilMatrix (nil input), ErrShapeMismatch (shape differs).
// Complexity: O(rows·cols).
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	res, err := elementwiseResult(a, b, opAdd)
	if err != nil {
		return nil, err
	}
	for i := range a.data { // single flat loop 0..n-1
		res.data[i] = a.data[i] + b.data[i]
	}

	return res, nil
}

// Sub computes the elementwise difference C = A - B.
// Operands must share an identical shape; neither is mutated.
//
// Errors: ErrNilMatrix (nil input), ErrShapeMismatch (shape differs).
// Complexity: O(rows·cols).
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	res, err := elementwiseResult(a, b, opSub)
	if err != nil {
		return nil, err
	}
	for i := range a.data { // single flat loop 0..n-1
		res.data[i] = a.data[i] - b.data[i]
	}

	return res, nil
}

// Mul computes the matrix product C = A·B via the standard triple-loop
// contraction C(i,j) = Σ_k A(i,k)·B(k,j). Legal iff A.Cols() == B.Rows();
// the result has shape A.Rows() × B.Cols(). Each accumulator starts at T's
// zero value. Operands are never mutated.
//
// Errors: ErrNilMatrix (nil input), ErrShapeMismatch (A.Cols() != B.Rows()).
// Complexity: O(R·K·C) time, O(R·C) space for the result.
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	// Validate operands
	if a == nil || b == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	// The contracted dimension must agree
	if a.cols != b.rows {
		return nil, opErrorf(opMul, ErrShapeMismatch)
	}

	res, err := New[T](a.rows, b.cols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Deterministic i→j→k contraction; acc is call-local scratch.
	var i, j, k int
	var acc T
	for i = 0; i < a.rows; i++ {
		for j = 0; j < b.cols; j++ {
			acc = 0 // accumulator starts at T's zero value
			for k = 0; k < a.cols; k++ {
				acc += a.data[i*a.cols+k] * b.data[k*b.cols+j]
			}
			res.data[i*b.cols+j] = acc
		}
	}

	return res, nil
}

// Scale computes the elementwise scalar product C = k·A.
//
// Errors: ErrNilMatrix (nil input).
// Complexity: O(rows·cols).
func Scale[T Numeric](a *Matrix[T], k T) (*Matrix[T], error) {
	if a == nil {
		return nil, opErrorf(opScale, ErrNilMatrix)
	}

	res, err := New[T](a.rows, a.cols)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}
	for i := range a.data { // single flat loop 0..n-1
		res.data[i] = k * a.data[i]
	}

	return res, nil
}

// Transpose returns Aᵀ, the cols×rows matrix with Aᵀ(j,i) = A(i,j).
//
// Errors: ErrNilMatrix (nil input).
// Complexity: O(rows·cols).
func Transpose[T Numeric](a *Matrix[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, opErrorf(opTranspose, ErrNilMatrix)
	}

	res, err := New[T](a.cols, a.rows)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < a.rows; i++ {
		for j = 0; j < a.cols; j++ {
			res.data[j*a.rows+i] = a.data[i*a.cols+j]
		}
	}

	return res, nil
}
