// Package matrix: Matrix[T] container.
// Matrix is a concrete, row-major implementation of a fixed-shape dense
// matrix, storing elements in a flat slice for cache friendliness. The shape
// is fixed by the constructor and never changes afterwards; all mutation
// goes through the bounds-checked Set.
package matrix

import (
	"fmt"
	"strings"
)

// matrixErrorf wraps an underlying error with method context.
// Use only when err != nil.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major dense matrix of Numeric values.
// rows and cols are fixed at construction; data holds rows*cols elements in
// row-major order. The zero Matrix (or a nil pointer) is not usable — always
// construct via New, NewFilled or FromRows.
type Matrix[T Numeric] struct {
	rows, cols int // immutable shape, part of the value's identity
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols matrix with every cell at T's zero value.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Matrix or ErrBadShape.
// Complexity: O(rows·cols) time and memory.
func New[T Numeric](rows, cols int) (*Matrix[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Allocate zeroed flat slice and return
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows×cols matrix with every cell set to fill.
// Complexity: O(rows·cols) time and memory.
func NewFilled[T Numeric](rows, cols int, fill T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	// Write fill into every cell of the flat slice
	for i := range m.data {
		m.data[i] = fill
	}

	return m, nil
}

// FromRows creates a rows×cols matrix from a nested literal, copying entries
// row-by-row, column-by-column with truncating semantics:
//
//   - literal rows beyond rows are dropped without error;
//   - literal columns beyond cols within a row are dropped without error;
//   - missing entries keep T's zero value.
//
// Truncation is defined, silent behavior — never an error.
// Complexity: O(rows·cols) time and memory.
func FromRows[T Numeric](rows, cols int, cells [][]T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < len(cells) && i < rows; i++ { // stop once rows consumed
		for j = 0; j < len(cells[i]) && j < cols; j++ { // stop once cols consumed
			m.data[i*cols+j] = cells[i][j]
		}
	}

	return m, nil
}

// Rows returns the fixed number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the fixed number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Size returns the total cell count rows*cols. It is the capability probed
// by numeric.HasSize. Complexity: O(1).
func (m *Matrix[T]) Size() int { return m.rows * m.cols }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.rows {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.cols {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Out-of-range indices return ErrOutOfRange — access is always checked.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Out-of-range indices return ErrOutOfRange — access is always checked.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(rows·cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}

// Equal reports exact structural equality: same shape and every
// corresponding cell identical. There is no epsilon tolerance at this layer;
// callers needing approximate float comparison should use numeric.ApproxEqual
// cell by cell. A nil other never equals a non-nil receiver.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	// Shapes differ ⇒ never equal
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data { // exact elementwise comparison
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, one bracketed row per
// line: "[1, 2]\n[3, 4]\n". Complexity: O(rows·cols).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
			if j < m.cols-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
