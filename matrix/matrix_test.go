// Package matrix_test contains unit tests for the Matrix container:
// construction, truncating literals, checked access, cloning and equality.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewBadShape ensures that New rejects non-positive dimensions.
func TestNewBadShape(t *testing.T) {
	_, err := matrix.New[float64](0, 5)          // zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape)  // expect ErrBadShape

	_, err = matrix.New[float64](5, -1)          // negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape)  // expect ErrBadShape
}

// TestNewZeroFilled verifies that New initializes every cell to T's zero value.
func TestNewZeroFilled(t *testing.T) {
	m, err := matrix.New[int](2, 3) // create a 2x3 integer matrix
	require.NoError(t, err)

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v) // every cell starts at zero
		}
	}
}

// TestRowsColsSize verifies shape accessors against the constructed shape.
func TestRowsColsSize(t *testing.T) {
	m, err := matrix.New[float64](3, 4) // create a 3x4 matrix
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())  // rows as constructed
	require.Equal(t, 4, m.Cols())  // cols as constructed
	require.Equal(t, 12, m.Size()) // rows*cols cells
}

// TestNewFilled verifies scalar-fill construction sets every cell.
func TestNewFilled(t *testing.T) {
	m, err := matrix.NewFilled[float64](2, 2, 7.5) // fill all cells with 7.5
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 7.5, v) // every cell equals the fill value
		}
	}
}

// TestFromRowsExact verifies literal construction with an exactly sized literal.
func TestFromRowsExact(t *testing.T) {
	m, err := matrix.FromRows(2, 2, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String()) // row-major layout preserved
}

// TestFromRowsTruncatesExcess ensures extra literal rows and columns beyond
// the declared shape are silently dropped — defined behavior, not an error.
func TestFromRowsTruncatesExcess(t *testing.T) {
	m, err := matrix.FromRows(2, 2, [][]int{
		{1, 2, 99},  // third column exceeds declared cols — dropped
		{3, 4},
		{98, 97, 96}, // third row exceeds declared rows — dropped
	})
	require.NoError(t, err) // truncation never errors

	want, err := matrix.FromRows(2, 2, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.True(t, m.Equal(want)) // only the in-shape entries were copied
}

// TestFromRowsZeroFillsMissing ensures that a short literal leaves the
// uncovered cells at zero: a 3x3 shape fed 2 rows of 2 values keeps the
// third row and the third column of rows 1-2 at zero.
func TestFromRowsZeroFillsMissing(t *testing.T) {
	m, err := matrix.FromRows(3, 3, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	want := [3][3]float64{{1, 2, 0}, {3, 4, 0}, {0, 0, 0}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

// TestAtSetOutOfRange ensures At and Set fail fast with ErrOutOfRange rather
// than corrupting or panicking — checked access is this library's contract.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.New[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                           // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)                            // column past the edge
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)                        // row past the edge
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)                       // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.New[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89)) // write one cell

	v, err := m.At(1, 2) // read it back
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestCloneIndependence ensures Clone returns a deep copy that does not
// share storage with the original.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromRows(2, 2, [][]int{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.True(t, clone.Equal(m)) // clone starts identical

	require.NoError(t, clone.Set(0, 0, 3)) // mutate the clone only

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)          // original unchanged
	require.False(t, clone.Equal(m)) // values diverged
}

// TestEqualExact verifies equality is reflexive, symmetric, and exact: a
// single-cell difference by the smallest representable amount breaks it.
func TestEqualExact(t *testing.T) {
	a, err := matrix.FromRows(2, 2, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b := a.Clone()

	require.True(t, a.Equal(a)) // reflexive
	require.True(t, a.Equal(b)) // equal copies
	require.True(t, b.Equal(a)) // symmetric

	// Nudge one cell by one ULP-scale amount — exact equality must break.
	require.NoError(t, b.Set(1, 1, 4+1e-15))
	require.False(t, a.Equal(b))
	require.False(t, b.Equal(a))
}

// TestEqualShapeMismatch ensures matrices of different shapes never compare equal.
func TestEqualShapeMismatch(t *testing.T) {
	a, err := matrix.NewFilled[int](2, 3, 1)
	require.NoError(t, err)
	b, err := matrix.NewFilled[int](3, 2, 1)
	require.NoError(t, err)

	require.False(t, a.Equal(b)) // same cells, different shape
	require.False(t, a.Equal(nil)) // nil never equals non-nil
}
