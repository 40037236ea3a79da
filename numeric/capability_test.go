// Package numeric_test contains unit tests for the Sized capability probe.
package numeric_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/numeric"
	"github.com/stretchr/testify/require"
)

// sizedStub is a minimal Sized implementation for probing.
type sizedStub struct{ n int }

func (s sizedStub) Size() int { return s.n }

// TestHasSize verifies the probe accepts Sized implementors and rejects
// plain values that merely look countable.
func TestHasSize(t *testing.T) {
	require.True(t, numeric.HasSize(sizedStub{n: 3})) // explicit implementor

	m, err := matrix.New[float64](2, 2)
	require.NoError(t, err)
	require.True(t, numeric.HasSize(m)) // *matrix.Matrix carries Size()

	require.False(t, numeric.HasSize(42))            // scalar
	require.False(t, numeric.HasSize([]int{1, 2}))   // slice has len, not Size()
	require.False(t, numeric.HasSize("text"))        // string
	require.False(t, numeric.HasSize(nil))           // nil interface
}

// TestSizedReportsCellCount verifies the matrix capability value itself.
func TestSizedReportsCellCount(t *testing.T) {
	m, err := matrix.New[int](3, 4)
	require.NoError(t, err)

	var s numeric.Sized = m          // binds at compile time
	require.Equal(t, 12, s.Size())   // rows*cols
}
