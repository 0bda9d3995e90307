package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestResizePreservesOverlap shrinks columns, then grows both axes.
func TestResizePreservesOverlap(t *testing.T) {
	m := MustRows(t, invertible3)

	require.NoError(t, m.SetCols(2))
	RequireEqual(t, MustRows(t, [][]float64{
		{2, 5},
		{6, 3},
		{5, -2},
	}), m)

	require.NoError(t, m.SetRows(4))
	require.NoError(t, m.SetCols(4))
	RequireEqual(t, MustRows(t, [][]float64{
		{2, 5, 0, 0},
		{6, 3, 0, 0},
		{5, -2, 0, 0},
		{0, 0, 0, 0},
	}), m)
}

// TestResizeShrinkRows drops trailing rows.
func TestResizeShrinkRows(t *testing.T) {
	m := MustRows(t, invertible3)
	require.NoError(t, m.SetRows(1))
	RequireEqual(t, MustRows(t, [][]float64{{2, 5, 7}}), m)
}

// TestResizeSameShapeIsNoop keeps values when the size does not change.
func TestResizeSameShapeIsNoop(t *testing.T) {
	m := MustRows(t, invertible3)
	want := m.Clone()
	require.NoError(t, m.SetRows(3))
	require.NoError(t, m.SetCols(3))
	RequireEqual(t, want, m)
}

// TestResizeInvalid verifies rejection and that the receiver is left untouched.
func TestResizeInvalid(t *testing.T) {
	m := MustRows(t, invertible3)
	want := m.Clone()

	require.ErrorIs(t, m.SetRows(0), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, m.SetRows(-2), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, m.SetCols(0), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, m.SetCols(-1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, m.SetRows(math.MaxInt), matrix.ErrInvalidDimensions) // 3*MaxInt cells
	require.ErrorIs(t, m.SetCols(math.MaxInt/2), matrix.ErrInvalidDimensions)
	RequireEqual(t, want, m)
}

// TestResizeEmpty: the empty matrix has no extent on the other axis to keep.
func TestResizeEmpty(t *testing.T) {
	e := matrix.NewEmpty()
	require.ErrorIs(t, e.SetRows(2), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, e.SetCols(2), matrix.ErrInvalidDimensions)
	require.True(t, e.IsEmpty())
}

// TestResizeDoesNotAliasClone: a clone taken before resizing keeps its own storage.
func TestResizeDoesNotAliasClone(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, m.SetCols(3))
	require.NoError(t, m.Set(0, 0, 42))
	RequireEqual(t, MustRows(t, [][]float64{{1, 2}, {3, 4}}), c)
}
