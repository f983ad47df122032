// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/simplicial/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDense_TooLarge verifies that r*c overflow is reported, not allocated.
func TestNewDense_TooLarge(t *testing.T) {
	_, err := matrix.NewDense(math.MaxInt/2, 3)
	assert.ErrorIs(t, err, matrix.ErrTooLarge)
}

// TestDense_AtSetBounds checks bounds-safe indexing.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
}

// TestDense_RowAliasesStorage ensures Row is a writable view with capped capacity.
func TestDense_RowAliasesStorage(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	r := m.Row(1)
	require.Len(t, r, 2)
	assert.Equal(t, 2, cap(r), "row view must not reach into the next row")
	r[0] = 7

	v, _ := m.At(1, 0)
	assert.Equal(t, 7.0, v)
	assert.Nil(t, m.Row(3))
	assert.Nil(t, m.Row(-1))
}

// TestNewDenseFromRows covers the happy path and each rejection.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.RawData())

	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(-1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDense_CloneCopyFromToRows checks that copies never share memory.
func TestDense_CloneCopyFromToRows(t *testing.T) {
	src, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := src.Clone()
	require.NoError(t, src.Set(0, 0, 9))
	v, _ := c.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must be independent")

	dst, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, src.RawData(), dst.RawData())

	bad, _ := matrix.NewDense(3, 2)
	assert.ErrorIs(t, bad.CopyFrom(src), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)

	rows := src.ToRows()
	assert.Equal(t, [][]float64{{9, 2}, {3, 4}}, rows)
	rows[1][1] = 100
	v, _ = src.At(1, 1)
	assert.Equal(t, 4.0, v, "ToRows must copy")
}

// TestDense_String renders one bracketed line per row.
func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2.5}, {0, -1}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}
