// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTriIJ_Bijection verifies that TriIJ enumerates every slot exactly once
// in row-major upper-triangle order.
func TestTriIJ_Bijection(t *testing.T) {
	for _, n := range []int{2, 3, 5, 17} {
		seen := make([]bool, n*(n-1)/2)
		want := 0
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				k := matrix.TriIJ(i, j, n)
				require.Equal(t, want, k, "n=%d pair=(%d,%d)", n, i, j)
				require.False(t, seen[k])
				seen[k] = true
				want++
			}
		}
		assert.Equal(t, len(seen), want)
	}
}

// TestTriangularNumber spot-checks k(k+1)/2.
func TestTriangularNumber(t *testing.T) {
	assert.Equal(t, 0, matrix.TriangularNumber(0))
	assert.Equal(t, 1, matrix.TriangularNumber(1))
	assert.Equal(t, 10, matrix.TriangularNumber(4))
}

// TestNewTriangle_Validation rejects tables that cannot hold a pair.
func TestNewTriangle_Validation(t *testing.T) {
	_, err := matrix.NewTriangle(1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	tr, err := matrix.NewTriangle(4)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.N())
	assert.Equal(t, 6, tr.Len())
	assert.Len(t, tr.Raw(), 6)
}

// TestTriangle_SymmetricAccess checks At/Set symmetry and the implicit diagonal.
func TestTriangle_SymmetricAccess(t *testing.T) {
	tr, err := matrix.NewTriangle(4)
	require.NoError(t, err)

	require.NoError(t, tr.Set(3, 1, 2.5))
	v, err := tr.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, 2.5, tr.Raw()[matrix.TriIJ(1, 3, 4)])

	v, err = tr.At(2, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	assert.ErrorIs(t, tr.Set(2, 2, 1), matrix.ErrOutOfRange)
	_, err = tr.At(0, 4)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = tr.Index(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
