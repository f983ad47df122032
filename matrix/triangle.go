// SPDX-License-Identifier: MIT
// Package matrix: Triangle is packed storage for a symmetric n×n matrix with
// an implicit zero diagonal (e.g. pairwise distances). Only the strict upper
// triangle is kept: n*(n-1)/2 slots, addressed by TriIJ.

package matrix

import "math"

// TriIJ maps the unordered pair (i, j), 0 ≤ i < j < n, to its slot in a
// packed strict upper triangle. Slots enumerate pairs row by row:
//
//	(0,1) (0,2) … (0,n-1) (1,2) … (n-2,n-1)  →  0 1 … n(n-1)/2-1
//
// Callers in hot loops guarantee the precondition; use Triangle.Index for a
// checked variant.
// Complexity: O(1).
func TriIJ(i, j, n int) int {
	return i*n - i*(i+1)/2 + (j - i - 1)
}

// TriangularNumber returns k*(k+1)/2, the slot count of a triangle over k+1 points.
func TriangularNumber(k int) int {
	return k * (k + 1) / 2
}

// Triangle holds the strict upper triangle of a symmetric n×n matrix.
type Triangle struct {
	n    int
	data []float64 // len == n*(n-1)/2
}

// NewTriangle allocates a zeroed Triangle over n ≥ 2 points.
//
// Errors: ErrInvalidDimensions (n < 2), ErrTooLarge (slot count overflows int).
// Complexity: O(n²) memory.
func NewTriangle(n int) (*Triangle, error) {
	if n < 2 {
		return nil, matrixErrorf("NewTriangle", ErrInvalidDimensions)
	}
	// n*(n-1) must not overflow before halving.
	if n-1 > math.MaxInt/n {
		return nil, matrixErrorf("NewTriangle", ErrTooLarge)
	}

	return &Triangle{n: n, data: make([]float64, TriangularNumber(n-1))}, nil
}

// N returns the number of points the triangle covers.
func (t *Triangle) N() int { return t.n }

// Len returns the number of stored pairs, n*(n-1)/2.
func (t *Triangle) Len() int { return len(t.data) }

// Raw exposes the packed slots in TriIJ order.
func (t *Triangle) Raw() []float64 { return t.data }

// Index returns the slot of the unordered pair {i, j}. Order of i and j is
// irrelevant; i == j has no slot.
// Complexity: O(1).
func (t *Triangle) Index(i, j int) (int, error) {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= t.n || i == j {
		return 0, matrixErrorf("Triangle.Index", ErrOutOfRange)
	}

	return TriIJ(i, j, t.n), nil
}

// At returns the value for {i, j}; the diagonal reads as 0.
// Complexity: O(1).
func (t *Triangle) At(i, j int) (float64, error) {
	if i == j && i >= 0 && i < t.n {
		return 0, nil
	}
	k, err := t.Index(i, j)
	if err != nil {
		return 0, err
	}

	return t.data[k], nil
}

// Set stores v for {i, j}. The diagonal is implicit and cannot be written.
// Complexity: O(1).
func (t *Triangle) Set(i, j int, v float64) error {
	k, err := t.Index(i, j)
	if err != nil {
		return err
	}
	t.data[k] = v

	return nil
}
