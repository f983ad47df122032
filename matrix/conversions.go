// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum's mat package, so callers that already
// hold a mat.Matrix can feed it in and get a *mat.Dense back.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
// Complexity: O(r*c).
func ToGonum(m *Dense) *mat.Dense {
	if m == nil {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any mat.Matrix into a new *Dense.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty), ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf("FromGonum", ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}
