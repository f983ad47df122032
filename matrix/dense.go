// SPDX-License-Identifier: MIT
// Package matrix: Dense is a row-major buffer of float64 values, storing
// elements in a flat slice for cache friendliness. Rows are points, columns
// are coordinates; Row exposes a zero-copy view for hot loops.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0 and r*c fits in an int.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return nil, ErrTooLarge
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
// Every row must have the same non-zero length and hold finite values.
//
// Errors: ErrInvalidDimensions (no rows / empty rows), ErrDimensionMismatch
// (ragged input), ErrNaNInf (non-finite coordinate).
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewDenseFromRows", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf("NewDenseFromRows", err)
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("matrix.NewDenseFromRows: row %d has %d values, want %d: %w",
				i, len(rows[i]), m.c, ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ {
			if math.IsNaN(rows[i][j]) || math.IsInf(rows[i][j], 0) {
				return nil, fmt.Errorf("matrix.NewDenseFromRows: row %d col %d: %w", i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a view of row i that aliases the backing storage.
// Writes through the view mutate m. Returns nil for an out-of-range row.
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// RawData exposes the flat row-major backing slice (len == Rows*Cols).
// Intended for kernels that fill or scan the whole buffer.
func (m *Dense) RawData() []float64 {
	return m.data
}

// CopyFrom overwrites m with the contents of src; shapes must match.
// Complexity: O(r*c), no allocation.
func (m *Dense) CopyFrom(src *Dense) error {
	if m == nil || src == nil {
		return matrixErrorf("CopyFrom", ErrNilMatrix)
	}
	if m.r != src.r || m.c != src.c {
		return matrixErrorf("CopyFrom", ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// ToRows returns a freshly allocated [][]float64 copy, one slice per row.
// The result shares no memory with m.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	// one backing allocation, sliced per row with capped capacity
	flat := make([]float64, len(m.data))
	copy(flat, m.data)
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = flat[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
