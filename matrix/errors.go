// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and indexers return these sentinels; tests match them via
// errors.Is. No exported function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Context is attached with matrixErrorf at the call site; callers still use
// errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// (or, for Triangle, that fewer than two points were requested).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or pair) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes, e.g. ragged rows or
	// CopyFrom between buffers of different shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrTooLarge signals that the requested storage does not fit in an int.
	ErrTooLarge = errors.New("matrix: requested size overflows int")
)

// matrixErrorf tags err with the public entry point that produced it.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
