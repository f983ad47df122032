package sammon

import (
	"errors"
	"fmt"
)

// Error kinds. Every refinement below wraps exactly one kind, so callers can
// match either the kind or the precise sentinel with errors.Is.
var (
	// ErrInvalidArgument marks violated preconditions on points, scalar or Options.
	ErrInvalidArgument = errors.New("sammon: invalid argument")

	// ErrAllocation marks buffers that cannot be sized or allocated.
	ErrAllocation = errors.New("sammon: allocation failure")
)

var (
	// ErrTooFewPoints: fewer than two source points; no distance is defined.
	ErrTooFewPoints = fmt.Errorf("%w: at least two points are required", ErrInvalidArgument)

	// ErrBadScalar: scalar is not a positive finite number.
	ErrBadScalar = fmt.Errorf("%w: scalar must be positive and finite", ErrInvalidArgument)

	// ErrEmptyVertex: source vertices have no coordinates (e < 1).
	ErrEmptyVertex = fmt.Errorf("%w: vertices must have at least one coordinate", ErrInvalidArgument)

	// ErrRaggedPoints: source vertices differ in dimensionality.
	ErrRaggedPoints = fmt.Errorf("%w: vertices must share one dimensionality", ErrInvalidArgument)

	// ErrNaNInf: a coordinate is NaN or ±Inf, or a squared distance overflows.
	ErrNaNInf = fmt.Errorf("%w: non-finite coordinate or distance", ErrInvalidArgument)

	// ErrBadOptions: an Options field is out of range.
	ErrBadOptions = fmt.Errorf("%w: invalid options", ErrInvalidArgument)

	// ErrTooLarge: table, buffer or iteration count overflows int.
	ErrTooLarge = fmt.Errorf("%w: problem size overflows int", ErrAllocation)
)

// sammonErrorf tags err with the public entry point that produced it.
func sammonErrorf(op string, err error) error {
	return fmt.Errorf("sammon.%s: %w", op, err)
}
