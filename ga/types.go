package ga

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrBadOptions is returned by Options.Validate.
	ErrBadOptions = errors.New("ga: invalid options")

	// ErrMissingCallback is returned by Callbacks.Validate.
	ErrMissingCallback = errors.New("ga: missing callback")
)

// Callbacks are the member operations a Searcher drives. M is the member
// representation; callbacks mutate members in place.
type Callbacks[M any] struct {
	// GenerateRandom fills m with a random member.
	GenerateRandom func(m *M)

	// Mutate perturbs m; generation is the number of generations run so far,
	// so implementations can shrink mutations over time.
	Mutate func(m *M, generation int64)

	// Tweak applies a small local refinement to m.
	Tweak func(m *M)

	// Suitability scores m; higher is better.
	Suitability func(m *M) float64
}

// Validate reports the first nil callback.
func (c Callbacks[M]) Validate() error {
	switch {
	case c.GenerateRandom == nil:
		return fmt.Errorf("%w: GenerateRandom", ErrMissingCallback)
	case c.Mutate == nil:
		return fmt.Errorf("%w: Mutate", ErrMissingCallback)
	case c.Tweak == nil:
		return fmt.Errorf("%w: Tweak", ErrMissingCallback)
	case c.Suitability == nil:
		return fmt.Errorf("%w: Suitability", ErrMissingCallback)
	}
	return nil
}

// Options configures a search.
//
//   - PopulationSize    - members per generation (≥ 1).
//   - SuitabilityTarget - a member scoring at least this is a perfect fit.
//   - EliteCount        - members kept unchanged per generation, in [1, PopulationSize].
//   - Timeout           - wall-clock budget (> 0).
type Options struct {
	PopulationSize    int
	SuitabilityTarget float64
	EliteCount        int
	Timeout           time.Duration
}

// Validate checks every field range.
func (o Options) Validate() error {
	if o.PopulationSize < 1 {
		return fmt.Errorf("%w: PopulationSize=%d, want ≥ 1", ErrBadOptions, o.PopulationSize)
	}
	if o.EliteCount < 1 || o.EliteCount > o.PopulationSize {
		return fmt.Errorf("%w: EliteCount=%d, want in [1, %d]", ErrBadOptions, o.EliteCount, o.PopulationSize)
	}
	if math.IsNaN(o.SuitabilityTarget) || math.IsInf(o.SuitabilityTarget, 0) {
		return fmt.Errorf("%w: SuitabilityTarget must be finite", ErrBadOptions)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("%w: Timeout=%v, want > 0", ErrBadOptions, o.Timeout)
	}
	return nil
}

// Searcher runs a genetic search and returns the best member found.
// Implementations validate cb and opts before starting and return their
// errors unchanged (errors.Is matches ErrMissingCallback / ErrBadOptions).
type Searcher[M any] interface {
	Search(ctx context.Context, cb Callbacks[M], opts Options) (M, error)
}
