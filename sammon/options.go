package sammon

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
)

// Defaults for Options. The run/iteration budget and annealing constant are
// the published values of the mapping used for instrument layouts.
const (
	DefaultDim        = 2    // target dimensionality d
	DefaultRuns       = 1000 // restarts per call (crun)
	DefaultIterFactor = 75   // iterations per run = IterFactor·cpt
	DefaultGamma      = 0.8  // initial annealing coefficient
)

// ErrorMode selects how the total error is measured after each step.
//
//   - FullRecompute - sum over every pair after each step. O(cpt²) per step.
//   - Incremental   - per-pair residuals; only the 2·cpt−3 pairs touching the
//     two moved points are re-evaluated. O(cpt) per step. Residuals are
//     resynchronized at the start of every run.
//
// Both modes make the same moves for the same seeds; they may pick a
// different best snapshot when two errors differ only by rounding.
type ErrorMode int

const (
	// FullRecompute re-sums every pair after each step (default).
	FullRecompute ErrorMode = iota

	// Incremental updates only the pairs incident to the moved points.
	Incremental
)

// String implements fmt.Stringer.
func (m ErrorMode) String() string {
	switch m {
	case FullRecompute:
		return "full"
	case Incremental:
		return "incremental"
	default:
		return fmt.Sprintf("ErrorMode(%d)", int(m))
	}
}

// ImproveFunc is invoked whenever a new global best error is recorded.
// run and iter locate the step inside the call; bestError is strictly lower
// than every value previously reported in the same call.
type ImproveFunc func(run, iter int, bestError float64)

// Options configures Map.
//
// Fields:
//   - Dim         - target dimensionality d (≥ 1).
//   - Runs        - maximum number of restarts (≥ 1).
//   - IterFactor  - iterations per run are IterFactor·cpt (≥ 1).
//   - Gamma       - initial annealing coefficient, in (0, 1].
//   - PlateauRuns - stop once more than this many runs passed since the last
//     improving run. 0 ⇒ max(Runs/4, 1); negative ⇒ never stop early.
//   - InitSeed    - seed of the initial-coordinate stream (0 ⇒ fixed default).
//   - PairSeed    - seed of the pair-selection stream (0 ⇒ fixed default).
//   - InitRand    - explicit initial-coordinate stream; overrides InitSeed.
//   - PairRand    - explicit pair-selection stream; overrides PairSeed.
//   - ErrorMode   - FullRecompute (default) or Incremental.
//   - Logger      - structured logger; nil discards.
//   - OnImprove   - optional hook fired on every new global best.
//
// *rand.Rand is not goroutine-safe: never share InitRand/PairRand between
// concurrent calls.
type Options struct {
	Dim         int
	Runs        int
	IterFactor  int
	Gamma       float64
	PlateauRuns int

	InitSeed int64
	PairSeed int64
	InitRand *rand.Rand
	PairRand *rand.Rand

	ErrorMode ErrorMode
	Logger    *slog.Logger
	OnImprove ImproveFunc
}

// DefaultOptions returns the published configuration: d=2, 1000 runs,
// 75·cpt iterations per run, gamma 0.8, plateau after Runs/4 idle runs,
// full error recomputation and default seeds for both streams.
func DefaultOptions() Options {
	return Options{
		Dim:        DefaultDim,
		Runs:       DefaultRuns,
		IterFactor: DefaultIterFactor,
		Gamma:      DefaultGamma,
		ErrorMode:  FullRecompute,
	}
}

// Validate checks every field range. It returns an error wrapping
// ErrBadOptions that names the offending field.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Dim < 1 {
		return fmt.Errorf("%w: Dim=%d, want ≥ 1", ErrBadOptions, o.Dim)
	}
	if o.Runs < 1 {
		return fmt.Errorf("%w: Runs=%d, want ≥ 1", ErrBadOptions, o.Runs)
	}
	if o.IterFactor < 1 {
		return fmt.Errorf("%w: IterFactor=%d, want ≥ 1", ErrBadOptions, o.IterFactor)
	}
	if math.IsNaN(o.Gamma) || o.Gamma <= 0 || o.Gamma > 1 {
		return fmt.Errorf("%w: Gamma=%g, want in (0, 1]", ErrBadOptions, o.Gamma)
	}
	switch o.ErrorMode {
	case FullRecompute, Incremental:
	default:
		return fmt.Errorf("%w: unknown %v", ErrBadOptions, o.ErrorMode)
	}

	return nil
}

// plateauRuns resolves the PlateauRuns policy into a run count.
func (o Options) plateauRuns() int {
	switch {
	case o.PlateauRuns < 0:
		return math.MaxInt
	case o.PlateauRuns == 0:
		// the first run must always happen
		return max(o.Runs/4, 1)
	default:
		return o.PlateauRuns
	}
}

// logger returns the configured logger or one that discards everything.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.DiscardHandler)
}
