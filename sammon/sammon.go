package sammon

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/simplicial/matrix"
	"gonum.org/v1/gonum/mat"
)

// StopReason tells why the restart loop ended.
type StopReason int

const (
	// StopExhausted: all Runs were performed.
	StopExhausted StopReason = iota

	// StopPlateau: more than PlateauRuns runs passed without improvement.
	StopPlateau

	// StopCancelled: ctx was cancelled between runs.
	StopCancelled
)

// String implements fmt.Stringer.
func (s StopReason) String() string {
	switch s {
	case StopExhausted:
		return "exhausted"
	case StopPlateau:
		return "plateau"
	case StopCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("StopReason(%d)", int(s))
	}
}

// Result is the outcome of one mapping call.
type Result struct {
	// Points holds cpt points of Dim coordinates; owned by the caller.
	Points [][]float64

	// Error is Σ|target − current| over all pairs for Points (squared distances).
	Error float64

	// Runs is the number of runs started.
	Runs int

	// LastImprovingRun is the run index that produced Points.
	LastImprovingRun int

	// IterationsPerRun is IterFactor·cpt.
	IterationsPerRun int

	// Stop is the reason the restart loop ended.
	Stop StopReason
}

// Matrix returns Points as a new cpt×Dim gonum matrix.
func (r *Result) Matrix() *mat.Dense {
	if r == nil || len(r.Points) == 0 {
		return nil
	}
	rows, cols := len(r.Points), len(r.Points[0])
	data := make([]float64, 0, rows*cols)
	for _, p := range r.Points {
		data = append(data, p...)
	}
	return mat.NewDense(rows, cols, data)
}

// Embed maps points with DefaultOptions and returns only the configuration.
// It blocks until the full run budget (or plateau) is spent.
func Embed(points [][]float64, scalar float64) ([][]float64, error) {
	res, err := Map(context.Background(), points, scalar, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return res.Points, nil
}

// Map computes a Sammon mapping of points into opts.Dim dimensions, with
// initial coordinates drawn from [0, scalar).
//
// Contracts:
//   - len(points) ≥ 2; every point has the same e ≥ 1 finite coordinates.
//   - scalar is positive and finite.
//   - ctx is checked between runs only. Cancellation after the first run
//     yields the best configuration so far with Stop == StopCancelled and a
//     nil error; cancellation before it yields ctx.Err().
//
// Errors: ErrBadOptions, ErrTooFewPoints, ErrBadScalar, ErrEmptyVertex,
// ErrRaggedPoints, ErrNaNInf, ErrTooLarge (all matchable with errors.Is,
// grouped under ErrInvalidArgument / ErrAllocation).
//
// Complexity: O(cpt²·e) setup plus, per run, O(cpt³·Dim) (FullRecompute)
// or O(cpt²·Dim) (Incremental).
func Map(ctx context.Context, points [][]float64, scalar float64, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, sammonErrorf("Map", err)
	}
	src, err := sourceDense(points)
	if err != nil {
		return nil, sammonErrorf("Map", err)
	}
	res, err := mapDense(ctx, src, scalar, opts)
	if err != nil {
		return nil, sammonErrorf("Map", err)
	}
	return res, nil
}

// MapMatrix is Map for a gonum matrix with one point per row.
func MapMatrix(ctx context.Context, src mat.Matrix, scalar float64, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, sammonErrorf("MapMatrix", err)
	}
	d, err := matrix.FromGonum(src)
	if err != nil {
		return nil, sammonErrorf("MapMatrix", fromMatrixErr(err))
	}
	res, err := mapDense(ctx, d, scalar, opts)
	if err != nil {
		return nil, sammonErrorf("MapMatrix", err)
	}
	return res, nil
}

// mapDense runs the restart loop on validated Options.
func mapDense(ctx context.Context, src *matrix.Dense, scalar float64, opts Options) (*Result, error) {
	// Stage 1: validate the remaining preconditions.
	n := src.Rows()
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if math.IsNaN(scalar) || math.IsInf(scalar*scalar, 0) || scalar <= 0 {
		return nil, ErrBadScalar
	}
	if opts.IterFactor > math.MaxInt/n {
		return nil, ErrTooLarge
	}

	// Stage 2: squared target distances, computed once.
	table, err := targetTable(src)
	if err != nil {
		return nil, err
	}
	ws, err := newWorkspace(table, opts.Dim, opts.ErrorMode)
	if err != nil {
		return nil, err
	}

	var (
		initRNG, pairRNG = opts.streams()
		log              = opts.logger()
		debug            = log.Enabled(ctx, slog.LevelDebug)
		plateau          = opts.plateauRuns()
		iterMax          = opts.IterFactor * n
		errorMin         = math.MaxFloat64
		runLastGood      = -1
		fallbackErr      float64
		runs             int
		stop             = StopExhausted
	)

	// Stage 3: independent runs; keep the best configuration ever seen.
	for run := 0; run < opts.Runs; run++ {
		if run-runLastGood > plateau {
			stop = StopPlateau
			break
		}
		if cerr := ctx.Err(); cerr != nil {
			if runLastGood < 0 {
				return nil, cerr
			}
			stop = StopCancelled
			break
		}
		runs++

		ws.randomize(initRNG, scalar)
		if run == 0 {
			// the initial draw is the answer until a step measures lower
			ws.keep()
			runLastGood = 0
			fallbackErr = ws.fullError()
		}
		for iter := 0; iter < iterMax; iter++ {
			i, j := pickPair(pairRNG, n)

			temperature := 1 - float64(iter)/float64(iterMax) // 1 → 0
			gamma := opts.Gamma * temperature * temperature  // also → 0
			ws.relax(i, j, gamma)

			e := ws.measure(i, j)
			if e < errorMin {
				errorMin = e
				runLastGood = run
				ws.keep()
				if opts.OnImprove != nil {
					opts.OnImprove(run, iter, e)
				}
				if debug {
					log.DebugContext(ctx, "sammon: new best",
						"run", run,
						"iter", iter,
						"error", e,
					)
				}
			}
		}
	}

	// No step measured a representable error; report the initial draw.
	if errorMin == math.MaxFloat64 {
		errorMin = fallbackErr
	}

	log.InfoContext(ctx, "sammon: mapping complete",
		"points", n,
		"dim", opts.Dim,
		"runs", runs,
		"last_improving_run", runLastGood,
		"stop", stop.String(),
		"error_mode", opts.ErrorMode.String(),
		"rms_error", math.Sqrt(errorMin),
	)

	// Stage 4: hand the best snapshot to the caller.
	return &Result{
		Points:           ws.best.ToRows(),
		Error:            errorMin,
		Runs:             runs,
		LastImprovingRun: runLastGood,
		IterationsPerRun: iterMax,
		Stop:             stop,
	}, nil
}
