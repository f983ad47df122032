package sammon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simplicial/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Quality summarizes how well an embedding preserves source distances.
type Quality struct {
	// TotalError is Σ|target − current| over squared distances, the
	// quantity Map minimizes.
	TotalError float64

	// Stress is Sammon's stress on plain distances:
	// (1/Σd*) · Σ (d* − d)² / d*, pairs with d* = 0 skipped.
	Stress float64

	// MeanRelError, StdRelError and MaxRelError describe |d − d*| / d* over
	// pairs with d* > 0. All zero when no such pair exists.
	MeanRelError float64
	StdRelError  float64
	MaxRelError  float64
}

// Evaluate compares embedded against source pair by pair.
// Both must describe the same number (≥ 2) of points; dimensionalities may differ.
//
// Errors: ErrTooFewPoints, ErrEmptyVertex, ErrRaggedPoints, ErrNaNInf,
// ErrInvalidArgument on a point-count mismatch.
// Complexity: O(cpt²·(e + d)).
func Evaluate(source, embedded [][]float64) (Quality, error) {
	src, err := sourceDense(source)
	if err != nil {
		return Quality{}, sammonErrorf("Evaluate", err)
	}
	emb, err := sourceDense(embedded)
	if err != nil {
		return Quality{}, sammonErrorf("Evaluate", err)
	}
	if src.Rows() != emb.Rows() {
		return Quality{}, sammonErrorf("Evaluate",
			fmt.Errorf("%w: %d source points, %d embedded", ErrInvalidArgument, src.Rows(), emb.Rows()))
	}
	table, err := targetTable(src)
	if err != nil {
		return Quality{}, sammonErrorf("Evaluate", err)
	}

	var (
		n        = src.Rows()
		target   = table.Raw()
		rel      = make([]float64, 0, len(target))
		q        Quality
		sumDist  float64
		stressSq float64
		i, j, k  int
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			cur := sqDist(emb.Row(i), emb.Row(j))
			q.TotalError += math.Abs(target[k] - cur)

			dStar, d := math.Sqrt(target[k]), math.Sqrt(cur)
			if dStar > 0 {
				sumDist += dStar
				stressSq += (dStar - d) * (dStar - d) / dStar
				rel = append(rel, math.Abs(d-dStar)/dStar)
			}
			k++
		}
	}

	if sumDist > 0 {
		q.Stress = stressSq / sumDist
	}
	switch len(rel) {
	case 0:
	case 1:
		q.MeanRelError, q.MaxRelError = rel[0], rel[0]
	default:
		q.MeanRelError, q.StdRelError = stat.MeanStdDev(rel, nil)
		q.MaxRelError = floats.Max(rel)
	}
	return q, nil
}

// configurationError is TotalError for a Dense configuration; used by tests
// and benchmarks that already hold a table.
func configurationError(table *matrix.Triangle, conf *matrix.Dense) float64 {
	w := &workspace{n: table.N(), target: table.Raw(), cur: conf}
	return w.fullError()
}
