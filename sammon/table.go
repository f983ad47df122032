package sammon

import (
	"errors"
	"math"

	"github.com/katalvlaran/simplicial/matrix"
)

// TargetTable returns the squared Euclidean distance between every pair of
// points, packed so that slot matrix.TriIJ(i, j, cpt) holds pair (i, j).
//
// Errors: ErrTooFewPoints, ErrEmptyVertex, ErrRaggedPoints, ErrNaNInf.
// Complexity: O(cpt²·e) time, O(cpt²) memory.
func TargetTable(points [][]float64) (*matrix.Triangle, error) {
	src, err := sourceDense(points)
	if err != nil {
		return nil, sammonErrorf("TargetTable", err)
	}
	t, err := targetTable(src)
	if err != nil {
		return nil, sammonErrorf("TargetTable", err)
	}
	return t, nil
}

// sourceDense validates points and copies them into a Dense, translating
// matrix sentinels into this package's taxonomy.
func sourceDense(points [][]float64) (*matrix.Dense, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	src, err := matrix.NewDenseFromRows(points)
	if err != nil {
		return nil, fromMatrixErr(err)
	}
	return src, nil
}

// fromMatrixErr maps matrix sentinels onto sammon sentinels.
func fromMatrixErr(err error) error {
	switch {
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return ErrEmptyVertex
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return ErrRaggedPoints
	case errors.Is(err, matrix.ErrNaNInf):
		return ErrNaNInf
	case errors.Is(err, matrix.ErrTooLarge):
		return ErrTooLarge
	case errors.Is(err, matrix.ErrNilMatrix):
		return ErrTooFewPoints
	default:
		return err
	}
}

// targetTable fills the packed triangle from src rows. The k counter walks
// pairs in TriIJ order, so no index arithmetic is needed.
func targetTable(src *matrix.Dense) (*matrix.Triangle, error) {
	n := src.Rows()
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	t, err := matrix.NewTriangle(n)
	if err != nil {
		return nil, fromMatrixErr(err)
	}

	var (
		raw  = t.Raw()
		i, j int
		k    int
	)
	for i = 0; i < n-1; i++ {
		a := src.Row(i)
		for j = i + 1; j < n; j++ {
			raw[k] = sqDist(a, src.Row(j))
			if math.IsInf(raw[k], 0) {
				return nil, ErrNaNInf
			}
			k++
		}
	}
	return t, nil
}

// sqDist returns Σ(a_k − b_k)². Lengths must match.
func sqDist(a, b []float64) float64 {
	var sum, d float64
	for k := range a {
		d = b[k] - a[k]
		sum += d * d
	}
	return sum
}
