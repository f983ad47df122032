package sammon_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/simplicial/sammon"
	"github.com/stretchr/testify/require"
)

const (
	seedInit int64 = 7
	seedPair int64 = 11
)

// fastOptions returns a seeded configuration with a small run budget.
func fastOptions() sammon.Options {
	opts := sammon.DefaultOptions()
	opts.Runs = 40
	opts.InitSeed = seedInit
	opts.PairSeed = seedPair
	return opts
}

// randomPoints returns n points of dimension e uniformly in [0, 1).
func randomPoints(n, e int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, e)
		for k := range pts[i] {
			pts[i][k] = r.Float64()
		}
	}
	return pts
}

// unitSquare returns the corners of a unit square embedded in 3D (z = 0).
func unitSquare() [][]float64 {
	return [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
}

// requireFinite fails on any NaN or ±Inf coordinate.
func requireFinite(t *testing.T, pts [][]float64) {
	t.Helper()
	for i, p := range pts {
		for k, v := range p {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "point %d coord %d = %v", i, k, v)
		}
	}
}

// dist returns the Euclidean distance between a and b.
func dist(a, b []float64) float64 {
	var s float64
	for k := range a {
		s += (a[k] - b[k]) * (a[k] - b[k])
	}
	return math.Sqrt(s)
}
