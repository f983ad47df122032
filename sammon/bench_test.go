package sammon_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/simplicial/sammon"
)

// benchmarkMap runs a fixed-budget mapping of n points in e dimensions.
func benchmarkMap(b *testing.B, n, e int, mode sammon.ErrorMode) {
	pts := randomPoints(n, e, 1)
	opts := sammon.DefaultOptions()
	opts.Runs = 10
	opts.PlateauRuns = -1
	opts.ErrorMode = mode

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sammon.Map(context.Background(), pts, 1.0, opts); err != nil {
			b.Fatalf("Map failed: %v", err)
		}
	}
}

// BenchmarkMap_Full16 measures the default full recomputation on 16 points.
func BenchmarkMap_Full16(b *testing.B) { benchmarkMap(b, 16, 8, sammon.FullRecompute) }

// BenchmarkMap_Incremental16 measures the incremental mode on 16 points.
func BenchmarkMap_Incremental16(b *testing.B) { benchmarkMap(b, 16, 8, sammon.Incremental) }

// BenchmarkMap_Full48 shows the cubic growth of the default mode.
func BenchmarkMap_Full48(b *testing.B) { benchmarkMap(b, 48, 8, sammon.FullRecompute) }

// BenchmarkMap_Incremental48 shows the quadratic growth of the incremental mode.
func BenchmarkMap_Incremental48(b *testing.B) { benchmarkMap(b, 48, 8, sammon.Incremental) }
