package sammon

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/simplicial/matrix"
)

// workspace owns the per-call buffers: the candidate configuration, the
// best snapshot and, in Incremental mode, one residual per pair.
type workspace struct {
	n      int
	target []float64 // packed squared source distances, TriIJ order
	cur    *matrix.Dense
	best   *matrix.Dense

	mode  ErrorMode
	resid []float64 // |target − current| per pair (Incremental only)
	total float64   // Σ resid (Incremental only)
}

// newWorkspace allocates the candidate and best buffers (n × dim).
func newWorkspace(table *matrix.Triangle, dim int, mode ErrorMode) (*workspace, error) {
	cur, err := matrix.NewDense(table.N(), dim)
	if err != nil {
		return nil, fromMatrixErr(err)
	}
	w := &workspace{
		n:      table.N(),
		target: table.Raw(),
		cur:    cur,
		best:   cur.Clone(),
		mode:   mode,
	}
	if mode == Incremental {
		w.resid = make([]float64, len(w.target))
	}
	return w, nil
}

// randomize draws every coordinate uniformly from [0, scalar) and, in
// Incremental mode, resynchronizes the residuals.
func (w *workspace) randomize(r *rand.Rand, scalar float64) {
	data := w.cur.RawData()
	for k := range data {
		data[k] = r.Float64() * scalar
	}
	if w.mode == Incremental {
		w.resync()
	}
}

// relax moves points i < j along the line joining them so their squared
// distance approaches the target. Coincident points have no direction and
// are left untouched, as are pairs whose distance or step overflows.
func (w *workspace) relax(i, j int, gamma float64) {
	a := w.cur.Row(i)
	b := w.cur.Row(j)
	distCur := sqDist(a, b)
	if !(distCur > 0) || math.IsInf(distCur, 0) {
		return
	}
	distTarget := w.target[matrix.TriIJ(i, j, w.n)]
	magnitude := gamma * (distTarget - distCur) / distCur
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return
	}

	var c float64
	for k := range a {
		c = magnitude * (a[k] - b[k])
		if math.IsInf(a[k]+c, 0) || math.IsInf(b[k]-c, 0) {
			return
		}
	}
	for k := range a {
		c = magnitude * (a[k] - b[k])
		a[k] += c
		b[k] -= c
	}
}

// measure returns the total error after a step that moved i and j.
func (w *workspace) measure(i, j int) float64 {
	if w.mode == Incremental {
		w.update(i, j)
		if math.IsNaN(w.total) || math.IsInf(w.total, 0) {
			// an overflowed residual poisons the running sum
			w.resync()
		}
		return w.total
	}
	return w.fullError()
}

// fullError sums |target − current| over all pairs.
// Complexity: O(n²·dim).
func (w *workspace) fullError() float64 {
	var (
		sum  float64
		i, j int
		k    int
	)
	for i = 0; i < w.n-1; i++ {
		a := w.cur.Row(i)
		for j = i + 1; j < w.n; j++ {
			sum += math.Abs(w.target[k] - sqDist(a, w.cur.Row(j)))
			k++
		}
	}
	return sum
}

// resync recomputes every residual and the running total.
func (w *workspace) resync() {
	var (
		i, j int
		k    int
	)
	w.total = 0
	for i = 0; i < w.n-1; i++ {
		a := w.cur.Row(i)
		for j = i + 1; j < w.n; j++ {
			w.resid[k] = math.Abs(w.target[k] - sqDist(a, w.cur.Row(j)))
			w.total += w.resid[k]
			k++
		}
	}
}

// update refreshes the residuals of every pair incident to i or j.
// Complexity: O(n·dim).
func (w *workspace) update(i, j int) {
	for k := 0; k < w.n; k++ {
		if k != i {
			w.refresh(i, k)
		}
		if k != i && k != j {
			w.refresh(j, k)
		}
	}
}

// refresh recomputes the residual of pair {p, q}, p ≠ q.
func (w *workspace) refresh(p, q int) {
	if p > q {
		p, q = q, p
	}
	idx := matrix.TriIJ(p, q, w.n)
	r := math.Abs(w.target[idx] - sqDist(w.cur.Row(p), w.cur.Row(q)))
	w.total += r - w.resid[idx]
	w.resid[idx] = r
}

// keep snapshots the candidate as the best configuration.
func (w *workspace) keep() {
	copy(w.best.RawData(), w.cur.RawData())
}
