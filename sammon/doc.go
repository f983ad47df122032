// Package sammon computes Sammon's mapping: a low-dimensional point
// configuration whose pairwise squared distances approximate those of a
// higher-dimensional source set.
//
// 🚀 What is it for?
//
//	Simplicial interpolation needs its anchor points laid out in a small
//	control space (typically 2D) while keeping the neighbourhood structure of
//	the full parameter space. Map places cpt points of dimensionality e into
//	a cube of side scalar in Dim dimensions.
//
// ⚙️ Algorithm:
//
//  1. Squared source distances are computed once into a packed triangle
//     (matrix.Triangle, indexed by matrix.TriIJ).
//  2. Up to Runs independent restarts. Each run draws a uniform random
//     configuration in [0, scalar)^Dim, then performs IterFactor·cpt
//     stochastic pair relaxations. Step size follows the annealing
//     coefficient gamma = Gamma·(1 − iter/iterMax)².
//  3. After every step the total error Σ|target − current| is measured; the
//     lowest-error configuration ever seen is kept and returned.
//  4. Restarting stops early after PlateauRuns runs without improvement.
//
// Randomness comes from two independent streams (initial coordinates and
// pair selection), each an explicit *rand.Rand or a seed in Options. Equal
// seeds and input give identical output.
//
// Usage:
//
//	opts := sammon.DefaultOptions()
//	opts.InitSeed, opts.PairSeed = 7, 11
//	res, err := sammon.Map(ctx, points, 1.0, opts)
//	if err != nil {
//	  // errors.Is(err, sammon.ErrInvalidArgument) for bad input
//	}
//	fmt.Println(res.Points, res.Error)
//
// Performance:
//
//   - Table: O(cpt²·e) once.
//   - Per run: O(cpt³·Dim) with ErrorMode FullRecompute (the default),
//     O(cpt²·Dim) with Incremental.
//   - Memory: O(cpt² + cpt·Dim).
package sammon
