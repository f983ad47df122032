// Package sammon - RNG utilities for the two random streams.
//
// The mapping consumes two independent streams: one draws initial
// coordinates, the other selects pairs. They are never merged, so changing
// one seed leaves the other stream's sequence intact.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - MapAll derives per-job seeds with deriveSeed instead of sharing streams.
package sammon

import "math/rand"

// defaultRNGSeed is the parent seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Stream identifiers mixed into seeds; distinct so default streams differ.
const (
	initStream uint64 = 1
	pairStream uint64 = 2
)

// rngFromSeed returns a deterministic *rand.Rand for the given stream.
// Policy: seed==0 ⇒ deriveSeed(defaultRNGSeed, stream); otherwise the seed is
// used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64, stream uint64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = deriveSeed(defaultRNGSeed, stream)
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer; small input changes flip about half the bits.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streams resolves the init and pair streams of o.
func (o Options) streams() (initRNG, pairRNG *rand.Rand) {
	initRNG = o.InitRand
	if initRNG == nil {
		initRNG = rngFromSeed(o.InitSeed, initStream)
	}
	pairRNG = o.PairRand
	if pairRNG == nil {
		pairRNG = rngFromSeed(o.PairSeed, pairStream)
	}
	return initRNG, pairRNG
}

// parentSeed returns the value job seeds are derived from: one draw from the
// explicit stream when present (advancing it), else the configured seed.
func parentSeed(r *rand.Rand, seed int64, stream uint64) int64 {
	if r != nil {
		return r.Int63()
	}
	if seed == 0 {
		return deriveSeed(defaultRNGSeed, stream)
	}
	return seed
}

// jobOptions returns a copy of o for batch job k with private seeds.
// Explicit streams are dropped; parents come from parentSeed.
func jobOptions(o Options, initParent, pairParent int64, k int) Options {
	jo := o
	jo.InitRand, jo.PairRand = nil, nil
	jo.InitSeed = deriveSeed(initParent, uint64(k))
	jo.PairSeed = deriveSeed(pairParent, uint64(k))
	return jo
}

// pickPair draws an unordered pair of distinct indices in [0, n), n ≥ 2,
// by rejection sampling, and returns it ordered so that i < j.
//
// Complexity: expected O(n/(n-1)) draws.
func pickPair(r *rand.Rand, n int) (i, j int) {
	for {
		i = r.Intn(n)
		j = r.Intn(n)
		if i != j {
			break
		}
	}
	if i > j {
		i, j = j, i
	}
	return i, j
}
