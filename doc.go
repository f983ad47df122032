// Package simplicial holds the layout core of an interpolated-mapping
// library for musical instruments: anchor presets living in a
// high-dimensional synthesis-parameter space are placed on a low-dimensional
// control surface so that similar presets stay close together.
//
// 🚀 What is inside?
//
//	• sammon/ - Sammon's mapping: multi-restart stochastic pair relaxation
//	            with an annealing schedule, seeded random streams, quality
//	            metrics and a concurrent batch entry point.
//	• matrix/ - flat row-major point buffers and packed pairwise tables
//	            (TriIJ), with gonum interop.
//	• ga/     - the contract of the genetic-search driver used alongside
//	            the mapping (interface only).
//
// Quick start:
//
//	res, err := sammon.Map(ctx, presets, 1.0, sammon.DefaultOptions())
//
// See examples/ for a runnable layout of six instrument presets.
//
//	go get github.com/katalvlaran/simplicial
package simplicial
