// Package matrix provides the flat numeric buffers used by the mapping engine.
//
// The matrix package provides:
//
//   - Dense: a row-major r×c buffer of float64 with bounds-checked At/Set and
//     zero-copy Row views for hot loops. One row per point, one column per
//     coordinate.
//   - Triangle: packed storage for symmetric pairwise tables (zero diagonal),
//     addressed by TriIJ(i, j, n) for 0 ≤ i < j < n.
//   - ToGonum / FromGonum: copies to and from gonum.org/v1/gonum/mat.
//
// Memory:
//
//	Dense    O(r·c)
//	Triangle O(n²/2)
//
// All errors are sentinels from errors.go; match them with errors.Is.
package matrix
