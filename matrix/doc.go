// Package matrix provides a dense, row-major numeric matrix used as the
// backing store for ProblemData's distance and duration tables.
//
// Adapted from the teacher's (katalvlaran/lvlath) matrix/dense.go: same
// flat-slice row-major layout, same bounds-checked At/Set contract, same
// deep-copy Clone. Trimmed to what VRPCORE actually needs — a square
// Dense matrix, shape validators, and an in-place Floyd–Warshall closure
// (adapted from the teacher's matrix/ops/floyd_warshal.go) for completing
// a partially specified instance before it is frozen into a ProblemData.
// Adjacency/incidence matrix views, eigendecomposition, LU/QR/inverse, and
// graph-conversion helpers are dropped: nothing in VRPCORE reads a sparse
// graph or needs general linear algebra.
package matrix
