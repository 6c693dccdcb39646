// Package pdata defines the immutable problem description consumed by the
// search engine: clients, depots, vehicle types, and the distance/duration
// matrices between all locations.
//
// ProblemData is built once by the outer loop (or cmd/vrpsolve for the
// demo) and never mutated afterward; every package downstream
// (segment, costeval, solution, searchroute, localsearch) holds it by
// shared pointer and only reads it. Construction-time validation follows
// the teacher's (katalvlaran/lvlath) tsp/validate.go staged-validation
// discipline: non-square matrices, negative distances, tw_early > tw_late,
// and out-of-range depot indices are all fatal to construction, never
// silently clamped.
//
// Complexity: construction is O(n²) in the number of locations (matrix
// validation dominates); every accessor below is O(1).
package pdata
