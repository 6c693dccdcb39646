// Package rng implements the deterministic xorshift128-style generator the
// search driver threads through every call site that needs randomness:
// the driver uses it for randomized client iteration order, and the
// vrpsolve command for random instance generation. Tie-breaking among
// equal-cost candidates and the diversity/repair utilities are
// deterministic and do not use it.
//
// Grounded on the teacher's tsp/rng.go discipline — deterministic seeding,
// no time-based source, the generator passed explicitly to each user —
// but the generator body itself is rewritten: the teacher
// wraps math/rand (a 64-bit source), while this package implements the
// explicit 4x32-bit xorshift state with state() disclosure the spec
// requires for exact checkpoint/restore across a search pass.
package rng
