// Package solution defines the immutable Solution and Route values that
// cross the boundary between the search driver and the outer loop: a
// Solution is a plain, hash-equatable snapshot, never mutated after
// construction, carrying the aggregates the cost evaluator needs without
// re-walking any route.
//
// Routes are produced either by the outer loop (an initial or crossover
// solution) or by searchroute's export step at the end of a search pass.
// Both paths go through New/NewRoute, which validate internal consistency
// once at construction (spec §7: "inconsistent solution import ... fail at
// construction") rather than on every later read.
//
// Grounded on the teacher's tsp.TSResult — a small, immutable output value
// produced once by a solve and read many times afterward — generalized
// here from a single tour to a multi-route, multi-vehicle-type solution.
// UUID tagging (github.com/google/uuid) follows the pattern used by the
// andy-trimble-vrp reference module for host-side route/load correlation.
package solution
