// Package diversity holds the utilities a population-based outer loop
// needs around the local-search core without pulling it into the driver
// itself: a distance metric between two solutions, and two repair
// strategies that insert unvisited (optional) clients into a solution's
// existing routes at their cheapest penalised-cost position. The repaired
// solution is not checked for feasibility.
//
// Crossover (ordered_crossover, selective_route_exchange) is declared
// here only as a contract — the real recombination logic lives in the
// outer loop this package never implements, per the scope carved out in
// the package's errors.go.
package diversity
