package diversity

import (
	"vrpcore/pdata"
	"vrpcore/rng"
	"vrpcore/solution"
)

// OrderedCrossover is declared to match the outer loop's contract surface
// but carries no recombination logic — building two parent solutions
// into an ordered-crossover child belongs to the population-management
// layer this package does not implement.
func OrderedCrossover(parents [2]*solution.Solution, pd *pdata.ProblemData, r *rng.RNG) (*solution.Solution, error) {
	return nil, ErrCrossoverNotImplemented
}

// SelectiveRouteExchange is declared for the same reason as
// OrderedCrossover: a contract type only, never a working recombination.
func SelectiveRouteExchange(parents [2]*solution.Solution, pd *pdata.ProblemData, r *rng.RNG) (*solution.Solution, error) {
	return nil, ErrCrossoverNotImplemented
}
