package diversity

import "errors"

// ErrNoFeasiblePosition is returned by a repair strategy when a client
// cannot be inserted into any existing route without being rejected by
// the underlying solution construction (e.g. the solution has no routes,
// or every candidate route rejects the client). Repair never opens a new
// route.
var ErrNoFeasiblePosition = errors.New("diversity: no route available to insert client into")

// ErrCrossoverNotImplemented marks the recombination operators as a
// declared contract with no recombination logic behind it — real
// crossover belongs to the outer loop this package does not own.
var ErrCrossoverNotImplemented = errors.New("diversity: crossover is an external contract, not implemented here")
