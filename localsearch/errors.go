package localsearch

import "errors"

// ErrDepotCross names a candidate segment that would cross a depot
// boundary (extend into or past slot 0 or the final slot). No operator in
// this package returns it: such a candidate is reported as ErrNoMove.
var ErrDepotCross = errors.New("localsearch: segment crosses depot boundary")

// ErrOverlap names two same-route segments that overlap. No operator in
// this package returns it: such a candidate is reported as ErrNoMove.
var ErrOverlap = errors.New("localsearch: segments overlap")

// ErrNoMove is returned by Apply when called without a prior improving
// Evaluate, after the routes changed underneath a cached best move, or
// for a candidate pair the operator cannot apply (overlapping segments, a
// segment crossing a depot).
var ErrNoMove = errors.New("localsearch: no pending move to apply")

// ErrDifferentVehicleTypesRequired is returned by SwapRoutes when the two
// routes share a vehicle type — nothing would change.
var ErrDifferentVehicleTypesRequired = errors.New("localsearch: SwapRoutes requires distinct vehicle types")
