package searchroute

import "errors"

// ErrIndexOutOfRange is returned by any accessor (At, Before, After,
// Between) given a slot index outside the route's current bounds. Never
// silently clamped.
var ErrIndexOutOfRange = errors.New("searchroute: index out of range")

// ErrDepotSlot is returned when a mutation targets a slot outside the
// client range (slot 0, size+1, or beyond): the depot slots are fixed for
// the life of the route.
var ErrDepotSlot = errors.New("searchroute: cannot mutate a depot slot")

// ErrStale is returned by Before/After/Between when called while the
// cache is dirty; callers must call Update first. The check is a dirty
// flag, active in every build, as the reference's SWAP* cache
// invalidation design implies (spec.md §8 S5).
var ErrStale = errors.New("searchroute: query against a dirty route; call Update first")
