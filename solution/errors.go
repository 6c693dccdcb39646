package solution

import "errors"

// Sentinel errors for Route/Solution construction. Per spec §7 these are
// "inconsistent solution import" failures: fatal at construction, never
// discovered lazily by a later read.
var (
	// ErrUnknownClient indicates a route references a client index that
	// does not exist in the problem data.
	ErrUnknownClient = errors.New("solution: route references unknown client")

	// ErrUnknownVehicleType indicates a route references a vehicle type
	// index that does not exist.
	ErrUnknownVehicleType = errors.New("solution: route references unknown vehicle type")

	// ErrVehicleTypeOveravailable indicates more routes were built for a
	// vehicle type than NumAvailable permits.
	ErrVehicleTypeOveravailable = errors.New("solution: more routes than available vehicles for a vehicle type")

	// ErrDuplicateClient indicates the same client appears in more than one
	// route, or twice in the same route.
	ErrDuplicateClient = errors.New("solution: client assigned to more than one route")

	// ErrMissingRequiredClient indicates a client with Required() == true is
	// absent from every route.
	ErrMissingRequiredClient = errors.New("solution: required client is missing from every route")

	// ErrEmptyRoute indicates a route was built with zero clients; an
	// empty route carries no useful vehicle assignment and should simply
	// be omitted from the solution.
	ErrEmptyRoute = errors.New("solution: route has no clients")
)
