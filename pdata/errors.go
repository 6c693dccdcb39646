package pdata

import "errors"

// Sentinel errors for ProblemData construction and access. Construction
// errors are fatal to the solve (spec §7: "Input validity"); index errors
// on accessors fail immediately and are never silently clamped.
var (
	// ErrNoLocations indicates zero depots and clients were provided.
	ErrNoLocations = errors.New("pdata: no locations (need at least one depot)")

	// ErrNoDepots indicates zero depots were provided; every vehicle type
	// must reference a valid depot index.
	ErrNoDepots = errors.New("pdata: no depots")

	// ErrMatrixShape indicates a distance/duration matrix is not square or
	// not sized num_locations x num_locations.
	ErrMatrixShape = errors.New("pdata: matrix must be square and sized num_locations")

	// ErrNegativeMeasure indicates a negative distance or duration entry.
	ErrNegativeMeasure = errors.New("pdata: negative distance or duration")

	// ErrBadTimeWindow indicates tw_early > tw_late for a client, depot, or
	// vehicle type shift window.
	ErrBadTimeWindow = errors.New("pdata: tw_early > tw_late")

	// ErrBadReleaseTime indicates release_time > tw_late for a client.
	ErrBadReleaseTime = errors.New("pdata: release_time > tw_late")

	// ErrDepotIndexOutOfRange indicates a VehicleType.DepotIndex falls
	// outside [0, num_depots).
	ErrDepotIndexOutOfRange = errors.New("pdata: vehicle type depot index out of range")

	// ErrNoVehicleTypes indicates an empty fleet was provided.
	ErrNoVehicleTypes = errors.New("pdata: no vehicle types")

	// ErrNonPositiveCapacity indicates a vehicle type with capacity <= 0.
	ErrNonPositiveCapacity = errors.New("pdata: vehicle type capacity must be positive")

	// ErrNonPositiveAvailability indicates a vehicle type with
	// num_available <= 0.
	ErrNonPositiveAvailability = errors.New("pdata: vehicle type has no available vehicles")

	// ErrIndexOutOfRange is returned by Location/Client/Depot/VehicleType
	// accessors on an out-of-range index. Never clamped.
	ErrIndexOutOfRange = errors.New("pdata: index out of range")

	// ErrNegativeDemand indicates a client with negative delivery or pickup demand.
	ErrNegativeDemand = errors.New("pdata: negative delivery or pickup demand")

	// ErrNegativePrize indicates a client with a negative prize.
	ErrNegativePrize = errors.New("pdata: negative prize")
)
