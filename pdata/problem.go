package pdata

import (
	"vrpcore/matrix"
	"vrpcore/measure"
)

// ProblemData is the immutable description of one VRP instance: depots
// occupy location indices [0, NumDepots()), clients occupy
// [NumDepots(), NumLocations()), and Dist/Duration give O(1) lookups
// between any two location indices.
//
// Lifecycle: built once via New, shared by reference for the whole solve.
// Never mutated after construction (spec.md §5 shared resource discipline).
type ProblemData struct {
	depots       []Depot
	clients      []Client
	vehicleTypes []VehicleType
	distances    *matrix.Dense
	durations    *matrix.Dense
}

// Option configures New's optional validation/preparation behavior.
type Option func(*buildConfig)

type buildConfig struct {
	metricClosure bool
}

// WithMetricClosure runs a Floyd–Warshall closure over the distance matrix
// before freezing it, completing a partially specified instance (missing
// edges represented as 0, the adjacency convention) into a full metric.
// Adapted from the teacher's tsp.Options.RunMetricClosure knob.
func WithMetricClosure() Option {
	return func(c *buildConfig) { c.metricClosure = true }
}

// New validates and freezes a ProblemData instance.
//
// Contracts (spec.md §3, §7 — all fatal to construction, never clamped):
//   - at least one depot; at least one vehicle type.
//   - distances and durations are square, sized len(depots)+len(clients).
//   - no negative distance/duration entries.
//   - every client/depot/vehicle-type time window has TWEarly <= TWLate.
//   - every client's ReleaseTime <= TWLate.
//   - every client's Delivery/Pickup/Prize >= 0.
//   - every vehicle type's DepotIndex is in [0, len(depots)), Capacity > 0,
//     NumAvailable > 0.
//
// Complexity: O(n²) (matrix validation dominates), where n = number of
// locations.
func New(depots []Depot, clients []Client, vehicleTypes []VehicleType, distances, durations *matrix.Dense, opts ...Option) (*ProblemData, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(depots) == 0 {
		return nil, ErrNoDepots
	}
	if len(depots)+len(clients) == 0 {
		return nil, ErrNoLocations
	}
	if len(vehicleTypes) == 0 {
		return nil, ErrNoVehicleTypes
	}

	n := len(depots) + len(clients)
	if err := validateMatrixShape(distances, n); err != nil {
		return nil, err
	}
	if err := validateMatrixShape(durations, n); err != nil {
		return nil, err
	}

	if cfg.metricClosure {
		distances = distances.Clone()
		if err := matrix.InitOpenEntries(distances); err != nil {
			return nil, err
		}
		if err := matrix.FloydWarshall(distances); err != nil {
			return nil, err
		}
	}

	if err := validateNonNegative(distances); err != nil {
		return nil, err
	}
	if err := validateNonNegative(durations); err != nil {
		return nil, err
	}

	for i := range depots {
		if depots[i].TWEarly_ > depots[i].TWLate_ {
			return nil, ErrBadTimeWindow
		}
	}

	for i := range clients {
		c := clients[i]
		if c.TWEarly_ > c.TWLate_ {
			return nil, ErrBadTimeWindow
		}
		if c.ReleaseTime_ > c.TWLate_ {
			return nil, ErrBadReleaseTime
		}
		if c.Delivery_ < 0 || c.Pickup_ < 0 {
			return nil, ErrNegativeDemand
		}
		if c.Prize_ < 0 {
			return nil, ErrNegativePrize
		}
	}

	for i := range vehicleTypes {
		vt := vehicleTypes[i]
		if vt.DepotIndex_ < 0 || vt.DepotIndex_ >= len(depots) {
			return nil, ErrDepotIndexOutOfRange
		}
		if vt.Capacity_ <= 0 {
			return nil, ErrNonPositiveCapacity
		}
		if vt.NumAvailable_ <= 0 {
			return nil, ErrNonPositiveAvailability
		}
		if vt.TWEarly_ > vt.TWLate_ {
			return nil, ErrBadTimeWindow
		}
	}

	pd := &ProblemData{
		depots:       append([]Depot(nil), depots...),
		clients:      append([]Client(nil), clients...),
		vehicleTypes: append([]VehicleType(nil), vehicleTypes...),
		distances:    distances.Clone(),
		durations:    durations.Clone(),
	}

	return pd, nil
}

func validateMatrixShape(m *matrix.Dense, n int) error {
	if m == nil {
		return ErrMatrixShape
	}
	if m.N() != n {
		return ErrMatrixShape
	}

	return nil
}

func validateNonNegative(m *matrix.Dense) error {
	n := m.N()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := m.MustAt(i, j)
			if v < 0 {
				return ErrNegativeMeasure
			}
		}
	}

	return nil
}

// NumDepots returns the number of depots.
//
// Complexity: O(1).
func (pd *ProblemData) NumDepots() int { return len(pd.depots) }

// NumClients returns the number of clients.
//
// Complexity: O(1).
func (pd *ProblemData) NumClients() int { return len(pd.clients) }

// NumLocations returns NumDepots() + NumClients().
//
// Complexity: O(1).
func (pd *ProblemData) NumLocations() int { return len(pd.depots) + len(pd.clients) }

// NumVehicleTypes returns the number of distinct vehicle types.
//
// Complexity: O(1).
func (pd *ProblemData) NumVehicleTypes() int { return len(pd.vehicleTypes) }

// Depot returns the depot at depot index idx (not a location index).
// Fails immediately on an out-of-range index; never clamped.
//
// Complexity: O(1).
func (pd *ProblemData) Depot(idx int) (Depot, error) {
	if idx < 0 || idx >= len(pd.depots) {
		return Depot{}, ErrIndexOutOfRange
	}

	return pd.depots[idx], nil
}

// Client returns the client at client index idx (0-based among clients,
// not a location index). Fails immediately on an out-of-range index.
//
// Complexity: O(1).
func (pd *ProblemData) Client(idx int) (Client, error) {
	if idx < 0 || idx >= len(pd.clients) {
		return Client{}, ErrIndexOutOfRange
	}

	return pd.clients[idx], nil
}

// VehicleType returns the vehicle type at index idx.
//
// Complexity: O(1).
func (pd *ProblemData) VehicleType(idx int) (VehicleType, error) {
	if idx < 0 || idx >= len(pd.vehicleTypes) {
		return VehicleType{}, ErrIndexOutOfRange
	}

	return pd.vehicleTypes[idx], nil
}

// Location returns the Location (Depot or Client) at the given location
// index: depots occupy [0, NumDepots()), clients occupy
// [NumDepots(), NumLocations()).
//
// Complexity: O(1).
func (pd *ProblemData) Location(locIdx int) (Location, error) {
	if locIdx < 0 || locIdx >= pd.NumLocations() {
		return nil, ErrIndexOutOfRange
	}
	if locIdx < len(pd.depots) {
		return pd.depots[locIdx], nil
	}

	return pd.clients[locIdx-len(pd.depots)], nil
}

// ClientLocationIndex converts a client index (0-based among clients) to
// its location index (offset by NumDepots()).
//
// Complexity: O(1).
func (pd *ProblemData) ClientLocationIndex(clientIdx int) int {
	return len(pd.depots) + clientIdx
}

// Dist returns the travel distance from location i to location j.
//
// Complexity: O(1).
func (pd *ProblemData) Dist(i, j int) (measure.Scalar, error) {
	v, err := pd.distances.At(i, j)
	if err != nil {
		return 0, ErrIndexOutOfRange
	}

	return measure.FromFloat64(v), nil
}

// Duration returns the travel duration from location i to location j.
//
// Complexity: O(1).
func (pd *ProblemData) Duration(i, j int) (measure.Scalar, error) {
	v, err := pd.durations.At(i, j)
	if err != nil {
		return 0, ErrIndexOutOfRange
	}

	return measure.FromFloat64(v), nil
}

// MustDist is Dist without the error return, for hot local-search loops
// that have already validated indices once. Panics on OOB, mirroring
// slice-index semantics.
//
// Complexity: O(1).
func (pd *ProblemData) MustDist(i, j int) measure.Scalar {
	return measure.FromFloat64(pd.distances.MustAt(i, j))
}

// MustDuration is Duration without the error return.
//
// Complexity: O(1).
func (pd *ProblemData) MustDuration(i, j int) measure.Scalar {
	return measure.FromFloat64(pd.durations.MustAt(i, j))
}
