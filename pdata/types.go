package pdata

import "vrpcore/measure"

// Location is the common read-only surface of Client and Depot: a 2D
// coordinate and a time window. A client's single-location
// DurationSegment also needs its service duration and release time,
// which only Client carries.
type Location interface {
	// X returns the location's x coordinate.
	X() measure.Scalar
	// Y returns the location's y coordinate.
	Y() measure.Scalar
	// TWEarly returns the earliest feasible arrival/departure time.
	TWEarly() measure.Scalar
	// TWLate returns the latest feasible arrival/departure time.
	TWLate() measure.Scalar
	// Name returns a human-readable label (may be empty).
	Name() string
	// IsDepot reports whether this location is a depot (no demand, no
	// service duration, no prize).
	IsDepot() bool
}

// Depot is a starting/ending location for vehicle routes: it carries a
// time window but no demand, service duration, or prize.
type Depot struct {
	X_       measure.Scalar
	Y_       measure.Scalar
	TWEarly_ measure.Scalar
	TWLate_  measure.Scalar
	Name_    string
}

var _ Location = Depot{}

func (d Depot) X() measure.Scalar       { return d.X_ }
func (d Depot) Y() measure.Scalar       { return d.Y_ }
func (d Depot) TWEarly() measure.Scalar { return d.TWEarly_ }
func (d Depot) TWLate() measure.Scalar  { return d.TWLate_ }
func (d Depot) Name() string            { return d.Name_ }
func (d Depot) IsDepot() bool           { return true }

// Client is a location to be visited: it carries delivery/pickup demand,
// a service duration, an optional time window, a release time, an
// optional prize, and a flag controlling whether omission is permitted.
//
// Invariants (enforced at ProblemData construction):
//
//	TWEarly_ <= TWLate_
//	ReleaseTime_ <= TWLate_
//	Delivery_ >= 0, Pickup_ >= 0, Prize_ >= 0
type Client struct {
	X_               measure.Scalar
	Y_               measure.Scalar
	Delivery_        measure.Scalar
	Pickup_          measure.Scalar
	ServiceDuration_ measure.Scalar
	TWEarly_         measure.Scalar
	TWLate_          measure.Scalar
	ReleaseTime_     measure.Scalar
	Prize_           measure.Scalar
	// Required controls whether omitting this client is ever considered.
	// If true, every Solution must visit the client (solution.New rejects
	// one that does not); only clients with Required_ == false may be left
	// unvisited, forfeiting Prize_ (spec.md §3, §8 S6).
	Required_ bool
	Name_     string
}

var _ Location = Client{}

func (c Client) X() measure.Scalar          { return c.X_ }
func (c Client) Y() measure.Scalar          { return c.Y_ }
func (c Client) TWEarly() measure.Scalar    { return c.TWEarly_ }
func (c Client) TWLate() measure.Scalar     { return c.TWLate_ }
func (c Client) Name() string               { return c.Name_ }
func (c Client) IsDepot() bool              { return false }
func (c Client) Delivery() measure.Scalar   { return c.Delivery_ }
func (c Client) Pickup() measure.Scalar     { return c.Pickup_ }
func (c Client) ServiceDuration() measure.Scalar { return c.ServiceDuration_ }
func (c Client) ReleaseTime() measure.Scalar { return c.ReleaseTime_ }
func (c Client) Prize() measure.Scalar      { return c.Prize_ }
func (c Client) Required() bool             { return c.Required_ }

// VehicleType describes a homogeneous group of vehicles available from one
// depot: how many, their capacity, fixed activation cost, shift window,
// and maximum on-duty duration.
type VehicleType struct {
	NumAvailable_ int
	Capacity_     measure.Scalar
	DepotIndex_   int
	FixedCost_    measure.Scalar
	TWEarly_      measure.Scalar
	TWLate_       measure.Scalar
	// MaxDuration bounds total on-duty time (travel + service + wait);
	// zero means unbounded.
	MaxDuration_ measure.Scalar
	Name_        string
}

func (v VehicleType) NumAvailable() int           { return v.NumAvailable_ }
func (v VehicleType) Capacity() measure.Scalar     { return v.Capacity_ }
func (v VehicleType) DepotIndex() int              { return v.DepotIndex_ }
func (v VehicleType) FixedCost() measure.Scalar    { return v.FixedCost_ }
func (v VehicleType) TWEarly() measure.Scalar      { return v.TWEarly_ }
func (v VehicleType) TWLate() measure.Scalar       { return v.TWLate_ }
func (v VehicleType) MaxDuration() measure.Scalar  { return v.MaxDuration_ }
func (v VehicleType) Name() string                 { return v.Name_ }
