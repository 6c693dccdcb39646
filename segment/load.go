package segment

import "vrpcore/measure"

// LoadSegment summarizes accumulated delivery and pickup demand along a
// chain, plus the peak instantaneous vehicle load reached anywhere in it.
//
// LoadSegment.merge needs no distance lookup: it is a pure function of the
// two operands, since demand accumulates independently of travel.
type LoadSegment struct {
	delivery measure.Scalar
	pickup   measure.Scalar
	load     measure.Scalar
}

// NewLoadSegment builds the single-location segment for a location with
// the given delivery and pickup demand (zero for a depot).
func NewLoadSegment(delivery, pickup measure.Scalar) LoadSegment {
	return LoadSegment{delivery: delivery, pickup: pickup, load: measure.Max(delivery, pickup)}
}

func (s LoadSegment) Delivery() measure.Scalar { return s.delivery }
func (s LoadSegment) Pickup() measure.Scalar   { return s.pickup }
func (s LoadSegment) Load() measure.Scalar     { return s.load }

// MergeLoad concatenates a then b. The peak load along the combined chain
// is the larger of: the load reached in a plus whatever b later delivers
// (a delivery not yet dropped still weighs on the vehicle), and the pickup
// already collected in a plus the peak load reached in b.
//
// Complexity: O(1).
func MergeLoad(a, b LoadSegment) LoadSegment {
	return LoadSegment{
		delivery: a.delivery + b.delivery,
		pickup:   a.pickup + b.pickup,
		load:     measure.Max(a.load+b.delivery, a.pickup+b.load),
	}
}

// MergeLoad3 is merge(merge(a,b),c).
//
// Complexity: O(1).
func MergeLoad3(a, b, c LoadSegment) LoadSegment {
	return MergeLoad(MergeLoad(a, b), c)
}
