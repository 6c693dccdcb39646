//go:build vrp_notw

package segment

import "vrpcore/measure"

// DurationProvider is the O(1) travel-duration lookup a merge needs
// between the last location of one segment and the first location of the
// next. pdata.ProblemData satisfies this via its MustDuration method.
type DurationProvider interface {
	MustDuration(i, j int) measure.Scalar
}

// DurationSegment is the degenerate, time-windows-disabled variant named
// by spec.md §6 ("a build-time switch compiles out all time-window code
// paths; DurationSegment still exists as a degenerate type carrying only
// travel duration") and §4.1 (merge reduces to a.duration + t + b.duration).
// It keeps the same exported surface as the time-windows build so every
// caller (searchroute, costeval, localsearch) compiles unchanged under
// either tag — tw_early/tw_late/release_time accessors and the time_warp
// feasibility projection all report the degenerate zero value.
type DurationSegment struct {
	idxFirst int
	idxLast  int
	duration measure.Scalar
}

// NewDurationSegment builds the single-location segment at locIdx.
// twEarly, twLate, and releaseTime are accepted for call-site symmetry
// with the time-windows build but carry no information here.
func NewDurationSegment(locIdx int, serviceDuration, twEarly, twLate, releaseTime measure.Scalar) DurationSegment {
	return DurationSegment{
		idxFirst: locIdx,
		idxLast:  locIdx,
		duration: serviceDuration,
	}
}

func (s DurationSegment) IdxFirst() int               { return s.idxFirst }
func (s DurationSegment) IdxLast() int                { return s.idxLast }
func (s DurationSegment) Duration() measure.Scalar    { return s.duration }
func (s DurationSegment) TimeWarpRaw() measure.Scalar { return 0 }
func (s DurationSegment) TWEarly() measure.Scalar     { return 0 }
func (s DurationSegment) TWLate() measure.Scalar      { return 0 }
func (s DurationSegment) ReleaseTime() measure.Scalar { return 0 }

// TimeWarp is always 0: this build carries no time-window feasibility
// tracking at all, not even duration-overrun/release-lateness checks —
// CVRP-family instances have no schedule to violate.
//
// Complexity: O(1).
func (s DurationSegment) TimeWarp(maxDuration measure.Scalar) measure.Scalar {
	return 0
}

// MergeDuration concatenates a then b, separated by travel time
// t = Duration[a.idx_last, b.idx_first]. No time-warp or window
// propagation: just accumulated travel+service duration.
//
// Complexity: O(1).
func MergeDuration(d DurationProvider, a, b DurationSegment) DurationSegment {
	t := d.MustDuration(a.idxLast, b.idxFirst)

	return DurationSegment{
		idxFirst: a.idxFirst,
		idxLast:  b.idxLast,
		duration: a.duration + t + b.duration,
	}
}

// MergeDuration3 is merge(merge(a,b),c).
//
// Complexity: O(1).
func MergeDuration3(d DurationProvider, a, b, c DurationSegment) DurationSegment {
	return MergeDuration(d, MergeDuration(d, a, b), c)
}
