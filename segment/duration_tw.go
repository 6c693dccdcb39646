//go:build !vrp_notw

package segment

import "vrpcore/measure"

// DurationProvider is the O(1) travel-duration lookup a merge needs
// between the last location of one segment and the first location of the
// next. pdata.ProblemData satisfies this via its MustDuration method.
type DurationProvider interface {
	MustDuration(i, j int) measure.Scalar
}

// DurationSegment is the canonical Vidal representation of a partial
// route's time-feasibility projection: travel+service duration
// accumulated so far, time warp (infeasibility) accumulated so far, the
// feasible window of departure times from idx_first, and the latest
// release time seen along the chain.
//
// time_warp is read off the segment by TimeWarp, which additionally folds
// in duration overrun against a vehicle's max_duration and release-time
// lateness — both are properties of the *read*, never stored on the
// segment and never used inside Merge (see DESIGN.md open question).
type DurationSegment struct {
	idxFirst    int
	idxLast     int
	duration    measure.Scalar
	timeWarp    measure.Scalar
	twEarly     measure.Scalar
	twLate      measure.Scalar
	releaseTime measure.Scalar
}

// NewDurationSegment builds the single-location segment at locIdx: the
// segment's own service duration contributes to duration, the location's
// time window bounds twEarly/twLate, no time warp yet.
func NewDurationSegment(locIdx int, serviceDuration, twEarly, twLate, releaseTime measure.Scalar) DurationSegment {
	return DurationSegment{
		idxFirst:    locIdx,
		idxLast:     locIdx,
		duration:    serviceDuration,
		timeWarp:    0,
		twEarly:     twEarly,
		twLate:      twLate,
		releaseTime: releaseTime,
	}
}

func (s DurationSegment) IdxFirst() int             { return s.idxFirst }
func (s DurationSegment) IdxLast() int              { return s.idxLast }
func (s DurationSegment) Duration() measure.Scalar  { return s.duration }
func (s DurationSegment) TimeWarpRaw() measure.Scalar { return s.timeWarp }
func (s DurationSegment) TWEarly() measure.Scalar   { return s.twEarly }
func (s DurationSegment) TWLate() measure.Scalar    { return s.twLate }
func (s DurationSegment) ReleaseTime() measure.Scalar { return s.releaseTime }

// TimeWarp derives the total infeasibility of the chain this segment
// summarizes, including duration overrun against maxDuration (0 means
// unbounded) and release-time lateness, on top of the time warp already
// accumulated by Merge along the way.
//
// Complexity: O(1).
func (s DurationSegment) TimeWarp(maxDuration measure.Scalar) measure.Scalar {
	overrun := measure.Scalar(0)
	if maxDuration > 0 {
		overrun = measure.PosPart(s.duration - maxDuration)
	}
	releaseLate := measure.PosPart(s.releaseTime - s.twLate)

	return s.timeWarp + overrun + releaseLate
}

// MergeDuration concatenates a then b, separated by travel time
// t = Duration[a.idx_last, b.idx_first]. This is the subtle merge of the
// three segment algebras: it propagates both the feasible departure
// window and the accumulated time warp through the splice.
//
// Complexity: O(1).
func MergeDuration(d DurationProvider, a, b DurationSegment) DurationSegment {
	t := d.MustDuration(a.idxLast, b.idxFirst)
	diff := a.duration - a.timeWarp + t

	shift := measure.PosPart(a.twEarly + diff - b.twLate)
	wait := measure.PosPart(b.twEarly - diff - a.twLate)

	newTimeWarp := a.timeWarp + b.timeWarp + shift
	newTWEarly := measure.Max(b.twEarly-diff, a.twEarly) - shift
	newTWLate := measure.Min(b.twLate-diff, a.twLate) + wait
	newDuration := a.duration + b.duration + t + wait
	newReleaseTime := measure.Max(a.releaseTime, b.releaseTime)

	return DurationSegment{
		idxFirst:    a.idxFirst,
		idxLast:     b.idxLast,
		duration:    newDuration,
		timeWarp:    newTimeWarp,
		twEarly:     newTWEarly,
		twLate:      newTWLate,
		releaseTime: newReleaseTime,
	}
}

// MergeDuration3 is merge(merge(a,b),c).
//
// Complexity: O(1).
func MergeDuration3(d DurationProvider, a, b, c DurationSegment) DurationSegment {
	return MergeDuration(d, MergeDuration(d, a, b), c)
}
