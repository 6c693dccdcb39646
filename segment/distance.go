package segment

import "vrpcore/measure"

// DistanceProvider is the O(1) distance lookup a merge needs between the
// last location of one segment and the first location of the next.
// pdata.ProblemData satisfies this via its MustDist method.
type DistanceProvider interface {
	MustDist(i, j int) measure.Scalar
}

// DistanceSegment summarizes the cumulative travel distance along a chain
// of locations from idx_first to idx_last.
type DistanceSegment struct {
	idxFirst int
	idxLast  int
	distance measure.Scalar
}

// NewDistanceSegment builds the single-location segment at locIdx: zero
// distance, first and last both locIdx.
func NewDistanceSegment(locIdx int) DistanceSegment {
	return DistanceSegment{idxFirst: locIdx, idxLast: locIdx, distance: 0}
}

func (s DistanceSegment) IdxFirst() int              { return s.idxFirst }
func (s DistanceSegment) IdxLast() int                { return s.idxLast }
func (s DistanceSegment) Distance() measure.Scalar    { return s.distance }

// MergeDistance concatenates a then b: a chain ending where b begins.
// distance = a.distance + D[a.idx_last, b.idx_first] + b.distance.
//
// Complexity: O(1).
func MergeDistance(d DistanceProvider, a, b DistanceSegment) DistanceSegment {
	return DistanceSegment{
		idxFirst: a.idxFirst,
		idxLast:  b.idxLast,
		distance: a.distance + d.MustDist(a.idxLast, b.idxFirst) + b.distance,
	}
}

// MergeDistance3 is merge(merge(a,b),c), provided as a convenience since
// three-way splices (prefix, moved segment, suffix) are the common case in
// move evaluation.
//
// Complexity: O(1).
func MergeDistance3(d DistanceProvider, a, b, c DistanceSegment) DistanceSegment {
	return MergeDistance(d, MergeDistance(d, a, b), c)
}
