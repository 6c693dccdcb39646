package segment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/measure"
	"vrpcore/segment"
)

// fixedDist is a stand-in DistanceProvider/DurationProvider over a small
// explicit table, used to test merge in isolation from pdata.
type fixedDist map[[2]int]measure.Scalar

func (f fixedDist) MustDist(i, j int) measure.Scalar { return f[[2]int{i, j}] }

func (f fixedDist) MustDuration(i, j int) measure.Scalar { return f[[2]int{i, j}] }

func TestDistanceSegmentSingleLocationIsZero(t *testing.T) {
	s := segment.NewDistanceSegment(4)
	require.Equal(t, measure.Scalar(0), s.Distance())
	require.Equal(t, 4, s.IdxFirst())
	require.Equal(t, 4, s.IdxLast())
}

func TestDistanceSegmentMerge(t *testing.T) {
	d := fixedDist{
		{0, 1}: 5,
		{1, 2}: 7,
		{0, 2}: 100, // never used directly; only adjacent hops matter
	}
	a := segment.NewDistanceSegment(0)
	b := segment.NewDistanceSegment(1)
	c := segment.NewDistanceSegment(2)

	ab := segment.MergeDistance(d, a, b)
	require.Equal(t, measure.Scalar(5), ab.Distance())

	abc := segment.MergeDistance(d, ab, c)
	require.Equal(t, measure.Scalar(12), abc.Distance())
	require.Equal(t, 0, abc.IdxFirst())
	require.Equal(t, 2, abc.IdxLast())
}

func TestDistanceSegmentMergeAssociative(t *testing.T) {
	d := fixedDist{
		{0, 1}: 3,
		{1, 2}: 4,
		{2, 3}: 5,
	}
	a := segment.NewDistanceSegment(0)
	b := segment.NewDistanceSegment(1)
	c := segment.NewDistanceSegment(2)
	e := segment.NewDistanceSegment(3)

	left := segment.MergeDistance(d, segment.MergeDistance(d, segment.MergeDistance(d, a, b), c), e)
	right := segment.MergeDistance(d, a, segment.MergeDistance(d, b, segment.MergeDistance(d, c, e)))

	require.Equal(t, left.Distance(), right.Distance())
	require.Equal(t, left.IdxFirst(), right.IdxFirst())
	require.Equal(t, left.IdxLast(), right.IdxLast())
}

func TestMergeDistance3MatchesLeftFold(t *testing.T) {
	d := fixedDist{{0, 1}: 2, {1, 2}: 9}
	a := segment.NewDistanceSegment(0)
	b := segment.NewDistanceSegment(1)
	c := segment.NewDistanceSegment(2)

	require.Equal(t, segment.MergeDistance(d, segment.MergeDistance(d, a, b), c), segment.MergeDistance3(d, a, b, c))
}
