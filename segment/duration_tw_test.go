//go:build !vrp_notw

package segment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/measure"
	"vrpcore/segment"
)

func TestDurationSegmentSingleLocation(t *testing.T) {
	s := segment.NewDurationSegment(0, 10, 0, 100, 0)
	require.Equal(t, measure.Scalar(10), s.Duration())
	require.Equal(t, measure.Scalar(0), s.TimeWarp(0))
}

func TestDurationSegmentMergeFeasibleChain(t *testing.T) {
	d := fixedDist{{0, 1}: 5}
	// a: depart window [0,100], no service.
	a := segment.NewDurationSegment(0, 0, 0, 100, 0)
	// b: service 2, window [0,100]; travel a->b is 5.
	b := segment.NewDurationSegment(1, 2, 0, 100, 0)

	ab := segment.MergeDuration(d, a, b)
	require.Equal(t, measure.Scalar(0), ab.TimeWarp(0))
	require.Equal(t, measure.Scalar(7), ab.Duration()) // 0 + 2 + 5 travel
}

func TestDurationSegmentMergeProducesTimeWarpWhenLate(t *testing.T) {
	d := fixedDist{{0, 1}: 50}
	a := segment.NewDurationSegment(0, 0, 0, 10, 0) // must leave by 10
	b := segment.NewDurationSegment(1, 0, 0, 20, 0) // must arrive by 20, but travel alone is 50
	ab := segment.MergeDuration(d, a, b)
	require.Greater(t, ab.TimeWarp(0), measure.Scalar(0))
}

func TestDurationSegmentMergeProducesWaitWhenEarly(t *testing.T) {
	d := fixedDist{{0, 1}: 1}
	a := segment.NewDurationSegment(0, 0, 0, 5, 0)
	b := segment.NewDurationSegment(1, 0, 50, 100, 0) // leaving 0 at 5 at the latest, arriving at 1 needs a wait of 44
	ab := segment.MergeDuration(d, a, b)
	require.Equal(t, measure.Scalar(0), ab.TimeWarp(0))
	require.Greater(t, ab.Duration(), measure.Scalar(1))
}

func TestDurationSegmentMergeAssociative(t *testing.T) {
	d := fixedDist{
		{0, 1}: 4,
		{1, 2}: 6,
		{2, 3}: 3,
	}
	a := segment.NewDurationSegment(0, 1, 0, 20, 0)
	b := segment.NewDurationSegment(1, 2, 3, 25, 0)
	c := segment.NewDurationSegment(2, 0, 5, 15, 0)
	e := segment.NewDurationSegment(3, 2, 0, 40, 0)

	left := segment.MergeDuration(d, segment.MergeDuration(d, segment.MergeDuration(d, a, b), c), e)
	right := segment.MergeDuration(d, a, segment.MergeDuration(d, b, segment.MergeDuration(d, c, e)))

	require.Equal(t, left, right)
}

func TestTimeWarpAccountsForMaxDurationOverrunAtReadTime(t *testing.T) {
	s := segment.NewDurationSegment(0, 50, 0, 100, 0)
	require.Equal(t, measure.Scalar(0), s.TimeWarp(0))     // unbounded
	require.Equal(t, measure.Scalar(0), s.TimeWarp(50))    // exactly at the limit
	require.Equal(t, measure.Scalar(10), s.TimeWarp(40))   // 10 over the limit
}

func TestTimeWarpAccountsForReleaseTimeLateness(t *testing.T) {
	s := segment.NewDurationSegment(0, 0, 0, 10, 30) // released at 30, must finish by 10
	require.Equal(t, measure.Scalar(20), s.TimeWarp(0))
}

func TestMergeDuration3MatchesLeftFold(t *testing.T) {
	d := fixedDist{{0, 1}: 2, {1, 2}: 3}
	a := segment.NewDurationSegment(0, 0, 0, 50, 0)
	b := segment.NewDurationSegment(1, 1, 0, 50, 0)
	c := segment.NewDurationSegment(2, 1, 0, 50, 0)

	require.Equal(t, segment.MergeDuration(d, segment.MergeDuration(d, a, b), c), segment.MergeDuration3(d, a, b, c))
}
