package segment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/measure"
	"vrpcore/segment"
)

func TestLoadSegmentSingleLocation(t *testing.T) {
	s := segment.NewLoadSegment(5, 0)
	require.Equal(t, measure.Scalar(5), s.Delivery())
	require.Equal(t, measure.Scalar(0), s.Pickup())
	require.Equal(t, measure.Scalar(5), s.Load())
}

func TestLoadSegmentMergeAccumulatesDemand(t *testing.T) {
	a := segment.NewLoadSegment(3, 0)
	b := segment.NewLoadSegment(4, 1)
	ab := segment.MergeLoad(a, b)
	require.Equal(t, measure.Scalar(7), ab.Delivery())
	require.Equal(t, measure.Scalar(1), ab.Pickup())
}

func TestLoadSegmentMergePeakLoad(t *testing.T) {
	// a: carries 10 delivery, no pickup, peak load 10 by itself.
	// b: carries 2 delivery, peak load 2 by itself, 0 pickup.
	// Combined peak must account for a's undelivered 10 still aboard while
	// b's own delivery (2) has not yet dropped: max(10+2, 0+2) == 12.
	a := segment.NewLoadSegment(10, 0)
	b := segment.NewLoadSegment(2, 0)
	ab := segment.MergeLoad(a, b)
	require.Equal(t, measure.Scalar(12), ab.Load())
}

func TestLoadSegmentMergeAssociative(t *testing.T) {
	a := segment.NewLoadSegment(3, 1)
	b := segment.NewLoadSegment(0, 4)
	c := segment.NewLoadSegment(2, 2)

	left := segment.MergeLoad(segment.MergeLoad(a, b), c)
	right := segment.MergeLoad(a, segment.MergeLoad(b, c))
	require.Equal(t, left, right)
}

func TestMergeLoad3MatchesLeftFold(t *testing.T) {
	a := segment.NewLoadSegment(1, 0)
	b := segment.NewLoadSegment(2, 0)
	c := segment.NewLoadSegment(3, 1)
	require.Equal(t, segment.MergeLoad(segment.MergeLoad(a, b), c), segment.MergeLoad3(a, b, c))
}
