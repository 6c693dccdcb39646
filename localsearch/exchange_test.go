package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/costeval"
	"vrpcore/localsearch"
	"vrpcore/solution"
)

func TestExchangeOneZeroPureRelocate(t *testing.T) {
	// coords: depot=0, c1=1, c2=2, c3=10, c4=20, c5=11, c6=21 — c3 sits far
	// from its own route but right beside c5 in the other one.
	pd := lineMetric(t, [7]float64{0, 1, 2, 10, 20, 11, 21})

	r1, err := solution.NewRoute(&pd, 0, []int{0, 1, 2}) // locations 1,2,3
	require.NoError(t, err)
	r2, err := solution.NewRoute(&pd, 0, []int{3, 4, 5}) // locations 4,5,6
	require.NoError(t, err)

	route1 := newSearchRoute(t, &pd, r1)
	route2 := newSearchRoute(t, &pd, r2)

	ce := costeval.NewCostEvaluator(costeval.DefaultPenalties())
	ex := localsearch.NewExchange(1, 0)

	u := localsearch.Candidate{Route: route1, Pos: 3}  // client "3"
	v := localsearch.Candidate{Route: route2, Pos: 2}  // anchor: client "5"

	delta := ex.Evaluate(&pd, ce, u, v)
	require.InDelta(t, -14.0, delta, 1e-9)

	require.NoError(t, ex.Apply(u, v))

	n1 := route1.Size()
	n2 := route2.Size()
	require.Equal(t, 2, n1)
	require.Equal(t, 4, n2)

	loc, _ := route1.At(1)
	require.Equal(t, 1, loc)
	loc, _ = route1.At(2)
	require.Equal(t, 2, loc)

	want2 := []int{4, 5, 3, 6}
	for i, w := range want2 {
		loc, _ = route2.At(i + 1)
		require.Equal(t, w, loc)
	}
}

func TestExchangeSwapDifferentRoutes(t *testing.T) {
	pd := lineMetric(t, [7]float64{0, 1, 2, 3, 100, 101, 102})

	r1, err := solution.NewRoute(&pd, 0, []int{0, 1, 2})
	require.NoError(t, err)
	r2, err := solution.NewRoute(&pd, 0, []int{3, 4, 5})
	require.NoError(t, err)

	route1 := newSearchRoute(t, &pd, r1)
	route2 := newSearchRoute(t, &pd, r2)

	ce := costeval.NewCostEvaluator(costeval.DefaultPenalties())
	swap := localsearch.NewExchange(1, 1)

	u := localsearch.Candidate{Route: route1, Pos: 1}
	v := localsearch.Candidate{Route: route2, Pos: 1}

	delta := swap.Evaluate(&pd, ce, u, v)
	require.NoError(t, swap.Apply(u, v))

	loc, _ := route1.At(1)
	require.Equal(t, 4, loc) // location index of former r2 client at slot 1

	loc, _ = route2.At(1)
	require.Equal(t, 1, loc)

	require.NotEqual(t, 0.0, delta)
}

func TestExchangeRejectsOverlappingSameRouteSegments(t *testing.T) {
	pd := lineMetric(t, [7]float64{0, 1, 2, 3, 4, 5, 6})
	r, err := solution.NewRoute(&pd, 0, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	route := newSearchRoute(t, &pd, r)

	ce := costeval.NewCostEvaluator(costeval.DefaultPenalties())
	ex := localsearch.NewExchange(2, 2)

	u := localsearch.Candidate{Route: route, Pos: 1}
	v := localsearch.Candidate{Route: route, Pos: 2} // overlaps u's [1,2]

	require.Equal(t, 0.0, ex.Evaluate(&pd, ce, u, v))
	require.ErrorIs(t, ex.Apply(u, v), localsearch.ErrNoMove)
}
