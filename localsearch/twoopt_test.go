package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/costeval"
	"vrpcore/localsearch"
	"vrpcore/solution"
)

func TestTwoOptIntraRouteReversal(t *testing.T) {
	// On a line, depot -> 3 -> 1 -> 5 -> 2 -> depot (by coordinate) doubles
	// back on itself; reversing the first two clients gives
	// depot -> 1 -> 3 -> 5 -> 2 -> depot, which is 4 shorter.
	pd := lineMetric(t, [7]float64{0, 5, 1, 2, 3, 4, 6})

	r, err := solution.NewRoute(&pd, 0, []int{3, 1, 0, 2}) // locations 4,2,1,3
	require.NoError(t, err)
	route := newSearchRoute(t, &pd, r)

	ce := costeval.NewCostEvaluator(costeval.DefaultPenalties())
	two := localsearch.TwoOpt{}

	u := localsearch.Candidate{Route: route, Pos: 0} // cut right after depot
	v := localsearch.Candidate{Route: route, Pos: 2} // cut after slot 2

	delta := two.Evaluate(&pd, ce, u, v)
	require.Less(t, delta, 0.0)

	require.NoError(t, two.Apply(u, v))

	loc1, _ := route.At(1)
	loc2, _ := route.At(2)
	require.Equal(t, 2, loc1)
	require.Equal(t, 4, loc2)
}

func TestTwoOptCrossRouteSuffixSwap(t *testing.T) {
	pd := lineMetric(t, [7]float64{0, 1, 2, 50, 51, 52, 53})

	r1, err := solution.NewRoute(&pd, 0, []int{0, 1, 2}) // locations 1,2,3
	require.NoError(t, err)
	r2, err := solution.NewRoute(&pd, 0, []int{3, 4, 5}) // locations 4,5,6
	require.NoError(t, err)

	route1 := newSearchRoute(t, &pd, r1)
	route2 := newSearchRoute(t, &pd, r2)

	ce := costeval.NewCostEvaluator(costeval.DefaultPenalties())
	two := localsearch.TwoOpt{}

	u := localsearch.Candidate{Route: route1, Pos: 1} // keep location 1, swap suffix after it
	v := localsearch.Candidate{Route: route2, Pos: 1} // keep location 4, swap suffix after it

	two.Evaluate(&pd, ce, u, v)
	require.NoError(t, two.Apply(u, v))

	loc, _ := route1.At(2)
	require.Equal(t, 5, loc)
	loc, _ = route2.At(2)
	require.Equal(t, 2, loc)
}
