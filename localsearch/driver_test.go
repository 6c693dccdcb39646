package localsearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/costeval"
	"vrpcore/localsearch"
	"vrpcore/matrix"
	"vrpcore/pdata"
	"vrpcore/rng"
	"vrpcore/solution"
)

func fourClientInstance(t *testing.T) pdata.ProblemData {
	t.Helper()

	coords := [5]float64{0, 1, 100, 2, 101} // depot, then 4 clients
	rows := make([][]float64, 5)
	for i := range rows {
		rows[i] = make([]float64, 5)
		for j := range rows[i] {
			rows[i][j] = math.Abs(coords[i] - coords[j])
		}
	}
	dist, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	dur, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	depots := []pdata.Depot{{X_: coords[0], TWLate_: 1000, Name_: "depot"}}
	clients := make([]pdata.Client, 4)
	for i := 0; i < 4; i++ {
		clients[i] = pdata.Client{X_: coords[i+1], TWLate_: 1000, Required_: true, Name_: "c"}
	}
	vts := []pdata.VehicleType{{NumAvailable_: 2, Capacity_: 1000, DepotIndex_: 0, TWLate_: 1000, Name_: "veh"}}

	pd, err := pdata.New(depots, clients, vts, dist, dur)
	require.NoError(t, err)

	return *pd
}

func TestDriverRunConvergesToLowerCost(t *testing.T) {
	pd := fourClientInstance(t)

	r1, err := solution.NewRoute(&pd, 0, []int{0, 1}) // locations 1,2 (coords 1,100)
	require.NoError(t, err)
	r2, err := solution.NewRoute(&pd, 0, []int{2, 3}) // locations 3,4 (coords 2,101)
	require.NoError(t, err)

	sol, err := solution.New(&pd, []solution.Route{r1, r2})
	require.NoError(t, err)
	initialDistance := sol.Distance()

	ce := costeval.NewCostEvaluator(costeval.DefaultPenalties())
	r := rng.New(42)

	nodeOps := []localsearch.NodeOperator{
		localsearch.NewExchange(1, 0),
		localsearch.TwoOpt{},
		localsearch.MoveTwoClientsReversed{},
	}
	routeOps := []localsearch.RouteOperator{
		&localsearch.RelocateStar{},
		&localsearch.SwapStar{},
		localsearch.SwapRoutes{},
	}

	driver := localsearch.NewDriver(&pd, ce, r, nodeOps, routeOps, localsearch.DefaultOptions())

	out, stats, err := driver.Run(sol)
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.Sweeps, 1)
	require.Equal(t, 0, out.NumMissingClients())
	require.Less(t, out.Distance(), initialDistance)
}
