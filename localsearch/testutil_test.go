package localsearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/matrix"
	"vrpcore/pdata"
	"vrpcore/searchroute"
	"vrpcore/solution"
)

// lineMetric builds a 7-location instance (1 depot + 6 clients) on a
// straight line at the given coordinates, distance = |coord[i]-coord[j]|.
func lineMetric(t *testing.T, coords [7]float64) pdata.ProblemData {
	t.Helper()

	rows := make([][]float64, 7)
	for i := range rows {
		rows[i] = make([]float64, 7)
		for j := range rows[i] {
			rows[i][j] = math.Abs(coords[i] - coords[j])
		}
	}
	dist, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	dur, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	depots := []pdata.Depot{{X_: coords[0], TWLate_: 1000, Name_: "depot"}}
	clients := make([]pdata.Client, 6)
	for i := 0; i < 6; i++ {
		clients[i] = pdata.Client{X_: coords[i+1], TWLate_: 1000, Required_: true, Name_: "c"}
	}
	vts := []pdata.VehicleType{{NumAvailable_: 2, Capacity_: 1000, DepotIndex_: 0, TWLate_: 1000, Name_: "veh"}}

	pd, err := pdata.New(depots, clients, vts, dist, dur)
	require.NoError(t, err)

	return *pd
}

func newSearchRoute(t *testing.T, pd *pdata.ProblemData, r solution.Route) *searchroute.Route {
	t.Helper()

	return searchroute.New(pd, r)
}
