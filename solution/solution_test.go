package solution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/matrix"
	"vrpcore/pdata"
	"vrpcore/solution"
)

func buildSquare(n int, fill func(i, j int) float64) *matrix.Dense {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = fill(i, j)
		}
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}

	return d
}

// chainInstance builds a 1-depot, 3-client instance on a line: depot at 0,
// clients at 1, 2, 3, unit distance between consecutive locations.
func chainInstance(t *testing.T) *pdata.ProblemData {
	depots := []pdata.Depot{{TWEarly_: 0, TWLate_: 1000, Name_: "depot"}}
	clients := []pdata.Client{
		{Delivery_: 3, TWEarly_: 0, TWLate_: 1000, Required_: true, Name_: "c0"},
		{Delivery_: 4, TWEarly_: 0, TWLate_: 1000, Required_: true, Name_: "c1"},
		{Delivery_: 2, TWEarly_: 0, TWLate_: 1000, Required_: false, Prize_: 7, Name_: "c2"},
	}
	vts := []pdata.VehicleType{{NumAvailable_: 2, Capacity_: 20, DepotIndex_: 0, TWEarly_: 0, TWLate_: 1000, Name_: "veh"}}
	dist := buildSquare(4, func(i, j int) float64 {
		if i == j {
			return 0
		}
		d := i - j
		if d < 0 {
			d = -d
		}

		return float64(d)
	})

	pd, err := pdata.New(depots, clients, vts, dist, dist)
	require.NoError(t, err)

	return pd
}

func TestNewRouteAggregates(t *testing.T) {
	pd := chainInstance(t)
	r, err := solution.NewRoute(pd, 0, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 2, r.Size())
	// depot(0) -> client0(loc1) -> client1(loc2) -> depot(0): 1+1+2 = 4
	require.EqualValues(t, 4, r.Distance())
	require.EqualValues(t, 7, r.Load()) // delivery 3+4, no pickups
	require.EqualValues(t, 0, r.ExcessLoad())
}

func TestNewRouteRejectsUnknownClient(t *testing.T) {
	pd := chainInstance(t)
	_, err := solution.NewRoute(pd, 0, []int{0, 99})
	require.ErrorIs(t, err, solution.ErrUnknownClient)
}

func TestNewRouteRejectsDuplicateClient(t *testing.T) {
	pd := chainInstance(t)
	_, err := solution.NewRoute(pd, 0, []int{0, 0})
	require.ErrorIs(t, err, solution.ErrDuplicateClient)
}

func TestNewRouteRejectsEmpty(t *testing.T) {
	pd := chainInstance(t)
	_, err := solution.NewRoute(pd, 0, nil)
	require.ErrorIs(t, err, solution.ErrEmptyRoute)
}

func TestSolutionAggregatesAcrossRoutes(t *testing.T) {
	pd := chainInstance(t)
	r0, err := solution.NewRoute(pd, 0, []int{0, 1})
	require.NoError(t, err)

	s, err := solution.New(pd, []solution.Route{r0})
	require.NoError(t, err)
	require.EqualValues(t, 4, s.Distance())
	require.EqualValues(t, 7, s.UncollectedPrizes()) // client 2 (optional) omitted
	require.Equal(t, 1, s.NumMissingClients())
	require.True(t, s.Feasible())
}

func TestSolutionRejectsMissingRequiredClient(t *testing.T) {
	pd := chainInstance(t)
	r0, err := solution.NewRoute(pd, 0, []int{0}) // omits required client 1
	require.NoError(t, err)

	_, err = solution.New(pd, []solution.Route{r0})
	require.ErrorIs(t, err, solution.ErrMissingRequiredClient)
}

func TestSolutionRejectsDuplicateClientAcrossRoutes(t *testing.T) {
	pd := chainInstance(t)
	r0, err := solution.NewRoute(pd, 0, []int{0, 1})
	require.NoError(t, err)
	r1, err := solution.NewRoute(pd, 0, []int{0})
	require.NoError(t, err)

	_, err = solution.New(pd, []solution.Route{r0, r1})
	require.ErrorIs(t, err, solution.ErrDuplicateClient)
}

func TestSolutionRejectsVehicleTypeOveravailable(t *testing.T) {
	depots := []pdata.Depot{{TWLate_: 1000}}
	clients := []pdata.Client{
		{Delivery_: 1, TWLate_: 1000, Required_: true},
		{Delivery_: 1, TWLate_: 1000, Required_: true},
	}
	vts := []pdata.VehicleType{{NumAvailable_: 1, Capacity_: 5, DepotIndex_: 0, TWLate_: 1000}}
	dist := buildSquare(3, func(i, j int) float64 {
		if i == j {
			return 0
		}

		return 1
	})
	pd, err := pdata.New(depots, clients, vts, dist, dist)
	require.NoError(t, err)

	r0, err := solution.NewRoute(pd, 0, []int{0})
	require.NoError(t, err)
	r1, err := solution.NewRoute(pd, 0, []int{1})
	require.NoError(t, err)

	_, err = solution.New(pd, []solution.Route{r0, r1})
	require.ErrorIs(t, err, solution.ErrVehicleTypeOveravailable)
}

func TestSolutionNeighboursMap(t *testing.T) {
	pd := chainInstance(t)
	r0, err := solution.NewRoute(pd, 0, []int{0, 1})
	require.NoError(t, err)
	s, err := solution.New(pd, []solution.Route{r0})
	require.NoError(t, err)

	nb := s.Neighbours()
	loc0 := pd.ClientLocationIndex(0)
	loc1 := pd.ClientLocationIndex(1)
	require.Equal(t, 0, nb[loc0].Pred) // depot location index is 0
	require.Equal(t, loc1, nb[loc0].Succ)
	require.Equal(t, loc0, nb[loc1].Pred)
	require.Equal(t, 0, nb[loc1].Succ)
}
