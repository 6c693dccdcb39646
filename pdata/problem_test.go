package pdata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/matrix"
	"vrpcore/pdata"
)

func squareMatrix(n int, fill func(i, j int) float64) *matrix.Dense {
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

func manhattan(i, j int) float64 {
	if i == j {
		return 0
	}

	return float64((i - j) * (i - j))
}

func basicInstance(t *testing.T) (pdata.ProblemData, error) {
	depots := []pdata.Depot{{X_: 0, Y_: 0, TWEarly_: 0, TWLate_: 100, Name_: "depot"}}
	clients := []pdata.Client{
		{X_: 1, Y_: 1, Delivery_: 5, TWEarly_: 0, TWLate_: 100, Required_: true, Name_: "c1"},
		{X_: 2, Y_: 2, Delivery_: 5, TWEarly_: 0, TWLate_: 100, Required_: true, Name_: "c2"},
	}
	vts := []pdata.VehicleType{{NumAvailable_: 2, Capacity_: 15, DepotIndex_: 0, TWEarly_: 0, TWLate_: 100, Name_: "veh"}}
	dist := squareMatrix(3, manhattan)
	dur := squareMatrix(3, manhattan)

	pd, err := pdata.New(depots, clients, vts, dist, dur)
	if err != nil {
		return pdata.ProblemData{}, err
	}

	return *pd, nil
}

func TestNewValidInstance(t *testing.T) {
	pd, err := basicInstance(t)
	require.NoError(t, err)
	require.Equal(t, 1, pd.NumDepots())
	require.Equal(t, 2, pd.NumClients())
	require.Equal(t, 3, pd.NumLocations())

	d, err := pd.Depot(0)
	require.NoError(t, err)
	require.Equal(t, "depot", d.Name())

	c, err := pd.Client(1)
	require.NoError(t, err)
	require.Equal(t, "c2", c.Name())

	loc, err := pd.Location(pd.ClientLocationIndex(1))
	require.NoError(t, err)
	require.Equal(t, "c2", loc.Name())
}

func TestNewRejectsNoDepots(t *testing.T) {
	vts := []pdata.VehicleType{{NumAvailable_: 1, Capacity_: 1, DepotIndex_: 0}}
	dist := squareMatrix(1, manhattan)
	_, err := pdata.New(nil, nil, vts, dist, dist)
	require.ErrorIs(t, err, pdata.ErrNoDepots)
}

func TestNewRejectsMatrixShapeMismatch(t *testing.T) {
	depots := []pdata.Depot{{TWLate_: 10}}
	vts := []pdata.VehicleType{{NumAvailable_: 1, Capacity_: 1, DepotIndex_: 0, TWLate_: 10}}
	dist := squareMatrix(2, manhattan) // wrong size: should be 1x1
	_, err := pdata.New(depots, nil, vts, dist, dist)
	require.ErrorIs(t, err, pdata.ErrMatrixShape)
}

func TestNewRejectsBadTimeWindow(t *testing.T) {
	depots := []pdata.Depot{{TWEarly_: 10, TWLate_: 5}}
	vts := []pdata.VehicleType{{NumAvailable_: 1, Capacity_: 1, DepotIndex_: 0, TWLate_: 10}}
	dist := squareMatrix(1, manhattan)
	_, err := pdata.New(depots, nil, vts, dist, dist)
	require.ErrorIs(t, err, pdata.ErrBadTimeWindow)
}

func TestNewRejectsDepotIndexOutOfRange(t *testing.T) {
	depots := []pdata.Depot{{TWLate_: 10}}
	vts := []pdata.VehicleType{{NumAvailable_: 1, Capacity_: 1, DepotIndex_: 5, TWLate_: 10}}
	dist := squareMatrix(1, manhattan)
	_, err := pdata.New(depots, nil, vts, dist, dist)
	require.ErrorIs(t, err, pdata.ErrDepotIndexOutOfRange)
}

func TestNewRejectsNegativeDemand(t *testing.T) {
	depots := []pdata.Depot{{TWLate_: 10}}
	clients := []pdata.Client{{Delivery_: -1, TWLate_: 10}}
	vts := []pdata.VehicleType{{NumAvailable_: 1, Capacity_: 1, DepotIndex_: 0, TWLate_: 10}}
	dist := squareMatrix(2, manhattan)
	_, err := pdata.New(depots, clients, vts, dist, dist)
	require.ErrorIs(t, err, pdata.ErrNegativeDemand)
}

func TestLocationIndexOutOfRangeFailsImmediately(t *testing.T) {
	pd, err := basicInstance(t)
	require.NoError(t, err)
	_, err = pd.Location(99)
	require.ErrorIs(t, err, pdata.ErrIndexOutOfRange)
}

func TestMetricClosureCompletesMissingEdges(t *testing.T) {
	depots := []pdata.Depot{{TWLate_: 100}}
	clients := []pdata.Client{
		{TWLate_: 100, Required_: true},
		{TWLate_: 100, Required_: true},
	}
	vts := []pdata.VehicleType{{NumAvailable_: 1, Capacity_: 1, DepotIndex_: 0, TWLate_: 100}}
	// 0->1 = 3, 1->2 = 4, no direct 0->2 edge (zero, to be closed).
	dist := squareMatrix(3, func(i, j int) float64 {
		switch {
		case i == 0 && j == 1:
			return 3
		case i == 1 && j == 2:
			return 4
		default:
			return 0
		}
	})
	pd, err := pdata.New(depots, clients, vts, dist, dist, pdata.WithMetricClosure())
	require.NoError(t, err)

	v, err := pd.Dist(0, 2)
	require.NoError(t, err)
	require.Equal(t, float64(7), float64(v))
}
