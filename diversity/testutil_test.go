package diversity_test

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

func lineDist(coords []float64) func(i, j int) float64 {
	return func(i, j int) float64 {
		d := coords[i] - coords[j]
		if d < 0 {
			d = -d
		}

		return d
	}
}

func buildInstance(t *testing.T, coords []float64, required []bool, prizes []float64) pdata.ProblemData {
	t.Helper()

	n := len(coords)
	depots := []pdata.Depot{{X_: coords[0], TWLate_: 1000, Name_: "depot"}}
	clients := make([]pdata.Client, n-1)
	for i := 1; i < n; i++ {
		clients[i-1] = pdata.Client{
			X_:        coords[i],
			TWLate_:   1000,
			Required_: required[i-1],
			Prize_:    prizes[i-1],
			Name_:     "c",
		}
	}
	vts := []pdata.VehicleType{{NumAvailable_: 3, Capacity_: 1000, DepotIndex_: 0, TWLate_: 1000, Name_: "veh"}}

	dist := squareMatrix(n, lineDist(coords))
	dur := squareMatrix(n, lineDist(coords))

	pd, err := pdata.New(depots, clients, vts, dist, dur)
	require.NoError(t, err)

	return *pd
}
