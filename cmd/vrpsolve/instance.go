package main

import (
	"fmt"
	"math"

	"vrpcore/matrix"
	"vrpcore/pdata"
	"vrpcore/rng"
)

// buildInstance lays out one depot at the origin and numClients clients on
// a pseudo-random 100x100 grid, every client required, served by a single
// vehicle type with enough vehicles to keep each route's load reasonable.
func buildInstance(numClients int, seed uint32, capacity float64) (*pdata.ProblemData, error) {
	r := rng.New(seed)

	n := numClients + 1
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 1; i < n; i++ {
		xs[i] = float64(r.RandInt(100))
		ys[i] = float64(r.RandInt(100))
	}

	dist, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	dur, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			if err := dist.Set(i, j, d); err != nil {
				return nil, err
			}
			if err := dur.Set(i, j, d); err != nil {
				return nil, err
			}
		}
	}

	depots := []pdata.Depot{{X_: xs[0], Y_: ys[0], TWLate_: 1e6, Name_: "depot"}}

	clients := make([]pdata.Client, numClients)
	for i := 0; i < numClients; i++ {
		clients[i] = pdata.Client{
			X_:        xs[i+1],
			Y_:        ys[i+1],
			Delivery_: float64(1 + r.RandInt(10)),
			TWLate_:   1e6,
			Required_: true,
			Name_:     fmt.Sprintf("client-%d", i+1),
		}
	}

	numVehicles := numClients/4 + 1
	vts := []pdata.VehicleType{{
		NumAvailable_: numVehicles,
		Capacity_:     capacity,
		DepotIndex_:   0,
		TWLate_:       1e6,
		Name_:         "fleet",
	}}

	return pdata.New(depots, clients, vts, dist, dur)
}
