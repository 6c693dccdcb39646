package main

import (
	"vrpcore/pdata"
	"vrpcore/solution"
)

// greedyInitialSolution round-robins every client across the fleet's
// available vehicles, one route per vehicle, giving the driver a feasible
// starting point to improve on rather than a single oversized route.
func greedyInitialSolution(pd *pdata.ProblemData) (*solution.Solution, error) {
	vt, err := pd.VehicleType(0)
	if err != nil {
		return nil, err
	}

	buckets := make([][]int, vt.NumAvailable())
	for ci := 0; ci < pd.NumClients(); ci++ {
		b := ci % len(buckets)
		buckets[b] = append(buckets[b], ci)
	}

	routes := make([]solution.Route, 0, len(buckets))
	for _, clients := range buckets {
		if len(clients) == 0 {
			continue
		}
		r, err := solution.NewRoute(pd, 0, clients)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}

	return solution.New(pd, routes)
}
