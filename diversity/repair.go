package diversity

import (
	"vrpcore/costeval"
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/solution"
)

// routeCost is a route's own penalised-cost contribution: distance, fixed
// vehicle cost, and its capacity/time-warp penalty terms. Prizes are a
// whole-solution concept (uncollected prizes depend on which clients are
// missing across every route), so repair compares routeCost deltas rather
// than reaching for costeval.CostEvaluator.PenalisedCost directly.
func routeCost(ce costeval.CostEvaluator, r solution.Route) measure.Scalar {
	return r.Distance() + r.FixedVehicleCost() +
		ce.LoadPenalty(r.Load(), r.Capacity()) + ce.TWPenalty(r.TimeWarp())
}

func insertAt(clients []int, pos, ci int) []int {
	out := make([]int, 0, len(clients)+1)
	out = append(out, clients[:pos]...)
	out = append(out, ci)
	out = append(out, clients[pos:]...)

	return out
}

// cheapestPosition scans every insertion slot in route index ri of routes
// and returns the candidate Route and its cost delta versus the route's
// current contribution. ok is false if no slot builds a valid route.
func cheapestPosition(pd *pdata.ProblemData, ce costeval.CostEvaluator, routes []solution.Route, ri, ci int) (solution.Route, measure.Scalar, bool) {
	r := routes[ri]
	clients := r.Clients()
	before := routeCost(ce, r)

	var best solution.Route
	var bestDelta measure.Scalar
	ok := false

	for pos := 0; pos <= len(clients); pos++ {
		candClients := insertAt(clients, pos, ci)
		cand, err := solution.NewRoute(pd, r.VehicleTypeIndex(), candClients)
		if err != nil {
			continue
		}
		delta := routeCost(ce, cand) - before
		if !ok || delta < bestDelta {
			ok = true
			bestDelta = delta
			best = cand
		}
	}

	return best, bestDelta, ok
}

// GreedyRepair inserts every client in unvisited into whichever route and
// position raises the penalised cost the least, one client at a time, in
// the given order. It never introduces a new route — every client must
// fit into an existing one.
//
// Complexity: O(len(unvisited) * numRoutes * routeSize) route
// reconstructions (NewRoute folds its full client chain each time).
func GreedyRepair(sol *solution.Solution, unvisited []int, pd *pdata.ProblemData, ce costeval.CostEvaluator) (*solution.Solution, error) {
	routes := sol.Routes()

	for _, ci := range unvisited {
		bestRi := -1
		var bestRoute solution.Route
		var bestDelta measure.Scalar

		for ri := range routes {
			cand, delta, ok := cheapestPosition(pd, ce, routes, ri, ci)
			if !ok {
				continue
			}
			if bestRi == -1 || delta < bestDelta {
				bestRi, bestRoute, bestDelta = ri, cand, delta
			}
		}

		if bestRi == -1 {
			return nil, ErrNoFeasiblePosition
		}
		routes[bestRi] = bestRoute
	}

	return solution.New(pd, routes)
}

// NearestRouteInsert is a cheaper repair strategy than GreedyRepair: each
// unvisited client is inserted into only the single route whose centroid
// is nearest to it (cheapest position within that one route), instead of
// scanning every route's every slot.
//
// Complexity: O(len(unvisited) * (numRoutes + routeSize^2)).
func NearestRouteInsert(sol *solution.Solution, unvisited []int, pd *pdata.ProblemData, ce costeval.CostEvaluator) (*solution.Solution, error) {
	routes := sol.Routes()

	for _, ci := range unvisited {
		c, err := pd.Client(ci)
		if err != nil {
			return nil, err
		}

		nearest := -1
		var nearestDist measure.Scalar
		for ri, r := range routes {
			cx, cy := r.Centroid()
			dx, dy := cx-c.X(), cy-c.Y()
			d := dx*dx + dy*dy
			if nearest == -1 || d < nearestDist {
				nearest, nearestDist = ri, d
			}
		}
		if nearest == -1 {
			return nil, ErrNoFeasiblePosition
		}

		cand, _, ok := cheapestPosition(pd, ce, routes, nearest, ci)
		if !ok {
			return nil, ErrNoFeasiblePosition
		}
		routes[nearest] = cand
	}

	return solution.New(pd, routes)
}
