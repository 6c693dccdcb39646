package localsearch

import (
	"vrpcore/costeval"
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/searchroute"
)

// SwapRoutes considers exchanging the entire client sequence of two
// routes belonging to different vehicle types — only useful when the
// routes differ (same vehicle type means swapping sequences changes
// nothing about capacity/cost, so any improvement would already have
// been found by cheaper operators). Implemented, per spec.md §4.4.6, as
// TwoOpt cutting right after each route's leading depot: the "suffix"
// after that cut is the whole client sequence.
type SwapRoutes struct{}

func (SwapRoutes) Name() string { return "swap_routes" }

func (SwapRoutes) Evaluate(pd *pdata.ProblemData, ce costeval.CostEvaluator, r1, r2 *searchroute.Route) measure.Scalar {
	if r1.VehicleTypeIndex() == r2.VehicleTypeIndex() {
		return 0
	}

	return TwoOpt{}.Evaluate(pd, ce, Candidate{Route: r1, Pos: 0}, Candidate{Route: r2, Pos: 0})
}

func (SwapRoutes) Apply(pd *pdata.ProblemData, r1, r2 *searchroute.Route) error {
	if r1.VehicleTypeIndex() == r2.VehicleTypeIndex() {
		return ErrDifferentVehicleTypesRequired
	}

	return TwoOpt{}.Apply(Candidate{Route: r1, Pos: 0}, Candidate{Route: r2, Pos: 0})
}

func (SwapRoutes) Init(routes []*searchroute.Route) {}

func (SwapRoutes) Update(r *searchroute.Route) {}
