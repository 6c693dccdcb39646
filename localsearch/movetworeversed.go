package localsearch

import (
	"vrpcore/costeval"
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/searchroute"
)

// MoveTwoClientsReversed relocates two consecutive clients starting at U
// to the slot after V, inserting them in reverse order. It is Exchange{2,
// 0}'s insertion step with the moved pair flipped — kept as its own
// operator (rather than a flag on Exchange) because the spec lists it as
// a distinct move the driver tries independently.
type MoveTwoClientsReversed struct{}

func (MoveTwoClientsReversed) Name() string { return "move_two_reversed" }

func (MoveTwoClientsReversed) valid(u, v Candidate) bool {
	if u.Pos < 1 || u.Pos+1 > u.Route.Size() {
		return false
	}
	if v.Pos < 0 || v.Pos > v.Route.Size() {
		return false
	}
	if u.Route != v.Route {
		return true
	}

	return v.Pos < u.Pos-1 || v.Pos > u.Pos+1
}

func (op MoveTwoClientsReversed) Evaluate(pd *pdata.ProblemData, ce costeval.CostEvaluator, u, v Candidate) measure.Scalar {
	if !op.valid(u, v) {
		return 0
	}
	pair := reversed(clientsAt(u.Route, u.Pos, 2))

	if u.Route == v.Route {
		oldc := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), u.Route.Size(), wholeSummary(u.Route))

		newNodes := spliceOne(u.Route, u.Pos, 2, nil)
		insertAt := v.Pos + 1
		if v.Pos >= u.Pos {
			insertAt -= 2
		}
		out := make([]int, 0, len(newNodes)+2)
		out = append(out, newNodes[:insertAt]...)
		out = append(out, pair...)
		out = append(out, newNodes[insertAt:]...)

		newWhole := searchroute.Fold(pd, out)
		newc := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), len(out)-2, newWhole)

		return newc - oldc
	}

	oldU := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), u.Route.Size(), wholeSummary(u.Route))
	oldV := routeContribution(ce, v.Route.Capacity(), v.Route.MaxDuration(), v.Route.FixedVehicleCost(), v.Route.Size(), wholeSummary(v.Route))

	newUNodes := spliceOne(u.Route, u.Pos, 2, nil)
	newVNodes := crossRouteInsert(v.Route, v.Pos, 0, pair)

	newUWhole := searchroute.Fold(pd, newUNodes)
	newVWhole := searchroute.Fold(pd, newVNodes)

	newU := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), len(newUNodes)-2, newUWhole)
	newV := routeContribution(ce, v.Route.Capacity(), v.Route.MaxDuration(), v.Route.FixedVehicleCost(), len(newVNodes)-2, newVWhole)

	return (newU + newV) - (oldU + oldV)
}

func (op MoveTwoClientsReversed) Apply(u, v Candidate) error {
	if !op.valid(u, v) {
		return ErrNoMove
	}
	pair := reversed(clientsAt(u.Route, u.Pos, 2))

	if u.Route == v.Route {
		newNodes := spliceOne(u.Route, u.Pos, 2, nil)
		insertAt := v.Pos + 1
		if v.Pos >= u.Pos {
			insertAt -= 2
		}
		out := make([]int, 0, len(newNodes)+2)
		out = append(out, newNodes[:insertAt]...)
		out = append(out, pair...)
		out = append(out, newNodes[insertAt:]...)

		return replaceClients(u.Route, stripDepots(out))
	}

	newUNodes := spliceOne(u.Route, u.Pos, 2, nil)
	newVNodes := crossRouteInsert(v.Route, v.Pos, 0, pair)

	if err := replaceClients(u.Route, stripDepots(newUNodes)); err != nil {
		return err
	}

	return replaceClients(v.Route, stripDepots(newVNodes))
}
