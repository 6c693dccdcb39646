package localsearch

import (
	"vrpcore/costeval"
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/searchroute"
)

// TwoOpt reverses the sub-sequence between two positions in one route, or
// swaps the suffixes of two different routes after U and V respectively.
// Either way the edit is "cut after U, cut after V, reconnect crosswise" —
// the classic 2-opt exchange. Intra-route, the moved sub-chain travels in
// reverse, which DurationSegment handles by being rebuilt on the reversed
// client order rather than read "backwards": building the reversed
// sequence is itself a valid chain of single-location segments, so no
// separate reversed-merge variant is needed.
//
// Grounded on the teacher's tsp/two_opt.go: first-improvement scan order,
// accept-on-negative-delta, and the suffix-rewiring shape of
// applyTwoOptStar are carried over; this operator additionally covers the
// intra-route reversal case the teacher's asymmetric TSP never needed.
type TwoOpt struct{}

func (TwoOpt) Name() string { return "two_opt" }

// Evaluate treats u.Pos/v.Pos as "cut after this client slot" (0 means
// cut right after the depot). u and v must not name the same slot.
func (TwoOpt) Evaluate(pd *pdata.ProblemData, ce costeval.CostEvaluator, u, v Candidate) measure.Scalar {
	if u.Pos < 0 || u.Pos > u.Route.Size() || v.Pos < 0 || v.Pos > v.Route.Size() {
		return 0
	}

	if u.Route == v.Route {
		if u.Pos == v.Pos {
			return 0
		}
		lo, hi := u.Pos, v.Pos
		if lo > hi {
			lo, hi = hi, lo
		}
		// Reverse the open interval (lo, hi]: clients at slots lo+1..hi.
		if lo+1 > hi {
			return 0
		}

		oldWhole := wholeSummary(u.Route)
		old := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), u.Route.Size(), oldWhole)

		nodes := fullNodes(u.Route)
		seg := reversed(nodes[lo+1 : hi+1])
		newNodes := make([]int, 0, len(nodes))
		newNodes = append(newNodes, nodes[:lo+1]...)
		newNodes = append(newNodes, seg...)
		newNodes = append(newNodes, nodes[hi+1:]...)

		newWhole := searchroute.Fold(pd, newNodes)
		newc := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), len(newNodes)-2, newWhole)

		return newc - old
	}

	oldU := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), u.Route.Size(), wholeSummary(u.Route))
	oldV := routeContribution(ce, v.Route.Capacity(), v.Route.MaxDuration(), v.Route.FixedVehicleCost(), v.Route.Size(), wholeSummary(v.Route))

	uNodes := fullNodes(u.Route)
	vNodes := fullNodes(v.Route)

	newUNodes := twoOptSplice(u.Route, uNodes, u.Pos, vNodes, v.Pos)
	newVNodes := twoOptSplice(v.Route, vNodes, v.Pos, uNodes, u.Pos)

	newUWhole := searchroute.Fold(pd, newUNodes)
	newVWhole := searchroute.Fold(pd, newVNodes)

	newU := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), len(newUNodes)-2, newUWhole)
	newV := routeContribution(ce, v.Route.Capacity(), v.Route.MaxDuration(), v.Route.FixedVehicleCost(), len(newVNodes)-2, newVWhole)

	return (newU + newV) - (oldU + oldV)
}

// twoOptSplice builds the node chain that results from cutting own's
// sequence right after ownCut and other's sequence right after otherCut,
// then reconnecting own's prefix to other's suffix — closed by own's own
// depot, not other's. A mutable Route never changes which depot it starts
// and ends at (spec.md §3), so a route produced by this splice must be
// re-closed at its own depot even when own and other started from
// different ones (MDVRP): otherwise the priced closing leg
// (dist(lastNode, other's depot)) would not match the leg Apply actually
// produces once replaceClients reinstates own's own fixed depot slot.
func twoOptSplice(own *searchroute.Route, ownNodes []int, ownCut int, otherNodes []int, otherCut int) []int {
	out := append(append([]int(nil), ownNodes[:ownCut+1]...), otherNodes[otherCut+1:]...)
	out[len(out)-1] = own.Depot()

	return out
}

func (TwoOpt) Apply(u, v Candidate) error {
	if u.Route == v.Route {
		lo, hi := u.Pos, v.Pos
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo+1 > hi {
			return ErrNoMove
		}

		nodes := fullNodes(u.Route)
		seg := reversed(nodes[lo+1 : hi+1])
		newNodes := make([]int, 0, len(nodes))
		newNodes = append(newNodes, nodes[:lo+1]...)
		newNodes = append(newNodes, seg...)
		newNodes = append(newNodes, nodes[hi+1:]...)

		return replaceClients(u.Route, stripDepots(newNodes))
	}

	uNodes := fullNodes(u.Route)
	vNodes := fullNodes(v.Route)

	newUNodes := twoOptSplice(u.Route, uNodes, u.Pos, vNodes, v.Pos)
	newVNodes := twoOptSplice(v.Route, vNodes, v.Pos, uNodes, u.Pos)

	if err := replaceClients(u.Route, stripDepots(newUNodes)); err != nil {
		return err
	}

	return replaceClients(v.Route, stripDepots(newVNodes))
}
