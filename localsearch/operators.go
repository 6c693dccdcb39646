package localsearch

import (
	"vrpcore/costeval"
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/searchroute"
)

// Candidate names one client slot within a mutable route: the unit node
// operators are evaluated and applied against.
type Candidate struct {
	Route *searchroute.Route
	Pos   int // slot, 0..Route.Size(); 0 (the start depot) only as an insertion anchor or cut point
}

// NodeOperator is a move between two client slots, possibly in different
// routes. Evaluate is a pure function of the current route contents;
// Apply performs the mutation Evaluate priced, and must be called with
// the exact same (u, v) immediately after a negative Evaluate — the
// routes must not have changed in between.
type NodeOperator interface {
	// Evaluate returns the signed penalised-cost delta Apply(u, v) would
	// cause. A non-negative result means "do not apply".
	Evaluate(pd *pdata.ProblemData, ce costeval.CostEvaluator, u, v Candidate) measure.Scalar
	Apply(u, v Candidate) error
	// Name identifies the operator for Driver.Stats bookkeeping.
	Name() string
}

// RouteOperator is a move between two whole routes. Init/Update are no-ops
// for operators with no cached state; SwapStar is the one that uses them.
type RouteOperator interface {
	Evaluate(pd *pdata.ProblemData, ce costeval.CostEvaluator, r1, r2 *searchroute.Route) measure.Scalar
	Apply(pd *pdata.ProblemData, r1, r2 *searchroute.Route) error
	// Init marks every route's cached state dirty, called once per search
	// pass before the first Evaluate.
	Init(routes []*searchroute.Route)
	// Update invalidates whatever cached state this operator keeps for r,
	// called whenever r was mutated by any operator.
	Update(r *searchroute.Route)
	Name() string
}

// routeContribution is the penalised-cost contribution of one route given
// its hypothetical whole-route segment summary: distance, fixed vehicle
// cost, and the capacity/time-warp penalty terms. Prizes are omitted —
// repositioning already-assigned clients never changes which clients are
// visited, so the prize term of PenalisedCost never moves and operators
// can ignore it when comparing two candidate layouts.
//
// fixedCost is charged only when size (the route's client count in the
// hypothetical layout whole describes) is greater than zero: a route a
// move empties carries no vehicle, so it contributes no fixed cost —
// spec.md §4.4.1's "fixed-cost loss if all of U is being relocated away" /
// "fixed-cost gain if V was empty", and §8 boundary S4's emptied-source
// −fixed_cost contribution.
func routeContribution(ce costeval.CostEvaluator, capacity, maxDuration, fixedCost measure.Scalar, size int, whole searchroute.Summary) measure.Scalar {
	excess := measure.PosPart(whole.Load.Load() - capacity)
	tw := whole.Duration.TimeWarp(maxDuration)

	contribution := whole.Distance.Distance() + ce.Penalties().CapacityPenalty*excess + ce.TWPenalty(tw)
	if size > 0 {
		contribution += fixedCost
	}

	return contribution
}

// fullNodes reads out a route's entire node sequence, depots included.
func fullNodes(r *searchroute.Route) []int {
	n := r.Size() + 2
	nodes := make([]int, n)
	for i := 0; i < n; i++ {
		nodes[i], _ = r.At(i)
	}

	return nodes
}

// clientsAt reads the len nodes starting at pos (1-based client slots).
func clientsAt(r *searchroute.Route, pos, length int) []int {
	out := make([]int, length)
	for i := 0; i < length; i++ {
		out[i], _ = r.At(pos + i)
	}

	return out
}

// spliceOne returns the full node sequence for a route after replacing the
// run [at, at+length) with replacement — used when the two candidate
// routes of a move differ, so each side's edit is independent.
func spliceOne(r *searchroute.Route, at, length int, replacement []int) []int {
	nodes := fullNodes(r)
	out := make([]int, 0, len(nodes)-length+len(replacement))
	for i := 0; i < len(nodes); i++ {
		if i == at {
			out = append(out, replacement...)
		}
		if i >= at && i < at+length {
			continue
		}
		out = append(out, nodes[i])
	}

	return out
}

// spliceTwo returns the full node sequence for a single route after two
// simultaneous, non-overlapping edits: the run at aAt replaced by aRepl,
// the run at bAt replaced by bRepl. aAt must be < bAt.
func spliceTwo(r *searchroute.Route, aAt, aLen int, aRepl []int, bAt, bLen int, bRepl []int) []int {
	nodes := fullNodes(r)
	out := make([]int, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		if i == aAt {
			out = append(out, aRepl...)
		}
		if i == bAt {
			out = append(out, bRepl...)
		}
		if (i >= aAt && i < aAt+aLen) || (i >= bAt && i < bAt+bLen) {
			continue
		}
		out = append(out, nodes[i])
	}

	return out
}

func reversed(a []int) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}

	return out
}
