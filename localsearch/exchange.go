package localsearch

import (
	"vrpcore/costeval"
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/searchroute"
)

// Exchange swaps N consecutive clients starting at U with M consecutive
// clients starting at V. M=0 degenerates to a pure relocation of U's run;
// N=M is a symmetric swap of two equal-length runs.
//
// Grounded on the teacher's tsp package move-operator shape (evaluate
// computes a delta from prefetched weights, apply performs the
// corresponding mutation) generalized from a single tour to a pair of
// routes and from simple-node relocation to arbitrary run lengths.
type Exchange struct {
	N, M int
}

func NewExchange(n, m int) Exchange { return Exchange{N: n, M: m} }

func (e Exchange) Name() string {
	if e.M == 0 {
		return "relocate"
	}
	if e.N == e.M {
		return "swap"
	}

	return "exchange"
}

// segmentsValid reports whether u's N-run and (if M>0) v's M-run sit
// entirely within client slots (never touching a depot), and — when both
// runs are in the same route — are non-overlapping and not adjacent (an
// adjacent same-route swap with N==M is a no-op 2-opt handles instead).
func (e Exchange) segmentsValid(u, v Candidate) bool {
	if u.Pos < 1 || u.Pos+e.N-1 > u.Route.Size() {
		return false
	}
	if e.M > 0 {
		if v.Pos < 1 || v.Pos+e.M-1 > v.Route.Size() {
			return false
		}
	} else if v.Pos < 0 || v.Pos > v.Route.Size() {
		return false
	}

	if u.Route != v.Route {
		return true
	}

	uLo, uHi := u.Pos, u.Pos+e.N-1
	if e.M == 0 {
		// Relocation within the same route: the insertion slot must fall
		// strictly outside the run being moved (inserting into your own
		// hole is either a no-op or ill-defined).
		return v.Pos < uLo-1 || v.Pos > uHi
	}

	vLo, vHi := v.Pos, v.Pos+e.M-1
	if uHi >= vLo && vHi >= uLo {
		return false // overlap
	}
	if e.N == e.M && (uHi+1 == vLo || vHi+1 == uLo) {
		return false // adjacent equal-length swap: trivial, 2-opt's job
	}

	return true
}

// Evaluate prices the move by splicing the would-be resulting sequence(s)
// and folding their segment summaries, without mutating either route.
func (e Exchange) Evaluate(pd *pdata.ProblemData, ce costeval.CostEvaluator, u, v Candidate) measure.Scalar {
	if !e.segmentsValid(u, v) {
		return 0
	}

	uClients := clientsAt(u.Route, u.Pos, e.N)
	var vClients []int
	if e.M > 0 {
		vClients = clientsAt(v.Route, v.Pos, e.M)
	}

	oldU := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), u.Route.Size(), wholeSummary(u.Route))

	if u.Route == v.Route {
		aAt, aLen, aRepl, bAt, bLen, bRepl := u.Pos, e.N, vClients, v.Pos, e.M, uClients
		if e.M == 0 {
			// Pure relocation within one route: a single edit suffices —
			// remove the U run, insert it at the (shifted) V slot.
			newNodes := spliceOne(u.Route, u.Pos, e.N, nil)
			insertAt := v.Pos + 1
			if v.Pos >= u.Pos {
				insertAt -= e.N
			}
			out := make([]int, 0, len(newNodes)+e.N)
			out = append(out, newNodes[:insertAt]...)
			out = append(out, uClients...)
			out = append(out, newNodes[insertAt:]...)
			newWhole := searchroute.Fold(pd, out)
			newU := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), len(out)-2, newWhole)

			return newU - oldU
		}
		if aAt > bAt {
			aAt, aLen, aRepl, bAt, bLen, bRepl = bAt, bLen, bRepl, aAt, aLen, aRepl
		}
		newNodes := spliceTwo(u.Route, aAt, aLen, aRepl, bAt, bLen, bRepl)
		newWhole := searchroute.Fold(pd, newNodes)
		newU := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), len(newNodes)-2, newWhole)

		return newU - oldU
	}

	oldV := routeContribution(ce, v.Route.Capacity(), v.Route.MaxDuration(), v.Route.FixedVehicleCost(), v.Route.Size(), wholeSummary(v.Route))

	newUNodes := spliceOne(u.Route, u.Pos, e.N, vClients)
	newVNodes := crossRouteInsert(v.Route, v.Pos, e.M, uClients)

	newUWhole := searchroute.Fold(pd, newUNodes)
	newVWhole := searchroute.Fold(pd, newVNodes)

	newU := routeContribution(ce, u.Route.Capacity(), u.Route.MaxDuration(), u.Route.FixedVehicleCost(), len(newUNodes)-2, newUWhole)
	newV := routeContribution(ce, v.Route.Capacity(), v.Route.MaxDuration(), v.Route.FixedVehicleCost(), len(newVNodes)-2, newVWhole)

	return (newU + newV) - (oldU + oldV)
}

// Apply performs the mutation Evaluate priced. Callers must invoke it
// with the same (u, v) immediately after a negative Evaluate result.
func (e Exchange) Apply(u, v Candidate) error {
	if !e.segmentsValid(u, v) {
		return ErrNoMove
	}

	uClients := clientsAt(u.Route, u.Pos, e.N)
	var vClients []int
	if e.M > 0 {
		vClients = clientsAt(v.Route, v.Pos, e.M)
	}

	if u.Route == v.Route {
		if e.M == 0 {
			newNodes := spliceOne(u.Route, u.Pos, e.N, nil)
			insertAt := v.Pos + 1
			if v.Pos >= u.Pos {
				insertAt -= e.N
			}
			out := make([]int, 0, len(newNodes)+e.N)
			out = append(out, newNodes[:insertAt]...)
			out = append(out, uClients...)
			out = append(out, newNodes[insertAt:]...)

			return replaceClients(u.Route, stripDepots(out))
		}

		aAt, aLen, aRepl, bAt, bLen, bRepl := u.Pos, e.N, vClients, v.Pos, e.M, uClients
		if aAt > bAt {
			aAt, aLen, aRepl, bAt, bLen, bRepl = bAt, bLen, bRepl, aAt, aLen, aRepl
		}
		newNodes := spliceTwo(u.Route, aAt, aLen, aRepl, bAt, bLen, bRepl)

		return replaceClients(u.Route, stripDepots(newNodes))
	}

	newUNodes := spliceOne(u.Route, u.Pos, e.N, vClients)
	newVNodes := crossRouteInsert(v.Route, v.Pos, e.M, uClients)

	if err := replaceClients(u.Route, stripDepots(newUNodes)); err != nil {
		return err
	}

	return replaceClients(v.Route, stripDepots(newVNodes))
}

// crossRouteInsert applies spliceOne for a candidate's (Pos, length)
// pair under the two distinct conventions v.Pos carries: when length > 0,
// Pos is the start of the run being replaced; when length == 0 (a pure
// relocation target), Pos is the anchor client to insert after, so the
// edit must target Pos+1 instead.
func crossRouteInsert(r *searchroute.Route, pos, length int, content []int) []int {
	if length == 0 {
		return spliceOne(r, pos+1, 0, content)
	}

	return spliceOne(r, pos, length, content)
}

func wholeSummary(r *searchroute.Route) searchroute.Summary {
	s, _ := r.Before(r.Size() + 1)

	return s
}

func stripDepots(nodes []int) []int {
	if len(nodes) <= 2 {
		return nil
	}

	return nodes[1 : len(nodes)-1]
}

// replaceClients clears a route's client slots and reinserts newClients
// in order. O(size) either way, so this is the uniform apply mechanism
// every node operator here uses instead of hand-rolled in-place surgery
// per move shape.
func replaceClients(r *searchroute.Route, newClients []int) error {
	for r.Size() > 0 {
		if err := r.Remove(1); err != nil {
			return err
		}
	}
	for i, loc := range newClients {
		if err := r.Insert(i+1, loc); err != nil {
			return err
		}
	}
	r.Update()

	return nil
}
