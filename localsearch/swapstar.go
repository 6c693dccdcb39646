package localsearch

import (
	"vrpcore/costeval"
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/searchroute"
)

// gapCandidate is one candidate insertion point: insert right after slot
// afterPos (0 means right after the leading depot), at the given
// marginal distance cost.
type gapCandidate struct {
	afterPos int
	cost     measure.Scalar
}

// routeCache holds one route's removal-saving and insertion-cost figures,
// valid only for the route version it was built against.
type routeCache struct {
	version       int
	removalSaving map[int]measure.Scalar   // slot pos -> distance saved by removing it
	threeBest     map[int][]gapCandidate   // client location index -> up to 3 cheapest gaps, ascending cost
}

// SwapStar exchanges one client from R1 with one from R2, each reinserted
// at whichever free position in the other route is cheapest — not
// necessarily its counterpart's old slot. removalCosts and threeBest
// (spec.md §4.4.5) are distance-only estimates derived in O(1) from a
// route's cached Before/After summaries, used to prune the (U, V)
// search space; the delta actually returned and applied is always
// recomputed exactly via a full splice-and-fold, so a stale or
// approximate estimate can only cost a missed improving move, never an
// incorrectly-applied one.
type SwapStar struct {
	caches map[*searchroute.Route]*routeCache

	haveMove          bool
	best              measure.Scalar
	r1, r2            *searchroute.Route
	r1Pos, r2Pos      int
	r1InsertAfter     int // gap in r1 (pre-removal indexing) to insert r2's client into
	r2InsertAfter     int // gap in r2 (pre-removal indexing) to insert r1's client into
}

func (op *SwapStar) Name() string { return "swap_star" }

func (op *SwapStar) Init(routes []*searchroute.Route) {
	op.caches = make(map[*searchroute.Route]*routeCache)
	op.haveMove = false
}

func (op *SwapStar) Update(r *searchroute.Route) {
	if op.caches != nil {
		delete(op.caches, r)
	}
	op.haveMove = false
}

func (op *SwapStar) ensureCache(r *searchroute.Route) *routeCache {
	if op.caches == nil {
		op.caches = make(map[*searchroute.Route]*routeCache)
	}
	c, ok := op.caches[r]
	if ok && c.version == r.Version() {
		return c
	}

	c = &routeCache{
		version:       r.Version(),
		removalSaving: make(map[int]measure.Scalar),
		threeBest:     make(map[int][]gapCandidate),
	}
	op.caches[r] = c

	return c
}

// removalSaving is the distance saved by removing the client at pos,
// derived from the cached Before(pos-1)/After(pos+1) frames: O(1).
func (op *SwapStar) removalSaving(pd *pdata.ProblemData, r *searchroute.Route, pos int) measure.Scalar {
	c := op.ensureCache(r)
	if v, ok := c.removalSaving[pos]; ok {
		return v
	}

	before, _ := r.Before(pos - 1)
	after, _ := r.After(pos + 1)
	loc, _ := r.At(pos)

	withClient := pd.MustDist(before.Distance.IdxLast(), loc) + pd.MustDist(loc, after.Distance.IdxFirst())
	withoutClient := pd.MustDist(before.Distance.IdxLast(), after.Distance.IdxFirst())

	saving := withClient - withoutClient
	c.removalSaving[pos] = saving

	return saving
}

// threeBest returns up to the 3 cheapest gaps in r for inserting a client
// at location clientLoc, ascending by marginal distance cost. Rejects a
// candidate whose cost is >= the current third-best while scanning, so
// the array never holds more than 3 entries.
func (op *SwapStar) threeBest(pd *pdata.ProblemData, r *searchroute.Route, clientLoc int) []gapCandidate {
	c := op.ensureCache(r)
	if v, ok := c.threeBest[clientLoc]; ok {
		return v
	}

	var best []gapCandidate
	for afterPos := 0; afterPos <= r.Size(); afterPos++ {
		before, _ := r.Before(afterPos)
		after, _ := r.After(afterPos + 1)

		withoutClient := pd.MustDist(before.Distance.IdxLast(), after.Distance.IdxFirst())
		withClient := pd.MustDist(before.Distance.IdxLast(), clientLoc) + pd.MustDist(clientLoc, after.Distance.IdxFirst())
		cost := withClient - withoutClient

		if len(best) == 3 && cost >= best[2].cost {
			continue
		}
		best = append(best, gapCandidate{afterPos: afterPos, cost: cost})
		for i := len(best) - 1; i > 0 && best[i].cost < best[i-1].cost; i-- {
			best[i], best[i-1] = best[i-1], best[i]
		}
		if len(best) > 3 {
			best = best[:3]
		}
	}
	c.threeBest[clientLoc] = best

	return best
}

// pickGap returns the cheapest gap not adjacent to excludePos (the slot
// about to be vacated elsewhere), falling back through the cached
// three-best entries; false if all three are excluded.
func pickGap(gaps []gapCandidate, excludePos int) (gapCandidate, bool) {
	for _, g := range gaps {
		if g.afterPos == excludePos-1 || g.afterPos == excludePos {
			continue
		}

		return g, true
	}

	return gapCandidate{}, false
}

// relocateSingle returns route r's full node sequence (depots included)
// after removing the client at removePos and inserting newLoc at the gap
// that sat after afterPos in r's original (pre-removal) indexing.
func relocateSingle(r *searchroute.Route, removePos int, afterPos int, newLoc int) []int {
	nodes := spliceOne(r, removePos, 1, nil)
	insertAt := afterPos + 1
	if afterPos >= removePos {
		insertAt--
	}
	out := make([]int, 0, len(nodes)+1)
	out = append(out, nodes[:insertAt]...)
	out = append(out, newLoc)
	out = append(out, nodes[insertAt:]...)

	return out
}

func (op *SwapStar) Evaluate(pd *pdata.ProblemData, ce costeval.CostEvaluator, r1, r2 *searchroute.Route) measure.Scalar {
	op.haveMove = false
	op.best = 0

	oldR1 := routeContribution(ce, r1.Capacity(), r1.MaxDuration(), r1.FixedVehicleCost(), r1.Size(), wholeSummary(r1))
	oldR2 := routeContribution(ce, r2.Capacity(), r2.MaxDuration(), r2.FixedVehicleCost(), r2.Size(), wholeSummary(r2))
	oldTotal := oldR1 + oldR2

	for uPos := 1; uPos <= r1.Size(); uPos++ {
		uLoc, _ := r1.At(uPos)
		uRemoval := op.removalSaving(pd, r1, uPos)
		uGaps := op.threeBest(pd, r2, uLoc)

		for vPos := 1; vPos <= r2.Size(); vPos++ {
			vLoc, _ := r2.At(vPos)
			vRemoval := op.removalSaving(pd, r2, vPos)
			vGaps := op.threeBest(pd, r1, vLoc)

			uGap, ok := pickGap(uGaps, vPos)
			if !ok {
				continue
			}
			vGap, ok := pickGap(vGaps, uPos)
			if !ok {
				continue
			}

			approx := (uGap.cost - uRemoval) + (vGap.cost - vRemoval)
			if approx >= 0 {
				continue
			}

			newR1Nodes := relocateSingle(r1, uPos, vGap.afterPos, vLoc)
			newR2Nodes := relocateSingle(r2, vPos, uGap.afterPos, uLoc)

			newR1 := routeContribution(ce, r1.Capacity(), r1.MaxDuration(), r1.FixedVehicleCost(), len(newR1Nodes)-2, searchroute.Fold(pd, newR1Nodes))
			newR2 := routeContribution(ce, r2.Capacity(), r2.MaxDuration(), r2.FixedVehicleCost(), len(newR2Nodes)-2, searchroute.Fold(pd, newR2Nodes))

			delta := (newR1 + newR2) - oldTotal
			if delta >= 0 {
				continue
			}
			if op.haveMove && (delta > op.best || (delta == op.best && !betterTieBreak(uLoc, vLoc, op))) {
				continue
			}

			op.haveMove = true
			op.best = delta
			op.r1, op.r2 = r1, r2
			op.r1Pos, op.r2Pos = uPos, vPos
			op.r1InsertAfter, op.r2InsertAfter = vGap.afterPos, uGap.afterPos
		}
	}

	if !op.haveMove {
		return 0
	}

	return op.best
}

// betterTieBreak reports whether the candidate (uLoc, vLoc) pair should
// replace the currently cached equal-cost move, tie-breaking
// deterministically by the lower client location index.
func betterTieBreak(uLoc, vLoc int, op *SwapStar) bool {
	curU, _ := op.r1.At(op.r1Pos)
	curV, _ := op.r2.At(op.r2Pos)

	return measure.Min(measure.Scalar(uLoc), measure.Scalar(vLoc)) < measure.Min(measure.Scalar(curU), measure.Scalar(curV))
}

func (op *SwapStar) Apply(pd *pdata.ProblemData, r1, r2 *searchroute.Route) error {
	if !op.haveMove || op.r1 != r1 || op.r2 != r2 {
		return ErrNoMove
	}

	uLoc, _ := r1.At(op.r1Pos)
	vLoc, _ := r2.At(op.r2Pos)

	newR1Nodes := relocateSingle(r1, op.r1Pos, op.r1InsertAfter, vLoc)
	newR2Nodes := relocateSingle(r2, op.r2Pos, op.r2InsertAfter, uLoc)

	if err := replaceClients(r1, stripDepots(newR1Nodes)); err != nil {
		return err
	}

	return replaceClients(r2, stripDepots(newR2Nodes))
}


