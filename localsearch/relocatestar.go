package localsearch

import (
	"vrpcore/costeval"
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/searchroute"
)

// RelocateStar considers every single-client relocation between two
// routes, in both directions, and keeps only the best. It amortises what
// would otherwise be a granular-neighbour-list scan of Exchange{1,0}
// calls for every client in both routes against every slot in the other.
//
// Grounded on spec.md §4.4.4; carries no cross-call cache (unlike
// SwapStar) since relocation, unlike SWAP*, has nothing to precompute
// beyond one pass over each route's clients.
type RelocateStar struct {
	best     measure.Scalar
	bestFrom Candidate
	bestTo   Candidate
	have     bool
}

func (op *RelocateStar) Name() string { return "relocate_star" }

// Evaluate scans every (client in r1 -> slot in r2) and (client in r2 ->
// slot in r1) relocation, returning the best (most negative) delta found.
// The winning move is cached for Apply.
func (op *RelocateStar) Evaluate(pd *pdata.ProblemData, ce costeval.CostEvaluator, r1, r2 *searchroute.Route) measure.Scalar {
	op.have = false
	op.best = 0

	exch := Exchange{N: 1, M: 0}

	op.scanDirection(pd, ce, exch, r1, r2)
	op.scanDirection(pd, ce, exch, r2, r1)

	if !op.have {
		return 0
	}

	return op.best
}

func (op *RelocateStar) scanDirection(pd *pdata.ProblemData, ce costeval.CostEvaluator, exch Exchange, from, to *searchroute.Route) {
	for pos := 1; pos <= from.Size(); pos++ {
		u := Candidate{Route: from, Pos: pos}
		for anchor := 0; anchor <= to.Size(); anchor++ {
			v := Candidate{Route: to, Pos: anchor}
			delta := exch.Evaluate(pd, ce, u, v)
			if delta < 0 && (!op.have || delta < op.best) {
				op.have = true
				op.best = delta
				op.bestFrom = u
				op.bestTo = v
			}
		}
	}
}

// Apply performs the best relocation found by the prior Evaluate call.
func (op *RelocateStar) Apply(pd *pdata.ProblemData, r1, r2 *searchroute.Route) error {
	if !op.have {
		return ErrNoMove
	}
	exch := Exchange{N: 1, M: 0}

	return exch.Apply(op.bestFrom, op.bestTo)
}

func (op *RelocateStar) Init(routes []*searchroute.Route) { op.have = false }

func (op *RelocateStar) Update(r *searchroute.Route) { op.have = false }
