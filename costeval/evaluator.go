package costeval

import "vrpcore/measure"

// Stats is the minimal read surface a solution (or a candidate move's
// projected result) must expose for cost evaluation. solution.Solution
// satisfies this; so does any ad-hoc aggregate an operator builds while
// evaluating a candidate move.
type Stats interface {
	Distance() measure.Scalar
	FixedVehicleCost() measure.Scalar
	ExcessLoad() measure.Scalar
	TimeWarp() measure.Scalar
	UncollectedPrizes() measure.Scalar
}

// CostEvaluator converts route statistics into the scalar objective the
// search driver minimizes. It is a value-like object: read many times per
// search pass, never mutated during an operator's evaluate.
type CostEvaluator struct {
	penalties Penalties
}

// NewCostEvaluator builds an evaluator from a fixed penalty pair.
func NewCostEvaluator(p Penalties) CostEvaluator {
	return CostEvaluator{penalties: p}
}

// Penalties returns the coefficients this evaluator was built with.
func (e CostEvaluator) Penalties() Penalties { return e.penalties }

// WithPenalties returns a copy of e using adjusted penalties, e.g. after an
// outer-loop Tighten/Loosen call.
func (e CostEvaluator) WithPenalties(p Penalties) CostEvaluator {
	return CostEvaluator{penalties: p}
}

// LoadPenalty is the cost charged for carrying load beyond capacity.
//
// Complexity: O(1).
func (e CostEvaluator) LoadPenalty(load, capacity measure.Scalar) measure.Scalar {
	return measure.PosPart(load-capacity) * e.penalties.CapacityPenalty
}

// TWPenalty is the cost charged for accumulated time warp.
//
// Complexity: O(1).
func (e CostEvaluator) TWPenalty(timeWarp measure.Scalar) measure.Scalar {
	return timeWarp * e.penalties.TimeWarpPenalty
}

// PenalisedCost is distance + fixed vehicle cost + load penalty sum + time
// warp penalty sum + uncollected prizes. Unlike Cost, it never substitutes
// the infeasible sentinel — it is the quantity the search driver always
// compares deltas against, feasible or not.
//
// Complexity: O(1), given O(1) Stats accessors.
func (e CostEvaluator) PenalisedCost(s Stats) measure.Scalar {
	return s.Distance() + s.FixedVehicleCost() +
		s.ExcessLoad()*e.penalties.CapacityPenalty + e.TWPenalty(s.TimeWarp()) +
		s.UncollectedPrizes()
}

// Cost is PenalisedCost for a feasible solution (zero excess load, zero
// time warp), or the documented Infeasible sentinel otherwise. For a
// feasible solution this reduces to distance + fixed_vehicle_cost +
// uncollected_prizes (the load and time-warp penalty terms vanish), the
// same quantity up to the constant total-prize offset as "distance +
// fixed_vehicle_cost - prizes_collected". The sentinel is chosen distinct
// from any reachable penalised cost (see measure.Infeasible), never a
// value an operator's evaluate could confuse with a real delta.
//
// Complexity: O(1).
func (e CostEvaluator) Cost(s Stats) measure.Scalar {
	if s.ExcessLoad() > 0 || s.TimeWarp() > 0 {
		return measure.Infeasible()
	}

	return s.Distance() + s.FixedVehicleCost() + s.UncollectedPrizes()
}
