package costeval

import (
	"errors"

	"vrpcore/measure"
)

// ErrNegativePenalty is returned by Validate when either coefficient is
// negative, which would let an operator's evaluate reward infeasibility.
var ErrNegativePenalty = errors.New("costeval: penalty coefficient must be non-negative")

// Penalties holds the two tunable coefficients that convert raw
// infeasibility into penalised cost. It carries no other state and is
// passed by value, mirroring the teacher's Options/DefaultOptions pattern.
type Penalties struct {
	// CapacityPenalty scales excess load (load beyond a route's capacity).
	CapacityPenalty measure.Scalar
	// TimeWarpPenalty scales accumulated time warp.
	TimeWarpPenalty measure.Scalar
}

// DefaultPenalties returns the standard unit-weighted penalty pair; both
// excess load and time warp count one-for-one against distance.
func DefaultPenalties() Penalties {
	return Penalties{CapacityPenalty: 1, TimeWarpPenalty: 1}
}

// Tighten multiplies both coefficients by factor (> 1 raises penalties),
// returning the adjusted value. Used by the outer loop's adaptive penalty
// management when repeated search passes yield infeasible output.
func (p Penalties) Tighten(factor measure.Scalar) Penalties {
	return Penalties{
		CapacityPenalty: p.CapacityPenalty * factor,
		TimeWarpPenalty: p.TimeWarpPenalty * factor,
	}
}

// Loosen multiplies both coefficients by factor (< 1 lowers penalties),
// the inverse of Tighten, used once feasibility pressure can relax.
func (p Penalties) Loosen(factor measure.Scalar) Penalties {
	return p.Tighten(factor)
}

// Validate rejects a negative coefficient, which would invert the
// penalty's intended direction.
func (p Penalties) Validate() error {
	if p.CapacityPenalty < 0 || p.TimeWarpPenalty < 0 {
		return ErrNegativePenalty
	}

	return nil
}
