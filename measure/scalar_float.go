//go:build !vrp_integer

package measure

import "math"

// Scalar is the numeric type used for distances, durations, loads, costs,
// and coordinates. This build uses double (float64) precision.
type Scalar = float64

// Precision reports which numeric representation this build compiles.
const Precision = PrecisionDouble

// FromFloat64 converts a raw float64 into Scalar. On the double build this
// is a no-op conversion; the integer build truncates.
//
// Complexity: O(1).
func FromFloat64(x float64) Scalar {
	return Scalar(x)
}

// Round stabilizes x to roundScale absolute precision, avoiding cross-
// platform floating-point drift in accumulated costs. Adapted from the
// teacher's tsp/cost.go round1e9.
//
// Complexity: O(1).
func Round(x Scalar) Scalar {
	return math.Round(x*roundScale) / roundScale
}

// Infeasible is the documented sentinel "very large" cost: distinct from
// any reachable penalised cost, but finite and safe to add/subtract without
// producing Inf or NaN (spec.md §9 Open Questions).
//
// Complexity: O(1).
func Infeasible() Scalar {
	return math.MaxFloat64 / 4
}
