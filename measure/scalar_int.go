//go:build vrp_integer

package measure

import "math"

// Scalar is the numeric type used for distances, durations, loads, costs,
// and coordinates. This build (tag vrp_integer) uses truncating int64
// precision — useful for instances where inputs are already integral
// (e.g. classic CVRPLIB instances) and exact reproducibility across
// platforms matters more than sub-unit precision.
type Scalar = int64

// Precision reports which numeric representation this build compiles.
const Precision = PrecisionInteger

// FromFloat64 truncates a raw float64 (e.g. a Euclidean coordinate
// distance) into Scalar.
//
// Complexity: O(1).
func FromFloat64(x float64) Scalar {
	return Scalar(math.Trunc(x))
}

// Round is the identity on the integer build: integers carry no
// accumulated floating-point drift.
//
// Complexity: O(1).
func Round(x Scalar) Scalar {
	return x
}

// Infeasible is the documented sentinel "very large" cost: distinct from
// any reachable penalised cost, but safe to add/subtract without overflow.
//
// Complexity: O(1).
func Infeasible() Scalar {
	return math.MaxInt64 / 4
}
