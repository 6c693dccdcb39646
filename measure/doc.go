// Package measure defines the scalar numeric type shared by every other
// VRPCORE package: distances, durations, loads, costs, and coordinates are
// all expressed as measure.Scalar.
//
// The concrete representation is a build-time switch, mirroring the
// teacher's (github.com/katalvlaran/lvlath's tsp package) Options-driven
// configuration philosophy but pushed to the type system instead of a
// runtime flag, since distance/duration/load arithmetic must not mix
// representations within one build:
//
//   - default build: Scalar = float64 ("double" semantics).
//   - `-tags vrp_integer`: Scalar = int64 (truncating semantics).
//
// Both builds expose the same function set (FromFloat64, Round, Max, Min,
// Infeasible), so the rest of the module never branches on precision.
//
// Complexity: every exported function here is O(1).
package measure
