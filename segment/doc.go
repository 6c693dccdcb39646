// Package segment implements the three concatenable segment algebras that
// back every delta-cost evaluation in the search engine: DistanceSegment,
// LoadSegment, and DurationSegment. Each summarizes a contiguous chain of
// locations (a route prefix, suffix, or arbitrary sub-range) and each
// exposes an associative merge so that the summary for a longer chain is
// computed from the summaries of its parts in O(1), never by re-walking
// the chain.
//
// The teacher module has no equivalent of this package — its tsp package
// operates on a single tour with no segment cache — so these types are
// written fresh, but in the teacher's register: small value types, a
// two-argument merge as the primitive with a three-argument convenience
// wrapper, and no hidden global state.
//
// merge is required to be associative: merge(merge(a,b),c) ==
// merge(a,merge(b,c)) for every segment type (verified by the property
// tests in this package). Callers are free to merge left-to-right,
// right-to-left, or in a balanced tree; the driver relies on this to
// combine before(i) and after(i+1) in either order.
//
// DurationSegment's time-window tracking is itself a build-time switch,
// the same philosophy measure.Scalar's precision switch uses:
//
//   - default build (duration_tw.go): full Vidal time-window algebra.
//   - `-tags vrp_notw` (duration_notw.go): a degenerate DurationSegment
//     carrying only accumulated travel+service duration; TimeWarp always
//     reports 0 and merge reduces to a.duration + t + b.duration.
//
// Both variants expose the same exported surface, so DistanceSegment,
// LoadSegment, and every caller (searchroute, costeval, localsearch)
// compile unchanged under either tag.
package segment
