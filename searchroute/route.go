package searchroute

import (
	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/segment"
	"vrpcore/solution"
)

// Summary bundles the three segment algebras for one prefix, suffix, or
// arbitrary sub-range of a Route, the unit Before/After/Between return.
type Summary struct {
	Distance segment.DistanceSegment
	Load     segment.LoadSegment
	Duration segment.DurationSegment
}

// Route is a mutable, single-vehicle sequence: slot 0 and slot size+1 are
// the (fixed) depot, slots [1, size] are clients. Owned exclusively by the
// local-search driver for one search pass.
type Route struct {
	pd               *pdata.ProblemData
	vehicleTypeIndex int
	depotLoc         int
	capacity         measure.Scalar
	fixedCost        measure.Scalar
	maxDuration      measure.Scalar

	nodes []int // location indices; nodes[0] == nodes[len-1] == depotLoc

	before []Summary // before[i]: segment covering nodes[0..i]
	after  []Summary // after[i]: segment covering nodes[i..len-1]
	dirty  bool
	// version increments on every Update; a debug aid for detecting a
	// stale read after a mutation that was never followed by Update.
	version int
}

// New projects a solution.Route into a mutable Route ready for search.
//
// Complexity: O(route size).
func New(pd *pdata.ProblemData, r solution.Route) *Route {
	vt, _ := pd.VehicleType(r.VehicleTypeIndex())
	depotLoc := r.DepotLocationIndex()

	nodes := make([]int, 0, r.Size()+2)
	nodes = append(nodes, depotLoc)
	for _, ci := range r.Clients() {
		nodes = append(nodes, pd.ClientLocationIndex(ci))
	}
	nodes = append(nodes, depotLoc)

	rt := &Route{
		pd:               pd,
		vehicleTypeIndex: r.VehicleTypeIndex(),
		depotLoc:         depotLoc,
		capacity:         vt.Capacity(),
		fixedCost:        vt.FixedCost(),
		maxDuration:      vt.MaxDuration(),
		nodes:            nodes,
	}
	rt.dirty = true
	rt.Update()

	return rt
}

// NewEmpty builds a depot-only Route for vehicleTypeIndex: no clients,
// zero distance, zero load, zero time warp.
//
// Complexity: O(1).
func NewEmpty(pd *pdata.ProblemData, vehicleTypeIndex int) (*Route, error) {
	vt, err := pd.VehicleType(vehicleTypeIndex)
	if err != nil {
		return nil, err
	}
	depotLoc := vt.DepotIndex()

	rt := &Route{
		pd:               pd,
		vehicleTypeIndex: vehicleTypeIndex,
		depotLoc:         depotLoc,
		capacity:         vt.Capacity(),
		fixedCost:        vt.FixedCost(),
		maxDuration:      vt.MaxDuration(),
		nodes:            []int{depotLoc, depotLoc},
	}
	rt.dirty = true
	rt.Update()

	return rt, nil
}

func singleSummary(pd *pdata.ProblemData, locIdx int) Summary {
	isDepot := locIdx < pd.NumDepots()

	var service, twEarly, twLate, release, delivery, pickup measure.Scalar
	if isDepot {
		depot, _ := pd.Depot(locIdx)
		twEarly, twLate = depot.TWEarly(), depot.TWLate()
	} else {
		ci := locIdx - pd.NumDepots()
		c, _ := pd.Client(ci)
		service, twEarly, twLate, release = c.ServiceDuration(), c.TWEarly(), c.TWLate(), c.ReleaseTime()
		delivery, pickup = c.Delivery(), c.Pickup()
	}

	return Summary{
		Distance: segment.NewDistanceSegment(locIdx),
		Load:     segment.NewLoadSegment(delivery, pickup),
		Duration: segment.NewDurationSegment(locIdx, service, twEarly, twLate, release),
	}
}

// Fold computes the segment summary for an arbitrary chain of location
// indices, the same associative fold Update performs over a Route's own
// nodes. Move operators use it to evaluate a hypothetical resulting
// sequence — one they assembled themselves, e.g. by splicing client runs
// between two candidate routes — without mutating any Route to do so.
//
// Complexity: O(len(nodes)).
func Fold(pd *pdata.ProblemData, nodes []int) Summary {
	s := singleSummary(pd, nodes[0])
	for i := 1; i < len(nodes); i++ {
		s = mergeSummary(pd, s, singleSummary(pd, nodes[i]))
	}

	return s
}

func mergeSummary(pd *pdata.ProblemData, a, b Summary) Summary {
	return Summary{
		Distance: segment.MergeDistance(pd, a.Distance, b.Distance),
		Load:     segment.MergeLoad(a.Load, b.Load),
		Duration: segment.MergeDuration(pd, a.Duration, b.Duration),
	}
}

// Update recomputes the prefix and suffix caches in one forward and one
// backward pass over the current node sequence. Must be called after any
// Insert/Remove/Swap before Before/After/Between are queried again.
//
// Complexity: O(size).
func (r *Route) Update() {
	if !r.dirty {
		return
	}

	n := len(r.nodes)
	r.before = make([]Summary, n)
	r.after = make([]Summary, n)

	r.before[0] = singleSummary(r.pd, r.nodes[0])
	for i := 1; i < n; i++ {
		r.before[i] = mergeSummary(r.pd, r.before[i-1], singleSummary(r.pd, r.nodes[i]))
	}

	r.after[n-1] = singleSummary(r.pd, r.nodes[n-1])
	for i := n - 2; i >= 0; i-- {
		r.after[i] = mergeSummary(r.pd, singleSummary(r.pd, r.nodes[i]), r.after[i+1])
	}

	r.dirty = false
	r.version++
}

// Before returns the cached segment summary for nodes[0..i] inclusive.
//
// Complexity: O(1), or ErrStale if the cache is dirty.
func (r *Route) Before(i int) (Summary, error) {
	if r.dirty {
		return Summary{}, ErrStale
	}
	if i < 0 || i >= len(r.nodes) {
		return Summary{}, ErrIndexOutOfRange
	}

	return r.before[i], nil
}

// After returns the cached segment summary for nodes[i..end] inclusive.
//
// Complexity: O(1), or ErrStale if the cache is dirty.
func (r *Route) After(i int) (Summary, error) {
	if r.dirty {
		return Summary{}, ErrStale
	}
	if i < 0 || i >= len(r.nodes) {
		return Summary{}, ErrIndexOutOfRange
	}

	return r.after[i], nil
}

// Between synthesizes the segment summary for nodes[i..j] inclusive by
// folding single-location summaries left to right. Unlike Before/After it
// is not cached — callers use it for the small, arbitrary sub-ranges a
// move operator needs (a handful of clients), not the whole route.
//
// Complexity: O(j - i).
func (r *Route) Between(i, j int) (Summary, error) {
	if r.dirty {
		return Summary{}, ErrStale
	}
	if i < 0 || j >= len(r.nodes) || i > j {
		return Summary{}, ErrIndexOutOfRange
	}

	s := singleSummary(r.pd, r.nodes[i])
	for k := i + 1; k <= j; k++ {
		s = mergeSummary(r.pd, s, singleSummary(r.pd, r.nodes[k]))
	}

	return s, nil
}

func (r *Route) markDirty() {
	r.dirty = true
}

// Insert places a client at location index locIdx at slot pos, shifting
// slots [pos, size] one to the right. pos must be in [1, size+1]; slot 0
// and the final depot slot cannot be targeted directly.
//
// Complexity: O(size) to shift; marks the cache dirty.
func (r *Route) Insert(pos, locIdx int) error {
	if pos < 1 || pos > len(r.nodes)-1 {
		return ErrDepotSlot
	}

	r.nodes = append(r.nodes, 0)
	copy(r.nodes[pos+1:], r.nodes[pos:len(r.nodes)-1])
	r.nodes[pos] = locIdx
	r.markDirty()

	return nil
}

// Remove deletes the client at slot pos, shifting subsequent slots left.
// pos must be a client slot, in [1, size].
//
// Complexity: O(size); marks the cache dirty.
func (r *Route) Remove(pos int) error {
	if pos < 1 || pos > len(r.nodes)-2 {
		return ErrDepotSlot
	}

	copy(r.nodes[pos:], r.nodes[pos+1:])
	r.nodes = r.nodes[:len(r.nodes)-1]
	r.markDirty()

	return nil
}

// Swap exchanges the clients at slots a and b, both in [1, size].
//
// Complexity: O(1); marks the cache dirty.
func (r *Route) Swap(a, b int) error {
	if a < 1 || a > len(r.nodes)-2 || b < 1 || b > len(r.nodes)-2 {
		return ErrDepotSlot
	}

	r.nodes[a], r.nodes[b] = r.nodes[b], r.nodes[a]
	r.markDirty()

	return nil
}

// At returns the location index at slot pos.
//
// Complexity: O(1).
func (r *Route) At(pos int) (int, error) {
	if pos < 0 || pos >= len(r.nodes) {
		return 0, ErrIndexOutOfRange
	}

	return r.nodes[pos], nil
}

// Size is the number of client slots (excludes both depot slots).
func (r *Route) Size() int { return len(r.nodes) - 2 }

// Empty reports whether the route carries no clients.
func (r *Route) Empty() bool { return r.Size() == 0 }

// Dirty reports whether Update must be called before the cache can be
// queried again.
func (r *Route) Dirty() bool { return r.dirty }

// Version increments every time Update runs; SwapStar's caches compare
// this against a recorded value to detect a stale read (spec.md §8 S5).
func (r *Route) Version() int { return r.version }

func (r *Route) VehicleTypeIndex() int         { return r.vehicleTypeIndex }
func (r *Route) Depot() int                    { return r.depotLoc }
func (r *Route) Capacity() measure.Scalar      { return r.capacity }
func (r *Route) FixedVehicleCost() measure.Scalar { return r.fixedCost }
func (r *Route) MaxDuration() measure.Scalar      { return r.maxDuration }
func (r *Route) ProblemData() *pdata.ProblemData  { return r.pd }

// full returns the whole-route Before summary, requiring an up-to-date
// cache.
func (r *Route) full() Summary {
	s, err := r.Before(len(r.nodes) - 1)
	if err != nil {
		panic(err) // callers of the route-level aggregates below always Update first
	}

	return s
}

// Distance is the total travel distance of the route.
func (r *Route) Distance() measure.Scalar { return r.full().Distance.Distance() }

// Duration is the total elapsed duration of the route.
func (r *Route) Duration() measure.Scalar { return r.full().Duration.Duration() }

// Load is the peak instantaneous load reached along the route.
func (r *Route) Load() measure.Scalar { return r.full().Load.Load() }

// TimeWarp is the accumulated time warp, folding in duration overrun
// against MaxDuration and release-time lateness (read-time derivation,
// never stored on the segment itself).
func (r *Route) TimeWarp() measure.Scalar { return r.full().Duration.TimeWarp(r.maxDuration) }

// ExcessLoad is the amount by which Load exceeds Capacity.
func (r *Route) ExcessLoad() measure.Scalar { return measure.PosPart(r.Load() - r.capacity) }

// ToSolutionRoute exports the current (clean) node sequence back to an
// immutable solution.Route, the final step of a search pass.
//
// Complexity: O(size).
func (r *Route) ToSolutionRoute() (solution.Route, error) {
	clients := make([]int, 0, r.Size())
	for i := 1; i < len(r.nodes)-1; i++ {
		clients = append(clients, r.nodes[i]-r.pd.NumDepots())
	}

	return solution.NewRoute(r.pd, r.vehicleTypeIndex, clients)
}
