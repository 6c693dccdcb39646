package solution

import (
	"github.com/google/uuid"

	"vrpcore/measure"
	"vrpcore/pdata"
	"vrpcore/segment"
)

// Route is one vehicle's immutable, canonical sequence of client visits,
// plus every aggregate the cost evaluator and diversity metrics need
// without re-walking the chain.
type Route struct {
	id               uuid.UUID
	vehicleTypeIndex int
	clients          []int // client indices, 0-based among pdata clients, visit order

	distance measure.Scalar
	duration measure.Scalar
	load     measure.Scalar
	timeWarp measure.Scalar
	prize    measure.Scalar

	centroidX, centroidY measure.Scalar
	scheduleStart        measure.Scalar
	scheduleEnd          measure.Scalar
	slack                measure.Scalar

	capacity    measure.Scalar
	fixedCost   measure.Scalar
	maxDuration measure.Scalar
	depotIndex  int
}

// NewRoute builds and validates a Route for vehicleTypeIndex visiting
// clientIndices in order, computing every aggregate by folding the
// segment algebras across the depot-client-...-client-depot chain once.
//
// Complexity: O(len(clientIndices)).
func NewRoute(pd *pdata.ProblemData, vehicleTypeIndex int, clientIndices []int) (Route, error) {
	if len(clientIndices) == 0 {
		return Route{}, ErrEmptyRoute
	}

	vt, err := pd.VehicleType(vehicleTypeIndex)
	if err != nil {
		return Route{}, ErrUnknownVehicleType
	}

	seen := make(map[int]struct{}, len(clientIndices))
	for _, ci := range clientIndices {
		if ci < 0 || ci >= pd.NumClients() {
			return Route{}, ErrUnknownClient
		}
		if _, dup := seen[ci]; dup {
			return Route{}, ErrDuplicateClient
		}
		seen[ci] = struct{}{}
	}

	depotLoc := vt.DepotIndex()
	depot, _ := pd.Depot(depotLoc)

	locChain := make([]int, 0, len(clientIndices)+2)
	locChain = append(locChain, depotLoc)
	for _, ci := range clientIndices {
		locChain = append(locChain, pd.ClientLocationIndex(ci))
	}
	locChain = append(locChain, depotLoc)

	distSeg := segment.NewDistanceSegment(locChain[0])
	durSeg := segment.NewDurationSegment(locChain[0], 0, depot.TWEarly(), depot.TWLate(), 0)
	loadSeg := segment.NewLoadSegment(0, 0)

	var centroidX, centroidY measure.Scalar
	for _, ci := range clientIndices {
		c, _ := pd.Client(ci)
		centroidX += c.X()
		centroidY += c.Y()

		locIdx := pd.ClientLocationIndex(ci)
		distSeg = segment.MergeDistance(pd, distSeg, segment.NewDistanceSegment(locIdx))
		durSeg = segment.MergeDuration(pd, durSeg, segment.NewDurationSegment(locIdx, c.ServiceDuration(), c.TWEarly(), c.TWLate(), c.ReleaseTime()))
		loadSeg = segment.MergeLoad(loadSeg, segment.NewLoadSegment(c.Delivery(), c.Pickup()))
	}
	distSeg = segment.MergeDistance(pd, distSeg, segment.NewDistanceSegment(depotLoc))
	durSeg = segment.MergeDuration(pd, durSeg, segment.NewDurationSegment(depotLoc, 0, depot.TWEarly(), depot.TWLate(), 0))

	var prize measure.Scalar
	for _, ci := range clientIndices {
		c, _ := pd.Client(ci)
		prize += c.Prize()
	}

	n := measure.Scalar(len(clientIndices))
	if n > 0 {
		centroidX /= n
		centroidY /= n
	}

	r := Route{
		id:               uuid.New(),
		vehicleTypeIndex: vehicleTypeIndex,
		clients:          append([]int(nil), clientIndices...),
		distance:         distSeg.Distance(),
		duration:         durSeg.Duration(),
		load:             loadSeg.Load(),
		timeWarp:         durSeg.TimeWarp(vt.MaxDuration()),
		prize:            prize,
		centroidX:        centroidX,
		centroidY:        centroidY,
		scheduleStart:    durSeg.TWEarly(),
		scheduleEnd:      durSeg.TWEarly() + durSeg.Duration(),
		slack:            durSeg.TWLate() - durSeg.TWEarly(),
		capacity:         vt.Capacity(),
		fixedCost:        vt.FixedCost(),
		maxDuration:      vt.MaxDuration(),
		depotIndex:       depotLoc,
	}

	return r, nil
}

func (r Route) ID() uuid.UUID             { return r.id }
func (r Route) VehicleTypeIndex() int     { return r.vehicleTypeIndex }
func (r Route) Clients() []int            { return append([]int(nil), r.clients...) }
func (r Route) Size() int                 { return len(r.clients) }
func (r Route) Empty() bool               { return len(r.clients) == 0 }
func (r Route) Distance() measure.Scalar  { return r.distance }
func (r Route) Duration() measure.Scalar  { return r.duration }
func (r Route) Load() measure.Scalar      { return r.load }
func (r Route) TimeWarp() measure.Scalar  { return r.timeWarp }
func (r Route) Prize() measure.Scalar     { return r.prize }
func (r Route) Centroid() (measure.Scalar, measure.Scalar) { return r.centroidX, r.centroidY }
func (r Route) ScheduleStart() measure.Scalar { return r.scheduleStart }
func (r Route) ScheduleEnd() measure.Scalar   { return r.scheduleEnd }
func (r Route) Slack() measure.Scalar         { return r.slack }
func (r Route) Capacity() measure.Scalar      { return r.capacity }
func (r Route) FixedVehicleCost() measure.Scalar { return r.fixedCost }
func (r Route) MaxDuration() measure.Scalar      { return r.maxDuration }
func (r Route) DepotLocationIndex() int          { return r.depotIndex }

// ExcessLoad is the amount by which Load exceeds Capacity, zero if within.
//
// Complexity: O(1).
func (r Route) ExcessLoad() measure.Scalar {
	return measure.PosPart(r.load - r.capacity)
}
