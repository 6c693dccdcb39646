package solution

import (
	"github.com/google/uuid"

	"vrpcore/measure"
	"vrpcore/pdata"
)

// Neighbour is a client's predecessor/successor within its route, used by
// broken_pairs_distance. A depot-adjacent boundary is represented by the
// route's depot location index.
type Neighbour struct {
	Pred int
	Succ int
}

// Solution is an immutable, canonical snapshot of a full assignment of
// clients to vehicle routes: hash-equatable (two Solutions built from the
// same routes compare equal field-by-field, UUIDs aside), produced once
// by the outer loop or by a search pass's export step, and read many
// times by the cost evaluator and diversity metrics.
type Solution struct {
	id      uuid.UUID
	routes  []Route
	missing []int // client indices visited by no route

	distance           measure.Scalar
	fixedVehicleCost   measure.Scalar
	excessLoad         measure.Scalar
	timeWarp           measure.Scalar
	prizesCollected    measure.Scalar
	uncollectedPrizes  measure.Scalar

	neighbours map[int]Neighbour // location index -> predecessor/successor location index
}

// New validates routes against data and freezes a Solution. Fatal
// (construction-time) errors: a route referencing an unknown client or
// vehicle type, a client assigned to more than one route, more routes for
// a vehicle type than are available, or a required client visited by no
// route.
//
// Complexity: O(total clients across all routes).
func New(pd *pdata.ProblemData, routes []Route) (*Solution, error) {
	assigned := make(map[int]int, pd.NumClients()) // client index -> route index
	perVehicleType := make(map[int]int, pd.NumVehicleTypes())
	neighbours := make(map[int]Neighbour)

	for ri, r := range routes {
		if r.vehicleTypeIndex < 0 || r.vehicleTypeIndex >= pd.NumVehicleTypes() {
			return nil, ErrUnknownVehicleType
		}
		perVehicleType[r.vehicleTypeIndex]++

		prevLoc := r.DepotLocationIndex()
		for pos, ci := range r.clients {
			if ci < 0 || ci >= pd.NumClients() {
				return nil, ErrUnknownClient
			}
			if _, dup := assigned[ci]; dup {
				return nil, ErrDuplicateClient
			}
			assigned[ci] = ri

			loc := pd.ClientLocationIndex(ci)
			var succLoc int
			if pos+1 < len(r.clients) {
				succLoc = pd.ClientLocationIndex(r.clients[pos+1])
			} else {
				succLoc = r.DepotLocationIndex()
			}
			neighbours[loc] = Neighbour{Pred: prevLoc, Succ: succLoc}
			prevLoc = loc
		}
	}

	for vtIdx, count := range perVehicleType {
		vt, err := pd.VehicleType(vtIdx)
		if err != nil {
			return nil, ErrUnknownVehicleType
		}
		if count > vt.NumAvailable() {
			return nil, ErrVehicleTypeOveravailable
		}
	}

	var missing []int
	var uncollected measure.Scalar
	for ci := 0; ci < pd.NumClients(); ci++ {
		if _, ok := assigned[ci]; ok {
			continue
		}
		c, _ := pd.Client(ci)
		if c.Required() {
			return nil, ErrMissingRequiredClient
		}
		missing = append(missing, ci)
		uncollected += c.Prize()
	}

	var distance, fixedCost, excessLoad, timeWarp, prizesCollected measure.Scalar
	for _, r := range routes {
		distance += r.Distance()
		fixedCost += r.FixedVehicleCost()
		excessLoad += r.ExcessLoad()
		timeWarp += r.TimeWarp()
		prizesCollected += r.Prize()
	}

	s := &Solution{
		id:                uuid.New(),
		routes:            append([]Route(nil), routes...),
		missing:           missing,
		distance:          distance,
		fixedVehicleCost:  fixedCost,
		excessLoad:        excessLoad,
		timeWarp:          timeWarp,
		prizesCollected:   prizesCollected,
		uncollectedPrizes: uncollected,
		neighbours:        neighbours,
	}

	return s, nil
}

func (s *Solution) ID() uuid.UUID    { return s.id }
func (s *Solution) Routes() []Route  { return append([]Route(nil), s.routes...) }
func (s *Solution) NumRoutes() int   { return len(s.routes) }
func (s *Solution) NumClients() int  { return s.numClients() }
func (s *Solution) NumMissingClients() int { return len(s.missing) }
func (s *Solution) MissingClients() []int  { return append([]int(nil), s.missing...) }

func (s *Solution) numClients() int {
	n := len(s.missing)
	for _, r := range s.routes {
		n += r.Size()
	}

	return n
}

// Distance is the total travel distance across all routes.
func (s *Solution) Distance() measure.Scalar { return s.distance }

// FixedVehicleCost is the sum of each used route's fixed activation cost.
func (s *Solution) FixedVehicleCost() measure.Scalar { return s.fixedVehicleCost }

// ExcessLoad is the sum of each route's excess load beyond capacity.
func (s *Solution) ExcessLoad() measure.Scalar { return s.excessLoad }

// TimeWarp is the sum of each route's accumulated time warp.
func (s *Solution) TimeWarp() measure.Scalar { return s.timeWarp }

// Prizes is the total prize collected by visited optional clients.
func (s *Solution) Prizes() measure.Scalar { return s.prizesCollected }

// UncollectedPrizes is the total prize forfeited by omitted optional
// clients.
func (s *Solution) UncollectedPrizes() measure.Scalar { return s.uncollectedPrizes }

// Feasible reports whether the solution has zero excess load and zero
// time warp across every route.
func (s *Solution) Feasible() bool {
	return s.excessLoad == 0 && s.timeWarp == 0
}

// Neighbours returns the predecessor/successor map used by
// broken_pairs_distance: one entry per visited client location index.
func (s *Solution) Neighbours() map[int]Neighbour {
	out := make(map[int]Neighbour, len(s.neighbours))
	for k, v := range s.neighbours {
		out[k] = v
	}

	return out
}
