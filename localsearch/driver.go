package localsearch

import (
	"sort"

	"vrpcore/costeval"
	"vrpcore/pdata"
	"vrpcore/rng"
	"vrpcore/searchroute"
	"vrpcore/solution"
)

// Options configures a Driver's neighbour lists.
type Options struct {
	// K is the number of nearest candidate clients kept per client in the
	// granular neighbour list; the driver never tries a node move against
	// a client outside this list.
	K int
}

func DefaultOptions() Options {
	return Options{K: 10}
}

// Stats summarizes one Run: how many times each operator's Apply fired,
// and how many full sweeps the convergence loop needed.
type Stats struct {
	MovesApplied map[string]int
	Sweeps       int
}

// Driver owns one search pass: the mutable routes it is improving, the
// node and route operators tried in order, and the granular neighbour
// list every node move is restricted to.
//
// Grounded on the teacher's tsp package driver loop shape (tsp/two_opt.go,
// tsp/three_opt.go): randomize iteration order via the shared RNG,
// first-improvement acceptance, restart the inner scan after an accepted
// move, stop on a pass with zero accepted moves.
type Driver struct {
	pd       *pdata.ProblemData
	ce       costeval.CostEvaluator
	rng      *rng.RNG
	nodeOps  []NodeOperator
	routeOps []RouteOperator
	opts     Options

	neighbours map[int][]int // client location index -> k nearest client location indices
}

// NewDriver builds a Driver and its granular neighbour lists from pd's
// client coordinates.
//
// Complexity: O(numClients^2 log numClients) to build neighbour lists.
func NewDriver(pd *pdata.ProblemData, ce costeval.CostEvaluator, r *rng.RNG, nodeOps []NodeOperator, routeOps []RouteOperator, opts Options) *Driver {
	d := &Driver{pd: pd, ce: ce, rng: r, nodeOps: nodeOps, routeOps: routeOps, opts: opts}
	d.buildNeighbours()

	return d
}

func (d *Driver) buildNeighbours() {
	n := d.pd.NumClients()
	locs := make([]int, n)
	for i := 0; i < n; i++ {
		locs[i] = d.pd.ClientLocationIndex(i)
	}

	d.neighbours = make(map[int][]int, n)
	for _, a := range locs {
		type cand struct {
			loc  int
			dist float64
		}
		cands := make([]cand, 0, n-1)
		for _, b := range locs {
			if a == b {
				continue
			}
			cands = append(cands, cand{loc: b, dist: float64(d.pd.MustDist(a, b))})
		}
		sort.Slice(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

		k := d.opts.K
		if k > len(cands) {
			k = len(cands)
		}
		list := make([]int, k)
		for i := 0; i < k; i++ {
			list[i] = cands[i].loc
		}
		d.neighbours[a] = list
	}
}

// locationIndex maps a client location index to its current candidate
// (route, slot), rebuilt after every accepted move since positions shift.
func locationIndex(routes []*searchroute.Route) map[int]Candidate {
	idx := make(map[int]Candidate)
	for _, r := range routes {
		for pos := 1; pos <= r.Size(); pos++ {
			loc, _ := r.At(pos)
			idx[loc] = Candidate{Route: r, Pos: pos}
		}
	}

	return idx
}

// Run projects sol to mutable routes, searches to convergence, and
// exports the result to a new immutable Solution.
func (d *Driver) Run(sol *solution.Solution) (*solution.Solution, Stats, error) {
	solRoutes := sol.Routes()
	routes := make([]*searchroute.Route, len(solRoutes))
	for i, r := range solRoutes {
		routes[i] = searchroute.New(d.pd, r)
	}

	stats := Stats{MovesApplied: make(map[string]int)}

	for _, op := range d.routeOps {
		op.Init(routes)
	}

	clientLocs := make([]int, 0, sol.NumClients())
	for _, r := range routes {
		for pos := 1; pos <= r.Size(); pos++ {
			loc, _ := r.At(pos)
			clientLocs = append(clientLocs, loc)
		}
	}

	for {
		stats.Sweeps++
		anyImprovement := false

		if d.nodeSweep(routes, clientLocs, &stats) {
			anyImprovement = true
		}
		if d.routeSweep(routes, &stats) {
			anyImprovement = true
		}

		if !anyImprovement {
			break
		}
	}

	newRoutes := make([]solution.Route, 0, len(routes))
	for _, r := range routes {
		if r.Empty() {
			continue
		}
		sr, err := r.ToSolutionRoute()
		if err != nil {
			return nil, stats, err
		}
		newRoutes = append(newRoutes, sr)
	}

	out, err := solution.New(d.pd, newRoutes)

	return out, stats, err
}

// nodeSweep tries every node operator for every client against its
// granular neighbour list, first-improvement, restarting the scan for a
// client whenever a move involving it is applied. Returns whether any
// move was applied.
func (d *Driver) nodeSweep(routes []*searchroute.Route, clientLocs []int, stats *Stats) bool {
	order := append([]int(nil), clientLocs...)
	d.rng.ShuffleInts(order)

	improvedAny := false
	idx := locationIndex(routes)

	for _, uLoc := range order {
		for {
			uCand, ok := idx[uLoc]
			if !ok {
				break
			}

			improved := false
			for _, vLoc := range d.neighbours[uLoc] {
				vCand, ok := idx[vLoc]
				if !ok {
					continue
				}

				for _, op := range d.nodeOps {
					delta := op.Evaluate(d.pd, d.ce, uCand, vCand)
					if delta >= 0 {
						continue
					}
					if err := op.Apply(uCand, vCand); err != nil {
						continue
					}

					for _, ro := range d.routeOps {
						ro.Update(uCand.Route)
						ro.Update(vCand.Route)
					}

					stats.MovesApplied[op.Name()]++
					improvedAny = true
					improved = true
					idx = locationIndex(routes)

					break
				}
				if improved {
					break
				}
			}

			if !improved {
				break
			}
		}
	}

	return improvedAny
}

// routeSweep tries every route operator over every distinct pair of
// routes, first-improvement, until a full pass over all pairs applies
// nothing.
func (d *Driver) routeSweep(routes []*searchroute.Route, stats *Stats) bool {
	improvedAny := false

	for {
		improved := false

		for i := 0; i < len(routes); i++ {
			for j := i + 1; j < len(routes); j++ {
				r1, r2 := routes[i], routes[j]

				for _, op := range d.routeOps {
					delta := op.Evaluate(d.pd, d.ce, r1, r2)
					if delta >= 0 {
						continue
					}
					if err := op.Apply(d.pd, r1, r2); err != nil {
						continue
					}

					for _, ro := range d.routeOps {
						ro.Update(r1)
						ro.Update(r2)
					}

					stats.MovesApplied[op.Name()]++
					improved = true
					improvedAny = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return improvedAny
}
