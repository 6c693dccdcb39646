// Package localsearch holds the move operators and the driver that
// coordinates them: granular neighbour lists, first-improvement node
// sweeps, route-operator sweeps, and phase alternation until a full sweep
// produces no improving move.
//
// Every operator's Evaluate is a pure function: it computes the signed
// penalised-cost delta Apply would cause without mutating either route.
// It does so by building the node sequence each affected route would have
// after the move and folding it with searchroute.Fold into fresh segment
// summaries — never by mutating a route and rolling back. A non-negative
// delta means "no improvement"; the driver never calls Apply for those.
//
// The node operators and TwoOpt always fold in the load and time-warp
// penalty deltas before deciding improvement. SwapStar is the exception:
// it skips a candidate pair whose distance-only estimate is already
// non-negative, before pricing penalties (see DESIGN.md).
//
// Grounded on the teacher's tsp/two_opt.go and tsp/three_opt.go: the
// "prefetch weights, first-improvement scan, accept on delta < 0, restart
// scan after an accepted move" discipline is the direct model for
// Driver.Run, generalized from one tour to many routes and two operator
// kinds (node and route).
package localsearch
