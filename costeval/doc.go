// Package costeval turns raw route statistics (distance, excess load, time
// warp, fixed vehicle cost, uncollected prizes) into the single penalised
// scalar the search driver minimizes.
//
// The evaluator is deliberately stateless beyond its two penalty
// coefficients, following the teacher's tsp.Options value-object
// discipline: no hidden accumulation, read many times per search pass,
// never mutated during an operator's evaluate.
package costeval
