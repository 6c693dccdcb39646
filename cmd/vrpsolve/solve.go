package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vrpcore/costeval"
	"vrpcore/diversity"
	"vrpcore/localsearch"
	"vrpcore/rng"
)

func newSolveCmd() *cobra.Command {
	var (
		numClients int
		seed       uint32
		capacity   float64
		neighbours int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a synthetic instance, run local search, and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			pd, err := buildInstance(numClients, seed, capacity)
			if err != nil {
				return fmt.Errorf("build instance: %w", err)
			}
			log.Info("instance built", "clients", pd.NumClients(), "depots", pd.NumDepots())

			initial, err := greedyInitialSolution(pd)
			if err != nil {
				return fmt.Errorf("build initial solution: %w", err)
			}
			log.Info("initial solution",
				"distance", float64(initial.Distance()),
				"routes", initial.NumRoutes(),
				"missing", initial.NumMissingClients(),
			)

			ce := costeval.NewCostEvaluator(costeval.DefaultPenalties())
			searchRNG := rng.New(seed)
			driver := localsearch.NewDriver(pd, ce, searchRNG,
				[]localsearch.NodeOperator{
					localsearch.NewExchange(1, 0),
					localsearch.NewExchange(1, 1),
					localsearch.NewExchange(2, 1),
					localsearch.TwoOpt{},
					localsearch.MoveTwoClientsReversed{},
				},
				[]localsearch.RouteOperator{
					&localsearch.RelocateStar{},
					&localsearch.SwapStar{},
					localsearch.SwapRoutes{},
				},
				localsearch.Options{K: neighbours},
			)

			out, stats, err := driver.Run(initial)
			if err != nil {
				return fmt.Errorf("run search: %w", err)
			}

			if out.NumMissingClients() > 0 {
				log.Warn("search left clients unvisited, repairing", "missing", out.NumMissingClients())
				out, err = diversity.GreedyRepair(out, out.MissingClients(), pd, ce)
				if err != nil {
					return fmt.Errorf("repair: %w", err)
				}
			}

			log.Info("search converged", "sweeps", stats.Sweeps, "movesApplied", stats.MovesApplied)

			fmt.Printf("distance=%.2f routes=%d feasible=%t penalised_cost=%.2f\n",
				float64(out.Distance()), out.NumRoutes(), out.Feasible(), float64(ce.PenalisedCost(out)))

			return nil
		},
	}

	cmd.Flags().IntVar(&numClients, "clients", 20, "number of synthetic clients to generate")
	cmd.Flags().Uint32Var(&seed, "seed", 1, "RNG seed for instance generation and search")
	cmd.Flags().Float64Var(&capacity, "capacity", 50, "per-vehicle capacity")
	cmd.Flags().IntVar(&neighbours, "neighbours", 8, "granular neighbour list size per client")

	return cmd
}
