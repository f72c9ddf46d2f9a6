// Command pathbench generates a random road map, runs both shortest-path
// algorithms over random source/target pairs, cross-checks their answers
// and reports per-pair and aggregate statistics. It is the demo consumer
// of the engine, not part of its contract.
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/maatheusgois-dd/pathfind/graph"
	"github.com/maatheusgois-dd/pathfind/mapgen"
	"github.com/maatheusgois-dd/pathfind/shortestpath"
)

const distTolerance = 1e-9

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		rows, cols int
		jitter     float64
		seed       int64
		pairs      int
		diagonal   bool
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "pathbench",
		Short:        "Compare Dijkstra and bidirectional Dijkstra on random maps",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})

			opts := mapgen.DefaultOptions()
			opts.Rows, opts.Cols = rows, cols
			opts.Jitter = jitter
			opts.Seed = seed
			if diagonal {
				opts.Connectivity = mapgen.Conn8
			}

			return run(cmd.Context(), logger, opts, pairs)
		},
	}

	root.Flags().IntVar(&rows, "rows", 48, "map grid rows")
	root.Flags().IntVar(&cols, "cols", 48, "map grid columns")
	root.Flags().Float64Var(&jitter, "jitter", 2.5, "max node displacement from the grid point")
	root.Flags().Int64Var(&seed, "seed", 1, "map and pair-selection seed")
	root.Flags().IntVar(&pairs, "pairs", 25, "number of random source/target pairs")
	root.Flags().BoolVar(&diagonal, "diagonal", false, "link diagonal neighbors too")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every pair")

	return root
}

// stats accumulates per-algorithm aggregates across all pairs.
type stats struct {
	time     time.Duration
	expanded int
}

func run(ctx context.Context, logger *charmlog.Logger, opts mapgen.Options, pairs int) error {
	buildStart := time.Now()
	g, err := mapgen.Generate(opts)
	if err != nil {
		return err
	}
	logger.Info("map ready",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"took", time.Since(buildStart))

	rng := rand.New(rand.NewSource(opts.Seed))
	var uni, bidi stats
	reachable := 0

	for i := 0; i < pairs; i++ {
		source := graph.NodeID(rng.Intn(g.NodeCount()))
		target := graph.NodeID(rng.Intn(g.NodeCount()))

		uniRes, err := shortestpath.Dijkstra(g, source, target, shortestpath.WithContext(ctx))
		if err != nil {
			return err
		}
		bidiRes, err := shortestpath.BidirectionalDijkstra(g, source, target, shortestpath.WithContext(ctx))
		if err != nil {
			return err
		}

		if !agree(uniRes.Distance, bidiRes.Distance) {
			return fmt.Errorf("pair %d→%d: algorithms disagree: %v vs %v",
				source, target, uniRes.Distance, bidiRes.Distance)
		}

		uni.time += uniRes.ExecutionTime
		uni.expanded += len(uniRes.ExploredNodes)
		bidi.time += bidiRes.ExecutionTime
		bidi.expanded += len(bidiRes.ExploredNodes)
		if uniRes.Reachable() {
			reachable++
		}

		logger.Debug("pair done",
			"source", source,
			"target", target,
			"distance", fmt.Sprintf("%.2f", uniRes.Distance),
			"hops", len(uniRes.Path),
			"expanded", len(uniRes.ExploredNodes),
			"expandedBidi", len(bidiRes.ExploredNodes))
	}

	logger.Info("all pairs agree", "pairs", pairs, "reachable", reachable)
	logger.Info("dijkstra", "totalTime", uni.time, "expanded", uni.expanded)
	logger.Info("bidirectional", "totalTime", bidi.time, "expanded", bidi.expanded,
		"expansionRatio", fmt.Sprintf("%.2f", ratio(bidi.expanded, uni.expanded)))

	return nil
}

// agree compares distances, treating both-unreachable as agreement.
func agree(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}

	return math.Abs(a-b) <= distTolerance
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}
