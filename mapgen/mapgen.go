// Package mapgen generates random road-map-like graphs for the
// shortest-path engine: a rectangular grid of nodes, each jittered away
// from its lattice point by a seeded RNG, linked by bidirectional edges
// weighted with the Euclidean distance between the jittered endpoints.
//
// The generator is a construction-side collaborator of the engine, not
// part of it — the searches only ever see the resulting *graph.Graph.
// Output is fully deterministic for a fixed Options value, which makes
// the package suitable for reproducible benchmarks, examples and
// property tests.
//
// Determinism:
//   - Nodes are emitted in row-major order, so node (r, c) has
//     ID r*Cols + c.
//   - For each node, edges toward already-emitted rows/columns are added
//     in a fixed offset order, so adjacency insertion order is stable.
package mapgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/maatheusgois-dd/pathfind/graph"
)

// Generate builds a jittered-grid map per opts. Validation fails fast
// with the package's sentinel errors; a valid Options never produces an
// edge the graph layer would reject, since Euclidean distances between
// finite points are finite and non-negative.
//
// Complexity: O(Rows×Cols) nodes and O(Rows×Cols) undirected edges.
func Generate(opts Options) (*graph.Graph, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g := graph.NewWithCapacity(opts.Rows * opts.Cols)

	// jitter draws a symmetric offset in [-Jitter, +Jitter).
	jitter := func() float64 {
		if opts.Jitter == 0 {
			return 0
		}

		return (rng.Float64()*2 - 1) * opts.Jitter
	}

	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols; c++ {
			g.AddNode(graph.Node{
				X: float64(c)*opts.Spacing + jitter(),
				Y: float64(r)*opts.Spacing + jitter(),
			})
		}
	}

	// Link each node to its west and north neighbors (plus the two upper
	// diagonals under Conn8); every undirected pair is visited exactly
	// once, in row-major order.
	offsets := [][2]int{{0, -1}, {-1, 0}}
	if opts.Connectivity == Conn8 {
		offsets = append(offsets, [2]int{-1, -1}, [2]int{-1, 1})
	}

	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols; c++ {
			from := graph.NodeID(r*opts.Cols + c)
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= opts.Rows || nc < 0 || nc >= opts.Cols {
					continue
				}
				to := graph.NodeID(nr*opts.Cols + nc)
				if err := g.AddBidirectionalEdge(from, to, euclidean(g, from, to)); err != nil {
					// Unreachable for validated options; surface it anyway.
					return nil, fmt.Errorf("mapgen: linking %d↔%d: %w", from, to, err)
				}
			}
		}
	}

	return g, nil
}

// euclidean measures the straight-line distance between two nodes.
func euclidean(g *graph.Graph, a, b graph.NodeID) float64 {
	na, _ := g.Node(a)
	nb, _ := g.Node(b)

	return math.Hypot(na.X-nb.X, na.Y-nb.Y)
}
