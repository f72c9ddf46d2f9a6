package shortestpath

import (
	"math"
	"time"

	"github.com/maatheusgois-dd/pathfind/graph"
)

// BidirectionalDijkstra computes the shortest path from source to target
// by growing two frontiers at once — forward from source and backward
// from target — and typically settles far fewer nodes than the
// single-source search on large graphs.
//
// Both frontiers scan outgoing adjacency lists, so the backward search is
// exact only when every edge has a reverse counterpart of equal weight,
// as produced by AddBidirectionalEdge. On an asymmetric digraph use
// Dijkstra instead.
//
// The search keeps a running best candidate: whenever either side gains
// a finite distance to a node the other side also knows, the combined
// total is compared against the best so far — at settle time and again at
// every relaxation. The first node both searches touch is not necessarily
// on the optimal path, so the loop only stops once the two lower bounds
// prove no improvement remains: muF + muB ≥ bestDistance, where each mu
// is the priority of that side's most recently settled node. Any
// unsettled v has distF[v] ≥ muF and distB[v] ≥ muB, so any path still
// undiscovered costs at least muF + muB.
//
// Preconditions and complexity match Dijkstra.
func BidirectionalDijkstra(g *graph.Graph, source, target graph.NodeID, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, source, target); err != nil {
		return Result{}, err
	}

	start := time.Now()
	if source == target {
		// The generic meeting logic does not reliably detect this case on
		// the first iteration; the trivial answer is the defined behavior.
		return trivialResult(source, start), nil
	}

	tr := newTrace(cfg.Instrument)
	forward := newFrontier(g, source)
	backward := newFrontier(g, target)

	best := math.Inf(1)
	meeting := graph.None

	// consider folds node into the best candidate whenever both sides
	// hold a finite distance to it. Called at settle time and after every
	// relaxation; both checks are required for correctness, the
	// settle-only variant can terminate with a suboptimal splice.
	consider := func(node graph.NodeID) {
		if total := forward.dist[node] + backward.dist[node]; total < best {
			best = total
			meeting = node
		}
	}

	for steps := 0; forward.queue.Len() > 0 || backward.queue.Len() > 0; steps++ {
		if steps%cancelCheckInterval == 0 {
			if err := cfg.Ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		// Termination bound: nothing left to discover can beat best.
		if forward.mu+backward.mu >= best {
			break
		}

		// Expand the side with the smaller lower bound to keep the two
		// regions balanced; ties favor forward. Load balancing only — any
		// order is correct under the bound above.
		side, opposite := forward, backward
		if forward.queue.Len() == 0 || (backward.queue.Len() > 0 && backward.mu < forward.mu) {
			side, opposite = backward, forward
		}

		node, ok := side.settleNext()
		if !ok {
			continue // only stale entries remained on that side
		}
		// A node both frontiers settle is recorded once, at first settle:
		// ExploredNodes is a set in sequence form.
		if !opposite.settled[node] {
			tr.settle(node)
		}
		consider(node)
		side.relax(node, tr, consider)
	}

	res := Result{Distance: math.Inf(1), Path: []graph.NodeID{}}
	if meeting != graph.None && !math.IsInf(best, 1) {
		res.Distance = best
		res.Path = splicePath(forward, backward, meeting)
	}
	tr.snapshot(&res)
	res.ExecutionTime = time.Since(start)

	return res, nil
}

// splicePath joins the two half-paths around the meeting node. The
// forward chain yields source → … → meeting; the backward chain's prev
// links point toward target, so walking them from the node after meeting
// appends meeting's successors through target without duplicating
// meeting itself.
func splicePath(forward, backward *frontier, meeting graph.NodeID) []graph.NodeID {
	path := forward.pathTo(meeting)
	for at := backward.prev[meeting]; at != graph.None; at = backward.prev[at] {
		path = append(path, at)
	}

	return path
}
