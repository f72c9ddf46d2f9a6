package shortestpath

import (
	"math"

	"github.com/maatheusgois-dd/pathfind/graph"
	"github.com/maatheusgois-dd/pathfind/pqueue"
)

// frontier is one growing search region: tentative distances, predecessor
// links, the settled markers and the lazy priority queue feeding the next
// expansion. The unidirectional search runs one frontier; the
// bidirectional search runs two that never share mutable state.
//
// All storage is indexed by graph.NodeID. Boolean and slice arrays stand
// in for the set/map abstractions: O(1) membership, O(V) memory, no
// hashing on the hot path.
type frontier struct {
	g       *graph.Graph
	dist    []float64      // tentative distance from the frontier's origin, +Inf if untouched
	prev    []graph.NodeID // predecessor toward the origin, graph.None if unset
	settled []bool         // true once a node's distance is final
	queue   *pqueue.Queue[graph.NodeID, float64]
	mu      float64 // priority of the most recently settled node; monotonic lower bound
}

// newFrontier allocates per-call working state seeded at origin.
func newFrontier(g *graph.Graph, origin graph.NodeID) *frontier {
	n := g.NodeCount()
	dist := make([]float64, n)
	prev := make([]graph.NodeID, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Inf(1)
		prev[i] = graph.None
	}

	f := &frontier{
		g:       g,
		dist:    dist,
		prev:    prev,
		settled: make([]bool, n),
		queue:   pqueue.New[graph.NodeID, float64](n),
	}
	f.dist[origin] = 0
	f.queue.Push(origin, 0)

	return f
}

// settleNext pops queue entries until it finds one that is not a stale
// lazy-deletion duplicate, marks that node settled and advances mu.
// Returns false once the queue is exhausted.
func (f *frontier) settleNext() (graph.NodeID, bool) {
	for {
		node, priority, ok := f.queue.Pop()
		if !ok {
			return graph.None, false
		}
		if f.settled[node] {
			continue // stale entry superseded by a better relaxation
		}
		f.settled[node] = true
		f.mu = priority

		return node, true
	}
}

// relax scans every outgoing edge of node, records each on tr, and
// improves the neighbor's tentative distance where a shorter route
// through node exists. onEdge, when non-nil, runs after each scan with
// the edge's head; the bidirectional search uses it for cross-frontier
// candidate checks. Assumes dist[node] is final.
func (f *frontier) relax(node graph.NodeID, tr *trace, onEdge func(to graph.NodeID)) {
	edges := f.g.MustNeighbors(node)
	for i := range edges {
		to, weight := edges[i].To, edges[i].Weight
		tr.consider(node, to)

		if tentative := f.dist[node] + weight; tentative < f.dist[to] {
			f.dist[to] = tentative
			f.prev[to] = node
			f.queue.Push(to, tentative)
		}
		if onEdge != nil {
			onEdge(to)
		}
	}
}

// pathTo reconstructs origin → … → node by following prev backwards and
// reversing in place. Returns an empty slice if node was never reached.
func (f *frontier) pathTo(node graph.NodeID) []graph.NodeID {
	if math.IsInf(f.dist[node], 1) {
		return []graph.NodeID{}
	}

	path := make([]graph.NodeID, 0, 16)
	for at := node; at != graph.None; at = f.prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
