package shortestpath

import (
	"math"
	"time"

	"github.com/maatheusgois-dd/pathfind/graph"
)

// Arc is one (from, to) pair recorded when a search considered the edge,
// whether or not the relaxation improved anything.
type Arc struct {
	From, To graph.NodeID
}

// Result is the output contract of a single search invocation. It is
// created once per call, never mutated afterwards, and owned by the
// caller; the engine keeps no state between invocations.
//
// Distance is math.Inf(1) and Path is empty when target is unreachable.
// ExploredNodes lists settled nodes in settle order, each node at most
// once even when both bidirectional frontiers settle it; ExploredEdges lists
// every considered edge in visitation order — the feed for an animation
// consumer that replays the search. ExecutionTime is diagnostic only and
// never influences the computation.
type Result struct {
	Distance      float64
	Path          []graph.NodeID
	ExploredNodes []graph.NodeID
	ExploredEdges []Arc
	ExecutionTime time.Duration
}

// Reachable reports whether a path was found.
func (r Result) Reachable() bool {
	return !math.IsInf(r.Distance, 1)
}

// trace accumulates exploration instrumentation during a search. A
// disabled trace keeps the hot loops allocation-free.
type trace struct {
	enabled bool
	nodes   []graph.NodeID
	edges   []Arc
}

func newTrace(enabled bool) *trace {
	return &trace{enabled: enabled}
}

// settle records that a node's distance became final.
func (t *trace) settle(id graph.NodeID) {
	if t.enabled {
		t.nodes = append(t.nodes, id)
	}
}

// consider records an edge scan, improved or not.
func (t *trace) consider(from, to graph.NodeID) {
	if t.enabled {
		t.edges = append(t.edges, Arc{From: from, To: to})
	}
}

// snapshot moves the accumulated instrumentation into res.
func (t *trace) snapshot(res *Result) {
	res.ExploredNodes = t.nodes
	res.ExploredEdges = t.edges
}

// trivialResult is the defined source == target short-circuit: distance
// zero, single-node path, no exploration.
func trivialResult(source graph.NodeID, start time.Time) Result {
	return Result{
		Distance:      0,
		Path:          []graph.NodeID{source},
		ExecutionTime: time.Since(start),
	}
}

// validate runs the shared precondition checks for both searches.
func validate(g *graph.Graph, source, target graph.NodeID) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Contains(source) || !g.Contains(target) {
		return ErrNodeOutOfRange
	}

	return nil
}
