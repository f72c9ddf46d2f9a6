package graph

import (
	"fmt"
	"math"
)

// Graph is a directed, weighted adjacency-list graph with dense integer
// node IDs. Construction validates eagerly: out-of-range endpoints and
// negative or non-finite weights are rejected when the edge is added, so
// searches can assume a well-formed graph.
//
// A Graph is not safe for concurrent mutation. Once construction is done
// it may be read from any number of goroutines simultaneously; callers
// must not interleave AddNode/AddEdge with in-flight searches.
//
// Invariants maintained by construction:
//   - len(adjacency) == len(nodes) == NodeCount()
//   - every Edge.To is a valid NodeID
//   - every Edge.Weight is finite and ≥ 0
//   - each adjacency list preserves insertion order
type Graph struct {
	nodes     []Node
	adjacency [][]Edge
	edgeCount int
}

// New returns an empty graph.
func New() *Graph {
	return NewWithCapacity(0)
}

// NewWithCapacity returns an empty graph with storage preallocated for n
// nodes. Useful for generators that know the final size up front.
func NewWithCapacity(n int) *Graph {
	return &Graph{
		nodes:     make([]Node, 0, n),
		adjacency: make([][]Edge, 0, n),
	}
}

// AddNode appends node and returns its ID, which is always the previous
// NodeCount. Complexity: amortized O(1).
func (g *Graph) AddNode(node Node) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node)
	g.adjacency = append(g.adjacency, nil)

	return id
}

// AddEdge appends a directed edge from → to with the given weight to
// from's adjacency list.
//
// Fails fast with ErrNodeOutOfRange if either endpoint has not been added
// via AddNode, ErrWeightNotFinite for NaN/±Inf weights, and
// ErrNegativeWeight for weights below zero. Complexity: amortized O(1).
func (g *Graph) AddEdge(from, to NodeID, weight float64) error {
	if !g.contains(from) {
		return fmt.Errorf("%w: from=%d, nodes=%d", ErrNodeOutOfRange, from, len(g.nodes))
	}
	if !g.contains(to) {
		return fmt.Errorf("%w: to=%d, nodes=%d", ErrNodeOutOfRange, to, len(g.nodes))
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %d→%d weight=%v", ErrWeightNotFinite, from, to, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// AddBidirectionalEdge inserts the edge in both directions with equal
// weight, the caller-side convention for undirected links such as
// two-way roads.
func (g *Graph) AddBidirectionalEdge(from, to NodeID, weight float64) error {
	if err := g.AddEdge(from, to, weight); err != nil {
		return err
	}

	return g.AddEdge(to, from, weight)
}

// Neighbors returns the outgoing edges of id in insertion order. The
// returned slice is the graph's internal storage: callers must treat it
// as read-only. Returns ErrNodeOutOfRange for an invalid id.
func (g *Graph) Neighbors(id NodeID) ([]Edge, error) {
	if !g.contains(id) {
		return nil, fmt.Errorf("%w: id=%d, nodes=%d", ErrNodeOutOfRange, id, len(g.nodes))
	}

	return g.adjacency[id], nil
}

// MustNeighbors returns the outgoing edges of id without the bounds
// check, for callers that already hold a valid id (the search loops
// iterate settled nodes only). Panics on an invalid id.
func (g *Graph) MustNeighbors(id NodeID) []Edge {
	return g.adjacency[id]
}

// Node returns the payload stored for id.
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.contains(id) {
		return Node{}, fmt.Errorf("%w: id=%d, nodes=%d", ErrNodeOutOfRange, id, len(g.nodes))
	}

	return g.nodes[id], nil
}

// NodeCount reports the number of nodes added so far.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of directed edges added so far; a
// bidirectional edge counts twice.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Contains reports whether id is a valid node of g.
func (g *Graph) Contains(id NodeID) bool { return g.contains(id) }

func (g *Graph) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}
