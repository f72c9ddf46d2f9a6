// Package graph defines the adjacency-list model, node identity and
// sentinel errors shared by every shortest-path search in
// github.com/maatheusgois-dd/pathfind.
package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNodeOutOfRange indicates an edge endpoint outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")
	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
	// ErrWeightNotFinite indicates a NaN or infinite edge weight.
	ErrWeightNotFinite = errors.New("graph: edge weight must be finite")
)

// NodeID addresses a node positionally. IDs are dense: the i-th call to
// AddNode returns NodeID(i), and every valid ID lies in [0, NodeCount).
type NodeID int

// None marks the absence of a node, e.g. a missing predecessor.
const None NodeID = -1

// Node carries per-node payload the searches never read: planar
// coordinates for generators and visual consumers.
type Node struct {
	X, Y float64
}

// Edge is one directed, weighted arc stored in its origin's adjacency
// list. Undirected links are modeled as two mirrored edges.
type Edge struct {
	To     NodeID
	Weight float64
}
