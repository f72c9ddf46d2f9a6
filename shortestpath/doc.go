// Package shortestpath implements point-to-point shortest-path search on
// weighted graphs with non-negative edge weights, in two interchangeable
// flavors: classic single-source Dijkstra and bidirectional Dijkstra.
//
// Overview:
//
//   - Dijkstra expands one frontier from the source and stops the moment
//     the target settles.
//   - BidirectionalDijkstra grows a forward frontier from the source and
//     a backward frontier from the target, tracks the best candidate path
//     through every node both sides have reached, and stops when the two
//     frontier lower bounds prove no better path remains. On large graphs
//     it settles far fewer nodes for the same answer.
//   - Both return a Result carrying the distance, the path, the settled
//     nodes in order, every considered edge in visitation order, and the
//     elapsed wall time — everything an external visualization needs to
//     replay the search. The engine itself keeps no state between calls.
//
// Key design points:
//
//   - Lazy deletion instead of decrease-key: an improved node is pushed
//     again and stale queue entries are skipped at extraction, keeping
//     the priority queue a plain binary heap.
//   - Settled/explored membership uses boolean arrays indexed by
//     graph.NodeID rather than hash sets.
//   - The two frontiers of the bidirectional search are two instances of
//     one frontier type with no shared mutable state.
//   - No hidden globals: all diagnostics travel in the Result.
//
// Determinism: for a fixed graph the explored sequences are reproducible
// across repeated calls. No canonical order is promised among entries
// with equal priority, so consumers must not depend on exact tie ordering
// across heap implementations.
//
// Errors (sentinel):
//
//   - ErrNilGraph         if the graph pointer is nil.
//   - ErrNodeOutOfRange   if source or target is not a valid node ID.
//   - ErrUnknownAlgorithm if FindPath is given an unknown selector.
//
// Complexity: O((V + E) log V) time and O(V + E) space per call.
package shortestpath
