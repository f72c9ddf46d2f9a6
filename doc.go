// Package pathfind is a shortest-path computation engine for weighted
// graphs, built to feed visual, step-by-step replays of the search.
//
// Two interchangeable algorithms answer the same question — the optimal
// route between two nodes — and return the same Result shape:
//
//	shortestpath.Dijkstra              single frontier, early target exit
//	shortestpath.BidirectionalDijkstra two coupled frontiers, fewer expansions
//
// Beyond the distance and the path, every call reports the nodes it
// settled and the edges it considered, in visitation order, plus the
// elapsed wall time: enough for an external visualization layer to
// animate the search without the engine knowing anything about display.
// Each invocation is a pure, stateless computation over the graph as
// given; nothing is cached or persisted between calls.
//
// Package layout:
//
//	graph/        — adjacency-list model with dense integer node IDs and
//	                fail-fast construction validation
//	pqueue/       — generic binary min-heap used as the frontier queue
//	                (lazy deletion, no decrease-key)
//	shortestpath/ — the two searches, the Result contract and the
//	                named-choice selector
//	mapgen/       — deterministic jittered-grid map generator with
//	                Euclidean edge weights, for tests, benchmarks and demos
//	cmd/pathbench — demo CLI comparing both algorithms on random maps
//
// Quick start:
//
//	g := graph.New()
//	a := g.AddNode(graph.Node{X: 0, Y: 0})
//	b := g.AddNode(graph.Node{X: 3, Y: 4})
//	_ = g.AddBidirectionalEdge(a, b, 5)
//
//	res, err := shortestpath.Dijkstra(g, a, b)
//	// res.Distance == 5, res.Path == [a b]
package pathfind
