package shortestpath

import (
	"time"

	"github.com/maatheusgois-dd/pathfind/graph"
)

// cancelCheckInterval bounds how many expansions may pass between
// context polls.
const cancelCheckInterval = 64

// Dijkstra computes the shortest path from source to target with the
// classic single-source search, stopping as soon as target settles: once
// a node is extracted at minimum remaining priority with all weights
// non-negative, its distance is final, so no shorter completion exists.
//
// Preconditions: g non-nil (ErrNilGraph), source and target valid IDs
// (ErrNodeOutOfRange). Weight validity is guaranteed by graph
// construction. source == target short-circuits to a zero-length path
// without touching the queue.
//
// Complexity: O((V + E) log V) time, O(V + E) space under lazy deletion.
func Dijkstra(g *graph.Graph, source, target graph.NodeID, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, source, target); err != nil {
		return Result{}, err
	}

	start := time.Now()
	if source == target {
		return trivialResult(source, start), nil
	}

	tr := newTrace(cfg.Instrument)
	f := newFrontier(g, source)

	for steps := 0; ; steps++ {
		if steps%cancelCheckInterval == 0 {
			if err := cfg.Ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		node, ok := f.settleNext()
		if !ok {
			break // queue drained: target unreachable
		}
		tr.settle(node)
		if node == target {
			break
		}
		f.relax(node, tr, nil)
	}

	res := Result{
		Distance: f.dist[target],
		Path:     f.pathTo(target),
	}
	tr.snapshot(&res)
	res.ExecutionTime = time.Since(start)

	return res, nil
}
