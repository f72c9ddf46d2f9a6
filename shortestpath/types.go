// Package shortestpath types: sentinel errors, functional options and
// the named-choice algorithm selector.
package shortestpath

import (
	"context"
	"errors"
	"fmt"

	"github.com/maatheusgois-dd/pathfind/graph"
)

// Sentinel errors returned by the searches.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrNodeOutOfRange indicates a source or target outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("shortestpath: source or target out of range")

	// ErrUnknownAlgorithm indicates an Algorithm value FindPath does not know.
	ErrUnknownAlgorithm = errors.New("shortestpath: unknown algorithm")
)

// Algorithm names one of the interchangeable search implementations, so
// an external selector (a UI dropdown, a CLI flag) can offer both
// without touching either implementation.
type Algorithm int

const (
	// AlgoDijkstra is the single-source search with early target exit.
	AlgoDijkstra Algorithm = iota
	// AlgoBidirectional runs coupled forward and backward searches.
	AlgoBidirectional
)

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoDijkstra:
		return "Dijkstra"
	case AlgoBidirectional:
		return "Bidirectional Dijkstra"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// FindPath dispatches to the implementation named by algo.
func FindPath(algo Algorithm, g *graph.Graph, source, target graph.NodeID, opts ...Option) (Result, error) {
	switch algo {
	case AlgoDijkstra:
		return Dijkstra(g, source, target, opts...)
	case AlgoBidirectional:
		return BidirectionalDijkstra(g, source, target, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// Options holds the tunable behavior shared by both searches.
type Options struct {
	// Ctx allows cooperative cancellation: the main loop polls it
	// periodically and aborts with the context's error.
	Ctx context.Context

	// Instrument controls whether ExploredNodes/ExploredEdges are
	// recorded. Disabling it does not change the returned distance or
	// path; it only skips the bookkeeping.
	Instrument bool
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: background context,
// instrumentation enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Instrument: true,
	}
}

// WithContext sets a context for cancellation and deadlines. The search
// checks it between expansions, so cancellation latency is bounded by a
// handful of loop iterations, not by total search size.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithoutInstrumentation skips recording of explored nodes and edges,
// for callers that only want the path (benchmarks, batch matrices).
func WithoutInstrumentation() Option {
	return func(o *Options) {
		o.Instrument = false
	}
}
