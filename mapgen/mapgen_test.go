package mapgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maatheusgois-dd/pathfind/graph"
	"github.com/maatheusgois-dd/pathfind/mapgen"
)

func TestGenerate_Validation(t *testing.T) {
	base := mapgen.DefaultOptions()

	bad := base
	bad.Rows = 0
	_, err := mapgen.Generate(bad)
	require.ErrorIs(t, err, mapgen.ErrBadDimensions)

	bad = base
	bad.Spacing = 0
	_, err = mapgen.Generate(bad)
	require.ErrorIs(t, err, mapgen.ErrBadSpacing)

	bad = base
	bad.Jitter = -1
	_, err = mapgen.Generate(bad)
	require.ErrorIs(t, err, mapgen.ErrBadJitter)
}

func TestGenerate_Counts(t *testing.T) {
	opts := mapgen.DefaultOptions()
	opts.Rows, opts.Cols = 5, 7

	g, err := mapgen.Generate(opts)
	require.NoError(t, err)
	require.Equal(t, 35, g.NodeCount())
	// Conn4 undirected links: rows*(cols-1) horizontal + (rows-1)*cols
	// vertical, two directed edges each.
	require.Equal(t, 2*(5*6+4*7), g.EdgeCount())

	opts.Connectivity = mapgen.Conn8
	g, err = mapgen.Generate(opts)
	require.NoError(t, err)
	// Conn8 adds 2*(rows-1)*(cols-1) diagonal links.
	require.Equal(t, 2*(5*6+4*7+2*4*6), g.EdgeCount())
}

func TestGenerate_DeterministicForFixedSeed(t *testing.T) {
	opts := mapgen.DefaultOptions()
	opts.Seed = 99

	g1, err := mapgen.Generate(opts)
	require.NoError(t, err)
	g2, err := mapgen.Generate(opts)
	require.NoError(t, err)

	require.Equal(t, g1.NodeCount(), g2.NodeCount())
	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	for id := 0; id < g1.NodeCount(); id++ {
		n1, _ := g1.Node(graph.NodeID(id))
		n2, _ := g2.Node(graph.NodeID(id))
		require.Equal(t, n1, n2, "node %d", id)

		e1, _ := g1.Neighbors(graph.NodeID(id))
		e2, _ := g2.Neighbors(graph.NodeID(id))
		require.Equal(t, e1, e2, "adjacency %d", id)
	}
}

func TestGenerate_WeightsArePositiveDistances(t *testing.T) {
	opts := mapgen.DefaultOptions()
	opts.Rows, opts.Cols = 4, 4
	opts.Jitter = 2 // well below Spacing/2, nodes cannot coincide

	g, err := mapgen.Generate(opts)
	require.NoError(t, err)

	for id := 0; id < g.NodeCount(); id++ {
		edges, _ := g.Neighbors(graph.NodeID(id))
		for _, e := range edges {
			require.Greater(t, e.Weight, 0.0)
		}
	}
}

func TestGenerate_SingleNode(t *testing.T) {
	opts := mapgen.DefaultOptions()
	opts.Rows, opts.Cols = 1, 1

	g, err := mapgen.Generate(opts)
	require.NoError(t, err)
	require.Equal(t, 1, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}
