package paths_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/paths"
)

func TestBellmanFord_NegativeEdgeNoCycle(t *testing.T) {
	// Reaching B through the negative arc C→B is cheaper than the direct
	// arc A→B.
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("C", "B", -1))

	res, err := paths.ShortestPaths(g, "A", paths.BellmanFord)
	require.NoError(t, err)
	require.False(t, res.HasNegativeCycle)
	require.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2}, res.Distances)
	require.Equal(t, map[string]string{"A": "", "B": "C", "C": "A"}, res.Parents)

	// Settle order is by distance, not discovery.
	require.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBellmanFord_NegativeCycleUndefinesAffected(t *testing.T) {
	// B→C→B loses weight on every lap; only A keeps a defined distance.
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", -3))
	require.NoError(t, g.AddEdge("C", "B", 1))

	res, err := paths.ShortestPaths(g, "A", paths.BellmanFord)
	require.NoError(t, err)
	require.True(t, res.HasNegativeCycle)

	require.Equal(t, map[string]int64{"A": 0}, res.Distances)
	require.Equal(t, map[string]string{"A": ""}, res.Parents)
	require.Equal(t, []string{"A"}, res.Order)

	// The component still names every reached vertex, undefined ones last.
	require.Equal(t, [][]string{{"A", "B", "C"}}, res.Components)
}

func TestBellmanFord_CycleTaintSpreadsForward(t *testing.T) {
	// D hangs off the negative cycle: its distance is undefined too, while
	// the upstream source stays intact.
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", -3))
	require.NoError(t, g.AddEdge("C", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 2))

	res, err := paths.ShortestPaths(g, "A", paths.BellmanFord)
	require.NoError(t, err)
	require.True(t, res.HasNegativeCycle)
	require.Equal(t, map[string]int64{"A": 0}, res.Distances)
	require.NotContains(t, res.Parents, "D")
}

func TestBellmanFord_UndirectedNegativeEdgeIsACycle(t *testing.T) {
	// An undirected negative edge mirrors into a two-arc negative loop.
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", -1))

	res, err := paths.ShortestPaths(g, "A", paths.BellmanFord)
	require.NoError(t, err)
	require.True(t, res.HasNegativeCycle)
	require.Empty(t, res.Distances)
	require.Empty(t, res.Order)
	require.Equal(t, [][]string{{"A", "B"}}, res.Components)
}

func TestBellmanFord_MultiComponentFreezesEarlierTrees(t *testing.T) {
	// The X tree's negative cycle must not disturb the finished A tree.
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("X", "Y", -3))
	require.NoError(t, g.AddEdge("Y", "X", 1))
	require.NoError(t, g.AddEdge("Y", "B", -100))

	res, err := paths.ShortestPaths(g, "A", paths.BellmanFord)
	require.NoError(t, err)
	require.True(t, res.HasNegativeCycle)

	require.Equal(t, int64(2), res.Distances["B"])
	require.Equal(t, "A", res.Parents["B"])
	require.NotContains(t, res.Distances, "X")
	require.NotContains(t, res.Distances, "Y")
	require.Equal(t, [][]string{{"A", "B"}, {"X", "Y"}}, res.Components)
}

func TestBellmanFord_UnweightedFallsBackToHops(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", core.DefaultWeight))
	require.NoError(t, g.AddEdge("B", "C", core.DefaultWeight))

	res, err := paths.ShortestPaths(g, "A", paths.BellmanFord)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2}, res.Distances)
}
