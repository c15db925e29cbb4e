package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aturian/plexus/analysis"
	"github.com/aturian/plexus/core"
)

// undirected: {A,B,C} triangle, {D,E} edge, {F} isolated.
func buildThreeComponents(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"D", "E"}} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], core.DefaultWeight))
	}
	require.NoError(t, g.AddVertex("F"))

	return g
}

// directed: SCCs {A,B,C}, {D,E}, {F}.
func buildThreeSCCs(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected())
	for _, pair := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"C", "D"},
		{"D", "E"}, {"E", "D"},
		{"E", "F"},
	} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], core.DefaultWeight))
	}

	return g
}

func TestConnectedComponents_UndirectedStrategiesAgree(t *testing.T) {
	g := buildThreeComponents(t)
	want := [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}

	for _, s := range []analysis.ComponentStrategy{analysis.CCDFS, analysis.CCBFS, analysis.CCDisjointSet} {
		ccs, err := analysis.ConnectedComponents(g, s)
		require.NoError(t, err, s.String())
		require.Equal(t, want, ccs, s.String())
	}
}

func TestConnectedComponents_SCCStrategiesAgree(t *testing.T) {
	g := buildThreeSCCs(t)
	want := [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}

	for _, s := range []analysis.ComponentStrategy{analysis.CCTarjan, analysis.CCKosaraju} {
		sccs, err := analysis.ConnectedComponents(g, s)
		require.NoError(t, err, s.String())
		require.Equal(t, want, sccs, s.String())
	}
}

func TestConnectedComponents_DirectednessGuards(t *testing.T) {
	directed := core.NewGraph(core.WithDirected())
	undirected := core.NewGraph()

	for _, s := range []analysis.ComponentStrategy{analysis.CCDFS, analysis.CCBFS, analysis.CCDisjointSet} {
		_, err := analysis.ConnectedComponents(directed, s)
		require.ErrorIs(t, err, analysis.ErrDirectedGraph, s.String())
	}
	for _, s := range []analysis.ComponentStrategy{analysis.CCTarjan, analysis.CCKosaraju} {
		_, err := analysis.ConnectedComponents(undirected, s)
		require.ErrorIs(t, err, analysis.ErrUndirectedGraph, s.String())
	}
}

func TestConnectedComponents_NilAndUnknown(t *testing.T) {
	_, err := analysis.ConnectedComponents(nil, analysis.CCDFS)
	require.ErrorIs(t, err, analysis.ErrGraphNil)

	_, err = analysis.ConnectedComponents(core.NewGraph(), analysis.ComponentStrategy(99))
	require.ErrorIs(t, err, analysis.ErrUnknownStrategy)
}

func TestIsConnected(t *testing.T) {
	g := buildThreeComponents(t)
	ok, err := analysis.IsConnected(g)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, g.AddEdge("C", "D", core.DefaultWeight))
	require.NoError(t, g.AddEdge("E", "F", core.DefaultWeight))
	ok, err = analysis.IsConnected(g)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = analysis.IsConnected(core.NewGraph(core.WithDirected()))
	require.ErrorIs(t, err, analysis.ErrDirectedGraph)
}

func TestIsStronglyConnected(t *testing.T) {
	g := buildThreeSCCs(t)
	ok, err := analysis.IsStronglyConnected(g)
	require.NoError(t, err)
	require.False(t, ok)

	// Close the loop F -> A and the whole graph becomes one SCC.
	require.NoError(t, g.AddEdge("F", "A", core.DefaultWeight))
	ok, err = analysis.IsStronglyConnected(g)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = analysis.IsStronglyConnected(core.NewGraph())
	require.ErrorIs(t, err, analysis.ErrUndirectedGraph)
}

func TestIsCyclic_Directed(t *testing.T) {
	dag := core.NewGraph(core.WithDirected())
	require.NoError(t, dag.AddEdge("A", "B", core.DefaultWeight))
	require.NoError(t, dag.AddEdge("B", "C", core.DefaultWeight))
	require.NoError(t, dag.AddEdge("A", "C", core.DefaultWeight))

	cyclic, err := analysis.IsCyclic(dag, analysis.CycleTraversal)
	require.NoError(t, err)
	require.False(t, cyclic)

	require.NoError(t, dag.AddEdge("C", "A", core.DefaultWeight))
	cyclic, err = analysis.IsCyclic(dag, analysis.CycleTraversal)
	require.NoError(t, err)
	require.True(t, cyclic)

	_, err = analysis.IsCyclic(dag, analysis.CycleDisjointSet)
	require.ErrorIs(t, err, analysis.ErrDirectedGraph)
}

func TestIsCyclic_Undirected(t *testing.T) {
	tree := core.NewGraph()
	require.NoError(t, tree.AddEdge("A", "B", core.DefaultWeight))
	require.NoError(t, tree.AddEdge("B", "C", core.DefaultWeight))
	require.NoError(t, tree.AddEdge("B", "D", core.DefaultWeight))

	for _, s := range []analysis.CycleStrategy{analysis.CycleTraversal, analysis.CycleDisjointSet} {
		cyclic, err := analysis.IsCyclic(tree, s)
		require.NoError(t, err, s.String())
		require.False(t, cyclic, s.String())
	}

	require.NoError(t, tree.AddEdge("C", "D", core.DefaultWeight))
	for _, s := range []analysis.CycleStrategy{analysis.CycleTraversal, analysis.CycleDisjointSet} {
		cyclic, err := analysis.IsCyclic(tree, s)
		require.NoError(t, err, s.String())
		require.True(t, cyclic, s.String())
	}
}

func TestIsCyclic_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", core.DefaultWeight))

	for _, s := range []analysis.CycleStrategy{analysis.CycleTraversal, analysis.CycleDisjointSet} {
		cyclic, err := analysis.IsCyclic(g, s)
		require.NoError(t, err, s.String())
		require.True(t, cyclic, s.String())
	}
}

func TestTopologicalSort_Kahn(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	for _, pair := range [][2]string{
		{"shirt", "tie"}, {"tie", "jacket"},
		{"pants", "shoes"}, {"pants", "belt"}, {"belt", "jacket"},
		{"socks", "shoes"},
	} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], core.DefaultWeight))
	}

	order, err := analysis.TopologicalSort(g, analysis.TopoKahn)
	require.NoError(t, err)
	// Kahn drains the frontier lowest-ID-first, so the order is unique.
	require.Equal(t, []string{"pants", "belt", "shirt", "socks", "shoes", "tie", "jacket"}, order)
}

func TestTopologicalSort_DFSRespectsEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	edges := [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"},
	}
	for _, pair := range edges {
		require.NoError(t, g.AddEdge(pair[0], pair[1], core.DefaultWeight))
	}

	order, err := analysis.TopologicalSort(g, analysis.TopoDFS)
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, pair := range edges {
		require.Less(t, pos[pair[0]], pos[pair[1]], "%s before %s", pair[0], pair[1])
	}
}

func TestTopologicalSort_CycleAndGuards(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", core.DefaultWeight))
	require.NoError(t, g.AddEdge("B", "A", core.DefaultWeight))

	for _, s := range []analysis.TopoStrategy{analysis.TopoDFS, analysis.TopoKahn} {
		_, err := analysis.TopologicalSort(g, s)
		require.ErrorIs(t, err, analysis.ErrCycleDetected, s.String())
	}

	_, err := analysis.TopologicalSort(core.NewGraph(), analysis.TopoKahn)
	require.ErrorIs(t, err, analysis.ErrUndirectedGraph)

	_, err = analysis.TopologicalSort(nil, analysis.TopoKahn)
	require.ErrorIs(t, err, analysis.ErrGraphNil)
}
