package traverse_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/traverse"
)

// buildForest returns an undirected graph with two components:
// {A,B,C,D} (A-B, A-C, B-D) and {X,Y} (X-Y).
func buildForest(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"X", "Y"}} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], core.DefaultWeight))
	}

	return g
}

func TestTraverse_Validation(t *testing.T) {
	g := buildForest(t)

	_, err := traverse.Traverse(nil, "A", traverse.BFS)
	require.ErrorIs(t, err, traverse.ErrGraphNil)

	_, err = traverse.Traverse(g, "nope", traverse.BFS)
	require.ErrorIs(t, err, traverse.ErrVertexNotFound)

	_, err = traverse.Traverse(g, "A", traverse.Strategy(42))
	require.ErrorIs(t, err, traverse.ErrUnknownStrategy)
}

func TestTraverse_CoversAllComponents(t *testing.T) {
	g := buildForest(t)

	for _, s := range []traverse.Strategy{traverse.DFSRecursive, traverse.DFSIterative, traverse.BFS} {
		res, err := traverse.Traverse(g, "A", s)
		require.NoError(t, err, s.String())

		require.Len(t, res.Order, 6, s.String())
		require.Equal(t, [][]string{{"A", "B", "C", "D"}, {"X", "Y"}}, componentSets(res), s.String())

		// Tree roots carry an empty parent.
		require.Equal(t, "", res.Parents["A"], s.String())
		require.Equal(t, "", res.Parents["X"], s.String())
	}
}

// componentSets reorders component members so DFS and BFS results compare
// equal regardless of visitation order.
func componentSets(res *traverse.Result) [][]string {
	out := make([][]string, len(res.Components))
	for i, cc := range res.Components {
		members := append([]string(nil), cc...)
		sort.Strings(members)
		out[i] = members
	}

	return out
}

func TestTraverse_RootStartsFirstTree(t *testing.T) {
	g := buildForest(t)

	res, err := traverse.Traverse(g, "Y", traverse.BFS)
	require.NoError(t, err)

	// Y's tree is explored before the lexicographically earlier component.
	require.Equal(t, "Y", res.Order[0])
	require.Equal(t, []string{"Y", "X"}, res.Components[0])
}

func TestTraverse_EmptyRootMeansFullSweep(t *testing.T) {
	g := buildForest(t)

	res, err := traverse.Traverse(g, "", traverse.DFSIterative)
	require.NoError(t, err)
	require.Equal(t, "A", res.Order[0])
	require.Len(t, res.Components, 2)
}

func TestTraverse_PathTo(t *testing.T) {
	g := buildForest(t)

	res, err := traverse.Traverse(g, "A", traverse.BFS)
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)

	// X sits in another tree; its path starts at that tree's root.
	path, err = res.PathTo("Y")
	require.NoError(t, err)
	require.Equal(t, []string{"X", "Y"}, path)

	_, err = res.PathTo("nope")
	require.ErrorIs(t, err, traverse.ErrUnreachable)
}

func TestTraverse_ContextCancellation(t *testing.T) {
	g := buildForest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range []traverse.Strategy{traverse.DFSRecursive, traverse.DFSIterative, traverse.BFS} {
		_, err := traverse.Traverse(g, "A", s, traverse.WithCancelContext(ctx))
		require.ErrorIs(t, err, context.Canceled, s.String())
	}
}

func TestTraverse_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))

	res, err := traverse.Traverse(g, "solo", traverse.DFSRecursive)
	require.NoError(t, err)
	require.Equal(t, []string{"solo"}, res.Order)
	require.Equal(t, []string{"solo"}, res.Postorder)
	require.Equal(t, map[string]string{"solo": ""}, res.Parents)
	require.Equal(t, map[string]int64{"solo": 0}, res.Distances)
}

func TestTraverse_EmptyGraph(t *testing.T) {
	res, err := traverse.Traverse(core.NewGraph(), "", traverse.BFS)
	require.NoError(t, err)
	require.Empty(t, res.Order)
	require.Empty(t, res.Components)
}
