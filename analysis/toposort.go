package analysis

import (
	"fmt"
	"sort"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/traverse"
)

// TopologicalSort orders the vertices of a directed acyclic graph so
// that every edge points from an earlier vertex to a later one.
//
// TopoDFS reverses the DFS postorder; TopoKahn repeatedly removes
// zero-in-degree vertices. Both fail with ErrCycleDetected on a cyclic
// graph and with ErrUndirectedGraph when g is undirected. Kahn seeds
// and drains in sorted vertex order, so its output is the unique
// lexicographically-smallest valid ordering; the DFS ordering is
// deterministic but generally different.
func TopologicalSort(g *core.Graph, strategy TopoStrategy) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: topological sort", ErrUndirectedGraph)
	}

	switch strategy {
	case TopoDFS:
		return topoDFS(g)
	case TopoKahn:
		return topoKahn(g)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// topoDFS runs a full DFS with cycle checking and reverses the
// postorder. Complexity: O(V + E).
func topoDFS(g *core.Graph) ([]string, error) {
	res, err := traverse.Traverse(g, "", traverse.DFSIterative, traverse.WithCycleCheck())
	if err != nil {
		return nil, err
	}
	if res.Cyclic {
		return nil, fmt.Errorf("%w: topological sort", ErrCycleDetected)
	}

	order := make([]string, len(res.Postorder))
	for i, v := range res.Postorder {
		order[len(order)-1-i] = v
	}

	return order, nil
}

// topoKahn peels off zero-in-degree vertices, lowest ID first.
// Complexity: O(V + E) relaxations plus sorted-frontier maintenance.
func topoKahn(g *core.Graph) ([]string, error) {
	indeg := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		d, err := g.InDegree(v)
		if err != nil {
			return nil, err
		}
		indeg[v] = d
	}

	// frontier stays sorted; insertions keep it that way.
	var frontier []string
	for _, v := range g.Vertices() {
		if indeg[v] == 0 {
			frontier = append(frontier, v)
		}
	}

	order := make([]string, 0, len(indeg))
	for len(frontier) > 0 {
		u := frontier[0]
		frontier = frontier[1:]
		order = append(order, u)

		nbs, nerr := g.NeighborIDs(u)
		if nerr != nil {
			return nil, nerr
		}
		for _, w := range nbs {
			indeg[w]--
			if indeg[w] == 0 {
				i := sort.SearchStrings(frontier, w)
				frontier = append(frontier, "")
				copy(frontier[i+1:], frontier[i:])
				frontier[i] = w
			}
		}
	}

	// Vertices left with positive in-degree sit on a cycle.
	if len(order) < g.VertexCount() {
		return nil, fmt.Errorf("%w: topological sort", ErrCycleDetected)
	}

	return order, nil
}
