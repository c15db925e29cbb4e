package analysis

import (
	"fmt"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/dsu"
	"github.com/aturian/plexus/traverse"
)

// IsCyclic reports whether g contains at least one cycle.
//
// CycleTraversal works on directed and undirected graphs alike: directed
// graphs are cyclic when DFS finds a back edge to a gray vertex,
// undirected graphs when it revisits anything other than the immediate
// parent. CycleDisjointSet is undirected-only: it unions edges and
// declares a cycle as soon as an edge joins two already-connected
// endpoints. Self-loops count as cycles under both strategies.
func IsCyclic(g *core.Graph, strategy CycleStrategy) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	switch strategy {
	case CycleTraversal:
		res, err := traverse.Traverse(g, "", traverse.DFSRecursive, traverse.WithCycleCheck())
		if err != nil {
			return false, err
		}

		return res.Cyclic, nil

	case CycleDisjointSet:
		if g.Directed() {
			return false, fmt.Errorf("%w: %s cycle detection", ErrDirectedGraph, strategy)
		}

		return disjointSetCyclic(g)

	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// disjointSetCyclic unions every edge; an edge whose endpoints are
// already connected closes a cycle. Complexity: O(V + E·α(V)).
func disjointSetCyclic(g *core.Graph) (bool, error) {
	d, err := dsu.New(g.Vertices()...)
	if err != nil {
		return false, fmt.Errorf("analysis: %w", err)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			return true, nil
		}
		joined, uerr := d.Connected(e.From, e.To)
		if uerr != nil {
			return false, fmt.Errorf("analysis: %w", uerr)
		}
		if joined {
			return true, nil
		}
		if uerr = d.Union(e.From, e.To); uerr != nil {
			return false, fmt.Errorf("analysis: %w", uerr)
		}
	}

	return false, nil
}
