package analysis

import (
	"fmt"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/dsu"
	"github.com/aturian/plexus/traverse"
)

// ConnectedComponents partitions the vertices of g.
//
// CCDFS, CCBFS and CCDisjointSet compute the components of an undirected
// graph; CCTarjan and CCKosaraju compute the strongly connected
// components of a directed graph. A strategy applied to the wrong graph
// kind fails with ErrDirectedGraph or ErrUndirectedGraph.
//
// Traversal-backed partitions come back in discovery order; Tarjan,
// Kosaraju and the disjoint-set strategy report canonical partitions
// with sorted members.
func ConnectedComponents(g *core.Graph, strategy ComponentStrategy) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	switch strategy {
	case CCDFS, CCBFS:
		if g.Directed() {
			return nil, fmt.Errorf("%w: %s components", ErrDirectedGraph, strategy)
		}
		ts := traverse.DFSIterative
		if strategy == CCBFS {
			ts = traverse.BFS
		}
		res, err := traverse.Traverse(g, "", ts)
		if err != nil {
			return nil, err
		}

		return res.Components, nil

	case CCDisjointSet:
		if g.Directed() {
			return nil, fmt.Errorf("%w: %s components", ErrDirectedGraph, strategy)
		}

		return disjointSetComponents(g)

	case CCTarjan:
		if !g.Directed() {
			return nil, fmt.Errorf("%w: %s components", ErrUndirectedGraph, strategy)
		}

		return tarjanSCC(g)

	case CCKosaraju:
		if !g.Directed() {
			return nil, fmt.Errorf("%w: %s components", ErrUndirectedGraph, strategy)
		}

		return kosarajuSCC(g)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// disjointSetComponents unions every edge and snapshots the partition.
// Complexity: O(V + E·α(V)).
func disjointSetComponents(g *core.Graph) ([][]string, error) {
	d, err := dsu.New(g.Vertices()...)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	for _, e := range g.Edges() {
		if err = d.Union(e.From, e.To); err != nil {
			return nil, fmt.Errorf("analysis: %w", err)
		}
	}

	return d.Sets(), nil
}

// IsConnected reports whether an undirected graph consists of exactly one
// component. The empty graph is not considered connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, fmt.Errorf("%w: IsConnected", ErrDirectedGraph)
	}

	ccs, err := ConnectedComponents(g, CCDFS)
	if err != nil {
		return false, err
	}

	return len(ccs) == 1, nil
}

// IsStronglyConnected reports whether a directed graph consists of
// exactly one strongly connected component.
func IsStronglyConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, fmt.Errorf("%w: IsStronglyConnected", ErrUndirectedGraph)
	}

	sccs, err := ConnectedComponents(g, CCTarjan)
	if err != nil {
		return false, err
	}

	return len(sccs) == 1, nil
}
