// Package analysis declares the strategy enums and sentinel errors of the
// analysis layer.
package analysis

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("analysis: graph is nil")

	// ErrUnknownStrategy is returned for a strategy outside its enum.
	ErrUnknownStrategy = errors.New("analysis: unknown strategy")

	// ErrDirectedGraph is returned when an undirected-only strategy is
	// requested on a directed graph.
	ErrDirectedGraph = errors.New("analysis: strategy requires an undirected graph")

	// ErrUndirectedGraph is returned when a directed-only operation is
	// requested on an undirected graph.
	ErrUndirectedGraph = errors.New("analysis: operation requires a directed graph")

	// ErrCycleDetected is returned by TopologicalSort on a cyclic graph.
	ErrCycleDetected = errors.New("analysis: cycle detected")
)

// ComponentStrategy selects the connected-component algorithm.
type ComponentStrategy int

const (
	// CCDFS discovers undirected components with depth-first traversal.
	CCDFS ComponentStrategy = iota

	// CCBFS discovers undirected components with breadth-first traversal.
	CCBFS

	// CCDisjointSet discovers undirected components by unioning the edge
	// list, with no traversal at all.
	CCDisjointSet

	// CCTarjan discovers strongly connected components in one DFS pass
	// with low-links.
	CCTarjan

	// CCKosaraju discovers strongly connected components with two DFS
	// passes over the graph and its transpose.
	CCKosaraju
)

// String returns the canonical name of the strategy.
func (s ComponentStrategy) String() string {
	switch s {
	case CCDFS:
		return "dfs"
	case CCBFS:
		return "bfs"
	case CCDisjointSet:
		return "disjoint-set"
	case CCTarjan:
		return "tarjan"
	case CCKosaraju:
		return "kosaraju"
	default:
		return fmt.Sprintf("component-strategy(%d)", int(s))
	}
}

// CycleStrategy selects the cycle-detection algorithm.
type CycleStrategy int

const (
	// CycleTraversal detects cycles via DFS back edges; works on directed
	// and undirected graphs.
	CycleTraversal CycleStrategy = iota

	// CycleDisjointSet detects cycles by unioning the edge list: an edge
	// whose endpoints are already connected closes a cycle. Undirected only.
	CycleDisjointSet
)

// String returns the canonical name of the strategy.
func (s CycleStrategy) String() string {
	switch s {
	case CycleTraversal:
		return "traversal"
	case CycleDisjointSet:
		return "disjoint-set"
	default:
		return fmt.Sprintf("cycle-strategy(%d)", int(s))
	}
}

// TopoStrategy selects the topological-sort algorithm.
type TopoStrategy int

const (
	// TopoDFS sorts by reversing the DFS postorder.
	TopoDFS TopoStrategy = iota

	// TopoKahn sorts by repeatedly removing zero-in-degree vertices.
	TopoKahn
)

// String returns the canonical name of the strategy.
func (s TopoStrategy) String() string {
	switch s {
	case TopoDFS:
		return "dfs"
	case TopoKahn:
		return "kahn"
	default:
		return fmt.Sprintf("topo-strategy(%d)", int(s))
	}
}
