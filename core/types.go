// Package core declares the Graph, Edge and Neighbor types, sentinel
// errors, and the NewGraph constructor with its functional options.
package core

import "errors"

// DefaultWeight is the weight assigned to every edge of an unweighted graph.
const DefaultWeight int64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight other than DefaultWeight was given
	// to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Edge is one stored edge, as reported by Graph.Edges.
//
// On a directed graph From→To is the edge's direction. On an undirected
// graph every edge is reported once with From ≤ To.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Neighbor pairs an adjacent vertex ID with the weight of the connecting edge.
type Neighbor struct {
	ID     string
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes every edge one-way (From→To).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows arbitrary int64 edge weights. Without it, AddEdge
// accepts only DefaultWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory graph data structure shared by every algorithm
// in this module.
//
// adj[u][v] holds the weight of edge u→v. On an undirected graph the
// adjacency is mirrored: adj[u][v] and adj[v][u] always carry the same
// weight, while the edge itself is counted once. radj is maintained for
// directed graphs only and mirrors adj in reverse for in-degree queries
// and transposition.
type Graph struct {
	directed bool
	weighted bool

	vertices  map[string]struct{}
	adj       map[string]map[string]int64
	radj      map[string]map[string]int64 // directed graphs only
	edgeCount int
}

// NewGraph creates an empty Graph. By default the graph is undirected
// and unweighted.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.radj = make(map[string]map[string]int64)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph accepts arbitrary edge weights.
func (g *Graph) Weighted() bool { return g.weighted }
