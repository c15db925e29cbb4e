package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing vertex
// is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge inserts the edge u→v with the given weight, auto-inserting
// missing endpoints. On an undirected graph both directions are registered
// atomically. If the edge already exists its weight is overwritten and the
// edge count does not change.
//
// Unweighted graphs accept only DefaultWeight; anything else returns
// ErrBadWeight before any mutation (fail fast).
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != DefaultWeight {
		return ErrBadWeight
	}

	g.vertices[u] = struct{}{}
	g.vertices[v] = struct{}{}

	if _, exists := g.adj[u][v]; !exists {
		g.edgeCount++
	}
	g.setArc(u, v, weight)
	if !g.directed {
		// Mirror for undirected adjacency; a self-loop is already in place.
		g.setArc(v, u, weight)
	}

	return nil
}

// setArc records the single arc u→v (and its reverse index when directed).
func (g *Graph) setArc(u, v string, weight int64) {
	if g.adj[u] == nil {
		g.adj[u] = make(map[string]int64)
	}
	g.adj[u][v] = weight

	if g.directed {
		if g.radj[v] == nil {
			g.radj[v] = make(map[string]int64)
		}
		g.radj[v][u] = weight
	}
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the edge u→v exists. On an undirected graph the
// orientation of the query does not matter.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight of edge u→v. It fails with ErrVertexNotFound
// if either endpoint is unknown and ErrEdgeNotFound if the edge is absent.
func (g *Graph) Weight(u, v string) (int64, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	w, ok := g.adj[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns the adjacency of id as (neighbor, weight) pairs sorted
// lexicographically by neighbor ID. On a directed graph only outgoing
// edges are reported.
//
// The sorted order is a contract: every traversal in this module visits
// neighbors in exactly this order, which makes results reproducible.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	out := make([]Neighbor, 0, len(g.adj[id]))
	for v, w := range g.adj[id] {
		out = append(out, Neighbor{ID: v, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the adjacent vertex IDs of id, sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids, nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of stored edges. An undirected edge counts once.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges returns every stored edge sorted by (From, To). On an undirected
// graph each edge is reported once with From ≤ To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, row := range g.adj {
		for v, w := range row {
			if !g.directed && u > v {
				continue // mirrored entry, reported from the other side
			}
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// OutDegree returns the number of edges leaving id. On an undirected graph
// this equals Degree.
func (g *Graph) OutDegree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.adj[id]), nil
}

// InDegree returns the number of edges entering id. On an undirected graph
// this equals Degree.
func (g *Graph) InDegree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	if !g.directed {
		return len(g.adj[id]), nil
	}

	return len(g.radj[id]), nil
}

// Degree returns the degree of id: the neighbor count on an undirected
// graph (a self-loop counts once), in-degree plus out-degree on a directed
// graph.
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	if !g.directed {
		return len(g.adj[id]), nil
	}

	return len(g.adj[id]) + len(g.radj[id]), nil
}

// Transpose returns a new graph with every directed edge reversed.
// For an undirected graph it is equivalent to Clone.
// Complexity: O(V + E).
func (g *Graph) Transpose() *Graph {
	t := g.emptyLike()
	for u, row := range g.adj {
		for v, w := range row {
			t.setArc(v, u, w)
			if !g.directed {
				t.setArc(u, v, w)
			}
		}
	}
	t.edgeCount = g.edgeCount

	return t
}

// Clone returns a deep copy of the graph. Mutating the copy never affects
// the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := g.emptyLike()
	for u, row := range g.adj {
		for v, w := range row {
			c.setArc(u, v, w)
		}
	}
	c.edgeCount = g.edgeCount

	return c
}

// emptyLike returns an empty graph with the same flags and vertex set.
func (g *Graph) emptyLike() *Graph {
	e := &Graph{
		directed: g.directed,
		weighted: g.weighted,
		vertices: make(map[string]struct{}, len(g.vertices)),
		adj:      make(map[string]map[string]int64, len(g.adj)),
	}
	if g.directed {
		e.radj = make(map[string]map[string]int64, len(g.radj))
	}
	for id := range g.vertices {
		e.vertices[id] = struct{}{}
	}

	return e
}
