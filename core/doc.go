// Package core defines the central Graph type and the primitives for
// building and querying graphs: vertices, weighted edges, adjacency.
//
// What
//
//   - Graph: a set of vertices plus a set of edges, configured once at
//     construction as directed or undirected, weighted or unweighted.
//   - AddVertex / AddEdge mutators; AddEdge auto-inserts missing endpoints
//     and, on an undirected graph, registers both directions atomically.
//   - Neighbors, NeighborIDs, Vertices, Edges, Weight, Degree queries,
//     all with deterministic (lexicographically sorted) output order.
//   - Transpose and Clone for derived graphs.
//
// Why
//
//   - Every traversal and analysis package in this module reads a Graph
//     through this one interface; the deterministic neighbor order is what
//     makes DFS, BFS and Dijkstra reproducible run to run.
//
// Semantics
//
//   - Vertex IDs are non-empty strings; identity is the only attribute.
//   - Weights are int64. Unweighted graphs fix every weight to DefaultWeight (1).
//   - Self-loops are allowed and stored once.
//   - Adding an edge that already exists overwrites the stored weight;
//     parallel edges between the same ordered pair are not kept.
//
// Concurrency
//
//	A Graph is built once and treated as read-only by every algorithm.
//	Concurrent read-only use from multiple goroutines is safe; concurrent
//	mutation is not supported and is not guarded by locks.
//
// Errors
//
//   - ErrEmptyVertexID  - vertex ID is the empty string.
//   - ErrVertexNotFound - requested vertex does not exist.
//   - ErrEdgeNotFound   - requested edge does not exist.
//   - ErrBadWeight      - weight other than DefaultWeight on an unweighted graph.
package core
