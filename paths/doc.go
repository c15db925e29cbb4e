// Package paths is the shortest-path engine: Dijkstra, Bellman-Ford and
// unweighted BFS over a core.Graph, all returning the shared
// traverse.Result bundle.
//
// What
//
//   - ShortestPaths(g, source, strategy): single entry point with a
//     Strategy selector, mirroring traverse.Traverse.
//   - Dijkstra: non-negative weights, min-heap relaxation, Order is the
//     settle (non-decreasing distance) sequence. Negative weights fail
//     fast with ErrNegativeWeight before any traversal begins.
//   - BellmanFord: arbitrary weights, |V|-1 relaxation rounds per tree; a
//     reachable negative-weight cycle sets Result.HasNegativeCycle and
//     removes the affected Distances/Parents entries instead of reporting
//     values that are not well defined. A negative cycle is a documented
//     result state, never an error.
//   - BFS: hop-count shortest paths; rejects weighted graphs with
//     ErrWeightedGraph.
//
// Components
//
//	Like the traversal engine, every strategy keeps going after the
//	source's tree is exhausted: the lexicographically first unvisited
//	vertex seeds the next tree, so Result.Components partitions the whole
//	graph. Vertices settled by an earlier tree are frozen; a later tree
//	never relaxes into them.
//
// Determinism
//
//	Dijkstra breaks equal-distance ties by heap insertion order using a
//	monotone sequence number, and a vertex's parent is only replaced by a
//	strictly shorter path, so the shortest-path tree is stable for a given
//	graph and source.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Dijkstra:    O((V + E) log V) time, O(V + E) memory (lazy decrease-key).
//   - BellmanFord: O(V · E) time, O(V + E) memory — the cost of generality.
//   - BFS:         O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil, ErrVertexNotFound, ErrUnknownStrategy — input validation.
//   - ErrNegativeWeight — Dijkstra on a graph with a negative edge.
//   - ErrWeightedGraph  — BFS strategy on a weighted graph.
package paths
