// Package analysis builds the higher-level graph queries on top of the
// traversal engine and the disjoint-set structure: connected components,
// strongly connected components, cycle detection and topological sorting.
//
// What
//
//   - ConnectedComponents(g, strategy): undirected components via CCDFS,
//     CCBFS or CCDisjointSet; strongly connected components of a directed
//     graph via CCTarjan or CCKosaraju.
//   - IsConnected / IsStronglyConnected: single-component predicates.
//   - IsCyclic(g, strategy): CycleTraversal (DFS back edges, directed or
//     undirected) or CycleDisjointSet (union-find over the edge list,
//     undirected only). Both strategies agree on every undirected graph.
//   - TopologicalSort(g, strategy): TopoDFS (reverse postorder) or
//     TopoKahn (in-degree peeling); both emit a valid order for any DAG
//     and fail with ErrCycleDetected on a cyclic input.
//
// Strategy and directedness
//
//	Each strategy is defined for one graph kind. Asking for an undirected
//	algorithm on a directed graph fails with ErrDirectedGraph, and vice
//	versa with ErrUndirectedGraph — fail fast, never a silently wrong
//	partition.
//
// Determinism
//
//	Traversal-backed partitions inherit the engine's discovery order.
//	SCC and disjoint-set groups are reported in canonical form — members
//	sorted, groups ordered by first member — so Tarjan and Kosaraju
//	compare equal. The two topological strategies may emit different —
//	both valid — orders.
//
// Errors
//
//   - ErrGraphNil, ErrUnknownStrategy — input validation.
//   - ErrDirectedGraph / ErrUndirectedGraph — strategy vs. graph kind mismatch.
//   - ErrCycleDetected — topological sort on a cyclic graph.
package analysis
