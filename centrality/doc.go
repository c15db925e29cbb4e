// Package centrality scores vertices by structural importance.
//
// What:
//
//   - Degree centrality: how many edges touch a vertex, split into
//     incoming and outgoing counts on directed graphs, optionally
//     normalized by the maximum possible degree.
//   - Eigenvector centrality: the power method on the weighted adjacency
//     structure, so a vertex scores high when its neighbors score high.
//
// Why:
//
// Degree answers "who is busiest" in one pass over the graph;
// eigenvector answers "who is connected to the well-connected" and is
// the natural next step when raw degree is too crude.
//
// Complexity:
//
//   - Degree: O(V) with the adjacency counters maintained by core.
//   - Eigenvector: O(maxIterations · (V + E)).
//
// Non-convergence of the power method is not an error: Eigenvector
// returns the last iterate with Converged == false and leaves the
// judgement to the caller.
package centrality
