// Package traverse is the unified traversal engine: depth-first search
// (recursive and iterative) and breadth-first search over a core.Graph,
// all returning one shared Result shape.
//
// What
//
//   - Traverse(g, root, strategy): run DFSRecursive, DFSIterative or BFS.
//   - The traversal always covers the whole graph: the requested root's
//     tree is explored first, then every remaining undiscovered vertex
//     (in lexicographic order) starts a new tree of the forest.
//   - Result bundles the traversal tree (Parents), per-vertex costs
//     (Distances), visitation Order, per-tree Components, and — when
//     requested via WithCycleCheck — a cyclicity flag.
//
// Determinism
//
//	core.Neighbors returns neighbors sorted lexicographically and roots
//	are seeded in sorted order, so for a given graph and root every
//	strategy produces exactly the same Result run after run. DFSRecursive
//	and DFSIterative are required to produce identical Results; the
//	iterative walker mirrors the recursion with an explicit frame stack
//	so the two share every ordering and cycle decision.
//
// Distances
//
//   - BFS: hop count from the root of the vertex's tree.
//   - DFS on an unweighted graph: tree depth (equivalently, hop count
//     along the DFS tree).
//   - DFS on a weighted graph: edge-weight sum along the DFS tree.
//
// Cycle detection (WithCycleCheck)
//
//   - DFS, undirected: a back edge to a gray vertex other than the
//     immediate parent.
//   - DFS, directed: a back edge to any gray vertex (self-loops count).
//   - BFS, undirected: an already-seen neighbor other than the parent.
//   - BFS, directed: undefined — Traverse fails fast with
//     ErrCycleCheckUnsupported.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V log V + E)  (sorted seeding plus one visit per vertex/edge)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil                if g is nil.
//   - ErrVertexNotFound          if the requested root does not exist.
//   - ErrUnknownStrategy         for a strategy value outside the enum.
//   - ErrCycleCheckUnsupported   for WithCycleCheck with BFS on a directed graph.
//   - context.Canceled           if a WithCancelContext context is done.
package traverse
