// Package plexus is your in-memory toolkit for building and analyzing
// graphs — one small core model, one shared result bundle, and a family
// of interchangeable algorithm strategies on top.
//
// 🚀 What is plexus?
//
//	A deterministic, zero-dependency library that brings together:
//		• Core primitives: directed/undirected, weighted/unweighted graphs
//		• Traversals: DFS (recursive & iterative twins), BFS — one Result for all
//		• Shortest paths: Dijkstra, Bellman-Ford (negative cycles reported), BFS hops
//		• Structure: connected components, SCC (Tarjan/Kosaraju), cycle detection
//		• Ordering: topological sort (DFS & Kahn)
//		• Importance: degree & eigenvector centrality
//		• Disjoint sets: weighted quick-union with path compression
//
// ✨ Why choose plexus?
//
//   - Deterministic by contract – sorted neighbor iteration, reproducible orders
//   - One Result bundle – parents, distances, orders and components share a shape,
//     so switching strategy never means rewriting callers
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors for every rejection, wrapped with context
//
// Everything is organized under six subpackages:
//
//	core/       — Graph, edges, degrees, transpose & clone
//	dsu/        — DisjointSet: union-find with path compression
//	traverse/   — DFS/BFS engine producing the shared Result
//	paths/      — Dijkstra, Bellman-Ford, BFS shortest paths
//	analysis/   — components, SCC, cycles, topological sort
//	centrality/ — degree & eigenvector scores
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: one component, one cycle, every vertex of degree two.
//
// Dive into the package docs for invariants, complexity notes and
// runnable examples.
//
//	go get github.com/aturian/plexus
package plexus
