// Package dsu implements the disjoint-set (union-find) data structure as
// a weighted quick-union forest with path compression.
//
// What
//
//   - New(elements...) builds a universe of singleton sets.
//   - Union(a, b) merges the sets containing a and b, attaching the
//     smaller tree under the larger one's root.
//   - Find(e) returns the set representative; Connected(a, b) compares two.
//   - Sets() snapshots the current partition.
//
// Why
//
//   - Component membership and cycle detection without any traversal:
//     union every edge of an undirected graph and two endpoints that are
//     already connected close a cycle.
//
// Invariant
//
//	Find returns the same representative for every element of a set, no
//	matter how the set was assembled. Path compression re-parents elements
//	during Find but never changes which root represents the set.
//
// Complexity
//
//   - Union/Find/Connected: near-constant amortized (inverse Ackermann).
//   - Memory: O(N).
package dsu
