// Package traverse defines the Strategy selector, functional options and
// the shared Result bundle produced by every traversal in this module.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrVertexNotFound is returned when the requested root is absent.
	ErrVertexNotFound = errors.New("traverse: root vertex not found")

	// ErrUnknownStrategy is returned for a Strategy outside the declared enum.
	ErrUnknownStrategy = errors.New("traverse: unknown strategy")

	// ErrCycleCheckUnsupported is returned when cycle detection is requested
	// for BFS on a directed graph, where level-order visitation cannot
	// distinguish back edges from cross edges.
	ErrCycleCheckUnsupported = errors.New("traverse: cycle detection is not supported for BFS on directed graphs")

	// ErrUnreachable is returned by Result.PathTo for a vertex the
	// traversal never discovered.
	ErrUnreachable = errors.New("traverse: vertex not reached")
)

// Strategy selects the traversal algorithm.
type Strategy int

const (
	// DFSRecursive explores depth-first using the call stack.
	DFSRecursive Strategy = iota

	// DFSIterative explores depth-first using an explicit frame stack and
	// produces a Result identical to DFSRecursive.
	DFSIterative

	// BFS explores breadth-first in strict level order.
	BFS
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case DFSRecursive:
		return "dfs-recursive"
	case DFSIterative:
		return "dfs-iterative"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a traversal.
type Options struct {
	// Ctx allows cancellation of long traversals; defaults to context.Background().
	Ctx context.Context

	// CycleCheck requests cycle detection. When set, Result.Cyclic is
	// defined (and Result.CycleChecked is true); when unset, Cyclic stays
	// false and carries no meaning.
	CycleCheck bool
}

// DefaultOptions returns Options with a background context and no cycle check.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCycleCheck enables cycle detection for this traversal.
func WithCycleCheck() Option {
	return func(o *Options) { o.CycleCheck = true }
}

// Result is the immutable output bundle shared by the traversal and
// shortest-path engines. All maps and slices are freshly allocated per
// call; no state is shared across calls.
type Result struct {
	// Parents encodes the traversal forest: each discovered vertex maps to
	// the vertex that first discovered it, and each tree root maps to "".
	Parents map[string]string

	// Distances maps each discovered vertex to its cost along the tree:
	// hop count for BFS, depth or edge-weight sum for DFS, minimum
	// edge-weight sum for Dijkstra and Bellman-Ford.
	Distances map[string]int64

	// Order is the visitation sequence: preorder for DFS, level order for
	// BFS, non-decreasing distance (settle) order for shortest paths.
	Order []string

	// Postorder is the DFS finish sequence; nil for other strategies.
	Postorder []string

	// Components partitions the discovered vertices into one group per
	// traversal tree, in discovery order. Members appear in the same order
	// as in Order.
	Components [][]string

	// Cyclic reports whether a cycle was observed. Only meaningful when
	// CycleChecked is true.
	Cyclic bool

	// CycleChecked records whether cycle detection was requested.
	CycleChecked bool

	// HasNegativeCycle is set only by Bellman-Ford when a reachable
	// negative-weight cycle exists. Distances and Parents entries affected
	// by such a cycle are removed rather than reported with bogus values.
	HasNegativeCycle bool
}

// PathTo reconstructs the path from the root of dest's tree to dest by
// walking Parents. Returns ErrUnreachable if dest was never discovered.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Parents[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}

	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev := r.Parents[cur]
		if prev == "" {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
