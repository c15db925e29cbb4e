// Package paths defines the Strategy selector, options and sentinel
// errors of the shortest-path engine.
package paths

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for shortest-path execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrVertexNotFound is returned when the source vertex is absent.
	ErrVertexNotFound = errors.New("paths: source vertex not found")

	// ErrUnknownStrategy is returned for a Strategy outside the declared enum.
	ErrUnknownStrategy = errors.New("paths: unknown strategy")

	// ErrNegativeWeight is returned when Dijkstra is asked to run on a
	// graph containing a negative edge weight. Detected upfront, before
	// any traversal begins.
	ErrNegativeWeight = errors.New("paths: negative edge weight")

	// ErrWeightedGraph is returned when the BFS strategy is requested on a
	// weighted graph, whose hop counts are not shortest-path distances.
	ErrWeightedGraph = errors.New("paths: BFS strategy requires an unweighted graph")

	// ErrCycleCheckUnsupported is returned when cycle detection is
	// requested where settle-order visitation cannot define it: any
	// directed graph, or the Bellman-Ford strategy.
	ErrCycleCheckUnsupported = errors.New("paths: cycle detection is only supported for Dijkstra/BFS on undirected graphs")
)

// Strategy selects the shortest-path algorithm.
type Strategy int

const (
	// Dijkstra uses a min-heap and requires non-negative weights.
	Dijkstra Strategy = iota

	// BellmanFord relaxes every edge |V|-1 times and tolerates negative
	// weights, reporting reachable negative cycles.
	BellmanFord

	// BFS computes hop-count shortest paths on unweighted graphs.
	BFS
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellman-ford"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Option configures shortest-path behavior via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a shortest-path run.
type Options struct {
	// Ctx allows cancellation of long runs; defaults to context.Background().
	Ctx context.Context

	// CycleCheck requests the undirected cycle flag, populated with the
	// same visitation semantics as the traversal engine. Supported for
	// Dijkstra and BFS on undirected graphs only.
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

// WithCycleCheck enables the undirected cycle flag for this run.
func WithCycleCheck() Option {
	return func(o *Options) { o.CycleCheck = true }
}
