// Package paths implements the ShortestPaths entry point and shared
// validation; each strategy lives in its own file.
package paths

import (
	"fmt"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/traverse"
)

// ShortestPaths computes shortest-path distances from source over g using
// the selected strategy, returning the shared traverse.Result bundle.
//
// The source's tree is computed first; every vertex left unvisited then
// seeds a new tree, lexicographically first vertex next, so Components
// partitions the whole graph exactly like the traversal engine.
//
// Validation is fail-fast and happens before any relaxation: nil graph,
// unknown source, unknown strategy, unsupported cycle check, negative
// weights (Dijkstra) and weighted graphs (BFS) are all rejected upfront.
func ShortestPaths(g *core.Graph, source string, strategy Strategy, opts ...Option) (*traverse.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if strategy != Dijkstra && strategy != BellmanFord && strategy != BFS {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	if o.CycleCheck && (g.Directed() || strategy == BellmanFord) {
		return nil, ErrCycleCheckUnsupported
	}

	switch strategy {
	case Dijkstra:
		return dijkstra(g, source, o)
	case BellmanFord:
		return bellmanFord(g, source, o)
	default: // BFS
		if g.Weighted() {
			return nil, ErrWeightedGraph
		}

		topts := []traverse.Option{traverse.WithCancelContext(o.Ctx)}
		if o.CycleCheck {
			topts = append(topts, traverse.WithCycleCheck())
		}

		return traverse.Traverse(g, source, traverse.BFS, topts...)
	}
}

// seedOrder lists all vertices with source first and the rest sorted.
func seedOrder(g *core.Graph, source string) []string {
	verts := g.Vertices()
	seeds := make([]string, 0, len(verts))
	seeds = append(seeds, source)
	for _, v := range verts {
		if v != source {
			seeds = append(seeds, v)
		}
	}

	return seeds
}

// cancelled reports the context error once the run should stop.
func cancelled(o Options) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
