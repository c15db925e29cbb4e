// Package traverse implements the forest driver shared by all strategies:
// seed the requested root first, then every undiscovered vertex in sorted
// order, so disconnected graphs are always fully covered.
package traverse

import (
	"fmt"

	"github.com/aturian/plexus/core"
)

// vertex coloring shared by all walkers: white = undiscovered,
// gray = discovered and under exploration, black = fully explored.
type color uint8

const (
	white color = iota
	gray
	black
)

// walker carries the mutable state of one Traverse call.
type walker struct {
	g     *core.Graph
	opts  Options
	res   *Result
	color map[string]color
}

// Traverse runs the selected strategy over g. The tree rooted at root is
// explored first; every vertex still undiscovered afterwards starts a new
// tree, in lexicographic order. Passing root == "" starts directly with
// the lexicographically first vertex.
//
// The returned Result is freshly allocated and never shared; g itself is
// only read.
func Traverse(g *core.Graph, root string, strategy Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if strategy != DFSRecursive && strategy != DFSIterative && strategy != BFS {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	if root != "" && !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, root)
	}
	if o.CycleCheck && strategy == BFS && g.Directed() {
		return nil, ErrCycleCheckUnsupported
	}

	n := g.VertexCount()
	w := &walker{
		g:    g,
		opts: o,
		res: &Result{
			Parents:      make(map[string]string, n),
			Distances:    make(map[string]int64, n),
			Order:        make([]string, 0, n),
			CycleChecked: o.CycleCheck,
		},
		color: make(map[string]color, n),
	}
	if strategy != BFS {
		w.res.Postorder = make([]string, 0, n)
	}

	for _, seed := range seedOrder(g, root) {
		if w.color[seed] != white {
			continue
		}
		treeStart := len(w.res.Order)

		var err error
		switch strategy {
		case DFSRecursive:
			err = w.dfsRecursive(seed, "", 0)
		case DFSIterative:
			err = w.dfsIterative(seed)
		case BFS:
			err = w.bfs(seed)
		}
		if err != nil {
			return nil, err
		}

		tree := append([]string(nil), w.res.Order[treeStart:]...)
		w.res.Components = append(w.res.Components, tree)
	}

	return w.res, nil
}

// seedOrder lists all vertices with root first (when given) and the rest
// in lexicographic order.
func seedOrder(g *core.Graph, root string) []string {
	verts := g.Vertices()
	if root == "" {
		return verts
	}

	seeds := make([]string, 0, len(verts))
	seeds = append(seeds, root)
	for _, v := range verts {
		if v != root {
			seeds = append(seeds, v)
		}
	}

	return seeds
}

// cancelled reports the context error once the traversal should stop.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// discover records the first visit of u: parent link, distance, preorder.
func (w *walker) discover(u, parent string, dist int64) {
	w.color[u] = gray
	w.res.Parents[u] = parent
	w.res.Distances[u] = dist
	w.res.Order = append(w.res.Order, u)
}
