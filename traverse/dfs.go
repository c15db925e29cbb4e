// Package traverse: depth-first walkers. The recursive and iterative
// variants must stay behaviorally identical; the iterative one replays
// the recursion with explicit frames, one per gray vertex, so both make
// the same parent, ordering and cycle decisions at the same points.
package traverse

import (
	"fmt"

	"github.com/aturian/plexus/core"
)

// dfsRecursive explores the tree below u using the call stack.
// dist is the cost of the tree path root→u: depth on unweighted graphs,
// edge-weight sum on weighted ones.
func (w *walker) dfsRecursive(u, parent string, dist int64) error {
	if err := w.cancelled(); err != nil {
		return err
	}

	w.discover(u, parent, dist)

	nbs, err := w.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("traverse: neighbors of %q: %w", u, err)
	}
	for _, nb := range nbs {
		switch w.color[nb.ID] {
		case white:
			if err = w.dfsRecursive(nb.ID, u, dist+nb.Weight); err != nil {
				return err
			}
		case gray:
			w.checkBackEdge(nb.ID, parent)
		case black:
			// forward or cross edge; never closes a new cycle
		}
	}

	w.color[u] = black
	w.res.Postorder = append(w.res.Postorder, u)

	return nil
}

// frame is one suspended dfsIterative visit: the vertex, the parent it
// was discovered from, its path cost, and the next neighbor to examine.
type frame struct {
	id     string
	parent string
	dist   int64
	nbs    []core.Neighbor
	next   int
}

// dfsIterative explores the tree below root with an explicit frame stack.
func (w *walker) dfsIterative(root string) error {
	// enter mirrors the prologue of dfsRecursive.
	enter := func(u, parent string, dist int64) (frame, error) {
		w.discover(u, parent, dist)
		nbs, err := w.g.Neighbors(u)
		if err != nil {
			return frame{}, fmt.Errorf("traverse: neighbors of %q: %w", u, err)
		}

		return frame{id: u, parent: parent, dist: dist, nbs: nbs}, nil
	}

	f, err := enter(root, "", 0)
	if err != nil {
		return err
	}
	stack := []frame{f}

	for len(stack) > 0 {
		if err = w.cancelled(); err != nil {
			return err
		}

		top := &stack[len(stack)-1]
		if top.next == len(top.nbs) {
			// all neighbors examined: finish the vertex
			w.color[top.id] = black
			w.res.Postorder = append(w.res.Postorder, top.id)
			stack = stack[:len(stack)-1]

			continue
		}

		nb := top.nbs[top.next]
		top.next++
		switch w.color[nb.ID] {
		case white:
			f, err = enter(nb.ID, top.id, top.dist+nb.Weight)
			if err != nil {
				return err
			}
			stack = append(stack, f)
		case gray:
			w.checkBackEdge(nb.ID, top.parent)
		case black:
			// forward or cross edge; never closes a new cycle
		}
	}

	return nil
}

// checkBackEdge flags a cycle for a gray neighbor nb of the current
// vertex, whose own parent is parent. On a directed graph every gray
// neighbor is a back edge; on an undirected graph the edge back to the
// immediate parent is the tree edge itself and does not count.
func (w *walker) checkBackEdge(nb, parent string) {
	if !w.opts.CycleCheck {
		return
	}
	if w.g.Directed() || nb != parent {
		w.res.Cyclic = true
	}
}
