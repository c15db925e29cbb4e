// Package traverse: breadth-first walker.
package traverse

import "fmt"

// bfs explores the tree below root in strict level order. Distances are
// hop counts; ties within a level are broken by enqueue order, which is
// deterministic because neighbors arrive sorted.
func (w *walker) bfs(root string) error {
	w.discover(root, "", 0)
	queue := []string{root}

	for len(queue) > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		u := queue[0]
		queue = queue[1:]
		w.color[u] = black

		nbs, err := w.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("traverse: neighbors of %q: %w", u, err)
		}
		for _, nb := range nbs {
			if w.color[nb.ID] == white {
				w.color[nb.ID] = gray
				w.res.Parents[nb.ID] = u
				w.res.Distances[nb.ID] = w.res.Distances[u] + 1
				w.res.Order = append(w.res.Order, nb.ID)
				queue = append(queue, nb.ID)

				continue
			}
			// already-seen neighbor: on an undirected graph any such
			// neighbor other than u's parent closes a cycle. Directed
			// graphs never reach this check (Traverse rejects the option).
			if w.opts.CycleCheck && nb.ID != w.res.Parents[u] {
				w.res.Cyclic = true
			}
		}
	}

	return nil
}
