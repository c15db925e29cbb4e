// Package paths: Dijkstra strategy. Min-heap relaxation with the lazy
// decrease-key pattern: shorter rediscoveries push a fresh heap entry and
// stale entries are dropped when popped.
package paths

import (
	"container/heap"
	"fmt"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/traverse"
)

// dijkstra runs the strategy over every tree of the graph.
func dijkstra(g *core.Graph, source string, o Options) (*traverse.Result, error) {
	// Upfront scan so a bad weight is reported before any traversal begins.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &dijkstraRunner{
		g:    g,
		opts: o,
		res: &traverse.Result{
			Parents:      make(map[string]string, n),
			Distances:    make(map[string]int64, n),
			Order:        make([]string, 0, n),
			CycleChecked: o.CycleCheck,
		},
		settled: make(map[string]bool, n),
	}

	for _, seed := range seedOrder(g, source) {
		if r.settled[seed] {
			continue
		}
		treeStart := len(r.res.Order)
		if err := r.run(seed); err != nil {
			return nil, err
		}
		tree := append([]string(nil), r.res.Order[treeStart:]...)
		r.res.Components = append(r.res.Components, tree)
	}

	return r.res, nil
}

// dijkstraRunner holds the mutable state of one dijkstra call. seen
// means "has a tentative distance" (present in Parents); settled means
// the distance is final and the vertex is frozen for later trees.
type dijkstraRunner struct {
	g       *core.Graph
	opts    Options
	res     *traverse.Result
	settled map[string]bool
	pq      distHeap
	seq     uint64
}

// run settles every vertex reachable from root that no earlier tree claimed.
func (r *dijkstraRunner) run(root string) error {
	r.res.Parents[root] = ""
	r.res.Distances[root] = 0
	r.push(root, 0)

	for r.pq.Len() > 0 {
		if err := cancelled(r.opts); err != nil {
			return err
		}

		item := heap.Pop(&r.pq).(*distItem)
		u := item.id
		if r.settled[u] {
			continue // stale lazy-decrease-key entry
		}
		r.settled[u] = true
		r.res.Order = append(r.res.Order, u)

		nbs, err := r.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("paths: neighbors of %q: %w", u, err)
		}
		for _, nb := range nbs {
			v := nb.ID
			_, seen := r.res.Parents[v]

			if r.opts.CycleCheck && seen && v != r.res.Parents[u] {
				r.res.Cyclic = true
			}
			if r.settled[v] {
				continue
			}

			nd := r.res.Distances[u] + nb.Weight
			// strictly shorter only: on ties the first discovery keeps the
			// parent slot, so the tree follows discovery order
			if !seen || nd < r.res.Distances[v] {
				r.res.Parents[v] = u
				r.res.Distances[v] = nd
				r.push(v, nd)
			}
		}
	}

	return nil
}

// push enqueues v with a monotone sequence number so equal distances pop
// in insertion order.
func (r *dijkstraRunner) push(v string, dist int64) {
	heap.Push(&r.pq, &distItem{id: v, dist: dist, seq: r.seq})
	r.seq++
}

// distItem is one priority-queue entry: a vertex, its tentative distance,
// and the insertion sequence number used as a deterministic tie-break.
type distItem struct {
	id   string
	dist int64
	seq  uint64
}

// distHeap is a min-heap of *distItem ordered by (dist, seq).
type distHeap []*distItem

func (h distHeap) Len() int { return len(h) }

func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].seq < h[j].seq
}

func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(*distItem)) }

func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
