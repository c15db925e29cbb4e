// Package paths: Bellman-Ford strategy. No priority queue; |V|-1 rounds
// of whole-arc-set relaxation per tree, then one probe round whose
// improvements expose reachable negative cycles.
package paths

import (
	"sort"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/traverse"
)

// arc is one directed relaxation step. Undirected edges contribute two
// arcs through the mirrored adjacency.
type arc struct {
	from, to string
	weight   int64
}

// bellmanFord runs the strategy over every tree of the graph.
func bellmanFord(g *core.Graph, source string, o Options) (*traverse.Result, error) {
	n := g.VertexCount()
	b := &bfRunner{
		g:    g,
		opts: o,
		arcs: collectArcs(g),
		res: &traverse.Result{
			Parents:   make(map[string]string, n),
			Distances: make(map[string]int64, n),
			Order:     make([]string, 0, n),
		},
		claimed: make(map[string]bool, n),
	}

	for _, seed := range seedOrder(g, source) {
		if b.claimed[seed] {
			continue
		}
		if err := b.run(seed); err != nil {
			return nil, err
		}
	}

	return b.res, nil
}

// collectArcs flattens the adjacency into a deterministic relaxation list.
func collectArcs(g *core.Graph) []arc {
	out := make([]arc, 0, 2*g.EdgeCount())
	for _, u := range g.Vertices() {
		nbs, _ := g.Neighbors(u)
		for _, nb := range nbs {
			out = append(out, arc{from: u, to: nb.ID, weight: nb.Weight})
		}
	}

	return out
}

// bfRunner holds the mutable state of one bellmanFord call. claimed marks
// vertices settled by earlier trees; they are frozen and never relaxed
// into again.
type bfRunner struct {
	g       *core.Graph
	opts    Options
	arcs    []arc
	res     *traverse.Result
	claimed map[string]bool
}

// run relaxes the tree rooted at root to a fixpoint or round bound, then
// probes for a reachable negative cycle.
func (b *bfRunner) run(root string) error {
	b.res.Parents[root] = ""
	b.res.Distances[root] = 0
	reached := map[string]bool{root: true}

	// |V'|-1 rounds over the unclaimed remainder of the graph bound the
	// run regardless of weights; an early fixpoint breaks out sooner.
	rounds := b.g.VertexCount() - len(b.claimed) - 1
	for i := 0; i < rounds; i++ {
		if err := cancelled(b.opts); err != nil {
			return err
		}

		improved := false
		for _, a := range b.arcs {
			if b.skip(a, reached) {
				continue
			}
			nd := b.res.Distances[a.from] + a.weight
			if !reached[a.to] || nd < b.res.Distances[a.to] {
				reached[a.to] = true
				b.res.Distances[a.to] = nd
				b.res.Parents[a.to] = a.from
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	// probe round: any remaining improvement means a negative cycle
	marked := make(map[string]bool)
	for _, a := range b.arcs {
		if b.skip(a, reached) {
			continue
		}
		if !reached[a.to] || b.res.Distances[a.from]+a.weight < b.res.Distances[a.to] {
			marked[a.to] = true
		}
	}

	var undefined map[string]bool
	if len(marked) > 0 {
		b.res.HasNegativeCycle = true
		undefined = b.spread(marked, reached)
		for v := range undefined {
			delete(b.res.Distances, v)
			delete(b.res.Parents, v)
		}
	}

	b.finishTree(reached, undefined)

	return nil
}

// skip filters arcs that this run must not relax: arcs touching a vertex
// claimed by an earlier tree, and arcs whose tail has no distance yet.
func (b *bfRunner) skip(a arc, reached map[string]bool) bool {
	return b.claimed[a.from] || b.claimed[a.to] || !reached[a.from]
}

// spread closes marked under forward reachability inside this tree: every
// vertex a negative cycle can reach has an undefined distance.
func (b *bfRunner) spread(marked, reached map[string]bool) map[string]bool {
	affected := make(map[string]bool, len(marked))
	queue := make([]string, 0, len(marked))
	for v := range marked {
		affected[v] = true
		queue = append(queue, v)
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbs, _ := b.g.Neighbors(u)
		for _, nb := range nbs {
			if reached[nb.ID] && !affected[nb.ID] {
				affected[nb.ID] = true
				queue = append(queue, nb.ID)
			}
		}
	}

	return affected
}

// finishTree appends this tree's settle order (well-defined vertices by
// non-decreasing distance, ties lexicographic) and its component (every
// reached vertex, undefined ones last), and claims the reached set.
func (b *bfRunner) finishTree(reached, undefined map[string]bool) {
	settled := make([]string, 0, len(reached))
	bad := make([]string, 0, len(undefined))
	for v := range reached {
		if undefined[v] {
			bad = append(bad, v)
		} else {
			settled = append(settled, v)
		}
		b.claimed[v] = true
	}

	sort.Slice(settled, func(i, j int) bool {
		di, dj := b.res.Distances[settled[i]], b.res.Distances[settled[j]]
		if di != dj {
			return di < dj
		}

		return settled[i] < settled[j]
	})
	sort.Strings(bad)

	b.res.Order = append(b.res.Order, settled...)
	component := append(append([]string(nil), settled...), bad...)
	b.res.Components = append(b.res.Components, component)
}
