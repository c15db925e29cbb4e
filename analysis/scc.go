package analysis

import (
	"sort"

	"github.com/aturian/plexus/core"
	"github.com/aturian/plexus/traverse"
)

// tarjanState carries the bookkeeping of one Tarjan run.
type tarjanState struct {
	g       *core.Graph
	index   map[string]int // discovery index, assigned once
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	next    int
	sccs    [][]string
	err     error
}

// tarjanSCC computes strongly connected components via Tarjan's
// single-pass lowlink algorithm. Roots are visited in sorted order so
// the result is deterministic for a given graph.
// Complexity: O(V + E).
func tarjanSCC(g *core.Graph) ([][]string, error) {
	st := &tarjanState{
		g:       g,
		index:   make(map[string]int, g.VertexCount()),
		lowlink: make(map[string]int, g.VertexCount()),
		onStack: make(map[string]bool, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if _, seen := st.index[v]; !seen {
			st.strongConnect(v)
		}
		if st.err != nil {
			return nil, st.err
		}
	}
	sortComponents(st.sccs)

	return st.sccs, nil
}

func (st *tarjanState) strongConnect(v string) {
	st.index[v] = st.next
	st.lowlink[v] = st.next
	st.next++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	nbs, err := st.g.NeighborIDs(v)
	if err != nil {
		st.err = err

		return
	}
	for _, w := range nbs {
		if _, seen := st.index[w]; !seen {
			st.strongConnect(w)
			if st.err != nil {
				return
			}
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] && st.index[w] < st.lowlink[v] {
			st.lowlink[v] = st.index[w]
		}
	}

	// v is the root of an SCC: pop the stack down to v.
	if st.lowlink[v] == st.index[v] {
		var scc []string
		for {
			n := len(st.stack) - 1
			w := st.stack[n]
			st.stack = st.stack[:n]
			st.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		st.sccs = append(st.sccs, scc)
	}
}

// kosarajuSCC computes strongly connected components in two passes:
// a full traversal of the transpose yields a finish order, then forward
// DFS in reverse finish order carves out one SCC per tree.
// Complexity: O(V + E).
func kosarajuSCC(g *core.Graph) ([][]string, error) {
	res, err := traverse.Traverse(g.Transpose(), "", traverse.DFSIterative)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, g.VertexCount())
	var sccs [][]string
	for i := len(res.Postorder) - 1; i >= 0; i-- {
		root := res.Postorder[i]
		if seen[root] {
			continue
		}
		scc, rerr := forwardReach(g, root, seen)
		if rerr != nil {
			return nil, rerr
		}
		sccs = append(sccs, scc)
	}
	sortComponents(sccs)

	return sccs, nil
}

// forwardReach collects every vertex reachable from root that has not
// been claimed by an earlier SCC. Iterative to keep deep graphs off the
// call stack.
func forwardReach(g *core.Graph, root string, seen map[string]bool) ([]string, error) {
	seen[root] = true
	stack := []string{root}
	scc := []string{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		u := stack[n]
		stack = stack[:n]
		nbs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, w := range nbs {
			if seen[w] {
				continue
			}
			seen[w] = true
			stack = append(stack, w)
			scc = append(scc, w)
		}
	}

	return scc, nil
}

// sortComponents orders members within each component and the components
// themselves by their first member, so Tarjan and Kosaraju compare equal.
func sortComponents(ccs [][]string) {
	for _, cc := range ccs {
		sort.Strings(cc)
	}
	sort.Slice(ccs, func(i, j int) bool { return ccs[i][0] < ccs[j][0] })
}
