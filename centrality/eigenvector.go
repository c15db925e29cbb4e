package centrality

import (
	"math"

	"github.com/aturian/plexus/core"
)

// Eigenvector computes eigenvector centrality via the power method.
//
// Each step propagates scores along arcs and keeps the current score,
// x'_v = x_v + Σ_{u→v} w(u,v)·x_u, then L2-normalizes the vector. The
// identity shift leaves the dominant eigenvector unchanged but breaks
// the eigenvalue tie on bipartite graphs, where the plain iteration
// would oscillate forever. On undirected graphs every edge propagates
// both ways. The run stops once the L2 distance between
// successive iterates drops below the tolerance, or when the iteration
// budget is spent; the latter case is reported via Converged == false,
// not as an error. An edgeless graph is a fixpoint of the shifted
// iteration and converges immediately to uniform scores.
// Complexity: O(maxIterations · (V + E)).
func Eigenvector(g *core.Graph, opts ...Option) (*EigenResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// Uniform unit start vector.
	x := make(map[string]float64, n)
	for _, v := range verts {
		x[v] = 1.0 / math.Sqrt(float64(n))
	}

	res := &EigenResult{Scores: x}
	for res.Iterations < o.MaxIterations {
		res.Iterations++

		next := make(map[string]float64, n)
		for _, u := range verts {
			xu := x[u]
			next[u] += xu
			if xu == 0 {
				continue
			}
			nbs, nerr := g.Neighbors(u)
			if nerr != nil {
				return nil, nerr
			}
			for _, nb := range nbs {
				next[nb.ID] += float64(nb.Weight) * xu
			}
		}

		norm := 0.0
		for _, val := range next {
			norm += val * val
		}
		norm = math.Sqrt(norm)
		// Negative weights can cancel the vector out entirely; the
		// method cannot recover from that.
		if norm == 0 {
			return res, nil
		}

		delta := 0.0
		for _, v := range verts {
			scaled := next[v] / norm
			d := scaled - x[v]
			delta += d * d
			next[v] = scaled
		}
		x = next
		res.Scores = x

		if math.Sqrt(delta) < o.Tolerance {
			res.Converged = true

			return res, nil
		}
	}

	return res, nil
}
