package centrality

import (
	"github.com/aturian/plexus/core"
)

// Degree computes the degree centrality of every vertex.
//
// On directed graphs Score.In counts incoming arcs and Score.Out
// outgoing arcs; on undirected graphs both fields carry the plain
// degree. A self-loop contributes once to each applicable count.
// With WithNormalized every score is divided by |V|-1.
// Complexity: O(V).
func Degree(g *core.Graph, opts ...Option) (map[string]Score, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	scale := 1.0
	if o.Normalized {
		if n := g.VertexCount(); n > 1 {
			scale = 1.0 / float64(n-1)
		} else {
			scale = 0
		}
	}

	scores := make(map[string]Score, g.VertexCount())
	for _, v := range g.Vertices() {
		in, ierr := g.InDegree(v)
		if ierr != nil {
			return nil, ierr
		}
		out, oerr := g.OutDegree(v)
		if oerr != nil {
			return nil, oerr
		}
		scores[v] = Score{
			In:  float64(in) * scale,
			Out: float64(out) * scale,
		}
	}

	return scores, nil
}
