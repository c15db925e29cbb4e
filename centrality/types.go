package centrality

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("centrality: graph has no vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Score is the degree centrality of one vertex. On undirected graphs
// In and Out are equal.
type Score struct {
	In  float64
	Out float64
}

// EigenResult is the outcome of one power-method run.
type EigenResult struct {
	// Scores maps every vertex to its L2-normalized centrality.
	Scores map[string]float64

	// Iterations is the number of power steps actually performed.
	Iterations int

	// Converged reports whether successive iterates got closer than the
	// configured tolerance before the iteration budget ran out.
	Converged bool
}

const (
	// DefaultTolerance is the L2 distance between successive iterates
	// below which the power method is considered converged.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations bounds the power method.
	DefaultMaxIterations = 100
)

// Option configures a centrality computation via functional arguments.
// An invalid Option (e.g. a non-positive tolerance) is recorded
// internally and surfaced as ErrOptionViolation when the computation is
// invoked.
type Option func(*Options)

// Options holds the tunables shared by the centrality functions.
type Options struct {
	// Normalized divides degree scores by |V|-1.
	Normalized bool

	// Tolerance is the convergence threshold of the power method.
	Tolerance float64

	// MaxIterations bounds the power method.
	MaxIterations int

	err error
}

// DefaultOptions returns raw (unnormalized) degree scores and the
// standard power-method budget.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithNormalized divides each degree score by |V|-1, the maximum number
// of edges a vertex can have in a simple graph. Graphs with fewer than
// two vertices score 0 everywhere rather than dividing by zero.
func WithNormalized() Option {
	return func(o *Options) {
		o.Normalized = true
	}
}

// WithTolerance sets the power-method convergence threshold.
// tol <= 0 is an option violation.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)

			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations bounds the power method. n < 1 is an option
// violation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be at least 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

// buildOptions folds the functional options and reports the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
