package graphorder

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

// Sentinel errors for graph-driven sources.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("graphorder: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("graphorder: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graphorder: invalid option supplied")

	// ErrNotDirected is returned when a topological order is requested on an undirected graph.
	ErrNotDirected = errors.New("graphorder: graph is not directed")

	// ErrCycleDetected is returned when a topological order cannot exist.
	ErrCycleDetected = errors.New("graphorder: cycle detected")
)

// Option configures a walk via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when the walk is built.
type Option func(*Options)

// Options holds parameters and callbacks for BFS and DFS walks.
type Options struct {
	// MaxDepth, if > 0, stops expanding vertices at this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// OnVisit is called with each vertex and its depth as it is emitted.
	OnVisit func(id, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		OnVisit:        func(int, int) {},
		err:            nil,
	}
}

// WithMaxDepth limits the walk depth.
//
//	d > 0: do not emit vertices deeper than d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers a callback run as each vertex is emitted.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// NewIndexGraph returns a graph with vertices 0..n-1 keyed by graph.IntHash.
// traits are passed to graph.New (e.g. graph.Directed(), graph.Acyclic()).
func NewIndexGraph(n int, traits ...func(*graph.Traits)) (graph.Graph[int, int], error) {
	g := graph.New(graph.IntHash, traits...)
	for v := 0; v < n; v++ {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphorder: add vertex %d: %w", v, err)
		}
	}

	return g, nil
}
