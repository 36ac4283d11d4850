// Package bfs provides tunable options and error definitions
// for breadth-first dependent collection over a core.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when a root handle is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize the walk.
type Options struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(id, depth int) error
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int, int) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a walk.
type Result struct {
	// Order lists vertices in visit sequence, roots first.
	Order []int

	// Depth maps each visited vertex to its distance from the nearest root.
	Depth map[int]int

	// Parent maps each non-root vertex to the vertex it was reached from.
	Parent map[int]int
}

// Visited reports whether id was reached.
func (r *Result) Visited(id int) bool {
	_, ok := r.Depth[id]

	return ok
}
