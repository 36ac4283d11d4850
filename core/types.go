// Package core defines the dependency Graph and its sentinel errors.
package core

import "errors"

// Sentinel errors for dependency index operations.
var (
	// ErrBadVertex indicates a negative vertex handle.
	ErrBadVertex = errors.New("core: bad vertex handle")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-dependency was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is a directed multigraph over integer handles.
//
// succ[from][to] and pred[to][from] both hold the edge multiplicity; the
// two maps are kept mirror images of each other.
type Graph struct {
	succ  map[int]map[int]int // from → to → multiplicity
	pred  map[int]map[int]int // to → from → multiplicity
	edges int                 // total multiplicity
}

// NewGraph creates an empty dependency index.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		succ: make(map[int]map[int]int),
		pred: make(map[int]map[int]int),
	}
}
