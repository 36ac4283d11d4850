// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns handles sorted ascending.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate the handle (ErrBadVertex).
//   - Stage 2: Allocate successor and predecessor buckets when missing.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(v int) error {
	if v < 0 {
		return ErrBadVertex
	}
	if _, exists := g.succ[v]; exists {
		return nil // no-op for existing vertex
	}
	g.succ[v] = make(map[int]int)
	g.pred[v] = make(map[int]int)

	return nil
}

// HasVertex reports whether v exists (negative handle ⇒ false).
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.succ[v]

	return ok
}

// RemoveVertex deletes v and every incident edge.
//
// Implementation:
//   - Stage 1: Validate handle and presence.
//   - Stage 2: Unlink v from each successor's predecessor bucket and from each
//     predecessor's successor bucket, subtracting multiplicities.
//   - Stage 3: Drop v's own buckets.
//
// Errors:
//   - ErrBadVertex, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(v int) error {
	if v < 0 {
		return ErrBadVertex
	}
	out, ok := g.succ[v]
	if !ok {
		return ErrVertexNotFound
	}

	var w, m int
	for w, m = range out {
		delete(g.pred[w], v)
		g.edges -= m
	}
	for w, m = range g.pred[v] {
		delete(g.succ[w], v)
		g.edges -= m
	}
	delete(g.succ, v)
	delete(g.pred, v)

	return nil
}

// Vertices returns all handles in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.succ))
	var v int
	for v = range g.succ {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.succ) }

// InDegree returns the number of distinct predecessors of v (0 if missing).
func (g *Graph) InDegree(v int) int { return len(g.pred[v]) }

// OutDegree returns the number of distinct successors of v (0 if missing).
func (g *Graph) OutDegree(v int) int { return len(g.succ[v]) }
