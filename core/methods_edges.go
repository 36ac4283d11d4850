// File: methods_edges.go
// Role: Edge lifecycle & queries with multiplicity.
//
// Determinism:
//   - Successors()/Predecessors() return handles sorted ascending.
package core

import "sort"

// AddEdge records one more use of from as an input of to.
//
// Steps:
//  1. Reject self-loops (a node never depends on itself).
//  2. Both endpoints must already exist.
//  3. Increment the multiplicity in both mirrors.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	if from < 0 || to < 0 {
		return ErrBadVertex
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVertexNotFound
	}
	g.succ[from][to]++
	g.pred[to][from]++
	g.edges++

	return nil
}

// RemoveEdge removes one use of from as an input of to. The edge vanishes
// from both mirrors when its multiplicity reaches zero.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) error {
	m, ok := g.succ[from][to]
	if !ok || m == 0 {
		return ErrEdgeNotFound
	}
	if m == 1 {
		delete(g.succ[from], to)
		delete(g.pred[to], from)
	} else {
		g.succ[from][to] = m - 1
		g.pred[to][from] = m - 1
	}
	g.edges--

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to int) bool { return g.succ[from][to] > 0 }

// Multiplicity returns the number of parallel edges from→to.
func (g *Graph) Multiplicity(from, to int) int { return g.succ[from][to] }

// EdgeCount returns the total edge multiplicity.
func (g *Graph) EdgeCount() int { return g.edges }

// Successors returns the distinct direct dependents of v, ascending.
// Missing vertices yield nil.
// Complexity: O(d·log d).
func (g *Graph) Successors(v int) []int { return sortedKeys(g.succ[v]) }

// Predecessors returns the distinct direct inputs of v, ascending.
// Complexity: O(d·log d).
func (g *Graph) Predecessors(v int) []int { return sortedKeys(g.pred[v]) }

func sortedKeys(m map[int]int) []int {
	if len(m) == 0 {
		return nil
	}
	out := make([]int, 0, len(m))
	var k int
	for k = range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
