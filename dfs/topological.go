package dfs

import (
	"container/heap"

	"github.com/katalvlaran/geokernel/core"
)

// TopologicalSort reorders order so that every edge of g between two of its
// vertices points forward. Edges to or from vertices outside order are
// ignored; the caller guarantees those are already consistent.
//
// Among the vertices whose in-range inputs are all placed, the one with the
// smallest index in order goes next. A vertex therefore lands immediately
// after its latest input when it has to move, and keeps its relative
// position otherwise.
//
// Returns ErrCycleDetected when the induced subgraph is not acyclic.
func TopologicalSort(g *core.Graph, order []int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// 1. Rank each vertex by its current position.
	rank := make(map[int]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	// 2. Count in-range inputs.
	pending := make(map[int]int, len(order))
	for _, v := range order {
		for _, p := range g.Predecessors(v) {
			if _, in := rank[p]; in {
				pending[v]++
			}
		}
	}
	// 3. Seed the ready queue with vertices that have no in-range inputs.
	ready := &rankHeap{rank: rank}
	for _, v := range order {
		if pending[v] == 0 {
			ready.ids = append(ready.ids, v)
		}
	}
	heap.Init(ready)

	// 4. Kahn's loop, smallest rank first.
	out := make([]int, 0, len(order))
	for ready.Len() > 0 {
		v := heap.Pop(ready).(int)
		out = append(out, v)
		for _, s := range g.Successors(v) {
			if _, in := rank[s]; !in {
				continue
			}
			pending[s]--
			if pending[s] == 0 {
				heap.Push(ready, s)
			}
		}
	}
	if len(out) != len(order) {
		return nil, ErrCycleDetected
	}

	return out, nil
}

// rankHeap is a min-heap of vertices keyed by rank.
type rankHeap struct {
	ids  []int
	rank map[int]int
}

func (h *rankHeap) Len() int           { return len(h.ids) }
func (h *rankHeap) Less(i, j int) bool { return h.rank[h.ids[i]] < h.rank[h.ids[j]] }
func (h *rankHeap) Swap(i, j int)      { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }
func (h *rankHeap) Push(x any)         { h.ids = append(h.ids, x.(int)) }
func (h *rankHeap) Pop() any {
	n := len(h.ids)
	v := h.ids[n-1]
	h.ids = h.ids[:n-1]

	return v
}
