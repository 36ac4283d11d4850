package dfs

import "github.com/katalvlaran/geokernel/core"

// Reachable reports whether any of targets is reachable from `from` along
// directed edges (a vertex reaches itself). It returns the first target
// found in DFS pre-order, or -1.
func Reachable(g *core.Graph, from int, targets ...int) (int, bool, error) {
	// 1. Validate inputs
	if g == nil {
		return -1, false, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return -1, false, ErrVertexNotFound
	}
	want := make(map[int]struct{}, len(targets))
	for _, t := range targets {
		want[t] = struct{}{}
	}
	if len(want) == 0 {
		return -1, false, nil
	}

	// 2. Iterative DFS; explicit stack keeps deep chains off the goroutine stack.
	state := make(map[int]int)
	stack := []int{from}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if state[v] != White {
			continue
		}
		state[v] = Black
		if _, ok := want[v]; ok {
			return v, true, nil
		}
		succ := g.Successors(v)
		// push in reverse so the smallest handle is explored first
		for i := len(succ) - 1; i >= 0; i-- {
			if state[succ[i]] == White {
				stack = append(stack, succ[i])
			}
		}
	}

	return -1, false, nil
}
