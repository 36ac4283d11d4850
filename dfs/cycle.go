package dfs

import "github.com/katalvlaran/geokernel/core"

// DetectCycle inspects g for a directed cycle.
// Returns (nil, nil) for a DAG, or the closed cycle [v0, ..., v0] together
// with ErrCycleDetected.
func DetectCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	state := make(map[int]int, len(verts))
	path := make([]int, 0, len(verts))

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		if cyc := visit(g, v, state, &path); cyc != nil {
			return cyc, ErrCycleDetected
		}
	}

	return nil, nil
}

// visit marks id Gray, recurses into successors, and reports the first
// back-edge as a closed cycle.
func visit(g *core.Graph, id int, state map[int]int, path *[]int) []int {
	// 1) Mark Gray and push on the path stack
	state[id] = Gray
	*path = append(*path, id)

	// 2) Explore successors in ascending order
	for _, nbr := range g.Successors(id) {
		switch state[nbr] {
		case White:
			if cyc := visit(g, nbr, state, path); cyc != nil {
				return cyc
			}
		case Gray:
			// back-edge: slice the path from nbr and close it
			idx := indexOf(*path, nbr)
			cyc := append([]int(nil), (*path)[idx:]...)

			return append(cyc, nbr)
		}
	}

	// 3) Backtrack
	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

func indexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
