package kernel

import (
	"fmt"

	"github.com/katalvlaran/geokernel/dfs"
)

// Validate checks the structural invariants of the construction:
//   - order lists every live node once and pos mirrors it;
//   - every input of a live algorithm precedes every live output;
//   - every output names the algorithm as parent;
//   - children sets match the input lists of live algorithms;
//   - the dependency graph is acyclic.
//
// Violations wrap ErrInvariant.
func (c *Construction) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	live := 0
	for _, el := range c.nodes {
		if el != nil {
			live++
		}
	}
	if live != len(c.order) {
		return fmt.Errorf("%w: %d live nodes, %d ordered", ErrInvariant, live, len(c.order))
	}
	for i, id := range c.order {
		if p, ok := c.pos[id]; !ok || p != i || c.nodes[id] == nil {
			return fmt.Errorf("%w: node %d misplaced at %d", ErrInvariant, id, i)
		}
	}

	want := make(map[NodeID]map[AlgoID]int)
	for _, a := range c.algos {
		if a == nil {
			continue
		}
		outs := a.liveOutputs()
		if len(outs) == 0 {
			return fmt.Errorf("%w: algorithm %d has no outputs", ErrInvariant, a.id)
		}
		for _, o := range outs {
			if c.nodes[o] == nil || c.nodes[o].parent != a.id {
				return fmt.Errorf("%w: output %d of algorithm %d", ErrInvariant, o, a.id)
			}
		}
		for _, in := range a.inputs {
			if c.nodes[in] == nil {
				return fmt.Errorf("%w: algorithm %d reads removed node %d", ErrInvariant, a.id, in)
			}
			for _, o := range outs {
				if c.pos[in] >= c.pos[o] {
					return fmt.Errorf("%w: input %d does not precede output %d", ErrInvariant, in, o)
				}
			}
			if want[in] == nil {
				want[in] = make(map[AlgoID]int)
			}
			want[in][a.id]++
		}
	}
	for _, id := range c.order {
		el := c.nodes[id]
		if len(el.children) != len(want[id]) {
			return fmt.Errorf("%w: children of node %d", ErrInvariant, id)
		}
		for aid, n := range el.children {
			if want[id][aid] != n {
				return fmt.Errorf("%w: children of node %d", ErrInvariant, id)
			}
		}
		if el.parent != NoAlgo && c.algos[el.parent] == nil {
			return fmt.Errorf("%w: node %d has detached parent", ErrInvariant, id)
		}
	}
	if cyc, err := dfs.DetectCycle(c.deps); err != nil {
		return fmt.Errorf("%w: cycle %v", ErrInvariant, cyc)
	}

	return nil
}
