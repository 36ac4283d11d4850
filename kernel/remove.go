// File: remove.go
// Role: Cascade removal of a node and everything computed from it.
package kernel

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/geokernel/bfs"
)

// Remove deletes node id together with every node transitively computed from
// it and returns the removed labels in construction order. Inputs of removed
// nodes are never removed. Removing one output of a multi-output algorithm
// keeps its siblings; the algorithm is detached with its last output.
//
// Implementation:
//   - Stage 1: Collect id and its descendants with a BFS over deps.
//   - Stage 2: Unlink each removed node from its parent algorithm.
//   - Stage 3: Drop labels, arena slots and dependency vertices.
//   - Stage 4: Compact the order, keeping relative positions.
//
// Complexity:
//   - Time O(N + E), Space O(N).
func (c *Construction) Remove(id NodeID) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.get(id); err != nil {
		return nil, err
	}

	// Stage 1
	doomed := make(map[NodeID]bool)
	_, err := bfs.Walk(c.deps, []int{int(id)}, bfs.WithOnVisit(func(v, _ int) error {
		doomed[NodeID(v)] = true
		return nil
	}))
	if err != nil {
		return nil, err
	}

	// Stage 2
	for nid := range doomed {
		c.unlinkOutput(c.nodes[nid])
	}

	// Stage 3 + 4
	var removed []string
	kept := c.order[:0]
	for _, nid := range c.order {
		if !doomed[nid] {
			kept = append(kept, nid)
			continue
		}
		el := c.nodes[nid]
		if el.label != "" {
			removed = append(removed, el.label)
			delete(c.labels, el.label)
		}
		_ = c.deps.RemoveVertex(int(nid))
		delete(c.pos, nid)
		c.nodes[nid] = nil
	}
	c.order = kept
	c.reindex(0)

	c.log.Info("nodes removed",
		zap.Int("node", int(id)), zap.Int("count", len(doomed)), zap.Strings("labels", removed))
	c.metrics.setNodes(len(c.order))

	return removed, nil
}
