// File: propagate.go
// Role: One-pass update propagation in stored topological order.
package kernel

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/geokernel/path"
)

// propagate runs one pass. first, when non-nil, is computed before the walk
// (a freshly attached algorithm); seeds are nodes changed externally.
//
// Implementation:
//   - Stage 1: Compute first and mark seeds dirty.
//   - Stage 2: Walk order from the earliest dirty position. An algorithm is
//     recomputed when one of its inputs is dirty and it has not run yet in
//     this pass; its changed outputs become dirty.
//
// Complexity:
//   - Time O(N + E), Space O(N).
func (c *Construction) propagate(first *algorithm, seeds ...NodeID) PassStats {
	var st PassStats
	dirty := make(map[NodeID]bool, len(seeds))
	done := make(map[AlgoID]bool)

	// Stage 1
	if first != nil {
		done[first.id] = true
		st.Computed++
		for _, o := range c.recompute(first, &st) {
			dirty[o] = true
		}
	}
	for _, s := range seeds {
		dirty[s] = true
	}
	start := len(c.order)
	for id := range dirty {
		start = min(start, c.pos[id])
	}

	// Stage 2
	for i := start; i < len(c.order); i++ {
		el := c.nodes[c.order[i]]
		if el.parent == NoAlgo || done[el.parent] {
			continue
		}
		a := c.algos[el.parent]
		if !anyDirty(a.inputs, dirty) {
			continue
		}
		done[a.id] = true
		st.Computed++
		for _, o := range c.recompute(a, &st) {
			dirty[o] = true
		}
	}
	st.Dirty = len(dirty)
	c.metrics.observePass(st)

	return st
}

func anyDirty(ids []NodeID, dirty map[NodeID]bool) bool {
	for _, id := range ids {
		if dirty[id] {
			return true
		}
	}

	return false
}

// recompute refreshes the outputs of a and returns those that must be
// treated as dirty: every live output, or only the changed ones when
// PruneUnchanged is set.
func (c *Construction) recompute(a *algorithm, st *PassStats) []NodeID {
	if _, ok := a.computer.(pathPoint); ok {
		return c.recomputeOnPath(a, st)
	}

	in := make([]Value, len(a.inputs))
	undefinedIn := false
	for i, id := range a.inputs {
		if el := c.nodes[id]; el.defined {
			in[i] = el.value
		} else {
			undefinedIn = true
		}
	}
	var (
		vals []Value
		err  error
	)
	if undefinedIn && !a.tolerant() {
		err = ErrUndefined
	} else {
		vals, err = a.computer.Compute(in)
		if err == nil && len(vals) != len(a.outputs) {
			err = fmt.Errorf("%w: %s returned %d values for %d outputs",
				ErrArity, a.computer.Name(), len(vals), len(a.outputs))
		}
	}
	if err != nil && !errors.Is(err, ErrUndefined) {
		c.log.Debug("compute failed",
			zap.Int("algorithm", int(a.id)), zap.String("kind", a.computer.Name()), zap.Error(err))
	}
	c.metrics.computed(a.computer.Name())

	dirty := make([]NodeID, 0, len(a.outputs))
	for i, id := range a.outputs {
		if id == NoNode {
			continue
		}
		el := c.nodes[id]
		var changed bool
		if err != nil || vals[i] == nil {
			changed = el.setUndefined()
		} else if v, ok := Coerce(vals[i], el.kind); ok {
			changed = el.setValue(v)
		} else {
			changed = el.setUndefined()
		}
		if !el.defined {
			st.Undefined++
			c.metrics.undefined(a.computer.Name())
		}
		if changed || !c.cfg.PruneUnchanged {
			dirty = append(dirty, id)
		}
	}

	return dirty
}

// recomputeOnPath keeps the parameter of a path-constrained point and
// re-evaluates its position on the current path geometry.
func (c *Construction) recomputeOnPath(a *algorithm, st *PassStats) []NodeID {
	el := c.nodes[a.outputs[0]]
	c.metrics.computed(a.computer.Name())
	changed := c.resolvePathChanged(el)
	if !el.defined {
		st.Undefined++
		c.metrics.undefined(a.computer.Name())
	}
	if changed || !c.cfg.PruneUnchanged {
		return []NodeID{el.id}
	}

	return nil
}

// pathOf returns the path capability of the node constraining el.
func (c *Construction) pathOf(el *element) (path.Path, bool) {
	host := c.nodes[el.constraint.Path]
	if !host.defined {
		return nil, false
	}

	return AsPath(host.value)
}

// resolvePathChanged clamps the kept parameter into the current path range
// and recomputes the position from it.
func (c *Construction) resolvePathChanged(el *element) bool {
	p, ok := c.pathOf(el)
	if !ok {
		return el.setUndefined()
	}
	t, pt, err := path.PathChanged(p, el.constraint.T)
	if err != nil {
		return el.setUndefined()
	}
	el.constraint.T = t

	return el.setValue(Point{pt})
}

// resolvePointChanged projects raw onto the path, clamps and stores the
// resulting parameter and position.
func (c *Construction) resolvePointChanged(el *element, raw Point) bool {
	p, ok := c.pathOf(el)
	if !ok {
		return el.setUndefined()
	}
	t, pt, err := path.PointChanged(p, raw.Coords)
	if err != nil {
		return el.setUndefined()
	}
	el.constraint.T = t

	return el.setValue(Point{pt})
}
