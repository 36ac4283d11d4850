// File: redefine.go
// Role: Replacing how an existing node is produced while keeping its identity.
package kernel

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Redefine makes comp, applied to inputs, the producer of node id. The node
// keeps its handle, label and dependents.
//
// A node that is unlabeled and has no dependents is replaced outright.
// Otherwise rule (DefaultRule when nil) must allow the change from the
// current kind to the new output kind, or ErrIncompatibleRedefinition is
// returned. A kind change must also be accepted by every algorithm reading
// id, with unchanged output kinds, or ErrIncompatibleRedefinition is
// returned. Inputs that depend on id fail with ErrCyclicDependency. Every
// failure leaves the construction unchanged.
//
// On success the old parent is detached, the order suffix starting at id is
// re-threaded so id follows its latest input, and a propagation pass runs
// from id.
func (c *Construction) Redefine(id NodeID, comp Computer, inputs []NodeID, rule RedefinitionRule) error {
	if comp == nil {
		return fmt.Errorf("%w: nil computer", ErrArity)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.get(id)
	if err != nil {
		return err
	}
	kinds, err := c.outputKinds(comp, inputs)
	if err != nil {
		return c.reject("redefine", err)
	}
	if len(kinds) != 1 {
		return c.reject("redefine", fmt.Errorf("%w: %s has %d outputs", ErrArity, comp.Name(), len(kinds)))
	}
	if err = c.checkRule(el, kinds[0], rule); err != nil {
		return c.reject("redefine", err)
	}
	if err = c.checkConsumers(el, kinds[0]); err != nil {
		return c.reject("redefine", err)
	}
	if err = c.checkAcyclic(id, inputs); err != nil {
		return c.reject("redefine", err)
	}

	from, oldKind := c.pos[id], el.kind
	c.unlinkOutput(el)
	a := &algorithm{
		id:       AlgoID(len(c.algos)),
		computer: comp,
		inputs:   slices.Clone(inputs),
		outputs:  []NodeID{id},
	}
	c.algos = append(c.algos, a)
	el.parent, el.kind = a.id, kinds[0]
	c.link(a)
	c.rethread(from)
	st := c.propagate(a)

	c.log.Debug("node redefined",
		zap.Int("node", int(id)),
		zap.String("label", el.label),
		zap.String("algorithm", comp.Name()),
		zap.Stringer("from", oldKind),
		zap.Stringer("to", el.kind),
		zap.Int("position", c.pos[id]),
		zap.Int("computed", st.Computed))

	return nil
}

// RedefineFree turns node id into a free node holding v, detaching its
// parent algorithm. The kind change is subject to rule as in Redefine.
func (c *Construction) RedefineFree(id NodeID, v Value, rule RedefinitionRule) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrKindMismatch)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.get(id)
	if err != nil {
		return err
	}
	if err = c.checkRule(el, v.Kind(), rule); err != nil {
		return c.reject("redefine", err)
	}
	if err = c.checkConsumers(el, v.Kind()); err != nil {
		return c.reject("redefine", err)
	}
	c.unlinkOutput(el)
	el.kind = v.Kind()
	el.setValue(v)
	st := c.propagate(nil, id)

	c.log.Debug("node redefined as free",
		zap.Int("node", int(id)), zap.String("label", el.label), zap.Int("computed", st.Computed))

	return nil
}

// checkRule applies rule when el is labeled or has dependents.
func (c *Construction) checkRule(el *element, to Kind, rule RedefinitionRule) error {
	if el.label == "" && len(el.children) == 0 {
		return nil
	}
	if rule == nil {
		rule = DefaultRule()
	}
	if !rule.Allow(el.kind, to) {
		return fmt.Errorf("%w: node %d from %s to %s", ErrIncompatibleRedefinition, el.id, el.kind, to)
	}

	return nil
}

// checkConsumers re-validates every algorithm reading el as if el had kind
// to. Each consumer must accept the new input kinds and keep producing the
// kinds its output nodes already have.
func (c *Construction) checkConsumers(el *element, to Kind) error {
	if to == el.kind {
		return nil
	}
	for _, aid := range slices.Sorted(maps.Keys(el.children)) {
		a := c.algos[aid]
		in := make([]Kind, len(a.inputs))
		for i, id := range a.inputs {
			in[i] = c.nodes[id].kind
			if id == el.id {
				in[i] = to
			}
		}
		out, err := a.computer.OutputKinds(in)
		if err != nil {
			return fmt.Errorf("%w: node %d as %s breaks %s: %v",
				ErrIncompatibleRedefinition, el.id, to, a.computer.Name(), err)
		}
		if len(out) != len(a.outputs) {
			return fmt.Errorf("%w: node %d as %s changes the arity of %s",
				ErrIncompatibleRedefinition, el.id, to, a.computer.Name())
		}
		for i, o := range a.outputs {
			if o != NoNode && c.nodes[o].kind != out[i] {
				return fmt.Errorf("%w: node %d as %s turns output %d of %s into %s",
					ErrIncompatibleRedefinition, el.id, to, o, a.computer.Name(), out[i])
			}
		}
	}

	return nil
}
