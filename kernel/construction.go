// File: construction.go
// Role: Construction arena, node and algorithm creation, read accessors.
//
// Invariants maintained by every exported method:
//   - order is a topological order of deps; pos mirrors order.
//   - children of every element match the input lists of live algorithms.
//   - deps holds one edge (with multiplicity) per input slot → live output.
package kernel

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/geokernel/core"
	"github.com/katalvlaran/geokernel/dfs"
)

// Construction owns every node and algorithm of one document.
type Construction struct {
	mu sync.RWMutex

	id      uuid.UUID
	cfg     Config
	log     *zap.Logger
	metrics *Metrics
	labeler Labeler

	nodes  []*element   // arena, nil once removed
	algos  []*algorithm // arena, nil once detached
	order  []NodeID
	pos    map[NodeID]int
	labels map[string]NodeID
	deps   *core.Graph // input node → output node
}

// New returns an empty construction.
func New(opts ...Option) *Construction {
	c := &Construction{
		id:      uuid.New(),
		cfg:     DefaultConfig(),
		log:     zap.NewNop(),
		labeler: DefaultLabeler,
		pos:     make(map[NodeID]int),
		labels:  make(map[string]NodeID),
		deps:    core.NewGraph(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("construction", c.id.String()))

	return c
}

// ID returns the construction identity used in logs.
func (c *Construction) ID() uuid.UUID { return c.id }

// Config returns the active configuration.
func (c *Construction) Config() Config { return c.cfg }

// CreateFreeNode appends an independent node holding v. Its kind is v.Kind().
func (c *Construction) CreateFreeNode(v Value) (NodeID, error) {
	if v == nil {
		return NoNode, fmt.Errorf("%w: nil value", ErrKindMismatch)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	el := c.appendNode(v.Kind())
	el.setValue(v)
	c.log.Debug("free node created",
		zap.Int("node", int(el.id)), zap.Stringer("kind", el.kind))
	c.metrics.setNodes(len(c.order))

	return el.id, nil
}

// CreateAlgorithm attaches a new algorithm computing from inputs and returns
// it with its output nodes. Fresh output nodes are appended to the order
// unless IntoNodes supplies existing free nodes to adopt.
//
// Steps:
//  1. Validate inputs, output kinds, adopted nodes and labels.
//  2. Reject adoption that would close a cycle (ErrCyclicDependency).
//  3. Link the algorithm, re-thread the order if adopted nodes moved.
//  4. Compute the outputs and propagate to dependents of adopted nodes.
func (c *Construction) CreateAlgorithm(comp Computer, inputs []NodeID, opts ...AlgoOption) (AlgoID, []NodeID, error) {
	if comp == nil {
		return NoAlgo, nil, fmt.Errorf("%w: nil computer", ErrArity)
	}
	var o algoOptions
	for _, opt := range opts {
		opt(&o)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// 1. Validate.
	kinds, err := c.outputKinds(comp, inputs)
	if err != nil {
		return NoAlgo, nil, c.reject("create", err)
	}
	if o.into != nil {
		if err = c.checkAdoption(o.into, kinds, inputs); err != nil {
			return NoAlgo, nil, c.reject("create", err)
		}
	}
	if err = c.checkNewLabels(o.labels, o.into); err != nil {
		return NoAlgo, nil, c.reject("create", err)
	}

	// 3. Link.
	a := &algorithm{id: AlgoID(len(c.algos)), computer: comp, inputs: slices.Clone(inputs)}
	c.algos = append(c.algos, a)
	rethreadFrom := len(c.order)
	for i, k := range kinds {
		var el *element
		if o.into != nil {
			el = c.nodes[o.into[i]]
			rethreadFrom = min(rethreadFrom, c.pos[el.id])
		} else {
			el = c.appendNode(k)
		}
		el.parent = a.id
		a.outputs = append(a.outputs, el.id)
	}
	c.link(a)
	if rethreadFrom < len(c.order) {
		c.rethread(rethreadFrom)
	}
	for i, l := range o.labels {
		if l != "" && i < len(a.outputs) {
			c.assignLabel(c.nodes[a.outputs[i]], l)
		}
	}

	// 4. Compute.
	st := c.propagate(a)
	c.log.Debug("algorithm created",
		zap.Int("algorithm", int(a.id)),
		zap.String("kind", comp.Name()),
		zap.Ints("outputs", toInts(a.outputs)),
		zap.Int("computed", st.Computed))
	c.metrics.setNodes(len(c.order))

	return a.id, slices.Clone(a.outputs), nil
}

// SetValue replaces the value of a free node and propagates the change.
func (c *Construction) SetValue(id NodeID, v Value) error {
	_, err := c.SetValueStats(id, v)
	return err
}

// SetValueStats is SetValue returning the statistics of the propagation pass.
func (c *Construction) SetValueStats(id NodeID, v Value) (PassStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.get(id)
	if err != nil {
		return PassStats{}, err
	}
	if el.parent != NoAlgo {
		return PassStats{}, c.reject("set", fmt.Errorf("%w: node %d", ErrNodeIsDependent, id))
	}
	if v == nil || v.Kind() != el.kind {
		return PassStats{}, c.reject("set", fmt.Errorf("%w: node %d is %s", ErrKindMismatch, id, el.kind))
	}
	el.setValue(v)

	return c.propagate(nil, id), nil
}

// Element returns a snapshot of node id.
func (c *Construction) Element(id NodeID) (Element, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	el, err := c.get(id)
	if err != nil {
		return Element{}, err
	}

	return el.snapshot(), nil
}

// Algorithm returns a snapshot of algorithm id.
func (c *Construction) Algorithm(id AlgoID) (Algorithm, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if id < 0 || int(id) >= len(c.algos) || c.algos[id] == nil {
		return Algorithm{}, fmt.Errorf("%w: %d", ErrAlgorithmNotFound, id)
	}

	return c.algos[id].snapshot(), nil
}

// Order returns the node handles in construction order.
func (c *Construction) Order() []NodeID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.order)
}

// Len returns the number of live nodes.
func (c *Construction) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// Previous calls fn with the nodes before id in reverse construction order
// until fn returns false.
func (c *Construction) Previous(id NodeID, fn func(Element) bool) error {
	c.mu.RLock()
	el, err := c.get(id)
	if err != nil {
		c.mu.RUnlock()
		return err
	}
	before := make([]Element, 0, c.pos[el.id])
	for i := c.pos[el.id] - 1; i >= 0; i-- {
		before = append(before, c.nodes[c.order[i]].snapshot())
	}
	c.mu.RUnlock()

	for _, e := range before {
		if !fn(e) {
			break
		}
	}

	return nil
}

// get returns the live element id. Caller holds the lock.
func (c *Construction) get(id NodeID) (*element, error) {
	if id < 0 || int(id) >= len(c.nodes) || c.nodes[id] == nil {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return c.nodes[id], nil
}

func (c *Construction) appendNode(k Kind) *element {
	el := &element{
		id:       NodeID(len(c.nodes)),
		kind:     k,
		parent:   NoAlgo,
		children: make(map[AlgoID]int),
	}
	c.nodes = append(c.nodes, el)
	c.pos[el.id] = len(c.order)
	c.order = append(c.order, el.id)
	_ = c.deps.AddVertex(int(el.id))

	return el
}

// outputKinds resolves inputs and asks comp for its output kinds.
func (c *Construction) outputKinds(comp Computer, inputs []NodeID) ([]Kind, error) {
	in := make([]Kind, len(inputs))
	for i, id := range inputs {
		el, err := c.get(id)
		if err != nil {
			return nil, err
		}
		in[i] = el.kind
	}
	kinds, err := comp.OutputKinds(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", comp.Name(), err)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: %s has no outputs", ErrArity, comp.Name())
	}

	return kinds, nil
}

// checkAdoption validates IntoNodes targets against kinds and inputs.
func (c *Construction) checkAdoption(into []NodeID, kinds []Kind, inputs []NodeID) error {
	if len(into) != len(kinds) {
		return fmt.Errorf("%w: %d adopted nodes for %d outputs", ErrArity, len(into), len(kinds))
	}
	seen := make(map[NodeID]bool, len(into))
	for i, id := range into {
		el, err := c.get(id)
		if err != nil {
			return err
		}
		if el.parent != NoAlgo || seen[id] {
			return fmt.Errorf("%w: node %d", ErrNodeIsDependent, id)
		}
		seen[id] = true
		if el.kind != kinds[i] {
			return fmt.Errorf("%w: node %d is %s, output is %s", ErrKindMismatch, id, el.kind, kinds[i])
		}
		if err = c.checkAcyclic(id, inputs); err != nil {
			return err
		}
	}

	return nil
}

// checkAcyclic fails when target is one of inputs or reaches one of them.
func (c *Construction) checkAcyclic(target NodeID, inputs []NodeID) error {
	if slices.Contains(inputs, target) {
		return fmt.Errorf("%w: node %d is its own input", ErrCyclicDependency, target)
	}
	if v, ok, _ := dfs.Reachable(c.deps, int(target), toInts(inputs)...); ok {
		return fmt.Errorf("%w: node %d depends on node %d", ErrCyclicDependency, v, target)
	}

	return nil
}

// link registers a's input slots as children and dependency edges.
func (c *Construction) link(a *algorithm) {
	for _, in := range a.inputs {
		c.nodes[in].children[a.id]++
		for _, out := range a.liveOutputs() {
			_ = c.deps.AddEdge(int(in), int(out))
		}
	}
}

// unlinkOutput empties the slot of out in its parent algorithm and detaches
// the algorithm once no outputs remain.
func (c *Construction) unlinkOutput(out *element) {
	if out.parent == NoAlgo {
		return
	}
	a := c.algos[out.parent]
	for _, in := range a.inputs {
		_ = c.deps.RemoveEdge(int(in), int(out.id))
	}
	for i, o := range a.outputs {
		if o == out.id {
			a.outputs[i] = NoNode
		}
	}
	out.parent = NoAlgo
	out.constraint = nil
	if len(a.liveOutputs()) > 0 {
		return
	}
	for _, in := range a.inputs {
		if el := c.nodes[in]; el != nil {
			if el.children[a.id]--; el.children[a.id] <= 0 {
				delete(el.children, a.id)
			}
		}
	}
	c.algos[a.id] = nil
}

// rethread stably re-sorts order[from:] so every node follows its inputs.
func (c *Construction) rethread(from int) {
	tail, err := dfs.TopologicalSort(c.deps, toInts(c.order[from:]))
	if err != nil {
		// unreachable after the cycle pre-check
		c.log.Error("re-thread failed", zap.Error(err))
		return
	}
	for i, v := range tail {
		c.order[from+i] = NodeID(v)
	}
	c.reindex(from)
}

func (c *Construction) reindex(from int) {
	for i := from; i < len(c.order); i++ {
		c.pos[c.order[i]] = i
	}
}

// reject logs and counts a refused edit and returns err unchanged.
func (c *Construction) reject(op string, err error) error {
	c.log.Warn("edit rejected", zap.String("op", op), zap.Error(err))
	c.metrics.rejected(err)

	return err
}

func toInts(ids []NodeID) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id != NoNode {
			out = append(out, int(id))
		}
	}

	return out
}
