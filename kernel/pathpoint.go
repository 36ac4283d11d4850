package kernel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/path"
)

// pathPoint is the computer behind CreatePointOnPath. Its output depends on
// the stored parameter, so the construction resolves it itself.
type pathPoint struct{}

func (pathPoint) Name() string { return "PointOnPath" }

func (pathPoint) OutputKinds(in []Kind) ([]Kind, error) {
	if len(in) != 1 {
		return nil, fmt.Errorf("%w: want 1 input, got %d", ErrArity, len(in))
	}
	if !in[0].IsPath() {
		return nil, fmt.Errorf("%w: %s", ErrNotAPath, in[0])
	}

	return []Kind{KindPoint}, nil
}

func (pathPoint) Compute([]Value) ([]Value, error) { return nil, ErrUndefined }

// CreatePointOnPath creates a point constrained to pathNode, placed at the
// closest legal position to raw.
func (c *Construction) CreatePointOnPath(pathNode NodeID, raw geom.Coords) (NodeID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	host, err := c.get(pathNode)
	if err != nil {
		return NoNode, err
	}
	if !host.kind.IsPath() {
		return NoNode, c.reject("on_path", fmt.Errorf("%w: node %d is %s", ErrNotAPath, pathNode, host.kind))
	}

	a := &algorithm{id: AlgoID(len(c.algos)), computer: pathPoint{}, inputs: []NodeID{pathNode}}
	c.algos = append(c.algos, a)
	el := c.appendNode(KindPoint)
	el.parent = a.id
	el.constraint = &PathConstraint{Path: pathNode}
	a.outputs = []NodeID{el.id}
	c.link(a)
	c.resolvePointChanged(el, Point{raw})
	c.metrics.computed(a.computer.Name())
	c.log.Debug("point on path created",
		zap.Int("node", int(el.id)), zap.Int("path", int(pathNode)), zap.Float64("t", el.constraint.T))
	c.metrics.setNodes(len(c.order))

	return el.id, nil
}

// PointChanged moves a point to raw. A path-constrained point is projected
// onto its path and clamped into the parameter range; a free point takes raw
// as is. Dependents are propagated in both cases.
func (c *Construction) PointChanged(id NodeID, raw geom.Coords) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.get(id)
	if err != nil {
		return err
	}
	if el.kind != KindPoint {
		return c.reject("move", fmt.Errorf("%w: node %d is %s", ErrKindMismatch, id, el.kind))
	}
	switch {
	case el.constraint != nil:
		c.resolvePointChanged(el, Point{raw})
	case el.parent == NoAlgo:
		el.setValue(Point{raw})
	default:
		return c.reject("move", fmt.Errorf("%w: node %d", ErrNodeIsDependent, id))
	}
	c.propagate(nil, id)

	return nil
}

// PathChanged re-resolves a path-constrained point after its path geometry
// changed, keeping its parameter, and propagates to its dependents.
func (c *Construction) PathChanged(id NodeID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.get(id)
	if err != nil {
		return err
	}
	if el.constraint == nil {
		return fmt.Errorf("%w: node %d", ErrNotOnPath, id)
	}
	c.resolvePathChanged(el)
	c.propagate(nil, id)

	return nil
}

// Parameter returns the path parameter of a constrained point.
func (c *Construction) Parameter(id NodeID) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	el, err := c.get(id)
	if err != nil {
		return 0, err
	}
	if el.constraint == nil {
		return 0, fmt.Errorf("%w: node %d", ErrNotOnPath, id)
	}

	return el.constraint.T, nil
}

// IsOnPath reports whether p lies on the path held by pathNode within eps.
// A non-positive eps selects Config.Epsilon. An undefined path contains no
// points.
func (c *Construction) IsOnPath(pathNode NodeID, p geom.Coords, eps float64) (bool, error) {
	pth, _, err := c.pathAt(pathNode)
	if err != nil || pth == nil {
		return false, err
	}

	return path.IsOnPath(pth, p, c.eps(eps)), nil
}

// IsIntersectionPointIncident is IsOnPath, relaxed to the full carrier for
// rays that allow outlying intersections.
func (c *Construction) IsIntersectionPointIncident(pathNode NodeID, p geom.Coords, eps float64) (bool, error) {
	pth, v, err := c.pathAt(pathNode)
	if err != nil || pth == nil {
		return false, err
	}
	r, isRay := v.(Ray)

	return path.IsIntersectionPointIncident(pth, p, c.eps(eps), isRay && r.AllowOutlyingIntersections), nil
}

// pathAt returns the path capability and value of node id; the path is nil
// when the node is undefined.
func (c *Construction) pathAt(id NodeID) (path.Path, Value, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	el, err := c.get(id)
	if err != nil {
		return nil, nil, err
	}
	if !el.kind.IsPath() {
		return nil, nil, fmt.Errorf("%w: node %d is %s", ErrNotAPath, id, el.kind)
	}
	if !el.defined {
		return nil, el.value, nil
	}
	p, _ := AsPath(el.value)

	return p, el.value, nil
}

func (c *Construction) eps(eps float64) float64 {
	if eps > 0 {
		return eps
	}

	return c.cfg.Epsilon
}
