package algos

import (
	"math"

	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/kernel"
	"github.com/katalvlaran/geokernel/path"
)

// JoinPointsLine is the line through two distinct points, parametrized from
// the first.
type JoinPointsLine struct{}

func (JoinPointsLine) Name() string { return "JoinPointsLine" }

func (j JoinPointsLine) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := expect(j.Name(), in, kernel.KindPoint, kernel.KindPoint); err != nil {
		return nil, err
	}

	return one(kernel.KindLine), nil
}

func (JoinPointsLine) Compute(in []kernel.Value) ([]kernel.Value, error) {
	a, _, l, err := join(in)
	if err != nil {
		return nil, err
	}

	return []kernel.Value{kernel.Line{Carrier: l, Start: a}}, nil
}

// JoinPointsRay is the ray from the first point through the second.
type JoinPointsRay struct{}

func (JoinPointsRay) Name() string { return "JoinPointsRay" }

func (j JoinPointsRay) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := expect(j.Name(), in, kernel.KindPoint, kernel.KindPoint); err != nil {
		return nil, err
	}

	return one(kernel.KindRay), nil
}

func (JoinPointsRay) Compute(in []kernel.Value) ([]kernel.Value, error) {
	a, _, l, err := join(in)
	if err != nil {
		return nil, err
	}

	return []kernel.Value{kernel.Ray{Carrier: l, Start: a}}, nil
}

// JoinPointsSegment is the segment between two distinct points.
type JoinPointsSegment struct{}

func (JoinPointsSegment) Name() string { return "JoinPointsSegment" }

func (j JoinPointsSegment) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := expect(j.Name(), in, kernel.KindPoint, kernel.KindPoint); err != nil {
		return nil, err
	}

	return one(kernel.KindSegment), nil
}

func (JoinPointsSegment) Compute(in []kernel.Value) ([]kernel.Value, error) {
	a, b, _, err := join(in)
	if err != nil {
		return nil, err
	}

	return []kernel.Value{kernel.Segment{Start: a, End: b}}, nil
}

// join returns the normalized points and the line through them.
func join(in []kernel.Value) (geom.Coords, geom.Coords, geom.Line, error) {
	a, b := in[0].(kernel.Point), in[1].(kernel.Point)
	if !a.IsFinite() || !b.IsFinite() {
		return a.Coords, b.Coords, geom.Line{}, kernel.ErrUndefined
	}
	p, q := a.Normalized(), b.Normalized()
	l := geom.Join(p, q)
	if !l.IsDefined() {
		return p, q, l, kernel.ErrUndefined
	}

	return p, q, l, nil
}

// RayPointVector is the ray from a point along a vector.
type RayPointVector struct{}

func (RayPointVector) Name() string { return "RayPointVector" }

func (r RayPointVector) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := expect(r.Name(), in, kernel.KindPoint, kernel.KindVector); err != nil {
		return nil, err
	}

	return one(kernel.KindRay), nil
}

func (RayPointVector) Compute(in []kernel.Value) ([]kernel.Value, error) {
	p, v := in[0].(kernel.Point), in[1].(kernel.Vector)
	d := geom.Vec{X: v.X, Y: v.Y}
	if !p.IsFinite() || d.Norm() == 0 {
		return nil, kernel.ErrUndefined
	}

	return []kernel.Value{kernel.Ray{Carrier: geom.LineThrough(p.Coords, d), Start: p.Normalized()}}, nil
}

// Midpoint is the midpoint of two points or of a segment.
type Midpoint struct{}

func (Midpoint) Name() string { return "Midpoint" }

func (m Midpoint) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if len(in) == 1 {
		if err := expect(m.Name(), in, kernel.KindSegment); err != nil {
			return nil, err
		}
		return one(kernel.KindPoint), nil
	}
	if err := expect(m.Name(), in, kernel.KindPoint, kernel.KindPoint); err != nil {
		return nil, err
	}

	return one(kernel.KindPoint), nil
}

func (Midpoint) Compute(in []kernel.Value) ([]kernel.Value, error) {
	var a, b geom.Coords
	if s, ok := in[0].(kernel.Segment); ok {
		a, b = s.Start, s.End
	} else {
		a, b = in[0].(kernel.Point).Coords, in[1].(kernel.Point).Coords
	}
	if !a.IsFinite() || !b.IsFinite() {
		return nil, kernel.ErrUndefined
	}

	return []kernel.Value{kernel.Point{Coords: a.Inhom().Add(b.Inhom()).Scale(0.5).Point()}}, nil
}

// Translate moves a point by a vector.
type Translate struct{}

func (Translate) Name() string { return "Translate" }

func (t Translate) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := expect(t.Name(), in, kernel.KindPoint, kernel.KindVector); err != nil {
		return nil, err
	}

	return one(kernel.KindPoint), nil
}

func (Translate) Compute(in []kernel.Value) ([]kernel.Value, error) {
	return Add{}.Compute(in)
}

// Direction is the direction vector of a line, ray or segment. For a segment
// it runs from start to end.
type Direction struct{}

func (Direction) Name() string { return "Direction" }

func (d Direction) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := arity(d.Name(), in, 1); err != nil {
		return nil, err
	}
	if !in[0].IsPath() {
		return nil, mismatch(d.Name(), in)
	}

	return one(kernel.KindVector), nil
}

func (Direction) Compute(in []kernel.Value) ([]kernel.Value, error) {
	switch p := in[0].(type) {
	case kernel.Line:
		return []kernel.Value{vector(p.Carrier.Direction())}, nil
	case kernel.Ray:
		return []kernel.Value{vector(p.Carrier.Direction())}, nil
	case kernel.Segment:
		return []kernel.Value{vector(p.End.Inhom().Sub(p.Start.Inhom()))}, nil
	}

	return nil, kernel.ErrUndefined
}

// Intersect is the intersection point of two paths. The point must be
// incident to both paths; rays that allow outlying intersections accept
// points on their carrier beyond the start.
type Intersect struct{}

func (Intersect) Name() string { return "Intersect" }

func (x Intersect) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := arity(x.Name(), in, 2); err != nil {
		return nil, err
	}
	if !in[0].IsPath() || !in[1].IsPath() {
		return nil, mismatch(x.Name(), in)
	}

	return one(kernel.KindPoint), nil
}

func (Intersect) Compute(in []kernel.Value) ([]kernel.Value, error) {
	l, m := carrier(in[0]), carrier(in[1])
	p := geom.Meet(l, m)
	if !p.IsDefined() || math.Abs(p.Z) < geom.Eps {
		return nil, kernel.ErrUndefined
	}
	p = p.Normalized()
	for _, v := range in {
		pth, _ := kernel.AsPath(v)
		r, isRay := v.(kernel.Ray)
		eps := geom.Eps * (1 + math.Hypot(p.X, p.Y))
		if !path.IsIntersectionPointIncident(pth, p, eps, isRay && r.AllowOutlyingIntersections) {
			return nil, kernel.ErrUndefined
		}
	}

	return []kernel.Value{kernel.Point{Coords: p}}, nil
}

func carrier(v kernel.Value) geom.Line {
	switch p := v.(type) {
	case kernel.Line:
		return p.Carrier
	case kernel.Ray:
		return p.Carrier
	case kernel.Segment:
		return geom.Join(p.Start, p.End)
	}

	return geom.Line{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
}
