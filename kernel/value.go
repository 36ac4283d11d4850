package kernel

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/path"
)

// Kind is the fixed type tag of a node.
type Kind int

const (
	KindNumber Kind = iota
	KindPoint
	KindPoint3D
	KindVector
	KindVector3D
	KindLine
	KindRay
	KindSegment
	KindEquation
	KindText
)

var kindNames = [...]string{
	KindNumber:   "number",
	KindPoint:    "point",
	KindPoint3D:  "point3d",
	KindVector:   "vector",
	KindVector3D: "vector3d",
	KindLine:     "line",
	KindRay:      "ray",
	KindSegment:  "segment",
	KindEquation: "equation",
	KindText:     "text",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown kind %q", ErrKindMismatch, s)
}

// IsPath reports whether nodes of this kind carry the path capability.
func (k Kind) IsPath() bool {
	switch k {
	case KindLine, KindRay, KindSegment:
		return true
	default:
		return false
	}
}

// Value is the payload of a node. The set of variants is closed.
type Value interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Equal reports exact equality with another value of any kind.
	Equal(Value) bool

	valid() bool
}

// Number is a real scalar.
type Number float64

// Point is a 2D point in homogeneous coordinates.
type Point struct{ geom.Coords }

// Point3D is a point in space.
type Point3D struct{ X, Y, Z float64 }

// Vector is a free 2D vector.
type Vector struct{ X, Y float64 }

// Vector3D is a free vector in space.
type Vector3D struct{ X, Y, Z float64 }

// Line is an infinite line; Start optionally anchors its parametrization.
type Line struct {
	Carrier geom.Line
	Start   geom.Coords
}

// Ray is the half line of Carrier starting at Start in the carrier direction.
type Ray struct {
	Carrier geom.Line
	Start   geom.Coords
	// AllowOutlyingIntersections accepts intersection points on the carrier
	// beyond the start point.
	AllowOutlyingIntersections bool
}

// Segment is the closed segment between Start and End.
type Segment struct{ Start, End geom.Coords }

// Equation is an algebraic equation in the named variables.
type Equation struct {
	Text string
	Vars []string
}

// Text is a plain string value.
type Text string

// NewPoint returns the finite point (x, y).
func NewPoint(x, y float64) Point { return Point{geom.Point(x, y)} }

func (Number) Kind() Kind   { return KindNumber }
func (Point) Kind() Kind    { return KindPoint }
func (Point3D) Kind() Kind  { return KindPoint3D }
func (Vector) Kind() Kind   { return KindVector }
func (Vector3D) Kind() Kind { return KindVector3D }
func (Line) Kind() Kind     { return KindLine }
func (Ray) Kind() Kind      { return KindRay }
func (Segment) Kind() Kind  { return KindSegment }
func (Equation) Kind() Kind { return KindEquation }
func (Text) Kind() Kind     { return KindText }

func (v Number) Equal(o Value) bool {
	w, ok := o.(Number)
	return ok && same(float64(v), float64(w))
}

func (v Point) Equal(o Value) bool {
	w, ok := o.(Point)
	return ok && sameCoords(v.Coords, w.Coords)
}

func (v Point3D) Equal(o Value) bool {
	w, ok := o.(Point3D)
	return ok && same(v.X, w.X) && same(v.Y, w.Y) && same(v.Z, w.Z)
}

func (v Vector) Equal(o Value) bool {
	w, ok := o.(Vector)
	return ok && same(v.X, w.X) && same(v.Y, w.Y)
}

func (v Vector3D) Equal(o Value) bool {
	w, ok := o.(Vector3D)
	return ok && same(v.X, w.X) && same(v.Y, w.Y) && same(v.Z, w.Z)
}

func (v Line) Equal(o Value) bool {
	w, ok := o.(Line)
	return ok && sameLine(v.Carrier, w.Carrier) && sameCoords(v.Start, w.Start)
}

func (v Ray) Equal(o Value) bool {
	w, ok := o.(Ray)
	return ok && sameLine(v.Carrier, w.Carrier) && sameCoords(v.Start, w.Start) &&
		v.AllowOutlyingIntersections == w.AllowOutlyingIntersections
}

func (v Segment) Equal(o Value) bool {
	w, ok := o.(Segment)
	return ok && sameCoords(v.Start, w.Start) && sameCoords(v.End, w.End)
}

func (v Equation) Equal(o Value) bool {
	w, ok := o.(Equation)
	return ok && v.Text == w.Text && slices.Equal(v.Vars, w.Vars)
}

func (v Text) Equal(o Value) bool {
	w, ok := o.(Text)
	return ok && v == w
}

func (v Number) valid() bool   { return !math.IsNaN(float64(v)) }
func (v Point) valid() bool    { return v.IsDefined() }
func (v Point3D) valid() bool  { return finite(v.X, v.Y, v.Z) }
func (v Vector) valid() bool   { return finite(v.X, v.Y) }
func (v Vector3D) valid() bool { return finite(v.X, v.Y, v.Z) }
func (v Line) valid() bool     { return v.Carrier.IsDefined() }
func (v Ray) valid() bool      { return v.Carrier.IsDefined() && v.Start.IsFinite() }
func (v Segment) valid() bool  { return v.Start.IsFinite() && v.End.IsFinite() }
func (Equation) valid() bool   { return true }
func (Text) valid() bool       { return true }

// AsPath returns the path capability of v, if its kind has one.
func AsPath(v Value) (path.Path, bool) {
	switch p := v.(type) {
	case Line:
		return path.NewLine(p.Carrier, p.Start), true
	case Ray:
		return path.NewRay(p.Carrier, p.Start), true
	case Segment:
		return path.NewSegment(p.Start, p.End), true
	default:
		return nil, false
	}
}

// Coerce converts v to kind to where a lossless or one-way conversion exists:
// identity, point3d ↔ point and vector3d ↔ vector. The 3D → 2D direction drops z.
func Coerce(v Value, to Kind) (Value, bool) {
	if v.Kind() == to {
		return v, true
	}
	switch w := v.(type) {
	case Point3D:
		if to == KindPoint {
			return NewPoint(w.X, w.Y), true
		}
	case Point:
		if to == KindPoint3D && w.Z != 0 {
			q := w.Normalized()
			return Point3D{X: q.X, Y: q.Y}, true
		}
	case Vector3D:
		if to == KindVector {
			return Vector{X: w.X, Y: w.Y}, true
		}
	case Vector:
		if to == KindVector3D {
			return Vector3D{X: w.X, Y: w.Y}, true
		}
	}

	return nil, false
}

func same(a, b float64) bool { return a == b || (math.IsNaN(a) && math.IsNaN(b)) }

func sameCoords(a, b geom.Coords) bool { return same(a.X, b.X) && same(a.Y, b.Y) && same(a.Z, b.Z) }

func sameLine(a, b geom.Line) bool { return same(a.X, b.X) && same(a.Y, b.Y) && same(a.Z, b.Z) }

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
