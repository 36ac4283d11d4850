package geom

import "math"

// Dot returns the scalar product of v and w.
func Dot(v, w Vec) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the homogeneous cross product a × b.
// Joining two points or meeting two lines are both cross products.
func Cross(a, b Coords) Coords {
	return Coords{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Join returns the line through a and b.
// The result is degenerate (IsDefined false) when a and b coincide.
func Join(a, b Coords) Line {
	c := Cross(a, b)

	return Line{X: c.X, Y: c.Y, Z: c.Z}
}

// Meet returns the intersection point of l and m (Z = 0 for parallel lines).
func Meet(l, m Line) Coords {
	return Cross(Coords{X: l.X, Y: l.Y, Z: l.Z}, Coords{X: m.X, Y: m.Y, Z: m.Z})
}

// LineThrough returns the line through p with direction d.
// The returned line satisfies Direction() == d.
func LineThrough(p Coords, d Vec) Line {
	q := p.Normalized()
	// X·x + Y·y + Z = 0 with (Y, -X) = d  ⇒  X = -d.Y, Y = d.X
	l := Line{X: -d.Y, Y: d.X}
	l.Z = -(l.X*q.X + l.Y*q.Y)

	return l
}

// Distance returns the perpendicular distance from p to l.
// Returns +Inf for points at infinity and NaN for a degenerate line.
func Distance(l Line, p Coords) float64 {
	if !l.IsDefined() {
		return math.NaN()
	}
	if p.Z == 0 {
		return math.Inf(1)
	}
	q := p.Normalized()

	return math.Abs(l.X*q.X+l.Y*q.Y+l.Z) / math.Hypot(l.X, l.Y)
}

// Project returns the orthogonal projection of p onto l.
func Project(l Line, p Coords) Coords {
	if !l.IsDefined() || !p.IsDefined() {
		return Undefined()
	}
	q := p.Normalized()
	n2 := l.X*l.X + l.Y*l.Y
	s := (l.X*q.X + l.Y*q.Y + l.Z) / n2

	return Coords{X: q.X - s*l.X, Y: q.Y - s*l.Y, Z: 1}
}

// ParameterAlong returns t such that start + t·d is the orthogonal
// projection of p onto the line through start with direction d.
// Returns NaN when d is the zero vector.
func ParameterAlong(start Vec, d Vec, p Vec) float64 {
	n2 := Dot(d, d)
	if n2 == 0 {
		return math.NaN()
	}

	return Dot(p.Sub(start), d) / n2
}

// Equal reports whether a and b describe the same point within eps.
// Points at infinity are compared by direction.
func Equal(a, b Coords, eps float64) bool {
	if !a.IsDefined() || !b.IsDefined() {
		return false
	}
	if (a.Z == 0) != (b.Z == 0) {
		return false
	}
	if a.Z == 0 {
		return math.Abs(a.X*b.Y-a.Y*b.X) < eps && Dot(Vec{a.X, a.Y}, Vec{b.X, b.Y}) > 0
	}
	p, q := a.Normalized(), b.Normalized()

	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// SameDirection reports whether l and m are parallel and oriented alike.
func SameDirection(l, m Line, eps float64) bool {
	d, e := l.Direction(), m.Direction()

	return math.Abs(d.X*e.Y-d.Y*e.X) < eps && Dot(d, e) > 0
}
