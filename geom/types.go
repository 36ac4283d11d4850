package geom

import "math"

// Eps is the default tolerance for incidence and equality tests.
const Eps = 1e-8

// Coords is a homogeneous 2D coordinate triple.
type Coords struct {
	X, Y, Z float64
}

// Vec is an inhomogeneous 2D vector.
type Vec struct {
	X, Y float64
}

// Line holds the coefficients of X·x + Y·y + Z = 0.
type Line struct {
	X, Y, Z float64
}

// Point returns the affine point (x, y).
func Point(x, y float64) Coords { return Coords{X: x, Y: y, Z: 1} }

// Direction returns the point at infinity in direction (x, y).
func Direction(x, y float64) Coords { return Coords{X: x, Y: y, Z: 0} }

// Undefined returns coordinates with all components set to NaN.
func Undefined() Coords { return Coords{X: math.NaN(), Y: math.NaN(), Z: math.NaN()} }

// IsDefined reports whether no component is NaN.
func (c Coords) IsDefined() bool {
	return !math.IsNaN(c.X) && !math.IsNaN(c.Y) && !math.IsNaN(c.Z)
}

// IsFinite reports whether c is a defined affine point.
func (c Coords) IsFinite() bool {
	return c.IsDefined() && c.Z != 0 && !math.IsInf(c.X, 0) && !math.IsInf(c.Y, 0)
}

// Inhom returns the inhomogeneous coordinates. For Z = 0 the raw X, Y are returned.
func (c Coords) Inhom() Vec {
	if c.Z == 0 || c.Z == 1 {
		return Vec{X: c.X, Y: c.Y}
	}

	return Vec{X: c.X / c.Z, Y: c.Y / c.Z}
}

// Normalized scales a finite point to Z = 1.
func (c Coords) Normalized() Coords {
	if c.Z == 0 || c.Z == 1 {
		return c
	}

	return Coords{X: c.X / c.Z, Y: c.Y / c.Z, Z: 1}
}

// IsDefined reports whether the line has defined, non-degenerate coefficients.
func (l Line) IsDefined() bool {
	if math.IsNaN(l.X) || math.IsNaN(l.Y) || math.IsNaN(l.Z) {
		return false
	}

	return l.X != 0 || l.Y != 0
}

// Direction returns (Y, -X), the direction vector of l.
func (l Line) Direction() Vec { return Vec{X: l.Y, Y: -l.X} }

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return Vec{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec { return Vec{X: v.X - w.X, Y: v.Y - w.Y} }

// Scale returns s·v.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Point lifts v to an affine point.
func (v Vec) Point() Coords { return Coords{X: v.X, Y: v.Y, Z: 1} }
