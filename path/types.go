package path

import (
	"errors"
	"math"

	"github.com/katalvlaran/geokernel/geom"
)

// ErrUndefinedPath indicates the path geometry is degenerate.
var ErrUndefinedPath = errors.New("path: undefined path geometry")

// Path is the parametrization capability of a shape.
type Path interface {
	// PointOnPath returns the point for parameter t.
	PointOnPath(t float64) geom.Coords

	// PathParameter returns the parameter of the projection of p onto the
	// unbounded carrier. The result is not clamped.
	PathParameter(p geom.Coords) float64

	// MinParameter returns the smallest legal parameter (may be -Inf).
	MinParameter() float64

	// MaxParameter returns the largest legal parameter (may be +Inf).
	MaxParameter() float64

	// CarrierDistance returns the distance from p to the unbounded carrier.
	CarrierDistance(p geom.Coords) float64

	// IsDefined reports whether the geometry is usable.
	IsDefined() bool
}

// Line is a full line parametrized from an origin point along its direction.
type Line struct {
	Carrier geom.Line
	Origin  geom.Coords
}

// Ray is the half line Start + t·direction, t ≥ 0.
type Ray struct {
	Carrier geom.Line
	Start   geom.Coords
}

// Segment is Start + t·(End-Start), t ∈ [0, 1].
type Segment struct {
	Start geom.Coords
	End   geom.Coords
}

// NewLine returns a full-line path. When origin is not finite, the foot of
// the perpendicular from (0, 0) is used.
func NewLine(l geom.Line, origin geom.Coords) Line {
	if !origin.IsFinite() {
		origin = geom.Project(l, geom.Point(0, 0))
	}

	return Line{Carrier: l, Origin: origin.Normalized()}
}

// NewRay returns the ray through start with the carrier's direction.
func NewRay(l geom.Line, start geom.Coords) Ray {
	return Ray{Carrier: l, Start: start.Normalized()}
}

// NewSegment returns the segment from start to end.
func NewSegment(start, end geom.Coords) Segment {
	return Segment{Start: start.Normalized(), End: end.Normalized()}
}

// carrierParam is the shared parametrization start + t·d.
func carrierParam(start geom.Coords, d geom.Vec, p geom.Coords) float64 {
	if !p.IsFinite() {
		return math.NaN()
	}

	return geom.ParameterAlong(start.Inhom(), d, p.Inhom())
}

func carrierPoint(start geom.Coords, d geom.Vec, t float64) geom.Coords {
	if math.IsNaN(t) {
		return geom.Undefined()
	}

	return start.Inhom().Add(d.Scale(t)).Point()
}
