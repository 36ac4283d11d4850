package path

import (
	"math"

	"github.com/katalvlaran/geokernel/geom"
)

// PointOnPath implements Path.
func (l Line) PointOnPath(t float64) geom.Coords {
	return carrierPoint(l.Origin, l.Carrier.Direction(), t)
}

// PathParameter implements Path.
func (l Line) PathParameter(p geom.Coords) float64 {
	return carrierParam(l.Origin, l.Carrier.Direction(), p)
}

// MinParameter implements Path.
func (Line) MinParameter() float64 { return math.Inf(-1) }

// MaxParameter implements Path.
func (Line) MaxParameter() float64 { return math.Inf(1) }

// CarrierDistance implements Path.
func (l Line) CarrierDistance(p geom.Coords) float64 { return geom.Distance(l.Carrier, p) }

// IsDefined implements Path.
func (l Line) IsDefined() bool { return l.Carrier.IsDefined() && l.Origin.IsFinite() }

// PointOnPath implements Path.
func (r Ray) PointOnPath(t float64) geom.Coords {
	return carrierPoint(r.Start, r.Carrier.Direction(), t)
}

// PathParameter implements Path.
func (r Ray) PathParameter(p geom.Coords) float64 {
	return carrierParam(r.Start, r.Carrier.Direction(), p)
}

// MinParameter implements Path.
func (Ray) MinParameter() float64 { return 0 }

// MaxParameter implements Path.
func (Ray) MaxParameter() float64 { return math.Inf(1) }

// CarrierDistance implements Path.
func (r Ray) CarrierDistance(p geom.Coords) float64 { return geom.Distance(r.Carrier, p) }

// IsDefined implements Path.
func (r Ray) IsDefined() bool { return r.Carrier.IsDefined() && r.Start.IsFinite() }

// InnerPoint returns a point of the ray other than its start: one
// direction step away from the start, falling back to the opposite side
// when that point is rejected by IsOnPath.
func (r Ray) InnerPoint() geom.Coords {
	d := r.Carrier.Direction()
	s := r.Start.Inhom()
	p := s.Add(d).Point()
	if !IsOnPath(r, p, geom.Eps) {
		p = s.Sub(d).Point()
	}

	return p
}

func (s Segment) direction() geom.Vec { return s.End.Inhom().Sub(s.Start.Inhom()) }

// PointOnPath implements Path.
func (s Segment) PointOnPath(t float64) geom.Coords {
	return carrierPoint(s.Start, s.direction(), t)
}

// PathParameter implements Path.
func (s Segment) PathParameter(p geom.Coords) float64 {
	return carrierParam(s.Start, s.direction(), p)
}

// MinParameter implements Path.
func (Segment) MinParameter() float64 { return 0 }

// MaxParameter implements Path.
func (Segment) MaxParameter() float64 { return 1 }

// CarrierDistance implements Path.
func (s Segment) CarrierDistance(p geom.Coords) float64 {
	return geom.Distance(geom.Join(s.Start, s.End), p)
}

// IsDefined implements Path.
func (s Segment) IsDefined() bool {
	return s.Start.IsFinite() && s.End.IsFinite() && s.direction() != (geom.Vec{})
}
