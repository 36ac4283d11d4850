package path

import (
	"math"

	"github.com/katalvlaran/geokernel/geom"
)

// Clamp restricts t to [p.MinParameter(), p.MaxParameter()].
// NaN is returned unchanged.
func Clamp(p Path, t float64) float64 {
	if math.IsNaN(t) {
		return t
	}
	if lo := p.MinParameter(); t < lo {
		return lo
	}
	if hi := p.MaxParameter(); t > hi {
		return hi
	}

	return t
}

// PointChanged resolves a dragged point: the raw position is projected to a
// parameter, the parameter is clamped, and the position is recomputed from
// the clamped parameter.
//
// Returns ErrUndefinedPath with an undefined position when the path
// geometry or the raw position is unusable.
func PointChanged(p Path, raw geom.Coords) (float64, geom.Coords, error) {
	if !p.IsDefined() {
		return math.NaN(), geom.Undefined(), ErrUndefinedPath
	}
	t := p.PathParameter(raw)
	if math.IsNaN(t) {
		return t, geom.Undefined(), ErrUndefinedPath
	}
	t = Clamp(p, t)

	return t, p.PointOnPath(t), nil
}

// PathChanged re-evaluates a kept parameter against the current path
// geometry. The parameter is clamped into range first, so a point that the
// path change pushed out of range lands on the nearest bound.
//
// Calling PathChanged twice with no path mutation in between returns the
// same parameter and position both times.
func PathChanged(p Path, t float64) (float64, geom.Coords, error) {
	if !p.IsDefined() || math.IsNaN(t) {
		return t, geom.Undefined(), ErrUndefinedPath
	}
	t = Clamp(p, t)

	return t, p.PointOnPath(t), nil
}

// IsOnPath reports whether pt lies on p within eps.
//
// Stage 1 rejects points away from the unbounded carrier; stage 2 checks the
// projected parameter against the bounds widened by eps.
func IsOnPath(p Path, pt geom.Coords, eps float64) bool {
	if !p.IsDefined() || !pt.IsDefined() {
		return false
	}
	// 1. Carrier geometry.
	if !(p.CarrierDistance(pt) < eps) {
		return false
	}
	// 2. Parameter bounds.
	t := p.PathParameter(pt)
	if math.IsNaN(t) {
		return false
	}

	return t >= p.MinParameter()-eps && t <= p.MaxParameter()+eps
}

// IsIntersectionPointIncident reports whether an intersection point counts
// as lying on p. With allowOutlying only the carrier is tested.
func IsIntersectionPointIncident(p Path, pt geom.Coords, eps float64, allowOutlying bool) bool {
	if allowOutlying {
		return p.IsDefined() && p.CarrierDistance(pt) < eps
	}

	return IsOnPath(p, pt, eps)
}
