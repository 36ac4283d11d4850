package scenario

import (
	"math"

	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/kernel"
)

// approxEqual compares got with want within eps. Lines compare by oriented
// carrier, so any two points along the line in its direction describe it.
func approxEqual(got, want kernel.Value, eps float64) bool {
	switch w := want.(type) {
	case kernel.Number:
		g, ok := got.(kernel.Number)
		return ok && near(float64(g), float64(w), eps)
	case kernel.Point:
		g, ok := got.(kernel.Point)
		return ok && geom.Equal(g.Coords, w.Coords, eps)
	case kernel.Point3D:
		g, ok := got.(kernel.Point3D)
		return ok && near(g.X, w.X, eps) && near(g.Y, w.Y, eps) && near(g.Z, w.Z, eps)
	case kernel.Vector:
		g, ok := got.(kernel.Vector)
		return ok && near(g.X, w.X, eps) && near(g.Y, w.Y, eps)
	case kernel.Vector3D:
		g, ok := got.(kernel.Vector3D)
		return ok && near(g.X, w.X, eps) && near(g.Y, w.Y, eps) && near(g.Z, w.Z, eps)
	case kernel.Line:
		g, ok := got.(kernel.Line)
		return ok && sameCarrier(g.Carrier, w.Carrier, w.Start, eps)
	case kernel.Ray:
		g, ok := got.(kernel.Ray)
		return ok && sameCarrier(g.Carrier, w.Carrier, w.Start, eps) &&
			geom.Equal(g.Start, w.Start, eps)
	case kernel.Segment:
		g, ok := got.(kernel.Segment)
		return ok && geom.Equal(g.Start, w.Start, eps) && geom.Equal(g.End, w.End, eps)
	}

	return got.Equal(want)
}

func sameCarrier(got, want geom.Line, on geom.Coords, eps float64) bool {
	return geom.SameDirection(got, want, eps) && geom.Distance(got, on) <= eps
}

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }
