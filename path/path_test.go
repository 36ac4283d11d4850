package path_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/path"
)

func rayAB(ax, ay, bx, by float64) path.Ray {
	a, b := geom.Point(ax, ay), geom.Point(bx, by)
	return path.NewRay(geom.Join(a, b), a)
}

// TestRay_ClampNegativeParameter: a projection with t=-5 resolves to t=0 at the start point.
func TestRay_ClampNegativeParameter(t *testing.T) {
	r := rayAB(0, 0, 1, 0)
	assert.InDelta(t, -5, r.PathParameter(geom.Point(-5, 3)), geom.Eps)

	tt, p, err := path.PointChanged(r, geom.Point(-5, 3))
	require.NoError(t, err)
	assert.Equal(t, 0.0, tt)
	assert.True(t, geom.Equal(p, geom.Point(0, 0), geom.Eps))
}

// TestRay_PositiveParameterPassesThrough keeps t ≥ 0 unchanged.
func TestRay_PositiveParameterPassesThrough(t *testing.T) {
	r := rayAB(1, 1, 3, 1) // direction (2,0)
	tt, p, err := path.PointChanged(r, geom.Point(4, -2))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, tt, geom.Eps)
	assert.True(t, geom.Equal(p, geom.Point(4, 1), geom.Eps))
}

// TestPathChanged_Idempotent verifies two PathChanged calls agree.
func TestPathChanged_Idempotent(t *testing.T) {
	r := rayAB(0, 0, 0, 2)
	t1, p1, err := path.PathChanged(r, 0.5)
	require.NoError(t, err)
	t2, p2, err := path.PathChanged(r, t1)
	require.NoError(t, err)

	assert.Equal(t, t1, t2)
	assert.Equal(t, p1, p2)
	assert.True(t, geom.Equal(p1, geom.Point(0, 1), geom.Eps))
}

// TestPathChanged_ClampsOutOfRange pushes a kept parameter back into range.
func TestPathChanged_ClampsOutOfRange(t *testing.T) {
	s := path.NewSegment(geom.Point(0, 0), geom.Point(2, 0))
	tt, p, err := path.PathChanged(s, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tt)
	assert.True(t, geom.Equal(p, geom.Point(2, 0), geom.Eps))
}

// TestPathChanged_Undefined reports ErrUndefinedPath for a degenerate ray.
func TestPathChanged_Undefined(t *testing.T) {
	r := rayAB(1, 1, 1, 1)
	_, p, err := path.PathChanged(r, 0)
	assert.ErrorIs(t, err, path.ErrUndefinedPath)
	assert.False(t, p.IsDefined())
}

// TestIsOnPath_TwoStage covers the carrier rejection and the bound checks.
func TestIsOnPath_TwoStage(t *testing.T) {
	r := rayAB(0, 0, 1, 0)
	const eps = 1e-6

	assert.True(t, path.IsOnPath(r, geom.Point(5, 0), eps))
	assert.True(t, path.IsOnPath(r, geom.Point(-eps/2, 0), eps), "boundary noise is accepted")
	assert.False(t, path.IsOnPath(r, geom.Point(-1, 0), eps), "on the carrier but before the start")
	assert.False(t, path.IsOnPath(r, geom.Point(5, 0.1), eps), "off the carrier")

	s := path.NewSegment(geom.Point(0, 0), geom.Point(1, 0))
	assert.False(t, path.IsOnPath(s, geom.Point(2, 0), eps), "past the upper bound")
	assert.True(t, path.IsOnPath(s, geom.Point(1+eps/2, 0), eps))
}

// TestIsIntersectionPointIncident honours outlying intersections.
func TestIsIntersectionPointIncident(t *testing.T) {
	r := rayAB(0, 0, 1, 0)
	p := geom.Point(-3, 0)
	assert.False(t, path.IsIntersectionPointIncident(r, p, geom.Eps, false))
	assert.True(t, path.IsIntersectionPointIncident(r, p, geom.Eps, true))
}

// TestLine_Unbounded never clamps.
func TestLine_Unbounded(t *testing.T) {
	l := path.NewLine(geom.Join(geom.Point(0, 1), geom.Point(1, 1)), geom.Undefined())
	assert.True(t, math.IsInf(l.MinParameter(), -1))
	tt, p, err := path.PointChanged(l, geom.Point(-100, 4))
	require.NoError(t, err)
	assert.InDelta(t, -100, tt, geom.Eps)
	assert.True(t, geom.Equal(p, geom.Point(-100, 1), geom.Eps))
}

// TestRay_InnerPoint lies on the ray and differs from the start.
func TestRay_InnerPoint(t *testing.T) {
	r := rayAB(2, 2, 2, 5)
	p := r.InnerPoint()
	assert.True(t, path.IsOnPath(r, p, geom.Eps))
	assert.False(t, geom.Equal(p, r.Start, geom.Eps))
}
