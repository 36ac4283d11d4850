package algos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokernel/algos"
	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/kernel"
)

func TestRegistry(t *testing.T) {
	r := algos.NewRegistry()
	c, err := r.Lookup("JoinPointsRay")
	require.NoError(t, err)
	assert.Equal(t, "JoinPointsRay", c.Name())

	_, err = r.Lookup("Nope")
	assert.ErrorIs(t, err, algos.ErrUnknownAlgorithm)
	assert.ErrorIs(t, r.Register(algos.Add{}), algos.ErrDuplicateAlgorithm)

	require.NoError(t, r.Register(algos.Expression{Template: "x = {0}"}))
	assert.Contains(t, r.Names(), "Expression")
	assert.IsNonDecreasing(t, r.Names())
}

func TestAdd_Kinds(t *testing.T) {
	kinds, err := algos.Add{}.OutputKinds([]kernel.Kind{kernel.KindPoint, kernel.KindVector})
	require.NoError(t, err)
	assert.Equal(t, []kernel.Kind{kernel.KindPoint}, kinds)

	_, err = algos.Add{}.OutputKinds([]kernel.Kind{kernel.KindNumber})
	assert.ErrorIs(t, err, kernel.ErrArity)
	_, err = algos.Add{}.OutputKinds([]kernel.Kind{kernel.KindNumber, kernel.KindText})
	assert.ErrorIs(t, err, kernel.ErrKindMismatch)
}

func TestArithmetic(t *testing.T) {
	out, err := algos.Add{}.Compute([]kernel.Value{kernel.Number(2), kernel.Number(3)})
	require.NoError(t, err)
	assert.Equal(t, kernel.Number(5), out[0])

	out, err = algos.Subtract{}.Compute([]kernel.Value{kernel.Vector{X: 3, Y: 1}, kernel.Vector{X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, kernel.Vector{X: 2, Y: 0}, out[0])

	out, err = algos.Translate{}.Compute([]kernel.Value{kernel.NewPoint(1, 1), kernel.Vector{X: 2, Y: -1}})
	require.NoError(t, err)
	assert.Equal(t, kernel.NewPoint(3, 0), out[0])

	out, err = algos.Multiply{}.Compute([]kernel.Value{kernel.Vector{X: 1, Y: 2}, kernel.Vector{X: 3, Y: 4}})
	require.NoError(t, err)
	assert.Equal(t, kernel.Number(11), out[0])

	_, err = algos.Add{}.Compute([]kernel.Value{kernel.Point{Coords: geom.Direction(1, 0)}, kernel.NewPoint(0, 0)})
	assert.ErrorIs(t, err, kernel.ErrUndefined)
}

// TestJoinPointsRay checks that the ray direction runs from the first point
// to the second.
func TestJoinPointsRay(t *testing.T) {
	out, err := algos.JoinPointsRay{}.Compute([]kernel.Value{kernel.NewPoint(0, 0), kernel.NewPoint(0, 1)})
	require.NoError(t, err)
	r := out[0].(kernel.Ray)
	assert.Equal(t, geom.Vec{X: 0, Y: 1}, r.Carrier.Direction())
	assert.Equal(t, geom.Point(0, 0), r.Start)

	_, err = algos.JoinPointsRay{}.Compute([]kernel.Value{kernel.NewPoint(1, 1), kernel.NewPoint(1, 1)})
	assert.ErrorIs(t, err, kernel.ErrUndefined)
}

func TestMidpointAndDirection(t *testing.T) {
	out, err := algos.Midpoint{}.Compute([]kernel.Value{kernel.Segment{Start: geom.Point(0, 0), End: geom.Point(4, 2)}})
	require.NoError(t, err)
	assert.Equal(t, kernel.NewPoint(2, 1), out[0])

	out, err = algos.Direction{}.Compute([]kernel.Value{kernel.Segment{Start: geom.Point(1, 1), End: geom.Point(4, 5)}})
	require.NoError(t, err)
	assert.Equal(t, kernel.Vector{X: 3, Y: 4}, out[0])

	out, err = algos.RayPointVector{}.Compute([]kernel.Value{kernel.NewPoint(1, 0), kernel.Vector{X: 0, Y: 2}})
	require.NoError(t, err)
	assert.Equal(t, geom.Vec{X: 0, Y: 2}, out[0].(kernel.Ray).Carrier.Direction())
}

// TestIntersect_Outlying rejects an intersection behind the ray start unless
// the ray allows outlying intersections.
func TestIntersect_Outlying(t *testing.T) {
	rays, err := algos.JoinPointsRay{}.Compute([]kernel.Value{kernel.NewPoint(0, 0), kernel.NewPoint(1, 0)})
	require.NoError(t, err)
	lines, err := algos.JoinPointsLine{}.Compute([]kernel.Value{kernel.NewPoint(-1, 0), kernel.NewPoint(-1, 1)})
	require.NoError(t, err)

	_, err = algos.Intersect{}.Compute([]kernel.Value{rays[0], lines[0]})
	assert.ErrorIs(t, err, kernel.ErrUndefined)

	r := rays[0].(kernel.Ray)
	r.AllowOutlyingIntersections = true
	out, err := algos.Intersect{}.Compute([]kernel.Value{r, lines[0]})
	require.NoError(t, err)
	assert.True(t, geom.Equal(geom.Point(-1, 0), out[0].(kernel.Point).Coords, 1e-12))
}

func TestSymbolic(t *testing.T) {
	out, err := algos.Expression{Template: "x + y = {0}", Vars: []string{"x", "y"}}.
		Compute([]kernel.Value{kernel.Number(2.5)})
	require.NoError(t, err)
	assert.Equal(t, kernel.Equation{Text: "x + y = 2.5", Vars: []string{"x", "y"}}, out[0])

	out, err = algos.Solve{}.Compute([]kernel.Value{
		kernel.Equation{Text: "x + y = 2", Vars: []string{"x", "y"}},
		kernel.Equation{Text: "x - y = 0", Vars: []string{"x", "y"}},
	})
	require.NoError(t, err)
	assert.Equal(t, kernel.Text("Solve[{x + y = 2, x - y = 0}, {x, y}]"), out[0])

	assert.Equal(t, "Solve[{a}]", algos.FormatSolve([]string{"a"}, nil))
	assert.Equal(t, "Solve[{a, b}, x]", algos.FormatSolve([]string{"a", "b"}, []string{"x"}))
}
