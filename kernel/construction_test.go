package kernel_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokernel/algos"
	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/kernel"
)

// TestPropagation_DiamondComputesOnce checks that fan-in never triggers a
// second computation within one pass.
func TestPropagation_DiamondComputesOnce(t *testing.T) {
	c := kernel.New()
	a := free(t, c, kernel.Number(1), "a")
	b := derive(t, c, add, "b", a, a)
	d1 := derive(t, c, add, "c", a, a)
	var n int
	d := derive(t, c, counting{Computer: add, n: &n}, "d", b, d1)
	require.Equal(t, 1, n)

	st, err := c.SetValueStats(a, kernel.Number(5))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, kernel.PassStats{Dirty: 4, Computed: 3}, st)
	assert.Equal(t, kernel.Number(20), value(t, c, d))
	require.NoError(t, c.Validate())
}

func TestPropagation_MultiOutputComputesOnce(t *testing.T) {
	c := kernel.New()
	v := free(t, c, kernel.Vector{X: 3, Y: 4}, "v")
	var n int
	_, outs, err := c.CreateAlgorithm(split{n: &n}, []kernel.NodeID{v}, kernel.WithLabels("x", "y"))
	require.NoError(t, err)
	s := derive(t, c, add, "s", outs[0], outs[1])
	assert.Equal(t, kernel.Number(7), value(t, c, s))

	require.NoError(t, c.SetValue(v, kernel.Vector{X: 1, Y: 1}))
	assert.Equal(t, 2, n)
	assert.Equal(t, kernel.Number(2), value(t, c, s))
}

func TestSetValue_Errors(t *testing.T) {
	c := kernel.New()
	a := free(t, c, kernel.Number(1), "")
	b := derive(t, c, add, "", a, a)

	assert.ErrorIs(t, c.SetValue(b, kernel.Number(3)), kernel.ErrNodeIsDependent)
	assert.ErrorIs(t, c.SetValue(a, kernel.NewPoint(0, 0)), kernel.ErrKindMismatch)
	assert.ErrorIs(t, c.SetValue(99, kernel.Number(0)), kernel.ErrNodeNotFound)
	_, _, err := c.CreateAlgorithm(add, []kernel.NodeID{a})
	assert.ErrorIs(t, err, kernel.ErrArity)
}

// TestCreateAlgorithm_CycleLeavesConstructionUnchanged adopts a node that its
// own input depends on.
func TestCreateAlgorithm_CycleLeavesConstructionUnchanged(t *testing.T) {
	c := kernel.New()
	a := free(t, c, kernel.Number(1), "a")
	b := derive(t, c, add, "b", a, a)
	before := c.Order()
	beforeA, _ := c.Element(a)
	beforeB, _ := c.Element(b)

	_, _, err := c.CreateAlgorithm(add, []kernel.NodeID{b, b}, kernel.IntoNodes(a))
	require.ErrorIs(t, err, kernel.ErrCyclicDependency)
	_, _, err = c.CreateAlgorithm(add, []kernel.NodeID{a, a}, kernel.IntoNodes(a))
	require.ErrorIs(t, err, kernel.ErrCyclicDependency)

	if diff := cmp.Diff(before, c.Order()); diff != "" {
		t.Fatalf("order changed (-want +got):\n%s", diff)
	}
	afterA, _ := c.Element(a)
	afterB, _ := c.Element(b)
	assert.Equal(t, beforeA, afterA)
	assert.Equal(t, beforeB, afterB)
	require.NoError(t, c.Validate())
}

// TestCreateAlgorithm_IntoNodes adopts a free node that already has
// dependents and re-threads the order after the new inputs.
func TestCreateAlgorithm_IntoNodes(t *testing.T) {
	c := kernel.New()
	x := free(t, c, kernel.Number(1), "x")
	y := derive(t, c, add, "y", x, x)
	p := free(t, c, kernel.Number(4), "p")

	_, outs, err := c.CreateAlgorithm(algos.Multiply{}, []kernel.NodeID{p, p}, kernel.IntoNodes(x))
	require.NoError(t, err)
	assert.Equal(t, []kernel.NodeID{x}, outs)
	assert.Equal(t, []kernel.NodeID{p, x, y}, c.Order())
	assert.Equal(t, kernel.Number(32), value(t, c, y))
	assert.ErrorIs(t, c.SetValue(x, kernel.Number(0)), kernel.ErrNodeIsDependent)
	require.NoError(t, c.Validate())
}

// TestCreateAlgorithm_IntoNodesKeepsOwnLabel lets an adopted node keep or
// change its label but not take another node's.
func TestCreateAlgorithm_IntoNodesKeepsOwnLabel(t *testing.T) {
	c := kernel.New()
	x := free(t, c, kernel.Number(1), "x")
	z := free(t, c, kernel.Number(2), "z")
	p := free(t, c, kernel.Number(4), "p")

	_, _, err := c.CreateAlgorithm(add, []kernel.NodeID{p, p}, kernel.IntoNodes(x), kernel.WithLabels("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", c.Label(x))
	assert.Equal(t, kernel.Number(8), value(t, c, x))

	_, _, err = c.CreateAlgorithm(add, []kernel.NodeID{p, p}, kernel.IntoNodes(z), kernel.WithLabels("p"))
	assert.ErrorIs(t, err, kernel.ErrLabelTaken)
	_, _, err = c.CreateAlgorithm(add, []kernel.NodeID{p, p}, kernel.IntoNodes(z), kernel.WithLabels("w"))
	require.NoError(t, err)
	assert.Equal(t, "w", c.Label(z))
	_, ok := c.Lookup("z")
	assert.False(t, ok)
}

// TestUndefined_PropagatesAndHeals makes a ray degenerate and repairs it.
func TestUndefined_PropagatesAndHeals(t *testing.T) {
	c := kernel.New()
	a := free(t, c, kernel.NewPoint(0, 0), "A")
	b := free(t, c, kernel.NewPoint(1, 0), "B")
	r := derive(t, c, algos.JoinPointsRay{}, "r", a, b)
	v := derive(t, c, algos.Direction{}, "v", r)
	m := derive(t, c, algos.Midpoint{}, "M", a, b)

	st, err := c.SetValueStats(b, kernel.NewPoint(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, st.Undefined)
	assert.False(t, defined(t, c, r))
	assert.False(t, defined(t, c, v))
	assert.True(t, defined(t, c, m), "independent branch stays defined")

	require.NoError(t, c.SetValue(b, kernel.NewPoint(2, 0)))
	assert.Equal(t, kernel.Vector{X: 2, Y: 0}, value(t, c, v))
}

func TestUndefinedTolerant(t *testing.T) {
	c := kernel.New()
	a := free(t, c, kernel.NewPoint(0, 0), "A")
	b := free(t, c, kernel.NewPoint(1, 0), "B")
	r := derive(t, c, algos.JoinPointsSegment{}, "s", a, b)
	v := derive(t, c, algos.Direction{}, "v", r)
	w := derive(t, c, algos.Multiply{}, "w", v, v)
	f := derive(t, c, fallback{}, "f", w)
	assert.Equal(t, kernel.Number(1), value(t, c, f))

	require.NoError(t, c.SetValue(b, kernel.Point{Coords: geom.Direction(1, 0)}))
	assert.False(t, defined(t, c, w))
	assert.Equal(t, kernel.Number(0), value(t, c, f))
}

func TestPruneUnchanged(t *testing.T) {
	cfg := kernel.DefaultConfig()
	cfg.PruneUnchanged = true
	c := kernel.New(kernel.WithConfig(cfg))
	a := free(t, c, kernel.Number(1), "a")
	z := free(t, c, kernel.Number(0), "z")
	b := derive(t, c, algos.Multiply{}, "b", a, z)
	var n int
	derive(t, c, counting{Computer: add, n: &n}, "c", b, b)

	st, err := c.SetValueStats(a, kernel.Number(2))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Computed)
	assert.Equal(t, 1, n)
}

func TestLabels(t *testing.T) {
	c := kernel.New()
	p := free(t, c, kernel.NewPoint(1, 2), "")
	n := free(t, c, kernel.Number(3), "")

	l, err := c.EnsureLabel(p)
	require.NoError(t, err)
	assert.Equal(t, "A", l)
	l, err = c.EnsureLabel(n)
	require.NoError(t, err)
	assert.Equal(t, "a", l)

	assert.ErrorIs(t, c.SetLabel(n, "A"), kernel.ErrLabelTaken)
	assert.ErrorIs(t, c.SetLabel(n, "1x"), kernel.ErrInvalidLabel)
	require.NoError(t, c.SetLabel(n, "k_1"))
	id, ok := c.Lookup("k_1")
	assert.True(t, ok)
	assert.Equal(t, n, id)
	_, ok = c.Lookup("a")
	assert.False(t, ok)

	q := free(t, c, kernel.NewPoint(0, 0), "")
	l, _ = c.EnsureLabel(q)
	assert.Equal(t, "B", l)
}

func TestDefaultLabeler_Suffixes(t *testing.T) {
	taken := func(s string) bool { return len(s) == 1 }
	assert.Equal(t, "A_1", kernel.DefaultLabeler(kernel.KindPoint, taken))
	assert.Equal(t, "eq1", kernel.DefaultLabeler(kernel.KindEquation, taken))
	assert.Equal(t, "f_1", kernel.DefaultLabeler(kernel.KindRay, taken))
}

func TestPrevious(t *testing.T) {
	c := kernel.New()
	a := free(t, c, kernel.Number(1), "a")
	b := free(t, c, kernel.Number(2), "b")
	d := free(t, c, kernel.Number(3), "d")

	var seen []kernel.NodeID
	require.NoError(t, c.Previous(d, func(e kernel.Element) bool {
		seen = append(seen, e.ID)
		return true
	}))
	assert.Equal(t, []kernel.NodeID{b, a}, seen)

	seen = nil
	require.NoError(t, c.Previous(d, func(e kernel.Element) bool {
		seen = append(seen, e.ID)
		return false
	}))
	assert.Equal(t, []kernel.NodeID{b}, seen)
}
