package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokernel/kernel"
)

func chain(t *testing.T) (*kernel.Construction, [4]kernel.NodeID) {
	t.Helper()
	c := kernel.New()
	a := free(t, c, kernel.Number(1), "a")
	b := derive(t, c, add, "b", a, a)
	d := derive(t, c, add, "c", b, b)
	e := derive(t, c, add, "d", d, d)

	return c, [4]kernel.NodeID{a, b, d, e}
}

func TestRemove_Cascade(t *testing.T) {
	c, ids := chain(t)
	keep := free(t, c, kernel.Number(9), "k")

	removed, err := c.Remove(ids[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, removed)
	assert.Equal(t, []kernel.NodeID{keep}, c.Order())
	for _, id := range ids {
		_, err = c.Element(id)
		assert.ErrorIs(t, err, kernel.ErrNodeNotFound)
	}
	_, ok := c.Lookup("a")
	assert.False(t, ok)
	require.NoError(t, c.Validate())
}

func TestRemove_Leaf(t *testing.T) {
	c, ids := chain(t)

	removed, err := c.Remove(ids[3])
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, removed)
	assert.Equal(t, ids[:3], c.Order())

	el, err := c.Element(ids[2])
	require.NoError(t, err)
	assert.Empty(t, el.Children)
	require.NoError(t, c.Validate())

	require.NoError(t, c.SetValue(ids[0], kernel.Number(2)))
	assert.Equal(t, kernel.Number(8), value(t, c, ids[2]))
}

// TestRemove_MultiOutputSibling keeps the sibling output and its algorithm.
func TestRemove_MultiOutputSibling(t *testing.T) {
	c := kernel.New()
	v := free(t, c, kernel.Vector{X: 3, Y: 4}, "v")
	var n int
	algo, outs, err := c.CreateAlgorithm(split{n: &n}, []kernel.NodeID{v}, kernel.WithLabels("x", "y"))
	require.NoError(t, err)
	s := derive(t, c, add, "s", outs[0], outs[0])

	removed, err := c.Remove(outs[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "s"}, removed)
	_, err = c.Element(s)
	assert.ErrorIs(t, err, kernel.ErrNodeNotFound)

	alg, err := c.Algorithm(algo)
	require.NoError(t, err)
	assert.Equal(t, []kernel.NodeID{kernel.NoNode, outs[1]}, alg.Outputs)
	require.NoError(t, c.SetValue(v, kernel.Vector{X: 1, Y: 2}))
	assert.Equal(t, kernel.Number(2), value(t, c, outs[1]))

	_, err = c.Remove(outs[1])
	require.NoError(t, err)
	_, err = c.Algorithm(algo)
	assert.ErrorIs(t, err, kernel.ErrAlgorithmNotFound)
	el, _ := c.Element(v)
	assert.Empty(t, el.Children)
	require.NoError(t, c.Validate())
}

func TestRemove_NotFound(t *testing.T) {
	c := kernel.New()
	_, err := c.Remove(3)
	assert.ErrorIs(t, err, kernel.ErrNodeNotFound)
}
