package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/geokernel/algos"
	"github.com/katalvlaran/geokernel/kernel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// counting wraps a computer and counts Compute calls.
type counting struct {
	kernel.Computer
	n *int
}

func (c counting) Compute(in []kernel.Value) ([]kernel.Value, error) {
	*c.n++
	return c.Computer.Compute(in)
}

// split yields the coordinates of a vector as two numbers.
type split struct{ n *int }

func (split) Name() string { return "Split" }

func (split) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if len(in) != 1 || in[0] != kernel.KindVector {
		return nil, kernel.ErrKindMismatch
	}

	return []kernel.Kind{kernel.KindNumber, kernel.KindNumber}, nil
}

func (s split) Compute(in []kernel.Value) ([]kernel.Value, error) {
	*s.n++
	v := in[0].(kernel.Vector)
	return []kernel.Value{kernel.Number(v.X), kernel.Number(v.Y)}, nil
}

// fallback copies its input and yields zero for an undefined one.
type fallback struct{}

func (fallback) Name() string { return "Fallback" }

func (fallback) OutputKinds([]kernel.Kind) ([]kernel.Kind, error) {
	return []kernel.Kind{kernel.KindNumber}, nil
}

func (fallback) Compute(in []kernel.Value) ([]kernel.Value, error) {
	if in[0] == nil {
		return []kernel.Value{kernel.Number(0)}, nil
	}
	return []kernel.Value{in[0]}, nil
}

func (fallback) ToleratesUndefined() bool { return true }

func free(t *testing.T, c *kernel.Construction, v kernel.Value, label string) kernel.NodeID {
	t.Helper()
	id, err := c.CreateFreeNode(v)
	require.NoError(t, err)
	if label != "" {
		require.NoError(t, c.SetLabel(id, label))
	}

	return id
}

func derive(t *testing.T, c *kernel.Construction, comp kernel.Computer, label string, inputs ...kernel.NodeID) kernel.NodeID {
	t.Helper()
	var opts []kernel.AlgoOption
	if label != "" {
		opts = append(opts, kernel.WithLabels(label))
	}
	_, outs, err := c.CreateAlgorithm(comp, inputs, opts...)
	require.NoError(t, err)
	require.Len(t, outs, 1)

	return outs[0]
}

func value(t *testing.T, c *kernel.Construction, id kernel.NodeID) kernel.Value {
	t.Helper()
	el, err := c.Element(id)
	require.NoError(t, err)
	require.True(t, el.Defined, "node %d undefined", id)

	return el.Value
}

func defined(t *testing.T, c *kernel.Construction, id kernel.NodeID) bool {
	t.Helper()
	el, err := c.Element(id)
	require.NoError(t, err)

	return el.Defined
}

var add = algos.Add{}
