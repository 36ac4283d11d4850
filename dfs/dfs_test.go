package dfs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokernel/core"
	"github.com/katalvlaran/geokernel/dfs"
)

func build(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for v := 0; v < n; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestReachable covers direct, transitive, self and negative answers.
func TestReachable(t *testing.T) {
	g := build(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4})

	v, ok, err := dfs.Reachable(g, 0, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok, err = dfs.Reachable(g, 0, 4, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, _ = dfs.Reachable(g, 1, 1)
	assert.True(t, ok, "a vertex reaches itself")
	assert.Equal(t, 1, v)

	_, ok, _ = dfs.Reachable(g, 2)
	assert.False(t, ok, "no targets")

	_, _, err = dfs.Reachable(g, 9, 0)
	assert.ErrorIs(t, err, dfs.ErrVertexNotFound)
	_, _, err = dfs.Reachable(nil, 0, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestDetectCycle reports nil for a DAG and a closed cycle otherwise.
func TestDetectCycle(t *testing.T) {
	cyc, err := dfs.DetectCycle(build(t, 3, [2]int{0, 1}, [2]int{1, 2}))
	require.NoError(t, err)
	assert.Nil(t, cyc)

	cyc, err = dfs.DetectCycle(build(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Equal(t, []int{0, 1, 2, 0}, cyc)
}

// TestTopologicalSort_StableWhenValid leaves an already valid order untouched.
func TestTopologicalSort_StableWhenValid(t *testing.T) {
	g := build(t, 4, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 3})
	order := []int{0, 1, 2, 3}

	got, err := dfs.TopologicalSort(g, order)
	require.NoError(t, err)
	if diff := cmp.Diff(order, got); diff != "" {
		t.Fatalf("order changed (-want +got):\n%s", diff)
	}
}

// TestTopologicalSort_MovesAfterLatestInput re-threads a node and its dependent
// right after the input that forced the move.
func TestTopologicalSort_MovesAfterLatestInput(t *testing.T) {
	// order: N(0) x(1) D(2) I(3) y(4); edges I→N, N→D
	g := build(t, 5, [2]int{3, 0}, [2]int{0, 2})

	got, err := dfs.TopologicalSort(g, []int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 2, 4}, got)
}

// TestTopologicalSort_Cycle fails on a cyclic induced subgraph.
func TestTopologicalSort_Cycle(t *testing.T) {
	g := build(t, 2, [2]int{0, 1}, [2]int{1, 0})
	_, err := dfs.TopologicalSort(g, []int{0, 1})
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopologicalSort_IgnoresOutsideEdges only orders the given range.
func TestTopologicalSort_IgnoresOutsideEdges(t *testing.T) {
	g := build(t, 4, [2]int{3, 0}, [2]int{0, 1})
	got, err := dfs.TopologicalSort(g, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)
}
