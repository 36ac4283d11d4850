package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokernel/bfs"
	"github.com/katalvlaran/geokernel/core"
)

// diamond builds 0→1, 0→2, 1→3, 2→3, 3→4.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for v := 0; v <= 4; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestWalk_Diamond visits each vertex once with correct depths.
func TestWalk_Diamond(t *testing.T) {
	res, err := bfs.Walk(diamond(t), []int{0})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, 2, res.Depth[3])
	assert.Equal(t, 1, res.Parent[3])
}

// TestWalk_Errors covers invalid inputs and hook aborts.
func TestWalk_Errors(t *testing.T) {
	g := diamond(t)

	_, err := bfs.Walk(nil, []int{0})
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Walk(g, []int{9})
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	stop := errors.New("stop")
	_, err = bfs.Walk(g, []int{0}, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestWalk_OnVisit reports every reachable vertex once with its depth, also
// from several roots.
func TestWalk_OnVisit(t *testing.T) {
	g := diamond(t)
	depths := make(map[int]int)
	res, err := bfs.Walk(g, []int{1, 2}, bfs.WithOnVisit(func(id, depth int) error {
		_, seen := depths[id]
		assert.False(t, seen, "vertex %d visited twice", id)
		depths[id] = depth
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 2}, depths)
	assert.False(t, res.Visited(0))
}
