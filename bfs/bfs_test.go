package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/bfs"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/internal/fixture"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "AA")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := fixture.ExampleGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "AA", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0, core.Edge{To: "BB", Cost: 2}))
	require.NoError(t, b.AddNode("BB", 1))
	wg, err := b.Build()
	require.NoError(t, err)
	_, err = bfs.BFS(wg, "AA")
	assert.ErrorIs(t, err, bfs.ErrWeightedGraph)
}

// TestBFS_Depths checks hop distances on the worked network.
func TestBFS_Depths(t *testing.T) {
	g := fixture.ExampleGraph()
	res, err := bfs.BFS(g, "AA")
	require.NoError(t, err)

	want := map[string]int{
		"AA": 0, "BB": 1, "DD": 1, "II": 1,
		"CC": 2, "EE": 2, "JJ": 2,
		"FF": 3, "GG": 4, "HH": 5,
	}
	for id, d := range want {
		i, _ := g.Index(id)
		assert.Equal(t, d, res.Depth[i], id)
	}
	assert.Len(t, res.Order, g.Len())
	assert.Equal(t, g.Start(), res.Order[0])

	hh, _ := g.Index("HH")
	path, err := res.PathTo(hh)
	require.NoError(t, err)
	assert.Len(t, path, 6)
}

// TestBFS_MaxDepth verifies that nodes beyond the limit stay unreachable.
func TestBFS_MaxDepth(t *testing.T) {
	g := fixture.ExampleGraph()
	res, err := bfs.BFS(g, "AA", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4) // AA + three neighbors

	ee, _ := g.Index("EE")
	assert.Equal(t, bfs.Unreachable, res.Depth[ee])
	_, err = res.PathTo(ee)
	assert.Error(t, err)
}

// TestBFS_HookAndCancel verifies OnVisit error propagation and cancellation.
func TestBFS_HookAndCancel(t *testing.T) {
	g := fixture.ExampleGraph()
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "AA", bfs.WithOnVisit(func(id, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "AA", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
