// Package dijkstra_test validates Dijkstra on the valve network model:
// input validation, weighted tunnels, MaxDistance and path reconstruction.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/dijkstra"
	"github.com/katalvlaran/pressure/internal/fixture"
)

// weighted builds AA -1- BB -1- CC and a direct AA -5- CC shortcut that is longer.
func weighted(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0, core.Tunnel("BB"), core.Edge{To: "CC", Cost: 5}))
	require.NoError(t, b.AddNode("BB", 3, core.Tunnel("AA"), core.Tunnel("CC")))
	require.NoError(t, b.AddNode("CC", 4, core.Tunnel("BB"), core.Edge{To: "AA", Cost: 5}))
	require.NoError(t, b.AddNode("DD", 9)) // isolated
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := fixture.ExampleGraph()

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("AA"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("ZZ"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("AA"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

func TestDijkstra_Weighted(t *testing.T) {
	g := weighted(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("AA"))
	require.NoError(t, err)
	assert.Nil(t, prev)

	want := map[string]int{"AA": 0, "BB": 1, "CC": 2, "DD": dijkstra.Unreachable}
	for id, d := range want {
		i, _ := g.Index(id)
		assert.Equal(t, d, dist[i], id)
	}
}

func TestDijkstra_PathAndMaxDistance(t *testing.T) {
	g := fixture.ExampleGraph()
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("AA"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	hh, _ := g.Index("HH")
	assert.Equal(t, 5, dist[hh]) // AA DD EE FF GG HH
	var ids []string
	for _, i := range dijkstra.PathTo(prev, dist, hh) {
		ids = append(ids, g.ID(i))
	}
	assert.Equal(t, []string{"AA", "DD", "EE", "FF", "GG", "HH"}, ids)

	capped, prevCapped, err := dijkstra.Dijkstra(g, dijkstra.Source("AA"),
		dijkstra.WithMaxDistance(2), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, capped[hh])
	assert.Nil(t, dijkstra.PathTo(prevCapped, capped, hh))
	ee, _ := g.Index("EE")
	assert.Equal(t, 2, capped[ee])
}
