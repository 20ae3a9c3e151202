// SPDX-License-Identifier: MIT
// Package core_test verifies Builder validation and Graph accessor contracts.

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/internal/fixture"
)

// TestBuilder_Errors verifies per-record and cross-record validation.
func TestBuilder_Errors(t *testing.T) {
	b := core.NewBuilder()
	require.ErrorIs(t, b.AddNode("", 1), core.ErrEmptyNodeID)
	require.ErrorIs(t, b.AddNode("AA", -1), core.ErrBadYield)
	require.ErrorIs(t, b.AddNode("AA", 0, core.Edge{To: "BB", Cost: 0}), core.ErrBadCost)
	require.ErrorIs(t, b.AddNode("AA", 0, core.Edge{To: "", Cost: 1}), core.ErrEmptyNodeID)

	// dangling neighbor
	require.NoError(t, b.AddNode("AA", 0, core.Tunnel("ZZ")))
	_, err := b.Build()
	require.ErrorIs(t, err, core.ErrDanglingEdge)

	// missing start
	b2 := core.NewBuilder(core.WithStart("QQ"))
	require.NoError(t, b2.AddNode("AA", 0))
	_, err = b2.Build()
	require.ErrorIs(t, err, core.ErrStartNotFound)

	// empty builder has no start either
	_, err = core.NewBuilder().Build()
	require.ErrorIs(t, err, core.ErrStartNotFound)
}

// TestBuilder_TooManyValves verifies the Set width limit.
func TestBuilder_TooManyValves(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0))
	for i := 0; i <= core.MaxValves; i++ {
		require.NoError(t, b.AddNode(string(rune(0x100+i)), 1))
	}
	_, err := b.Build()
	require.ErrorIs(t, err, core.ErrTooManyValves)
}

// TestBuilder_TotalYieldOverflow rejects yields whose sum wraps past MaxInt.
func TestBuilder_TotalYieldOverflow(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0, core.Tunnel("BB")))
	require.NoError(t, b.AddNode("BB", math.MaxInt, core.Tunnel("CC")))
	require.NoError(t, b.AddNode("CC", 1, core.Tunnel("BB")))
	_, err := b.Build()
	require.ErrorIs(t, err, core.ErrBadYield)

	// exactly MaxInt still fits
	b = core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0, core.Tunnel("BB")))
	require.NoError(t, b.AddNode("BB", math.MaxInt-1, core.Tunnel("CC")))
	require.NoError(t, b.AddNode("CC", 1, core.Tunnel("BB")))
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, g.TotalYield())
}

// TestLineFixture_IDs verifies that long chains keep decimal node IDs.
func TestLineFixture_IDs(t *testing.T) {
	g := fixture.Line(make([]int, 12)...)
	for _, id := range []string{"AA", "N1", "N9", "N10", "N12"} {
		assert.True(t, g.Has(id), id)
	}
	assert.False(t, g.Has("N:"))
	assert.Equal(t, 13, g.Len())
}

// TestBuilder_LastWriteWins verifies that duplicate IDs overwrite.
func TestBuilder_LastWriteWins(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 5, core.Tunnel("BB")))
	require.NoError(t, b.AddNode("BB", 0, core.Tunnel("AA")))
	require.NoError(t, b.AddNode("AA", 7))
	require.Equal(t, 2, b.Len())

	g, err := b.Build()
	require.NoError(t, err)
	n, err := g.Node("AA")
	require.NoError(t, err)
	assert.Equal(t, 7, n.Yield)
	assert.Empty(t, n.Edges)
}

// TestBuilder_CopiesEdges verifies that caller slices do not alias the graph.
func TestBuilder_CopiesEdges(t *testing.T) {
	edges := []core.Edge{core.Tunnel("BB")}
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0, edges...))
	require.NoError(t, b.AddNode("BB", 0))
	g, err := b.Build()
	require.NoError(t, err)

	edges[0].To = "ZZ"
	n, _ := g.Node("AA")
	assert.Equal(t, "BB", n.Edges[0].To)

	n.Edges[0].To = "ZZ"
	again, _ := g.Node("AA")
	assert.Equal(t, "BB", again.Edges[0].To)
}

// TestGraph_Accessors checks indices, bits and arcs on the worked network.
func TestGraph_Accessors(t *testing.T) {
	g := fixture.ExampleGraph()

	assert.Equal(t, 10, g.Len())
	assert.Equal(t, "AA", g.StartID())
	assert.Equal(t, []string{"AA", "BB", "CC", "DD", "EE", "FF", "GG", "HH", "II", "JJ"}, g.Nodes())
	assert.True(t, g.Uniform())
	assert.Equal(t, 6, g.ValveCount())
	assert.Equal(t, 13+2+20+3+22+21, g.TotalYield())
	assert.Equal(t, core.Set(0b111111), g.All())

	aa, err := g.Index("AA")
	require.NoError(t, err)
	assert.Equal(t, g.Start(), aa)
	assert.Equal(t, -1, g.Bit(aa))

	// arcs keep record order: DD, II, BB
	var got []string
	for _, a := range g.Arcs(aa) {
		got = append(got, g.ID(a.To))
		assert.Equal(t, 1, a.Cost)
	}
	assert.Equal(t, []string{"DD", "II", "BB"}, got)

	// bits follow ascending ID order among valves
	for b, i := range g.Valves() {
		assert.Equal(t, b, g.Bit(i))
		assert.Positive(t, g.Yield(i))
	}

	_, err = g.Index("ZZ")
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
	_, err = g.Node("ZZ")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.False(t, g.Has("ZZ"))
}

// TestGraph_NonUniform verifies that a weighted edge clears Uniform.
func TestGraph_NonUniform(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0, core.Edge{To: "BB", Cost: 3}))
	require.NoError(t, b.AddNode("BB", 4, core.Tunnel("AA")))
	g, err := b.Build()
	require.NoError(t, err)
	assert.False(t, g.Uniform())
	assert.Equal(t, 3, g.Arcs(g.Start())[0].Cost)
}
