// Package fixture holds the worked ten-valve network shared by tests across
// packages.
package fixture

import (
	"strconv"

	"github.com/katalvlaran/pressure/core"
)

// Example is the worked network in its textual record form.
const Example = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// Expected optima for the worked network.
const (
	SoloBudget = 30
	SoloBest   = 1651
	DuoBudget  = 26
	DuoBest    = 1707
)

type record struct {
	id      string
	yield   int
	tunnels []string
}

var records = []record{
	{"AA", 0, []string{"DD", "II", "BB"}},
	{"BB", 13, []string{"CC", "AA"}},
	{"CC", 2, []string{"DD", "BB"}},
	{"DD", 20, []string{"CC", "AA", "EE"}},
	{"EE", 3, []string{"FF", "DD"}},
	{"FF", 0, []string{"EE", "GG"}},
	{"GG", 0, []string{"FF", "HH"}},
	{"HH", 22, []string{"GG"}},
	{"II", 0, []string{"AA", "JJ"}},
	{"JJ", 21, []string{"II"}},
}

// ExampleGraph builds the worked network directly through core.Builder.
// It panics on error; the records are static.
func ExampleGraph() *core.Graph {
	b := core.NewBuilder()
	for _, r := range records {
		edges := make([]core.Edge, len(r.tunnels))
		for i, to := range r.tunnels {
			edges[i] = core.Tunnel(to)
		}
		if err := b.AddNode(r.id, r.yield, edges...); err != nil {
			panic(err)
		}
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	return g
}

// Line builds a chain start-n1-n2-...-nk where node i carries yields[i-1].
// The start node has zero yield. IDs are "AA", "N1", "N2" and so on in
// decimal, so chains longer than nine stay alphanumeric ("N10", "N11").
func Line(yields ...int) *core.Graph {
	b := core.NewBuilder()
	prev := core.DefaultStart
	ids := []string{prev}
	for i := range yields {
		ids = append(ids, "N"+strconv.Itoa(i+1))
	}
	for i, id := range ids {
		var edges []core.Edge
		if i > 0 {
			edges = append(edges, core.Tunnel(ids[i-1]))
		}
		if i+1 < len(ids) {
			edges = append(edges, core.Tunnel(ids[i+1]))
		}
		y := 0
		if i > 0 {
			y = yields[i-1]
		}
		if err := b.AddNode(id, y, edges...); err != nil {
			panic(err)
		}
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	return g
}
