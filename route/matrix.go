// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: Shortest travel times between the start node and every valve.
// Policy:
//   - Unit-cost graphs use bfs hop counts; weighted graphs use dijkstra.
//   - Row/column 0 is the start node; row/column b+1 is valve bit b.
//   - Unreachable pairs hold Unreachable.

package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pressure/bfs"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/dijkstra"
)

// Unreachable marks a pair of stops with no connecting path.
const Unreachable = math.MaxInt

// noLimit disables the distance cap of distances.
const noLimit = -1

// Matrix holds pairwise travel times between the stops of a graph.
type Matrix struct {
	// Stops lists the node IDs: Stops[0] is the start, Stops[b+1] the valve
	// owning activation bit b.
	Stops []string

	// Dist[i][j] is the travel time in ticks from Stops[i] to Stops[j].
	Dist [][]int

	// Yield[i] is the yield of Stops[i] (0 for the start unless it is a valve).
	Yield []int

	// walks[i][j] lists the nodes entered on a shortest walk from Stops[i]
	// to Stops[j], ending with Stops[j]; nil when i == j or unreachable.
	walks [][][]string
}

// Walk returns the nodes entered on a shortest walk from Stops[i] to
// Stops[j], in order and ending with Stops[j]. The slice is shared.
func (m *Matrix) Walk(i, j int) []string {
	return m.walks[i][j]
}

// Distances computes the stop matrix of g from its designated start.
func Distances(g *core.Graph) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return distances(g, g.StartID(), noLimit)
}

// distances computes the stop matrix of g relative to start. Stops further
// than limit ticks apart (limit >= 0) are reported as Unreachable.
//
// Implementation:
//   - Stage 1: Collect stops (start, then valves in bit order).
//   - Stage 2: Run one single-source search per stop over the full graph,
//     capped at limit.
//   - Stage 3: Project each distance row and walk onto the stop indices.
//
// Complexity:
//   - Uniform: O(S·(V+E)); weighted: O(S·(V+E)·log V), S = valves+1.
func distances(g *core.Graph, start string, limit int) (*Matrix, error) {
	valves := g.Valves()
	idx := make([]int, 0, len(valves)+1)
	si, err := g.Index(start)
	if err != nil {
		return nil, err
	}
	idx = append(idx, si)
	idx = append(idx, valves...)

	m := &Matrix{
		Stops: make([]string, len(idx)),
		Dist:  make([][]int, len(idx)),
		Yield: make([]int, len(idx)),
		walks: make([][][]string, len(idx)),
	}
	for i, v := range idx {
		m.Stops[i] = g.ID(v)
		m.Yield[i] = g.Yield(v)
	}

	for i, v := range idx {
		row, walk, err := sourceRow(g, g.ID(v), limit)
		if err != nil {
			return nil, fmt.Errorf("route: distances from %q: %w", g.ID(v), err)
		}
		m.Dist[i] = make([]int, len(idx))
		m.walks[i] = make([][]string, len(idx))
		for j, u := range idx {
			m.Dist[i][j] = row[u]
			if i == j || row[u] == Unreachable {
				continue
			}
			path := walk(u)
			ids := make([]string, 0, len(path))
			for _, n := range path[1:] {
				ids = append(ids, g.ID(n))
			}
			if len(ids) > 0 {
				m.walks[i][j] = ids
			}
		}
	}

	return m, nil
}

// sourceRow returns travel times from id to every node, by dense index,
// together with a function reconstructing the index walk to a reached node.
func sourceRow(g *core.Graph, id string, limit int) ([]int, func(int) []int, error) {
	if !g.Uniform() {
		opts := []dijkstra.Option{dijkstra.Source(id), dijkstra.WithReturnPath()}
		if limit >= 0 {
			opts = append(opts, dijkstra.WithMaxDistance(limit))
		}
		dist, prev, err := dijkstra.Dijkstra(g, opts...)
		if err != nil {
			return nil, nil, err
		}

		return dist, func(dest int) []int { return dijkstra.PathTo(prev, dist, dest) }, nil
	}

	var opts []bfs.Option
	if limit > 0 {
		opts = append(opts, bfs.WithMaxDepth(limit))
	}
	res, err := bfs.BFS(g, id, opts...)
	if err != nil {
		return nil, nil, err
	}
	row := make([]int, len(res.Depth))
	for i, d := range res.Depth {
		row[i] = d
		if d == bfs.Unreachable || (limit == 0 && d > 0) {
			row[i] = Unreachable
		}
	}
	walk := func(dest int) []int {
		path, _ := res.PathTo(dest)
		return path
	}

	return row, walk, nil
}
