// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph, returning dense-index distance slices.
//
// Notes on implementation choices:
//
//   - Distances and predecessors are slices indexed by core dense index,
//     not maps; callers translate with g.ID / g.Index.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/pressure/core"
)

// Dijkstra computes shortest tick distances from Options.Source to every
// node of g.
//
// Returns:
//
//   - dist: dist[i] is the minimum total edge cost to node i, Unreachable if none.
//   - prev: predecessor indices (-1 for the source and unreachable nodes) when
//     WithReturnPath is given, nil otherwise.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound or ErrBadMaxDistance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]int, []int, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	src, err := g.Index(cfg.Source)
	if err != nil {
		return nil, nil, ErrVertexNotFound
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int, g.Len()),
		visited: make([]bool, g.Len()),
		pq:      make(nodePQ, 0, g.Len()),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, g.Len())
	}
	r.init(src)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to Unreachable and seeds the heap with src.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = Unreachable
		if r.prev != nil {
			r.prev[i] = -1
		}
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: src, dist: 0})
}

// process repeatedly finalizes the closest unvisited node and relaxes its arcs.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
	// tentative distances beyond the cap are not final
	for i, d := range r.dist {
		if d > r.options.MaxDistance {
			r.dist[i] = Unreachable
			if r.prev != nil {
				r.prev[i] = -1
			}
		}
	}
}

// relax improves the neighbors of u. Assumes dist[u] is final.
func (r *runner) relax(u int) {
	for _, a := range r.g.Arcs(u) {
		nd := r.dist[u] + a.Cost
		if nd > r.options.MaxDistance || nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		if r.prev != nil {
			r.prev[a.To] = u
		}
		heap.Push(&r.pq, nodeItem{id: a.To, dist: nd})
	}
}

// PathTo reconstructs the index path source → dest from a predecessor slice
// returned with WithReturnPath. It returns nil when dest was not reached.
func PathTo(prev []int, dist []int, dest int) []int {
	if dest < 0 || dest >= len(dist) || dist[dest] == Unreachable {
		return nil
	}
	path := []int{}
	for cur := dest; cur >= 0; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a heap entry: a node index and its tentative distance.
type nodeItem struct {
	id   int
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
