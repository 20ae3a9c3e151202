// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order by dense node index.
//
// On unit-cost graphs hop distance equals travel time in ticks, which is
// what the route package needs to collapse junctions between valves.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pressure/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for graphs with multi-tick edges, ErrOptionViolation for
// bad options, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.Index(startID)
	if err != nil {
		return nil, ErrStartVertexNotFound
	}
	if !g.Uniform() {
		return nil, ErrWeightedGraph
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreachable
		w.res.Parent[i] = -1
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d, records its parent, and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", w.graph.ID(item.id), err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, a := range w.graph.Arcs(item.id) {
			if w.res.Depth[a.To] == Unreachable {
				w.enqueue(a.To, next, item.id)
			}
		}
	}

	return nil
}
