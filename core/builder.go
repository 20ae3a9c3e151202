// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Mutable staging area that validates node records and freezes them
//       into an immutable Graph.
// Policy:
//   - Per-record validation happens in AddNode; cross-record validation
//     (dangling edges, start presence, valve count) happens in Build.
//   - Duplicate IDs overwrite earlier records (last write wins).

package core

import (
	"fmt"
	"math"
	"sort"
)

// BuilderOption configures a Builder before any node is added.
type BuilderOption func(*Builder)

// WithStart sets the designated start node. An empty id keeps DefaultStart.
func WithStart(id string) BuilderOption {
	return func(b *Builder) {
		if id != "" {
			b.start = id
		}
	}
}

// Builder accumulates node records and produces a Graph.
//
// A Builder is not safe for concurrent use. It may be reused after Build;
// subsequent AddNode calls do not affect graphs already built.
type Builder struct {
	start string
	nodes map[string]Node
}

// NewBuilder returns an empty Builder with the given options applied.
// Complexity: O(len(opts)).
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		start: DefaultStart,
		nodes: make(map[string]Node),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddNode stages a node record.
//
// Implementation:
//   - Stage 1: Reject empty IDs, negative yields, and edges with a cost below one tick.
//   - Stage 2: Copy the edge slice so later caller mutations cannot leak in.
//   - Stage 3: Store the record, replacing any earlier record with the same ID.
//
// Errors:
//   - ErrEmptyNodeID, ErrBadYield, ErrBadCost (wrapped with the offending ID).
//
// Complexity:
//   - Time O(len(edges)), Space O(len(edges)).
func (b *Builder) AddNode(id string, yield int, edges ...Edge) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if yield < 0 {
		return fmt.Errorf("%w: node %q has yield %d", ErrBadYield, id, yield)
	}
	cp := make([]Edge, len(edges))
	for i, e := range edges {
		if e.To == "" {
			return fmt.Errorf("%w: node %q edge %d", ErrEmptyNodeID, id, i)
		}
		if e.Cost < DefaultCost {
			return fmt.Errorf("%w: edge %s→%s cost=%d", ErrBadCost, id, e.To, e.Cost)
		}
		cp[i] = e
	}
	b.nodes[id] = Node{ID: id, Yield: yield, Edges: cp}

	return nil
}

// Len reports the number of distinct node IDs staged so far.
func (b *Builder) Len() int {
	return len(b.nodes)
}

// Build freezes the staged records into an immutable Graph.
//
// Implementation:
//   - Stage 1: Sort IDs to fix dense indices deterministically.
//   - Stage 2: Verify the start node exists.
//   - Stage 3: Resolve every edge to an Arc, failing on unknown destinations.
//   - Stage 4: Assign activation bits to positive-yield nodes in index order.
//
// Errors:
//   - ErrStartNotFound, ErrDanglingEdge, ErrTooManyValves, ErrBadYield when
//     the yields sum past math.MaxInt.
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func (b *Builder) Build() (*Graph, error) {
	ids := make([]string, 0, len(b.nodes))
	for id := range b.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	start, ok := index[b.start]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, b.start)
	}

	g := &Graph{
		start:   start,
		ids:     ids,
		index:   index,
		nodes:   make([]Node, len(ids)),
		arcs:    make([][]Arc, len(ids)),
		bits:    make([]int, len(ids)),
		uniform: true,
	}

	for i, id := range ids {
		n := b.nodes[id]
		edges := make([]Edge, len(n.Edges))
		copy(edges, n.Edges)
		g.nodes[i] = Node{ID: n.ID, Yield: n.Yield, Edges: edges}

		arcs := make([]Arc, len(edges))
		for j, e := range edges {
			to, found := index[e.To]
			if !found {
				return nil, fmt.Errorf("%w: %s→%s", ErrDanglingEdge, id, e.To)
			}
			if e.Cost != DefaultCost {
				g.uniform = false
			}
			arcs[j] = Arc{To: to, Cost: e.Cost}
		}
		g.arcs[i] = arcs

		g.bits[i] = -1
		if n.Yield > 0 {
			if len(g.valves) == MaxValves {
				return nil, fmt.Errorf("%w: more than %d", ErrTooManyValves, MaxValves)
			}
			if g.total > math.MaxInt-n.Yield {
				return nil, fmt.Errorf("%w: total yield overflows int at %q", ErrBadYield, id)
			}
			g.bits[i] = len(g.valves)
			g.valves = append(g.valves, i)
			g.total += n.Yield
		}
	}

	return g, nil
}
