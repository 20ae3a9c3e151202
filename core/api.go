// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors over an immutable Graph.
// Policy:
//   - No mutation and no hidden state; every method is safe for concurrent use.
//   - ID-based accessors return copies; index-based accessors used by the
//     search loops return internal slices that callers must not modify.

package core

import "fmt"

// Start returns the dense index of the designated start node.
// Complexity: O(1).
func (g *Graph) Start() int {
	return g.start
}

// StartID returns the ID of the designated start node.
// Complexity: O(1).
func (g *Graph) StartID() string {
	return g.ids[g.start]
}

// Len returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Len() int {
	return len(g.ids)
}

// Has reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Index resolves a node ID to its dense index.
//
// Errors:
//   - ErrNodeNotFound if id is unknown.
//
// Complexity: O(1).
func (g *Graph) Index(id string) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return i, nil
}

// ID returns the node ID at dense index i. It panics if i is out of range.
// Complexity: O(1).
func (g *Graph) ID(i int) string {
	return g.ids[i]
}

// Node returns a copy of the node with the given ID.
//
// Implementation:
//   - Stage 1: Resolve the ID.
//   - Stage 2: Copy the edge slice so the caller cannot mutate the graph.
//
// Errors:
//   - ErrNodeNotFound if id is unknown.
//
// Complexity:
//   - Time O(deg), Space O(deg).
func (g *Graph) Node(id string) (Node, error) {
	i, err := g.Index(id)
	if err != nil {
		return Node{}, err
	}
	n := g.nodes[i]
	edges := make([]Edge, len(n.Edges))
	copy(edges, n.Edges)

	return Node{ID: n.ID, Yield: n.Yield, Edges: edges}, nil
}

// Nodes returns all node IDs in ascending order (which is also index order).
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Yield returns the yield of the node at dense index i.
// Complexity: O(1).
func (g *Graph) Yield(i int) int {
	return g.nodes[i].Yield
}

// Arcs returns the resolved outgoing edges of the node at dense index i, in
// record order. The returned slice is shared and must not be modified.
// Complexity: O(1).
func (g *Graph) Arcs(i int) []Arc {
	return g.arcs[i]
}

// Bit returns the activation bit of the node at dense index i, or -1 when
// the node has zero yield and can never be activated.
// Complexity: O(1).
func (g *Graph) Bit(i int) int {
	return g.bits[i]
}

// Valves returns the dense indices of all positive-yield nodes in bit order,
// so that Valves()[b] is the node owning activation bit b.
// Complexity: O(K) where K is the number of valves.
func (g *Graph) Valves() []int {
	out := make([]int, len(g.valves))
	copy(out, g.valves)

	return out
}

// ValveCount returns the number of positive-yield nodes.
// Complexity: O(1).
func (g *Graph) ValveCount() int {
	return len(g.valves)
}

// Uniform reports whether every edge costs exactly one tick.
// Complexity: O(1).
func (g *Graph) Uniform() bool {
	return g.uniform
}

// TotalYield returns the sum of all node yields.
// Every achievable result is bounded by TotalYield()*(budget-1).
// Complexity: O(1).
func (g *Graph) TotalYield() int {
	return g.total
}

// All returns the Set with every valve bit raised.
// Complexity: O(1).
func (g *Graph) All() Set {
	if len(g.valves) == MaxValves {
		return ^Set(0)
	}

	return Set(1)<<uint(len(g.valves)) - 1
}
