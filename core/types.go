// Package core defines the central Graph, Node, and Edge types of a valve
// network, together with the Builder that assembles them and the Set bitmask
// used to track activated valves.
//
// A Graph is immutable once Build returns: every accessor is a pure read and
// may be called from any number of goroutines without synchronization.
//
// This file declares Node, Edge, Arc, Graph, sentinel errors, and the
// package-level constants.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrBadYield       - negative yield supplied for a node.
//	ErrBadCost        - edge cost smaller than one tick.
//	ErrDanglingEdge   - edge references a node that was never added.
//	ErrStartNotFound  - designated start node is absent from the graph.
//	ErrTooManyValves  - more positive-yield nodes than a Set can address.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node was added with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadYield indicates a negative yield value.
	ErrBadYield = errors.New("core: yield must be non-negative")

	// ErrBadCost indicates an edge whose traversal cost is below one tick.
	ErrBadCost = errors.New("core: edge cost must be at least one tick")

	// ErrDanglingEdge indicates an edge pointing at a node absent from the graph.
	ErrDanglingEdge = errors.New("core: edge references unknown node")

	// ErrStartNotFound indicates the designated start node was never added.
	ErrStartNotFound = errors.New("core: start node not found")

	// ErrTooManyValves indicates more positive-yield nodes than MaxValves.
	ErrTooManyValves = errors.New("core: too many positive-yield nodes")
)

const (
	// DefaultStart is the start node used when no WithStart option is given.
	DefaultStart = "AA"

	// DefaultCost is the traversal cost of a plain tunnel, in ticks.
	DefaultCost = 1

	// MaxValves is the number of positive-yield nodes a Set can address.
	MaxValves = 64
)

// Edge is a one-way tunnel to another node.
//
// Undirected input (the usual case) is expressed by listing the tunnel on
// both endpoints; the graph never mirrors edges on its own.
type Edge struct {
	// To is the destination node ID.
	To string

	// Cost is the number of ticks needed to walk the tunnel (>= 1).
	Cost int
}

// Tunnel returns a unit-cost Edge to the given node.
func Tunnel(to string) Edge {
	return Edge{To: to, Cost: DefaultCost}
}

// Node is a location in the network.
//
// Yield is released once per run, multiplied by the ticks remaining after the
// node is activated. A node with Yield == 0 is a pure junction.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// Yield is the per-tick release rate once activated.
	Yield int

	// Edges lists outgoing tunnels in record order.
	Edges []Edge
}

// Arc is the index-resolved form of an Edge, used by the search loops.
type Arc struct {
	To   int
	Cost int
}

// Graph is an immutable, index-addressed valve network.
//
// Nodes are stored in ascending ID order; ids[i] is the ID of the node at
// dense index i. Positive-yield nodes additionally receive an activation bit,
// assigned in the same ascending order.
type Graph struct {
	start int // dense index of the start node

	ids   []string       // index → node ID
	index map[string]int // node ID → index
	nodes []Node         // index → node (edges in record order)
	arcs  [][]Arc        // index → resolved edges, same order as nodes[i].Edges

	bits   []int // index → activation bit, -1 for zero-yield nodes
	valves []int // bit → index

	uniform bool // every edge costs exactly DefaultCost
	total   int  // sum of all yields
}
