// Package core provides the immutable valve-network model consumed by every
// search in this module.
//
// The Graph G = (V,E) carries:
//
//   - Nodes with a string ID and a non-negative Yield (0 = pass-through junction)
//   - Ordered, one-way Edges with a traversal Cost in ticks (1 in plain input,
//     larger after collapsing junctions through shortest paths)
//   - A designated start node (DefaultStart = "AA")
//   - Dense indices: node i is ids[i], sorted ascending, so searches work on
//     ints instead of strings
//   - Activation bits: every positive-yield node owns one bit of a Set
//
// Why a separate Builder?
//
//   - Input records may arrive in any order and may reference nodes defined
//     later; validation of edges can only happen once all records are in.
//   - Duplicate IDs overwrite earlier records (last write wins), mirroring how
//     the line-oriented input is consumed.
//   - After Build the Graph never changes, so explorers can share it freely.
//
// Builder Options (BuilderOption):
//
//	– WithStart(id string)
//	    Override the start node (default "AA"). Build fails with
//	    ErrStartNotFound when it is absent.
//
// Core Methods:
//
//	// Construction
//	NewBuilder(opts ...BuilderOption) *Builder
//	(*Builder).AddNode(id string, yield int, edges ...Edge) error   // O(deg)
//	(*Builder).Build() (*Graph, error)                              // O(V log V + E)
//
//	// Query by ID
//	Has(id) bool, Index(id) (int, error), Node(id) (Node, error), Nodes() []string
//
//	// Query by index (search hot path)
//	Start() int, Yield(i) int, Arcs(i) []Arc, Bit(i) int, ID(i) string
//
//	// Valves
//	Valves() []int, ValveCount() int, All() Set, TotalYield() int, Uniform() bool
//
// Set:
//
//	Has(b), With(b), Without(b), Len(), Disjoint(o), Bits(), IDs(g)
//
// Errors:
//
//	ErrEmptyNodeID, ErrNodeNotFound, ErrBadYield, ErrBadCost,
//	ErrDanglingEdge, ErrStartNotFound, ErrTooManyValves
package core
