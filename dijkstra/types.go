// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a valve network.
//
// Dijkstra computes the minimum-tick walk from a single source node to all
// other reachable nodes, using the Edge.Cost of every tunnel as its weight.
// Costs are validated by core.Builder (>= 1), so no negative-weight scan is
// needed here.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	– Space: O(V + E)
//
// Options:
//
//	– Source:          ID of the starting node (must be non-empty and present in the graph).
//	– WithReturnPath:  also return the predecessor slice for path reconstruction.
//	– WithMaxDistance: optional cap on distances to explore; nodes beyond stay Unreachable.
//
// Errors (sentinel):
//
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source node does not exist in the graph.
//	– ErrBadMaxDistance if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable marks a node with no walk from the source within MaxDistance.
const Unreachable = math.MaxInt

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      string // The ID of the source node
	ReturnPath  bool   // Whether to return the predecessor slice
	MaxDistance int    // Maximum distance to explore

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID. Must be provided.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, the predecessor slice is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold; nodes whose shortest
// distance would exceed it are reported as Unreachable.
// Negative values are recorded and surface as ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for the given source with no distance cap
// and no predecessor tracking.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: Unreachable - 1,
	}
}
