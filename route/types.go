// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, sentinel errors, and result types of the compressed solver.

package route

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pressure/core"
)

// Sentinel errors for route solving.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrNegativeBudget is returned when the time budget is below zero.
	ErrNegativeBudget = errors.New("route: time budget is negative")

	// ErrYieldOverflow is returned when TotalYield*budget does not fit in
	// an int, so an accumulated yield could wrap around.
	ErrYieldOverflow = errors.New("route: total yield times budget overflows int")

	// ErrStartNotFound is returned when WithStart names an unknown node.
	ErrStartNotFound = errors.New("route: start node not found")

	// ErrAgentCount is returned for agent counts other than 1 or 2.
	ErrAgentCount = errors.New("route: agent count must be 1 or 2")

	// ErrTooManyValves is returned when a two-agent plan is requested on a
	// graph with more than MaxDualValves positive-yield nodes.
	ErrTooManyValves = errors.New("route: too many valves for two agents")
)

// MaxDualValves bounds the valve count accepted for two-agent plans.
// The pairing step is quadratic in the number of reachable valve subsets.
const MaxDualValves = 24

// Visit is one activation within a Plan.
type Visit struct {
	// Valve is the node ID being activated.
	Valve string `json:"valve"`

	// Remaining is the number of ticks left once the valve is open; the
	// valve contributes Yield*Remaining to the plan.
	Remaining int `json:"remaining"`

	// Path lists the nodes entered to reach Valve from the previous stop,
	// ending with Valve. It is empty when the agent is already there.
	Path []string `json:"path,omitempty"`
}

// Plan is the best activation order found, one visit list per agent.
type Plan struct {
	Yield  int       `json:"yield"`
	Agents [][]Visit `json:"agents"`
}

// Options holds parameters to customize a solve.
type Options struct {
	// Ctx allows cooperative cancellation.
	Ctx context.Context

	// Start overrides the graph's designated start node when non-empty.
	Start string
}

// Option configures the solver via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context and the graph's
// own start node.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart starts every agent from the given node.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// resolve applies opts, validates inputs, and returns the start ID.
func resolve(g *core.Graph, budget int, opts []Option) (Options, string, error) {
	o := DefaultOptions()
	if g == nil {
		return o, "", ErrNilGraph
	}
	for _, opt := range opts {
		opt(&o)
	}
	if budget < 0 {
		return o, "", fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	if budget > 0 && g.TotalYield() > math.MaxInt/budget {
		return o, "", fmt.Errorf("%w: total yield %d, budget %d", ErrYieldOverflow, g.TotalYield(), budget)
	}
	start := g.StartID()
	if o.Start != "" {
		if !g.Has(o.Start) {
			return o, "", fmt.Errorf("%w: %q", ErrStartNotFound, o.Start)
		}
		start = o.Start
	}

	return o, start, nil
}
