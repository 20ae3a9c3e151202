// Package explore provides tunable options, error definitions, and result
// types for the tick-level valve explorers.
package explore

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pressure/canon"
	"github.com/katalvlaran/pressure/core"
)

// Sentinel errors for explorer execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("explore: graph is nil")

	// ErrNegativeBudget is returned when the time budget is below zero.
	ErrNegativeBudget = errors.New("explore: time budget is negative")

	// ErrYieldOverflow is returned when TotalYield*budget does not fit in
	// an int, so an accumulated yield could wrap around.
	ErrYieldOverflow = errors.New("explore: total yield times budget overflows int")

	// ErrStartNotFound is returned when WithStart names an unknown node.
	ErrStartNotFound = errors.New("explore: start node not found")

	// ErrAgentCount is returned by Solve for agent counts other than 1 or 2.
	ErrAgentCount = errors.New("explore: agent count must be 1 or 2")

	// ErrNonUniform is returned by Dual on graphs with multi-tick edges:
	// both agents share one clock and must move in lockstep.
	ErrNonUniform = errors.New("explore: dual explorer requires unit-cost edges")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// cancelCheckMask sets how often the context is polled (every 1024 dequeues).
const cancelCheckMask = 1<<10 - 1

// State is a search state as seen by hooks.
//
// For single-agent runs B is -1. Positions are dense node indices of the
// graph (see core.Graph.ID).
type State struct {
	A, B  int
	Time  int
	Yield int
	Set   core.Set
}

// Progress is a periodic snapshot of an ongoing search.
type Progress struct {
	Dequeued int // states popped so far
	Queued   int // states currently waiting
	Visited  int // distinct canonical keys recorded
	Best     int // best yield so far
}

// Option configures explorer behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the explorer is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cooperative cancellation; polled every 1024 dequeues.
	Ctx context.Context

	// Start overrides the graph's designated start node when non-empty.
	Start string

	// Policy selects the canonical key and visited-table discipline.
	Policy canon.Policy

	// ProgressEvery is the number of dequeues between OnProgress calls.
	ProgressEvery int

	// OnProgress receives periodic snapshots. Nil disables reporting.
	OnProgress func(Progress)

	// OnImprove is called every time the best yield strictly increases.
	OnImprove func(best int)

	// OnPush is called for every successor admitted to the queue.
	OnPush func(from, to State)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - graph start node
//   - canon.BestYield
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Policy: canon.BestYield,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart starts the search from the given node instead of the graph's
// designated start.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// WithPolicy selects the deduplication policy.
func WithPolicy(p canon.Policy) Option {
	return func(o *Options) {
		if !p.Valid() {
			o.err = fmt.Errorf("%w: unknown policy %v", ErrOptionViolation, p)
			return
		}
		o.Policy = p
	}
}

// WithProgress reports a Progress snapshot every `every` dequeues.
//
//	every > 0: report interval
//	every <= 0: invalid option → ErrOptionViolation
func WithProgress(every int, fn func(Progress)) Option {
	return func(o *Options) {
		if every <= 0 {
			o.err = fmt.Errorf("%w: progress interval must be positive (%d)", ErrOptionViolation, every)
			return
		}
		o.ProgressEvery = every
		o.OnProgress = fn
	}
}

// WithOnImprove registers a callback fired whenever the best yield improves.
func WithOnImprove(fn func(best int)) Option {
	return func(o *Options) {
		o.OnImprove = fn
	}
}

// WithOnPush registers a callback fired for every queued successor.
// It is meant for tracing and tests; it slows the search noticeably.
func WithOnPush(fn func(from, to State)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Best is the maximum accumulated yield over all explored states.
	Best int

	// Dequeued counts states popped from the work queue.
	Dequeued int

	// Expanded counts states that passed deduplication and were expanded.
	Expanded int

	// Skipped counts states discarded by the visited table at dequeue time.
	Skipped int

	// Visited is the number of distinct canonical keys recorded.
	Visited int
}

// resolve applies opts, validates the budget, and locates the start node.
func resolve(g *core.Graph, budget int, opts []Option) (Options, int, error) {
	o := DefaultOptions()
	if g == nil {
		return o, 0, ErrNilGraph
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, 0, o.err
	}
	if budget < 0 {
		return o, 0, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	if budget > 0 && g.TotalYield() > math.MaxInt/budget {
		return o, 0, fmt.Errorf("%w: total yield %d, budget %d", ErrYieldOverflow, g.TotalYield(), budget)
	}
	start := g.Start()
	if o.Start != "" {
		i, err := g.Index(o.Start)
		if err != nil {
			return o, 0, fmt.Errorf("%w: %q", ErrStartNotFound, o.Start)
		}
		start = i
	}

	return o, start, nil
}
