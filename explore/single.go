// Package explore implements exhaustive breadth-first explorers over
// (position, time, yield, activation set) states of a core.Graph.
package explore

import (
	"context"

	"github.com/katalvlaran/pressure/canon"
	"github.com/katalvlaran/pressure/core"
)

// soloState is one single-agent search state; immutable once queued.
type soloState struct {
	pos   int
	time  int
	yield int
	set   core.Set
}

// soloWalker encapsulates mutable single-agent search state.
type soloWalker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []soloState
	table *canon.Table[canon.Solo]
	timed bool // FirstVisit keys carry the clock on weighted graphs
	res   Result
}

// Single returns the maximum yield one agent can accumulate on g within
// budget ticks, starting from the graph's start node (or WithStart).
//
// Each tick the agent either activates its current node (if it has positive
// yield and is not yet active), releasing yield*(time-1), or walks one edge,
// spending the edge cost. Returns ErrNilGraph, ErrNegativeBudget,
// ErrYieldOverflow, ErrStartNotFound, ErrOptionViolation, or the context error on cancellation.
func Single(g *core.Graph, budget int, opts ...Option) (Result, error) {
	o, start, err := resolve(g, budget, opts)
	if err != nil {
		return Result{}, err
	}

	w := &soloWalker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]soloState, 0, 64),
		table: canon.NewTable[canon.Solo](o.Policy),
		timed: o.Policy == canon.FirstVisit && !g.Uniform(),
	}
	w.queue = append(w.queue, soloState{pos: start, time: budget})

	err = w.loop()

	return w.res, err
}

// loop drains the queue until empty or cancelled.
func (w *soloWalker) loop() error {
	for len(w.queue) > 0 {
		if w.res.Dequeued&cancelCheckMask == 0 {
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}
		}

		s := w.dequeue()
		key := w.key(s)
		if !w.table.Claim(key, s.yield) {
			w.res.Skipped++
			continue
		}
		w.res.Expanded++
		w.record(s.yield)
		if s.time == 0 {
			continue
		}
		w.expand(s)
	}
	w.res.Visited = w.table.Len()

	return nil
}

// dequeue pops the first state and emits progress when due.
func (w *soloWalker) dequeue() soloState {
	s := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Dequeued++
	if w.opts.OnProgress != nil && w.res.Dequeued%w.opts.ProgressEvery == 0 {
		w.opts.OnProgress(Progress{
			Dequeued: w.res.Dequeued,
			Queued:   len(w.queue),
			Visited:  w.table.Len(),
			Best:     w.res.Best,
		})
	}

	return s
}

// key returns the canonical key of s.
//
// FIFO order pops the state with the most time left first for a FirstVisit
// key only while every edge costs one tick. With multi-tick edges a slower
// state can arrive first, so the clock joins the key.
func (w *soloWalker) key(s soloState) canon.Solo {
	k := canon.SoloKey(w.opts.Policy, s.pos, s.time, s.yield, s.set)
	if w.timed {
		k.Time = s.time
	}

	return k
}

// record folds yield into the running best.
func (w *soloWalker) record(yield int) {
	if yield > w.res.Best {
		w.res.Best = yield
		if w.opts.OnImprove != nil {
			w.opts.OnImprove(yield)
		}
	}
}

// expand queues the activation successor (if any) and one move per edge.
func (w *soloWalker) expand(s soloState) {
	if bit := w.graph.Bit(s.pos); bit >= 0 && !s.set.Has(bit) {
		t := s.time - 1
		w.push(s, soloState{
			pos:   s.pos,
			time:  t,
			yield: s.yield + w.graph.Yield(s.pos)*t,
			set:   s.set.With(bit),
		})
	}
	for _, a := range w.graph.Arcs(s.pos) {
		if a.Cost > s.time {
			continue
		}
		w.push(s, soloState{pos: a.To, time: s.time - a.Cost, yield: s.yield, set: s.set})
	}
}

// push offers next to the visited table and queues it when admitted.
func (w *soloWalker) push(from, next soloState) {
	key := w.key(next)
	if !w.table.Offer(key, next.yield) {
		return
	}
	if w.opts.OnPush != nil {
		w.opts.OnPush(
			State{A: from.pos, B: -1, Time: from.time, Yield: from.yield, Set: from.set},
			State{A: next.pos, B: -1, Time: next.time, Yield: next.yield, Set: next.set},
		)
	}
	w.queue = append(w.queue, next)
}
