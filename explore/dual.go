package explore

import (
	"context"

	"github.com/katalvlaran/pressure/canon"
	"github.com/katalvlaran/pressure/core"
)

// stay marks the "activate in place" choice in the joint action loop.
const stay = -1

// duoState is one dual-agent search state; immutable once queued.
type duoState struct {
	a, b  int
	time  int
	yield int
	set   core.Set
}

// duoWalker encapsulates mutable dual-agent search state.
type duoWalker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []duoState
	table *canon.Table[canon.Duo]
	res   Result
}

// Dual returns the maximum yield two cooperating agents can accumulate on g
// within budget ticks. Both agents start on the same node, share one
// activation set, and act simultaneously every tick.
//
// Per tick each agent either activates its current node or walks one edge;
// every pairwise combination is explored except invalid stays (node already
// active or zero-yield) and the both-stay pair on a shared node.
// Returns ErrNonUniform on graphs with multi-tick edges, plus every error
// Single may return.
func Dual(g *core.Graph, budget int, opts ...Option) (Result, error) {
	o, start, err := resolve(g, budget, opts)
	if err != nil {
		return Result{}, err
	}
	if !g.Uniform() {
		return Result{}, ErrNonUniform
	}

	w := &duoWalker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]duoState, 0, 256),
		table: canon.NewTable[canon.Duo](o.Policy),
	}
	w.queue = append(w.queue, duoState{a: start, b: start, time: budget})

	err = w.loop()

	return w.res, err
}

// loop drains the queue until empty or cancelled.
func (w *duoWalker) loop() error {
	for len(w.queue) > 0 {
		if w.res.Dequeued&cancelCheckMask == 0 {
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}
		}

		s := w.dequeue()
		key := canon.DuoKey(w.opts.Policy, s.a, s.b, s.time, s.yield, s.set)
		if !w.table.Claim(key, s.yield) {
			w.res.Skipped++
			continue
		}
		w.res.Expanded++
		if s.yield > w.res.Best {
			w.res.Best = s.yield
			if w.opts.OnImprove != nil {
				w.opts.OnImprove(s.yield)
			}
		}
		if s.time == 0 {
			continue
		}
		w.expand(s)
	}
	w.res.Visited = w.table.Len()

	return nil
}

// dequeue pops the first state and emits progress when due.
func (w *duoWalker) dequeue() duoState {
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

// canStay reports whether the agent at pos may activate it this tick.
func (w *duoWalker) canStay(pos int, set core.Set) (int, bool) {
	bit := w.graph.Bit(pos)

	return bit, bit >= 0 && !set.Has(bit)
}

// expand enumerates the joint action space of s.
//
// Agent A's choice is the outer loop and agent B's the inner one; in both,
// stay comes first and then the edges in record order.
func (w *duoWalker) expand(s duoState) {
	t := s.time - 1
	arcsA := w.graph.Arcs(s.a)
	arcsB := w.graph.Arcs(s.b)
	bitA, stayA := w.canStay(s.a, s.set)
	bitB, stayB := w.canStay(s.b, s.set)

	for i := stay; i < len(arcsA); i++ {
		if i == stay && !stayA {
			continue
		}
		for j := stay; j < len(arcsB); j++ {
			if i == stay && j == stay && s.a == s.b {
				continue
			}
			if j == stay && !stayB {
				continue
			}

			next := duoState{a: s.a, b: s.b, time: t, yield: s.yield, set: s.set}
			if i == stay {
				next.set = next.set.With(bitA)
				next.yield += w.graph.Yield(s.a) * t
			} else {
				next.a = arcsA[i].To
			}
			if j == stay {
				next.set = next.set.With(bitB)
				next.yield += w.graph.Yield(s.b) * t
			} else {
				next.b = arcsB[j].To
			}
			w.push(s, next)
		}
	}
}

// push offers next to the visited table and queues it when admitted.
func (w *duoWalker) push(from, next duoState) {
	key := canon.DuoKey(w.opts.Policy, next.a, next.b, next.time, next.yield, next.set)
	if !w.table.Offer(key, next.yield) {
		return
	}
	if w.opts.OnPush != nil {
		w.opts.OnPush(
			State{A: from.a, B: from.b, Time: from.time, Yield: from.yield, Set: from.set},
			State{A: next.a, B: next.b, Time: next.time, Yield: next.yield, Set: next.set},
		)
	}
	w.queue = append(w.queue, next)
}
