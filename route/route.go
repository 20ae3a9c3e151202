// Package route solves the valve activation problem on a compressed view of
// the network: only the start node and the positive-yield valves matter, and
// moving between them costs their shortest-path travel time.
//
// Where explore walks the graph one tick at a time, route jumps straight from
// valve to valve, so its state space is the set of valve orders that fit in
// the budget rather than every (position, time, set) combination.
package route

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pressure/core"
)

// cancelCheckMask sets how often the context is polled (every 1024 calls).
const cancelCheckMask = 1<<10 - 1

// entry is the best plan found for one exact activation set.
type entry struct {
	set   core.Set
	yield int
	path  []Visit
}

// searcher encapsulates the depth-first enumeration of valve orders.
type searcher struct {
	m     *Matrix
	ctx   context.Context
	steps int
	path  []Visit
	best  map[core.Set]entry
}

// Best returns the highest-yield activation plan for agents (1 or 2) walking
// g within budget ticks from the start node.
//
// One agent: every order of valves that fits in the budget is enumerated and
// the best yield per activation set is recorded, in the spirit of the
// Held–Karp bitmask table. Two agents: the plans of two disjoint activation
// sets are combined, since the agents never need the same valve.
//
// Errors: ErrNilGraph, ErrNegativeBudget, ErrYieldOverflow, ErrStartNotFound, ErrAgentCount,
// ErrTooManyValves (two agents, more than MaxDualValves valves), or the
// context error on cancellation.
//
// Complexity:
//   - Time O(P·K) for P feasible valve orders and K valves, plus O(M²) pairing
//     of M recorded sets for two agents.
//   - Space O(M·K).
func Best(g *core.Graph, budget, agents int, opts ...Option) (Plan, error) {
	o, start, err := resolve(g, budget, opts)
	if err != nil {
		return Plan{}, err
	}
	if agents != 1 && agents != 2 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrAgentCount, agents)
	}
	if agents == 2 && g.ValveCount() > MaxDualValves {
		return Plan{}, fmt.Errorf("%w: %d > %d", ErrTooManyValves, g.ValveCount(), MaxDualValves)
	}

	m, err := distances(g, start, budget)
	if err != nil {
		return Plan{}, err
	}
	s := &searcher{
		m:    m,
		ctx:  o.Ctx,
		best: make(map[core.Set]entry),
	}
	if err = s.walk(0, budget, 0, 0); err != nil {
		return Plan{}, err
	}

	ranked := s.ranked()
	if agents == 1 {
		top := ranked[0]

		return Plan{Yield: top.yield, Agents: [][]Visit{top.path}}, nil
	}

	return pair(ranked), nil
}

// walk extends the current order from stop at with time ticks left.
func (s *searcher) walk(at, time int, set core.Set, yield int) error {
	if s.steps&cancelCheckMask == 0 {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		default:
		}
	}
	s.steps++

	if e, ok := s.best[set]; !ok || yield > e.yield {
		path := make([]Visit, len(s.path))
		copy(path, s.path)
		s.best[set] = entry{set: set, yield: yield, path: path}
	}

	row := s.m.Dist[at]
	for b := 0; b < len(s.m.Stops)-1; b++ {
		if set.Has(b) || row[b+1] == Unreachable {
			continue
		}
		// one tick to open the valve after arriving
		left := time - row[b+1] - 1
		if left <= 0 {
			continue
		}
		s.path = append(s.path, Visit{Valve: s.m.Stops[b+1], Remaining: left, Path: s.m.Walk(at, b+1)})
		err := s.walk(b+1, left, set.With(b), yield+s.m.Yield[b+1]*left)
		s.path = s.path[:len(s.path)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// ranked returns the recorded entries by descending yield, ties broken by
// ascending set so results are deterministic. The empty set is always present.
func (s *searcher) ranked() []entry {
	out := make([]entry, 0, len(s.best))
	for _, e := range s.best {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].yield != out[j].yield {
			return out[i].yield > out[j].yield
		}
		return out[i].set < out[j].set
	})

	return out
}

// pair picks the best combination of two disjoint activation sets.
// Pairing an entry with the empty set covers plans where one agent idles.
func pair(ranked []entry) Plan {
	best, bi, bj := -1, 0, 0
	for i := 0; i < len(ranked); i++ {
		if 2*ranked[i].yield <= best {
			break
		}
		for j := i + 1; j < len(ranked); j++ {
			total := ranked[i].yield + ranked[j].yield
			if total <= best {
				break
			}
			if ranked[i].set.Disjoint(ranked[j].set) {
				best, bi, bj = total, i, j
			}
		}
	}
	if best < 0 {
		// only the empty set was reachable
		return Plan{Yield: 0, Agents: [][]Visit{{}, {}}}
	}

	return Plan{Yield: best, Agents: [][]Visit{ranked[bi].path, ranked[bj].path}}
}
