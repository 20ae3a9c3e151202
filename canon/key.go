package canon

import "github.com/katalvlaran/pressure/core"

// Solo is the canonical key of a single-agent state.
// Fields not used by the active policy stay zero.
type Solo struct {
	Pos   int
	Time  int
	Yield int
	Set   core.Set
}

// Duo is the canonical key of a dual-agent state.
// Fields not used by the active policy stay zero.
type Duo struct {
	A, B  int
	Time  int
	Yield int
	Set   core.Set
}

// SoloKey builds the single-agent key for the given state components.
//
//	FirstVisit: (pos, yield, set)
//	BestYield:  (pos, time, set)
func SoloKey(p Policy, pos, time, yield int, set core.Set) Solo {
	if p == FirstVisit {
		return Solo{Pos: pos, Yield: yield, Set: set}
	}

	return Solo{Pos: pos, Time: time, Set: set}
}

// DuoKey builds the dual-agent key for the given state components.
//
//	FirstVisit: (a, b, yield), positions kept in agent order
//	BestYield:  (min(a,b), max(a,b), time, set), agents interchangeable
func DuoKey(p Policy, a, b, time, yield int, set core.Set) Duo {
	if p == FirstVisit {
		return Duo{A: a, B: b, Yield: yield}
	}
	if b < a {
		a, b = b, a
	}

	return Duo{A: a, B: b, Time: time, Set: set}
}
