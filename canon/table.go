package canon

// entry is the per-key record of a Table.
type entry struct {
	best     int  // best yield admitted for the key
	expanded bool // the state carrying best has been expanded
}

// Table is the visited structure of one explorer invocation.
//
// The explorer calls Offer before pushing a successor and Claim after popping
// a state; only states for which Claim returns true are expanded. A Table is
// owned by a single search and is not safe for concurrent use.
type Table[K comparable] struct {
	policy Policy
	seen   map[K]entry
}

// NewTable returns an empty table applying policy p.
func NewTable[K comparable](p Policy) *Table[K] {
	return &Table[K]{policy: p, seen: make(map[K]entry)}
}

// Offer reports whether a freshly generated state should be queued.
//
// FirstVisit queues everything and decides at Claim time. BestYield queues a
// state only when it strictly improves the best yield recorded for its key,
// and re-opens keys that were already expanded with a worse yield.
func (t *Table[K]) Offer(k K, yield int) bool {
	if t.policy == FirstVisit {
		return true
	}
	e, ok := t.seen[k]
	if ok && yield <= e.best {
		return false
	}
	t.seen[k] = entry{best: yield}

	return true
}

// Claim reports whether a dequeued state should be expanded, marking the key
// as expanded when it does.
//
// FirstVisit expands the first state seen for a key. BestYield expands only
// the state that still carries the best recorded yield, and only once.
func (t *Table[K]) Claim(k K, yield int) bool {
	e, ok := t.seen[k]
	if t.policy == FirstVisit {
		if ok {
			return false
		}
		t.seen[k] = entry{best: yield, expanded: true}

		return true
	}
	if !ok {
		// seed states are claimed without a prior Offer
		t.seen[k] = entry{best: yield, expanded: true}

		return true
	}
	if e.expanded || yield < e.best {
		return false
	}
	e.expanded = true
	t.seen[k] = e

	return true
}

// Len returns the number of distinct keys recorded.
func (t *Table[K]) Len() int {
	return len(t.seen)
}

// Policy returns the policy the table applies.
func (t *Table[K]) Policy() Policy {
	return t.policy
}
