// Package explore provides exhaustive breadth-first explorers for the
// time-budgeted valve activation problem on a core.Graph.
//
// What
//
//   - Single: one agent, state (position, time, yield, activation set).
//   - Dual: two interchangeable agents sharing one activation set and one
//     clock, state (A, B, time, yield, activation set).
//   - Solve: dispatch on the agent count (1 or 2).
//
// Every tick an agent either activates its current node, which releases
// yield*(time-1) into the total and marks the node in the shared set, or
// walks an edge. A node's yield is collected at most once per run.
//
// Deduplication
//
//	States are keyed through package canon. canon.BestYield (the default)
//	keys on (position, time, set) and expands a key only with the best yield
//	seen for it. canon.FirstVisit reproduces the reference yield-inclusive
//	keys where the first state seen for a key wins. On graphs with multi-tick
//	edges the solo FirstVisit key also carries the clock, since FIFO order no
//	longer pops the state with the most time left first.
//
// Determinism
//
//	The work queue is FIFO and successors are generated in edge record
//	order, so every run on the same input visits states in the same order
//	and returns the same Result.
//
// Complexity (N = nodes, K = valves, T = budget, d = max out-degree)
//
//   - Single: O(N · T · 2^K) keys under BestYield, O(d) successors each.
//   - Dual:   O(N² · T · 2^K) keys under BestYield, O(d²) successors each.
//
// Usage
//
//	res, err := explore.Solve(g, 26, 2,
//	    explore.WithPolicy(canon.BestYield),
//	    explore.WithProgress(250000, func(p explore.Progress) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrNilGraph, ErrNegativeBudget, ErrYieldOverflow, ErrStartNotFound, ErrAgentCount,
//     ErrNonUniform (Dual only), ErrOptionViolation, or ctx.Err().
package explore
