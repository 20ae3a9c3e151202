package explore_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/canon"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/explore"
	"github.com/katalvlaran/pressure/internal/fixture"
)

var policies = []canon.Policy{canon.BestYield, canon.FirstVisit}

// TestWorkedExample pins the two reference optima under both policies.
func TestWorkedExample(t *testing.T) {
	g := fixture.ExampleGraph()
	for _, p := range policies {
		p := p
		t.Run(p.String(), func(t *testing.T) {
			solo, err := explore.Single(g, fixture.SoloBudget, explore.WithPolicy(p))
			require.NoError(t, err)
			assert.Equal(t, fixture.SoloBest, solo.Best)
			assert.Positive(t, solo.Expanded)
			assert.Equal(t, solo.Dequeued, solo.Expanded+solo.Skipped)

			duo, err := explore.Dual(g, fixture.DuoBudget, explore.WithPolicy(p))
			require.NoError(t, err)
			assert.Equal(t, fixture.DuoBest, duo.Best)
		})
	}
}

// TestSolve_Dispatch verifies agent-count routing and rejection.
func TestSolve_Dispatch(t *testing.T) {
	g := fixture.ExampleGraph()

	res, err := explore.Solve(g, fixture.SoloBudget, 1)
	require.NoError(t, err)
	assert.Equal(t, fixture.SoloBest, res.Best)

	res, err = explore.Solve(g, fixture.DuoBudget, 2)
	require.NoError(t, err)
	assert.Equal(t, fixture.DuoBest, res.Best)

	for _, n := range []int{0, 3, -1} {
		_, err = explore.Solve(g, 10, n)
		assert.ErrorIs(t, err, explore.ErrAgentCount)
	}
}

// TestErrors verifies precondition checks.
func TestErrors(t *testing.T) {
	g := fixture.ExampleGraph()

	_, err := explore.Single(nil, 5)
	assert.ErrorIs(t, err, explore.ErrNilGraph)
	_, err = explore.Dual(nil, 5)
	assert.ErrorIs(t, err, explore.ErrNilGraph)

	_, err = explore.Single(g, -1)
	assert.ErrorIs(t, err, explore.ErrNegativeBudget)
	_, err = explore.Dual(g, -1)
	assert.ErrorIs(t, err, explore.ErrNegativeBudget)

	_, err = explore.Single(g, 5, explore.WithStart("ZZ"))
	assert.ErrorIs(t, err, explore.ErrStartNotFound)

	_, err = explore.Single(g, 5, explore.WithProgress(0, nil))
	assert.ErrorIs(t, err, explore.ErrOptionViolation)
	_, err = explore.Single(g, 5, explore.WithPolicy(canon.Policy(42)))
	assert.ErrorIs(t, err, explore.ErrOptionViolation)
}

// TestYieldOverflow rejects budgets under which an accumulated yield could wrap.
func TestYieldOverflow(t *testing.T) {
	g := fixture.Line(math.MaxInt / 2)

	for _, p := range policies {
		_, err := explore.Single(g, 30, explore.WithPolicy(p))
		assert.ErrorIs(t, err, explore.ErrYieldOverflow, p)
		_, err = explore.Dual(g, 26, explore.WithPolicy(p))
		assert.ErrorIs(t, err, explore.ErrYieldOverflow, p)
	}

	// yield*budget == MaxInt/2*2 still fits
	res, err := explore.Single(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Best)
	res, err = explore.Single(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Best)
}

// TestZeroBudget verifies that no yield is possible without time.
func TestZeroBudget(t *testing.T) {
	g := fixture.ExampleGraph()
	for _, p := range policies {
		solo, err := explore.Single(g, 0, explore.WithPolicy(p))
		require.NoError(t, err)
		assert.Zero(t, solo.Best)
		assert.Equal(t, 1, solo.Dequeued)

		duo, err := explore.Dual(g, 0, explore.WithPolicy(p))
		require.NoError(t, err)
		assert.Zero(t, duo.Best)
	}
}

// TestUnreachableValve verifies that valves out of reach contribute nothing.
func TestUnreachableValve(t *testing.T) {
	// AA-N1(7)-N2-N3-N4(100)
	g := fixture.Line(7, 0, 0, 100)

	solo, err := explore.Single(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, solo.Best) // walk, open at t=2, release 7*1

	duo, err := explore.Dual(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, duo.Best)

	// only valve out of reach
	far := fixture.Line(0, 0, 0, 100)
	solo, err = explore.Single(far, 4)
	require.NoError(t, err)
	assert.Zero(t, solo.Best)
}

// TestStartOverride verifies that WithStart moves the seed state.
func TestStartOverride(t *testing.T) {
	g := fixture.Line(7)
	res, err := explore.Single(g, 2, explore.WithStart("N1"))
	require.NoError(t, err)
	assert.Equal(t, 7, res.Best) // open immediately: 7*1
}

// TestIdempotent verifies that repeated runs agree exactly.
func TestIdempotent(t *testing.T) {
	g := fixture.ExampleGraph()
	a, err := explore.Dual(g, 14)
	require.NoError(t, err)
	b, err := explore.Dual(g, 14)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestBudgetMonotonicity verifies one more tick never lowers the optimum.
func TestBudgetMonotonicity(t *testing.T) {
	g := fixture.ExampleGraph()
	prevSolo, prevDuo := 0, 0
	for budget := 0; budget <= 18; budget++ {
		solo, err := explore.Single(g, budget)
		require.NoError(t, err)
		duo, err := explore.Dual(g, budget)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, solo.Best, prevSolo, "single budget %d", budget)
		assert.GreaterOrEqual(t, duo.Best, prevDuo, "dual budget %d", budget)
		assert.GreaterOrEqual(t, duo.Best, solo.Best, "a second agent never hurts (budget %d)", budget)
		prevSolo, prevDuo = solo.Best, duo.Best
	}
}

// TestExpansionInvariants checks every queued transition: clocks fall,
// yields rise by exactly the newly activated valves, and no valve is
// activated twice.
func TestExpansionInvariants(t *testing.T) {
	g := fixture.ExampleGraph()
	check := func(t *testing.T, maxNew int) func(from, to explore.State) {
		return func(from, to explore.State) {
			require.Less(t, to.Time, from.Time)
			require.GreaterOrEqual(t, to.Yield, from.Yield)
			require.Equal(t, from.Set, to.Set&from.Set, "set must only grow")

			added := to.Set &^ from.Set
			require.LessOrEqual(t, added.Len(), maxNew)
			gain := 0
			for _, b := range added.Bits() {
				gain += g.Yield(g.Valves()[b]) * to.Time
			}
			require.Equal(t, to.Yield-from.Yield, gain)
		}
	}

	for _, p := range policies {
		_, err := explore.Single(g, 12, explore.WithPolicy(p), explore.WithOnPush(check(t, 1)))
		require.NoError(t, err)
		_, err = explore.Dual(g, 8, explore.WithPolicy(p), explore.WithOnPush(check(t, 2)))
		require.NoError(t, err)
	}
}

// TestWeightedEdges verifies multi-tick moves in Single and rejection in Dual.
func TestWeightedEdges(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0, core.Edge{To: "BB", Cost: 3}))
	require.NoError(t, b.AddNode("BB", 10, core.Edge{To: "AA", Cost: 3}))
	g, err := b.Build()
	require.NoError(t, err)

	res, err := explore.Single(g, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Best) // arrive t=2, open t=1

	res, err = explore.Single(g, 3)
	require.NoError(t, err)
	assert.Zero(t, res.Best) // arrive with no time left

	_, err = explore.Dual(g, 5)
	assert.ErrorIs(t, err, explore.ErrNonUniform)
}

// TestWeightedEdges_SlowArrivalFirst checks that a slow walk over a costly
// edge reaching a state first does not hide a faster walk arriving later.
func TestWeightedEdges_SlowArrivalFirst(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("AA", 0, core.Edge{To: "BB", Cost: 3}, core.Tunnel("CC")))
	require.NoError(t, b.AddNode("BB", 10))
	require.NoError(t, b.AddNode("CC", 0, core.Tunnel("BB")))
	g, err := b.Build()
	require.NoError(t, err)

	for _, p := range policies {
		res, err := explore.Single(g, 5, explore.WithPolicy(p))
		require.NoError(t, err)
		assert.Equal(t, 20, res.Best, p.String()) // AA→CC→BB arrives t=3, opens for 2
	}
}

// TestHooks verifies progress and improvement callbacks.
func TestHooks(t *testing.T) {
	g := fixture.ExampleGraph()
	var snaps []explore.Progress
	var bests []int
	res, err := explore.Single(g, 10,
		explore.WithProgress(50, func(p explore.Progress) { snaps = append(snaps, p) }),
		explore.WithOnImprove(func(best int) { bests = append(bests, best) }),
	)
	require.NoError(t, err)
	require.NotEmpty(t, snaps)
	require.NotEmpty(t, bests)
	assert.Equal(t, res.Best, bests[len(bests)-1])
	for i := 1; i < len(bests); i++ {
		assert.Greater(t, bests[i], bests[i-1])
	}
	for i, p := range snaps {
		assert.Equal(t, 50*(i+1), p.Dequeued)
		assert.LessOrEqual(t, p.Best, res.Best)
	}
}

// TestCancellation verifies that a cancelled context stops the search.
func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := explore.Dual(fixture.ExampleGraph(), 26, explore.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
