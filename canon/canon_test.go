package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/canon"
	"github.com/katalvlaran/pressure/core"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]canon.Policy{
		"best-yield":  canon.BestYield,
		"BEST_YIELD":  canon.BestYield,
		"best":        canon.BestYield,
		"first-visit": canon.FirstVisit,
		" first ":     canon.FirstVisit,
	}
	for in, want := range cases {
		got, err := canon.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := canon.ParsePolicy("greedy")
	require.ErrorIs(t, err, canon.ErrUnknownPolicy)

	assert.Equal(t, "best-yield", canon.BestYield.String())
	assert.Equal(t, "first-visit", canon.FirstVisit.String())
	assert.Equal(t, "policy(9)", canon.Policy(9).String())
	assert.False(t, canon.Policy(9).Valid())
}

func TestSoloKey(t *testing.T) {
	set := core.Set(0).With(1)

	// FirstVisit ignores the clock but separates yields.
	a := canon.SoloKey(canon.FirstVisit, 3, 10, 40, set)
	b := canon.SoloKey(canon.FirstVisit, 3, 9, 40, set)
	c := canon.SoloKey(canon.FirstVisit, 3, 10, 41, set)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// BestYield ignores yield but separates clocks.
	d := canon.SoloKey(canon.BestYield, 3, 10, 40, set)
	e := canon.SoloKey(canon.BestYield, 3, 10, 99, set)
	f := canon.SoloKey(canon.BestYield, 3, 9, 40, set)
	assert.Equal(t, d, e)
	assert.NotEqual(t, d, f)
}

func TestDuoKey_Symmetry(t *testing.T) {
	set := core.Set(0).With(2)

	// BestYield treats agents as interchangeable.
	assert.Equal(t,
		canon.DuoKey(canon.BestYield, 1, 4, 7, 10, set),
		canon.DuoKey(canon.BestYield, 4, 1, 7, 10, set))

	// FirstVisit keeps the positional (naive) key.
	assert.NotEqual(t,
		canon.DuoKey(canon.FirstVisit, 1, 4, 7, 10, set),
		canon.DuoKey(canon.FirstVisit, 4, 1, 7, 10, set))

	// FirstVisit drops set and time entirely.
	assert.Equal(t,
		canon.DuoKey(canon.FirstVisit, 1, 4, 7, 10, set),
		canon.DuoKey(canon.FirstVisit, 1, 4, 3, 10, 0))
}

func TestTable_FirstVisit(t *testing.T) {
	tab := canon.NewTable[canon.Solo](canon.FirstVisit)
	k := canon.SoloKey(canon.FirstVisit, 0, 5, 0, 0)

	assert.True(t, tab.Offer(k, 0))
	assert.True(t, tab.Offer(k, 0))
	assert.True(t, tab.Claim(k, 0))
	assert.False(t, tab.Claim(k, 0))
	assert.Equal(t, 1, tab.Len())
	assert.Equal(t, canon.FirstVisit, tab.Policy())
}

func TestTable_BestYield(t *testing.T) {
	tab := canon.NewTable[canon.Solo](canon.BestYield)
	k := canon.SoloKey(canon.BestYield, 0, 5, 0, 0)

	require.True(t, tab.Offer(k, 10))
	assert.False(t, tab.Offer(k, 10), "equal yield is not an improvement")
	assert.False(t, tab.Offer(k, 3))
	require.True(t, tab.Offer(k, 12))

	// the stale 10 is skipped, the 12 expands once
	assert.False(t, tab.Claim(k, 10))
	assert.True(t, tab.Claim(k, 12))
	assert.False(t, tab.Claim(k, 12))

	// a later strict improvement re-opens the key
	require.True(t, tab.Offer(k, 15))
	assert.True(t, tab.Claim(k, 15))

	// seeds are claimable without an Offer
	seed := canon.SoloKey(canon.BestYield, 1, 30, 0, 0)
	assert.True(t, tab.Claim(seed, 0))
	assert.Equal(t, 2, tab.Len())
}
