package replacement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEAFReuseBoost is spec scenario 5, run in follower set 2 (which takes
// the SEAF branch at the midpoint PSEL): evicting a block at address A from
// that set records it in the filter; a later miss that reinstalls A inserts
// "good" (rrpv=RRIPMax-2) and increments EAFStaticGoodInserts, while a miss
// installing a fresh address B never seen before inserts "bad"
// (rrpv=RRIPMax-1) and increments EAFStaticBadInserts.
func TestEAFReuseBoost(t *testing.T) {
	e := New(8, 4, PolicyEAF, 42)
	require.True(t, e.ps.followerPrefersStatic(), "fresh PSEL must start at the midpoint, favoring SEAF")

	const setIndex = 2 // a follower set: not a multiple of 33 or 31
	require.Equal(t, leaderNone, classifyLeader(setIndex))

	tagA := uint64(0xABCD)
	vicSet := []LineView{{Valid: true, Tag: tagA}, {}, {}, {}}

	way, bypass := e.ChooseVictim(0, setIndex, vicSet, 4, 0, 0, 0)
	require.False(t, bypass)
	require.Equal(t, 0, way, "fresh engine always selects way 0 first (initial rrpv is already RRIPMax-1)")

	addrA := blockAddress(tagA, setIndex, 8)
	require.True(t, e.ef.present(addrA), "evicted address A must be recorded in the filter")

	// Reinstall A into the same way: SEAF should see it as present.
	e.Update(setIndex, 0, LineView{Valid: true, Tag: tagA}, 0, 0, 0, false)
	require.EqualValues(t, RRIPMax-2, e.repl[setIndex][0].rrpv)
	require.EqualValues(t, 1, e.Stats.EAFStaticGoodInserts)

	// A fresh address B, never evicted, should not be present.
	tagB := uint64(0x7777777)
	require.False(t, e.ef.present(blockAddress(tagB, setIndex, 8)))

	e.Update(setIndex, 1, LineView{Valid: true, Tag: tagB}, 0, 0, 0, false)
	require.EqualValues(t, RRIPMax-1, e.repl[setIndex][1].rrpv)
	require.EqualValues(t, 1, e.Stats.EAFStaticBadInserts)
}

// TestEAFPeriodicReset is spec scenario 6: after eafResetThreshold
// victim-path evictions, the filter is fully cleared and AddrCounter wraps
// to 0; a membership query for the address evicted just before the reset
// returns false afterward.
func TestEAFPeriodicReset(t *testing.T) {
	e := New(8, 4, PolicyEAF, 9)

	var lastAddr uint64
	for i := 0; i < eafResetThreshold; i++ {
		tag := uint64(i + 1)
		vicSet := []LineView{{Valid: true, Tag: tag}, {}, {}, {}}
		_, _ = e.ChooseVictim(0, 0, vicSet, 4, 0, 0, 0)
		lastAddr = blockAddress(tag, 0, 8)
	}

	require.Equal(t, 0, e.ef.addrCounter)
	require.False(t, e.ef.present(lastAddr), "the address evicted just before the reset must no longer be present")
	for _, c := range e.ef.cells {
		require.False(t, c)
	}
}

func TestEAFResetNotBeforeThreshold(t *testing.T) {
	e := New(8, 4, PolicyEAF, 9)
	for i := 0; i < eafResetThreshold-1; i++ {
		tag := uint64(i + 1)
		vicSet := []LineView{{Valid: true, Tag: tag}, {}, {}, {}}
		_, _ = e.ChooseVictim(0, 0, vicSet, 4, 0, 0, 0)
	}
	require.Equal(t, eafResetThreshold-1, e.ef.addrCounter)
}
