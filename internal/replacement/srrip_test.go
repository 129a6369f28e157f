package replacement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSRRIPAging is spec scenario 2 (W=4): fill the set with 4 misses (all
// rrpv=2), then ChooseVictim must age every way once (to 3) and return
// way 0.
func TestSRRIPAging(t *testing.T) {
	e := New(8, 4, PolicySRRIP, 1)

	for way := 0; way < 4; way++ {
		e.Update(0, way, LineView{}, 0, 0, 0, false)
	}
	for _, l := range e.repl[0] {
		require.EqualValues(t, RRIPMax-2, l.rrpv)
	}

	way, bypass := e.ChooseVictim(0, 0, nil, 4, 0, 0, 0)
	require.False(t, bypass)
	require.Equal(t, 0, way)

	for _, l := range e.repl[0] {
		require.EqualValues(t, RRIPMax-1, l.rrpv, "every way should have aged by exactly one")
	}
}

// TestSRRIPHitPromotesToZero checks the hit-priority branch of spec.md
// §4.4: a hit sets rrpv to 0.
func TestSRRIPHitPromotesToZero(t *testing.T) {
	e := New(4, 4, PolicySRRIP, 1)
	e.Update(0, 0, LineView{}, 0, 0, 0, false)
	require.EqualValues(t, RRIPMax-2, e.repl[0][0].rrpv)

	e.Update(0, 0, LineView{}, 0, 0, 0, true)
	require.EqualValues(t, 0, e.repl[0][0].rrpv)
}

// TestRRPVStaysInRange checks invariant 2 of spec.md §8 across a mixed
// sequence of hits and misses.
func TestRRPVStaysInRange(t *testing.T) {
	e := New(4, 4, PolicySRRIP, 7)

	for i := 0; i < 50; i++ {
		way := i % 4
		hit := i%3 == 0
		e.Update(0, way, LineView{}, 0, 0, 0, hit)
		for _, l := range e.repl[0] {
			require.GreaterOrEqual(t, l.rrpv, uint32(0))
			require.LessOrEqual(t, l.rrpv, uint32(RRIPMax-1))
		}
	}
}
