package replacement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSHiPBadInsert is spec scenario 4: with SHCT all zero, a miss at
// PC=0x40 inserts with rrpv=3 (RRIPMax-1) and increments SHiPBadInserts.
func TestSHiPBadInsert(t *testing.T) {
	e := New(8, 4, PolicySHiP, 1)

	e.Update(0, 0, LineView{}, 0, 0x40, 0, false)

	require.EqualValues(t, RRIPMax-1, e.repl[0][0].rrpv)
	require.EqualValues(t, 1, e.Stats.SHiPBadInserts)
	require.EqualValues(t, 0, e.Stats.SHiPGoodInserts)
}

// TestSHiPGoodInsertAfterTraining shows SHCT being trained by a hit at the
// same signature, then a later fill at that signature inserting "good"
// (rrpv=RRIPMax-2).
func TestSHiPGoodInsertAfterTraining(t *testing.T) {
	e := New(8, 4, PolicySHiP, 1)

	// First fill at PC 0x40 into way 0: SHCT[sig(0x40)] is 0, so bad insert.
	e.Update(0, 0, LineView{}, 0, 0x40, 0, false)
	require.EqualValues(t, RRIPMax-1, e.repl[0][0].rrpv)

	// A hit on way 0 with the same current PC increments SHCT[sig(0x40)].
	// The recorded signature at way 0 is also 0x40's signature, so this
	// also matches the classical SHiP behavior — only a *different* PC at
	// hit time would expose the spec.md §9 open-question deviation.
	e.Update(0, 0, LineView{}, 0, 0x40, 0, true)
	require.EqualValues(t, 0, e.repl[0][0].rrpv)
	require.EqualValues(t, 1, e.sh.get(signatureOf(0x40)))

	// Now a fresh miss at the same PC, filling a different way, should see
	// SHCT[sig(0x40)] == 1 and insert "good".
	e.Update(0, 1, LineView{}, 0, 0x40, 0, false)
	require.EqualValues(t, RRIPMax-2, e.repl[0][1].rrpv)
	require.EqualValues(t, 1, e.Stats.SHiPGoodInserts)
}

// TestSHiPSignatureDerivation pins down the bit manipulation of spec.md
// §4.6: sig = (PC >> 2) & ((1<<14) - 1).
func TestSHiPSignatureDerivation(t *testing.T) {
	require.EqualValues(t, 0x10, signatureOf(0x40))
	require.EqualValues(t, 0, signatureOf(0))
	require.EqualValues(t, (1<<NumSigBits)-1, signatureOf(^uint64(0)))
}
