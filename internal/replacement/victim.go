package replacement

import "log"

// ChooseVictim selects the way to evict for a miss into setIndex. vicSet is
// the host's read-only view of that set's W lines; assoc must equal the
// engine's configured associativity. The returned bypass flag is part of
// the contract (spec.md §4.1) but is never set by any implemented policy.
//
// Precondition: the caller is expected to prefer invalid ways itself before
// calling in; every policy here assumes vicSet is fully valid (spec.md §9
// note 6).
func (e *Engine) ChooseVictim(tid, setIndex int, vicSet []LineView, assoc int, pc, paddr uint64, accessType AccessType) (way int, bypass bool) {
	set := e.repl[setIndex]

	switch e.policy {
	case PolicyLRU:
		return e.lruVictim(set), false
	case PolicyRandom:
		return e.randomVictim(), false
	case PolicySRRIP, PolicyDRRIP, PolicySHiP:
		return e.srripVictim(set), false
	case PolicyEAF:
		return e.eafVictim(setIndex, set, vicSet), false
	default:
		// Unknown policy reaching the dispatcher is a fatal assertion
		// (spec.md §7); CUSTOM is accepted by New but has no victim
		// selection of its own (original_source leaves the contestant
		// block empty and falls through to its own assert(0)).
		log.Fatalf("replacement: policy %s has no victim selection", e.policy)
		return 0, false
	}
}

// lruVictim returns the way at the bottom of the LRU stack (spec.md §4.2).
func (e *Engine) lruVictim(set []lineState) int {
	for way, line := range set {
		if line.lruPos == uint32(e.assoc-1) {
			return way
		}
	}
	return 0
}

// randomVictim returns a uniform sample in [0, assoc) (spec.md §4.3).
func (e *Engine) randomVictim() int {
	return e.rng.Intn(e.assoc)
}

// srripVictim implements the RRIP-family scan shared by SRRIP, DRRIP, SHiP,
// and (as a first step) EAF (spec.md §4.4): find any way with
// rrpv == RRIPMax-1; if none, age every way by one and retry. This
// terminates in at most RRIPMax-1 rounds since rrpv can never reach
// RRIPMax itself (a rescan always happens first).
func (e *Engine) srripVictim(set []lineState) int {
	for {
		for way := range set {
			if set[way].rrpv == RRIPMax-1 {
				return way
			}
		}
		for way := range set {
			set[way].rrpv++
		}
	}
}

// eafVictim picks an SRRIP victim, then (if that way is currently valid)
// records its block address in the EAF Bloom filter before the fill
// completes (spec.md §4.7). The reference does not check whether the
// address about to be installed is the same block just evicted, so
// self-aliasing in the filter is possible but rare (spec.md §9 note 4) —
// preserved rather than silently fixed.
func (e *Engine) eafVictim(setIndex int, set []lineState, vicSet []LineView) int {
	way := e.srripVictim(set)
	if vicSet != nil && way < len(vicSet) && vicSet[way].Valid {
		addr := blockAddress(vicSet[way].Tag, setIndex, e.numSets)
		e.ef.recordEviction(addr)
	}
	return way
}
