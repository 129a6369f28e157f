package replacement

import "log"

// Update is called after every access, hit or miss. For a miss, updateWay is
// the way ChooseVictim just selected and currLine describes the freshly
// installed line; for a hit, updateWay is the hit way. Mutates per-line
// state and, for policy-specific paths, PSEL/SHCT/EAF (spec.md §4.1).
func (e *Engine) Update(setIndex, updateWay int, currLine LineView, tid int, pc uint64, accessType AccessType, hit bool) {
	e.Stats.References++

	set := e.repl[setIndex]

	switch e.policy {
	case PolicyLRU:
		e.updateLRU(set, updateWay)
	case PolicyRandom:
		// Random replacement requires no replacement state update.
	case PolicySRRIP:
		e.updateSRRIP(set, updateWay, hit)
	case PolicyDRRIP:
		e.updateDRRIP(setIndex, set, updateWay, hit)
	case PolicySHiP:
		e.updateSHiP(setIndex, set, updateWay, hit, pc)
	case PolicyEAF:
		e.updateEAF(setIndex, set, updateWay, hit, currLine)
	case PolicyCustom:
		// Reserved extension point; original_source leaves this branch
		// empty and the reference never reaches it in practice.
	default:
		log.Fatalf("replacement: unknown policy code %d reached update dispatcher", e.policy)
	}
}

// updateLRU implements spec.md §4.2: let p = lruPos[updateWay]; every way
// with a smaller stack position ages by one; updateWay becomes most recent.
func (e *Engine) updateLRU(set []lineState, updateWay int) {
	p := set[updateWay].lruPos
	for way := range set {
		if set[way].lruPos < p {
			set[way].lruPos++
		}
	}
	set[updateWay].lruPos = 0
}

// srripHitRRPV applies the configured hit policy: Hit-Priority (default,
// rrpv -> 0) or Frequency-Priority (decrement toward 0). Only HP is ever
// selected at construction (spec.md §9 note 5).
func (e *Engine) srripHitRRPV(line *lineState) {
	if e.hitPolicy {
		line.rrpv = satDec(line.rrpv)
	} else {
		line.rrpv = 0
	}
}

// updateSRRIP implements spec.md §4.4's base SRRIP update.
func (e *Engine) updateSRRIP(set []lineState, updateWay int, hit bool) {
	line := &set[updateWay]
	if hit {
		e.srripHitRRPV(line)
		return
	}
	line.rrpv = RRIPMax - 2
}

// updateBRRIP implements spec.md §4.4's BRRIP update, used only inside
// DRRIP: hits behave like SRRIP; misses insert at RRIPMax-2 with
// probability 1/BRRIPRate, otherwise at RRIPMax-1.
func (e *Engine) updateBRRIP(set []lineState, updateWay int, hit bool) {
	line := &set[updateWay]
	if hit {
		e.srripHitRRPV(line)
		return
	}
	if e.rng.Intn(BRRIPRate) == BRRIPRate-1 {
		line.rrpv = RRIPMax - 2
	} else {
		line.rrpv = RRIPMax - 1
	}
}

// updateDRRIP implements the Set-Dueling shell of spec.md §4.5 over SRRIP
// (static) and BRRIP (bimodal). PSEL only moves on leader-set misses.
func (e *Engine) updateDRRIP(setIndex int, set []lineState, updateWay int, hit bool) {
	switch classifyLeader(setIndex) {
	case leaderStatic:
		e.updateSRRIP(set, updateWay, hit)
		if !hit {
			e.ps.onLeaderMiss(leaderStatic)
			e.Stats.DRRIPStaticLeaderMisses++
		}
	case leaderBimodal:
		e.updateBRRIP(set, updateWay, hit)
		if !hit {
			e.ps.onLeaderMiss(leaderBimodal)
			e.Stats.DRRIPBimodalLeaderMisses++
		}
	default:
		if e.ps.followerPrefersStatic() {
			e.updateSRRIP(set, updateWay, hit)
			if !hit {
				e.Stats.DRRIPStaticInserts++
			}
		} else {
			e.updateBRRIP(set, updateWay, hit)
			if !hit {
				e.Stats.DRRIPBimodalInserts++
			}
		}
	}
}

// updateSHiP implements spec.md §4.6. The hit path increments
// SHCT[sig(currentPC)], not SHCT[signature recorded at fill] — preserved
// per spec.md §9 open question 1, a known deviation from classical SHiP
// that the reimplementer is told to flag rather than silently fix.
func (e *Engine) updateSHiP(setIndex int, set []lineState, updateWay int, hit bool, pc uint64) {
	line := &set[updateWay]
	sigNow := signatureOf(pc)

	if hit {
		line.outcome = true
		e.sh.increment(sigNow)
		line.rrpv = 0
		return
	}

	if !line.outcome {
		e.sh.decrement(line.signature)
	}
	line.outcome = false
	line.signature = sigNow

	if e.sh.get(sigNow) == 0 {
		line.rrpv = RRIPMax - 1
		e.Stats.SHiPBadInserts++
	} else {
		line.rrpv = RRIPMax - 2
		e.Stats.SHiPGoodInserts++
	}
}

// updateSEAF implements the static-EAF update of spec.md §4.7: hits behave
// like SRRIP; misses insert based on EAF membership of the new line's block
// address.
func (e *Engine) updateSEAF(set []lineState, updateWay int, hit bool, addr uint64) {
	line := &set[updateWay]
	if hit {
		e.srripHitRRPV(line)
		return
	}
	if e.ef.present(addr) {
		line.rrpv = RRIPMax - 2
		e.Stats.EAFStaticGoodInserts++
	} else {
		line.rrpv = RRIPMax - 1
		e.Stats.EAFStaticBadInserts++
	}
}

// updateBEAF implements the bypass/probabilistic-EAF update of spec.md
// §4.7. The random draw happens on every miss regardless of membership;
// only the AND of (present AND draw<=2) determines the branch.
func (e *Engine) updateBEAF(set []lineState, updateWay int, hit bool, addr uint64) {
	line := &set[updateWay]
	if hit {
		e.srripHitRRPV(line)
		return
	}
	draw := e.rng.Intn(10)
	if e.ef.present(addr) && draw <= 2 {
		line.rrpv = RRIPMax - 2
		e.Stats.EAFBimodalGoodInserts++
	} else {
		line.rrpv = RRIPMax - 1
		e.Stats.EAFBimodalBadInserts++
	}
}

// updateEAF routes to SEAF or BEAF via the same dueling shell DRRIP uses
// (spec.md §4.5, §4.7), updating PSEL on leader-set misses.
func (e *Engine) updateEAF(setIndex int, set []lineState, updateWay int, hit bool, currLine LineView) {
	addr := blockAddress(currLine.Tag, setIndex, e.numSets)

	switch classifyLeader(setIndex) {
	case leaderStatic:
		e.updateSEAF(set, updateWay, hit, addr)
		if !hit {
			e.ps.onLeaderMiss(leaderStatic)
			e.Stats.EAFLeaderStaticInserts++
		}
	case leaderBimodal:
		e.updateBEAF(set, updateWay, hit, addr)
		if !hit {
			e.ps.onLeaderMiss(leaderBimodal)
			e.Stats.EAFLeaderBimodalInserts++
		}
	default:
		if e.ps.followerPrefersStatic() {
			e.updateSEAF(set, updateWay, hit, addr)
		} else {
			e.updateBEAF(set, updateWay, hit, addr)
		}
	}
}
