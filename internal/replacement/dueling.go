package replacement

// leaderKind identifies which side of a dueling pair, if any, a set is
// hard-wired to train.
type leaderKind int

const (
	leaderNone leaderKind = iota
	leaderStatic
	leaderBimodal
)

// classifyLeader applies the shared leader-set mapping of spec.md §4.5 to
// both DRRIP (SRRIP vs. BRRIP) and EAF (SEAF vs. BEAF). The static test is
// checked first, so a set satisfying both (none do: 31 and 33 are coprime
// and the two ranges don't overlap in practice) would resolve to static.
func classifyLeader(setIndex int) leaderKind {
	if setIndex%33 == 0 && setIndex < 33*NumLeaderSets {
		return leaderStatic
	}
	if setIndex%31 == 0 && setIndex > 0 && setIndex <= 31*NumLeaderSets {
		return leaderBimodal
	}
	return leaderNone
}

// psel is the saturating counter shared by DRRIP and EAF (never
// simultaneously: an engine instance runs exactly one policy).
type psel struct {
	value uint32
}

func newPSEL() psel {
	return psel{value: PSELMax / 2}
}

// followerPrefersStatic reports which variant a follower set should use.
func (p psel) followerPrefersStatic() bool {
	return p.value >= PSELMax/2
}

// onLeaderMiss updates PSEL for a miss observed in a leader set. Hits never
// move PSEL (spec.md §4.5).
func (p *psel) onLeaderMiss(kind leaderKind) {
	switch kind {
	case leaderStatic:
		p.value = satDec(p.value)
	case leaderBimodal:
		p.value = satInc(p.value, PSELMax)
	}
}
