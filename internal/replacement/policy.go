// Package replacement implements the pluggable cache-line replacement engine
// of a last-level cache simulator: six interchangeable policies (LRU,
// RANDOM, SRRIP, DRRIP, SHiP, EAF) plus a reserved CUSTOM slot, and the
// shared structures (Set-Dueling PSEL, SHCT, EAF Bloom filter) some of them
// need.
package replacement

// Policy is one of the stable integer codes a cache simulator selects at
// construction time.
type Policy uint32

const (
	PolicyLRU Policy = iota
	PolicyRandom
	PolicySRRIP
	PolicyDRRIP
	PolicySHiP
	PolicyEAF
	PolicyCustom
)

func (p Policy) String() string {
	switch p {
	case PolicyLRU:
		return "LRU"
	case PolicyRandom:
		return "RANDOM"
	case PolicySRRIP:
		return "SRRIP"
	case PolicyDRRIP:
		return "DRRIP"
	case PolicySHiP:
		return "SHiP"
	case PolicyEAF:
		return "EAF"
	case PolicyCustom:
		return "CUSTOM"
	default:
		return "UNKNOWN"
	}
}

// AccessType is opaque to the engine; it is only threaded through to
// whichever policy cares to look at it (none of the six implemented
// policies currently do, but the contract carries it for CUSTOM).
type AccessType uint32

// Constants named in the external interface (spec.md §6). None of these are
// runtime-configurable; they are properties of the replacement algorithms
// themselves, not of a particular cache instance.
const (
	// RRIPMax is one past the largest RRPV value; RRPV ranges [0, RRIPMax-1].
	RRIPMax = 4

	// NumLeaderSets is the number of leader sets dedicated to each side of
	// a dueling pair (static vs. bimodal/bypass).
	NumLeaderSets = 32

	// BRRIPRate is the denominator of BRRIP's "long re-reference" insertion
	// probability: 1 in BRRIPRate misses insert at RRIPMax-2.
	BRRIPRate = 16

	// PSELMax is the ceiling of the shared saturating PSEL counter.
	PSELMax = 1024

	// NumSigBits is the width of a SHiP PC signature.
	NumSigBits = 14

	// NumSHCTEntries is the size of the Signature History Counter Table.
	NumSHCTEntries = 1 << NumSigBits

	// NumSHCTCtrBits is the width of each SHCT saturating counter.
	NumSHCTCtrBits = 3

	// shctCeiling is the counter's documented ceiling, which is one past the
	// largest value actually representable in NumSHCTCtrBits bits (spec.md
	// §9 open question 2, preserved verbatim).
	shctCeiling = 1 << NumSHCTCtrBits

	// Alpha is the EAF sizing factor: NumEAFEntry = Alpha * 1024 * 16.
	Alpha = 8

	// NumEAFEntry is the number of cells in the Evicted-Address Filter.
	NumEAFEntry = Alpha * 16 * 1024

	// NumHash is the number of independent hash functions the EAF uses.
	NumHash = 2

	// eafResetThreshold is the number of victim-path insertions after which
	// the whole EAF filter is zeroed and AddrCounter wraps to 0.
	eafResetThreshold = 16 * 1024

	// h3Domain bounds the random constants sampled for the H3 hash tables:
	// the reference samples into [0, 32576*4). Every constant is below
	// 2^17 = NumEAFEntry, so any XOR of them is a valid filter index.
	h3Domain = 32576 * 4
)
