package replacement

// LineView is the read-only view of one cache line the host hands to the
// engine. The cache array and line metadata belong to the host; the engine
// never mutates a LineView.
type LineView struct {
	Valid bool
	Tag   uint64
}

// lineState is the replacement state the engine keeps per (set, way). Most
// fields are dead for most policies — LRU never touches RRPV, RANDOM
// touches nothing — but a single flat record matches the reference and
// keeps the per-line storage a plain slice of value types.
type lineState struct {
	lruPos    uint32 // permutation of [0, W) within a set; 0 = most recent
	rrpv      uint32 // in [0, RRIPMax-1]
	signature uint32 // 14-bit SHiP signature recorded at the last fill
	outcome   bool   // true once the line has been reused since that fill
}

// blockAddress reconstructs a block address from a tag and set index the way
// the engine does it for EAF hashing (spec.md §3): ((tag * numSets) << 6) |
// (setIndex << 6). The host is expected to decode addresses the other way
// around (see internal/host), so this is only ever computed here, from the
// tag/setIndex pair the host already gave the engine.
func blockAddress(tag uint64, setIndex, numSets int) uint64 {
	return (tag*uint64(numSets))<<6 | (uint64(setIndex) << 6)
}
