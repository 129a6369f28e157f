// Package host implements the minimal tag-store "cache datapath" that
// spec.md names as an external collaborator of the replacement engine: line
// valid bits, tags, and the address decode into (setIndex, tag). It exists
// only so the engine can be driven end to end by cmd/llcsim; it owns no
// replacement policy logic of its own.
package host

import "llcsim/internal/replacement"

// lineBytes is the simulated cache line size in bytes (spec.md §6: "cache
// line = 64 B").
const lineBytes = 64

// line is the host's own per-(set,way) bookkeeping: valid bit and tag. This
// is distinct from replacement.LineView, which is the read-only snapshot
// handed to the engine on each access.
type line struct {
	valid bool
	tag   uint64
}

// Cache is a direct-mapped-per-set tag store fronting a replacement.Engine.
// Adapted from the teacher's word-aligned, bounds-checked Memory (byte
// addressing, alignment checks) into a block-aligned tag store (set/tag
// decode, valid bits) — the same "decode an address, bounds-check it,
// mutate an array" shape, applied to cache lines instead of memory words.
type Cache struct {
	numSets int
	assoc   int
	lines   [][]line
	engine  *replacement.Engine
}

// NewCache builds a cache with numSets sets of assoc ways each, fronting a
// freshly constructed replacement engine running policy.
func NewCache(numSets, assoc int, policy replacement.Policy, seed int64) *Cache {
	c := &Cache{
		numSets: numSets,
		assoc:   assoc,
		engine:  replacement.New(numSets, assoc, policy, seed),
	}
	c.lines = make([][]line, numSets)
	for s := range c.lines {
		c.lines[s] = make([]line, assoc)
	}
	return c
}

// Engine exposes the underlying replacement engine, e.g. for Report().
func (c *Cache) Engine() *replacement.Engine {
	return c.engine
}

// decode splits a physical address into (setIndex, tag) the inverse of how
// the engine reconstructs a block address for EAF hashing (spec.md §3):
// the engine computes blockAddr = (tag*numSets)<<6 | (setIndex<<6), so here
// blockAddr = paddr>>6, setIndex = blockAddr % numSets, tag = blockAddr / numSets.
func (c *Cache) decode(paddr uint64) (setIndex int, tag uint64) {
	blockAddr := paddr / lineBytes
	setIndex = int(blockAddr % uint64(c.numSets))
	tag = blockAddr / uint64(c.numSets)
	return setIndex, tag
}

// Access looks up paddr, installing it on a miss. It returns whether the
// access hit and which way it landed in.
func (c *Cache) Access(tid int, pc, paddr uint64, accessType replacement.AccessType) (hit bool, way int) {
	setIndex, tag := c.decode(paddr)
	set := c.lines[setIndex]

	for w, l := range set {
		if l.valid && l.tag == tag {
			c.engine.Update(setIndex, w, replacement.LineView{Valid: true, Tag: tag}, tid, pc, accessType, true)
			return true, w
		}
	}

	way = c.invalidWay(set)
	if way < 0 {
		vicSet := make([]replacement.LineView, len(set))
		for w, l := range set {
			vicSet[w] = replacement.LineView{Valid: l.valid, Tag: l.tag}
		}
		var bypass bool
		way, bypass = c.engine.ChooseVictim(tid, setIndex, vicSet, c.assoc, pc, paddr, accessType)
		if bypass {
			// No implemented policy ever returns bypass (spec.md §4.1), but
			// a CUSTOM policy is allowed to; the host simply declines to
			// install and reports a miss with no resident way.
			return false, -1
		}
	}

	set[way] = line{valid: true, tag: tag}
	c.engine.Update(setIndex, way, replacement.LineView{Valid: true, Tag: tag}, tid, pc, accessType, false)
	return false, way
}

// invalidWay returns the first invalid way in set, or -1 if none (the
// caller contract the engine's victim selector relies on: spec.md §4.1
// precondition, §9 note 6).
func (c *Cache) invalidWay(set []line) int {
	for w, l := range set {
		if !l.valid {
			return w
		}
	}
	return -1
}
