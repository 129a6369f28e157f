package replacement

import "math/rand"

// eaf is the Evicted-Address Filter: a Bloom-style membership structure over
// recently evicted block addresses, backed by two H3 hash functions and
// reset wholesale every eafResetThreshold insertions.
type eaf struct {
	cells       []bool // NumEAFEntry bits; one bool per cell is simplest and
	// just as faithful as packing, since the whole thing is cleared at once.
	hashA, hashB [64]uint32 // H3 random constants, fixed for the engine's life
	addrCounter  int
}

// newEAF materializes the filter and samples its H3 hash tables from rng.
// The tables are immutable after this call.
func newEAF(rng *rand.Rand) *eaf {
	f := &eaf{cells: make([]bool, NumEAFEntry)}
	for i := range f.hashA {
		f.hashA[i] = uint32(rng.Intn(h3Domain))
	}
	for i := range f.hashB {
		f.hashB[i] = uint32(rng.Intn(h3Domain))
	}
	return f
}

// h3 computes an H3 hash: XOR together table[i] for every bit i of addr that
// is set.
func h3(addr uint64, table *[64]uint32) uint32 {
	var base uint32
	for i := 0; i < 64; i++ {
		if addr&(1<<uint(i)) != 0 {
			base ^= table[i]
		}
	}
	return base
}

func (f *eaf) hashAOf(addr uint64) uint32 { return h3(addr, &f.hashA) }
func (f *eaf) hashBOf(addr uint64) uint32 { return h3(addr, &f.hashB) }

// present reports whether addr is (probably) a recently evicted block.
func (f *eaf) present(addr uint64) bool {
	return f.cells[f.hashAOf(addr)] && f.cells[f.hashBOf(addr)]
}

// recordEviction writes addr's two hash cells and advances AddrCounter,
// resetting the whole filter once the threshold is reached. This is the
// engine's only mutator of the filter: it is called only from the victim
// path, once per EAF ChooseVictim call whose chosen way is valid, with that
// way's block address (spec.md §4.7).
func (f *eaf) recordEviction(addr uint64) {
	f.cells[f.hashAOf(addr)] = true
	f.cells[f.hashBOf(addr)] = true
	f.addrCounter++
	if f.addrCounter >= eafResetThreshold {
		f.reset()
	}
}

func (f *eaf) reset() {
	for i := range f.cells {
		f.cells[i] = false
	}
	f.addrCounter = 0
}
