package replacement

import (
	"log"
	"math/rand"
)

// Engine is a single per-cache instance of the replacement policy module.
// It is single-threaded, synchronous, and non-suspending (spec.md §5): every
// ChooseVictim/Update call runs to completion in the caller's goroutine, and
// the engine has no notion of cancellation or timeout. An embedding
// multi-threaded simulator must serialize calls behind its own mutex.
type Engine struct {
	numSets int
	assoc   int
	policy  Policy

	// hitPolicy selects SRRIP's hit behavior: false = Hit-Priority (rrpv -> 0),
	// true = Frequency-Priority (rrpv decremented toward 0). Only HP is ever
	// selected at construction (original_source never sets it true), and
	// there is no exported setter, so only code inside this package can
	// select FP; the field and the FP branch match the reference's own dead
	// code (spec.md §9 note 5).
	hitPolicy bool

	repl [][]lineState

	rng *rand.Rand
	ps  psel
	sh  *shct
	ef  *eaf

	Stats Stats
}

// New constructs the replacement engine for a cache with the given number
// of sets and associativity, running the given policy. seed fixes the
// engine's pseudorandom source so RANDOM/BRRIP/BEAF draws and the EAF's H3
// hash tables are reproducible (spec.md §5).
func New(numSets, assoc int, policy Policy, seed int64) *Engine {
	if numSets <= 0 || assoc <= 0 {
		// The reference asserts when the per-set table cannot be allocated
		// (spec.md §7); a non-positive geometry is the Go analogue of that
		// failure, since make() itself cannot fail here.
		log.Fatalf("replacement: cannot allocate per-set table for %d sets x %d ways", numSets, assoc)
	}

	rng := rand.New(rand.NewSource(seed))

	e := &Engine{
		numSets: numSets,
		assoc:   assoc,
		policy:  policy,
		rng:     rng,
		ps:      newPSEL(),
		sh:      &shct{},
		ef:      newEAF(rng),
	}

	e.repl = make([][]lineState, numSets)
	for s := 0; s < numSets; s++ {
		set := make([]lineState, assoc)
		for w := 0; w < assoc; w++ {
			set[w] = lineState{
				lruPos: uint32(w),
				rrpv:   RRIPMax - 1,
			}
		}
		e.repl[s] = set
	}

	return e
}

// SetPolicy switches the engine's active policy. Callers must not invoke
// this while a ChooseVictim/Update pair is outstanding (spec.md §5: the
// engine is not reentrant). Supplemented from original_source's
// SetReplacementPolicy, dropped by spec.md's distillation (SPEC_FULL.md §4).
func (e *Engine) SetPolicy(p Policy) {
	e.policy = p
}

// Policy reports the engine's active policy.
func (e *Engine) Policy() Policy {
	return e.policy
}
