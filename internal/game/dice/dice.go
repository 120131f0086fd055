// Package dice provides the randomness abstraction used for action success
// rolls, output quantities and effect chance rolls.
package dice

// ChanceScale is the resolution of probability rolls: a chance p succeeds
// when Intn(ChanceScale) < p*ChanceScale.
const ChanceScale = 1_000_000

// Source is the randomness provider for rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Chance rolls against probability p.
//
// p <= 0 never succeeds and p >= 1 always succeeds; neither consumes randomness.
// Postcondition: Returns the raw roll in [0, ChanceScale) (or -1 when no roll was made)
// and whether the roll succeeded.
func Chance(src Source, p float64) (roll int, ok bool) {
	switch {
	case p <= 0:
		return -1, false
	case p >= 1:
		return -1, true
	}
	roll = src.Intn(ChanceScale)
	return roll, roll < int(p*ChanceScale)
}

// Between returns a uniformly distributed integer in [lo, hi].
//
// Precondition: lo <= hi.
// Postcondition: lo <= result <= hi. When lo == hi no randomness is consumed.
func Between(src Source, lo, hi int) int {
	if hi < lo {
		panic("dice: Between called with hi < lo")
	}
	if hi == lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}
