package core

// RNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so a seed fully determines a game's spawn sequence.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
// Uses the high 53 bits, which are the well-mixed ones for an LCG.
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Uniform returns a random float64 in [lo, hi).
// Returns lo when the range is empty.
func (r *RNG) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// State returns the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState restores a state captured by State.
func (r *RNG) SetState(s uint64) {
	r.state = s
}
