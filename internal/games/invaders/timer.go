package invaders

import "math"

// Timer is a repeating timer driven by simulated time.
type Timer struct {
	Period  float64 // Seconds between firings; non-positive disables the timer
	elapsed float64
}

// NewTimer creates a repeating timer with the given period in seconds.
func NewTimer(period float64) Timer {
	return Timer{Period: period}
}

// Tick advances the timer by dt seconds and returns how many times it
// fired. A large dt fires once per whole period covered so no spawns are
// lost when the host stalls. Negative, NaN and infinite deltas are ignored.
func (t *Timer) Tick(dt float64) int {
	if t.Period <= 0 || !(dt > 0) || math.IsInf(dt, 1) {
		return 0
	}
	t.elapsed += dt
	if t.elapsed < t.Period {
		return 0
	}
	n := math.Floor(t.elapsed / t.Period)
	t.elapsed -= n * t.Period
	return int(n)
}

// Elapsed returns the time accumulated towards the next firing.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Reset clears accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
}
