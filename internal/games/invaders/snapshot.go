package invaders

import "math"

// EntitySnapshot is the flattened state of one entity.
type EntitySnapshot struct {
	ID     uint32
	Tags   uint8
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Snapshot contains the complete simulation state for replay and
// determinism checks. Entities appear in spawn order.
type Snapshot struct {
	Tick         int
	Score        int
	Lives        uint
	Phase        int
	SpawnElapsed float64
	RNGState     uint64
	Entities     []EntitySnapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.sim.Snapshot()
	snap.RNGState = g.rng.State()
	return snap
}

// Snapshot returns the simulation state. RNGState is left zero because the
// random source is owned by the caller.
func (s *Sim) Snapshot() Snapshot {
	w := s.World
	entities := make([]EntitySnapshot, 0, w.Len())
	for _, e := range w.tags.entities {
		t, _ := w.Transform(e)
		v, _ := w.Velocities.Get(e)
		entities = append(entities, EntitySnapshot{
			ID:   uint32(e),
			Tags: uint8(w.tags.components[e]),
			X:    t.Translation.X,
			Y:    t.Translation.Y,
			W:    t.Scale.X,
			H:    t.Scale.Y,
			VX:   v.X,
			VY:   v.Y,
		})
	}

	return Snapshot{
		Tick:         s.Ticks,
		Score:        s.Score,
		Lives:        s.Lives,
		Phase:        int(s.Phase),
		SpawnElapsed: s.SpawnTimer.Elapsed(),
		Entities:     entities,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.SpawnElapsed)
	h = h*31 + snap.RNGState

	for _, e := range snap.Entities {
		h = h*31 + uint64(e.ID)
		h = h*31 + uint64(e.Tags)
		for _, f := range [...]float64{e.X, e.Y, e.W, e.H, e.VX, e.VY} {
			h = h*31 + math.Float64bits(f)
		}
	}
	return h
}
