package invaders

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// keys is a scripted Input: held keys plus just-pressed edges.
type keys struct {
	held    map[Key]bool
	pressed map[Key]bool
}

func noKeys() keys {
	return keys{}
}

func holding(ks ...Key) keys {
	in := keys{held: make(map[Key]bool), pressed: make(map[Key]bool)}
	for _, k := range ks {
		in.held[k] = true
	}
	return in
}

func pressing(ks ...Key) keys {
	in := holding(ks...)
	for _, k := range ks {
		in.pressed[k] = true
	}
	return in
}

func (k keys) Held(key Key) bool        { return k.held[key] }
func (k keys) JustPressed(key Key) bool { return k.pressed[key] }

// fixedRand always returns the same fraction of the requested range.
type fixedRand float64

func (f fixedRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*float64(f)
}

// newTestSim builds an in-game simulation with the default config.
func newTestSim(t *testing.T, tune ...func(*config.InvadersConfig)) *Sim {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	for _, f := range tune {
		f(&cfg)
	}
	require.NoError(t, cfg.Validate())
	return NewSim(cfg, fixedRand(0.5), false)
}

// place spawns a motionless entity with the given tags.
func place(w *World, tags Tag, x, y, width, height float64) Entity {
	return w.Spawn(Descriptor{
		Tags: tags,
		Transform: Transform{
			Translation: core.V2(x, y),
			Scale:       core.V2(width, height),
		},
	})
}

func placeAlien(w *World, x, y float64) Entity {
	return place(w, TagAlien|TagCollider, x, y, 70, 30)
}

func placeLaser(w *World, x, y float64) Entity {
	return place(w, TagLaser, x, y, 15, 15)
}

func shipPosition(t *testing.T, s *Sim) core.Vec2 {
	t.Helper()
	tr, ok := s.World.Transform(s.World.Single(TagSpaceship))
	require.True(t, ok)
	return tr.Translation
}
