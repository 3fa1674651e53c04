package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Key is a simulation-level input key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
	KeyStart
)

// Input exposes the key state for one tick.
type Input interface {
	// Held reports whether the key is currently down.
	Held(k Key) bool
	// JustPressed reports whether the key went down during this tick.
	JustPressed(k Key) bool
}

// Rand supplies uniform random numbers to the spawner.
type Rand interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
}

// sanitizeDelta turns negative or NaN deltas into zero.
func sanitizeDelta(dt float64) float64 {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0
	}
	return dt
}

// ApplyVelocity moves every entity with a velocity by velocity*dt.
func ApplyVelocity(w *World, dt float64) {
	dt = sanitizeDelta(dt)
	if dt == 0 {
		return
	}
	for _, e := range w.Velocities.entities {
		v := w.Velocities.components[e]
		t := w.Transforms.components[e]
		t.Translation = t.Translation.Add(v.Scale(dt))
		w.Transforms.components[e] = t
	}
}

// MoveSpaceship applies held left/right input to the spaceship and clamps
// it between the side walls. Holding both keys cancels out. It panics unless
// the world holds exactly one spaceship.
func MoveSpaceship(w *World, a Arena, cfg config.SpaceshipConfig, in Input, dt float64) {
	ship := w.Single(TagSpaceship)
	t, _ := w.Transform(ship)

	direction := 0.0
	if in.Held(KeyLeft) {
		direction -= 1
	}
	if in.Held(KeyRight) {
		direction += 1
	}

	lo, hi := a.PaddleBounds(t.Scale.X, cfg.Padding)
	x := t.Translation.X + direction*cfg.Speed*sanitizeDelta(dt)
	t.Translation.X = core.ClampF(x, lo, hi)
	w.SetTransform(ship, t)
}

// FireLaser spawns one laser above the spaceship when fire was just pressed.
// Holding fire does not auto-repeat.
func FireLaser(w *World, cfg config.LaserConfig, in Input) (Entity, bool) {
	if !in.JustPressed(KeyFire) {
		return 0, false
	}
	ship, _ := w.Transform(w.Single(TagSpaceship))

	dir := core.V2(cfg.Direction.X, cfg.Direction.Y).Normalize()
	offset := ship.Scale.Y / 2
	if dir.Y < 0 {
		offset = -offset
	} else if dir.Y == 0 {
		offset = 0
	}

	velocity := dir.Scale(cfg.Speed)
	e := w.Spawn(Descriptor{
		Tags: TagLaser,
		Transform: Transform{
			Translation: core.V2(ship.Translation.X, ship.Translation.Y+offset),
			Scale:       core.V2(cfg.Size.W, cfg.Size.H),
		},
		Velocity: &velocity,
	})
	return e, true
}

// SpawnAlien places one alien at a random x near the top wall, moving at speed.
func SpawnAlien(w *World, a Arena, cfg config.AliensConfig, rng Rand, speed float64) Entity {
	lo, hi := a.SpawnRange(cfg.Size.W)
	x := lo
	if hi > lo {
		x = rng.Uniform(lo, hi)
	}

	velocity := core.V2(cfg.Direction.X, cfg.Direction.Y).Normalize().Scale(speed)
	return w.Spawn(Descriptor{
		Tags: TagAlien | TagCollider,
		Transform: Transform{
			Translation: core.V2(x, a.SpawnHeight(cfg.Size.W)),
			Scale:       core.V2(cfg.Size.W, cfg.Size.H),
		},
		Velocity: &velocity,
	})
}

// CullLasers removes lasers that no longer overlap the arena.
func CullLasers(w *World, a Arena) int {
	bounds := a.Bounds()
	var gone []Entity
	for _, e := range w.Tagged(TagLaser) {
		t, _ := w.Transform(e)
		if !t.Box().Overlaps(bounds) {
			gone = append(gone, e)
		}
	}
	return w.DespawnAll(gone)
}

// spawnArena creates the four walls and the spaceship.
func spawnArena(w *World, a Arena, cfg config.SpaceshipConfig) Entity {
	for _, loc := range WallLocations {
		w.Spawn(Descriptor{
			Tags: TagWall | TagCollider,
			Transform: Transform{
				Translation: a.WallPosition(loc),
				Scale:       a.WallSize(loc),
			},
		})
	}

	return w.Spawn(Descriptor{
		Tags: TagSpaceship | TagCollider,
		Transform: Transform{
			Translation: core.V2((a.Left+a.Right)/2, a.Bottom+cfg.FloorGap),
			Scale:       core.V2(cfg.Size.W, cfg.Size.H),
		},
	})
}
