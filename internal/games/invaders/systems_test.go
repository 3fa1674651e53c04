package invaders

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestApplyVelocityIsAdditive(t *testing.T) {
	once := NewWorld()
	split := NewWorld()
	vel := core.V2(120, -300)

	a := once.Spawn(Descriptor{Tags: TagAlien, Velocity: &vel})
	b := split.Spawn(Descriptor{Tags: TagAlien, Velocity: &vel})

	ApplyVelocity(once, 1.0)
	for range 4 {
		ApplyVelocity(split, 0.25)
	}

	ta, _ := once.Transform(a)
	tb, _ := split.Transform(b)
	assert.InDelta(t, ta.Translation.X, tb.Translation.X, 1e-9)
	assert.InDelta(t, ta.Translation.Y, tb.Translation.Y, 1e-9)
	assert.Equal(t, core.V2(120, -300), ta.Translation)
}

func TestApplyVelocitySkipsStaticEntities(t *testing.T) {
	w := NewWorld()
	wall := place(w, TagWall|TagCollider, 10, 20, 5, 5)

	ApplyVelocity(w, 1)

	tr, _ := w.Transform(wall)
	assert.Equal(t, core.V2(10, 20), tr.Translation)
}

func TestApplyVelocityIgnoresBadDelta(t *testing.T) {
	w := NewWorld()
	vel := core.V2(100, 100)
	e := w.Spawn(Descriptor{Tags: TagLaser, Velocity: &vel})

	ApplyVelocity(w, -1)
	ApplyVelocity(w, math.NaN())
	ApplyVelocity(w, math.Inf(1))

	tr, _ := w.Transform(e)
	assert.Equal(t, core.V2(0, 0), tr.Translation)
}

func TestMoveSpaceshipClampsToBounds(t *testing.T) {
	s := newTestSim(t)
	require.Equal(t, core.V2(0, -240), shipPosition(t, s))

	// Moving left at 700 for a full second would reach -700
	MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, holding(KeyLeft), 1.0)
	assert.Equal(t, -375.0, shipPosition(t, s).X)

	MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, holding(KeyRight), 10.0)
	assert.Equal(t, 375.0, shipPosition(t, s).X)

	// y never changes
	assert.Equal(t, -240.0, shipPosition(t, s).Y)
}

func TestMoveSpaceshipOpposingKeysCancel(t *testing.T) {
	s := newTestSim(t)

	MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, holding(KeyLeft, KeyRight), 0.5)
	assert.Equal(t, 0.0, shipPosition(t, s).X)

	MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, holding(KeyRight), 0.1)
	assert.InDelta(t, 70.0, shipPosition(t, s).X, 1e-9)
}

func TestMoveSpaceshipStaysInBoundsForAnyInput(t *testing.T) {
	s := newTestSim(t)
	lo, hi := s.Arena.PaddleBounds(s.Config.Spaceship.Size.W, s.Config.Spaceship.Padding)
	rng := core.NewRNG(7)
	inputs := []keys{noKeys(), holding(KeyLeft), holding(KeyRight), holding(KeyLeft, KeyRight)}

	for i := range 2000 {
		in := inputs[rng.Next()%uint64(len(inputs))]
		dt := rng.Uniform(0, 0.5)
		MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, in, dt)

		x := shipPosition(t, s).X
		require.GreaterOrEqual(t, x, lo, "step %d", i)
		require.LessOrEqual(t, x, hi, "step %d", i)
	}
}

func TestFireLaserSpawnsAboveSpaceship(t *testing.T) {
	s := newTestSim(t)
	MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, holding(KeyRight), 0.1)

	laser, fired := FireLaser(s.World, s.Config.Laser, pressing(KeyFire))
	require.True(t, fired)

	tr, ok := s.World.Transform(laser)
	require.True(t, ok)
	assert.InDelta(t, 70.0, tr.Translation.X, 1e-9)
	assert.Equal(t, -230.0, tr.Translation.Y) // ship y + half ship height
	assert.Equal(t, core.V2(15, 15), tr.Scale)

	vel, ok := s.World.Velocities.Get(laser)
	require.True(t, ok)
	assert.Equal(t, core.V2(0, 700), vel)
}

func TestFireLaserDownwardVariant(t *testing.T) {
	s := newTestSim(t, func(cfg *config.InvadersConfig) {
		cfg.Laser.Direction = config.Direction{X: 0, Y: -2}
	})

	laser, fired := FireLaser(s.World, s.Config.Laser, pressing(KeyFire))
	require.True(t, fired)

	tr, _ := s.World.Transform(laser)
	vel, _ := s.World.Velocities.Get(laser)
	assert.Equal(t, -250.0, tr.Translation.Y)
	assert.Equal(t, core.V2(0, -700), vel)
}

func TestFireLaserRequiresEdge(t *testing.T) {
	s := newTestSim(t)

	_, fired := FireLaser(s.World, s.Config.Laser, holding(KeyFire))
	assert.False(t, fired)
	assert.Equal(t, 0, s.World.Count(TagLaser))
}

func TestActuatorsRequireOneSpaceship(t *testing.T) {
	s := newTestSim(t)
	ship := s.World.Single(TagSpaceship)

	extra := place(s.World, TagSpaceship|TagCollider, 0, -250, 60, 30)
	assert.Panics(t, func() { MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, holding(KeyLeft), 0.1) })
	assert.Panics(t, func() { FireLaser(s.World, s.Config.Laser, pressing(KeyFire)) })

	s.World.Despawn(extra)
	s.World.Despawn(ship)
	assert.Panics(t, func() { MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, holding(KeyLeft), 0.1) })
	assert.Panics(t, func() { FireLaser(s.World, s.Config.Laser, pressing(KeyFire)) })

	// Without a fire edge there is nothing to aim, so no spaceship is needed
	_, fired := FireLaser(s.World, s.Config.Laser, noKeys())
	assert.False(t, fired)
}

func TestSpawnAlien(t *testing.T) {
	s := newTestSim(t)

	e := SpawnAlien(s.World, s.Arena, s.Config.Aliens, fixedRand(0), 300)
	tr, _ := s.World.Transform(e)
	assert.Equal(t, core.V2(-415, 265), tr.Translation)
	assert.True(t, s.World.Has(e, TagAlien|TagCollider))

	e = SpawnAlien(s.World, s.Arena, s.Config.Aliens, fixedRand(1), 300)
	tr, _ = s.World.Transform(e)
	assert.Equal(t, 415.0, tr.Translation.X)

	// One second of motion moves an alien down by its speed
	ApplyVelocity(s.World, 1.0)
	tr, _ = s.World.Transform(e)
	assert.Equal(t, 265.0-300.0, tr.Translation.Y)
}

func TestSpawnAlienWithinRange(t *testing.T) {
	s := newTestSim(t)
	rng := core.NewRNG(99)
	lo, hi := s.Arena.SpawnRange(s.Config.Aliens.Size.W)

	for range 500 {
		e := SpawnAlien(s.World, s.Arena, s.Config.Aliens, rng, 300)
		tr, _ := s.World.Transform(e)
		require.GreaterOrEqual(t, tr.Translation.X, lo)
		require.LessOrEqual(t, tr.Translation.X, hi)
	}
}

func TestCullLasers(t *testing.T) {
	s := newTestSim(t)
	inside := placeLaser(s.World, 0, 0)
	edge := placeLaser(s.World, 0, 310)
	outside := placeLaser(s.World, 0, 400)

	assert.Equal(t, 1, CullLasers(s.World, s.Arena))
	assert.True(t, s.World.Alive(inside))
	assert.True(t, s.World.Alive(edge))
	assert.False(t, s.World.Alive(outside))
}
