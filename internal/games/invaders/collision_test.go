package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaserHitsAlien(t *testing.T) {
	s := newTestSim(t)
	alien := placeAlien(s.World, 100, 0)
	laser := placeLaser(s.World, 100, -10)

	report := CheckCollisions(s)

	assert.Equal(t, 3, s.Score)
	assert.Equal(t, 1, report.Collisions)
	assert.Equal(t, 1, report.AliensShot)
	assert.Equal(t, 2, report.Despawned)
	assert.False(t, s.World.Alive(alien))
	assert.False(t, s.World.Alive(laser))
	assert.Equal(t, uint(3), s.Lives)
}

func TestEachOverlappingPairScores(t *testing.T) {
	s := newTestSim(t)
	placeAlien(s.World, -100, 100)
	placeAlien(s.World, -60, 100)
	placeLaser(s.World, -80, 100)

	report := CheckCollisions(s)

	assert.Equal(t, 6, s.Score)
	assert.Equal(t, 2, report.AliensShot)
	assert.Equal(t, 3, report.Despawned)
	assert.Equal(t, 0, s.World.Count(TagAlien))
	assert.Equal(t, 0, s.World.Count(TagLaser))
}

func TestAlienReachesFloor(t *testing.T) {
	s := newTestSim(t)
	alien := placeAlien(s.World, 200, -290)

	report := CheckCollisions(s)

	assert.Equal(t, -1, s.Score)
	assert.Equal(t, 1, report.AliensLanded)
	assert.Equal(t, 0, report.Collisions)
	assert.False(t, s.World.Alive(alien))
	assert.Equal(t, uint(3), s.Lives, "landing costs score, not lives")
}

func TestFloorPenaltyIndependentOfHit(t *testing.T) {
	s := newTestSim(t)
	alien := placeAlien(s.World, 200, -290)
	laser := placeLaser(s.World, 200, -285)

	report := CheckCollisions(s)

	assert.Equal(t, 3-1, s.Score)
	assert.Equal(t, 1, report.AliensShot)
	assert.Equal(t, 1, report.AliensLanded)
	assert.Equal(t, 2, report.Despawned, "alien removed once even though two checks hit it")
	assert.False(t, s.World.Alive(alien))
	assert.False(t, s.World.Alive(laser))
}

func TestAlienCrashesIntoSpaceship(t *testing.T) {
	s := newTestSim(t)
	alien := placeAlien(s.World, 30, -235)

	report := CheckCollisions(s)

	assert.Equal(t, uint(2), s.Lives)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, report.AliensCrashed)
	assert.False(t, s.World.Alive(alien))
	assert.True(t, s.World.Alive(s.World.Single(TagSpaceship)))
}

func TestShotAlienStillCrashesIntoSpaceship(t *testing.T) {
	s := newTestSim(t)
	alien := placeAlien(s.World, 30, -235)
	laser := placeLaser(s.World, 30, -225)

	report := CheckCollisions(s)

	assert.Equal(t, 3, s.Score)
	assert.Equal(t, uint(2), s.Lives)
	assert.Equal(t, 1, report.AliensShot)
	assert.Equal(t, 1, report.AliensCrashed)
	assert.Equal(t, 2, report.Despawned, "alien removed once even though two checks hit it")
	assert.False(t, s.World.Alive(alien))
	assert.False(t, s.World.Alive(laser))
	assert.True(t, s.World.Alive(s.World.Single(TagSpaceship)))
}

func TestLivesSaturateAtZero(t *testing.T) {
	s := newTestSim(t)
	s.Lives = 1
	placeAlien(s.World, -20, -240)
	placeAlien(s.World, 20, -240)

	report := CheckCollisions(s)

	assert.Equal(t, 2, report.AliensCrashed)
	assert.Equal(t, uint(0), s.Lives)
}

func TestLaserHitsWallWithoutEffect(t *testing.T) {
	s := newTestSim(t)
	laser := placeLaser(s.World, 0, 300)

	report := CheckCollisions(s)

	assert.Equal(t, 1, report.Collisions)
	assert.Equal(t, 0, s.Score)
	assert.True(t, s.World.Alive(laser), "lasers pass through walls")
}

func TestAliensIgnoreSideWalls(t *testing.T) {
	s := newTestSim(t)
	alien := placeAlien(s.World, -450, 0)

	report := CheckCollisions(s)

	assert.Equal(t, CollisionReport{}, report)
	assert.True(t, s.World.Alive(alien))
}

func TestCollisionsRequireSpaceship(t *testing.T) {
	s := newTestSim(t)
	s.World.Despawn(s.World.Single(TagSpaceship))

	assert.Panics(t, func() { CheckCollisions(s) })
}
