package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	s.Set(3, 30)
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(1, 11) // update does not move

	assert.Equal(t, []Entity{3, 1, 2}, s.Entities())

	s.Remove(1)
	s.Remove(1)
	assert.Equal(t, []Entity{3, 2}, s.Entities())
	assert.Equal(t, 2, s.Len())

	v, ok := s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	assert.False(t, s.Has(1))
}

func TestWorldSpawnDespawn(t *testing.T) {
	w := NewWorld()
	vel := core.V2(0, 5)

	a := w.Spawn(Descriptor{Tags: TagAlien | TagCollider, Velocity: &vel})
	b := w.Spawn(Descriptor{Tags: TagLaser})
	assert.NotEqual(t, a, b)

	assert.True(t, w.Has(a, TagAlien))
	assert.True(t, w.Has(a, TagAlien|TagCollider))
	assert.False(t, w.Has(b, TagCollider))
	assert.True(t, w.Velocities.Has(a))
	assert.False(t, w.Velocities.Has(b))

	assert.True(t, w.Despawn(a))
	assert.False(t, w.Despawn(a), "second despawn is a no-op")
	assert.False(t, w.Alive(a))
	assert.False(t, w.Velocities.Has(a))
	_, ok := w.Transform(a)
	assert.False(t, ok)

	c := w.Spawn(Descriptor{Tags: TagLaser})
	assert.NotEqual(t, a, c, "ids are never reused")
	assert.Equal(t, []Entity{b, c}, w.Tagged(TagLaser))
}

func TestWorldDespawnAllCountsOnce(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(Descriptor{Tags: TagAlien})
	b := w.Spawn(Descriptor{Tags: TagAlien})

	assert.Equal(t, 2, w.DespawnAll([]Entity{a, b, a, a}))
	assert.Equal(t, 0, w.Len())
}

func TestWorldSetTransformIgnoresDeadEntities(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(Descriptor{Tags: TagLaser})
	w.Despawn(e)

	w.SetTransform(e, Transform{Translation: core.V2(1, 1)})
	assert.False(t, w.Transforms.Has(e))
}

func TestWorldSingle(t *testing.T) {
	w := NewWorld()
	assert.Panics(t, func() { w.Single(TagSpaceship) })

	ship := w.Spawn(Descriptor{Tags: TagSpaceship | TagCollider})
	require.Equal(t, ship, w.Single(TagSpaceship))

	w.Spawn(Descriptor{Tags: TagSpaceship})
	assert.Panics(t, func() { w.Single(TagSpaceship) })
}
