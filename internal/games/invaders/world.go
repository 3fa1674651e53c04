package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Entity is an opaque identifier. Ids are never reused within a World.
type Entity uint32

// Tag is a bit set of entity roles.
type Tag uint8

const (
	TagSpaceship Tag = 1 << iota
	TagLaser
	TagAlien
	TagCollider
	TagWall
)

// Transform is an entity's position (center) and scale (full size).
type Transform struct {
	Translation core.Vec2
	Scale       core.Vec2
}

// Box returns the collision box of the transform.
func (t Transform) Box() core.Box {
	return core.NewBox(t.Translation, t.Scale)
}

// Store is a typed component table keyed by entity.
// Iteration follows insertion order so simulations stay deterministic.
type Store[T any] struct {
	components map[Entity]T
	entities   []Entity
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
		entities:   make([]Entity, 0, 64),
	}
}

// Set inserts or updates the component for e.
func (s *Store[T]) Set(e Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get returns the component for e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether e has a component in this store.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes e's component. Removing a missing entity is a no-op.
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Entities returns a copy of the entities in this store.
func (s *Store[T]) Entities() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Len returns the number of components.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Descriptor describes an entity to spawn.
type Descriptor struct {
	Tags      Tag
	Transform Transform
	Velocity  *core.Vec2 // nil for entities that never move on their own
}

// World owns every entity of one simulation and its component tables.
type World struct {
	next       Entity
	tags       *Store[Tag]
	Transforms *Store[Transform]
	Velocities *Store[core.Vec2]
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		next:       1,
		tags:       NewStore[Tag](),
		Transforms: NewStore[Transform](),
		Velocities: NewStore[core.Vec2](),
	}
}

// Spawn creates an entity from a descriptor and returns its id.
func (w *World) Spawn(d Descriptor) Entity {
	e := w.next
	w.next++

	w.tags.Set(e, d.Tags)
	w.Transforms.Set(e, d.Transform)
	if d.Velocity != nil {
		w.Velocities.Set(e, *d.Velocity)
	}
	return e
}

// Despawn removes an entity and all its components.
// Despawning an entity that is already gone is a no-op; returns whether
// anything was removed.
func (w *World) Despawn(e Entity) bool {
	if !w.tags.Has(e) {
		return false
	}
	w.tags.Remove(e)
	w.Transforms.Remove(e)
	w.Velocities.Remove(e)
	return true
}

// DespawnAll removes a batch of entities. Duplicates are allowed.
func (w *World) DespawnAll(entities []Entity) int {
	removed := 0
	for _, e := range entities {
		if w.Despawn(e) {
			removed++
		}
	}
	return removed
}

// Alive reports whether e exists.
func (w *World) Alive(e Entity) bool {
	return w.tags.Has(e)
}

// Has reports whether e exists and carries every bit of tag.
func (w *World) Has(e Entity, tag Tag) bool {
	t, ok := w.tags.Get(e)
	return ok && t&tag == tag
}

// Tagged returns all entities carrying every bit of tag, in spawn order.
func (w *World) Tagged(tag Tag) []Entity {
	var result []Entity
	for _, e := range w.tags.entities {
		if w.tags.components[e]&tag == tag {
			result = append(result, e)
		}
	}
	return result
}

// Count returns the number of entities carrying tag.
func (w *World) Count(tag Tag) int {
	n := 0
	for _, e := range w.tags.entities {
		if w.tags.components[e]&tag == tag {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.tags.Len()
}

// Transform returns the transform of e.
func (w *World) Transform(e Entity) (Transform, bool) {
	return w.Transforms.Get(e)
}

// SetTransform replaces the transform of a live entity.
func (w *World) SetTransform(e Entity, t Transform) {
	if !w.Alive(e) {
		return
	}
	w.Transforms.Set(e, t)
}

// Single returns the only entity carrying tag.
// Panics unless exactly one exists: callers rely on singletons like the
// spaceship being present for the whole game.
func (w *World) Single(tag Tag) Entity {
	matches := w.Tagged(tag)
	if len(matches) != 1 {
		panic(fmt.Sprintf("invaders: expected exactly one entity with tag %08b, found %d", tag, len(matches)))
	}
	return matches[0]
}
