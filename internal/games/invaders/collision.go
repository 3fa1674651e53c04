package invaders

// CollisionReport summarizes what the collision pass resolved in one tick.
type CollisionReport struct {
	Collisions    int // Laser overlaps with any collider, including walls and the spaceship
	AliensShot    int // Alien/laser pairs resolved as hits
	AliensCrashed int // Aliens that hit the spaceship
	AliensLanded  int // Aliens that reached the bottom wall
	Despawned     int // Entities actually removed
}

type collider struct {
	entity Entity
	box    Transform
	alien  bool
}

// CheckCollisions resolves laser hits, spaceship crashes and landings for the
// current tick and applies their score and lives effects to s.
//
// Rectangles are read once before anything is removed, so every overlapping
// pair counts and the three alien checks are independent of each other. An
// entity removed by more than one check is only removed once.
func CheckCollisions(s *Sim) CollisionReport {
	w := s.World
	ship, _ := w.Transform(w.Single(TagSpaceship))
	shipBox := ship.Box()
	floor := s.Arena.Wall(WallBottom)

	lasers := w.Tagged(TagLaser)
	laserBoxes := make([]Transform, len(lasers))
	for i, e := range lasers {
		laserBoxes[i], _ = w.Transform(e)
	}

	colliders := make([]collider, 0, w.Count(TagCollider))
	for _, e := range w.Tagged(TagCollider) {
		t, _ := w.Transform(e)
		colliders = append(colliders, collider{entity: e, box: t, alien: w.Has(e, TagAlien)})
	}

	var (
		report  CollisionReport
		despawn []Entity
	)

	for _, c := range colliders {
		cbox := c.box.Box()

		for i, laser := range lasers {
			if !laserBoxes[i].Box().Overlaps(cbox) {
				continue
			}
			report.Collisions++
			if c.alien {
				report.AliensShot++
				s.Score += s.Config.Gameplay.HitBonus
				despawn = append(despawn, c.entity, laser)
			}
		}

		if !c.alien {
			continue
		}

		if shipBox.Overlaps(cbox) {
			report.AliensCrashed++
			if s.Lives > 0 {
				s.Lives--
			}
			despawn = append(despawn, c.entity)
		}

		if floor.Overlaps(cbox) {
			report.AliensLanded++
			s.Score -= s.Config.Gameplay.MissPenalty
			despawn = append(despawn, c.entity)
		}
	}

	report.Despawned = w.DespawnAll(despawn)
	return report
}
