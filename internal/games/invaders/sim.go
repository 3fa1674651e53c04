package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Phase is the game-flow state of a simulation.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhaseInGame
	PhaseGameOver
)

// String returns the phase name reported to the platform.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "menu"
	case PhaseInGame:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Stats are running totals for one game.
type Stats struct {
	LasersFired   int
	AliensSpawned int
	AliensShot    int
	AliensCrashed int
	AliensLanded  int
	Elapsed       float64 // Simulated seconds spent in game
}

// StepReport describes what happened during one Step.
type StepReport struct {
	CollisionReport
	Fired   bool
	Spawned int
	Culled  int
	Started bool // The start key left the main menu this tick
	Ended   bool // The game entered GameOver this tick
}

// Sim is the complete state of one game. All systems run against it in a
// fixed order from Step; nothing else mutates it.
type Sim struct {
	Config     config.InvadersConfig
	Arena      Arena
	World      *World
	Score      int
	Lives      uint
	Phase      Phase
	SpawnTimer Timer
	Ticks      int
	Stats      Stats

	// Collisions is the laser overlap count of the most recent tick.
	Collisions int

	rng        Rand
	difficulty *config.DifficultyManager
	hasMenu    bool
}

// NewSim creates a game ready to play. With a menu the game waits in
// PhaseMainMenu for the start key, otherwise it begins in PhaseInGame.
// Panics if the arena geometry is degenerate.
func NewSim(cfg config.InvadersConfig, rng Rand, hasMenu bool) *Sim {
	s := &Sim{
		Config:     cfg,
		Arena:      NewArena(cfg.Arena),
		World:      NewWorld(),
		SpawnTimer: NewTimer(cfg.Aliens.SpawnPeriod),
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		hasMenu:    hasMenu,
	}
	if cfg.Gameplay.Lives > 0 {
		s.Lives = uint(cfg.Gameplay.Lives)
	}

	spawnArena(s.World, s.Arena, cfg.Spaceship)

	s.Phase = PhaseInGame
	if hasMenu {
		s.Phase = PhaseMainMenu
	}
	return s
}

// HasMenu reports whether the game started at the main menu.
func (s *Sim) HasMenu() bool {
	return s.hasMenu
}

// Start leaves the main menu. It does nothing in any other phase.
func (s *Sim) Start() bool {
	if s.Phase != PhaseMainMenu {
		return false
	}
	s.Phase = PhaseInGame
	return true
}

// AlienSpeed returns the speed given to newly spawned aliens.
func (s *Sim) AlienSpeed() float64 {
	return s.difficulty.Speed(s.Config.Aliens.Speed, s.Score, s.Ticks)
}

// DifficultyLevel returns the current difficulty level in [0, 1].
func (s *Sim) DifficultyLevel() float64 {
	return s.difficulty.Level(s.Score, s.Ticks)
}

// Step advances the game by dt seconds of simulated time. Negative or NaN
// deltas count as zero.
//
// In game the systems run as: integrate, move spaceship, fire, collide,
// spawn, cull, phase check. The main menu only watches for the start key
// and GameOver ignores input entirely.
func (s *Sim) Step(dt float64, in Input) StepReport {
	var report StepReport
	s.Collisions = 0

	switch s.Phase {
	case PhaseMainMenu:
		if in.JustPressed(KeyStart) {
			report.Started = s.Start()
		}
		return report
	case PhaseGameOver:
		return report
	}

	dt = sanitizeDelta(dt)
	s.Ticks++
	s.Stats.Elapsed += dt

	ApplyVelocity(s.World, dt)
	MoveSpaceship(s.World, s.Arena, s.Config.Spaceship, in, dt)

	if _, fired := FireLaser(s.World, s.Config.Laser, in); fired {
		report.Fired = true
		s.Stats.LasersFired++
	}

	report.CollisionReport = CheckCollisions(s)
	s.Collisions = report.Collisions
	s.Stats.AliensShot += report.AliensShot
	s.Stats.AliensCrashed += report.AliensCrashed
	s.Stats.AliensLanded += report.AliensLanded

	s.SpawnTimer.Period = s.difficulty.SpawnPeriod(s.Config.Aliens.SpawnPeriod, s.Score, s.Ticks)
	for range s.SpawnTimer.Tick(dt) {
		SpawnAlien(s.World, s.Arena, s.Config.Aliens, s.rng, s.AlienSpeed())
		report.Spawned++
	}
	s.Stats.AliensSpawned += report.Spawned

	if s.Config.Laser.CullOffscreen {
		report.Culled = CullLasers(s.World, s.Arena)
	}

	report.Ended = s.checkPhase()
	return report
}

// checkPhase moves a game with no lives left to GameOver.
func (s *Sim) checkPhase() bool {
	if s.Phase == PhaseInGame && s.Lives < 1 {
		s.Phase = PhaseGameOver
		return true
	}
	return false
}
