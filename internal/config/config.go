// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the invaders game family.
// Distances are world units (the arena is centered on the origin, +Y up),
// speeds are world units per second and periods are seconds.
type InvadersConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Spaceship  SpaceshipConfig  `yaml:"spaceship"`
	Laser      LaserConfig      `yaml:"laser"`
	Aliens     AliensConfig     `yaml:"aliens"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Direction is a 2D direction; it is normalized before use.
type Direction struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ArenaConfig defines wall positions (wall centerlines) and thickness.
type ArenaConfig struct {
	LeftWall      float64 `yaml:"left_wall"`
	RightWall     float64 `yaml:"right_wall"`
	BottomWall    float64 `yaml:"bottom_wall"`
	TopWall       float64 `yaml:"top_wall"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// SpaceshipConfig defines the player paddle.
type SpaceshipConfig struct {
	Size     Size    `yaml:"size"`
	Speed    float64 `yaml:"speed"`
	Padding  float64 `yaml:"padding"`   // Gap kept between paddle and side walls
	FloorGap float64 `yaml:"floor_gap"` // Distance from bottom wall to paddle center
}

// LaserConfig defines projectiles.
type LaserConfig struct {
	Size      Size      `yaml:"size"`
	Speed     float64   `yaml:"speed"`
	Direction Direction `yaml:"direction"`

	// CullOffscreen despawns lasers that leave the arena. Off by default:
	// lasers otherwise live until they hit an alien.
	CullOffscreen bool `yaml:"cull_offscreen"`
}

// AliensConfig defines enemies and their spawner.
type AliensConfig struct {
	Size        Size      `yaml:"size"`
	Speed       float64   `yaml:"speed"`
	Direction   Direction `yaml:"direction"`
	SpawnPeriod float64   `yaml:"spawn_period"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int `yaml:"lives"`
	HitBonus    int `yaml:"hit_bonus"`    // Added when a laser destroys an alien
	MissPenalty int `yaml:"miss_penalty"` // Subtracted when an alien reaches the floor
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to alien speed factor at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn period removed at max difficulty
}

// ArenaWidth returns the distance between the side wall centerlines.
func (a ArenaConfig) ArenaWidth() float64 {
	return a.RightWall - a.LeftWall
}

// ArenaHeight returns the distance between the top and bottom wall centerlines.
func (a ArenaConfig) ArenaHeight() float64 {
	return a.TopWall - a.BottomWall
}

// Validate checks the configuration for values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	var errs []error

	if c.Arena.ArenaWidth() <= 0 {
		errs = append(errs, fmt.Errorf("arena width must be positive, got %g", c.Arena.ArenaWidth()))
	}
	if c.Arena.ArenaHeight() <= 0 {
		errs = append(errs, fmt.Errorf("arena height must be positive, got %g", c.Arena.ArenaHeight()))
	}
	if c.Arena.WallThickness < 0 {
		errs = append(errs, fmt.Errorf("wall thickness must not be negative, got %g", c.Arena.WallThickness))
	}

	sizes := map[string]Size{
		"spaceship.size": c.Spaceship.Size,
		"laser.size":     c.Laser.Size,
		"aliens.size":    c.Aliens.Size,
	}
	for _, name := range []string{"spaceship.size", "laser.size", "aliens.size"} {
		s := sizes[name]
		if s.W <= 0 || s.H <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %gx%g", name, s.W, s.H))
		}
	}

	if c.Spaceship.Speed < 0 || c.Laser.Speed < 0 || c.Aliens.Speed < 0 {
		errs = append(errs, errors.New("speeds must not be negative"))
	}
	if c.Aliens.SpawnPeriod <= 0 {
		errs = append(errs, fmt.Errorf("aliens.spawn_period must be positive, got %g", c.Aliens.SpawnPeriod))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid invaders config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value to a preset.
// Returns "" for unknown or empty values.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
