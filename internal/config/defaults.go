package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration. It matches
// defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Arena: ArenaConfig{
			LeftWall:      -450,
			RightWall:     450,
			BottomWall:    -300,
			TopWall:       300,
			WallThickness: 10,
		},
		Spaceship: SpaceshipConfig{
			Size:     Size{W: 120, H: 20},
			Speed:    700,
			Padding:  10,
			FloorGap: 60,
		},
		Laser: LaserConfig{
			Size:      Size{W: 15, H: 15},
			Speed:     700,
			Direction: Direction{X: 0, Y: 1},
		},
		Aliens: AliensConfig{
			Size:        Size{W: 70, H: 30},
			Speed:       300,
			Direction:   Direction{X: 0, Y: -1},
			SpawnPeriod: 1.0,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			HitBonus:    3,
			MissPenalty: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				SpawnReduction:  0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
