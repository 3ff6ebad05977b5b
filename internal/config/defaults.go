package config

import (
	_ "embed"
)

//go:embed defaults/blockhop.yaml
var defaultBlockHopYAML []byte

// DefaultBlockHopConfig returns the default Block Hop configuration.
// It matches defaults/blockhop.yaml and is used when even the embedded file
// cannot be parsed.
func DefaultBlockHopConfig() BlockHopConfig {
	return BlockHopConfig{
		Physics: BlockHopPhysics{
			Gravity:     0.5,
			JumpForce:   -9,
			MoveSpeed:   5,
			Friction:    0.8,
			StompBounce: -6,
			FallLimit:   0,
		},
		Player: BlockHopPlayer{
			Size:   24,
			StartX: 50,
			StartY: 300,
		},
		Build: BlockHopBuild{
			BlockSize:   32,
			StartBlocks: 3,
		},
		Generator: BlockHopGenerator{
			Width:              1800,
			GroundY:            368,
			StartPlatformWidth: 120,

			FirstPlatformX: 200,
			PlatformCount:  Range{8, 11},
			PlatformWidth:  Range{60, 120},
			PlatformGap:    Range{80, 150},
			BaseY:          350,
			YVariation:     Range{-60, 20},
			MinY:           120,
			MaxY:           350,
			RetryLift:      50,

			GoalPlatformInset: 100,
			GoalPlatformWidth: 80,
			GoalY:             Range{100, 199},
			GoalInset:         50,

			SpikeCount:        Range{8, 11},
			SpikeAttempts:     80,
			GroundSpikeChance: 0.3,
			SafeRadius:        150,

			CoinCount:    Range{8, 11},
			CoinAttempts: 50,
			CoinLift:     20,
			CoinMaxY:     350,

			EnemyCount:    Range{3, 6},
			EnemyAttempts: 30,
			EnemyMaxY:     340,
			EnemySpeed:    FloatRange{1.5, 2.0},
		},
		Enemy: BlockHopEnemy{
			GroundTolerance: 2,
		},
		Input: BlockHopInput{
			HoldMS: 150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockhop":
		return defaultBlockHopYAML
	default:
		return nil
	}
}
