package config

import (
	_ "embed"
)

// Game IDs with an embedded default config.
const (
	CatcherID     = "catcher"
	CatcherRushID = "catcher_rush"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

//go:embed defaults/catcher_rush.yaml
var defaultCatcherRushYAML []byte

// DefaultCatcherConfig returns the default configuration of the simple variant.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		World: CatcherWorld{
			Width:  800,
			Height: 600,
		},
		Player: CatcherPlayer{
			X:          400,
			Y:          550,
			Scale:      0.5,
			Speed:      300,
			BodyWidth:  0.6,
			BodyHeight: 0.8,
		},
		Items: CatcherItems{
			Scale:           0.5,
			HitboxFactor:    0.4,
			FoodProbability: 0.7,
			SpawnInset:      50,
			FoodSpeed:       200,
			TrapSpeed:       250,
		},
		Spawn: CatcherSpawn{
			DelayMS: 800,
		},
		Gameplay: CatcherGameplay{
			Lives:      3,
			FoodReward: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			SpeedDivisor: 2,
		},
	}
}

// DefaultRushConfig returns the default configuration of the harder variant.
func DefaultRushConfig() CatcherConfig {
	cfg := DefaultCatcherConfig()
	cfg.Items.HitboxFactor = 0.15
	cfg.Gameplay.Lives = 2
	cfg.Gameplay.StartGate = true
	cfg.Flourish = CatcherFlourish{
		Enabled:    true,
		Every:      50,
		Turns:      2,
		DurationMS: 1000,
		IntervalMS: 16,
	}
	cfg.Difficulty = DifficultyConfig{
		Enabled:      true,
		SpeedDivisor: 2,
		SpeedCap:     300,
		DelayStep:    5,
		MinDelayMS:   300,
	}
	return cfg
}

// DefaultFor returns the hardcoded default for a game ID.
func DefaultFor(gameID string) CatcherConfig {
	if gameID == CatcherRushID {
		return DefaultRushConfig()
	}
	return DefaultCatcherConfig()
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case CatcherID:
		return defaultCatcherYAML
	case CatcherRushID:
		return defaultCatcherRushYAML
	default:
		return nil
	}
}
