// Package config provides YAML-based game configuration loading and
// difficulty management for the catcher games.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// CatcherConfig contains all tuning for one catcher variant.
type CatcherConfig struct {
	World      CatcherWorld     `yaml:"world"`
	Player     CatcherPlayer    `yaml:"player"`
	Items      CatcherItems     `yaml:"items"`
	Spawn      CatcherSpawn     `yaml:"spawn"`
	Gameplay   CatcherGameplay  `yaml:"gameplay"`
	Flourish   CatcherFlourish  `yaml:"flourish"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatcherWorld defines the play field in world pixels.
type CatcherWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CatcherPlayer defines the player sprite.
type CatcherPlayer struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Scale      float64 `yaml:"scale"`
	Speed      float64 `yaml:"speed"`       // Horizontal speed in pixels per second
	BodyWidth  float64 `yaml:"body_width"`  // Hitbox width as a fraction of displayed width
	BodyHeight float64 `yaml:"body_height"` // Hitbox height as a fraction of displayed height
}

// CatcherItems defines falling food and traps.
type CatcherItems struct {
	Scale           float64 `yaml:"scale"`
	HitboxFactor    float64 `yaml:"hitbox_factor"`    // Hitbox size as a fraction of displayed size
	FoodProbability float64 `yaml:"food_probability"` // Chance a spawn is food rather than a trap
	SpawnInset      float64 `yaml:"spawn_inset"`      // Horizontal margin kept free of spawns
	FoodSpeed       float64 `yaml:"food_speed"`       // Base fall speed, pixels per second
	TrapSpeed       float64 `yaml:"trap_speed"`
}

// CatcherSpawn defines the spawn timer.
type CatcherSpawn struct {
	DelayMS float64 `yaml:"delay_ms"`
}

// CatcherGameplay defines scoring and lives.
type CatcherGameplay struct {
	Lives      int  `yaml:"lives"`
	FoodReward int  `yaml:"food_reward"`
	StartGate  bool `yaml:"start_gate"` // Hold play behind a "press SPACE" overlay
}

// CatcherFlourish defines the milestone spin.
type CatcherFlourish struct {
	Enabled    bool    `yaml:"enabled"`
	Every      int     `yaml:"every"` // Score milestone step
	Turns      float64 `yaml:"turns"`
	DurationMS float64 `yaml:"duration_ms"`
	IntervalMS float64 `yaml:"interval_ms"`
}

// DifficultyConfig defines how fall speed and spawn delay scale with score.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SpeedDivisor float64 `yaml:"speed_divisor"` // Speed bonus = score / divisor
	SpeedCap     float64 `yaml:"speed_cap"`     // 0 = uncapped
	DelayStep    float64 `yaml:"delay_step"`    // Milliseconds removed per point; 0 = fixed delay
	MinDelayMS   float64 `yaml:"min_delay_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config default".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports every problem in the config.
func (c CatcherConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size %gx%g", c.World.Width, c.World.Height)
	check(c.Player.Scale > 0, "player.scale %g", c.Player.Scale)
	check(c.Player.BodyWidth > 0 && c.Player.BodyWidth <= 1, "player.body_width %g not in (0,1]", c.Player.BodyWidth)
	check(c.Player.BodyHeight > 0 && c.Player.BodyHeight <= 1, "player.body_height %g not in (0,1]", c.Player.BodyHeight)
	check(c.Items.Scale > 0, "items.scale %g", c.Items.Scale)
	check(c.Items.HitboxFactor > 0 && c.Items.HitboxFactor <= 1, "items.hitbox_factor %g not in (0,1]", c.Items.HitboxFactor)
	check(c.Items.FoodProbability >= 0 && c.Items.FoodProbability <= 1, "items.food_probability %g not in [0,1]", c.Items.FoodProbability)
	check(c.Items.SpawnInset >= 0 && 2*c.Items.SpawnInset < c.World.Width, "items.spawn_inset %g", c.Items.SpawnInset)
	check(c.Spawn.DelayMS > 0, "spawn.delay_ms %g", c.Spawn.DelayMS)
	check(c.Gameplay.Lives > 0, "gameplay.lives %d", c.Gameplay.Lives)
	check(c.Gameplay.FoodReward > 0, "gameplay.food_reward %d", c.Gameplay.FoodReward)

	if c.Flourish.Enabled {
		check(c.Flourish.Every > 0, "flourish.every %d", c.Flourish.Every)
		check(c.Flourish.DurationMS > 0, "flourish.duration_ms %g", c.Flourish.DurationMS)
		check(c.Flourish.IntervalMS > 0, "flourish.interval_ms %g", c.Flourish.IntervalMS)
	}
	if c.Difficulty.Enabled {
		check(c.Difficulty.SpeedDivisor > 0, "difficulty.speed_divisor %g", c.Difficulty.SpeedDivisor)
		check(c.Difficulty.SpeedCap >= 0, "difficulty.speed_cap %g", c.Difficulty.SpeedCap)
		check(c.Difficulty.DelayStep >= 0, "difficulty.delay_step %g", c.Difficulty.DelayStep)
		if c.Difficulty.DelayStep > 0 {
			check(c.Difficulty.MinDelayMS > 0, "difficulty.min_delay_ms %g", c.Difficulty.MinDelayMS)
			check(c.Difficulty.MinDelayMS <= c.Spawn.DelayMS,
				"difficulty.min_delay_ms %g above spawn.delay_ms %g", c.Difficulty.MinDelayMS, c.Spawn.DelayMS)
		}
	}

	return errors.Join(errs...)
}
