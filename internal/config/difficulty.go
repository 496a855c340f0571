package config

import "math"

// DifficultyManager calculates fall speed and spawn delay from the score.
type DifficultyManager struct {
	cfg       DifficultyConfig
	baseDelay float64
}

// NewDifficultyManager creates a new difficulty manager. baseDelay is the
// spawn delay at score zero.
func NewDifficultyManager(cfg DifficultyConfig, baseDelay float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:       cfg,
		baseDelay: baseDelay,
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Adaptive reports whether the spawn delay changes with score.
func (d *DifficultyManager) Adaptive() bool {
	return d.cfg.Enabled && d.cfg.DelayStep > 0
}

// SpeedBonus returns the extra fall speed for the given score.
func (d *DifficultyManager) SpeedBonus(score int) float64 {
	if !d.cfg.Enabled || d.cfg.SpeedDivisor <= 0 || score <= 0 {
		return 0
	}
	bonus := float64(score) / d.cfg.SpeedDivisor
	if d.cfg.SpeedCap > 0 {
		bonus = math.Min(bonus, d.cfg.SpeedCap)
	}
	return bonus
}

// SpawnDelay returns the spawn interval in milliseconds for the given score.
func (d *DifficultyManager) SpawnDelay(score int) float64 {
	if !d.Adaptive() || score <= 0 {
		return d.baseDelay
	}
	floor := math.Min(d.cfg.MinDelayMS, d.baseDelay)
	reduction := math.Min(float64(score)*d.cfg.DelayStep, d.baseDelay-floor)
	return math.Max(d.baseDelay-reduction, floor)
}
