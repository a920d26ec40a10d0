package config

import "math"

// DifficultyManager calculates level parameters as the campaign advances.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a 1-based game level.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	span := float64(d.cfg.Progression.MaxAt - 1)
	if span <= 0 {
		span = 1 // Prevent division by zero
	}
	progress := clampF(float64(gameLevel-1)/span, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SwingSpeed returns the hook swing speed for a level.
func (d *DifficultyManager) SwingSpeed(base float64, gameLevel int) float64 {
	return base * (1.0 + d.Level(gameLevel)*d.cfg.Scaling.SpeedMultiplier)
}

// ObjectCount returns the number of objects to generate for a level.
func (d *DifficultyManager) ObjectCount(base int, gameLevel int) int {
	return base + int(d.Level(gameLevel)*float64(d.cfg.Scaling.ExtraObjects))
}

// SpawnDepth returns the spawn depth factor for a level. Deeper objects take
// longer to reach.
func (d *DifficultyManager) SpawnDepth(base float64, gameLevel int) float64 {
	return clampF(base+d.Level(gameLevel)*d.cfg.Scaling.DepthIncrease, 0.0, 1.0)
}

// TimeLimit returns the round length in seconds for a level.
func (d *DifficultyManager) TimeLimit(base int, gameLevel int) int {
	result := base - int(d.Level(gameLevel)*float64(d.cfg.Scaling.TimeReduction))
	if result < 15 { // Minimum playable round
		result = 15
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
