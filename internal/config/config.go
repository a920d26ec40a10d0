// Package config provides YAML-based game configuration loading and
// difficulty management for the digger platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hook-digger/internal/dig"
)

// DiggerConfig contains all configuration for the hook digger game.
type DiggerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Hook       HookConfig       `yaml:"hook"`
	Round      RoundConfig      `yaml:"round"`
	Items      ItemsConfig      `yaml:"items"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the simulation field in field units.
type FieldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	SurfaceY float64 `yaml:"surface_y"`
	Margin   float64 `yaml:"margin"`
}

// HookConfig defines the swinging arm.
type HookConfig struct {
	PivotOffset   float64 `yaml:"pivot_offset"` // Distance of the pivot above the surface
	MaxAngle      float64 `yaml:"max_angle"`    // Radians
	SwingSpeed    float64 `yaml:"swing_speed"`
	ExtendSpeed   float64 `yaml:"extend_speed"`
	RetrieveSpeed float64 `yaml:"retrieve_speed"`
	MinLength     float64 `yaml:"min_length"`
}

// RoundConfig defines level targets and sizes.
type RoundConfig struct {
	BaseTarget    int     `yaml:"base_target"`
	TargetStep    int     `yaml:"target_step"` // Added per level after the first
	TimeLimit     int     `yaml:"time_limit"`  // Seconds
	ObjectCount   int     `yaml:"object_count"`
	MinSpawnDepth float64 `yaml:"min_spawn_depth"`
	RushTimeLimit int     `yaml:"rush_time_limit"` // Seconds, digger_rush mode
}

// ItemsConfig defines the kind mix. Keys are kind names or their aliases.
type ItemsConfig struct {
	Distribution map[string]float64 `yaml:"distribution"`
}

// Validate checks that the config describes a playable field. The item mix
// and spawn band go through the same checks the level generator applies.
func (c DiggerConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size %vx%v must be positive", c.Field.Width, c.Field.Height))
	}
	if c.Field.SurfaceY < 0 || c.Field.SurfaceY >= c.Field.Height {
		errs = append(errs, fmt.Errorf("surface_y %v outside field", c.Field.SurfaceY))
	}
	if c.Field.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin %v is negative", c.Field.Margin))
	}
	if !(c.Hook.MinLength > 0) || !(c.Hook.MaxAngle > 0) {
		errs = append(errs, fmt.Errorf("hook min_length %v and max_angle %v must be positive", c.Hook.MinLength, c.Hook.MaxAngle))
	}
	if !(c.Hook.ExtendSpeed > 0) || !(c.Hook.RetrieveSpeed > 0) {
		errs = append(errs, errors.New("hook speeds must be positive"))
	}
	if c.Round.TimeLimit <= 0 {
		errs = append(errs, fmt.Errorf("time_limit %d must be positive", c.Round.TimeLimit))
	}
	if c.Round.ObjectCount < 0 {
		errs = append(errs, fmt.Errorf("object_count %d is negative", c.Round.ObjectCount))
	}
	if c.Round.ObjectCount+min(c.Difficulty.Scaling.ExtraObjects, 0) < 0 {
		errs = append(errs, fmt.Errorf("extra_objects %d drives object_count below zero", c.Difficulty.Scaling.ExtraObjects))
	}

	dist, err := c.Distribution()
	if err != nil {
		errs = append(errs, err)
	} else if len(errs) == 0 {
		// Zero objects: checks weights and band without drawing anything.
		gen := dig.NewLevelGenerator(c.Layout(), nil, nil)
		if _, err := gen.Generate(dig.LevelConfig{
			ItemDistribution:    dist,
			MinSpawnDepthFactor: c.Round.MinSpawnDepth,
		}); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Layout returns the generator layout for the configured field.
func (c DiggerConfig) Layout() dig.Layout {
	return dig.Layout{
		Width:    c.Field.Width,
		Height:   c.Field.Height,
		SurfaceY: c.Field.SurfaceY,
		Margin:   c.Field.Margin,
	}
}

// HookSettings returns the simulator config, with the pivot centered above
// the surface.
func (c DiggerConfig) HookSettings() dig.HookConfig {
	return dig.HookConfig{
		Pivot:         dig.Pivot(c.Field.Width, c.Field.SurfaceY, c.Hook.PivotOffset),
		FieldW:        c.Field.Width,
		FieldH:        c.Field.Height,
		MaxAngle:      c.Hook.MaxAngle,
		SwingSpeed:    c.Hook.SwingSpeed,
		ExtendSpeed:   c.Hook.ExtendSpeed,
		RetrieveSpeed: c.Hook.RetrieveSpeed,
		MinLength:     c.Hook.MinLength,
	}
}

// Distribution parses the item mix. An empty mix returns nil, which selects
// the generator's fallback.
func (c DiggerConfig) Distribution() (map[dig.Kind]float64, error) {
	if len(c.Items.Distribution) == 0 {
		return nil, nil
	}
	dist := make(map[dig.Kind]float64, len(c.Items.Distribution))
	for name, w := range c.Items.Distribution {
		k, err := dig.ParseKind(name)
		if err != nil {
			return nil, err
		}
		dist[k] += w
	}
	return dist, nil
}

// TargetFor returns the score needed to clear a level (1-based).
func (c DiggerConfig) TargetFor(level int) int {
	if level < 1 {
		level = 1
	}
	return c.Round.BaseTarget + (level-1)*c.Round.TargetStep
}

// LevelFor builds the generator input for a level, scaled by the
// difficulty manager. dm may be nil.
func (c DiggerConfig) LevelFor(level int, dm *DifficultyManager) (dig.LevelConfig, error) {
	dist, err := c.Distribution()
	if err != nil {
		return dig.LevelConfig{}, err
	}

	lc := dig.LevelConfig{
		TargetScore:         c.TargetFor(level),
		TimeLimit:           c.Round.TimeLimit,
		ObjectCount:         c.Round.ObjectCount,
		ItemDistribution:    dist,
		MinSpawnDepthFactor: c.Round.MinSpawnDepth,
	}
	if dm != nil {
		lc.TimeLimit = dm.TimeLimit(lc.TimeLimit, level)
		lc.ObjectCount = dm.ObjectCount(lc.ObjectCount, level)
		lc.MinSpawnDepthFactor = dm.SpawnDepth(lc.MinSpawnDepthFactor, level)
	}
	return lc, nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases as levels go by.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to swing speed at max difficulty
	ExtraObjects    int     `yaml:"extra_objects"`    // Objects added at max difficulty
	DepthIncrease   float64 `yaml:"depth_increase"`   // Added to the spawn depth factor at max difficulty
	TimeReduction   int     `yaml:"time_reduction"`   // Seconds removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
