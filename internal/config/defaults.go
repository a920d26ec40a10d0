package config

import (
	_ "embed"

	"github.com/vovakirdan/hook-digger/internal/dig"
)

//go:embed defaults/digger.yaml
var defaultDiggerYAML []byte

// DefaultDiggerConfig returns the default hook digger configuration.
func DefaultDiggerConfig() DiggerConfig {
	return DiggerConfig{
		Field: FieldConfig{
			Width:    800,
			Height:   600,
			SurfaceY: 240,
			Margin:   50,
		},
		Hook: HookConfig{
			PivotOffset:   25,
			MaxAngle:      1.22,
			SwingSpeed:    0.03,
			ExtendSpeed:   5,
			RetrieveSpeed: 8,
			MinLength:     30,
		},
		Round: RoundConfig{
			BaseTarget:    650,
			TargetStep:    200,
			TimeLimit:     60,
			ObjectCount:   8,
			MinSpawnDepth: 0.1,
			RushTimeLimit: 90,
		},
		Items: ItemsConfig{
			Distribution: defaultDistribution(),
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ExtraObjects:    6,
				DepthIncrease:   0.4,
				TimeReduction:   15,
			},
		},
	}
}

// defaultDistribution keys the generator's classic mix by kind name.
func defaultDistribution() map[string]float64 {
	dist := make(map[string]float64)
	for k, w := range dig.DefaultDistribution() {
		dist[string(k)] = w
	}
	return dist
}
