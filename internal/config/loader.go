package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const diggerFile = "digger.yaml"

// LoadDigger loads hook digger configuration.
// Search order: customPath -> ~/.digger/configs/digger.yaml -> ./configs/digger.yaml -> embedded default
func LoadDigger(customPath string) (DiggerConfig, error) {
	cfg := DefaultDiggerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(diggerFile), filepath.Join("configs", diggerFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := decode(defaultDiggerYAML, &cfg); err != nil {
		return DefaultDiggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so the next source in the search order is used.
func tryLoad(path string) (DiggerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DiggerConfig{}, false
	}
	cfg := DefaultDiggerConfig()
	if err := decode(data, &cfg); err != nil {
		return DiggerConfig{}, false
	}
	if cfg.Validate() != nil {
		return DiggerConfig{}, false
	}
	return cfg, true
}

// decode overlays YAML onto cfg; keys missing from data keep their values.
// A distribution given in data replaces the current one instead of merging.
func decode(data []byte, cfg *DiggerConfig) error {
	prev := cfg.Items.Distribution
	cfg.Items.Distribution = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Items.Distribution = prev
		return err
	}
	if cfg.Items.Distribution == nil {
		cfg.Items.Distribution = prev
	}
	return nil
}

// Marshal renders the config as YAML.
func Marshal(cfg DiggerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".digger", "configs", filename)
}

// ApplyDiggerPreset modifies the config based on a difficulty preset.
func ApplyDiggerPreset(cfg *DiggerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
