package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.void-runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultRunnerConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultRunnerConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".void-runner", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.MinWidth = 26
		cfg.Platforms.MaxWidth = 36
		cfg.Platforms.MinXSpacing = 32
		cfg.Platforms.MaxXSpacing = 40
		cfg.Platforms.MinYSpacing = -5
		cfg.Platforms.MaxYSpacing = 5
		cfg.Player.Gravity = 25
	case DifficultyHard:
		cfg.Platforms.MinWidth = 12
		cfg.Platforms.MaxWidth = 20
		cfg.Platforms.MinXSpacing = 38
		cfg.Platforms.MaxXSpacing = 50
		cfg.Platforms.MinYSpacing = -10
		cfg.Platforms.MaxYSpacing = 10
		cfg.Player.RunAcceleration = 8
	}
}
