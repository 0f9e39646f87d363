package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "speedball.yaml"

// LoadSpeedball loads the game configuration.
// Search order: customPath -> ~/.speedball/configs/speedball.yaml -> ./configs/speedball.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names. The result is validated.
func LoadSpeedball(customPath string) (SpeedballConfig, error) {
	cfg := DefaultSpeedballConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validated(cfg, customPath)
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultSpeedballConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, validated(candidate, path)
		}
	}

	// Use embedded default YAML
	candidate := DefaultSpeedballConfig()
	if err := yaml.Unmarshal(defaultSpeedballYAML, &candidate); err != nil {
		return DefaultSpeedballConfig(), nil // Fallback to hardcoded if embed fails
	}
	return candidate, validated(candidate, "embedded defaults")
}

func validated(cfg SpeedballConfig, source string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", source, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".speedball", "configs", filename)
}

// ApplyPreset adjusts the configuration for a difficulty preset.
func ApplyPreset(cfg *SpeedballConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 130
		cfg.Ball.Speed = 4
		cfg.PowerUps.DropChance = 0.2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 6.5
		cfg.Gameplay.BallSpeedStep = 0.4
	}
}
