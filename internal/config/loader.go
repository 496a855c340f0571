package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatcher loads the configuration for a catcher variant.
// Search order: customPath -> ~/.catcher/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are layered over the variant's hardcoded defaults, so partial files are valid.
func LoadCatcher(gameID, customPath string) (CatcherConfig, error) {
	// Try custom path first; errors here are the caller's to see
	if customPath != "" {
		cfg, err := loadFile(gameID, customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(gameID + ".yaml"); userCfgPath != "" {
		if cfg, err := loadFile(gameID, userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(gameID, localConfigPath(gameID)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultFor(gameID)
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultFor(gameID), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// ResolvePath returns the file LoadCatcher would read for gameID, or ""
// when it would fall back to the embedded default.
func ResolvePath(gameID, customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, p := range []string{userConfigPath(gameID + ".yaml"), localConfigPath(gameID)} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func loadFile(gameID, path string) (CatcherConfig, error) {
	cfg := DefaultFor(gameID)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catcher", "configs", filename)
}

func localConfigPath(gameID string) string {
	return filepath.Join("configs", gameID+".yaml")
}

// ApplyCatcherPreset modifies the config based on a difficulty preset.
func ApplyCatcherPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives++
		cfg.Items.FoodSpeed *= 0.8
		cfg.Items.TrapSpeed *= 0.8
	case DifficultyHard:
		if cfg.Gameplay.Lives > 1 {
			cfg.Gameplay.Lives--
		}
		cfg.Items.FoodSpeed *= 1.2
		cfg.Items.TrapSpeed *= 1.2
	}
}
