package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding the leaderboard, logs and configs.
const AppDir = ".pharmacy-quest"

// Load loads application settings.
// Search order: customPath -> ~/.pharmacy-quest/config.yaml -> ./configs/quest.yaml -> embedded default
func Load(customPath string) (AppConfig, error) {
	var cfg AppConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.fillDefaults()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.fillDefaults()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/quest.yaml"); err == nil {
		cfg = AppConfig{}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.fillDefaults()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = AppConfig{}
	if err := yaml.Unmarshal(defaultQuestYAML, &cfg); err != nil {
		return DefaultAppConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.fillDefaults()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
