package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads viewer settings.
// Search order: customPath -> ~/.sigep/config.yaml -> ./configs/sigep.yaml -> embedded default
//
// Fields missing from a file keep their default values.
func Load(customPath string) (Settings, error) {
	cfg := DefaultSettings()

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
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSettings()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "sigep.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSettings()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sigep", filename)
}
