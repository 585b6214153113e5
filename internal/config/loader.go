package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCavern loads the simulation tuning.
// Search order: customPath -> ~/.cavern/configs/cavern.yaml -> ./configs/cavern.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. An invalid custom file is an error; invalid user or local
// files are skipped.
func LoadCavern(customPath string) (CavernConfig, error) {
	cfg := DefaultCavernConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cavern.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
			cfg = DefaultCavernConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cavern.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
		cfg = DefaultCavernConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCavernYAML, &cfg); err != nil {
		return DefaultCavernConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cavern", "configs", filename)
}
