package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMines loads Minesweeper configuration.
// Search order: customPath -> ~/.mines/configs/mines.yaml -> ./configs/mines.yaml -> embedded default.
// Files are read over the defaults, so a file only needs the keys it changes.
func LoadMines(customPath string) (MinesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MinesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("mines.yaml"), filepath.Join("configs", "mines.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(DefaultYAML())
	if err != nil {
		return DefaultMinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (MinesConfig, error) {
	cfg := DefaultMinesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinesConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MinesConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", "configs", filename)
}
