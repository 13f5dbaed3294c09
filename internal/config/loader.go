package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.{yaml,toml} ->
// ./configs/shooter.{yaml,toml} -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(customPath, data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return ShooterConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse("shooter.yaml", defaultShooterYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parse decodes data on top of the defaults, picking the format from the
// file extension. Anything that is not .toml is treated as YAML.
func parse(path string, data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("toml unmarshal: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	if cfg.Limits.Policy == "" {
		cfg.Limits.Policy = PolicyNone
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "shooter.yaml"),
			filepath.Join(dir, "shooter.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "shooter.yaml"),
		filepath.Join("configs", "shooter.toml"),
	)
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs")
}

// MarshalYAML renders a config back to YAML, used by the `config` command.
func MarshalYAML(cfg ShooterConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}
