package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Load reads the config file from dir (use Dir() for the default
// location) and returns it merged over defaults. A missing file
// returns defaults silently; an unreadable or invalid file returns
// defaults with a warning.
func Load(dir string) *Config {
	cfg := NewDefaultConfig()

	path := filepath.Join(dir, configFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read config, using defaults", "path", path, "error", err)
		}
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Warn("invalid config file, using defaults", "path", path, "error", err)
		return NewDefaultConfig()
	}

	if cfg.MaxTreeDepth <= 0 {
		cfg.MaxTreeDepth = NewDefaultConfig().MaxTreeDepth
	}
	if cfg.TokenSizeLimit <= 0 {
		cfg.TokenSizeLimit = NewDefaultConfig().TokenSizeLimit
	}
	if cfg.TokenEncoding == "" {
		cfg.TokenEncoding = NewDefaultConfig().TokenEncoding
	}
	return cfg
}

// Save writes cfg as YAML into dir, creating the directory if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, configFileName), data, 0o644)
}
