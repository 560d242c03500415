package config

import (
	"os"
	"path/filepath"
)

// AppDirName is the directory under the user config root holding
// promptpack's own files.
const AppDirName = "promptpack"

// NewDefaultConfig returns a Config with every field set to its
// default value.
func NewDefaultConfig() *Config {
	return &Config{
		DefaultExtensions: nil,
		MaxTreeDepth:      50,
		TokenEncoding:     "cl100k_base",
		TokenSizeLimit:    2_000_000,
		GlobalIgnoreFile:  "",
	}
}

// Dir returns promptpack's user config directory, creating nothing.
// Falls back to ".promptpack" in the working directory when the user
// config root cannot be determined.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".promptpack"
	}
	return filepath.Join(base, AppDirName)
}

// GlobalIgnorePath resolves the global ignore file location for cfg.
func (c *Config) GlobalIgnorePath() string {
	if c.GlobalIgnoreFile != "" {
		return c.GlobalIgnoreFile
	}
	return filepath.Join(Dir(), "ignore.txt")
}
