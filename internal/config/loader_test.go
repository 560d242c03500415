package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(t.TempDir())

	def := NewDefaultConfig()
	if cfg.MaxTreeDepth != def.MaxTreeDepth {
		t.Errorf("MaxTreeDepth = %d, want %d", cfg.MaxTreeDepth, def.MaxTreeDepth)
	}
	if cfg.TokenEncoding != def.TokenEncoding {
		t.Errorf("TokenEncoding = %q, want %q", cfg.TokenEncoding, def.TokenEncoding)
	}
	if cfg.TokenSizeLimit != def.TokenSizeLimit {
		t.Errorf("TokenSizeLimit = %d, want %d", cfg.TokenSizeLimit, def.TokenSizeLimit)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := "default_extensions: [.go, .md]\nmax_tree_depth: 10\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(dir)
	if len(cfg.DefaultExtensions) != 2 || cfg.DefaultExtensions[0] != ".go" {
		t.Errorf("DefaultExtensions = %v", cfg.DefaultExtensions)
	}
	if cfg.MaxTreeDepth != 10 {
		t.Errorf("MaxTreeDepth = %d, want 10", cfg.MaxTreeDepth)
	}
	// Unspecified fields keep defaults.
	if cfg.TokenEncoding != NewDefaultConfig().TokenEncoding {
		t.Errorf("TokenEncoding = %q", cfg.TokenEncoding)
	}
}

func TestLoad_InvalidYAMLReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("[unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(dir)
	if cfg.MaxTreeDepth != NewDefaultConfig().MaxTreeDepth {
		t.Errorf("invalid YAML should yield defaults, got %+v", cfg)
	}
}

func TestLoad_SanitizesNonPositiveValues(t *testing.T) {
	dir := t.TempDir()
	yaml := "max_tree_depth: -1\ntoken_size_limit: 0\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(dir)
	if cfg.MaxTreeDepth <= 0 || cfg.TokenSizeLimit <= 0 {
		t.Errorf("non-positive values not sanitized: %+v", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	want := NewDefaultConfig()
	want.DefaultExtensions = []string{".rs"}
	want.MaxTreeDepth = 7

	if err := Save(dir, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got := Load(dir)
	if got.MaxTreeDepth != 7 || len(got.DefaultExtensions) != 1 || got.DefaultExtensions[0] != ".rs" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestGlobalIgnorePath(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.GlobalIgnorePath() == "" {
		t.Error("default ignore path empty")
	}

	cfg.GlobalIgnoreFile = "/tmp/custom-ignore.txt"
	if cfg.GlobalIgnorePath() != "/tmp/custom-ignore.txt" {
		t.Errorf("override ignored: %q", cfg.GlobalIgnorePath())
	}
}
