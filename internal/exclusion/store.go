// Package exclusion persists the two durable exclusion layers: the
// global hide list shared by every project and the per-project local
// list that bulk select-all skips. Both are plain files the user can
// edit by hand; reads tolerate missing or corrupt data by degrading to
// an empty layer.
package exclusion

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const localFileName = "exclusions.json"

// Store reads and writes exclusion layers. The global layer lives in a
// flat text file (one pattern per line, # comments allowed); the local
// layer is a JSON string array under <project>/.promptpack/.
type Store struct {
	globalPath string
	metaDir    string
	logger     *slog.Logger
}

// NewStore creates a Store. globalPath is the flat global ignore file;
// metaDir is the per-project state directory name (".promptpack").
func NewStore(globalPath, metaDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{globalPath: globalPath, metaDir: metaDir, logger: logger}
}

// Global returns the global exclusion patterns. A missing or
// unreadable file is an empty layer.
func (s *Store) Global() []string {
	f, err := os.Open(s.globalPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read global exclusions", "path", s.globalPath, "error", err)
		}
		return nil
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn("failed to scan global exclusions", "path", s.globalPath, "error", err)
	}
	return out
}

// SetGlobal replaces the global exclusion list, dropping blank entries.
func (s *Store) SetGlobal(patterns []string) error {
	if err := os.MkdirAll(filepath.Dir(s.globalPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	var b strings.Builder
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		b.WriteString(p + "\n")
	}
	if err := os.WriteFile(s.globalPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write global exclusions: %w", err)
	}
	return nil
}

// Local returns the project's local exclusion paths. Missing or
// corrupt data is an empty layer.
func (s *Store) Local(projectPath string) []string {
	data, err := os.ReadFile(s.localPath(projectPath))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read local exclusions", "project", projectPath, "error", err)
		}
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		s.logger.Warn("corrupt local exclusions file, ignoring",
			"project", projectPath, "error", err)
		return nil
	}
	return out
}

// SetLocal replaces the project's local exclusion list.
func (s *Store) SetLocal(projectPath string, paths []string) error {
	cleaned := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	dir := filepath.Join(projectPath, s.metaDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(cleaned, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local exclusions: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, localFileName), data, 0o644); err != nil {
		return fmt.Errorf("write local exclusions: %w", err)
	}
	return nil
}

// ForProject returns the combined pattern list used by the tree walker
// for the given project root. The state directory itself is always
// hidden, then the global and local layers apply.
func (s *Store) ForProject(projectPath string) []string {
	patterns := []string{s.metaDir}
	patterns = append(patterns, s.Global()...)
	return append(patterns, s.Local(projectPath)...)
}

func (s *Store) localPath(projectPath string) string {
	return filepath.Join(projectPath, s.metaDir, localFileName)
}
