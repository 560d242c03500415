package project

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// MetaDirName is the per-project directory holding promptpack state.
const MetaDirName = ".promptpack"

const groupsFileName = "groups.json"

// GroupStore persists selection groups as JSON under the project's
// .promptpack directory. It implements selection.GroupStore.
type GroupStore struct {
	logger *slog.Logger
}

// NewGroupStore creates a GroupStore.
func NewGroupStore(logger *slog.Logger) *GroupStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GroupStore{logger: logger}
}

// LoadGroups reads the project's groups file. A missing or corrupt
// file yields an empty map; the user starts fresh rather than being
// locked out of the feature.
func (g *GroupStore) LoadGroups(projectPath string) (map[string][]string, error) {
	data, err := os.ReadFile(g.filePath(projectPath))
	if err != nil {
		if !os.IsNotExist(err) {
			g.logger.Warn("failed to read selection groups", "project", projectPath, "error", err)
		}
		return map[string][]string{}, nil
	}
	var groups map[string][]string
	if err := json.Unmarshal(data, &groups); err != nil {
		g.logger.Warn("corrupt selection groups file, starting fresh",
			"project", projectPath, "error", err)
		return map[string][]string{}, nil
	}
	if groups == nil {
		groups = map[string][]string{}
	}
	return groups, nil
}

// SaveGroups writes the full group set for the project, creating the
// .promptpack directory if needed.
func (g *GroupStore) SaveGroups(projectPath string, groups map[string][]string) error {
	dir := filepath.Join(projectPath, MetaDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return fmt.Errorf("encode selection groups: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, groupsFileName), data, 0o644); err != nil {
		return fmt.Errorf("write selection groups: %w", err)
	}
	return nil
}

func (g *GroupStore) filePath(projectPath string) string {
	return filepath.Join(projectPath, MetaDirName, groupsFileName)
}
