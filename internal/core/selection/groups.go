package selection

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/promptpack/promptpack/internal/core/tree"
)

// GroupStore persists named selection groups for one project. The
// concrete implementation lives with the rest of the project-directory
// plumbing; the manager only needs load and save.
type GroupStore interface {
	// LoadGroups returns all groups for the project, name → stored paths.
	// A missing or unreadable store yields an empty map, not an error.
	LoadGroups(projectPath string) (map[string][]string, error)

	// SaveGroups writes the full group set for the project.
	SaveGroups(projectPath string, groups map[string][]string) error
}

// GroupManager reads and writes named selection snapshots. Paths are
// stored verbatim at save time; directory-shaped entries are expanded
// against the tree that is current at load time, so a group keeps up
// with files added or removed since it was saved.
type GroupManager struct {
	store  GroupStore
	logger *slog.Logger
}

// NewGroupManager creates a GroupManager backed by the given store.
func NewGroupManager(store GroupStore, logger *slog.Logger) *GroupManager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GroupManager{store: store, logger: logger}
}

// Create stores paths under name, overwriting any existing group with
// the same name. Paths are saved exactly as given, with no descendant
// expansion.
func (m *GroupManager) Create(projectPath, name string, paths []string) error {
	groups, err := m.store.LoadGroups(projectPath)
	if err != nil {
		return fmt.Errorf("load selection groups: %w", err)
	}
	groups[name] = append([]string(nil), paths...)
	if err := m.store.SaveGroups(projectPath, groups); err != nil {
		return fmt.Errorf("save selection group %q: %w", name, err)
	}
	return nil
}

// Load resolves the named group against the current tree and installs
// the result into sel. Directory-shaped entries expand to their current
// file descendants and entries that no longer resolve are dropped
// silently: a group referencing vanished paths degrades to a partial
// load, it never aborts.
func (m *GroupManager) Load(projectPath, name string, idx *tree.Index, sel *Store) error {
	groups, err := m.store.LoadGroups(projectPath)
	if err != nil {
		return fmt.Errorf("load selection groups: %w", err)
	}
	stored, ok := groups[name]
	if !ok {
		return fmt.Errorf("selection group %q: %w", name, ErrGroupNotFound)
	}
	expanded := ExpandLegacyPaths(stored, idx)
	if len(expanded) < len(stored) {
		m.logger.Debug("selection group partially resolved",
			"group", name, "stored", len(stored), "resolved", len(expanded))
	}
	sel.SetSelection(expanded)
	return nil
}

// Delete removes the named group. Deleting a group that does not exist
// is not an error.
func (m *GroupManager) Delete(projectPath, name string) error {
	groups, err := m.store.LoadGroups(projectPath)
	if err != nil {
		return fmt.Errorf("load selection groups: %w", err)
	}
	if _, ok := groups[name]; !ok {
		return nil
	}
	delete(groups, name)
	if err := m.store.SaveGroups(projectPath, groups); err != nil {
		return fmt.Errorf("delete selection group %q: %w", name, err)
	}
	return nil
}

// List returns the group names for the project, sorted.
func (m *GroupManager) List(projectPath string) ([]string, error) {
	groups, err := m.store.LoadGroups(projectPath)
	if err != nil {
		return nil, fmt.Errorf("load selection groups: %w", err)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Paths returns the stored (unexpanded) paths of the named group.
func (m *GroupManager) Paths(projectPath, name string) ([]string, error) {
	groups, err := m.store.LoadGroups(projectPath)
	if err != nil {
		return nil, fmt.Errorf("load selection groups: %w", err)
	}
	stored, ok := groups[name]
	if !ok {
		return nil, fmt.Errorf("selection group %q: %w", name, ErrGroupNotFound)
	}
	return append([]string(nil), stored...), nil
}
