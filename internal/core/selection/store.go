// Package selection owns the selected-paths set and the named
// selection groups layered on top of it. The selection holds file-type
// relative paths only; a directory's selected state is always derived
// from its current file descendants, never stored. Persisted data from
// older versions may still contain directory placeholders, which are
// expanded at read time and never written back.
package selection

import (
	"sort"
	"strings"

	"github.com/promptpack/promptpack/internal/core/tree"
)

// Store is the session-scoped selection state. All mutation happens on
// one logical event thread, so the store carries no locking.
type Store struct {
	selected map[string]struct{}

	// onClear is invoked whenever the whole selection is discarded, so
	// a content cache keyed by the selection can be dropped with it.
	onClear func()
}

// NewStore returns an empty selection.
func NewStore() *Store {
	return &Store{selected: make(map[string]struct{})}
}

// OnClear registers a hook invoked when the selection is cleared
// wholesale. Passing nil removes the hook.
func (s *Store) OnClear(fn func()) {
	s.onClear = fn
}

// Selected returns the current selection as a sorted slice.
func (s *Store) Selected() []string {
	out := make([]string, 0, len(s.selected))
	for p := range s.selected {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether path is currently selected.
func (s *Store) Contains(path string) bool {
	_, ok := s.selected[path]
	return ok
}

// Len returns the number of selected paths.
func (s *Store) Len() int {
	return len(s.selected)
}

// Toggle flips the selection state of the subtree rooted at node.
//
// With D the set of file descendants of node (a file is its own sole
// descendant): when every member of D is already selected, all of D is
// removed; otherwise all of D is added, regardless of how much of it
// was selected before. A node with no file descendants is a no-op;
// the UI disables that affordance, this is just the backstop. Returns
// true when the selection changed.
func (s *Store) Toggle(node *tree.FileNode) bool {
	descendants := tree.CollectFileDescendants(node)
	if len(descendants) == 0 {
		return false
	}
	if s.allSelected(descendants) {
		for _, p := range descendants {
			delete(s.selected, p)
		}
		return true
	}
	changed := false
	for _, p := range descendants {
		if _, ok := s.selected[p]; !ok {
			s.selected[p] = struct{}{}
			changed = true
		}
	}
	return changed
}

// SelectAll replaces the whole selection with the visible paths that
// appear in neither exclusion layer. Membership is exact string-set
// comparison: an excluded directory does not implicitly exclude the
// paths beneath it here, unlike the hide-from-view matching.
func (s *Store) SelectAll(visiblePaths, globalExclusions, localExclusions []string) {
	excluded := make(map[string]struct{}, len(globalExclusions)+len(localExclusions))
	for _, p := range globalExclusions {
		excluded[p] = struct{}{}
	}
	for _, p := range localExclusions {
		excluded[p] = struct{}{}
	}
	next := make(map[string]struct{}, len(visiblePaths))
	for _, p := range visiblePaths {
		if _, ok := excluded[p]; !ok {
			next[p] = struct{}{}
		}
	}
	s.selected = next
}

// DeselectAll clears the selection and fires the clear hook so any
// loaded-content cache keyed by the selection is dropped with it.
func (s *Store) DeselectAll() {
	s.selected = make(map[string]struct{})
	if s.onClear != nil {
		s.onClear()
	}
}

// SetSelection replaces the selection with paths. When paths is
// set-equal to the current selection the call is a no-op and returns
// false, so downstream consumers are not poked into spurious refetches.
func (s *Store) SetSelection(paths []string) bool {
	if tree.SetEquals(s.Selected(), paths) {
		return false
	}
	next := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		next[p] = struct{}{}
	}
	s.selected = next
	return true
}

// IsFullySelected reports whether node has at least one file descendant
// and every one of them is selected.
func (s *Store) IsFullySelected(node *tree.FileNode) bool {
	descendants := tree.CollectFileDescendants(node)
	return len(descendants) > 0 && s.allSelected(descendants)
}

// IsPartiallySelected reports whether node is not fully selected but
// at least one of its file descendants is selected.
func (s *Store) IsPartiallySelected(node *tree.FileNode) bool {
	descendants := tree.CollectFileDescendants(node)
	if len(descendants) == 0 || s.allSelected(descendants) {
		return false
	}
	for _, p := range descendants {
		if _, ok := s.selected[p]; ok {
			return true
		}
	}
	return false
}

// IsSelectable reports whether toggling node can have any effect.
func (s *Store) IsSelectable(node *tree.FileNode) bool {
	return len(tree.CollectFileDescendants(node)) > 0
}

func (s *Store) allSelected(paths []string) bool {
	for _, p := range paths {
		if _, ok := s.selected[p]; !ok {
			return false
		}
	}
	return true
}

// ExpandLegacyPaths resolves a persisted path list against the current
// tree, translating the legacy directory-placeholder representation
// into plain file paths. A directory-shaped entry (with or without a
// trailing slash) becomes its current file descendants; a path that no
// longer resolves is dropped silently. The result contains file paths
// only, deduplicated, in first-seen order.
func ExpandLegacyPaths(paths []string, idx *tree.Index) []string {
	seen := make(map[string]struct{}, len(paths))
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	for _, raw := range paths {
		p := strings.TrimSuffix(raw, "/")
		node := idx.Lookup(p)
		if node == nil {
			continue
		}
		if node.IsDir() {
			for _, f := range tree.CollectFileDescendants(node) {
				add(f)
			}
			continue
		}
		add(p)
	}
	return out
}
