// Package workspace ties a project path, its tree snapshot, the view
// filters and the selection together into one session. Everything runs
// on a single logical event thread: mutations happen inside discrete
// command or UI callbacks, and the tree fetch, the only asynchronous
// operation, is reconciled through a staleness check rather than locks
// or cancellation.
package workspace

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/promptpack/promptpack/internal/core/filter"
	"github.com/promptpack/promptpack/internal/core/selection"
	"github.com/promptpack/promptpack/internal/core/tree"
)

// TreeFetcher supplies the raw tree for a root directory. The project
// walker implements it; tests substitute fakes.
type TreeFetcher interface {
	FetchTree(ctx context.Context, root string) ([]*tree.FileNode, error)
}

// Filters is the ephemeral view configuration applied on top of the
// raw tree. These are session-only: they shape what is visible, they
// are not persisted policy.
type Filters struct {
	SearchTerm string
	Extensions []string
	Wildcards  []string
}

// Session owns the mutable state for one open project.
type Session struct {
	fetcher TreeFetcher
	logger  *slog.Logger

	projectPath string
	nodes       []*tree.FileNode
	index       *tree.Index
	filters     Filters
	selection   *selection.Store
	loading     bool
}

// NewSession creates a session with an empty tree and selection.
func NewSession(fetcher TreeFetcher, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		fetcher:   fetcher,
		logger:    logger,
		selection: selection.NewStore(),
	}
}

// ProjectPath returns the current project root, empty when none is set.
func (s *Session) ProjectPath() string {
	return s.projectPath
}

// Selection returns the session's selection store.
func (s *Session) Selection() *selection.Store {
	return s.selection
}

// Tree returns the current raw tree snapshot.
func (s *Session) Tree() []*tree.FileNode {
	return s.nodes
}

// Index returns the path index over the current tree snapshot, or nil
// before the first successful fetch.
func (s *Session) Index() *tree.Index {
	return s.index
}

// Loading reports whether a tree fetch is outstanding.
func (s *Session) Loading() bool {
	return s.loading
}

// SetProjectPath switches the session to a different project root.
// The old tree and its view are discarded together and the selection
// is cleared; any fetch still in flight for the old path will fail the
// staleness check when it lands. Setting the same path is a no-op.
func (s *Session) SetProjectPath(path string) {
	if path == s.projectPath {
		return
	}
	s.projectPath = path
	s.nodes = nil
	s.index = nil
	s.selection.DeselectAll()
}

// SetFilters replaces the view filter configuration.
func (s *Session) SetFilters(f Filters) {
	s.filters = f
}

// Filters returns the current view filter configuration.
func (s *Session) Filters() Filters {
	return s.filters
}

// Refresh fetches the tree for the current project path and installs
// it through ApplyFetched, so a path change that raced the fetch
// discards the late result instead of applying it to the wrong project.
func (s *Session) Refresh(ctx context.Context) error {
	target := s.projectPath
	if target == "" {
		return ErrNoProject
	}
	s.loading = true
	nodes, err := s.fetcher.FetchTree(ctx, target)
	s.loading = false
	if err != nil {
		return fmt.Errorf("fetch tree for %s: %w", target, err)
	}
	s.ApplyFetched(target, nodes)
	return nil
}

// ApplyFetched installs a fetched tree, unless the session has moved to
// a different project path since the fetch started. A stale result is
// dropped; selection entries that no longer resolve stay in the set and
// are filtered out downstream at expansion time.
func (s *Session) ApplyFetched(fetchedPath string, nodes []*tree.FileNode) bool {
	if fetchedPath != s.projectPath {
		s.logger.Debug("discarding stale tree fetch",
			"fetched", fetchedPath, "current", s.projectPath)
		return false
	}
	s.nodes = nodes
	s.index = tree.NewIndex(nodes)
	return true
}

// View applies the session's ephemeral filters to the current tree and
// returns the resulting view tree. The raw snapshot is never mutated.
func (s *Session) View() []*tree.FileNode {
	return filter.Chain(s.nodes,
		filter.ExtensionStage(s.filters.Extensions),
		filter.WildcardStage(s.filters.Wildcards),
		filter.SearchStage(s.filters.SearchTerm),
	)
}

// VisibleFilePaths returns the relative paths of the file nodes in the
// current view, the input to bulk select-all.
func (s *Session) VisibleFilePaths() []string {
	var out []string
	var walk func(nodes []*tree.FileNode)
	walk = func(nodes []*tree.FileNode) {
		for _, n := range nodes {
			if n.IsDir() {
				walk(n.Children)
				continue
			}
			out = append(out, n.RelativePath)
		}
	}
	walk(s.View())
	return out
}
