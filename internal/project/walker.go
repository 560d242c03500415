// Package project implements the filesystem-facing collaborators of
// the core: building a tree for a project root, loading file contents
// for a selection, and persisting per-project selection groups under
// the .promptpack directory.
package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/promptpack/promptpack/internal/core/tree"
)

// DefaultMaxDepth bounds tree recursion. Deeper entries are pruned
// with a warning rather than failing the whole fetch.
const DefaultMaxDepth = 50

// ExclusionSource supplies the persisted exclusion patterns (global
// plus local) that apply to a project root.
type ExclusionSource func(root string) []string

// Walker builds file trees from the filesystem, honoring gitignore
// style exclusion patterns. It implements workspace.TreeFetcher.
type Walker struct {
	maxDepth   int
	exclusions ExclusionSource
	logger     *slog.Logger
}

// NewWalker creates a Walker. maxDepth <= 0 selects DefaultMaxDepth; a
// nil exclusion source means no persisted exclusions.
func NewWalker(maxDepth int, exclusions ExclusionSource, logger *slog.Logger) *Walker {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if exclusions == nil {
		exclusions = func(string) []string { return nil }
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Walker{maxDepth: maxDepth, exclusions: exclusions, logger: logger}
}

// FetchTree scans root and returns its tree. Hidden-by-exclusion nodes
// are omitted entirely, directories left empty by exclusion are
// dropped, and each level is sorted directories first, then by
// case-insensitive name. Symbolic links are not followed.
func (w *Walker) FetchTree(ctx context.Context, root string) ([]*tree.FileNode, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty root", ErrRootNotFound)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	matcher := compileExclusions(w.exclusions(root))
	nodes, err := w.walk(ctx, root, root, matcher, 0)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func (w *Walker) walk(ctx context.Context, dir, root string, matcher *ignore.GitIgnore, depth int) ([]*tree.FileNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth > w.maxDepth {
		w.logger.Warn("max tree depth exceeded, pruning", "depth", depth, "dir", dir)
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if depth == 0 {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		// Unreadable subdirectory: skip it, the rest of the tree is
		// still useful.
		w.logger.Warn("skipping unreadable directory", "dir", dir, "error", err)
		return nil, nil
	}

	var nodes []*tree.FileNode
	for _, entry := range entries {
		rel := normalizeRel(dir, root, entry.Name())
		if matcher != nil && matcher.MatchesPath(rel) {
			continue
		}

		// Symlinks are recorded as files and never followed, which
		// also rules out directory cycles.
		if entry.IsDir() {
			children, err := w.walk(ctx, filepath.Join(dir, entry.Name()), root, matcher, depth+1)
			if err != nil {
				return nil, err
			}
			if len(children) == 0 {
				continue
			}
			nodes = append(nodes, &tree.FileNode{
				Name:         entry.Name(),
				RelativePath: rel,
				Type:         tree.Directory,
				Children:     children,
			})
			continue
		}
		nodes = append(nodes, &tree.FileNode{
			Name:         entry.Name(),
			RelativePath: rel,
			Type:         tree.File,
		})
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDir() != nodes[j].IsDir() {
			return nodes[i].IsDir()
		}
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})
	return nodes, nil
}

// normalizeRel builds the slash-delimited relativePath for an entry.
func normalizeRel(dir, root, name string) string {
	rel, err := filepath.Rel(root, filepath.Join(dir, name))
	if err != nil {
		return name
	}
	return filepath.ToSlash(rel)
}

// compileExclusions turns the persisted pattern list into a gitignore
// matcher. A pattern without glob metacharacters means "this path and
// everything under it", so it expands to both forms.
func compileExclusions(patterns []string) *ignore.GitIgnore {
	var lines []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.ContainsAny(p, "*?[]!") {
			lines = append(lines, p)
			continue
		}
		cleaned := strings.TrimSuffix(p, "/")
		lines = append(lines, cleaned, cleaned+"/**")
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}
