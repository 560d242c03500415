// Package filter turns a file tree plus a filter configuration into a
// new tree holding only the nodes that should be visible. Every stage
// is a pure function over an immutable snapshot: inputs are never
// mutated, outputs share no structure with them, and sibling order is
// preserved. Stages only ever remove nodes.
package filter

import (
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/promptpack/promptpack/internal/core/tree"
)

// Predicate reports whether a single node matches a filter on its own
// merits, ignoring its descendants.
type Predicate func(*tree.FileNode) bool

// Stage is a tree-to-tree transform suitable for chaining.
type Stage func([]*tree.FileNode) []*tree.FileNode

// KeepMatching is the one combinator behind every view filter. A node
// that matches the predicate is kept together with its original,
// unfiltered children. A non-matching directory is kept only when
// recursively filtering its children leaves at least one survivor; a
// non-matching file is dropped. This encodes the invariant "a directory
// survives iff at least one descendant survives its own rule" exactly
// once, so stages compose without restating it.
func KeepMatching(nodes []*tree.FileNode, match Predicate) []*tree.FileNode {
	var out []*tree.FileNode
	for _, n := range nodes {
		if match(n) {
			out = append(out, n.Clone())
			continue
		}
		if !n.IsDir() {
			continue
		}
		kept := KeepMatching(n.Children, match)
		if len(kept) == 0 {
			continue
		}
		c := n.Clone()
		c.Children = kept
		out = append(out, c)
	}
	return out
}

// NormalizeExtensions lowercases each pattern and guarantees a leading
// dot, so "TS" and ".ts" both mean the ".ts" suffix. Blank entries are
// dropped.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// ApplyExtensionFilter keeps files whose lowercase name ends with one
// of the given suffixes, and directories that retain at least one
// surviving descendant. An empty extension list is the identity
// transform, not "exclude all".
func ApplyExtensionFilter(nodes []*tree.FileNode, exts []string) []*tree.FileNode {
	normalized := NormalizeExtensions(exts)
	if len(normalized) == 0 {
		return tree.CloneNodes(nodes)
	}
	return KeepMatching(nodes, func(n *tree.FileNode) bool {
		if n.IsDir() {
			return false
		}
		name := strings.ToLower(n.Name)
		for _, ext := range normalized {
			if strings.HasSuffix(name, ext) {
				return true
			}
		}
		return false
	})
}

// ApplySearchFilter keeps nodes whose name case-insensitively contains
// term. A name match keeps the node with its entire subtree intact:
// matching a directory shows everything under it, unfiltered.
func ApplySearchFilter(nodes []*tree.FileNode, term string) []*tree.FileNode {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return tree.CloneNodes(nodes)
	}
	return KeepMatching(nodes, func(n *tree.FileNode) bool {
		return strings.Contains(strings.ToLower(n.Name), term)
	})
}

// ApplyWildcardFilter keeps nodes matching any of the given
// case-insensitive glob patterns, tested against both the node's
// relativePath and its bare name. Dotfiles are not special-cased. A
// malformed pattern matches nothing; it must never blank the whole
// view just because one pattern fails to compile.
func ApplyWildcardFilter(nodes []*tree.FileNode, patterns []string) []*tree.FileNode {
	compiled := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			slog.Warn("ignoring malformed wildcard pattern", "pattern", p)
			continue
		}
		compiled = append(compiled, strings.ToLower(p))
	}
	if len(compiled) == 0 {
		if len(patterns) == 0 {
			return tree.CloneNodes(nodes)
		}
		// Every supplied pattern was malformed: nothing matches.
		return nil
	}
	return KeepMatching(nodes, func(n *tree.FileNode) bool {
		rel := strings.ToLower(n.RelativePath)
		name := strings.ToLower(n.Name)
		for _, p := range compiled {
			if ok, err := doublestar.Match(p, rel); err == nil && ok {
				return true
			}
			if ok, err := doublestar.Match(p, name); err == nil && ok {
				return true
			}
		}
		return false
	})
}

// ExtensionStage adapts ApplyExtensionFilter for chaining.
func ExtensionStage(exts []string) Stage {
	return func(nodes []*tree.FileNode) []*tree.FileNode {
		return ApplyExtensionFilter(nodes, exts)
	}
}

// SearchStage adapts ApplySearchFilter for chaining.
func SearchStage(term string) Stage {
	return func(nodes []*tree.FileNode) []*tree.FileNode {
		return ApplySearchFilter(nodes, term)
	}
}

// WildcardStage adapts ApplyWildcardFilter for chaining.
func WildcardStage(patterns []string) Stage {
	return func(nodes []*tree.FileNode) []*tree.FileNode {
		return ApplyWildcardFilter(nodes, patterns)
	}
}

// Chain applies stages left to right over a snapshot of nodes.
func Chain(nodes []*tree.FileNode, stages ...Stage) []*tree.FileNode {
	out := tree.CloneNodes(nodes)
	for _, s := range stages {
		out = s(out)
	}
	return out
}
