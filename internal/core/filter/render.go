package filter

import (
	"strings"

	"github.com/promptpack/promptpack/internal/core/tree"
)

const (
	dirIcon  = "📁"
	fileIcon = "📄"
)

// RenderTextualTree renders the forest as an indented listing, one
// "<indent><icon> <name>" line per surviving node, for inclusion in an
// assembled prompt.
//
// Global exclusions hide a node when its relativePath equals an entry
// or any of its path segments does; everything beneath a hidden node is
// hidden with it. Extension filters restrict files the same way the
// extension view filter does. A directory whose rendered subtree comes
// out empty produces no line at all: the listing never shows an empty
// directory header.
func RenderTextualTree(nodes []*tree.FileNode, globalExcludes, extFilters []string) string {
	exts := NormalizeExtensions(extFilters)
	excl := make(map[string]struct{}, len(globalExcludes))
	for _, e := range globalExcludes {
		e = strings.TrimSpace(strings.TrimSuffix(e, "/"))
		if e != "" {
			excl[e] = struct{}{}
		}
	}
	var b strings.Builder
	renderLevel(&b, nodes, excl, exts, 0)
	return strings.TrimRight(b.String(), "\n")
}

func renderLevel(b *strings.Builder, nodes []*tree.FileNode, excl map[string]struct{}, exts []string, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		if isGloballyExcluded(n.RelativePath, excl) {
			continue
		}
		if n.IsDir() {
			var sub strings.Builder
			renderLevel(&sub, n.Children, excl, exts, depth+1)
			if sub.Len() == 0 {
				continue
			}
			b.WriteString(indent + dirIcon + " " + n.Name + "\n")
			b.WriteString(sub.String())
			continue
		}
		if !extensionAllows(n.Name, exts) {
			continue
		}
		b.WriteString(indent + fileIcon + " " + n.Name + "\n")
	}
}

// isGloballyExcluded matches the whole relativePath or any single path
// segment against the exclusion set.
func isGloballyExcluded(relativePath string, excl map[string]struct{}) bool {
	if len(excl) == 0 {
		return false
	}
	if _, ok := excl[relativePath]; ok {
		return true
	}
	for _, seg := range strings.Split(relativePath, "/") {
		if _, ok := excl[seg]; ok {
			return true
		}
	}
	return false
}

func extensionAllows(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
