package tree

import "strings"

// SetEquals reports whether two path slices contain the same set of
// strings, ignoring order and duplicates.
func SetEquals(a, b []string) bool {
	as := make(map[string]struct{}, len(a))
	for _, p := range a {
		as[p] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, p := range b {
		bs[p] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for p := range as {
		if _, ok := bs[p]; !ok {
			return false
		}
	}
	return true
}

// CollectFileDescendants returns the relative paths of every file-type
// descendant of node, depth first. For a file node the result is the
// node's own path; for a directory with no file descendants the result
// is empty.
func CollectFileDescendants(node *FileNode) []string {
	if node == nil {
		return nil
	}
	if !node.IsDir() {
		return []string{node.RelativePath}
	}
	var out []string
	for _, c := range node.Children {
		out = append(out, CollectFileDescendants(c)...)
	}
	return out
}

// CollectAllDescendantPaths returns the node's own relative path plus
// the paths of all file-type descendants. This is the legacy toggle
// representation, kept only to expand persisted selections that still
// contain directory placeholders.
func CollectAllDescendantPaths(node *FileNode) []string {
	if node == nil {
		return nil
	}
	out := []string{node.RelativePath}
	if node.IsDir() {
		for _, c := range node.Children {
			out = append(out, CollectFileDescendants(c)...)
		}
	}
	return out
}

// FlattenAllPaths returns the relative paths of every node in the
// forest, files and directories alike, depth first.
func FlattenAllPaths(nodes []*FileNode) []string {
	var out []string
	var walk func(ns []*FileNode)
	walk = func(ns []*FileNode) {
		for _, n := range ns {
			out = append(out, n.RelativePath)
			if n.IsDir() {
				walk(n.Children)
			}
		}
	}
	walk(nodes)
	return out
}

// IsUnderExcludedPath reports whether path equals one of the patterns
// or lives beneath one of them ("pattern/..."). Patterns here are plain
// path prefixes, not globs.
func IsUnderExcludedPath(path string, patterns []string) bool {
	for _, p := range patterns {
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
