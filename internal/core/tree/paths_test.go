package tree

import "testing"

// sampleTree builds:
//
//	src/
//	  a.ts
//	  b.txt
//	  lib/
//	    c.ts
//	README.md
func sampleTree() []*FileNode {
	return []*FileNode{
		{
			Name: "src", RelativePath: "src", Type: Directory,
			Children: []*FileNode{
				{Name: "a.ts", RelativePath: "src/a.ts", Type: File},
				{Name: "b.txt", RelativePath: "src/b.txt", Type: File},
				{
					Name: "lib", RelativePath: "src/lib", Type: Directory,
					Children: []*FileNode{
						{Name: "c.ts", RelativePath: "src/lib/c.ts", Type: File},
					},
				},
			},
		},
		{Name: "README.md", RelativePath: "README.md", Type: File},
	}
}

func TestSetEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{"both empty", nil, []string{}, true},
		{"same order", []string{"a", "b"}, []string{"a", "b"}, true},
		{"different order", []string{"a", "b"}, []string{"b", "a"}, true},
		{"duplicates ignored", []string{"a", "a", "b"}, []string{"b", "a"}, true},
		{"different sets", []string{"a"}, []string{"b"}, false},
		{"subset", []string{"a"}, []string{"a", "b"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetEquals(tt.a, tt.b); got != tt.want {
				t.Errorf("SetEquals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCollectFileDescendants(t *testing.T) {
	nodes := sampleTree()

	got := CollectFileDescendants(nodes[0])
	want := []string{"src/a.ts", "src/b.txt", "src/lib/c.ts"}
	if !SetEquals(got, want) {
		t.Errorf("CollectFileDescendants(src) = %v, want %v", got, want)
	}

	if got := CollectFileDescendants(nodes[1]); len(got) != 1 || got[0] != "README.md" {
		t.Errorf("CollectFileDescendants(file) = %v, want [README.md]", got)
	}

	empty := &FileNode{Name: "empty", RelativePath: "empty", Type: Directory, Children: []*FileNode{}}
	if got := CollectFileDescendants(empty); len(got) != 0 {
		t.Errorf("CollectFileDescendants(empty dir) = %v, want empty", got)
	}
}

func TestCollectAllDescendantPaths(t *testing.T) {
	nodes := sampleTree()
	got := CollectAllDescendantPaths(nodes[0])
	want := []string{"src", "src/a.ts", "src/b.txt", "src/lib/c.ts"}
	if !SetEquals(got, want) {
		t.Errorf("CollectAllDescendantPaths(src) = %v, want %v", got, want)
	}
}

func TestFlattenAllPaths(t *testing.T) {
	got := FlattenAllPaths(sampleTree())
	want := []string{"src", "src/a.ts", "src/b.txt", "src/lib", "src/lib/c.ts", "README.md"}
	if !SetEquals(got, want) {
		t.Errorf("FlattenAllPaths = %v, want %v", got, want)
	}
}

func TestIsUnderExcludedPath(t *testing.T) {
	patterns := []string{"node_modules", "dist/"}

	tests := []struct {
		path string
		want bool
	}{
		{"node_modules", true},
		{"node_modules/pkg/index.js", true},
		{"dist", true},
		{"dist/bundle.js", true},
		{"src/node_modules.ts", false},
		{"node_modules2/x", false},
		{"src/a.ts", false},
	}
	for _, tt := range tests {
		if got := IsUnderExcludedPath(tt.path, patterns); got != tt.want {
			t.Errorf("IsUnderExcludedPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
