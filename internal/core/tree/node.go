// Package tree defines the file-tree data model shared by the filter
// pipeline, the selection engine, and the project walker. Trees are
// pure values: a node exclusively owns its children and carries no
// back-pointers, so snapshots can be cloned and filtered without
// touching the original.
package tree

// NodeType discriminates files from directories.
type NodeType string

const (
	// File is a leaf node.
	File NodeType = "file"

	// Directory is an interior node; its Children slice is present
	// (possibly empty) only for this type.
	Directory NodeType = "directory"
)

// FileNode is one entry in a project tree. RelativePath is the
// slash-delimited path from the project root and is the unique key for
// the node within its tree.
type FileNode struct {
	Name         string      `json:"name"`
	RelativePath string      `json:"relativePath"`
	Type         NodeType    `json:"type"`
	Children     []*FileNode `json:"children,omitempty"`
}

// IsDir reports whether the node is a directory.
func (n *FileNode) IsDir() bool {
	return n.Type == Directory
}

// Clone returns a deep copy of the node. The copy shares no structure
// with the original, so callers may mutate either side freely.
func (n *FileNode) Clone() *FileNode {
	if n == nil {
		return nil
	}
	c := &FileNode{
		Name:         n.Name,
		RelativePath: n.RelativePath,
		Type:         n.Type,
	}
	if n.Children != nil {
		c.Children = CloneNodes(n.Children)
	}
	return c
}

// CloneNodes deep-copies a slice of sibling nodes, preserving order.
func CloneNodes(nodes []*FileNode) []*FileNode {
	out := make([]*FileNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Clone())
	}
	return out
}

// Index provides relativePath lookups over a tree snapshot. The parent
// map is built alongside the tree rather than embedded in it, keeping
// FileNode a back-pointer-free value type.
type Index struct {
	nodes   map[string]*FileNode
	parents map[string]*FileNode
}

// NewIndex walks the given roots and indexes every node by its
// RelativePath. Later duplicates are ignored; the first node wins.
func NewIndex(roots []*FileNode) *Index {
	idx := &Index{
		nodes:   make(map[string]*FileNode),
		parents: make(map[string]*FileNode),
	}
	var walk func(parent *FileNode, nodes []*FileNode)
	walk = func(parent *FileNode, nodes []*FileNode) {
		for _, n := range nodes {
			if _, ok := idx.nodes[n.RelativePath]; !ok {
				idx.nodes[n.RelativePath] = n
				if parent != nil {
					idx.parents[n.RelativePath] = parent
				}
			}
			if n.IsDir() {
				walk(n, n.Children)
			}
		}
	}
	walk(nil, roots)
	return idx
}

// Lookup returns the node with the given relativePath, or nil if the
// path does not resolve in this snapshot.
func (i *Index) Lookup(relativePath string) *FileNode {
	return i.nodes[relativePath]
}

// Parent returns the parent directory of the node at relativePath, or
// nil for root-level nodes and unknown paths.
func (i *Index) Parent(relativePath string) *FileNode {
	return i.parents[relativePath]
}

// Len returns the number of indexed nodes.
func (i *Index) Len() int {
	return len(i.nodes)
}
