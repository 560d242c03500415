package models

// FileContent is the result of loading one selected path. Exactly one
// of the placeholder flags is set when Content is empty for a reason
// other than an empty file.
type FileContent struct {
	// Path is the slash-delimited path relative to the project root.
	Path string `json:"path"`

	// Content is the file text. Empty for directory and binary
	// placeholders.
	Content string `json:"content"`

	// TokenCount is the estimated token count of Content; -1 means the
	// file was too large to tokenize.
	TokenCount int `json:"tokenCount"`

	// IsDirectory marks a selected path that resolved to a directory.
	IsDirectory bool `json:"isDirectory,omitempty"`

	// IsBinary marks a file whose bytes are not valid UTF-8 text.
	IsBinary bool `json:"isBinary,omitempty"`

	// Size is the on-disk size in bytes, reported for placeholders.
	Size int64 `json:"size,omitempty"`
}
