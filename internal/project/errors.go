package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrRootNotFound indicates the project root directory is missing
	// or not a directory.
	ErrRootNotFound = errors.New("project root directory not found")

	// ErrFileNotFound indicates a selected path that resolves to no
	// file on disk.
	ErrFileNotFound = errors.New("file not found")
)
