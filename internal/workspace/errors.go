package workspace

import "errors"

// Sentinel errors for the workspace package.
var (
	// ErrNoProject indicates an operation that requires a project path
	// before one has been set.
	ErrNoProject = errors.New("no project path set")
)
