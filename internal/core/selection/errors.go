package selection

import "errors"

// Sentinel errors for the selection package.
var (
	// ErrGroupNotFound indicates a selection group name that does not
	// exist for the project.
	ErrGroupNotFound = errors.New("selection group not found")
)
