// Package ui implements the interactive collaborators around the
// selection core: the terminal tree picker, confirmation prompts, and
// markdown preview rendering. The core packages never import this one.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// forceHeadless overrides TTY detection, for tests.
var forceHeadless *bool

// IsInteractive reports whether stdin and stdout are attached to a
// terminal, so interactive components can refuse to start in pipelines
// and CI.
func IsInteractive() bool {
	if forceHeadless != nil {
		return !*forceHeadless
	}
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to simulate a
// non-interactive environment; call ClearForce to revert.
func ForceHeadless(force bool) {
	forceHeadless = &force
}

// ClearForce reverts to automatic TTY detection.
func ClearForce() {
	forceHeadless = nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
