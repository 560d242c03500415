package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrNoTTY indicates an interactive component was invoked without a
// terminal attached.
var ErrNoTTY = errors.New("interactive prompt requires a terminal (use --yes in scripts)")

// Confirm asks a yes/no question. In a non-interactive environment it
// fails with ErrNoTTY instead of hanging.
func Confirm(question string) (bool, error) {
	if !IsInteractive() {
		return false, ErrNoTTY
	}

	var answer bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return answer, nil
}
