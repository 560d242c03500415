package ui

import "github.com/charmbracelet/glamour"

// RenderMarkdown renders text as terminal markdown with an automatic
// light/dark style, for previewing an assembled prompt before sending
// it anywhere.
func RenderMarkdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}
