// Package ui renders rich terminal output.
package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown converts markdown to terminal output using glamour with
// auto-detected styling. On any rendering error the plain content is
// returned unchanged.
func RenderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
