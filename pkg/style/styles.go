// Package style holds the lipgloss styles for user-facing output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Palette
var (
	SuccessColor = lipgloss.Color("2")
	ErrorColor   = lipgloss.Color("1")
	PathColor    = lipgloss.Color("6")
)

// Base styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Enabled reports whether styled output should be produced: stdout must be
// a terminal with some color support.
func Enabled() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// Success renders s in the success style when styling is enabled
func Success(s string) string {
	if !Enabled() {
		return s
	}
	return SuccessStyle.Render(s)
}

// Error renders s in the error style when styling is enabled
func Error(s string) string {
	if !Enabled() {
		return s
	}
	return ErrorStyle.Render(s)
}

// Path renders a filesystem path in the path style when styling is enabled
func Path(s string) string {
	if !Enabled() {
		return s
	}
	return PathStyle.Render(s)
}
