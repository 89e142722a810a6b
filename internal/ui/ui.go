// Package ui implements the human-readable rendering of the command-line
// interface using [lipgloss].
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	dirStyle   lipgloss.Style
	linkStyle  lipgloss.Style
	fileStyle  lipgloss.Style
}

// NewHandler returns a pointer to a new user interface [Handler] rendering
// for w. Without color, all styles render as plain text.
func NewHandler(w io.Writer, color bool) *Handler {
	renderer := lipgloss.NewRenderer(w)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Handler{
		titleStyle: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")),
		labelStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(10), //nolint:mnd
		valueStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		dirStyle: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		linkStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		fileStyle: renderer.NewStyle(),
	}
}
