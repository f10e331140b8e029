package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders a bottom help bar showing contextual key hints.
type StatusBar struct {
	style lipgloss.Style
}

// NewStatusBar creates a new StatusBar rendered with the given style.
func NewStatusBar(style lipgloss.Style) StatusBar {
	return StatusBar{style: style}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 {
		return s.style.Width(width).Render("")
	}

	content := strings.Join(items, " • ")

	return s.style.Width(width).Render(content)
}
