// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles for one color scheme.
type Theme struct {
	Title     lipgloss.Style
	Timer     lipgloss.Style
	Interval  lipgloss.Style
	Break     lipgloss.Style
	Paused    lipgloss.Style
	Subtle    lipgloss.Style
	StatusBar lipgloss.Style
	Box       lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Selected  lipgloss.Style
}

// Dark returns the default dark scheme.
func Dark() Theme {
	return build(
		lipgloss.Color("#5FAFAF"), // teal accent
		lipgloss.Color("#87AF87"), // muted sage
		lipgloss.Color("#D7AF5F"), // amber for pauses
		lipgloss.Color("#666666"), // gray secondary text
		lipgloss.Color("#AF5F5F"), // muted terracotta
	)
}

// Light returns the light scheme.
func Light() Theme {
	return build(
		lipgloss.Color("#00875F"),
		lipgloss.Color("#5F8700"),
		lipgloss.Color("#AF8700"),
		lipgloss.Color("#8A8A8A"),
		lipgloss.Color("#D75F5F"),
	)
}

// ForName maps a settings theme name to a Theme, defaulting to dark.
func ForName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

func build(primary, success, paused, secondary, errColor lipgloss.Color) Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),

		// Timer is the big centered countdown clock.
		Timer: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Interval: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Break: lipgloss.NewStyle().
			Bold(true).
			Foreground(success),

		Paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(paused),

		Subtle: lipgloss.NewStyle().
			Foreground(secondary),

		StatusBar: lipgloss.NewStyle().
			Foreground(secondary),

		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondary).
			Padding(1, 2),

		Success: lipgloss.NewStyle().
			Foreground(success),

		Error: lipgloss.NewStyle().
			Foreground(errColor),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
	}
}
