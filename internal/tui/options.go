package tui

import "github.com/pablasso/pomo/internal/config"

// Options configures the TUI at launch.
type Options struct {
	// Settings are the user's saved preferences.
	Settings config.Settings
	// TimeScale compresses plan durations for demos; 1 means real time.
	TimeScale int
}
