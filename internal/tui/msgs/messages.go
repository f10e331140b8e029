// Package msgs defines messages shared between TUI views.
package msgs

import "github.com/pablasso/pomo/internal/schedule"

// OpenTasksMsg asks the app to switch to the task panel.
type OpenTasksMsg struct{}

// CloseTasksMsg asks the app to return to the timer.
type CloseTasksMsg struct{}

// IntervalCompletedMsg is published when an interval finishes so other
// views can react (task auto-check, bell).
type IntervalCompletedMsg struct {
	Kind  schedule.Kind
	Label string
	// Next is the kind of the newly-current interval, empty when the
	// plan finished.
	Next schedule.Kind
}
