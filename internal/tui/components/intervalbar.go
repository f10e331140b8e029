package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// IntervalBar renders the session's position in the plan like:
// ■■■□□□□□ 3/8
type IntervalBar struct {
	Completed int
	Total     int
}

// NewIntervalBar creates a new IntervalBar instance.
func NewIntervalBar(completed, total int) IntervalBar {
	return IntervalBar{
		Completed: completed,
		Total:     total,
	}
}

// View returns the rendered bar string.
func (b IntervalBar) View() string {
	if b.Total <= 0 {
		return ""
	}

	// Clamp completed to valid range
	completed := b.Completed
	if completed < 0 {
		completed = 0
	}
	if completed > b.Total {
		completed = b.Total
	}

	bar := strings.Repeat(filledChar, completed) + strings.Repeat(emptyChar, b.Total-completed)

	return fmt.Sprintf("%s %d/%d", bar, completed, b.Total)
}
