// Package display renders the single-line terminal countdown used by
// the CLI runner.
package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pablasso/pomo/internal/schedule"
	"github.com/pablasso/pomo/internal/timeutil"
)

// Display manages the terminal countdown line. The tick loop calls it
// once per tick; it repaints in place and only writes when the line
// actually changed.
type Display struct {
	mu       sync.Mutex
	writer   io.Writer
	lastLine string
}

// New creates a new Display writing to the given writer.
func New(w io.Writer) *Display {
	return &Display{writer: w}
}

// IntervalHeader announces the interval that is about to run.
func (d *Display) IntervalHeader(iv schedule.Interval) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastLine = ""
	fmt.Fprintf(d.writer, "\n▶ %s — %s\n", iv.Label, timeutil.Minutes(iv.Duration))
}

// Countdown repaints the remaining-time line.
func (d *Display) Countdown(remaining time.Duration, percent int) {
	line := fmt.Sprintf("%s remaining │ %d%%", timeutil.Clock(remaining), percent)

	d.mu.Lock()
	defer d.mu.Unlock()
	// Only update if changed (reduces flicker)
	if line == d.lastLine {
		return
	}
	d.lastLine = line

	// Move to start of line, clear it, write new content
	fmt.Fprintf(d.writer, "\r\033[K%s", line)
}

// Completed clears the countdown line and prints the completion mark.
func (d *Display) Completed() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastLine = ""
	fmt.Fprintf(d.writer, "\r\033[K✓ Done!\n")
}

// PrintAbove prints a message above the countdown line.
func (d *Display) PrintAbove(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.writer, "\r\033[K"+format+"\n", args...)
	if d.lastLine != "" {
		fmt.Fprintf(d.writer, "%s", d.lastLine)
	}
}
