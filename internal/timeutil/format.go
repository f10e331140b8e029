// Package timeutil formats durations for countdown display.
package timeutil

import (
	"fmt"
	"time"
)

// Clock renders a duration as MM:SS, rounding down to whole seconds.
// Hours roll into the minute field, so 90 minutes renders as "90:00".
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	minutes, seconds := total/60, total%60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Minutes renders a duration as a whole-minute quantity, e.g. "25 min".
func Minutes(d time.Duration) string {
	return fmt.Sprintf("%d min", int(d/time.Minute))
}
