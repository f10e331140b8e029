// Package schedule builds the ordered sequence of focus and break
// intervals that makes up one Pomodoro session.
package schedule

import "time"

// Kind identifies what an interval is for.
type Kind string

const (
	KindFocus      Kind = "focus"
	KindShortBreak Kind = "short_break"
	KindLongBreak  Kind = "long_break"
)

// IsBreak reports whether the kind is a short or long break.
func (k Kind) IsBreak() bool {
	return k == KindShortBreak || k == KindLongBreak
}

// Interval is one labeled, fixed-duration segment of a session.
// Values are created by BuildPlan and never mutated.
type Interval struct {
	Kind     Kind
	Label    string
	Duration time.Duration
}

// Plan is the complete ordered sequence of intervals for one session.
// The slice order is the execution order.
type Plan struct {
	intervals []Interval
}

// Len returns the number of intervals in the plan.
func (p Plan) Len() int {
	return len(p.intervals)
}

// At returns the interval at position i.
func (p Plan) At(i int) Interval {
	return p.intervals[i]
}

// Intervals returns a copy of the plan's intervals, preserving order.
func (p Plan) Intervals() []Interval {
	out := make([]Interval, len(p.intervals))
	copy(out, p.intervals)
	return out
}

// Total returns the sum of all interval durations.
func (p Plan) Total() time.Duration {
	var total time.Duration
	for _, iv := range p.intervals {
		total += iv.Duration
	}
	return total
}
