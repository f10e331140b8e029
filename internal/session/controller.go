// Package session tracks progress through a schedule.Plan over time.
//
// The controller never reads the wall clock: callers inject the current
// time into Start, Pause, and Tick, which keeps the countdown
// deterministic and testable. All calls must come from a single
// goroutine; the presentation layer owns the tick loop.
package session

import (
	"time"

	"github.com/pablasso/pomo/internal/schedule"
)

// State describes where the controller is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Completion is emitted when an interval's deadline is reached.
type Completion struct {
	// Interval is the interval that just finished.
	Interval schedule.Interval
	// Index is its position in the plan.
	Index int
	// Next is the newly-current interval, or nil when the plan is
	// finished. Callers use its Kind to apply auto-start policy.
	Next *schedule.Interval
}

// Tick is the result of a single Tick call.
type Tick struct {
	// Remaining is the time left in the active interval, rounded up
	// to whole seconds. Zero when Done is set or nothing is running.
	Remaining time.Duration
	// Percent is how much of the active interval has elapsed,
	// clamped to [0, 100]. Reaches 100 exactly on the completing tick.
	Percent int
	// Done is non-nil when the active interval completed on this tick.
	Done *Completion
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeScale compresses interval durations by the given divisor.
// A divisor of 60 treats one real second as one plan minute. The scale
// belongs to the presentation layer; the plan itself always reports
// true durations. Divisors below 1 are ignored.
func WithTimeScale(divisor int) Option {
	return func(c *Controller) {
		if divisor >= 1 {
			c.scale = divisor
		}
	}
}

// Controller is the countdown state machine for one plan. The zero
// value is not usable; create one with New.
type Controller struct {
	plan         schedule.Plan
	scale        int
	currentIndex int
	running      bool
	paused       bool
	deadline     time.Time
	carried      time.Duration
}

// New creates a controller positioned at the first interval, not running.
func New(plan schedule.Plan, opts ...Option) *Controller {
	c := &Controller{plan: plan, scale: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Plan returns the plan the controller is driving.
func (c *Controller) Plan() schedule.Plan {
	return c.plan
}

// Index returns the 0-based position of the current interval. It
// equals Plan().Len() once the session has finished.
func (c *Controller) Index() int {
	return c.currentIndex
}

// Current returns the active interval, or nil when the plan is finished.
func (c *Controller) Current() *schedule.Interval {
	return c.intervalAt(c.currentIndex)
}

// State reports the controller's lifecycle state. Stopped between
// intervals (after a completion, before the next Start) counts as
// Idle; only an explicit Pause yields Paused.
func (c *Controller) State() State {
	switch {
	case c.currentIndex >= c.plan.Len():
		return StateFinished
	case c.running:
		return StateRunning
	case c.paused:
		return StatePaused
	default:
		return StateIdle
	}
}

// Running reports whether a countdown is in progress.
func (c *Controller) Running() bool {
	return c.running
}

// Preview returns the duration the next Start would count down: the
// carried remainder when paused, otherwise the current interval's full
// scaled duration. Zero once the plan is finished.
func (c *Controller) Preview() time.Duration {
	if c.currentIndex >= c.plan.Len() {
		return 0
	}
	if c.paused {
		return ceilSeconds(c.carried)
	}
	return c.effectiveDuration(c.plan.At(c.currentIndex))
}

// Start begins or resumes the current interval's countdown. Resuming
// from a pause uses the carried remainder; otherwise the deadline is
// the interval's full (scaled) duration from now. Calling Start while
// already running or after the plan finished is a no-op.
func (c *Controller) Start(now time.Time) {
	if c.running || c.currentIndex >= c.plan.Len() {
		return
	}
	remaining := c.effectiveDuration(c.plan.At(c.currentIndex))
	if c.paused {
		// A zero carried remainder resumes as an immediate deadline,
		// not a restarted interval.
		remaining = c.carried
	}
	c.deadline = now.Add(remaining)
	c.carried = 0
	c.paused = false
	c.running = true
}

// Pause stops the countdown and keeps the time left so a later Start
// resumes where it left off. A no-op unless running.
func (c *Controller) Pause(now time.Time) {
	if !c.running {
		return
	}
	c.carried = c.deadline.Sub(now)
	if c.carried < 0 {
		c.carried = 0
	}
	c.running = false
	c.paused = true
	c.deadline = time.Time{}
}

// Reset returns the controller to the start of the plan from any state.
func (c *Controller) Reset() {
	c.currentIndex = 0
	c.running = false
	c.paused = false
	c.deadline = time.Time{}
	c.carried = 0
}

// Skip ends the current interval immediately, emitting the same
// Completion a deadline tick would. Works from any non-finished state;
// returns nil once the plan is done.
func (c *Controller) Skip() *Completion {
	if c.currentIndex >= c.plan.Len() {
		return nil
	}
	skipped := c.plan.At(c.currentIndex)
	index := c.currentIndex
	c.currentIndex++
	c.running = false
	c.paused = false
	c.deadline = time.Time{}
	c.carried = 0
	return &Completion{
		Interval: skipped,
		Index:    index,
		Next:     c.intervalAt(c.currentIndex),
	}
}

// Tick advances the countdown to now. While the deadline is in the
// future it reports the remaining time and completion percentage. Once
// now reaches the deadline it emits a Completion, moves to the next
// interval, and leaves the controller stopped so the caller can decide
// whether to Start again. A no-op result is returned when not running.
func (c *Controller) Tick(now time.Time) Tick {
	if !c.running {
		return Tick{}
	}

	if !now.Before(c.deadline) {
		finished := c.plan.At(c.currentIndex)
		index := c.currentIndex
		c.currentIndex++
		c.running = false
		c.deadline = time.Time{}
		c.carried = 0
		return Tick{
			Percent: 100,
			Done: &Completion{
				Interval: finished,
				Index:    index,
				Next:     c.intervalAt(c.currentIndex),
			},
		}
	}

	total := c.effectiveDuration(c.plan.At(c.currentIndex))
	remaining := c.deadline.Sub(now)
	if remaining > total {
		remaining = total
	}
	return Tick{
		Remaining: ceilSeconds(remaining),
		Percent:   percent(total-remaining, total),
	}
}

func (c *Controller) intervalAt(i int) *schedule.Interval {
	if i >= c.plan.Len() {
		return nil
	}
	iv := c.plan.At(i)
	return &iv
}

// effectiveDuration applies the presentation time scale, never going
// below one second.
func (c *Controller) effectiveDuration(iv schedule.Interval) time.Duration {
	d := iv.Duration / time.Duration(c.scale)
	if d < time.Second {
		d = time.Second
	}
	return d
}

func ceilSeconds(d time.Duration) time.Duration {
	secs := d / time.Second
	if d%time.Second != 0 {
		secs++
	}
	return secs * time.Second
}

func percent(elapsed, total time.Duration) int {
	if total <= 0 {
		return 100
	}
	p := int((elapsed*100 + total/2) / total)
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p
}
