package schedule

import (
	"fmt"
	"time"
)

// Config holds the numeric parameters for building a plan.
// All fields must be at least 1.
type Config struct {
	// Pomodoros is the number of focus sessions per cycle.
	Pomodoros int
	// FocusMinutes is the length of each focus session.
	FocusMinutes int
	// ShortBreakMinutes is the length of breaks between focus sessions.
	ShortBreakMinutes int
	// LongBreakMinutes is the length of each long break.
	LongBreakMinutes int
	// LongBreakEvery emits a long break after every Nth focus session;
	// other focus sessions are followed by a short break.
	LongBreakEvery int
	// Cycles repeats the whole sequence. Focus numbering restarts at 1
	// in each cycle.
	Cycles int
}

// DefaultConfig returns the standard Pomodoro parameters.
func DefaultConfig() Config {
	return Config{
		Pomodoros:         4,
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakEvery:    4,
		Cycles:            1,
	}
}

// ConfigError reports an invalid plan parameter. It is the only error
// the builder returns.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

func (c Config) validate() error {
	switch {
	case c.Pomodoros < 1:
		return &ConfigError{Field: "pomodoros", Reason: "must be at least 1"}
	case c.FocusMinutes < 1:
		return &ConfigError{Field: "focus-minutes", Reason: "must be positive"}
	case c.ShortBreakMinutes < 1:
		return &ConfigError{Field: "short-break-minutes", Reason: "must be positive"}
	case c.LongBreakMinutes < 1:
		return &ConfigError{Field: "long-break-minutes", Reason: "must be positive"}
	case c.LongBreakEvery < 1:
		return &ConfigError{Field: "long-break-every", Reason: "must be at least 1"}
	case c.Cycles < 1:
		return &ConfigError{Field: "cycles", Reason: "must be at least 1"}
	}
	return nil
}

// BuildPlan creates the interval sequence for cfg. Every focus session
// is followed by exactly one break, so the plan always contains
// Cycles * 2 * Pomodoros intervals. A long break follows every
// LongBreakEvery-th focus session within a cycle; every other focus
// session is followed by a short break.
func BuildPlan(cfg Config) (Plan, error) {
	if err := cfg.validate(); err != nil {
		return Plan{}, err
	}

	intervals := make([]Interval, 0, cfg.Cycles*2*cfg.Pomodoros)
	for cycle := 0; cycle < cfg.Cycles; cycle++ {
		for index := 1; index <= cfg.Pomodoros; index++ {
			intervals = append(intervals, Interval{
				Kind:     KindFocus,
				Label:    fmt.Sprintf("Focus %d", index),
				Duration: time.Duration(cfg.FocusMinutes) * time.Minute,
			})
			if index%cfg.LongBreakEvery == 0 {
				intervals = append(intervals, Interval{
					Kind:     KindLongBreak,
					Label:    "Long break",
					Duration: time.Duration(cfg.LongBreakMinutes) * time.Minute,
				})
			} else {
				intervals = append(intervals, Interval{
					Kind:     KindShortBreak,
					Label:    fmt.Sprintf("Short break %d", index),
					Duration: time.Duration(cfg.ShortBreakMinutes) * time.Minute,
				})
			}
		}
	}

	return Plan{intervals: intervals}, nil
}
