package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/pomo/internal/config"
	"github.com/pablasso/pomo/internal/schedule"
)

// scheduleFlags registers the plan parameters on a command. Defaults
// shown in help come from the standard Pomodoro configuration; the
// settings file fills in anything the user did not pass explicitly.
func scheduleFlags(cmd *cobra.Command) {
	defaults := schedule.DefaultConfig()
	cmd.Flags().Int("pomodoros", defaults.Pomodoros, "number of focus sessions per cycle")
	cmd.Flags().Int("focus-minutes", defaults.FocusMinutes, "minutes per focus session")
	cmd.Flags().Int("short-break-minutes", defaults.ShortBreakMinutes, "minutes per short break")
	cmd.Flags().Int("long-break-minutes", defaults.LongBreakMinutes, "minutes per long break")
	cmd.Flags().Int("long-break-every", defaults.LongBreakEvery, "take a long break after every Nth focus session")
	cmd.Flags().Int("cycles", defaults.Cycles, "repeat the whole sequence this many times")
}

// resolveScheduleConfig merges the settings file with explicit flags.
// Flags the user passed win over the file; everything else keeps the
// saved value.
func resolveScheduleConfig(cmd *cobra.Command) (schedule.Config, error) {
	settings, err := config.Load(AppName)
	if err != nil {
		return schedule.Config{}, err
	}

	cfg := settings.Schedule
	overrides := map[string]*int{
		"pomodoros":           &cfg.Pomodoros,
		"focus-minutes":       &cfg.FocusMinutes,
		"short-break-minutes": &cfg.ShortBreakMinutes,
		"long-break-minutes":  &cfg.LongBreakMinutes,
		"long-break-every":    &cfg.LongBreakEvery,
		"cycles":              &cfg.Cycles,
	}
	for name, target := range overrides {
		if cmd.Flags().Changed(name) {
			value, err := cmd.Flags().GetInt(name)
			if err != nil {
				return schedule.Config{}, err
			}
			*target = value
		}
	}

	// An explicit pomodoro count without an explicit cadence keeps the
	// long break at the end of the run, the way the classic schedule
	// reads.
	if cmd.Flags().Changed("pomodoros") && !cmd.Flags().Changed("long-break-every") {
		cfg.LongBreakEvery = cfg.Pomodoros
	}
	return cfg, nil
}
