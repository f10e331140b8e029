package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pablasso/pomo/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the saved settings",
		Long:  `Print the settings file contents, falling back to defaults when none exists.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	var (
		theme           string
		soundOn         bool
		autoStartBreaks bool
		autoStartFocus  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save settings",
		Long:  `Persist schedule parameters and preferences to the settings file. Only flags you pass change; everything else keeps its saved value.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(AppName)
			if err != nil {
				return err
			}

			cfg, err := resolveScheduleConfig(cmd)
			if err != nil {
				return err
			}
			settings.Schedule = cfg

			if cmd.Flags().Changed("theme") {
				if theme != config.ThemeDark && theme != config.ThemeLight {
					return fmt.Errorf("unknown theme %q, use dark or light", theme)
				}
				settings.Theme = theme
			}
			if cmd.Flags().Changed("sound") {
				settings.Sound = soundOn
			}
			if cmd.Flags().Changed("auto-start-breaks") {
				settings.AutoStartBreaks = autoStartBreaks
			}
			if cmd.Flags().Changed("auto-start-focus") {
				settings.AutoStartFocus = autoStartFocus
			}

			if err := config.Save(AppName, settings); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")
			return nil
		},
	}

	scheduleFlags(cmd)
	cmd.Flags().StringVar(&theme, "theme", config.ThemeDark, "color theme: dark|light")
	cmd.Flags().BoolVar(&soundOn, "sound", true, "play a bell when an interval completes")
	cmd.Flags().BoolVar(&autoStartBreaks, "auto-start-breaks", false, "start breaks without waiting for input")
	cmd.Flags().BoolVar(&autoStartFocus, "auto-start-focus", false, "start focus intervals without waiting for input")
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(AppName)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "pomodoros\t%d\n", settings.Schedule.Pomodoros)
	fmt.Fprintf(w, "focus-minutes\t%d\n", settings.Schedule.FocusMinutes)
	fmt.Fprintf(w, "short-break-minutes\t%d\n", settings.Schedule.ShortBreakMinutes)
	fmt.Fprintf(w, "long-break-minutes\t%d\n", settings.Schedule.LongBreakMinutes)
	fmt.Fprintf(w, "long-break-every\t%d\n", settings.Schedule.LongBreakEvery)
	fmt.Fprintf(w, "cycles\t%d\n", settings.Schedule.Cycles)
	fmt.Fprintf(w, "auto-start-breaks\t%t\n", settings.AutoStartBreaks)
	fmt.Fprintf(w, "auto-start-focus\t%t\n", settings.AutoStartFocus)
	fmt.Fprintf(w, "sound\t%t\n", settings.Sound)
	fmt.Fprintf(w, "theme\t%s\n", settings.Theme)
	return w.Flush()
}
