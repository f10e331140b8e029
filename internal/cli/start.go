package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pablasso/pomo/internal/config"
	"github.com/pablasso/pomo/internal/display"
	"github.com/pablasso/pomo/internal/schedule"
	"github.com/pablasso/pomo/internal/session"
	"github.com/pablasso/pomo/internal/sound"
	"github.com/pablasso/pomo/internal/tasks"
	"github.com/pablasso/pomo/internal/timeutil"
)

const banner = `
   ___  ___  __  __  ___
  / _ \/ _ \|  \/  |/ _ \
 / ___/ (_) | |\/| | (_) |
/_/    \___/|_|  |_|\___/
`

// fastScale treats one real second as one plan minute.
const fastScale = 60

func newStartCmd() *cobra.Command {
	var (
		fast    bool
		dryRun  bool
		noSound bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the Pomodoro timer",
		Long:  `Build the interval plan and count each interval down in the terminal. Ctrl+C exits early.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, fast, dryRun, noSound)
		},
	}

	scheduleFlags(cmd)
	cmd.Flags().BoolVar(&fast, "fast", false, "treat one real second as one plan minute (handy for demos)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the schedule without running timers")
	cmd.Flags().BoolVar(&noSound, "no-sound", false, "skip the completion bell")
	return cmd
}

func runStart(cmd *cobra.Command, fast, dryRun, noSound bool) error {
	// 1. Merge settings file with flags and build the plan.
	cfg, err := resolveScheduleConfig(cmd)
	if err != nil {
		return err
	}
	plan, err := schedule.BuildPlan(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, cfg)

	// 2. Dry run only prints the schedule.
	if dryRun {
		fmt.Fprintln(out, "Planned intervals:")
		for _, iv := range plan.Intervals() {
			fmt.Fprintf(out, "- %s: %s\n", iv.Label, timeutil.Minutes(iv.Duration))
		}
		return nil
	}

	// 3. Load settings for sound preference and the task list.
	settings, err := config.Load(AppName)
	if err != nil {
		return err
	}
	playSound := settings.Sound && !noSound

	// 4. Run the countdown under signal handling.
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scale := 1
	if fast {
		scale = fastScale
	}

	fmt.Fprintln(out, "Press Ctrl+C to exit early. Running timers…")
	runner := &countdownRunner{
		controller: session.New(plan, session.WithTimeScale(scale)),
		display:    display.New(out),
		playSound:  playSound,
		out:        out,
	}
	if err := runner.run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(out, "\nSession interrupted. See you next time!")
			return nil
		}
		return err
	}
	fmt.Fprintln(out, "\nAll intervals complete. Nice work!")
	return nil
}

// countdownRunner owns the tick loop for the CLI shell. The controller
// never reads the clock; the runner feeds it time.Now on every tick.
type countdownRunner struct {
	controller *session.Controller
	display    *display.Display
	playSound  bool
	out        io.Writer
}

func (r *countdownRunner) run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	c := r.controller
	for c.State() != session.StateFinished {
		r.display.IntervalHeader(*c.Current())
		c.Start(time.Now())

		// First paint before the first tick elapses.
		tick := c.Tick(time.Now())
		r.display.Countdown(tick.Remaining, tick.Percent)

		for c.Running() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case now := <-ticker.C:
				tick := c.Tick(now)
				if tick.Done != nil {
					r.display.Completed()
					r.onCompletion(tick.Done)
					continue
				}
				r.display.Countdown(tick.Remaining, tick.Percent)
			}
		}
	}
	return nil
}

// onCompletion plays the bell and checks off a task after focus work.
// The CLI shell always auto-starts the next interval; per-kind policy
// only exists in the TUI.
func (r *countdownRunner) onCompletion(done *session.Completion) {
	if r.playSound {
		// The countdown never depends on the bell succeeding.
		_ = sound.Bell(r.out)
	}
	if done.Interval.Kind == schedule.KindFocus {
		r.checkFirstPendingTask()
	}
}

// checkFirstPendingTask marks the oldest undone task as done, matching
// the dashboard's auto-check behavior. Storage problems are shown but
// never stop the timer.
func (r *countdownRunner) checkFirstPendingTask() {
	dir, err := config.Dir(AppName)
	if err != nil {
		return
	}
	storage := tasks.NewStorage(dir)
	list, err := storage.Load()
	if err != nil || !list.CheckFirstPending() {
		return
	}
	if err := storage.Save(list); err != nil {
		r.display.PrintAbove("could not update tasks: %v", err)
	}
}

func printSummary(out io.Writer, cfg schedule.Config) {
	fmt.Fprintf(out, "%s\n", banner)
	fmt.Fprintf(out, "Pomodoros  : %d\n", cfg.Pomodoros)
	fmt.Fprintf(out, "Focus      : %d minute(s)\n", cfg.FocusMinutes)
	fmt.Fprintf(out, "Short br.  : %d minute(s)\n", cfg.ShortBreakMinutes)
	fmt.Fprintf(out, "Long br.   : %d minute(s)\n", cfg.LongBreakMinutes)
	fmt.Fprintf(out, "Long every : %d\n", cfg.LongBreakEvery)
	fmt.Fprintf(out, "Cycles     : %d\n", cfg.Cycles)
	fmt.Fprintln(out)
}
