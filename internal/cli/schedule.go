package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pablasso/pomo/internal/schedule"
	"github.com/pablasso/pomo/internal/timeutil"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the interval plan without running it",
		Long:  `Show the ordered focus and break intervals the current configuration produces.`,
		Args:  cobra.NoArgs,
		RunE:  runSchedule,
	}
	scheduleFlags(cmd)
	return cmd
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := resolveScheduleConfig(cmd)
	if err != nil {
		return err
	}
	plan, err := schedule.BuildPlan(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tLABEL\tKIND\tDURATION")
	for i, iv := range plan.Intervals() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, iv.Label, iv.Kind, timeutil.Minutes(iv.Duration))
	}
	fmt.Fprintf(w, "\tTotal\t\t%s\n", timeutil.Minutes(plan.Total()))
	return w.Flush()
}
