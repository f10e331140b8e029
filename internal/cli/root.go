// Package cli implements the pomo command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/pomo/internal/version"
)

// AppName is the directory name used for settings and task storage.
const AppName = "pomo"

// NewRootCmd builds the full command tree. Each call returns a fresh
// tree so parsed flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pomo",
		Short:   "Pomodoro timer for your terminal",
		Long:    `Pomo runs timed focus and break intervals in your terminal. One plan, one countdown at a time.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newTasksCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newBeepCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
