package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pablasso/pomo/internal/config"
	"github.com/pablasso/pomo/internal/tasks"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks",
		Long:  `Show the task list. Completed focus intervals check tasks off automatically.`,
		Args:  cobra.NoArgs,
		RunE:  runTasksList,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTasksAdd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "done <number>",
		Short: "Toggle a task by its list number",
		Args:  cobra.ExactArgs(1),
		RunE:  runTasksDone,
	})
	return cmd
}

func taskStorage() (*tasks.Storage, error) {
	dir, err := config.Dir(AppName)
	if err != nil {
		return nil, err
	}
	return tasks.NewStorage(dir), nil
}

func runTasksList(cmd *cobra.Command, args []string) error {
	storage, err := taskStorage()
	if err != nil {
		return err
	}
	list, err := storage.Load()
	if err != nil {
		return err
	}

	if list.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks yet. Add one with `pomo tasks add <text>`.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDONE\tTASK")
	for i, task := range list.Items() {
		mark := " "
		if task.Done {
			mark = "✓"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, mark, task.Text)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d pending\n", list.Remaining(), list.Len())
	return nil
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	storage, err := taskStorage()
	if err != nil {
		return err
	}
	list, err := storage.Load()
	if err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("task text cannot be empty")
	}
	list.Add(text)

	if err := storage.Save(list); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", list.Len(), text)
	return nil
}

func runTasksDone(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil || number < 1 {
		return fmt.Errorf("task number must be a positive integer, got %q", args[0])
	}

	storage, err := taskStorage()
	if err != nil {
		return err
	}
	list, err := storage.Load()
	if err != nil {
		return err
	}
	if number > list.Len() {
		return fmt.Errorf("no task %d, the list has %d", number, list.Len())
	}

	list.Toggle(number - 1)
	if err := storage.Save(list); err != nil {
		return err
	}

	task := list.Items()[number-1]
	state := "reopened"
	if task.Done {
		state = "done"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Task %d %s: %s\n", number, state, task.Text)
	return nil
}
