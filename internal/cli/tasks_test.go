package cli

import (
	"strings"
	"testing"
)

func TestTasks_AddListAndDone(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := execute(t, "tasks", "add", "write", "report"); err != nil {
		t.Fatalf("adding first task: %v", err)
	}
	if _, err := execute(t, "tasks", "add", "review PR"); err != nil {
		t.Fatalf("adding second task: %v", err)
	}

	got, err := execute(t, "tasks", "done", "1")
	if err != nil {
		t.Fatalf("toggling task: %v", err)
	}
	if !strings.Contains(got, "Task 1 done") {
		t.Errorf("expected done confirmation:\n%s", got)
	}

	got, err = execute(t, "tasks")
	if err != nil {
		t.Fatalf("listing tasks: %v", err)
	}
	for _, want := range []string{"write report", "review PR", "1 of 2 pending"} {
		if !strings.Contains(got, want) {
			t.Errorf("list missing %q:\n%s", want, got)
		}
	}
}

func TestTasks_ListEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := execute(t, "tasks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "No tasks yet") {
		t.Errorf("expected empty hint:\n%s", got)
	}

	if _, err := execute(t, "tasks", "done", "1"); err == nil {
		t.Error("expected an error toggling a missing task")
	}
}
