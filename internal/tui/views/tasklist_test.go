package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/pomo/internal/tasks"
	"github.com/pablasso/pomo/internal/tui/msgs"
	"github.com/pablasso/pomo/internal/tui/styles"
)

func newTestTaskList(items []tasks.Task) TaskListModel {
	return NewTaskListModel(tasks.NewList(items), nil, styles.Dark())
}

func TestTaskListModel_ViewEmpty(t *testing.T) {
	m := newTestTaskList(nil)

	if !strings.Contains(m.View(), "No tasks yet") {
		t.Errorf("expected empty hint:\n%s", m.View())
	}
}

func TestTaskListModel_NavigateAndToggle(t *testing.T) {
	m := newTestTaskList([]tasks.Task{{Text: "a"}, {Text: "b"}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("cursor should clamp at the last task, got %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.list.Items()[1].Done {
		t.Error("expected task b to toggle done")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("expected cursor back at 0, got %d", m.cursor)
	}
}

func TestTaskListModel_AddTask(t *testing.T) {
	m := newTestTaskList(nil)

	m, _ = m.Update(keyMsg("a"))
	if !m.adding {
		t.Fatal("expected input mode after a")
	}

	for _, r := range "ship it" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.adding {
		t.Error("expected input mode to close on enter")
	}
	items := m.list.Items()
	if len(items) != 1 || items[0].Text != "ship it" {
		t.Errorf("expected the new task, got %+v", items)
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor on the new task, got %d", m.cursor)
	}
}

func TestTaskListModel_AddCancelledWithEsc(t *testing.T) {
	m := newTestTaskList(nil)

	m, _ = m.Update(keyMsg("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.adding {
		t.Error("expected input mode to close on esc")
	}
	if m.list.Len() != 0 {
		t.Errorf("expected no task added, got %d", m.list.Len())
	}
}

func TestTaskListModel_EscReturnsToTimer(t *testing.T) {
	m := newTestTaskList(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(msgs.CloseTasksMsg); !ok {
		t.Errorf("expected CloseTasksMsg, got %T", cmd())
	}
}

func TestTaskListModel_AutoCheck(t *testing.T) {
	m := newTestTaskList([]tasks.Task{{Text: "a"}, {Text: "b"}})

	m.AutoCheck()

	items := m.list.Items()
	if !items[0].Done {
		t.Error("expected the first pending task to be checked")
	}
	if items[1].Done {
		t.Error("expected the second task untouched")
	}
}

func TestTaskListModel_ViewMarksDoneTasks(t *testing.T) {
	m := newTestTaskList([]tasks.Task{{Text: "a", Done: true}, {Text: "b"}})

	view := m.View()
	if !strings.Contains(view, "[✓] a") {
		t.Errorf("expected done mark for a:\n%s", view)
	}
	if !strings.Contains(view, "[ ] b") {
		t.Errorf("expected pending mark for b:\n%s", view)
	}
	if !strings.Contains(view, "1 of 2 pending") {
		t.Errorf("expected the pending count:\n%s", view)
	}
}
