package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/pomo/internal/tasks"
	"github.com/pablasso/pomo/internal/tui/components"
	"github.com/pablasso/pomo/internal/tui/msgs"
	"github.com/pablasso/pomo/internal/tui/styles"
)

// TaskListModel is the task panel: browse, toggle, and add tasks.
type TaskListModel struct {
	list    *tasks.List
	storage *tasks.Storage
	theme   styles.Theme

	cursor    int
	adding    bool
	input     textinput.Model
	statusBar components.StatusBar
	errorMsg  string

	width  int
	height int
}

// NewTaskListModel creates the task panel around an existing list.
// storage may be nil in tests; changes are then kept in memory only.
func NewTaskListModel(list *tasks.List, storage *tasks.Storage, theme styles.Theme) TaskListModel {
	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 200
	input.Width = 40

	return TaskListModel{
		list:      list,
		storage:   storage,
		theme:     theme,
		input:     input,
		statusBar: components.NewStatusBar(theme.StatusBar),
	}
}

// AutoCheck marks the first pending task done after a completed focus
// interval and persists the change.
func (m *TaskListModel) AutoCheck() {
	if m.list.CheckFirstPending() {
		m.persist()
	}
}

// Init implements tea.Model.
func (m TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m TaskListModel) handleListKey(msg tea.KeyMsg) (TaskListModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "t":
		return m, func() tea.Msg { return msgs.CloseTasksMsg{} }
	case "a":
		m.adding = true
		m.errorMsg = ""
		m.input.SetValue("")
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		m.list.Toggle(m.cursor)
		m.persist()
		return m, nil
	}
	return m, nil
}

func (m TaskListModel) handleInputKey(msg tea.KeyMsg) (TaskListModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Blur()
		if text != "" {
			m.list.Add(text)
			m.cursor = m.list.Len() - 1
			m.persist()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// persist saves the list, keeping the panel usable when storage fails.
func (m *TaskListModel) persist() {
	if m.storage == nil {
		return
	}
	if err := m.storage.Save(m.list); err != nil {
		m.errorMsg = fmt.Sprintf("could not save tasks: %v", err)
	} else {
		m.errorMsg = ""
	}
}

// View implements tea.Model.
func (m TaskListModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Tasks"))
	b.WriteString("\n\n")

	if m.list.Len() == 0 && !m.adding {
		b.WriteString(m.theme.Subtle.Render("No tasks yet. Press a to add one."))
		b.WriteString("\n")
	}

	for i, task := range m.list.Items() {
		mark := "[ ]"
		if task.Done {
			mark = "[✓]"
		}
		line := fmt.Sprintf("%s %s", mark, task.Text)
		if i == m.cursor && !m.adding {
			line = m.theme.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.list.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtle.Render(fmt.Sprintf("%d of %d pending", m.list.Remaining(), m.list.Len())))
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(m.errorMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.width, m.helpItems()))

	return b.String()
}

func (m TaskListModel) helpItems() []string {
	if m.adding {
		return []string{"[enter] save", "[esc] cancel"}
	}
	return []string{"[a] add", "[enter] toggle", "[esc] timer", "[q] quit"}
}
