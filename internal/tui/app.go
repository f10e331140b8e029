// Package tui implements the Bubble Tea dashboard.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/pomo/internal/config"
	"github.com/pablasso/pomo/internal/schedule"
	"github.com/pablasso/pomo/internal/session"
	"github.com/pablasso/pomo/internal/tasks"
	"github.com/pablasso/pomo/internal/tui/msgs"
	"github.com/pablasso/pomo/internal/tui/styles"
	"github.com/pablasso/pomo/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewTimer View = iota
	ViewTasks
)

// Model is the main Bubble Tea model that orchestrates both views.
type Model struct {
	currentView View
	timer       views.TimerModel
	taskList    views.TaskListModel
	width       int
	height      int
}

// Run starts the TUI application.
func Run(options Options) error {
	model, err := initialModel(options)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func initialModel(options Options) (Model, error) {
	settings := options.Settings
	plan, err := schedule.BuildPlan(settings.Schedule)
	if err != nil {
		return Model{}, fmt.Errorf("build plan: %w", err)
	}

	scale := options.TimeScale
	if scale < 1 {
		scale = 1
	}
	controller := session.New(plan, session.WithTimeScale(scale))

	theme := styles.ForName(settings.Theme)

	var storage *tasks.Storage
	list := tasks.NewList(nil)
	if dir, err := config.Dir(AppName); err == nil {
		storage = tasks.NewStorage(dir)
		if loaded, err := storage.Load(); err == nil {
			list = loaded
		}
	}

	return Model{
		timer: views.NewTimerModel(controller, views.TimerOptions{
			AutoStartBreaks: settings.AutoStartBreaks,
			AutoStartFocus:  settings.AutoStartFocus,
			Sound:           settings.Sound,
		}, theme),
		taskList: views.NewTaskListModel(list, storage, theme),
	}, nil
}

// AppName mirrors the CLI storage location so both shells share state.
const AppName = "pomo"

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.timer.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var timerCmd, tasksCmd tea.Cmd
		m.timer, timerCmd = m.timer.Update(msg)
		m.taskList, tasksCmd = m.taskList.Update(msg)
		return m, tea.Batch(timerCmd, tasksCmd)

	case msgs.OpenTasksMsg:
		m.currentView = ViewTasks
		return m, nil

	case msgs.CloseTasksMsg:
		m.currentView = ViewTimer
		return m, nil

	case msgs.IntervalCompletedMsg:
		// Finished focus work checks off the oldest pending task.
		if msg.Kind == schedule.KindFocus {
			m.taskList.AutoCheck()
		}
		return m, nil

	case views.TickMsg:
		// The countdown keeps running while the task panel is open.
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.routeKey(msg)
	}

	return m, nil
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	default:
		m.timer, cmd = m.timer.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.currentView == ViewTasks {
		return m.taskList.View()
	}
	return m.timer.View()
}
