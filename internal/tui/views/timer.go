package views

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/pomo/internal/schedule"
	"github.com/pablasso/pomo/internal/session"
	"github.com/pablasso/pomo/internal/sound"
	"github.com/pablasso/pomo/internal/timeutil"
	"github.com/pablasso/pomo/internal/tui/components"
	"github.com/pablasso/pomo/internal/tui/msgs"
	"github.com/pablasso/pomo/internal/tui/styles"
)

// TickMsg is sent once per second to advance the countdown.
type TickMsg time.Time

// TickCmd schedules the next countdown tick.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimerOptions configures the timer view's policies.
type TimerOptions struct {
	AutoStartBreaks bool
	AutoStartFocus  bool
	Sound           bool
}

// TimerModel is the countdown view. It owns the session controller and
// the tick loop; the controller itself never reads the clock.
type TimerModel struct {
	controller *session.Controller
	options    TimerOptions
	theme      styles.Theme
	progress   progress.Model
	statusBar  components.StatusBar

	percent   int
	remaining time.Duration
	flash     string

	// now is injectable so key handling stays deterministic in tests.
	now func() time.Time

	width  int
	height int
}

// NewTimerModel creates the countdown view for a controller.
func NewTimerModel(controller *session.Controller, options TimerOptions, theme styles.Theme) TimerModel {
	return TimerModel{
		controller: controller,
		options:    options,
		theme:      theme,
		progress:   progress.New(progress.WithDefaultGradient()),
		statusBar:  components.NewStatusBar(theme.StatusBar),
		remaining:  controller.Preview(),
		now:        time.Now,
	}
}

// Init implements tea.Model.
func (m TimerModel) Init() tea.Cmd {
	return TickCmd()
}

// Update implements tea.Model.
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = clampBarWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s", " ":
		now := m.now()
		if m.controller.Running() {
			m.controller.Pause(now)
		} else {
			m.flash = ""
			m.controller.Start(now)
		}
		return m, nil
	case "r":
		m.controller.Reset()
		m.flash = ""
		m.percent = 0
		m.remaining = m.controller.Preview()
		return m, nil
	case "n":
		done := m.controller.Skip()
		if done == nil {
			return m, nil
		}
		return m.applyCompletion(done, m.now())
	case "t":
		return m, func() tea.Msg { return msgs.OpenTasksMsg{} }
	}
	return m, nil
}

func (m TimerModel) handleTick(now time.Time) (TimerModel, tea.Cmd) {
	if !m.controller.Running() {
		return m, TickCmd()
	}

	tick := m.controller.Tick(now)
	if tick.Done == nil {
		m.remaining = tick.Remaining
		m.percent = tick.Percent
		return m, TickCmd()
	}
	return m.applyCompletion(tick.Done, now)
}

// applyCompletion reacts to a finished (or skipped) interval: flash
// it, beep, publish the event, and apply the auto-start policy.
func (m TimerModel) applyCompletion(done *session.Completion, now time.Time) (TimerModel, tea.Cmd) {
	m.flash = fmt.Sprintf("✓ %s complete", done.Interval.Label)
	m.percent = 0
	m.remaining = m.controller.Preview()

	cmds := []tea.Cmd{completedCmd(done)}
	if m.options.Sound {
		cmds = append(cmds, bellCmd)
	}

	if next := done.Next; next != nil && m.autoStart(next.Kind) {
		m.controller.Start(now)
		m.flash = ""
	}

	cmds = append(cmds, TickCmd())
	return m, tea.Batch(cmds...)
}

// autoStart reports whether the newly-current interval kind should
// begin without user input.
func (m TimerModel) autoStart(kind schedule.Kind) bool {
	if kind.IsBreak() {
		return m.options.AutoStartBreaks
	}
	return m.options.AutoStartFocus
}

func completedCmd(done *session.Completion) tea.Cmd {
	msg := msgs.IntervalCompletedMsg{
		Kind:  done.Interval.Kind,
		Label: done.Interval.Label,
	}
	if done.Next != nil {
		msg.Next = done.Next.Kind
	}
	return func() tea.Msg { return msg }
}

// bellCmd rings the terminal bell. The countdown never depends on it
// succeeding.
func bellCmd() tea.Msg {
	_ = sound.Bell(os.Stdout)
	return nil
}

// View implements tea.Model.
func (m TimerModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Pomodoro"))
	b.WriteString("\n\n")

	if m.controller.State() == session.StateFinished {
		b.WriteString(m.theme.Success.Render("All intervals complete. Nice work!"))
		b.WriteString("\n\n")
		b.WriteString(m.intervalBar())
		b.WriteString("\n\n")
		b.WriteString(m.statusBar.Render(m.width, []string{"[r] restart", "[t] tasks", "[q] quit"}))
		return b.String()
	}

	current := m.controller.Current()
	b.WriteString(m.labelStyle(current.Kind).Render(current.Label))
	b.WriteString("  ")
	b.WriteString(m.theme.Subtle.Render(timeutil.Minutes(current.Duration)))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Timer.Render(bigClock(m.remaining)))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(float64(m.percent) / 100))
	b.WriteString("\n")
	b.WriteString(m.intervalBar())
	b.WriteString("\n\n")

	if m.flash != "" {
		b.WriteString(m.theme.Success.Render(m.flash))
		b.WriteString("\n")
	}
	b.WriteString(m.stateLine())
	b.WriteString("\n\n")
	b.WriteString(m.statusBar.Render(m.width, m.helpItems()))

	return b.String()
}

func (m TimerModel) labelStyle(kind schedule.Kind) lipgloss.Style {
	if kind.IsBreak() {
		return m.theme.Break
	}
	return m.theme.Interval
}

func (m TimerModel) intervalBar() string {
	return components.NewIntervalBar(m.controller.Index(), m.controller.Plan().Len()).View()
}

func (m TimerModel) stateLine() string {
	switch m.controller.State() {
	case session.StateRunning:
		return m.theme.Subtle.Render("running")
	case session.StatePaused:
		return m.theme.Paused.Render("paused")
	default:
		return m.theme.Subtle.Render("press s to start")
	}
}

func (m TimerModel) helpItems() []string {
	action := "[s] start"
	if m.controller.Running() {
		action = "[s] pause"
	}
	return []string{action, "[n] skip", "[r] reset", "[t] tasks", "[q] quit"}
}

// bigClock renders the remaining time in a wide, readable form.
func bigClock(d time.Duration) string {
	return "  " + timeutil.Clock(d) + "  "
}

func clampBarWidth(width int) int {
	bar := width - 8
	if bar < 10 {
		bar = 10
	}
	if bar > 60 {
		bar = 60
	}
	return bar
}
