package app

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todobin/internal/keys"
	"github.com/nhle/todobin/internal/model"
	"github.com/nhle/todobin/internal/todolist"
	"github.com/nhle/todobin/internal/ui"
	"github.com/nhle/todobin/internal/ui/bin"
	"github.com/nhle/todobin/internal/ui/entry"
	helpview "github.com/nhle/todobin/internal/ui/help"
	"github.com/nhle/todobin/internal/ui/tasklist"
)

// Focus identifies the section that receives key input.
type Focus int

const (
	FocusEntry Focus = iota
	FocusTasks
	FocusBin
)

const focusCount = 3

// Model is the root Bubble Tea model. It owns the task list controller
// and applies every gesture to it synchronously inside Update, so each
// gesture sees the state left by the previous one.
type Model struct {
	tasks    *todolist.List
	display  model.DisplayConfig
	keys     *keys.KeyMap
	layout   ui.Layout
	focus    Focus
	entry    entry.Model
	taskList tasklist.Model
	bin      bin.Model
	helpView helpview.Model
	showHelp bool
	ready    bool
}

// New creates a new root application model around the given list.
func New(l *todolist.List, display model.DisplayConfig) Model {
	k := keys.DefaultKeyMap()

	m := Model{
		tasks:    l,
		display:  display,
		keys:     k,
		layout:   ui.NewLayout(80, 24),
		focus:    FocusEntry,
		entry:    entry.New(display.Placeholder, display.CharLimit, 80),
		taskList: tasklist.New(80, 12),
		bin:      bin.New(k, 80, 7),
		helpView: helpview.New(k, 80, 22),
	}
	m.entry.SetValue(l.Draft())
	m.entry.Focus()
	m.refresh()
	return m
}

// Init starts the cursor blinking in the entry field.
func (m Model) Init() tea.Cmd {
	return m.entry.Init()
}

// Update handles messages and dispatches to the focused section.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.resize()
		return m, nil

	case bin.RemoveConfirmedMsg:
		m.removeForever(msg.TaskID)
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Blink ticks, huh internals and the like go to every section; each
	// ignores what is not addressed to it.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	cmds = append(cmds, cmd)
	m.taskList, cmd = m.taskList.Update(msg)
	cmds = append(cmds, cmd)
	m.bin, cmd = m.bin.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press. Global keys come first, then the focused
// section's actions, then the section itself.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The confirmation prompt owns the keyboard until it closes.
	if m.bin.Confirming() {
		var cmd tea.Cmd
		m.bin, cmd = m.bin.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextPane):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevPane):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Back):
		return m, m.setFocus(FocusEntry)
	}

	switch m.focus {
	case FocusEntry:
		return m.handleEntryKey(msg)
	case FocusTasks:
		return m.handleTasksKey(msg)
	case FocusBin:
		return m.handleBinKey(msg)
	}
	return m, nil
}

func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Add) {
		if task, ok := m.tasks.AddTask(); ok {
			log.Printf("task %d added", task.ID)
			m.entry.SetValue(m.tasks.Draft())
			return m, m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	m.tasks.SetDraftText(m.entry.Value())
	return m, cmd
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.taskList.SelectedTask()
		if ok && m.tasks.ToggleTaskCompletionByID(task.ID) {
			log.Printf("task %d toggled", task.ID)
			return m, m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.taskList.SelectedTask()
		if ok && m.tasks.DeleteTaskByID(task.ID) {
			log.Printf("task %d moved to bin", task.ID)
			return m, m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m Model) handleBinKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		task, ok := m.bin.SelectedTask()
		if ok && m.tasks.RestoreTaskByID(task.ID) {
			log.Printf("task %d restored", task.ID)
			cmd := m.refresh()
			m.taskList.Select(task.ID)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.RemoveForever):
		if !m.display.ConfirmRemove {
			if task, ok := m.bin.SelectedTask(); ok {
				m.removeForever(task.ID)
				return m, m.refresh()
			}
			return m, nil
		}
		return m, m.bin.AskRemove()
	}

	var cmd tea.Cmd
	m.bin, cmd = m.bin.Update(msg)
	return m, cmd
}

// removeForever drops a binned task. The id may have left the bin since
// the gesture started, in which case nothing happens.
func (m *Model) removeForever(id int) {
	if m.tasks.RemoveForeverByID(id) {
		log.Printf("task %d removed forever", id)
	}
}

// refresh pushes the controller's current projection into the sections.
func (m *Model) refresh() tea.Cmd {
	snap := m.tasks.Snapshot()
	cmd := m.taskList.SetTasks(snap.Active)
	m.bin.SetTasks(snap.Bin)
	return cmd
}

// setFocus moves key input to f, blurring the entry field when it loses
// focus.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.taskList.SetFocused(f == FocusTasks)
	m.bin.SetFocused(f == FocusBin)
	if f == FocusEntry {
		return m.entry.Focus()
	}
	m.entry.Blur()
	return nil
}

// resize distributes the terminal size over the sections.
func (m *Model) resize() {
	width := m.layout.ContentWidth()
	tasksHeight, binHeight := m.layout.SectionHeights()
	m.entry.SetSize(width)
	m.taskList.SetSize(width, tasksHeight)
	m.bin.SetSize(width, binHeight)
	m.helpView.SetSize(width, m.layout.ContentHeight())
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.display.Title, m.summary())
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, m.renderContent(), statusBar)
}

func (m Model) renderContent() string {
	if m.showHelp {
		return m.helpView.View()
	}

	entrySection := ui.RenderSection(
		"", m.entry.View(),
		m.layout.ContentWidth(), ui.EntryHeight,
		m.focus == FocusEntry,
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		entrySection,
		m.taskList.View(),
		m.bin.View(),
	)
}

// summary returns the header's right-hand counts.
func (m Model) summary() string {
	c := m.tasks.Counts()
	return fmt.Sprintf("%d/%d done · %d in bin", c.Completed, c.Active, c.Binned)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if !m.display.ShowHelp {
		return ""
	}

	switch {
	case m.bin.Confirming():
		return "y delete | n keep | esc cancel"
	case m.showHelp:
		return "? close help | esc back"
	}

	switch m.focus {
	case FocusTasks:
		return "space toggle | d bin | tab next | ? help | q quit"
	case FocusBin:
		return "r restore | D delete forever | tab next | ? help | q quit"
	default:
		return "enter add | tab tasks | ctrl+c quit"
	}
}

// Focused returns the section that currently receives key input.
func (m Model) Focused() Focus {
	return m.focus
}
