package bin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todobin/internal/keys"
	"github.com/nhle/todobin/internal/model"
	"github.com/nhle/todobin/internal/theme"
	"github.com/nhle/todobin/internal/ui"
)

// RemoveConfirmedMsg asks the parent to drop a binned task for good.
type RemoveConfirmedMsg struct {
	TaskID int
}

type binMode int

const (
	modeList binMode = iota
	modeConfirmRemove
)

type formBindings struct {
	confirm bool
}

// Model is the bin section: a cursor list of deleted tasks with a
// confirmation prompt for permanent removal.
type Model struct {
	mode        binMode
	keys        *keys.KeyMap
	tasks       []model.Task
	selectedIdx int
	pendingID   int
	confirmForm *huh.Form
	fb          *formBindings
	focused     bool
	width       int
	height      int
}

// New creates a new bin model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		mode:  modeList,
		keys:  k,
		fb:    &formBindings{},
		width: width, height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and the confirmation prompt.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode == modeConfirmRemove {
		return m.updateConfirm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if len(m.tasks) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.tasks)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.tasks) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.tasks) - 1
			}
		}
		return m, nil
	}
	return m, nil
}

// AskRemove opens the confirmation prompt for the selected task. The
// task's id is captured now, so a confirmation that arrives after the bin
// has changed still targets the same task.
func (m *Model) AskRemove() tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	m.pendingID = task.ID
	m.fb.confirm = false
	m.confirmForm = m.buildConfirmForm(task.Text)
	m.mode = modeConfirmRemove
	return m.confirmForm.Init()
}

// Confirming reports whether the confirmation prompt owns key input.
func (m Model) Confirming() bool {
	return m.mode == modeConfirmRemove
}

func (m Model) buildConfirmForm(text string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q forever?", text)).
				Description("It cannot be restored afterwards.").
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		m.mode = modeList
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		m.cancelConfirm()
		return m, nil
	}

	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	switch m.confirmForm.State {
	case huh.StateCompleted:
		id, confirmed := m.pendingID, m.fb.confirm
		m.cancelConfirm()
		if confirmed {
			return m, func() tea.Msg { return RemoveConfirmedMsg{TaskID: id} }
		}
		return m, nil
	case huh.StateAborted:
		m.cancelConfirm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) cancelConfirm() {
	m.mode = modeList
	m.confirmForm = nil
	m.pendingID = 0
}

// SetTasks replaces the binned tasks, keeping the cursor in range.
func (m *Model) SetTasks(tasks []model.Task) {
	m.tasks = tasks
	if m.selectedIdx >= len(m.tasks) && m.selectedIdx > 0 {
		m.selectedIdx = len(m.tasks) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
}

// SelectedTask returns the task under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[m.selectedIdx], true
}

// Len returns the number of binned tasks.
func (m Model) Len() int {
	return len(m.tasks)
}

// SetFocused controls whether the cursor row is highlighted.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// View renders the bin section.
func (m Model) View() string {
	title := fmt.Sprintf("Bin (%d)", len(m.tasks))
	if m.mode == modeConfirmRemove && m.confirmForm != nil {
		return ui.RenderSection(title, m.confirmForm.View(), m.width, m.height, true)
	}
	return ui.RenderSection(title, m.viewList(), m.width, m.height, m.focused)
}

func (m Model) viewList() string {
	if len(m.tasks) == 0 {
		return theme.EmptyStyle.Render("The bin is empty.")
	}

	rows := max(1, m.height-4)
	start := 0
	if m.selectedIdx >= rows {
		start = m.selectedIdx - rows + 1
	}
	end := min(len(m.tasks), start+rows)

	actions := theme.RestoreStyle.Render("↩ restore") + "  " +
		theme.RemoveStyle.Render("✕ delete")

	var b strings.Builder
	for i := start; i < end; i++ {
		label := m.tasks[i].Text
		if m.focused && i == m.selectedIdx {
			b.WriteString(lipgloss.JoinHorizontal(
				lipgloss.Top,
				theme.SelectedBinItemStyle.Render(label),
				"  ",
				actions,
			))
		} else {
			b.WriteString(theme.BinItemStyle.Render(label))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.confirmForm != nil {
		m.confirmForm = m.confirmForm.WithWidth(m.formWidth())
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 30 {
		w = 30
	}
	if w > 100 {
		w = 100
	}
	return w
}
