package tasklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todobin/internal/model"
	"github.com/nhle/todobin/internal/theme"
	"github.com/nhle/todobin/internal/ui"
)

// Model is the active task list section.
type Model struct {
	list      list.Model
	delegate  TaskDelegate
	completed int
	width     int
	height    int
}

// New creates a new task list model.
func New(width, height int) Model {
	delegate := TaskDelegate{}
	l := list.New([]list.Item{}, delegate, width, listHeight(height))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{
		list:     l,
		delegate: delegate,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation messages for the task list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SetTasks replaces the rendered tasks, keeping the cursor on a valid row.
func (m *Model) SetTasks(tasks []model.Task) tea.Cmd {
	items := make([]list.Item, len(tasks))
	m.completed = 0
	for i, t := range tasks {
		items[i] = TaskItem{Task: t}
		if t.Completed {
			m.completed++
		}
	}

	cmd := m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

// SelectedTask returns the task under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// Select moves the cursor to the task with the given id.
func (m *Model) Select(id int) {
	for i, it := range m.list.Items() {
		if ti, ok := it.(TaskItem); ok && ti.Task.ID == id {
			m.list.Select(i)
			return
		}
	}
}

// Len returns the number of rendered tasks.
func (m Model) Len() int {
	return len(m.list.Items())
}

// SetFocused controls whether the cursor row is highlighted.
func (m *Model) SetFocused(focused bool) {
	m.delegate.focused = focused
	m.list.SetDelegate(m.delegate)
}

// Title returns the section heading with the completion count.
func (m Model) Title() string {
	return fmt.Sprintf("Tasks (%d/%d)", m.completed, m.Len())
}

// View renders the task list section.
func (m Model) View() string {
	body := m.list.View()
	if m.Len() == 0 {
		body = theme.EmptyStyle.Render("Nothing to do. Type a task above and press enter.")
	}
	return ui.RenderSection(m.Title(), body, m.width, m.height, m.delegate.focused)
}

// SetSize updates the section dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(max(0, width-4), listHeight(height))
}

// listHeight is the room left for rows once the border and heading are
// drawn.
func listHeight(height int) int {
	return max(1, height-4)
}
