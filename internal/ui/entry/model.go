package entry

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todobin/internal/theme"
)

// Model is the new-task entry field.
type Model struct {
	input textinput.Model
	width int
}

// New creates an entry field. A charLimit of zero means unlimited.
func New(placeholder string, charLimit, width int) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "+ "
	ti.CharLimit = charLimit
	ti.Width = max(1, width-20)

	return Model{
		input: ti,
		width: width,
	}
}

// Init returns the cursor blink command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the text input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input followed by the add hint.
func (m Model) View() string {
	hint := theme.HelpStyle.Render("enter: Add Task")
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		theme.InputStyle.Render(m.input.View()),
		" ",
		hint,
	)
}

// Value returns the current text, untrimmed.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text and moves the cursor to the end.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the field has keyboard focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// SetSize updates the entry width.
func (m *Model) SetSize(width int) {
	m.width = width
	m.input.Width = max(1, width-20)
}
