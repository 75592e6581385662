package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todobin/internal/keys"
	"github.com/nhle/todobin/internal/theme"
)

// Model is the help overlay view.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(k *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	h.ShowAll = true
	return Model{
		keys:   k,
		help:   h,
		width:  width,
		height: height,
	}
}

// View renders every binding grouped by section, followed by a short
// description of the bin.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorDeepTeal).
		MarginBottom(1)

	title := titleStyle.Render("Keyboard Shortcuts")
	helpText := m.help.View(m.keys)
	about := theme.HelpStyle.Render(
		"Deleted tasks wait in the bin until restored or deleted forever.\n" +
			"Press ? or esc to close.",
	)

	content := lipgloss.JoinVertical(lipgloss.Left, title, helpText, "", about)

	return theme.PanelStyle.
		Width(max(0, m.width-2)).
		Height(max(0, m.height-2)).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = max(0, width-4)
}
