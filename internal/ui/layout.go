package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todobin/internal/theme"
)

// EntryHeight is the number of rows the entry section takes, border
// included.
const EntryHeight = 3

// Layout manages the single-screen terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return max(0, l.Height-l.HeaderHeight-l.StatusBarHeight)
}

// SectionHeights splits the rows below the entry between the task list
// and the bin, giving the task list roughly three fifths.
func (l Layout) SectionHeights() (tasks, bin int) {
	rest := max(0, l.ContentHeight()-EntryHeight)
	tasks = rest * 3 / 5
	return tasks, rest - tasks
}

// RenderHeader renders the top header bar with a title on the left and a
// summary on the right.
func (l Layout) RenderHeader(title string, summary string) string {
	titleRendered := theme.HeaderStyle.Render(title)
	summaryRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(summary)

	gap := max(0, l.Width-
		lipgloss.Width(titleRendered)-
		lipgloss.Width(summaryRendered))

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.HeaderStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		summaryRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := max(0, l.Width-lipgloss.Width(rendered))
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.StatusBarStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}

// RenderSection draws a titled, bordered section of the given outer size.
func RenderSection(title, body string, width, height int, focused bool) string {
	style := theme.PanelFor(focused)
	innerWidth := max(0, width-style.GetHorizontalBorderSize())
	innerHeight := max(0, height-style.GetVerticalBorderSize())

	content := body
	if title != "" {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			theme.SubHeaderStyle.Render(title),
			body,
		)
	}

	return style.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(content)
}
