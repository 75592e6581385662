package tasklist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todobin/internal/model"
	"github.com/nhle/todobin/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Text }

// TaskDelegate implements list.ItemDelegate for rendering active tasks.
type TaskDelegate struct {
	// focused is false while another section has key input; the cursor
	// row is then drawn like any other row.
	focused bool
}

// Height returns the number of lines each item takes.
func (d TaskDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d TaskDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d TaskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task line: a checkbox, then the text, struck
// through once the task is completed.
func (d TaskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}

	fmt.Fprint(w, renderTask(ti.Task, d.focused && index == m.Index()))
}

func renderTask(t model.Task, selected bool) string {
	box := "[ ]"
	text := t.Text
	if t.Completed {
		box = "[x]"
		text = theme.CompletedStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}
