package tasklist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todobin/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: 1, Text: "Buy milk"},
		{ID: 2, Text: "Walk dog", Completed: true},
		{ID: 3, Text: "Call mom"},
	}
}

func TestSetTasksAndTitle(t *testing.T) {
	m := New(80, 20)
	m.SetTasks(sampleTasks())

	if m.Len() != 3 {
		t.Fatalf("expected 3 tasks, got %d", m.Len())
	}
	if got := m.Title(); got != "Tasks (1/3)" {
		t.Errorf("expected 'Tasks (1/3)', got %q", got)
	}
}

func TestNavigationMovesSelection(t *testing.T) {
	m := New(80, 20)
	m.SetTasks(sampleTasks())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	task, ok := m.SelectedTask()
	if !ok || task.ID != 2 {
		t.Fatalf("expected task 2 selected, got %+v (%v)", task, ok)
	}
}

func TestSetTasksClampsCursor(t *testing.T) {
	m := New(80, 20)
	m.SetTasks(sampleTasks())
	m.Select(3)

	m.SetTasks(sampleTasks()[:2])

	task, ok := m.SelectedTask()
	if !ok || task.ID != 2 {
		t.Errorf("expected cursor clamped to last task, got %+v (%v)", task, ok)
	}
}

func TestSelectedTaskOnEmptyList(t *testing.T) {
	m := New(80, 20)
	m.SetTasks(nil)

	if _, ok := m.SelectedTask(); ok {
		t.Error("expected no selection on an empty list")
	}
	if !strings.Contains(m.View(), "Nothing to do") {
		t.Errorf("expected empty state, got %q", m.View())
	}
}

func TestRenderTask(t *testing.T) {
	open := renderTask(model.Task{Text: "Buy milk"}, false)
	if !strings.Contains(open, "[ ] Buy milk") {
		t.Errorf("unexpected open task rendering %q", open)
	}

	done := renderTask(model.Task{Text: "Buy milk", Completed: true}, true)
	if !strings.Contains(done, "[x]") || !strings.Contains(done, "Buy milk") {
		t.Errorf("unexpected completed task rendering %q", done)
	}
}
