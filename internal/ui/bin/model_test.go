package bin

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todobin/internal/keys"
	"github.com/nhle/todobin/internal/model"
)

func newBin(t *testing.T, tasks ...model.Task) Model {
	t.Helper()
	m := New(keys.DefaultKeyMap(), 80, 10)
	m.SetTasks(tasks)
	m.SetFocused(true)
	return m
}

func TestCursorWraps(t *testing.T) {
	m := newBin(t, model.Task{ID: 1, Text: "a"}, model.Task{ID: 2, Text: "b"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if task, _ := m.SelectedTask(); task.ID != 2 {
		t.Errorf("expected wrap to last task, got %+v", task)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if task, _ := m.SelectedTask(); task.ID != 1 {
		t.Errorf("expected wrap to first task, got %+v", task)
	}
}

func TestSetTasksClampsSelection(t *testing.T) {
	m := newBin(t, model.Task{ID: 1}, model.Task{ID: 2}, model.Task{ID: 3})
	m.selectedIdx = 2

	m.SetTasks([]model.Task{{ID: 1}})
	if task, ok := m.SelectedTask(); !ok || task.ID != 1 {
		t.Errorf("expected selection clamped to remaining task, got %+v (%v)", task, ok)
	}

	m.SetTasks(nil)
	if _, ok := m.SelectedTask(); ok {
		t.Error("expected no selection in an empty bin")
	}
}

func TestAskRemoveCapturesSelectedTask(t *testing.T) {
	m := newBin(t, model.Task{ID: 7, Text: "old"}, model.Task{ID: 9, Text: "older"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m.AskRemove()

	if !m.Confirming() {
		t.Fatal("expected confirmation prompt to open")
	}
	if m.pendingID != 9 {
		t.Errorf("expected pending id 9, got %d", m.pendingID)
	}
	if !strings.Contains(m.View(), "older") {
		t.Errorf("expected prompt to name the task, got %q", m.View())
	}
}

func TestEscCancelsConfirmation(t *testing.T) {
	m := newBin(t, model.Task{ID: 1, Text: "a"})
	m.AskRemove()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Confirming() {
		t.Error("expected esc to close the prompt")
	}
	if cmd != nil {
		t.Error("cancelling should not emit a removal")
	}
}

func TestAskRemoveOnEmptyBin(t *testing.T) {
	m := newBin(t)

	if cmd := m.AskRemove(); cmd != nil {
		t.Error("expected no command for an empty bin")
	}
	if m.Confirming() {
		t.Error("prompt should not open for an empty bin")
	}
	if !strings.Contains(m.View(), "The bin is empty.") {
		t.Errorf("expected empty state, got %q", m.View())
	}
}

func TestViewListsBinnedTasks(t *testing.T) {
	m := newBin(t, model.Task{ID: 1, Text: "first"}, model.Task{ID: 2, Text: "second"})

	view := m.View()
	for _, want := range []string{"Bin (2)", "first", "second", "restore"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}
