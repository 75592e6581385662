// Package todolist holds the state of one to-do screen: the active tasks,
// the bin of deleted tasks, and the pending entry text.
//
// Positional operations act on the list as it is when they run. Callers
// that hold on to a task between renders should use the ID forms, which
// resolve the current position at mutation time. Invalid input is ignored
// and reported through the boolean result; state is left untouched.
package todolist

import (
	"strings"

	"github.com/nhle/todobin/internal/model"
)

// Snapshot is a copy of the list state for rendering.
type Snapshot struct {
	Active []model.Task
	Bin    []model.Task
	Draft  string
}

// Counts summarizes the list for headers and status lines.
type Counts struct {
	Active    int
	Completed int
	Binned    int
}

// List is the task list controller. The zero value is ready to use.
type List struct {
	active []model.Task
	bin    []model.Task
	draft  string
	nextID int
}

// New returns an empty list.
func New() *List {
	return &List{}
}

// SetDraftText replaces the pending entry text verbatim.
func (l *List) SetDraftText(value string) {
	l.draft = value
}

// Draft returns the pending entry text.
func (l *List) Draft() string {
	return l.draft
}

// AddTask appends the trimmed draft as a new, incomplete task and clears
// the draft. A blank draft is ignored and left as is.
func (l *List) AddTask() (model.Task, bool) {
	text := strings.TrimSpace(l.draft)
	if text == "" {
		return model.Task{}, false
	}

	l.nextID++
	task := model.Task{ID: l.nextID, Text: text}
	l.active = append(l.active, task)
	l.draft = ""
	return task, true
}

// DeleteTask moves the active task at position to the end of the bin.
func (l *List) DeleteTask(position int) bool {
	task, ok := take(&l.active, position)
	if !ok {
		return false
	}
	l.bin = append(l.bin, task)
	return true
}

// ToggleTaskCompletion flips the completed flag of the active task at
// position.
func (l *List) ToggleTaskCompletion(position int) bool {
	if !inRange(l.active, position) {
		return false
	}
	l.active[position].Completed = !l.active[position].Completed
	return true
}

// RestoreTask moves the binned task at position to the end of the active
// list. Its completed flag is kept.
func (l *List) RestoreTask(position int) bool {
	task, ok := take(&l.bin, position)
	if !ok {
		return false
	}
	l.active = append(l.active, task)
	return true
}

// RemoveForever drops the binned task at position.
func (l *List) RemoveForever(position int) bool {
	_, ok := take(&l.bin, position)
	return ok
}

// DeleteTaskByID moves the active task with the given id to the bin.
func (l *List) DeleteTaskByID(id int) bool {
	return l.DeleteTask(indexOf(l.active, id))
}

// ToggleTaskCompletionByID flips the completed flag of the active task
// with the given id.
func (l *List) ToggleTaskCompletionByID(id int) bool {
	return l.ToggleTaskCompletion(indexOf(l.active, id))
}

// RestoreTaskByID moves the binned task with the given id back to the
// active list.
func (l *List) RestoreTaskByID(id int) bool {
	return l.RestoreTask(indexOf(l.bin, id))
}

// RemoveForeverByID drops the binned task with the given id.
func (l *List) RemoveForeverByID(id int) bool {
	return l.RemoveForever(indexOf(l.bin, id))
}

// Active returns a copy of the active tasks in display order.
func (l *List) Active() []model.Task {
	return clone(l.active)
}

// Bin returns a copy of the binned tasks in display order.
func (l *List) Bin() []model.Task {
	return clone(l.bin)
}

// Snapshot returns a copy of the whole state.
func (l *List) Snapshot() Snapshot {
	return Snapshot{
		Active: l.Active(),
		Bin:    l.Bin(),
		Draft:  l.draft,
	}
}

// Counts returns the current list sizes.
func (l *List) Counts() Counts {
	c := Counts{Active: len(l.active), Binned: len(l.bin)}
	for _, t := range l.active {
		if t.Completed {
			c.Completed++
		}
	}
	return c
}

func inRange(tasks []model.Task, position int) bool {
	return position >= 0 && position < len(tasks)
}

func indexOf(tasks []model.Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// take removes and returns the task at position, keeping order.
func take(tasks *[]model.Task, position int) (model.Task, bool) {
	s := *tasks
	if !inRange(s, position) {
		return model.Task{}, false
	}
	task := s[position]
	*tasks = append(s[:position:position], s[position+1:]...)
	return task, true
}

func clone(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}
