// Package board holds the local mirror of the remote task list and the UI
// state around it: the active filter, the new-task text and the edit target.
//
// Board never performs I/O. Callers issue the remote call first and apply
// its result here only on success.
package board

import (
	"strings"

	"taskboard/internal/service"
)

// Board is the in-memory state store. The zero value is an empty board
// showing all tasks with nothing being edited.
type Board struct {
	tasks  []service.Task
	filter Filter
	input  string
	edit   editState
}

// editState is Idle when active is false.
type editState struct {
	active bool
	id     service.ID
	draft  string
}

// New returns a board preloaded with tasks.
func New(tasks []service.Task) *Board {
	b := &Board{}
	b.Hydrate(tasks)
	return b
}

// Blank reports whether s is empty or whitespace only.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Tasks returns a copy of the full list in append order.
func (b *Board) Tasks() []service.Task {
	out := make([]service.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Len returns the number of tasks in the full list.
func (b *Board) Len() int { return len(b.tasks) }

// Find returns the task with id.
func (b *Board) Find(id service.ID) (service.Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// Hydrate replaces the whole list. Used once, with the initial fetch.
func (b *Board) Hydrate(tasks []service.Task) {
	b.tasks = make([]service.Task, len(tasks))
	copy(b.tasks, tasks)
}

// Append adds a server-returned record to the end of the list.
func (b *Board) Append(t service.Task) {
	b.tasks = append(b.tasks, t)
}

// Remove drops every record whose id equals id and reports whether any matched.
func (b *Board) Remove(id service.ID) bool {
	kept := b.tasks[:0:0]
	for _, t := range b.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(b.tasks)
	b.tasks = kept
	return removed
}

// Rename sets the title of the record with id.
func (b *Board) Rename(id service.ID, title string) bool {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks[i].Title = title
			return true
		}
	}
	return false
}

// Flip negates the completed flag of the record with id as it is now,
// not as it was when the request was sent.
func (b *Board) Flip(id service.ID) bool {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks[i].Completed = !b.tasks[i].Completed
			return true
		}
	}
	return false
}

// Filter returns the active filter.
func (b *Board) Filter() Filter { return b.filter }

// SetFilter changes the active filter.
func (b *Board) SetFilter(f Filter) { b.filter = f }

// Visible derives the filtered view from the current full list.
func (b *Board) Visible() []service.Task {
	return Visible(b.tasks, b.filter)
}

// Input returns the new-task text.
func (b *Board) Input() string { return b.input }

// SetInput replaces the new-task text.
func (b *Board) SetInput(s string) { b.input = s }

// ClearInput empties the new-task text after a successful create.
func (b *Board) ClearInput() { b.input = "" }
