package board

import "taskboard/internal/service"

// BeginEdit moves to Editing(id, title of id). An edit already in progress
// is replaced without confirmation. Unknown ids leave the state alone.
func (b *Board) BeginEdit(id service.ID) bool {
	t, ok := b.Find(id)
	if !ok {
		return false
	}
	b.edit = editState{active: true, id: id, draft: t.Title}
	return true
}

// Editing returns the edit target and draft; ok is false when Idle.
func (b *Board) Editing() (id service.ID, draft string, ok bool) {
	return b.edit.id, b.edit.draft, b.edit.active
}

// IsEditing reports whether id is the current edit target.
func (b *Board) IsEditing(id service.ID) bool {
	return b.edit.active && b.edit.id == id
}

// SetDraft updates the draft text. Ignored when Idle.
func (b *Board) SetDraft(s string) {
	if b.edit.active {
		b.edit.draft = s
	}
}

// CancelEdit discards the draft and returns to Idle.
func (b *Board) CancelEdit() {
	b.edit = editState{}
}

// CommitEdit applies a saved title and returns to Idle. Call it only after
// the remote update succeeded; the title lands on id even if the edit
// target has moved on since.
func (b *Board) CommitEdit(id service.ID, title string) {
	b.Rename(id, title)
	b.edit = editState{}
}
