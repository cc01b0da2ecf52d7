package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/service"
)

func sampleTasks() []service.Task {
	return []service.Task{
		{ID: "1", Title: "Write tests", Completed: false},
		{ID: "2", Title: "Ship feature", Completed: true},
		{ID: "3", Title: "Update docs", Completed: false},
		{ID: "4", Title: "Celebrate", Completed: true},
	}
}

func TestVisible_PartitionsByCompleted(t *testing.T) {
	tasks := sampleTasks()

	all := Visible(tasks, FilterAll)
	assert.Equal(t, tasks, all)

	done := Visible(tasks, FilterCompleted)
	pending := Visible(tasks, FilterPending)
	for _, tk := range done {
		assert.True(t, tk.Completed, "completed filter leaked %v", tk)
	}
	for _, tk := range pending {
		assert.False(t, tk.Completed, "pending filter leaked %v", tk)
	}
	assert.Len(t, done, 2)
	assert.Len(t, pending, 2)
	assert.Equal(t, len(tasks), len(done)+len(pending))

	// Order is preserved.
	assert.Equal(t, []service.ID{"2", "4"}, ids(done))
	assert.Equal(t, []service.ID{"1", "3"}, ids(pending))
}

func TestVisible_DoesNotAliasInput(t *testing.T) {
	tasks := sampleTasks()
	out := Visible(tasks, FilterAll)
	out[0].Title = "changed"
	assert.Equal(t, "Write tests", tasks[0].Title)
}

func TestParseFilter(t *testing.T) {
	cases := map[string]Filter{
		"":          FilterAll,
		"All":       FilterAll,
		"completed": FilterCompleted,
		" Pending ": FilterPending,
		"done":      FilterCompleted,
	}
	for in, want := range cases {
		got, err := ParseFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFilter("someday")
	assert.Error(t, err)
}

func TestFilter_NextCycles(t *testing.T) {
	f := FilterAll
	seen := []string{}
	for range Filters {
		seen = append(seen, f.String())
		f = f.Next()
	}
	assert.Equal(t, []string{"All", "Completed", "Pending"}, seen)
	assert.Equal(t, FilterAll, f)
}

func TestAppend_AddsToEnd(t *testing.T) {
	b := New(sampleTasks())
	b.Append(service.Task{ID: "9", Title: "New"})

	got := b.Tasks()
	require.Len(t, got, 5)
	assert.Equal(t, service.Task{ID: "9", Title: "New"}, got[4])
}

func TestRemove_OnlyMatchingID(t *testing.T) {
	b := New(sampleTasks())
	assert.True(t, b.Remove("2"))
	assert.Equal(t, []service.ID{"1", "3", "4"}, ids(b.Tasks()))

	assert.False(t, b.Remove("2"))
	assert.Equal(t, 3, b.Len())
}

func TestFlip_OnlyThatRecord(t *testing.T) {
	b := New(sampleTasks())
	before := b.Tasks()

	require.True(t, b.Flip("3"))
	after := b.Tasks()
	for i := range before {
		if before[i].ID == "3" {
			assert.Equal(t, !before[i].Completed, after[i].Completed)
			assert.Equal(t, before[i].Title, after[i].Title)
			continue
		}
		assert.Equal(t, before[i], after[i])
	}
}

func TestToggleScenario(t *testing.T) {
	b := New([]service.Task{{ID: "1", Title: "A", Completed: false}})
	b.Flip("1")
	assert.Equal(t, []service.Task{{ID: "1", Title: "A", Completed: true}}, b.Tasks())

	b.SetFilter(FilterPending)
	assert.Empty(t, b.Visible())
}

func TestEdit_BeginCancel(t *testing.T) {
	b := New(sampleTasks())

	_, _, ok := b.Editing()
	assert.False(t, ok)

	require.True(t, b.BeginEdit("1"))
	id, draft, ok := b.Editing()
	assert.True(t, ok)
	assert.Equal(t, service.ID("1"), id)
	assert.Equal(t, "Write tests", draft)

	b.SetDraft("something else")
	b.CancelEdit()

	_, _, ok = b.Editing()
	assert.False(t, ok)
	got, _ := b.Find("1")
	assert.Equal(t, "Write tests", got.Title)
}

func TestEdit_SecondBeginReplacesTarget(t *testing.T) {
	b := New(sampleTasks())
	b.BeginEdit("1")
	b.SetDraft("half typed")

	b.BeginEdit("3")
	id, draft, ok := b.Editing()
	assert.True(t, ok)
	assert.Equal(t, service.ID("3"), id)
	assert.Equal(t, "Update docs", draft)
	assert.False(t, b.IsEditing("1"))
}

func TestEdit_UnknownIDStaysIdle(t *testing.T) {
	b := New(sampleTasks())
	assert.False(t, b.BeginEdit("404"))
	_, _, ok := b.Editing()
	assert.False(t, ok)
}

func TestEdit_SetDraftIgnoredWhenIdle(t *testing.T) {
	b := New(sampleTasks())
	b.SetDraft("x")
	_, draft, _ := b.Editing()
	assert.Empty(t, draft)
}

func TestEdit_Commit(t *testing.T) {
	b := New(sampleTasks())
	b.BeginEdit("2")
	b.SetDraft("Ship it")
	b.CommitEdit("2", "Ship it")

	_, _, ok := b.Editing()
	assert.False(t, ok)
	got, _ := b.Find("2")
	assert.Equal(t, "Ship it", got.Title)
	assert.True(t, got.Completed)
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(""))
	assert.True(t, Blank("  \t\n"))
	assert.False(t, Blank(" a "))
}

func ids(tasks []service.Task) []service.ID {
	out := make([]service.ID, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
