package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNote_Matches(t *testing.T) {
	note := Note{Title: "Shopping List", Body: "Milk, Bread"}

	tests := []struct {
		query string
		want  bool
	}{
		{query: "", want: true},
		{query: "shopping", want: true},
		{query: "SHOPPING", want: true},
		{query: "bread", want: true},
		{query: "list milk", want: false},
		{query: "eggs", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, note.Matches(tt.query))
		})
	}
}

func TestNote_IsAndIsBlank(t *testing.T) {
	assert.True(t, Note{ID: "a", Title: "x"}.Is("a"))
	assert.False(t, Note{ID: "a"}.Is("b"))

	assert.True(t, Note{ID: "a"}.IsBlank())
	assert.False(t, Note{Title: "x"}.IsBlank())
	assert.False(t, Note{Body: "x"}.IsBlank())
}

func TestSortNotes(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	notes := []Note{
		{ID: "old", ModifiedAt: base},
		{ID: "tie-1", ModifiedAt: base.Add(time.Hour)},
		{ID: "new", ModifiedAt: base.Add(2 * time.Hour)},
		{ID: "tie-2", ModifiedAt: base.Add(time.Hour)},
	}

	SortNotes(notes)

	assert.Equal(t, []string{"new", "tie-1", "tie-2", "old"}, NoteIDs(notes))
}

func TestNoteEvents(t *testing.T) {
	n := Note{ID: "a", Title: "t"}

	assert.Equal(t, NoteEvent{Type: NoteCreated, NoteID: "a", Note: n}, NewNoteCreatedEvent(n))
	assert.Equal(t, NoteEvent{Type: NoteSaved, NoteID: "a", Note: n}, NewNoteSavedEvent(n))
	assert.Equal(t, NoteEvent{Type: NoteDeleted, NoteID: "a"}, NewNoteDeletedEvent("a"))
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "abc")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
}
