package models

// NoteEventType identifies what happened to a note.
type NoteEventType string

const (
	NoteCreated NoteEventType = "CREATED"
	NoteSaved   NoteEventType = "SAVED"
	NoteDeleted NoteEventType = "DELETED"
)

// NoteEvent is emitted by the edit flow after a note mutation was handed to
// the persistence gateway. Note is set for NoteCreated and NoteSaved; for
// NoteDeleted only NoteID is meaningful.
type NoteEvent struct {
	Type   NoteEventType
	NoteID string
	Note   Note
}

// NewNoteCreatedEvent builds a NoteCreated event for n.
func NewNoteCreatedEvent(n Note) NoteEvent {
	return NoteEvent{Type: NoteCreated, NoteID: n.ID, Note: n}
}

// NewNoteSavedEvent builds a NoteSaved event for n.
func NewNoteSavedEvent(n Note) NoteEvent {
	return NoteEvent{Type: NoteSaved, NoteID: n.ID, Note: n}
}

// NewNoteDeletedEvent builds a NoteDeleted event for the note with id.
func NewNoteDeletedEvent(id string) NoteEvent {
	return NoteEvent{Type: NoteDeleted, NoteID: id}
}
