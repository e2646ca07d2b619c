package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
)

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

// noteSavedMsg is the result of a commit from the edit screen. leave is set
// when the commit was triggered by leaving the screen.
type noteSavedMsg struct {
	note  models.Note
	leave bool
	err   error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type attachmentsLoadedMsg struct {
	noteID string
	items  []models.Attachment
	err    error
}

type attachedMsg struct {
	attachment models.Attachment
	err        error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
