// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package listsync keeps the in-memory note list shown on the list screen
// consistent with the persisted notes.
//
// A Synchronizer is not safe for concurrent use; all calls are expected to
// happen on the UI update goroutine.
package listsync

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Display is the visual list the synchronizer drives. Indexes refer to the
// synchronizer snapshot after the change.
type Display interface {
	InsertAt(index int)
	RemoveAt(index int)
	Reload()
}

// Strictness decides how OnNoteDeleted treats an id that is not in the list.
type Strictness string

const (
	// Strict fails with ErrNoteNotInList.
	Strict Strictness = "strict"
	// BestEffort logs and ignores the event.
	BestEffort Strictness = "best_effort"
)

// Synchronizer holds the ordered snapshot of notes displayed by the list
// screen.
type Synchronizer struct {
	notes      []models.Note
	display    Display
	strictness Strictness
	logger     *logger.Logger
}

// New returns an empty Synchronizer. A nil display is allowed.
func New(display Display, strictness Strictness, logger *logger.Logger) *Synchronizer {
	if display == nil {
		display = nopDisplay{}
	}
	return &Synchronizer{
		display:    display,
		strictness: strictness,
		logger:     logger,
	}
}

// SetDisplay replaces the display surface.
func (s *Synchronizer) SetDisplay(display Display) {
	if display == nil {
		display = nopDisplay{}
	}
	s.display = display
}

// Load replaces the snapshot with notes, sorted most recent first.
func (s *Synchronizer) Load(notes []models.Note) {
	s.notes = make([]models.Note, len(notes))
	copy(s.notes, notes)
	models.SortNotes(s.notes)

	s.display.Reload()
}

// Insert puts a freshly created note at the top of the list.
func (s *Synchronizer) Insert(note models.Note) {
	s.notes = append([]models.Note{note}, s.notes...)
	s.display.InsertAt(0)
}

// OnNoteUpdated replaces the entry with the same id, restores the sort order
// and reloads the display.
func (s *Synchronizer) OnNoteUpdated(note models.Note) {
	if i := s.indexOf(note.ID); i >= 0 {
		s.notes[i] = note
	} else {
		s.logger.Debug().Str("func", "Synchronizer.OnNoteUpdated").Str("note_id", note.ID).Msg("updated note is not in the list")
	}

	models.SortNotes(s.notes)
	s.display.Reload()
}

// OnNoteDeleted removes the first entry with id. An unknown id never removes
// another entry; strictness decides whether it is an error.
func (s *Synchronizer) OnNoteDeleted(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		if s.strictness == Strict {
			return fmt.Errorf("%w: %s", ErrNoteNotInList, id)
		}
		s.logger.Warn().Str("func", "Synchronizer.OnNoteDeleted").Str("note_id", id).Msg("deleted note is not in the list, ignoring")
		return nil
	}

	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	s.display.RemoveAt(i)
	return nil
}

// HandleNoteEvent applies a bus event to the list.
func (s *Synchronizer) HandleNoteEvent(_ context.Context, event models.NoteEvent) error {
	switch event.Type {
	case models.NoteCreated:
		s.Insert(event.Note)
	case models.NoteSaved:
		s.OnNoteUpdated(event.Note)
	case models.NoteDeleted:
		return s.OnNoteDeleted(event.NoteID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event.Type)
	}
	return nil
}

// Notes returns a copy of the snapshot.
func (s *Synchronizer) Notes() []models.Note {
	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *Synchronizer) Len() int {
	return len(s.notes)
}

// At returns the note at index i and false when i is out of range.
func (s *Synchronizer) At(i int) (models.Note, bool) {
	if i < 0 || i >= len(s.notes) {
		return models.Note{}, false
	}
	return s.notes[i], true
}

// IDs returns the note ids in display order.
func (s *Synchronizer) IDs() []string {
	return models.NoteIDs(s.notes)
}

// Filter returns the notes whose title or body contains query, ignoring
// case, in display order. The snapshot is not modified.
func (s *Synchronizer) Filter(query string) []models.Note {
	out := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}

func (s *Synchronizer) indexOf(id string) int {
	for i, n := range s.notes {
		if n.Is(id) {
			return i
		}
	}
	return -1
}

type nopDisplay struct{}

func (nopDisplay) InsertAt(int) {}
func (nopDisplay) RemoveAt(int) {}
func (nopDisplay) Reload()      {}
