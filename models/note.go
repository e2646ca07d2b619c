// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
	"time"
)

// Placeholders stored instead of an empty title or body when a note is
// committed from the edit screen.
const (
	NoTitlePlaceholder = "No name"
	NoBodyPlaceholder  = "No description"
)

// Note is a single user-authored note.
//
// ID is generated once at creation and never changes afterwards. ModifiedAt
// is refreshed on every successful update and is the only sort key of the
// note list (most recently modified first).
type Note struct {
	// ID is the opaque unique identifier of the note (UUID string).
	ID string `json:"id"`

	// Title is the note title. May be empty until the note is committed.
	Title string `json:"title"`

	// Body is the note text. May be empty until the note is committed.
	Body string `json:"body"`

	// ModifiedAt is the time of creation or of the last successful update.
	ModifiedAt time.Time `json:"modified_at"`
}

// Is reports whether n has the given id. Notes are compared by id only.
func (n Note) Is(id string) bool {
	return n.ID == id
}

// IsBlank reports whether both title and body are empty.
func (n Note) IsBlank() bool {
	return n.Title == "" && n.Body == ""
}

// Matches reports whether the title or the body contains query,
// ignoring case. An empty query matches every note.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Body), q)
}

// SortNotes orders notes by ModifiedAt, most recent first. The sort is
// stable so notes with equal timestamps keep their relative order.
func SortNotes(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].ModifiedAt.After(notes[j].ModifiedAt)
	})
}

// NoteIDs returns the identifiers of notes in order.
func NoteIDs(notes []Note) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}
