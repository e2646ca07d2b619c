// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Attachment is a binary blob (typically an image) attached to a note.
//
// Attachments are stored outside the notes table and keyed by the owning
// note ID; they are removed together with the note.
type Attachment struct {
	// ID is the unique identifier of the attachment.
	ID string

	// NoteID is the identifier of the owning note.
	NoteID string

	// Name is the original file name.
	Name string

	// MimeType is the detected content type (e.g. "image/png").
	MimeType string

	// Checksum is the hex-encoded BLAKE2b-256 digest of Data.
	Checksum string

	// Size is len(Data) in bytes.
	Size int64

	// Data is the raw attachment content. It is left empty by listing
	// queries that only need metadata.
	Data []byte

	// CreatedAt is the time the attachment was stored.
	CreatedAt time.Time
}
