package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteGateway is the single entry point the screens use to load, create,
// update and delete notes. Every mutation is committed before it returns.
type NoteGateway interface {
	// LoadAll returns all persisted notes, most recently modified first.
	// A failure is wrapped in ErrStorage; callers show an empty list and a
	// warning.
	LoadAll(ctx context.Context) ([]models.Note, error)

	// Create persists a new note with a fresh id and the current time. The
	// note is returned even when the commit failed under the best-effort
	// policy.
	Create(ctx context.Context, title, body string) (models.Note, error)

	// Update replaces title and body of note, substituting the "No name" /
	// "No description" placeholders for empty values, refreshes ModifiedAt
	// and commits. The id is kept.
	Update(ctx context.Context, note models.Note, title, body string) (models.Note, error)

	// Delete removes note together with its attachments.
	Delete(ctx context.Context, note models.Note) error
}

// AttachmentService manages binary files attached to notes.
type AttachmentService interface {
	// Attach stores data under name for the note. The checksum and MIME type
	// are computed from data.
	Attach(ctx context.Context, noteID, name string, data []byte) (models.Attachment, error)
	// List returns the attachments of a note without their data.
	List(ctx context.Context, noteID string) ([]models.Attachment, error)
	// Remove deletes one attachment.
	Remove(ctx context.Context, id string) error
}

// OnboardingService performs first-launch setup.
type OnboardingService interface {
	// SeedWelcomeNote creates the welcome note on the very first launch. The
	// boolean reports whether a note was created.
	SeedWelcomeNote(ctx context.Context) (models.Note, bool, error)
}

// AttachmentCleanupJob periodically removes attachments whose note no longer
// exists.
type AttachmentCleanupJob interface {
	// Start launches the background sweep every interval. A running job is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the sweep and waits for it to exit.
	Stop()
}

// IDGenerator produces unique note and attachment identifiers.
type IDGenerator interface {
	Generate() string
}

// Clock returns the current time.
type Clock func() time.Time
