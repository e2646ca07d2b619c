package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists notes. Every mutating call is committed in its own
// transaction before it returns.
type NoteRepository interface {
	GetAll(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id string) (models.Note, error)
	Insert(ctx context.Context, note models.Note) error
	Update(ctx context.Context, note models.Note) error
	// Delete removes the note and every attachment that belongs to it.
	Delete(ctx context.Context, id string) error
}

// SettingsRepository is a small key/value area for application flags.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// AttachmentRepository persists binary attachments of notes.
type AttachmentRepository interface {
	Save(ctx context.Context, attachment models.Attachment) error
	ListByNote(ctx context.Context, noteID string) ([]models.Attachment, error)
	Get(ctx context.Context, id string) (models.Attachment, error)
	Delete(ctx context.Context, id string) error
	// DeleteOrphans removes attachments whose note no longer exists and
	// reports how many rows were removed.
	DeleteOrphans(ctx context.Context) (int64, error)
}
