package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type noteGateway struct {
	notes  store.NoteRepository
	policy CommitPolicy

	now    Clock
	ids    IDGenerator
	logger *logger.Logger
}

// GatewayOption customises a gateway built by NewNoteGateway.
type GatewayOption func(*noteGateway)

// WithClock replaces the wall clock used for ModifiedAt.
func WithClock(clock Clock) GatewayOption {
	return func(g *noteGateway) { g.now = clock }
}

// WithIDGenerator replaces the UUID v7 generator.
func WithIDGenerator(ids IDGenerator) GatewayOption {
	return func(g *noteGateway) { g.ids = ids }
}

// NewNoteGateway builds a NoteGateway over notes. An unknown policy behaves
// like CommitBestEffort.
func NewNoteGateway(notes store.NoteRepository, policy CommitPolicy, logger *logger.Logger, opts ...GatewayOption) NoteGateway {
	g := &noteGateway{
		notes:  notes,
		policy: policy,
		now:    func() time.Time { return time.Now().UTC() },
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *noteGateway) LoadAll(ctx context.Context) ([]models.Note, error) {
	notes, err := g.notes.GetAll(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "noteGateway.LoadAll").Msg("failed to load notes")
		return nil, fmt.Errorf("%w: load notes: %w", ErrStorage, err)
	}

	models.SortNotes(notes)
	return notes, nil
}

func (g *noteGateway) Create(ctx context.Context, title, body string) (models.Note, error) {
	note := models.Note{
		ID:         g.ids.Generate(),
		Title:      title,
		Body:       body,
		ModifiedAt: g.now(),
	}

	if err := g.notes.Insert(ctx, note); err != nil {
		return note, g.commitFailed("create", note.ID, err)
	}

	g.logger.Debug().Str("func", "noteGateway.Create").Str("note_id", note.ID).Msg("note created")
	return note, nil
}

func (g *noteGateway) Update(ctx context.Context, note models.Note, title, body string) (models.Note, error) {
	if title == "" {
		title = models.NoTitlePlaceholder
	}
	if body == "" {
		body = models.NoBodyPlaceholder
	}

	updated := note
	updated.Title = title
	updated.Body = body
	updated.ModifiedAt = g.nextModifiedAt(note.ModifiedAt)

	if err := g.notes.Update(ctx, updated); err != nil {
		return updated, g.commitFailed("update", note.ID, err)
	}

	g.logger.Debug().Str("func", "noteGateway.Update").Str("note_id", note.ID).Msg("note updated")
	return updated, nil
}

func (g *noteGateway) Delete(ctx context.Context, note models.Note) error {
	if err := g.notes.Delete(ctx, note.ID); err != nil {
		return g.commitFailed("delete", note.ID, err)
	}

	g.logger.Debug().Str("func", "noteGateway.Delete").Str("note_id", note.ID).Msg("note deleted")
	return nil
}

// nextModifiedAt returns the current time, bumped past prev when the clock
// has not advanced since the previous commit.
func (g *noteGateway) nextModifiedAt(prev time.Time) time.Time {
	now := g.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func (g *noteGateway) commitFailed(op, noteID string, err error) error {
	if g.policy.reports() {
		g.logger.Err(err).Str("func", "noteGateway."+op).Str("note_id", noteID).Msg("commit failed")
		return fmt.Errorf("%w: %s note: %w", ErrStorage, op, err)
	}

	g.logger.Warn().Err(err).Str("func", "noteGateway."+op).Str("note_id", noteID).Msg("commit failed, continuing")
	return nil
}
