package service

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type attachmentService struct {
	attachments store.AttachmentRepository
	notes       store.NoteRepository
	validator   validators.Validator

	now    Clock
	ids    IDGenerator
	logger *logger.Logger
}

// NewAttachmentService builds an AttachmentService that rejects files larger
// than maxSize bytes.
func NewAttachmentService(attachments store.AttachmentRepository, notes store.NoteRepository, maxSize int64, logger *logger.Logger) AttachmentService {
	return &attachmentService{
		attachments: attachments,
		notes:       notes,
		validator:   validators.NewAttachmentValidator(maxSize),
		now:         func() time.Time { return time.Now().UTC() },
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (s *attachmentService) Attach(ctx context.Context, noteID, name string, data []byte) (models.Attachment, error) {
	attachment := models.Attachment{
		NoteID: noteID,
		Name:   filepath.Base(name),
		Data:   data,
		Size:   int64(len(data)),
	}
	if err := s.validator.Validate(ctx, attachment); err != nil {
		return models.Attachment{}, err
	}

	// the note must exist, otherwise the blob would be orphaned right away
	if _, err := s.notes.Get(ctx, noteID); err != nil {
		return models.Attachment{}, fmt.Errorf("%w: attach to note %s: %w", ErrStorage, noteID, err)
	}

	attachment.ID = s.ids.Generate()
	attachment.MimeType = detectMimeType(attachment.Name, data)
	attachment.Checksum = utils.Checksum(data)
	attachment.CreatedAt = s.now()

	if err := s.attachments.Save(ctx, attachment); err != nil {
		return models.Attachment{}, fmt.Errorf("%w: save attachment: %w", ErrStorage, err)
	}

	s.logger.Info().
		Str("func", "attachmentService.Attach").
		Str("note_id", noteID).
		Str("attachment_id", attachment.ID).
		Int64("size", attachment.Size).
		Msg("attachment saved")

	return attachment, nil
}

func (s *attachmentService) List(ctx context.Context, noteID string) ([]models.Attachment, error) {
	list, err := s.attachments.ListByNote(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("%w: list attachments: %w", ErrStorage, err)
	}
	return list, nil
}

func (s *attachmentService) Remove(ctx context.Context, id string) error {
	if err := s.attachments.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: remove attachment: %w", ErrStorage, err)
	}
	return nil
}

// detectMimeType prefers the type registered for the file extension and
// falls back to sniffing the content.
func detectMimeType(name string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return http.DetectContentType(data)
}
