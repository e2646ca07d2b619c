package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type attachmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewAttachmentRepository constructs an [AttachmentRepository] backed by db.
func NewAttachmentRepository(db *DB, logger *logger.Logger) AttachmentRepository {
	return &attachmentRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *attachmentRepository) Save(ctx context.Context, attachment models.Attachment) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAttachmentQuery(attachment)
	if err != nil {
		return err
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.Save").
			Str("note_id", attachment.NoteID).
			Str("attachment_id", attachment.ID).
			Msg("failed to insert attachment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListByNote returns the attachments of a note without their data, oldest
// first.
func (a *attachmentRepository) ListByNote(ctx context.Context, noteID string) ([]models.Attachment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAttachmentsQuery(noteID)
	if err != nil {
		return nil, err
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "attachmentRepository.ListByNote").Str("note_id", noteID).Msg("failed to list attachments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var result []models.Attachment
	for rows.Next() {
		var item models.Attachment
		scanErr := rows.Scan(
			&item.ID,
			&item.NoteID,
			&item.Name,
			&item.MimeType,
			&item.Checksum,
			&item.Size,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "attachmentRepository.ListByNote").Str("note_id", noteID).Msg("failed to scan attachment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		result = append(result, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return result, nil
}

func (a *attachmentRepository) Get(ctx context.Context, id string) (models.Attachment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAttachmentQuery(id)
	if err != nil {
		return models.Attachment{}, err
	}

	var item models.Attachment
	scanErr := a.DB.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.NoteID,
		&item.Name,
		&item.MimeType,
		&item.Checksum,
		&item.Size,
		&item.Data,
		&item.CreatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Attachment{}, ErrAttachmentNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "attachmentRepository.Get").Str("attachment_id", id).Msg("failed to scan attachment row")
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return item, nil
}

func (a *attachmentRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAttachmentQuery(id)
	if err != nil {
		return err
	}

	res, err := a.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "attachmentRepository.Delete").Str("attachment_id", id).Msg("failed to delete attachment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrAttachmentNotFound)
}

func (a *attachmentRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOrphanAttachmentsQuery()
	if err != nil {
		return 0, err
	}

	res, err := a.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "attachmentRepository.DeleteOrphans").Msg("failed to delete orphaned attachments")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
