package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQLite-backed implementation of [NoteRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// the note id they touch.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll returns every stored note, most recently modified first.
func (n *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllNotesQuery()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetAll").Msg("failed to create query")
		return nil, err
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetAll").Msg("failed to execute query for getting all notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note
		if scanErr := rows.Scan(&note.ID, &note.Title, &note.Body, &note.ModifiedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.GetAll").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// Get returns the note with the given id or [ErrNoteNotFound].
func (n *noteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Get").Str("note_id", id).Msg("failed to create query")
		return models.Note{}, err
	}

	var note models.Note
	scanErr := n.DB.QueryRowContext(ctx, query, args...).Scan(&note.ID, &note.Title, &note.Body, &note.ModifiedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "noteRepository.Get").Str("note_id", id).Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return note, nil
}

// Insert stores a new note and commits.
func (n *noteRepository) Insert(ctx context.Context, note models.Note) error {
	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		return err
	}

	return n.inTx(ctx, "noteRepository.Insert", note.ID, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// Update overwrites title, body and modification time of a stored note and
// commits. A missing note yields [ErrNoteNotFound].
func (n *noteRepository) Update(ctx context.Context, note models.Note) error {
	query, args, err := buildUpdateNoteQuery(note)
	if err != nil {
		return err
	}

	return n.inTx(ctx, "noteRepository.Update", note.ID, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return expectAffected(res, ErrNoteNotFound)
	})
}

// Delete removes the note and its attachments in one transaction. A missing
// note yields [ErrNoteNotFound] and nothing is removed.
func (n *noteRepository) Delete(ctx context.Context, id string) error {
	attachmentsQuery, attachmentsArgs, err := buildDeleteNoteAttachmentsQuery(id)
	if err != nil {
		return err
	}
	noteQuery, noteArgs, err := buildDeleteNoteQuery(id)
	if err != nil {
		return err
	}

	return n.inTx(ctx, "noteRepository.Delete", id, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, attachmentsQuery, attachmentsArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		res, err := tx.ExecContext(ctx, noteQuery, noteArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return expectAffected(res, ErrNoteNotFound)
	})
}

// inTx runs fn inside a transaction that is committed when fn succeeds and
// rolled back otherwise.
func (n *noteRepository) inTx(ctx context.Context, funcName, noteID string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("note_id", noteID).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			log.Warn().Str("func", funcName).Str("note_id", noteID).Msg("note not found")
		} else {
			log.Err(err).Str("func", funcName).Str("note_id", noteID).Msg("failed to execute statement")
		}
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", funcName).Str("note_id", noteID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", funcName).Str("note_id", noteID).Msg("committed")
	return nil
}

func expectAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
