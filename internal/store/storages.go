package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// LocalStorages groups all repositories over the single SQLite session into
// one value that can be passed around the service layer.
type LocalStorages struct {
	NoteRepository       NoteRepository
	SettingsRepository   SettingsRepository
	AttachmentRepository AttachmentRepository

	db *DB
}

// NewLocalStorages initialises the storage layer. It performs the following
// steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires every repository to the same connection.
//
// The caller owns the result and must call [LocalStorages.Close] at exit.
func NewLocalStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*LocalStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newLocalStorages(db, logger), nil
}

func newLocalStorages(db *DB, logger *logger.Logger) *LocalStorages {
	return &LocalStorages{
		NoteRepository:       NewNoteRepository(db, logger),
		SettingsRepository:   NewSettingsRepository(db, logger),
		AttachmentRepository: NewAttachmentRepository(db, logger),
		db:                   db,
	}
}

// Close closes the underlying database session.
func (s *LocalStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
