package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the value stored under key. The boolean is false when the key
// has never been set.
func (s *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingQuery(key)
	if err != nil {
		return "", false, err
	}

	var value string
	scanErr := s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return "", false, nil
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "settingsRepository.Get").Str("key", key).Msg("failed to read setting")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return value, true, nil
}

// Set inserts or replaces the value stored under key.
func (s *settingsRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetSettingQuery(key, value)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "settingsRepository.Set").Str("key", key).Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
