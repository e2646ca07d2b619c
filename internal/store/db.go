package store

import (
	"database/sql"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

// DB is the single long-lived SQLite session shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
