// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-notes-keeper application. It is populated by merging values from an
// optional config file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level behaviour switches and the log file.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local notes database and of the
	// attachment channel.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c / -config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// CommitPolicy decides what happens when a create/update/delete cannot
	// be committed: "report" returns the error to the UI, "best_effort"
	// logs it and carries on.
	// Env: APP_COMMIT_POLICY
	CommitPolicy string `env:"COMMIT_POLICY"`

	// DeleteStrictness decides how the note list reacts to a delete event
	// for an identifier it does not hold: "strict" fails, "best_effort"
	// logs and ignores it.
	// Env: APP_DELETE_STRICTNESS
	DeleteStrictness string `env:"DELETE_STRICTNESS"`

	// LogFile is the path of the JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Attachments holds limits of the attachment channel.
	Attachments Attachments `envPrefix:"ATTACHMENTS_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "notes.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Attachments holds limits for note attachments.
type Attachments struct {
	// MaxSize is the largest accepted attachment in bytes.
	// Env: STORAGE_ATTACHMENTS_MAX_SIZE
	MaxSize int64 `env:"MAX_SIZE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CleanupInterval is how often orphaned attachments are swept.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Priority, lowest first:
//  1. Config file (path resolved from env and flags)
//  2. Environment variables
//  3. Command-line flags
//
// Fields left empty by every source are filled from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
