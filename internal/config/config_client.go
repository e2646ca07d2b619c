package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level behaviour switches.
type ClientApp struct {
	// CommitPolicy is one of [CommitPolicyReport] or [CommitPolicyBestEffort].
	CommitPolicy string
	// DeleteStrictness is one of [DeleteStrict] or [DeleteBestEffort].
	DeleteStrictness string
	// LogFile is the path of the JSON log file.
	LogFile string
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientAttachments contains limits of the attachment channel.
type ClientAttachments struct {
	// MaxSize is the largest accepted attachment in bytes.
	MaxSize int64
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Attachments holds attachment limits.
	Attachments ClientAttachments
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// CleanupInterval defines how often orphaned attachments are swept.
	CleanupInterval time.Duration
}

// ClientConfig is the configuration consumed by the notes application,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// App contains behaviour switches.
	App ClientApp
	// Storage contains storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the application config from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the application.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			CommitPolicy:     cfg.App.CommitPolicy,
			DeleteStrictness: cfg.App.DeleteStrictness,
			LogFile:          cfg.App.LogFile,
		},
		Storage: ClientStorage{
			DB:          ClientDB{DSN: cfg.Storage.DB.DSN},
			Attachments: ClientAttachments{MaxSize: cfg.Storage.Attachments.MaxSize},
		},
		Workers: ClientWorkers{CleanupInterval: cfg.Workers.CleanupInterval},
	}
}
