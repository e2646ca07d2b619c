package config

import "time"

// Allowed values of App.CommitPolicy.
const (
	CommitPolicyReport     = "report"
	CommitPolicyBestEffort = "best_effort"
)

// Allowed values of App.DeleteStrictness.
const (
	DeleteStrict     = "strict"
	DeleteBestEffort = "best_effort"
)

const (
	defaultDSN               = "notes.db"
	defaultMaxAttachmentSize = 10 << 20
	defaultCleanupInterval   = 10 * time.Minute
	defaultCommitPolicy      = CommitPolicyReport
	defaultDeleteStrictness  = DeleteBestEffort
)

// Defaults returns the configuration used for fields no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CommitPolicy:     defaultCommitPolicy,
			DeleteStrictness: defaultDeleteStrictness,
		},
		Storage: Storage{
			DB:          DB{DSN: defaultDSN},
			Attachments: Attachments{MaxSize: defaultMaxAttachmentSize},
		},
		Workers: Workers{CleanupInterval: defaultCleanupInterval},
	}
}
