package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the command-line configuration flags from args
// (normally os.Args[1:]).
//
// Flags:
//
//	-d database file path
//	-max-attachment largest accepted attachment in bytes
//	-commit-policy report|best_effort
//	-delete-strictness strict|best_effort
//	-log log file path
//	-cleanup-interval orphaned attachment sweep interval (e.g. "10m")
//	-c/-config JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var maxAttachmentSize int64
	var commitPolicy string
	var deleteStrictness string
	var logFile string
	var cleanupInterval time.Duration
	var configPath string

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database file path")
	fs.Int64Var(&maxAttachmentSize, "max-attachment", 0, "Largest accepted attachment in bytes")
	fs.StringVar(&commitPolicy, "commit-policy", "", "Commit failure policy: report or best_effort")
	fs.StringVar(&deleteStrictness, "delete-strictness", "", "Unknown delete handling: strict or best_effort")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Orphaned attachment sweep interval (e.g., 10m)")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			CommitPolicy:     commitPolicy,
			DeleteStrictness: deleteStrictness,
			LogFile:          logFile,
		},
		Storage: Storage{
			DB:          DB{DSN: databaseDSN},
			Attachments: Attachments{MaxSize: maxAttachmentSize},
		},
		Workers:        Workers{CleanupInterval: cleanupInterval},
		ConfigFilePath: configPath,
	}, nil
}
