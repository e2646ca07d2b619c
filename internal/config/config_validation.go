// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] only carries known
// policy values. Empty values are accepted here because defaults may still
// be applied by the caller.
func (cfg *StructuredConfig) validate() error {
	if !oneOf(cfg.App.CommitPolicy, "", CommitPolicyReport, CommitPolicyBestEffort) {
		return fmt.Errorf("%w: unknown commit policy %q", ErrInvalidAppConfigs, cfg.App.CommitPolicy)
	}

	if !oneOf(cfg.App.DeleteStrictness, "", DeleteStrict, DeleteBestEffort) {
		return fmt.Errorf("%w: unknown delete strictness %q", ErrInvalidAppConfigs, cfg.App.DeleteStrictness)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || isInMemoryDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Attachments.MaxSize <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if !oneOf(cfg.App.CommitPolicy, CommitPolicyReport, CommitPolicyBestEffort) ||
		!oneOf(cfg.App.DeleteStrictness, DeleteStrict, DeleteBestEffort) {
		return ErrInvalidAppConfigs
	}

	return nil
}

// isInMemoryDSN reports whether dsn names an SQLite database that is lost
// when the connection closes: ":memory:", "file::memory:" or mode=memory.
func isInMemoryDSN(dsn string) bool {
	path, rawQuery, _ := strings.Cut(dsn, "?")
	path = strings.TrimPrefix(path, "file:")
	if path == ":memory:" {
		return true
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	return query.Get("mode") == "memory"
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
