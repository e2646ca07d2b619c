package service

import "github.com/MKhiriev/go-notes-keeper/internal/config"

// CommitPolicy decides what the gateway does when a mutation cannot be
// committed.
type CommitPolicy string

const (
	// CommitReport returns the failure to the caller wrapped in ErrStorage.
	CommitReport CommitPolicy = config.CommitPolicyReport
	// CommitBestEffort logs the failure and reports success.
	CommitBestEffort CommitPolicy = config.CommitPolicyBestEffort
)

func (p CommitPolicy) reports() bool {
	return p == CommitReport
}
