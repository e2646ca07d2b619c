package utils

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Checksum computes the BLAKE2b-256 digest of data and returns it as a
// hex-encoded string.
//
// Parameters:
//
//	data - arbitrary byte slice to be hashed
//
// Returns:
//
//	string - 64 hex characters
//
// Example usage:
//
//	sum := utils.Checksum(fileBytes)
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// VerifyChecksum reports whether data hashes to the hex-encoded checksum.
// The comparison is done in constant time.
//
// Example usage:
//
//	if !utils.VerifyChecksum(att.Data, att.Checksum) {
//	    // stored blob is corrupted
//	}
func VerifyChecksum(data []byte, checksum string) bool {
	want, err := hex.DecodeString(checksum)
	if err != nil || len(want) != blake2b.Size256 {
		return false
	}
	sum := blake2b.Sum256(data)
	return subtle.ConstantTimeCompare(sum[:], want) == 1
}
