// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes id generation and content checksums for attachments.
package utils
