package service

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

var (
	// ErrStorage wraps every failure of the backing store surfaced by the
	// service layer.
	ErrStorage = errors.New("storage error")

	ErrAttachmentTooLarge = validators.ErrAttachmentTooLarge
	ErrEmptyAttachment    = validators.ErrEmptyData
	ErrNoNoteID           = validators.ErrInvalidNoteID
)
