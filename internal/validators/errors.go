package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID      = errors.New("no note ID was given")
	ErrEmptyName          = errors.New("attachment name is required")
	ErrEmptyData          = errors.New("attachment is empty")
	ErrAttachmentTooLarge = errors.New("attachment is too large")
	ErrInvalidChecksum    = errors.New("attachment checksum does not match its data")
)
