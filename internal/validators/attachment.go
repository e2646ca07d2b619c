// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldNoteID targets the identifier of the owning note.
	FieldNoteID = "note_id"

	// FieldName targets the file name of the attachment.
	FieldName = "name"

	// FieldData targets the raw content, which must not be empty.
	FieldData = "data"

	// FieldSize targets the size limit of the attachment.
	FieldSize = "size"

	// FieldChecksum targets the integrity checksum, which must match Data.
	FieldChecksum = "checksum"
)

// AttachmentValidator implements Validator for models.Attachment.
type AttachmentValidator struct {
	maxSize int64
}

// NewAttachmentValidator returns a Validator rejecting attachments larger
// than maxSize bytes. A non-positive maxSize disables the limit.
func NewAttachmentValidator(maxSize int64) Validator {
	return &AttachmentValidator{maxSize: maxSize}
}

// Validate accepts models.Attachment and *models.Attachment. Without fields
// the note id, name, data and size are checked.
func (v *AttachmentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Attachment:
		return v.validateAttachment(ctx, value, fields...)
	case *models.Attachment:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAttachment(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AttachmentValidator) validateAttachment(_ context.Context, a models.Attachment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldName, FieldData, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if a.NoteID == "" {
				return ErrInvalidNoteID
			}
		case FieldName:
			if a.Name == "" || a.Name == "." || a.Name == "/" {
				return ErrEmptyName
			}
		case FieldData:
			if len(a.Data) == 0 {
				return ErrEmptyData
			}
		case FieldSize:
			if v.maxSize > 0 && int64(len(a.Data)) > v.maxSize {
				return fmt.Errorf("%w: %d bytes, limit is %d", ErrAttachmentTooLarge, len(a.Data), v.maxSize)
			}
		case FieldChecksum:
			if !utils.VerifyChecksum(a.Data, a.Checksum) {
				return ErrInvalidChecksum
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
