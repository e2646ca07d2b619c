// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	notesTable       = "notes"
	settingsTable    = "settings"
	attachmentsTable = "attachments"
)

var (
	noteColumns       = []string{"id", "title", "body", "modified_at"}
	attachmentColumns = []string{"id", "note_id", "name", "mime_type", "checksum", "size", "data", "created_at"}
	// listing attachments skips the blob
	attachmentMetaColumns = []string{"id", "note_id", "name", "mime_type", "checksum", "size", "created_at"}
)

// psql is the statement builder for SQLite ("?" placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── notes ─────────────────────────────────────────────────────────────────────

func buildGetAllNotesQuery() (string, []any, error) {
	return toSQL(psql.Select(noteColumns...).
		From(notesTable).
		OrderBy("modified_at DESC", "id DESC"))
}

func buildGetNoteQuery(id string) (string, []any, error) {
	return toSQL(psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}))
}

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return toSQL(psql.Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.Title, note.Body, note.ModifiedAt))
}

func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	return toSQL(psql.Update(notesTable).
		Set("title", note.Title).
		Set("body", note.Body).
		Set("modified_at", note.ModifiedAt).
		Where(sq.Eq{"id": note.ID}))
}

func buildDeleteNoteQuery(id string) (string, []any, error) {
	return toSQL(psql.Delete(notesTable).Where(sq.Eq{"id": id}))
}

// ── settings ──────────────────────────────────────────────────────────────────

func buildGetSettingQuery(key string) (string, []any, error) {
	return toSQL(psql.Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}))
}

func buildSetSettingQuery(key, value string) (string, []any, error) {
	return toSQL(psql.Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value"))
}

// ── attachments ───────────────────────────────────────────────────────────────

func buildInsertAttachmentQuery(a models.Attachment) (string, []any, error) {
	return toSQL(psql.Insert(attachmentsTable).
		Columns(attachmentColumns...).
		Values(a.ID, a.NoteID, a.Name, a.MimeType, a.Checksum, a.Size, a.Data, a.CreatedAt))
}

func buildListAttachmentsQuery(noteID string) (string, []any, error) {
	return toSQL(psql.Select(attachmentMetaColumns...).
		From(attachmentsTable).
		Where(sq.Eq{"note_id": noteID}).
		OrderBy("created_at", "id"))
}

func buildGetAttachmentQuery(id string) (string, []any, error) {
	return toSQL(psql.Select(attachmentColumns...).
		From(attachmentsTable).
		Where(sq.Eq{"id": id}))
}

func buildDeleteAttachmentQuery(id string) (string, []any, error) {
	return toSQL(psql.Delete(attachmentsTable).Where(sq.Eq{"id": id}))
}

func buildDeleteNoteAttachmentsQuery(noteID string) (string, []any, error) {
	return toSQL(psql.Delete(attachmentsTable).Where(sq.Eq{"note_id": noteID}))
}

func buildDeleteOrphanAttachmentsQuery() (string, []any, error) {
	return toSQL(psql.Delete(attachmentsTable).
		Where(sq.Expr("note_id NOT IN (SELECT id FROM " + notesTable + ")")))
}
