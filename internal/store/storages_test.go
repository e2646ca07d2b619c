package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func newSQLiteStorages(t *testing.T) (*LocalStorages, string) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "nested", "notes.db")
	s, err := NewLocalStorages(testContext(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s, dsn
}

// ── notes ─────────────────────────────────────────────────────────────────────

func TestLocalStorages_NotesRoundTrip(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := testContext()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Arrange
	first := models.Note{ID: "a", Title: "First", Body: "Hello", ModifiedAt: base}
	second := models.Note{ID: "b", Title: "Second", Body: "World", ModifiedAt: base.Add(time.Minute)}
	require.NoError(t, s.NoteRepository.Insert(ctx, first))
	require.NoError(t, s.NoteRepository.Insert(ctx, second))

	// Act
	all, err := s.NoteRepository.GetAll(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, models.NoteIDs(all))
	assert.True(t, all[0].ModifiedAt.Equal(second.ModifiedAt))

	// update moves the older note to the top
	first.Title = "First!"
	first.ModifiedAt = base.Add(time.Hour)
	require.NoError(t, s.NoteRepository.Update(ctx, first))

	all, err = s.NoteRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, models.NoteIDs(all))

	got, err := s.NoteRepository.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "First!", got.Title)

	require.NoError(t, s.NoteRepository.Delete(ctx, "b"))
	_, err = s.NoteRepository.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	assert.ErrorIs(t, s.NoteRepository.Delete(ctx, "b"), ErrNoteNotFound)
	assert.ErrorIs(t, s.NoteRepository.Update(ctx, models.Note{ID: "zzz", ModifiedAt: base}), ErrNoteNotFound)
}

func TestLocalStorages_PersistAcrossReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "notes.db")
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: dsn}}
	ctx := testContext()

	s, err := NewLocalStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.NoteRepository.Insert(ctx, models.Note{ID: "a", Title: "t", ModifiedAt: time.Now().UTC()}))
	require.NoError(t, s.SettingsRepository.Set(ctx, "k", "v"))
	require.NoError(t, s.Close())

	reopened, err := NewLocalStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	all, err := reopened.NoteRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, models.NoteIDs(all))

	v, ok, err := reopened.SettingsRepository.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

// ── settings ──────────────────────────────────────────────────────────────────

func TestLocalStorages_SettingsUpsert(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := testContext()

	_, ok, err := s.SettingsRepository.Get(ctx, "first_launch_done")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SettingsRepository.Set(ctx, "first_launch_done", "0"))
	require.NoError(t, s.SettingsRepository.Set(ctx, "first_launch_done", "1"))

	v, ok, err := s.SettingsRepository.Get(ctx, "first_launch_done")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

// ── attachments ───────────────────────────────────────────────────────────────

func TestLocalStorages_AttachmentsCascadeAndOrphans(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := testContext()
	now := time.Now().UTC()

	require.NoError(t, s.NoteRepository.Insert(ctx, models.Note{ID: "a", ModifiedAt: now}))
	require.NoError(t, s.NoteRepository.Insert(ctx, models.Note{ID: "b", ModifiedAt: now}))

	att := func(id, noteID string) models.Attachment {
		return models.Attachment{
			ID: id, NoteID: noteID, Name: id + ".txt", MimeType: "text/plain",
			Checksum: "c", Size: 3, Data: []byte("abc"), CreatedAt: now,
		}
	}
	require.NoError(t, s.AttachmentRepository.Save(ctx, att("x1", "a")))
	require.NoError(t, s.AttachmentRepository.Save(ctx, att("x2", "a")))
	require.NoError(t, s.AttachmentRepository.Save(ctx, att("y1", "b")))
	// left behind by a note that no longer exists
	require.NoError(t, s.AttachmentRepository.Save(ctx, att("z1", "gone")))

	list, err := s.AttachmentRepository.ListByNote(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].Data)

	full, err := s.AttachmentRepository.Get(ctx, "x1")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), full.Data)

	// deleting a note removes its attachments
	require.NoError(t, s.NoteRepository.Delete(ctx, "a"))
	list, err = s.AttachmentRepository.ListByNote(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = s.AttachmentRepository.Get(ctx, "x1")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)

	removed, err := s.AttachmentRepository.DeleteOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	list, err = s.AttachmentRepository.ListByNote(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.AttachmentRepository.Delete(ctx, "y1"))
	assert.ErrorIs(t, s.AttachmentRepository.Delete(ctx, "y1"), ErrAttachmentNotFound)
}

// ── connection helpers ────────────────────────────────────────────────────────

func TestDBFilePath(t *testing.T) {
	assert.Equal(t, "notes.db", dbFilePath("notes.db"))
	assert.Equal(t, "/tmp/notes.db", dbFilePath("file:/tmp/notes.db?_busy_timeout=5000"))
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "notes.db?_foreign_keys=on", withForeignKeys("notes.db"))
	assert.Equal(t, "notes.db?mode=rwc&_foreign_keys=on", withForeignKeys("notes.db?mode=rwc"))
	assert.Equal(t, "notes.db?_fk=1", withForeignKeys("notes.db?_fk=1"))
}

func TestLocalStorages_CloseNil(t *testing.T) {
	var s *LocalStorages
	assert.NoError(t, s.Close())
}
