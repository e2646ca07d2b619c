package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/events"
	"github.com/MKhiriev/go-notes-keeper/internal/listsync"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Helpers ──

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	gateway     *mock.MockNoteGateway
	attachments *mock.MockAttachmentService
	notes       *listsync.Synchronizer
	model       appModel
}

func newFixture(t *testing.T, strictness listsync.Strictness) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNoteGateway(ctrl)
	attachments := mock.NewMockAttachmentService(ctrl)

	log := logger.Nop()
	notes := listsync.New(nil, strictness, log)
	bus := events.NewBus(log)
	bus.Subscribe(notes)

	services := &service.LocalServices{NoteGateway: gateway, AttachmentService: attachments}
	m := newAppModel(context.Background(), services, bus, notes, models.NewAppBuildInfo("v1.0.0", "2026-03-01", "abc123"), log)

	return &fixture{gateway: gateway, attachments: attachments, notes: notes, model: m}
}

func note(id, title string, minutes int) models.Note {
	return models.Note{ID: id, Title: title, Body: title + " body", ModifiedAt: base.Add(time.Duration(minutes) * time.Minute)}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m appModel, cmd tea.Cmd) (appModel, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func (f *fixture) loaded(t *testing.T, notes ...models.Note) appModel {
	t.Helper()
	f.gateway.EXPECT().LoadAll(gomock.Any()).Return(notes, nil)
	m, _ := run(t, f.model, f.model.cmdLoadNotes())
	return m
}

// ── Loading ──

func TestAppModel_LoadShowsNotesNewestFirst(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)

	// Act
	m := f.loaded(t, note("a", "old", 1), note("b", "new", 2))

	// Assert
	assert.False(t, m.list.loading)
	assert.Equal(t, []string{"b", "a"}, f.notes.IDs())
	current, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, "b", current.ID)
	assert.Contains(t, m.View(), "new")
}

func TestAppModel_LoadFailureShowsEmptyListAndWarning(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	f.gateway.EXPECT().LoadAll(gomock.Any()).Return(nil, service.ErrStorage)

	// Act
	m, _ := run(t, f.model, f.model.cmdLoadNotes())

	// Assert
	assert.Zero(t, f.notes.Len())
	assert.Contains(t, m.list.warning, app.MsgNotesLoadFailed)
	assert.False(t, m.showError)
	assert.Contains(t, m.View(), app.MsgNoNotes)
}

// ── Creating ──

func TestAppModel_NewNoteInsertsAtTopAndOpensEditor(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := f.loaded(t, note("a", "first", 1))
	created := note("c", "", 5)
	created.Body = ""
	f.gateway.EXPECT().Create(gomock.Any(), "", "").Return(created, nil)
	f.attachments.EXPECT().List(gomock.Any(), "c").Return(nil, nil)

	// Act
	m, cmd := update(t, m, runes("n"))
	m, cmd = run(t, m, cmd)
	m, _ = run(t, m, cmd)

	// Assert
	assert.Equal(t, screenEdit, m.currentScreen)
	assert.Equal(t, "c", m.edit.note.ID)
	assert.Equal(t, []string{"c", "a"}, f.notes.IDs())
	assert.Equal(t, 0, m.list.idx)
}

func TestAppModel_NewNoteFailureUnderReportOpensOverlay(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := f.loaded(t)
	f.gateway.EXPECT().Create(gomock.Any(), "", "").Return(models.Note{}, service.ErrStorage)

	// Act
	m, cmd := update(t, m, runes("n"))
	m, _ = run(t, m, cmd)

	// Assert
	assert.True(t, m.showError)
	assert.Equal(t, screenList, m.currentScreen)
	assert.Zero(t, f.notes.Len())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

// ── Editing ──

func openFirst(t *testing.T, f *fixture, m appModel) appModel {
	t.Helper()
	current, ok := m.list.current()
	require.True(t, ok)
	f.attachments.EXPECT().List(gomock.Any(), current.ID).Return(nil, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = run(t, m, cmd)
	require.Equal(t, screenEdit, m.currentScreen)
	return m
}

func TestAppModel_SaveMovesNoteToTop(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := f.loaded(t, note("a", "first", 1), note("b", "second", 2))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = openFirst(t, f, m)
	require.Equal(t, "a", m.edit.note.ID)

	m.edit.title.SetValue("Groceries")
	m.edit.body.SetValue("milk")
	saved := note("a", "Groceries", 10)
	saved.Body = "milk"
	f.gateway.EXPECT().Update(gomock.Any(), m.edit.note, "Groceries", "milk").Return(saved, nil)

	// Act
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.edit.saving)
	m, _ = run(t, m, cmd)

	// Assert
	assert.False(t, m.edit.saving)
	assert.Equal(t, app.MsgNoteSaved, m.edit.status)
	assert.Equal(t, screenEdit, m.currentScreen)
	assert.Equal(t, []string{"a", "b"}, f.notes.IDs())
	first, _ := f.notes.At(0)
	assert.Equal(t, "Groceries", first.Title)
}

func TestAppModel_SaveFailureUnderReportKeepsEditor(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := openFirst(t, f, f.loaded(t, note("a", "first", 1)))
	m.edit.title.SetValue("changed")
	f.gateway.EXPECT().Update(gomock.Any(), gomock.Any(), "changed", gomock.Any()).
		Return(models.Note{}, errors.Join(service.ErrStorage, errors.New("disk full")))

	// Act
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = run(t, m, cmd)

	// Assert
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "disk full")
	assert.Equal(t, screenEdit, m.currentScreen)
	first, _ := f.notes.At(0)
	assert.Equal(t, "first", first.Title)
}

func TestAppModel_LeavingSavesAndReturnsToList(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := openFirst(t, f, f.loaded(t, note("a", "first", 1)))
	saved := note("a", "first", 3)
	f.gateway.EXPECT().Update(gomock.Any(), gomock.Any(), "first", "first body").Return(saved, nil)

	// Act
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = run(t, m, cmd)

	// Assert
	assert.Equal(t, screenList, m.currentScreen)
	current, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, saved.ModifiedAt, current.ModifiedAt)
}

func TestAppModel_LeavingBlankNoteDeletesIt(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := openFirst(t, f, f.loaded(t, note("a", "first", 1), note("b", "second", 2)))
	m.edit.title.SetValue("  ")
	m.edit.body.SetValue("")
	f.gateway.EXPECT().Delete(gomock.Any(), m.edit.note).Return(nil)

	// Act
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = run(t, m, cmd)

	// Assert
	assert.Equal(t, screenList, m.currentScreen)
	assert.Equal(t, []string{"a"}, f.notes.IDs())
}

// ── Deleting ──

func TestAppModel_DeleteAsksForConfirmation(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := openFirst(t, f, f.loaded(t, note("a", "first", 1), note("b", "second", 2)))

	// Act: decline
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "second")
	m, cmd := update(t, m, runes("n"))

	// Assert
	assert.False(t, m.showConfirm)
	assert.Nil(t, cmd)
	assert.Equal(t, 2, f.notes.Len())

	// Act: accept
	f.gateway.EXPECT().Delete(gomock.Any(), m.edit.note).Return(nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m, cmd = update(t, m, runes("y"))
	m, _ = run(t, m, cmd)

	// Assert
	assert.Equal(t, screenList, m.currentScreen)
	assert.Equal(t, []string{"a"}, f.notes.IDs())
	current, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, "a", current.ID)
}

func TestAppModel_DeleteOfUnlistedNoteUnderStrictWarns(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.Strict)
	m := f.loaded(t, note("a", "first", 1))

	// Act
	m, _ = update(t, m, noteDeletedMsg{id: "ghost"})

	// Assert
	assert.Equal(t, []string{"a"}, f.notes.IDs())
	assert.Contains(t, m.list.warning, app.MsgListOutOfDate)
}

func TestAppModel_DeleteClosesAttachPromptAndClampsCursor(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := f.loaded(t, note("a", "first", 1), note("b", "second", 2), note("c", "third", 3))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = openFirst(t, f, m)
	require.Equal(t, "a", m.edit.note.ID)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	require.True(t, m.edit.attaching)

	// Act
	m, _ = update(t, m, noteDeletedMsg{id: "a"})

	// Assert
	assert.Equal(t, screenList, m.currentScreen)
	assert.False(t, m.edit.attaching)
	assert.False(t, m.edit.attachPath.Focused())
	assert.Equal(t, []string{"c", "b"}, f.notes.IDs())
	current, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, "b", current.ID)
}

func TestAppModel_DeleteIgnoredWhileSaving(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := openFirst(t, f, f.loaded(t, note("a", "first", 1)))
	m, saveCmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, saveCmd)
	require.True(t, m.edit.saving)

	// Act
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	// Assert
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Equal(t, screenEdit, m.currentScreen)
}

// ── Search ──

func TestAppModel_SearchFiltersOnEveryKeystroke(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := f.loaded(t, note("a", "Groceries", 1), note("b", "Work", 2), note("c", "grocery run", 3))

	// Act
	m, _ = update(t, m, runes("/"))
	require.True(t, m.list.searching)
	m, _ = update(t, m, runes("g"))
	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, runes("o"))

	// Assert
	assert.Equal(t, "gro", m.list.query)
	assert.Equal(t, []string{"c", "a"}, models.NoteIDs(m.list.rows()))
	assert.Equal(t, 3, f.notes.Len())

	// Act: keep the filter, then clear it
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.list.searching)
	assert.Len(t, m.list.rows(), 2)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.list.query)
	assert.Len(t, m.list.rows(), 3)
}

// ── Attachments and clipboard ──

func TestAppModel_AttachFileByPath(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := openFirst(t, f, f.loaded(t, note("a", "first", 1)))

	path := filepath.Join(t.TempDir(), "pic.png")
	data := []byte("\x89PNG\r\n\x1a\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	stored := models.Attachment{ID: "att-1", NoteID: "a", Name: "pic.png", MimeType: "image/png", Size: int64(len(data))}
	f.attachments.EXPECT().Attach(gomock.Any(), "a", "pic.png", data).Return(stored, nil)

	// Act
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	require.True(t, m.edit.attaching)
	m.edit.attachPath.SetValue(path)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = run(t, m, cmd)

	// Assert
	assert.False(t, m.edit.attaching)
	assert.Equal(t, []models.Attachment{stored}, m.edit.attachments)
	assert.Contains(t, m.View(), "pic.png")
}

func TestAppModel_AttachMissingFileShowsError(t *testing.T) {
	// Arrange
	f := newFixture(t, listsync.BestEffort)
	m := openFirst(t, f, f.loaded(t, note("a", "first", 1)))

	// Act
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m.edit.attachPath.SetValue(filepath.Join(t.TempDir(), "missing.png"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = run(t, m, cmd)

	// Assert
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "read attachment")
}

func TestAppModel_CopiedStatus(t *testing.T) {
	f := newFixture(t, listsync.BestEffort)
	m := openFirst(t, f, f.loaded(t, note("a", "first", 1)))

	m, _ = update(t, m, copiedMsg{})
	assert.Equal(t, app.MsgCopied, m.edit.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.edit.status)

	m, _ = update(t, m, copiedMsg{err: errors.New("no clipboard")})
	assert.True(t, m.showError)
}

// ── Navigation ──

func TestAppModel_BuildInfoAndQuit(t *testing.T) {
	f := newFixture(t, listsync.BestEffort)
	m := f.loaded(t)

	m, _ = update(t, m, runes("v"))
	assert.Equal(t, screenBuildInfo, m.currentScreen)
	assert.Contains(t, m.View(), "v1.0.0")
	assert.Contains(t, m.View(), "abc123")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.currentScreen)

	_, cmd := update(t, m, runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestAppModel_CursorStaysInBounds(t *testing.T) {
	f := newFixture(t, listsync.BestEffort)
	m := f.loaded(t, note("a", "first", 1), note("b", "second", 2))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.list.idx)

	for range 5 {
		m, _ = update(t, m, runes("j"))
	}
	assert.Equal(t, 1, m.list.idx)
}

func TestNew_RejectsMissingDependencies(t *testing.T) {
	_, err := New(nil, nil, nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingDependency)
}
