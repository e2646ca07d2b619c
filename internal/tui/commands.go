package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	gateway := m.services.NoteGateway
	return func() tea.Msg {
		notes, err := gateway.LoadAll(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m appModel) cmdCreateNote() tea.Cmd {
	ctx := m.ctx
	gateway := m.services.NoteGateway
	return func() tea.Msg {
		note, err := gateway.Create(ctx, "", "")
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m appModel) cmdUpdateNote(note models.Note, title, body string, leave bool) tea.Cmd {
	ctx := m.ctx
	gateway := m.services.NoteGateway
	return func() tea.Msg {
		updated, err := gateway.Update(ctx, note, title, body)
		return noteSavedMsg{note: updated, leave: leave, err: err}
	}
}

func (m appModel) cmdDeleteNote(note models.Note) tea.Cmd {
	ctx := m.ctx
	gateway := m.services.NoteGateway
	return func() tea.Msg {
		err := gateway.Delete(ctx, note)
		return noteDeletedMsg{id: note.ID, err: err}
	}
}

func (m appModel) cmdListAttachments(noteID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AttachmentService
	return func() tea.Msg {
		items, err := svc.List(ctx, noteID)
		return attachmentsLoadedMsg{noteID: noteID, items: items, err: err}
	}
}

func (m appModel) cmdAttachFile(noteID, path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AttachmentService
	return func() tea.Msg {
		path = expandHome(strings.TrimSpace(path))
		data, err := os.ReadFile(path)
		if err != nil {
			return attachedMsg{err: fmt.Errorf("read attachment: %w", err)}
		}
		attachment, err := svc.Attach(ctx, noteID, filepath.Base(path), data)
		return attachedMsg{attachment: attachment, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
