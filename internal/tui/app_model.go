package tui

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/events"
	"github.com/MKhiriev/go-notes-keeper/internal/listsync"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenEdit
	screenBuildInfo
)

type appModel struct {
	ctx       context.Context
	services  *service.LocalServices
	bus       *events.Bus
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	list          *listView
	edit          editModel
	width         int

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, services *service.LocalServices, bus *events.Bus, notes *listsync.Synchronizer, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	list := newListView(notes)
	notes.SetDisplay(list)

	return appModel{
		ctx:           ctx,
		services:      services,
		bus:           bus,
		buildInfo:     buildInfo,
		logger:        logger,
		currentScreen: screenList,
		list:          list,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDeleteNote(m.edit.note)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
	case notesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.list.warning = app.MsgNotesLoadFailed + ": " + msg.err.Error()
			m.logger.Warn().Err(msg.err).Msg("showing an empty note list")
		}
		m.list.notes.Load(msg.notes)
		return m, nil
	case noteCreatedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.publish(models.NewNoteCreatedEvent(msg.note))
		m.openEdit(msg.note)
		return m, m.cmdListAttachments(msg.note.ID)
	case noteSavedMsg:
		m.edit.saving = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.edit.note = msg.note
		m.publish(models.NewNoteSavedEvent(msg.note))
		if msg.leave {
			m.closeEdit(msg.note.ID)
			return m, nil
		}
		m.edit.status = app.MsgNoteSaved
		return m, cmdClearStatus()
	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.publish(models.NewNoteDeletedEvent(msg.id))
		m.closeEdit(msg.id)
		return m, nil
	case attachmentsLoadedMsg:
		if msg.noteID != m.edit.note.ID {
			return m, nil
		}
		if msg.err != nil {
			m.edit.status = app.MsgAttachmentsUnavailable + ": " + msg.err.Error()
			return m, nil
		}
		m.edit.attachments = msg.items
		return m, nil
	case attachedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if msg.attachment.NoteID == m.edit.note.ID {
			m.edit.attachments = append(m.edit.attachments, msg.attachment)
		}
		m.edit.status = app.MsgAttached + " " + msg.attachment.Name
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.edit.status = app.MsgCopied
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.edit.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.currentScreen == screenEdit {
			m.edit.resize(m.width)
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenBuildInfo:
		return m.updateBuildInfo(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenEdit:
		body = m.edit.View()
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// publish hands event to the bus listeners. A listener failure leaves the
// list out of step with the store, so it is logged and shown as a warning.
func (m *appModel) publish(event models.NoteEvent) {
	if err := m.bus.Publish(m.ctx, event); err != nil {
		m.logger.Warn().Err(err).
			Str("event", string(event.Type)).
			Str("note_id", event.NoteID).
			Msg("note event listener failed")
		m.list.warning = app.MsgListOutOfDate + ": " + err.Error()
	}
}

func (m *appModel) openEdit(note models.Note) {
	m.edit = newEditModel(note)
	m.edit.resize(m.width)
	m.currentScreen = screenEdit
}

func (m *appModel) closeEdit(noteID string) {
	m.edit.stopAttach()
	m.currentScreen = screenList
	m.list.selectID(noteID)
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.list.move(-1)
	case key.Matches(keyMsg, keys.down):
		m.list.move(1)
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.openEdit(note)
		return m, m.cmdListAttachments(note.ID)
	case key.Matches(keyMsg, keys.newNote):
		return m, m.cmdCreateNote()
	case key.Matches(keyMsg, keys.search):
		m.list.startSearch()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.esc):
		m.list.stopSearch(true)
	case key.Matches(keyMsg, keys.buildInfo):
		m.currentScreen = screenBuildInfo
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.stopSearch(true)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.list.stopSearch(false)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	m.list.setQuery(m.list.search.Value())
	return m, cmd
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.edit.attaching {
		return m.updateAttachPrompt(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.save):
			if m.edit.saving {
				return m, nil
			}
			m.edit.saving = true
			return m, m.cmdUpdateNote(m.edit.note, m.edit.titleValue(), m.edit.bodyValue(), false)
		case key.Matches(keyMsg, keys.esc):
			if m.edit.saving {
				return m, nil
			}
			if m.edit.isBlank() {
				return m, m.cmdDeleteNote(m.edit.note)
			}
			m.edit.saving = true
			return m, m.cmdUpdateNote(m.edit.note, m.edit.titleValue(), m.edit.bodyValue(), true)
		case key.Matches(keyMsg, keys.delete):
			if m.edit.saving {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = m.edit.displayTitle()
			return m, nil
		case key.Matches(keyMsg, keys.attach):
			m.edit.startAttach()
			return m, textinput.Blink
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopyToClipboard(m.edit.bodyValue())
		case key.Matches(keyMsg, keys.tab):
			m.edit.toggleFocus()
			if m.edit.focus == focusBody {
				return m, textarea.Blink
			}
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	if m.edit.focus == focusTitle {
		m.edit.title, cmd = m.edit.title.Update(msg)
	} else {
		m.edit.body, cmd = m.edit.body.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateAttachPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.edit.stopAttach()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := m.edit.attachPath.Value()
			m.edit.stopAttach()
			if path == "" {
				return m, nil
			}
			return m, m.cmdAttachFile(m.edit.note.ID, path)
		}
	}

	var cmd tea.Cmd
	m.edit.attachPath, cmd = m.edit.attachPath.Update(msg)
	return m, cmd
}

func (m appModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.buildInfo):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}
