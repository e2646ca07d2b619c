package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

const editMargin = 8

const (
	focusTitle = iota
	focusBody
)

type editModel struct {
	note models.Note

	title textinput.Model
	body  textarea.Model
	focus int

	attachPath  textinput.Model
	attaching   bool
	attachments []models.Attachment

	saving bool
	status string
}

func newEditModel(note models.Note) editModel {
	title := textinput.New()
	title.Placeholder = models.NoTitlePlaceholder
	title.CharLimit = 256
	title.SetValue(note.Title)

	body := textarea.New()
	body.Placeholder = models.NoBodyPlaceholder
	body.CharLimit = 0
	body.ShowLineNumbers = false
	body.SetWidth(60)
	body.SetHeight(12)
	body.SetValue(note.Body)

	attachPath := textinput.New()
	attachPath.Prompt = "file: "
	attachPath.Placeholder = "path/to/image.png"

	m := editModel{
		note:       note,
		title:      title,
		body:       body,
		attachPath: attachPath,
	}
	m.title.Focus()
	return m
}

func (m editModel) titleValue() string {
	return m.title.Value()
}

func (m editModel) bodyValue() string {
	return m.body.Value()
}

// isBlank reports whether the user left both fields empty.
func (m editModel) isBlank() bool {
	return strings.TrimSpace(m.title.Value()) == "" && strings.TrimSpace(m.body.Value()) == ""
}

func (m editModel) displayTitle() string {
	if t := strings.TrimSpace(m.title.Value()); t != "" {
		return fitText(firstLine(t), listTitleWidth)
	}
	return models.NoTitlePlaceholder
}

// resize fits the body to the terminal width; unknown widths are ignored.
func (m *editModel) resize(width int) {
	if width <= editMargin {
		return
	}
	m.body.SetWidth(width - editMargin)
	m.title.Width = width - editMargin
}

func (m *editModel) toggleFocus() {
	if m.focus == focusTitle {
		m.focus = focusBody
		m.title.Blur()
		m.body.Focus()
		return
	}
	m.focus = focusTitle
	m.body.Blur()
	m.title.Focus()
}

func (m *editModel) startAttach() {
	m.attaching = true
	m.attachPath.SetValue("")
	m.attachPath.Focus()
}

func (m *editModel) stopAttach() {
	m.attaching = false
	m.attachPath.Blur()
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Edit note"))
	b.WriteString("\n\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")

	if len(m.attachments) > 0 {
		b.WriteString("\nAttachments:\n")
		for _, a := range m.attachments {
			b.WriteString("  - ")
			b.WriteString(a.Name)
			b.WriteString(dateStyle.Render("  " + a.MimeType + ", " + formatSize(a.Size)))
			b.WriteString("\n")
		}
	}

	if m.attaching {
		b.WriteString("\n")
		b.WriteString(m.attachPath.View())
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString("\n" + app.MsgSaving + "\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.attaching {
		b.WriteString(helpStyle.Render("enter attach  esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("tab switch  ctrl+s save  ctrl+d delete  ctrl+a attach  ctrl+y copy  esc back"))
	}
	return b.String()
}
