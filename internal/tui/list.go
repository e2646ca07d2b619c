package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/listsync"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

const listTitleWidth = 40

// listView is the cursor of the note list screen. It is the Display the
// synchronizer drives, so it is shared by pointer between model copies.
// Rows are always read from the synchronizer; the view only keeps the
// cursor and the search query.
type listView struct {
	notes *listsync.Synchronizer

	idx       int
	query     string
	search    textinput.Model
	searching bool

	loading bool
	spinner spinner.Model
	warning string
	status  string
}

var _ listsync.Display = (*listView)(nil)

func newListView(notes *listsync.Synchronizer) *listView {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	search.CharLimit = 256

	return &listView{
		notes:   notes,
		search:  search,
		spinner: s,
		loading: true,
	}
}

// InsertAt moves the cursor onto a new entry when the list is unfiltered.
func (v *listView) InsertAt(index int) {
	if v.query == "" {
		v.idx = index
	}
	v.clamp()
}

// RemoveAt keeps the cursor on the same entry when a row above it goes away.
func (v *listView) RemoveAt(index int) {
	if v.query == "" && v.idx > index {
		v.idx--
	}
	v.clamp()
}

func (v *listView) Reload() {
	v.clamp()
}

// rows is the visible part of the snapshot, recomputed on every call.
func (v *listView) rows() []models.Note {
	return v.notes.Filter(v.query)
}

func (v *listView) current() (models.Note, bool) {
	rows := v.rows()
	if len(rows) == 0 || v.idx < 0 || v.idx >= len(rows) {
		return models.Note{}, false
	}
	return rows[v.idx], true
}

func (v *listView) move(delta int) {
	v.idx += delta
	v.clamp()
}

// selectID puts the cursor on the visible row with id, if any.
func (v *listView) selectID(id string) {
	for i, n := range v.rows() {
		if n.Is(id) {
			v.idx = i
			return
		}
	}
	v.clamp()
}

func (v *listView) clamp() {
	n := len(v.rows())
	if v.idx >= n {
		v.idx = n - 1
	}
	if v.idx < 0 {
		v.idx = 0
	}
}

func (v *listView) startSearch() {
	v.searching = true
	v.search.SetValue(v.query)
	v.search.CursorEnd()
	v.search.Focus()
}

// stopSearch leaves search mode. With reset the filter is dropped as well.
func (v *listView) stopSearch(reset bool) {
	v.searching = false
	v.search.Blur()
	if reset {
		v.search.SetValue("")
		v.setQuery("")
	}
}

func (v *listView) setQuery(query string) {
	if query == v.query {
		return
	}
	v.query = query
	v.idx = 0
	v.clamp()
}

func (v *listView) View() string {
	var b strings.Builder

	header := titleStyle.Render("Notes")
	if v.loading {
		header += "  " + v.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	if v.searching {
		b.WriteString(v.search.View())
		b.WriteString("\n\n")
	} else if v.query != "" {
		b.WriteString(helpStyle.Render("filter: " + v.query))
		b.WriteString("\n\n")
	}

	rows := v.rows()
	switch {
	case v.loading:
		b.WriteString(app.MsgLoading + "\n")
	case len(rows) == 0 && v.query != "":
		b.WriteString(app.MsgNothingMatches + "\n")
	case len(rows) == 0:
		b.WriteString(app.MsgNoNotes + "\n")
	default:
		for i, n := range rows {
			title := fitText(firstLine(n.Title), listTitleWidth)
			line := title + strings.Repeat(" ", max(1, listTitleWidth-len([]rune(title))+2)) + dateStyle.Render(formatDate(n.ModifiedAt))
			if i == v.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if v.warning != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(v.warning))
		b.WriteString("\n")
	}
	if v.status != "" {
		b.WriteString("\n")
		b.WriteString(v.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.searching {
		b.WriteString(helpStyle.Render("enter keep filter  esc clear"))
	} else {
		b.WriteString(helpStyle.Render("n new  / search  enter open  v about  q quit"))
	}
	return b.String()
}
