package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) handleNotesKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.notesEditing {
		switch msg.String() {
		case "enter", "i":
			m.notesEditing = true
			m.notesArea.SetValue(m.note)
			m.notesArea.Focus()
			m.Status = StatusBar{Text: "editing note, esc saves", IsError: false}
			return m, nil
		case "d":
			return m.saveNote(""), nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.notesEditing = false
		m.notesArea.Blur()
		return m.saveNote(m.notesArea.Value()), nil
	default:
		var cmd tea.Cmd
		m.notesArea, cmd = m.notesArea.Update(msg)
		return m, cmd
	}
}

func (m Model) saveNote(text string) Model {
	if err := m.svc.Ledger.SetNote(m.ctx, model.DateKey(m.ViewDate), text); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("could not save note: %v", err), IsError: true}
		m.LastError = err
		return m
	}
	m.note = text
	if text == "" {
		m.Status = StatusBar{Text: "note cleared", IsError: false}
	} else {
		m.Status = StatusBar{Text: "note saved", IsError: false}
	}
	return m
}

func (m Model) renderNotesView() string {
	return views.RenderNotesPanel(views.NotesPanelData{
		DateLabel:  m.ViewDate.Format("Mon, Jan 2"),
		Editing:    m.notesEditing,
		EditorView: m.notesArea.View(),
		Note:       m.note,
	})
}

func (m Model) renderNotesPreview() string {
	if m.note == "" {
		return "preview:\n(no note for this day)"
	}
	return "preview:\n" + views.RenderMarkdown(m.note)
}
