package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
)

const (
	fieldLast = iota
	fieldFirst
	fieldMiddle
	fieldAddress1
	fieldAddress2
	fieldCount
)

var fieldPrompts = [fieldCount]string{
	fieldLast:     "Last name:  ",
	fieldFirst:    "First name: ",
	fieldMiddle:   "Middle:     ",
	fieldAddress1: "Address 1:  ",
	fieldAddress2: "Address 2:  ",
}

// editForm holds the text fields of the resident being edited. Birth date
// and residency are kept from the stored record.
type editForm struct {
	id     string
	record resident.Resident
	fields [fieldCount]textinput.Model
	focus  int
}

func newEditForm(rec resident.Resident) *editForm {
	f := &editForm{id: rec.ID, record: rec}
	values := [fieldCount]string{
		fieldLast:     rec.LastName,
		fieldFirst:    rec.FirstName,
		fieldMiddle:   rec.MiddleName,
		fieldAddress1: rec.Address1,
		fieldAddress2: rec.Address2,
	}
	for i := range f.fields {
		in := textinput.New()
		in.Prompt = fieldPrompts[i]
		in.CharLimit = 128
		in.SetValue(values[i])
		f.fields[i] = in
	}
	return f
}

// Focus focuses the current field and returns its blink command.
func (f *editForm) Focus() tea.Cmd {
	for i := range f.fields {
		f.fields[i].Blur()
	}
	f.fields[f.focus].CursorEnd()
	return f.fields[f.focus].Focus()
}

// Move shifts the focus by delta, wrapping at both ends.
func (f *editForm) Move(delta int) tea.Cmd {
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.Focus()
}

func (f *editForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return cmd
}

// Resident returns the stored record with the form's values applied.
func (f *editForm) Resident() resident.Resident {
	r := f.record
	r.LastName = strings.TrimSpace(f.fields[fieldLast].Value())
	r.FirstName = strings.TrimSpace(f.fields[fieldFirst].Value())
	r.MiddleName = strings.TrimSpace(f.fields[fieldMiddle].Value())
	r.Address1 = strings.TrimSpace(f.fields[fieldAddress1].Value())
	r.Address2 = strings.TrimSpace(f.fields[fieldAddress2].Value())
	return r
}

func (f *editForm) View() string {
	lines := make([]string, 0, fieldCount+1)
	lines = append(lines, "Editing "+f.record.DisplayName())
	for i := range f.fields {
		lines = append(lines, f.fields[i].View())
	}
	return strings.Join(lines, "\n")
}
