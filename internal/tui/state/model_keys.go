package state

import (
	stderrors "errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/cristianoliveira/barangay-directory/internal/search"
	"github.com/cristianoliveira/barangay-directory/internal/tui/render"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.browser == nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case m.editing != nil:
		return m.handleEditKey(msg)
	case m.searchMode:
		return m.handleSearchKey(msg)
	case m.confirming:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.snapshot.Keywords.IsEmpty() {
			return m, tea.Quit
		}
		return m, m.report(m.browser.Search(""))
	case "/":
		m.searchMode = true
		m.input.SetValue(m.snapshot.Keywords.String())
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "h", "left":
		return m, m.report(m.browser.NavigatePage(directory.Prev))
	case "l", "right":
		return m, m.report(m.browser.NavigatePage(directory.Next))
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "tab":
		m.switchColumn()
	case " ", "space", "enter":
		return m, m.report(m.browser.SelectSlot(m.ctx, m.cursor))
	case "e":
		return m, m.handleEdit()
	case "d":
		return m, m.handleArchive()
	case "r":
		return m, m.handleReload()
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.searchMode = false
		m.input.Blur()
		if err := m.browser.Search(m.input.Value()); err != nil {
			return m, m.report(err)
		}
		return m, m.noMatchHint()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false
	if msg.String() != "y" && msg.String() != "Y" {
		m.errorHandler.Info("Archive cancelled")
		return m, statusExpiredAfter(statusTTL)
	}

	name := m.selectedName()
	if err := m.browser.Delete(m.ctx); err != nil {
		return m, m.report(err)
	}
	m.errorHandler.Success(name + " archived")
	return m, statusExpiredAfter(statusTTL)
}

// handleEdit opens the edit form on the selected resident.
func (m *Model) handleEdit() tea.Cmd {
	if !m.snapshot.Selection.Active() || m.snapshot.Record == nil {
		return m.report(directory.ErrNoSelection)
	}
	rec := *m.snapshot.Record
	if entry, ok := m.browser.State().SelectedEntry(); ok {
		rec.ID = entry.ID
	}
	m.editing = newEditForm(rec)
	return m.editing.Focus()
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = nil
		m.errorHandler.Info("Edit cancelled")
		return m, statusExpiredAfter(statusTTL)
	case tea.KeyTab, tea.KeyDown:
		return m, m.editing.Move(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.editing.Move(-1)
	case tea.KeyEnter:
		return m, m.saveEdit()
	}
	return m, m.editing.Update(msg)
}

// saveEdit stores the form. A rejected resident keeps the form open so the
// field can be fixed; any other outcome closes it.
func (m *Model) saveEdit() tea.Cmd {
	form := m.editing
	r := form.Resident()
	err := m.browser.Update(m.ctx, form.id, r)
	if err != nil && stderrors.Is(err, resident.ErrInvalidResident) {
		return m.report(err)
	}
	m.editing = nil
	if err != nil {
		return m.report(err)
	}
	m.errorHandler.Success(r.DisplayName() + " saved")
	return statusExpiredAfter(statusTTL)
}

// handleArchive asks for confirmation before archiving the selected resident.
func (m *Model) handleArchive() tea.Cmd {
	if !m.snapshot.Selection.Active() {
		return m.report(directory.ErrNoSelection)
	}
	m.confirming = true
	m.errorHandler.Warning(fmt.Sprintf("Archive %s? (y/N)", m.selectedName()))
	return nil
}

func (m *Model) handleReload() tea.Cmd {
	if err := m.browser.Reload(m.ctx); err != nil {
		return m.report(err)
	}
	m.errorHandler.Success(fmt.Sprintf("Roster reloaded (%d residents)", m.snapshot.Total))
	return statusExpiredAfter(statusTTL)
}

// noMatchHint explains an empty result and offers close names.
func (m *Model) noMatchHint() tea.Cmd {
	s := m.snapshot
	if s.Keywords.IsEmpty() || s.Matches > 0 {
		return nil
	}

	text := fmt.Sprintf("No residents match %q", s.Keywords.String())
	if hints := search.Suggest(m.browser.State().Base, s.Keywords, m.suggestions); len(hints) > 0 {
		text += "; did you mean " + strings.Join(hints, ", ") + "?"
	}
	m.errorHandler.Info(text)
	return statusExpiredAfter(statusTTL)
}

func (m *Model) selectedName() string {
	if m.snapshot.Record != nil {
		return m.snapshot.Record.DisplayName()
	}
	slot := m.snapshot.Selection.Slot
	if slot >= 0 && slot < len(m.snapshot.Page.Slots) {
		return m.snapshot.Page.Slots[slot].Entry.DisplayName
	}
	return "resident"
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// switchColumn jumps between the two grid columns on the same row.
func (m *Model) switchColumn() {
	target := m.cursor + render.GridRows
	if m.cursor >= render.GridRows {
		target = m.cursor - render.GridRows
	}
	if target < m.snapshot.Page.Filled() {
		m.cursor = target
	}
}
