package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tzboard/internal/clock"
	"github.com/five82/tzboard/internal/state"
	"github.com/five82/tzboard/internal/zone"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.mode != editNone {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true

	case "a":
		e := m.store.AddZone(m.ctx)
		m.reload()
		m.selected = len(m.board.Views) - 1
		m.setStatus(fmt.Sprintf("Added %s (%s)", e.Title, e.Zone), false)

	case "x", "delete":
		if v, ok := m.selectedView(); ok {
			m.store.RemoveZone(m.ctx, v.EntryID)
			m.reload()
			m.setStatus(fmt.Sprintf("Removed %s", v.Title), false)
		}

	case "enter", "e":
		return m.startEdit(editClock)

	case "r":
		return m.startEdit(editTitle)

	case "z":
		return m.startEdit(editZone)

	case "f":
		if v, ok := m.selectedView(); ok {
			m.report(m.store.EditZoneFormat(m.ctx, v.EntryID, v.TimeFormat.Toggle()))
			m.reload()
		}

	case "F":
		m.store.SetGlobalTimeFormat(m.ctx, m.board.Prefs.TimeFormat.Toggle())
		m.reload()

	case "d":
		m.store.SetGlobalDateFormat(m.ctx, m.board.Prefs.DateFormat.Toggle())
		m.reload()

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.setStatus("Theme: "+m.theme.Name, false)

	case "left", "h", "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "right", "l", "down", "j":
		if m.selected < len(m.board.Views)-1 {
			m.selected++
		}

	case "g", "home":
		m.selected = 0

	case "G", "end":
		if n := len(m.board.Views); n > 0 {
			m.selected = n - 1
		}
	}

	return m, nil
}

// startEdit opens the text input on the selected card.
func (m Model) startEdit(mode editMode) (tea.Model, tea.Cmd) {
	v, ok := m.selectedView()
	if !ok {
		return m, nil
	}

	m.mode = mode
	m.editID = v.EntryID
	switch mode {
	case editClock:
		m.input.SetValue(v.Text)
		m.input.Placeholder = placeholderFor(v.TimeFormat)
	case editTitle:
		m.input.SetValue(v.Title)
		m.input.Placeholder = "Title"
	case editZone:
		m.input.SetValue(v.Zone)
		m.input.Placeholder = "Area/City"
	}
	m.input.CursorEnd()
	m.setStatus("", false)
	return m, m.input.Focus()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEdit()
		return m, nil

	case "enter":
		m.commitEdit()
		return m, nil

	case "tab":
		if m.mode == editZone {
			m.completeZone()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitEdit routes the input to the store. A rejected clock or zone edit
// keeps the card unchanged and reports why on the status line.
func (m *Model) commitEdit() {
	value := m.input.Value()
	var err error

	switch m.mode {
	case editClock:
		err = m.store.EditZoneClockText(m.ctx, m.editID, value)
	case editTitle:
		err = m.store.EditZoneTitle(m.ctx, m.editID, value)
	case editZone:
		err = m.store.EditZoneTimezone(m.ctx, m.editID, value)
	}

	m.stopEdit()
	m.reload()
	m.report(err)
}

func (m *Model) stopEdit() {
	m.mode = editNone
	m.editID = 0
	m.input.Blur()
	m.input.Reset()
}

// completeZone replaces the input with the first known zone containing it.
func (m *Model) completeZone() {
	matches := zone.Complete(m.input.Value())
	switch len(matches) {
	case 0:
		m.setStatus("No matching zone", true)
	case 1:
		m.input.SetValue(matches[0])
		m.input.CursorEnd()
		m.setStatus("", false)
	default:
		m.input.SetValue(matches[0])
		m.input.CursorEnd()
		m.setStatus(truncate(strings.Join(matches, "  "), 100), false)
	}
}

func (m *Model) report(err error) {
	var fe *clock.FormatError
	switch {
	case err == nil:
		m.setStatus("", false)
	case errors.Is(err, clock.ErrParseInvalid):
		m.setStatus("Invalid time, expected "+placeholderFor(m.editFormat()), true)
	case errors.As(err, &fe):
		m.setStatus(fmt.Sprintf("Unknown timezone %q", fe.Zone), true)
	case errors.Is(err, state.ErrNotFound):
		m.setStatus("That card no longer exists", true)
	default:
		m.setStatus(err.Error(), true)
	}
}

// editFormat is the time format of the selected card, used in messages
// after the edit has closed.
func (m *Model) editFormat() clock.TimeFormat {
	if v, ok := m.selectedView(); ok {
		return v.TimeFormat
	}
	return clock.H12
}

func placeholderFor(tf clock.TimeFormat) string {
	if tf == clock.H24 {
		return "HH:MM"
	}
	return "hh:mm AM"
}
