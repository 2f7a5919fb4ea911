package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tzboard/internal/clock"
	"github.com/five82/tzboard/internal/state"
)

const (
	cardWidth = 26
	cardGap   = 1
)

// renderMain renders the full board.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderCards())
	b.WriteString("\n\n")
	if status := m.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(m.renderCommandBar())

	return b.String()
}

// renderHeader shows the real local and UTC clocks and the board-wide modes.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	prefs := m.board.Prefs

	dateMode := "Day"
	if prefs.DateFormat == clock.DateAndTime {
		dateMode = "Date & Time"
	}

	parts := []string{
		styles.AccentText.Render("tzboard"),
		styles.MutedText.Render("Local ") + styles.Text.Render(m.board.LocalTime),
		styles.MutedText.Render("UTC ") + styles.Text.Render(m.board.UTCTime),
		styles.MutedText.Render("Show ") + styles.Text.Render(dateMode),
		styles.MutedText.Render("Clock ") + styles.Text.Render(prefs.TimeFormat.String()+"h"),
	}
	if m.board.LastSaveError != nil {
		parts = append(parts, styles.DangerText.Render("SAVE FAILED"))
	}

	header := strings.Join(parts, "  ")
	if m.width > 0 {
		return styles.Header.Width(m.width).Render(header)
	}
	return styles.Header.Render(header)
}

// renderCards lays the cards out left to right, wrapping to fit the width.
func (m Model) renderCards() string {
	styles := m.theme.Styles()
	if len(m.board.Views) == 0 {
		return styles.MutedText.Render("No timezones yet. Press a to add one.")
	}

	perRow := 1
	if m.width > 0 {
		perRow = max(1, m.width/(cardWidth+4+cardGap))
	}

	var rows []string
	var row []string
	for i, v := range m.board.Views {
		row = append(row, m.renderCard(v, i == m.selected))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(v state.View, selected bool) string {
	styles := m.theme.Styles()
	editing := selected && m.mode != editNone

	title := truncate(v.Title, cardWidth-2)
	if editing && m.mode == editTitle {
		title = m.input.View()
	}

	clockLine := styles.Clock.Render(v.Text)
	switch {
	case editing && m.mode == editClock:
		clockLine = m.input.View()
	case v.Err != nil:
		clockLine = styles.DangerText.Render("--:--")
	}

	dayLine := styles.MutedText.Render(v.RelativeDay.String())
	switch {
	case v.Err != nil:
		dayLine = styles.DangerText.Render("unknown zone")
	case m.board.Prefs.DateFormat == clock.DateAndTime:
		dayLine = styles.MutedText.Render(v.Date)
	case v.RelativeDay != clock.Today:
		dayLine = styles.WarningText.Render(v.RelativeDay.String())
	}

	zoneLine := styles.FaintText.Render(truncate(v.Zone, cardWidth))
	if editing && m.mode == editZone {
		zoneLine = m.input.View()
	}

	lines := []string{
		styles.TitleBar(v.ColorSlot).Width(cardWidth).Render(title),
		clockLine,
		dayLine,
		zoneLine,
		m.renderFormatBadge(v.TimeFormat),
	}

	box := styles.Card
	if selected {
		box = styles.CardFocus
	}
	return box.Width(cardWidth + 2).MarginRight(cardGap).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFormatBadge(tf clock.TimeFormat) string {
	styles := m.theme.Styles()
	on := styles.AccentText
	off := styles.FaintText
	if tf == clock.H24 {
		return off.Render("12") + " " + on.Render("24")
	}
	return on.Render("12") + " " + off.Render("24")
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	styles := m.theme.Styles()
	if m.statusError {
		return styles.DangerText.Render(m.status)
	}
	return styles.SuccessText.Render(m.status)
}

// renderCommandBar lists the keys available in the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var items [][2]string
	if m.mode != editNone {
		items = [][2]string{{"enter", "apply"}, {"esc", "cancel"}}
		if m.mode == editZone {
			items = append(items, [2]string{"tab", "complete"})
		}
	} else {
		items = [][2]string{
			{"a", "add"}, {"x", "remove"}, {"e", "edit time"}, {"r", "rename"},
			{"z", "zone"}, {"f", "12/24"}, {"d", "day/date"}, {"?", "help"}, {"q", "quit"},
		}
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s %s", styles.WarningText.Render("<"+it[0]+">"), it[1]))
	}
	bar := strings.Join(parts, "  ")
	if m.width > 0 {
		return styles.CommandBar.Width(m.width).Render(bar)
	}
	return styles.CommandBar.Render(bar)
}
