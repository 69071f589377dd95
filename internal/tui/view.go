package tui

import (
	"strconv"
	"strings"

	"datepick/internal/calendar"

	"github.com/charmbracelet/lipgloss"
)

// gridWidth is seven three-cell columns.
const gridWidth = calendar.DaysPerWeek * 3

func (m pickerModel) View() string {
	if m.showHelp {
		return m.helpText() + "\n"
	}

	var b strings.Builder
	b.WriteString(m.st.label.Render("Date") + " ")
	b.WriteString(m.st.status.Render("(" + m.ctrl.Codec().Layout.String() + ")"))
	b.WriteString("\n")
	b.WriteString(renderInputLine(gridWidth+1, m.input.View()))
	b.WriteString("\n")
	if msg := m.ctrl.TextInput().Message(); msg != "" {
		b.WriteString(m.st.errLine.Render(msg))
		b.WriteString("\n")
	}

	if m.ctrl.IsOpen() {
		b.WriteString("\n")
		b.WriteString(m.renderCaption())
		b.WriteString("\n")
		b.WriteString(m.renderHeader())
		b.WriteString("\n")
		b.WriteString(m.renderGrid())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.ctrl.Disabled():
		b.WriteString(m.st.disabled.Render("disabled"))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.st.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m pickerModel) renderCaption() string {
	year, month := m.ctrl.Cursor()
	prev, next := m.st.arrowOff.Render("‹"), m.st.arrowOff.Render("›")
	if m.ctrl.CanPrevious() {
		prev = m.st.arrow.Render("‹")
	}
	if m.ctrl.CanNext() {
		next = m.st.arrow.Render("›")
	}
	title := m.st.caption.Render(m.labels.MonthYear(year, month))
	inner := lipgloss.PlaceHorizontal(gridWidth-4, lipgloss.Center, title)
	return prev + " " + inner + " " + next
}

func (m pickerModel) renderHeader() string {
	var b strings.Builder
	for _, name := range m.labels.Header(m.ctrl.FirstWeekday()) {
		b.WriteString(m.st.weekday.Render(name))
	}
	return b.String()
}

func (m pickerModel) renderGrid() string {
	mm := m.ctrl.Matrix()
	selected, hasSelected := m.ctrl.Selection()
	today := m.ctrl.Today()

	lines := make([]string, 0, len(mm.Rows))
	for _, row := range mm.Rows {
		var b strings.Builder
		for _, d := range row {
			b.WriteString(m.renderCell(d, selected, hasSelected, today))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (m pickerModel) renderCell(d, selected calendar.Date, hasSelected bool, today calendar.Date) string {
	if d.IsZero() {
		return "   "
	}
	label := strconv.Itoa(d.Day)
	switch {
	case m.focus == focusGrid && d == m.highlight:
		return m.st.highlight.Render(label)
	case hasSelected && d == selected:
		return m.st.selected.Render(label)
	case !m.ctrl.Selectable(d):
		return m.st.outOfRange.Render(label)
	case d == today:
		return m.st.today.Render(label)
	default:
		return m.st.day.Render(label)
	}
}
