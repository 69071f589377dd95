package tui

import (
	"errors"

	"datepick/internal/calendar"
	"datepick/internal/datepicker"
	"datepick/internal/docs"
	"datepick/internal/locale"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type focusArea int

const (
	focusField focusArea = iota
	focusGrid
)

type pickerModel struct {
	ctrl   *datepicker.Controller
	labels locale.Labels
	st     styles
	keys   keyMap
	help   help.Model
	input  textinput.Model
	log    logrus.FieldLogger

	focus     focusArea
	highlight calendar.Date
	showHelp  bool
	status    string

	width  int
	height int

	accepted  bool
	cancelled bool
}

func newPickerModel(ctrl *datepicker.Controller, labels locale.Labels, log logrus.FieldLogger) pickerModel {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = ctrl.Codec().Layout.String()
	// One past the full length so over-long input reaches the parser and is
	// reported instead of silently dropped.
	in.CharLimit = calendar.TextLen + 1
	in.Width = calendar.TextLen + 1
	in.SetValue(ctrl.TextInput().Text)
	in.CursorEnd()
	in.Focus()

	m := pickerModel{
		ctrl:   ctrl,
		labels: labels,
		st:     newStyles(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  in,
		log:    log,
		focus:  focusField,
	}
	m.highlight = m.initialHighlight()
	if ctrl.Disabled() {
		m.input.Blur()
		m.status = "disabled"
	}
	return m
}

// initialHighlight prefers the selected date, then today, then day 1 of the
// displayed month.
func (m pickerModel) initialHighlight() calendar.Date {
	mm := m.ctrl.Matrix()
	if d, ok := m.ctrl.Selection(); ok && mm.Contains(d) {
		return d
	}
	if today := m.ctrl.Today(); mm.Contains(today) {
		return today
	}
	return calendar.Date{Year: mm.Year, Month: mm.Month, Day: 1}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			// Any key closes the overlay; cancel still cancels.
			m.showHelp = false
			if key.Matches(msg, m.keys.Cancel) {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Accept):
			if _, ok := m.ctrl.Selection(); !ok {
				m.status = "no date selected"
				return m, nil
			}
			m.accepted = true
			return m, tea.Quit
		}

		if m.ctrl.Disabled() {
			m.status = "disabled"
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Toggle):
			m.toggleOpen()
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			return m.switchFocus()
		}

		if m.focus == focusGrid {
			return m.updateGrid(msg)
		}
		return m.updateField(msg)
	}

	if m.focus == focusField {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *pickerModel) toggleOpen() {
	m.ctrl.OnOpenToggle()
	if !m.ctrl.IsOpen() {
		m.focus = focusField
		m.input.Focus()
		return
	}
	m.syncHighlight()
}

func (m pickerModel) switchFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusGrid {
		m.focus = focusField
		return m, m.input.Focus()
	}
	if !m.ctrl.IsOpen() {
		m.ctrl.OnOpenToggle()
	}
	m.focus = focusGrid
	m.input.Blur()
	m.syncHighlight()
	return m, nil
}

func (m pickerModel) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	m.status = ""

	err := m.ctrl.OnTextChanged(m.input.Value())
	switch {
	case err == nil:
		if d, ok := m.ctrl.Selection(); ok {
			m.highlight = d
		}
	case errors.Is(err, calendar.ErrIncomplete):
	default:
		m.log.WithError(err).Debug("field rejected")
	}
	return m, cmd
}

func (m pickerModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveHighlight(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveHighlight(1)
	case key.Matches(msg, m.keys.Up):
		m.moveHighlight(-calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveHighlight(calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.PrevMonth):
		m.ctrl.OnPrevious()
		m.syncHighlight()
	case key.Matches(msg, m.keys.NextMonth):
		m.ctrl.OnNext()
		m.syncHighlight()
	case key.Matches(msg, m.keys.PrevYear):
		m.jumpYear(-1)
	case key.Matches(msg, m.keys.NextYear):
		m.jumpYear(1)
	case key.Matches(msg, m.keys.Today):
		m.goTo(m.ctrl.Today())
	case key.Matches(msg, m.keys.Select):
		m.selectHighlight()
	}
	return m, nil
}

func (m *pickerModel) selectHighlight() {
	err := m.ctrl.OnDayClicked(m.highlight)
	// The controller owns the field text; mirror whatever it holds now.
	m.input.SetValue(m.ctrl.TextInput().Text)
	m.input.CursorEnd()
	var be *datepicker.BoundsError
	if errors.As(err, &be) {
		m.log.WithField("date", m.highlight.String()).Debug("day outside bounds")
	}
}

// moveHighlight shifts the highlight by delta days, following it into the
// neighbouring month when needed.
func (m *pickerModel) moveHighlight(delta int) {
	next := m.highlight.AddDays(delta)
	if !next.Valid() {
		return
	}
	m.goTo(next)
}

func (m *pickerModel) goTo(d calendar.Date) {
	m.highlight = d
	year, month := m.ctrl.Cursor()
	if d.Year == year && d.Month == month {
		return
	}
	if err := m.ctrl.OnJumpToYear(d.Year); err != nil {
		m.status = err.Error()
		return
	}
	if err := m.ctrl.OnJumpToMonth(d.Month); err != nil {
		m.status = err.Error()
	}
}

func (m *pickerModel) jumpYear(delta int) {
	year, _ := m.ctrl.Cursor()
	if err := m.ctrl.OnJumpToYear(year + delta); err != nil {
		m.status = err.Error()
		return
	}
	m.syncHighlight()
}

// syncHighlight keeps the highlight inside the displayed month, preserving
// the day number where the month is long enough.
func (m *pickerModel) syncHighlight() {
	year, month := m.ctrl.Cursor()
	if m.highlight.Year == year && m.highlight.Month == month {
		return
	}
	day := m.highlight.Day
	if day < 1 {
		day = 1
	}
	if n := calendar.DaysIn(year, month); day > n {
		day = n
	}
	m.highlight = calendar.Date{Year: year, Month: month, Day: day}
}

func (m pickerModel) helpText() string {
	md, ok := docs.Get("keys")
	if !ok {
		return m.help.View(m.keys)
	}
	w := m.width
	if w <= 0 {
		w = 60
	}
	return RenderMarkdown(md, w)
}
