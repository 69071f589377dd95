package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Focus     key.Binding
	Toggle    key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Today     key.Binding
	Accept    key.Binding
	Cancel    key.Binding
	Quit      key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "field/grid")),
		Toggle:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open/close")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "week up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "week down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "day left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "day right")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Accept:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "accept")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "cancel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Select, k.PrevMonth, k.NextMonth, k.Accept, k.Cancel, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.Today},
		{k.Focus, k.Toggle, k.Accept, k.Cancel, k.Help},
	}
}

