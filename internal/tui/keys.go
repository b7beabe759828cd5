package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Accept    key.Binding
	Done      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Years     key.Binding
	Today     key.Binding
	Clear     key.Binding
	Toggle    key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h", "ctrl+b"), key.WithHelp("←", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l", "ctrl+f"), key.WithHelp("→", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓", "next week")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Done:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "done")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "<"), key.WithHelp("pgup", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", ">"), key.WithHelp("pgdn", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next year")),
		Years:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "years")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "calendar")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:      key.NewBinding(key.WithKeys("esc", "ctrl+g"), key.WithHelp("esc", "close")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpLine renders the bindings relevant to the current mode.
func (k keyMap) helpLine(opened, years bool) string {
	var bs []key.Binding
	switch {
	case years:
		bs = []key.Binding{k.Select, k.Back}
	case opened:
		bs = []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.Years, k.Today, k.Clear, k.Done, k.Help, k.Back}
	default:
		bs = []key.Binding{k.Toggle, k.Today, k.Clear, k.Accept, k.Help, k.Quit}
	}
	out := ""
	for i, b := range bs {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
