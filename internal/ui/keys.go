package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	HalfUp      key.Binding
	HalfDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Filter      key.Binding
	Jump        key.Binding
	Copy        key.Binding
	CopySection key.Binding
	ToggleRTL   key.Binding
	Escape      key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+f", " "), key.WithHelp("pgdn", "page down")),
		HalfUp:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfDown:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		NextSection: key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "previous section")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Jump:        key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy item")),
		CopySection: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy section")),
		ToggleRTL:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "flip direction")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter / quit")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
