package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Search  key.Binding
	Filter  key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	Tab5    key.Binding
	Profile key.Binding
	SignOut key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "chat")),
		Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "channels")),
		Tab4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "calendar")),
		Tab5:    key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "more")),
		Profile: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		SignOut: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "sign out")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// listHelp is the footer hint on portal list screens.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.SignOut, k.Quit}
}

// formHelp is the footer hint on auth/form screens.
func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.Quit}
}
