package app

import (
	"charm.land/bubbles/v2/key"

	"github.com/miosa/shytable/ui/help"
)

// KeyMap defines all global keybindings.
type KeyMap struct {
	// Navigation
	ScrollUp     key.Binding // k
	ScrollDown   key.Binding // j
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding // u
	HalfPageDown key.Binding // d
	ScrollTop    key.Binding
	ScrollBottom key.Binding

	// Data
	Clear  key.Binding
	Reload key.Binding
	Copy   key.Binding

	// Global
	Theme key.Binding
	Help  key.Binding
	Close key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "line up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "line down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", "space"),
			key.WithHelp("pgdn/f", "page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "half page down"),
		),
		ScrollTop: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first row"),
		),
		ScrollBottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last row"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear table"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload data"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy top row"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "?", "f1", "q"),
			key.WithHelp("esc", "close help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpSections groups the bindings for the help overlay.
func (k KeyMap) HelpSections() []help.Section {
	return []help.Section{
		{Title: "Scrolling", Bindings: []key.Binding{
			k.ScrollDown, k.ScrollUp, k.PageDown, k.PageUp,
			k.HalfPageDown, k.HalfPageUp, k.ScrollTop, k.ScrollBottom,
		}},
		{Title: "Data", Bindings: []key.Binding{k.Copy, k.Clear, k.Reload}},
		{Title: "General", Bindings: []key.Binding{k.Theme, k.Help, k.Quit}},
	}
}
