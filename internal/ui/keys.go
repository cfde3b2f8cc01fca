package ui

import (
	uistate "github.com/atomicstack/route-guide/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap is the closed set of bindings the browser reacts to. Keys outside it
// are ignored.
type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Back    key.Binding
	Confirm key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
	}
}

// shortHelpFor lists the bindings that do something on the given screen.
func (k keyMap) shortHelpFor(screen uistate.Screen) []key.Binding {
	switch screen {
	case uistate.ScreenRouteDetails:
		details := k.Confirm
		details.SetHelp("enter", "details")
		return []key.Binding{k.Up, k.Down, details, k.Toggle, k.Back, k.Help, k.Quit}
	case uistate.ScreenStepDetails:
		return []key.Binding{k.Back, k.Help, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Help, k.Quit}
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Back, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap, grouping navigation apart from actions.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Confirm, k.Back},
		{k.Toggle, k.Help, k.Quit},
	}
}
