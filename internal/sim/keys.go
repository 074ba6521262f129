package sim

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the simulator's key bindings. NEXT and PREV stand in for
// the two hardware buttons.
type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("n", "right", "l"),
		key.WithHelp("n/→", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p", "left", "h"),
		key.WithHelp("p/←", "prev page"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Quit}
}
