package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	deposit  key.Binding
	withdraw key.Binding
	closeKey key.Binding
	update   key.Binding
	approve  key.Binding
	buy      key.Binding
	copyAddr key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	deposit:  key.NewBinding(key.WithKeys("d")),
	withdraw: key.NewBinding(key.WithKeys("w")),
	closeKey: key.NewBinding(key.WithKeys("z")),
	update:   key.NewBinding(key.WithKeys("u")),
	approve:  key.NewBinding(key.WithKeys("a")),
	buy:      key.NewBinding(key.WithKeys("b")),
	copyAddr: key.NewBinding(key.WithKeys("c")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
