package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newNote   key.Binding
	search    key.Binding
	buildInfo key.Binding
	save      key.Binding
	delete    key.Binding
	attach    key.Binding
	copy      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	search:    key.NewBinding(key.WithKeys("/")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	attach:    key.NewBinding(key.WithKeys("ctrl+a")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
