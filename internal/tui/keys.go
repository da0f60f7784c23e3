package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	cancel key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter")),
	cancel: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d", "esc")),
}
