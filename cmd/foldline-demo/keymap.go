package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type keyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	ToggleFold key.Binding
	CycleWrap  key.Binding
	Undo, Redo key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "display row up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "display row down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		// ctrl+f is taken by some terminals' search; alt+f is the fallback.
		ToggleFold: key.NewBinding(key.WithKeys("ctrl+f", "alt+f"), key.WithHelp("ctrl+f", "toggle fold")),
		CycleWrap:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "cycle wrap mode")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}
