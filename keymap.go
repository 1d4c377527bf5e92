package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings. Tool keys are looked up through
// toolForKey instead, since they follow the tool list.
type KeyMap struct {
	Quit, Help, Command key.Binding
	Save, Open          key.Binding
	Escape              key.Binding

	PanelCanvas, PanelTools, PanelElements, PanelProperties key.Binding

	NextTool, PrevTool, ToolLock key.Binding
	Undo, Redo                   key.Binding

	Up, Down, Left, Right             key.Binding
	PanUp, PanDown, PanLeft, PanRight key.Binding
	Enter, Delete                     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Open:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "select tool")),

		PanelCanvas:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "canvas")),
		PanelTools:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tools")),
		PanelElements:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "elements")),
		PanelProperties: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "properties")),

		NextTool: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tool")),
		PrevTool: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tool")),
		ToolLock: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "lock tool")),
		Undo:     key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:     key.NewBinding(key.WithKeys("U", "ctrl+y"), key.WithHelp("U", "redo")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		PanUp:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("shift+↑", "pan up")),
		PanDown:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("shift+↓", "pan down")),
		PanLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "pan left")),
		PanRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "pan right")),

		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Delete: key.NewBinding(key.WithKeys("delete", "backspace", "d"), key.WithHelp("del", "delete")),
	}
}

// helpEntry renders one binding as "key description".
func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
