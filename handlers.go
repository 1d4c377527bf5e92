package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// helpHandler owns all input while the help screen is open.
type helpHandler struct{}

func (helpHandler) HandleKey(m *model, msg tea.KeyMsg) EventResult {
	if !m.help {
		return ignored
	}
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Help), msg.String() == "q":
		m.help = false
		m.helpScroll = 0
	case key.Matches(msg, m.keys.Down):
		m.helpScroll++
	case key.Matches(msg, m.keys.Up):
		m.helpScroll = max(m.helpScroll-1, 0)
	}
	return consumed
}

func (helpHandler) HandleMouse(m *model, ev MouseEvent) EventResult {
	if !m.help {
		return ignored
	}
	switch ev.Kind {
	case MouseScrollDown:
		m.helpScroll++
	case MouseScrollUp:
		m.helpScroll = max(m.helpScroll-1, 0)
	}
	return consumed
}

// commandHandler edits and runs the ':' command line.
type commandHandler struct{}

func (commandHandler) HandleKey(m *model, msg tea.KeyMsg) EventResult {
	if !m.command.active {
		return ignored
	}
	switch msg.Type {
	case tea.KeyEnter:
		input := m.command.input
		m.command = commandLine{}
		m.executeCommand(input)
	case tea.KeyEsc:
		m.command = commandLine{}
	case tea.KeyBackspace:
		if m.command.input == "" {
			m.command = commandLine{}
		} else {
			m.command.input = dropLastGrapheme(m.command.input)
		}
	case tea.KeySpace:
		m.command.input += " "
	case tea.KeyRunes:
		m.command.input += string(msg.Runes)
	}
	return consumed
}

func (commandHandler) HandleMouse(m *model, ev MouseEvent) EventResult {
	return ignored
}

// toolKeyHandler gives an in-progress drawing the first look at keys, so
// typed text never reaches the shortcuts below.
type toolKeyHandler struct{}

func (toolKeyHandler) HandleKey(m *model, msg tea.KeyMsg) EventResult {
	cur := m.tools.Current()
	if cur == nil || !cur.Active() {
		return ignored
	}
	return cur.HandleKey(m.canvas, msg)
}

func (toolKeyHandler) HandleMouse(m *model, ev MouseEvent) EventResult {
	return ignored
}

// canvasHandler routes canvas mouse input to the select machine or the
// active drawing tool, and handles selection keys.
type canvasHandler struct{}

func (canvasHandler) HandleKey(m *model, msg tea.KeyMsg) EventResult {
	if m.activePanel != PanelCanvas {
		return ignored
	}
	switch {
	case key.Matches(msg, m.keys.Enter):
		if t, ok := m.singleSelected().(*Table); ok {
			m.tableEditor.open(t)
			return consumed
		}
		return ignored
	case key.Matches(msg, m.keys.Delete):
		if !m.selection.HasSelection() {
			return ignored
		}
		m.deleteSelection()
		return consumed
	case key.Matches(msg, m.keys.PanUp, m.keys.PanDown, m.keys.PanLeft, m.keys.PanRight):
		m.handlePan(msg.String(), getMoveSpeed(msg.String()))
		return consumed
	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right):
		dx, dy := directionDelta(msg.String())
		if m.selection.HasSelection() {
			m.recordMove(m.selection.Nudge(m.canvas, dx, dy))
		} else {
			m.handlePan(msg.String(), 1)
		}
		return consumed
	}
	return ignored
}

func (canvasHandler) HandleMouse(m *model, ev MouseEvent) EventResult {
	p, inside := m.screenToCanvas(ev.X, ev.Y)

	switch ev.Kind {
	case MouseScrollUp, MouseScrollDown:
		if !inside {
			return ignored
		}
		dir := "down"
		if ev.Kind == MouseScrollUp {
			dir = "up"
		}
		m.handlePan(dir, 3)
		return consumed

	case MouseDown:
		if !inside {
			return ignored
		}
		m.activePanel = PanelCanvas
		m.pointer, m.pointerOnCanvas = p, true
		m.tableEditor.close()
		cur := m.tools.Current()
		if cur == nil {
			if ev.Shift {
				m.selection.Toggle(m.canvas, p)
			} else {
				m.selection.Press(m.canvas, p)
			}
			return consumed
		}
		return cur.Press(m.canvas, p)

	case MouseDrag:
		m.pointer, m.pointerOnCanvas = p, inside
		cur := m.tools.Current()
		if cur == nil {
			mode := m.selection.Mode()
			if mode != SelectionSelecting && mode != SelectionMoving {
				return ignored
			}
			m.selection.Drag(p)
			return consumed
		}
		return cur.Drag(m.canvas, p)

	case MouseUp:
		cur := m.tools.Current()
		if cur == nil {
			mode := m.selection.Mode()
			if mode != SelectionSelecting && mode != SelectionMoving {
				return ignored
			}
			m.recordMove(m.selection.Release(m.canvas, p))
			return consumed
		}
		return cur.Release(m.canvas, p)

	case MouseMoved:
		m.pointer, m.pointerOnCanvas = p, inside
		if cur := m.tools.Current(); cur != nil && inside {
			return cur.Move(m.canvas, p)
		}
	}
	return ignored
}

// globalHandler takes whatever nothing more specific consumed.
type globalHandler struct{}

func (globalHandler) HandleKey(m *model, msg tea.KeyMsg) EventResult {
	switch {
	case key.Matches(msg, m.keys.Command):
		m.command = commandLine{active: true}
	case key.Matches(msg, m.keys.Save):
		m.command = commandLine{active: true, input: "save "}
	case key.Matches(msg, m.keys.Open):
		m.command = commandLine{active: true, input: "open "}
	case key.Matches(msg, m.keys.Quit):
		return quitResult()
	case key.Matches(msg, m.keys.Help):
		m.help = !m.help
		m.helpScroll = 0
	case key.Matches(msg, m.keys.PanelCanvas):
		m.activePanel = PanelCanvas
	case key.Matches(msg, m.keys.PanelTools):
		m.activePanel = PanelTools
	case key.Matches(msg, m.keys.PanelElements):
		m.activePanel = PanelElements
	case key.Matches(msg, m.keys.PanelProperties):
		m.activePanel = PanelProperties
	case key.Matches(msg, m.keys.Escape):
		m.selectTool(ToolSelect)
	case key.Matches(msg, m.keys.NextTool):
		m.selectTool(nextTool(m.tools.active, 1))
	case key.Matches(msg, m.keys.PrevTool):
		m.selectTool(nextTool(m.tools.active, -1))
	case key.Matches(msg, m.keys.ToolLock):
		m.tools.locked = !m.tools.locked
	case key.Matches(msg, m.keys.Undo):
		m.undo()
	case key.Matches(msg, m.keys.Redo):
		m.redo()
	default:
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			return ignored
		}
		t, ok := toolForKey(msg.Runes[0])
		if !ok {
			return ignored
		}
		m.selectTool(t)
	}
	return consumed
}

// HandleMouse activates the panel under a press. Presses on the canvas
// stay unconsumed so canvas handling can still see them.
func (globalHandler) HandleMouse(m *model, ev MouseEvent) EventResult {
	if ev.Kind != MouseDown {
		return ignored
	}
	panel, ok := m.layout().panelAt(ev.X, ev.Y)
	if !ok {
		return ignored
	}
	m.activePanel = panel
	if panel == PanelCanvas {
		return ignored
	}
	return consumed
}
