package main

import tea "github.com/charmbracelet/bubbletea"

type EventResult struct {
	Kind   ResultKind
	Action AppAction
	// ElementID is the element a FinishedDrawing action created.
	ElementID int
}

var (
	ignored  = EventResult{Kind: Ignored}
	consumed = EventResult{Kind: Consumed}
)

func quitResult() EventResult {
	return EventResult{Kind: ActionRequested, Action: ActionQuit}
}

func finishedDrawing(id int) EventResult {
	return EventResult{Kind: ActionRequested, Action: ActionFinishedDrawing, ElementID: id}
}

type MouseKind int

const (
	MouseDown MouseKind = iota
	MouseUp
	MouseDrag
	MouseMoved
	MouseScrollUp
	MouseScrollDown
)

// MouseEvent is a mouse report in screen cells.
type MouseEvent struct {
	Kind  MouseKind
	X, Y  int
	Shift bool
}

// mouseEventFromMsg keeps left-button and wheel reports; other buttons are
// dropped.
func mouseEventFromMsg(msg tea.MouseMsg) (MouseEvent, bool) {
	ev := MouseEvent{X: msg.X, Y: msg.Y, Shift: msg.Shift}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Kind = MouseDown
		case tea.MouseButtonWheelUp:
			ev.Kind = MouseScrollUp
		case tea.MouseButtonWheelDown:
			ev.Kind = MouseScrollDown
		default:
			return ev, false
		}
	case tea.MouseActionRelease:
		ev.Kind = MouseUp
	case tea.MouseActionMotion:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Kind = MouseDrag
		case tea.MouseButtonNone:
			ev.Kind = MouseMoved
		default:
			return ev, false
		}
	default:
		return ev, false
	}
	return ev, true
}

// EventHandler is one link of the dispatch chain.
type EventHandler interface {
	HandleKey(m *model, msg tea.KeyMsg) EventResult
	HandleMouse(m *model, ev MouseEvent) EventResult
}

// dispatchKey offers msg to each handler in order until one consumes it or
// requests an action. It reports whether quitting was requested.
func dispatchKey(m *model, handlers []EventHandler, msg tea.KeyMsg) bool {
	for _, h := range handlers {
		res := h.HandleKey(m, msg)
		if res.Kind == Ignored {
			continue
		}
		return m.handleResult(res)
	}
	return false
}

func dispatchMouse(m *model, handlers []EventHandler, ev MouseEvent) bool {
	for _, h := range handlers {
		res := h.HandleMouse(m, ev)
		if res.Kind == Ignored {
			continue
		}
		return m.handleResult(res)
	}
	return false
}

// handleResult applies a side-channel action and reports a quit request.
func (m *model) handleResult(res EventResult) bool {
	if res.Kind != ActionRequested {
		return false
	}
	switch res.Action {
	case ActionQuit:
		return m.requestQuit()
	case ActionFinishedDrawing:
		m.finishDrawing(res.ElementID)
	}
	return false
}
