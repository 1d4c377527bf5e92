package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubHandler struct {
	key   EventResult
	mouse EventResult
	calls *[]string
	name  string
}

func (h stubHandler) HandleKey(m *model, msg tea.KeyMsg) EventResult {
	*h.calls = append(*h.calls, h.name)
	return h.key
}

func (h stubHandler) HandleMouse(m *model, ev MouseEvent) EventResult {
	*h.calls = append(*h.calls, h.name)
	return h.mouse
}

func TestDispatch_Chain(t *testing.T) {
	tests := []struct {
		name      string
		results   []EventResult
		wantCalls int
		wantQuit  bool
	}{
		{"all ignore", []EventResult{ignored, ignored, ignored}, 3, false},
		{"first consumes", []EventResult{consumed, ignored, ignored}, 1, false},
		{"second consumes", []EventResult{ignored, consumed, ignored}, 2, false},
		{"quit stops propagation", []EventResult{ignored, quitResult(), consumed}, 2, true},
	}
	for _, tt := range tests {
		for _, mouse := range []bool{false, true} {
			m := initialModel(nil)
			m.config.ConfirmQuit = false
			var calls []string
			handlers := make([]EventHandler, len(tt.results))
			for i, res := range tt.results {
				handlers[i] = stubHandler{key: res, mouse: res, calls: &calls, name: string(rune('a' + i))}
			}

			var quit bool
			if mouse {
				quit = dispatchMouse(&m, handlers, MouseEvent{Kind: MouseDown})
			} else {
				quit = dispatchKey(&m, handlers, runes("x"))
			}
			if quit != tt.wantQuit || len(calls) != tt.wantCalls {
				t.Fatalf("%s (mouse=%v): quit %v calls %v, want quit %v after %d calls",
					tt.name, mouse, quit, calls, tt.wantQuit, tt.wantCalls)
			}
		}
	}
}

func TestDispatch_FinishedDrawingRecordsAndSelects(t *testing.T) {
	m := initialModel(nil)
	id := m.canvas.Add(NewText(m.canvas.NextID(), Coord{}, "hi"))
	m.tools.Select(ToolText)

	h := stubHandler{key: finishedDrawing(id), calls: new([]string)}
	if dispatchKey(&m, []EventHandler{h}, runes("x")) {
		t.Fatalf("finished drawing requested quit")
	}
	if len(m.undoStack) != 1 || !m.modified {
		t.Fatalf("undo stack %d, modified %v", len(m.undoStack), m.modified)
	}
	if m.tools.active != ToolSelect || !m.selection.IsSelected(id) {
		t.Fatalf("tool %v, selection %v", m.tools.active, m.selection.IDs())
	}

	m.tools.locked = true
	m.tools.Select(ToolText)
	id2 := m.canvas.Add(NewText(m.canvas.NextID(), Coord{0, 2}, "yo"))
	dispatchKey(&m, []EventHandler{stubHandler{key: finishedDrawing(id2), calls: new([]string)}}, runes("x"))
	if m.tools.active != ToolText {
		t.Fatalf("locked tool switched to %v", m.tools.active)
	}
}

func TestQuit_ConfirmsUnsavedChanges(t *testing.T) {
	m := initialModel(nil)
	m.modified = true
	q := runes("q")

	next, cmd := m.Update(q)
	if cmd != nil {
		t.Fatalf("first q quit with unsaved changes")
	}
	m = next.(model)
	if !m.quitArmed || m.errorMessage == "" {
		t.Fatalf("first q: armed %v, message %q", m.quitArmed, m.errorMessage)
	}
	if _, cmd := m.Update(q); cmd == nil {
		t.Fatalf("second q did not quit")
	}

	m.quitArmed = false
	next, _ = m.Update(q)
	m = next.(model)
	next, _ = m.Update(runes("s"))
	m = next.(model)
	if m.quitArmed {
		t.Fatalf("another key should disarm quit")
	}
}

func TestMouseEventFromMsg(t *testing.T) {
	tests := []struct {
		msg  tea.MouseMsg
		want MouseKind
		ok   bool
	}{
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, MouseDown, true},
		{tea.MouseMsg{Action: tea.MouseActionRelease}, MouseUp, true},
		{tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, MouseDrag, true},
		{tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, MouseMoved, true},
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, MouseScrollUp, true},
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
	}
	for _, tt := range tests {
		ev, ok := mouseEventFromMsg(tt.msg)
		if ok != tt.ok || (ok && ev.Kind != tt.want) {
			t.Fatalf("%+v: got %v,%v, want %v,%v", tt.msg, ev.Kind, ok, tt.want, tt.ok)
		}
	}
}
