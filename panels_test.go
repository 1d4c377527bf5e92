package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m model, msgs ...tea.KeyMsg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestPanels_DigitKeysSwitch(t *testing.T) {
	m := initialModel(nil)
	for _, tt := range []struct {
		key  string
		want Panel
	}{{"1", PanelTools}, {"2", PanelElements}, {"3", PanelProperties}, {"0", PanelCanvas}} {
		m = press(m, runes(tt.key))
		if m.activePanel != tt.want {
			t.Fatalf("key %s: got %v, want %v", tt.key, m.activePanel, tt.want)
		}
	}
}

func TestToolsPanel_SelectsTool(t *testing.T) {
	m := initialModel(nil)
	m = press(m, runes("1"), keyDown, keyDown, keyEnter)
	if m.tools.active != ToolRectangle {
		t.Fatalf("tool: got %v, want Rectangle", m.tools.active)
	}
}

func TestElementsPanel_SelectAndDelete(t *testing.T) {
	m := initialModel(nil)
	a := m.canvas.Add(NewText(m.canvas.NextID(), Coord{0, 0}, "a"))
	b := m.canvas.Add(NewText(m.canvas.NextID(), Coord{0, 1}, "b"))

	m = press(m, runes("2"), keyDown, keyEnter)
	if !m.selection.IsSelected(b) || m.selection.IsSelected(a) {
		t.Fatalf("selection: %v", m.selection.IDs())
	}

	m = press(m, runes("d"))
	if m.canvas.Get(b) != nil || m.canvas.Len() != 1 {
		t.Fatalf("delete from panel failed")
	}
	if m.elementsCursor != 0 {
		t.Fatalf("cursor after delete: %d", m.elementsCursor)
	}
}

func TestPropertiesPanel_NumericAndChoice(t *testing.T) {
	m := initialModel(nil)
	id := m.canvas.Add(NewRectangle(m.canvas.NextID(), Coord{2, 2}, 4, 2))
	m.selection.SelectOnly(id)

	// x, y, width, height, border
	m = press(m, runes("3"), keyDown, keyDown, keyRight, keyRight)
	r := m.canvas.Get(id).(*Rectangle)
	if r.Width != 6 {
		t.Fatalf("width: got %d, want 6", r.Width)
	}

	m = press(m, keyDown, keyDown, keyRight)
	if r := m.canvas.Get(id).(*Rectangle); r.BorderStyle != BorderDouble {
		t.Fatalf("border: got %v", r.BorderStyle)
	}

	m = press(m, runes("u"))
	if r := m.canvas.Get(id).(*Rectangle); r.BorderStyle != BorderSingle || r.Width != 6 {
		t.Fatalf("after undo: %+v", r)
	}
}

func TestPropertiesPanel_TypedEntryValidates(t *testing.T) {
	m := initialModel(nil)
	id := m.canvas.Add(NewTable(m.canvas.NextID(), Coord{0, 0}, 2, 2))
	m.selection.SelectOnly(id)

	// x, y, rows
	m = press(m, runes("3"), keyDown, keyDown, keyEnter, runes("25"), keyEnter)
	if m.errorMessage != "Error: Rows must be between 1 and 20" {
		t.Fatalf("error: %q", m.errorMessage)
	}
	if tbl := m.canvas.Get(id).(*Table); tbl.Rows != 2 {
		t.Fatalf("rows changed on invalid input: %d", tbl.Rows)
	}

	m = press(m, keyEnter, runes("4"), keyEnter)
	if tbl := m.canvas.Get(id).(*Table); tbl.Rows != 4 || len(tbl.Cells) != 4 {
		t.Fatalf("rows after valid input: %d", tbl.Rows)
	}
}

func TestPropertiesPanel_PositionCannotGoNegative(t *testing.T) {
	m := initialModel(nil)
	id := m.canvas.Add(NewText(m.canvas.NextID(), Coord{0, 3}, "x"))
	m.selection.SelectOnly(id)
	m = press(m, runes("3"), keyLeft)
	if m.errorMessage == "" {
		t.Fatalf("expected range error")
	}
	if pos := m.canvas.Get(id).(*Text).Position; pos != (Coord{0, 3}) {
		t.Fatalf("position changed: %v", pos)
	}
}

func TestSetChoiceProperty_ArrowHeads(t *testing.T) {
	a := NewArrow(0, pathSegments(Coord{0, 0}, Coord{3, 0}))
	if err := setChoiceProperty(a, "start_head", "on"); err != nil || !a.StartHead {
		t.Fatalf("start_head on: %v %v", err, a.StartHead)
	}
	if err := setChoiceProperty(a, "end_head", "sideways"); err == nil {
		t.Fatalf("expected error for bad head value")
	}
	if !a.EndHead {
		t.Fatalf("failed assignment mutated end head")
	}
	r := NewRectangle(1, Coord{}, 2, 2)
	if err := setChoiceProperty(r, "border_style", "Wavy"); err == nil || err.Error() != "Invalid border style: Wavy" {
		t.Fatalf("bad border error: %v", err)
	}
}

func TestTableEditor_EditCommitAndRestore(t *testing.T) {
	m := initialModel(nil)
	id := m.canvas.Add(NewTable(m.canvas.NextID(), Coord{0, 0}, 2, 2))
	m.selection.SelectOnly(id)

	m = press(m, keyEnter)
	if !m.tableEditor.active {
		t.Fatalf("enter on a selected table did not open the editor")
	}

	// cell (1,1): replace "Cell 2" with "Cell 2!" then fix the cursor
	m = press(m, keyDown, keyRight, keyEnter, runes("!"), keyLeft, keyLeft,
		tea.KeyMsg{Type: tea.KeyBackspace}, runes("X"), keyEnter)
	tbl := m.canvas.Get(id).(*Table)
	if got := tbl.Cell(1, 1); got != "CellX2!" {
		t.Fatalf("cell: got %q", got)
	}
	if len(m.undoStack) != 1 {
		t.Fatalf("cell edit not recorded: %d", len(m.undoStack))
	}

	m = press(m, keyEnter, runes("zzz"), keyEsc)
	if got := m.canvas.Get(id).(*Table).Cell(1, 1); got != "CellX2!" {
		t.Fatalf("esc did not restore: %q", got)
	}

	m = press(m, runes("q"))
	if m.tableEditor.active {
		t.Fatalf("q did not leave the editor")
	}

	m = press(m, runes("u"))
	if got := m.canvas.Get(id).(*Table).Cell(1, 1); got != "Cell 2" {
		t.Fatalf("undo cell edit: got %q", got)
	}
}
