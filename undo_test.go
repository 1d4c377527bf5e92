package main

import (
	"strings"
	"testing"
)

func renderModel(m *model) string {
	return strings.Join(m.canvas.RenderRegion(Bounds{Max: Coord{30, 12}}, nil), "\n")
}

func TestUndoRedo_AddDeleteMove(t *testing.T) {
	m := initialModel(nil)
	empty := renderModel(&m)

	id := m.canvas.Add(NewRectangle(m.canvas.NextID(), Coord{1, 1}, 4, 2))
	m.finishDrawing(id)
	drawn := renderModel(&m)

	m.recordMove(m.selection.Nudge(m.canvas, 3, 2))
	moved := renderModel(&m)

	m.deleteSelection()
	if renderModel(&m) != empty {
		t.Fatalf("delete left glyphs behind")
	}

	steps := []string{moved, drawn, empty}
	for i, want := range steps {
		m.undo()
		if got := renderModel(&m); got != want {
			t.Fatalf("undo %d:\n%s\nwant:\n%s", i+1, got, want)
		}
	}
	m.undo()
	if m.errorMessage != "Nothing to undo" {
		t.Fatalf("empty undo message: %q", m.errorMessage)
	}

	for i, want := range []string{drawn, moved, empty} {
		m.redo()
		if got := renderModel(&m); got != want {
			t.Fatalf("redo %d:\n%s\nwant:\n%s", i+1, got, want)
		}
	}
}

func TestUndo_DeleteRestoresZOrder(t *testing.T) {
	m := initialModel(nil)
	var ids []int
	for i := 0; i < 4; i++ {
		ids = append(ids, m.canvas.Add(NewText(m.canvas.NextID(), Coord{0, i}, "t")))
	}
	m.selection.SelectIDs([]int{ids[0], ids[2]})
	m.deleteSelection()
	m.undo()
	for i, e := range m.canvas.Elements() {
		if e.GetID() != ids[i] {
			t.Fatalf("z-order after undo: position %d has id %d, want %d", i, e.GetID(), ids[i])
		}
	}
}

func TestUndo_NewActionClearsRedo(t *testing.T) {
	m := initialModel(nil)
	id := m.canvas.Add(NewText(m.canvas.NextID(), Coord{}, "a"))
	m.finishDrawing(id)
	m.undo()
	if len(m.redoStack) != 1 {
		t.Fatalf("redo stack: %d", len(m.redoStack))
	}
	id = m.canvas.Add(NewText(m.canvas.NextID(), Coord{}, "b"))
	m.finishDrawing(id)
	if len(m.redoStack) != 0 {
		t.Fatalf("redo stack survived a new action")
	}
}

func TestUndo_HistoryIsCapped(t *testing.T) {
	m := initialModel(nil)
	for i := 0; i < maxUndo+25; i++ {
		id := m.canvas.Add(NewText(m.canvas.NextID(), Coord{0, i}, "x"))
		m.finishDrawing(id)
	}
	if len(m.undoStack) != maxUndo {
		t.Fatalf("undo stack: got %d, want %d", len(m.undoStack), maxUndo)
	}
}

func TestUndo_PropertyEdit(t *testing.T) {
	m := initialModel(nil)
	id := m.canvas.Add(NewRectangle(m.canvas.NextID(), Coord{0, 0}, 4, 2))
	m.finishDrawing(id)

	m.applyChoice(m.canvas.Get(id), "border_style", "Double")
	if got := m.canvas.Get(id).(*Rectangle).BorderStyle; got != BorderDouble {
		t.Fatalf("border after edit: %v", got)
	}
	m.undo()
	if got := m.canvas.Get(id).(*Rectangle).BorderStyle; got != BorderSingle {
		t.Fatalf("border after undo: %v", got)
	}
	m.redo()
	if got := m.canvas.Get(id).(*Rectangle).BorderStyle; got != BorderDouble {
		t.Fatalf("border after redo: %v", got)
	}
}

func TestUndo_DocumentReplacement(t *testing.T) {
	m := initialModel(nil)
	id := m.canvas.Add(NewText(m.canvas.NextID(), Coord{}, "keep"))
	m.finishDrawing(id)

	m.executeCommand("new")
	if !m.canvas.IsEmpty() {
		t.Fatalf("new left elements")
	}
	m.undo()
	if m.canvas.Get(id) == nil {
		t.Fatalf("undo of new lost the element")
	}
	if next := m.canvas.NextID(); next != id+1 {
		t.Fatalf("next id after undo: got %d, want %d", next, id+1)
	}
}
