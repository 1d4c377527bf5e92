package main

import "log"

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	action := Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	}
	m.undoStack = append(m.undoStack, action)
	if len(m.undoStack) > maxUndo {
		m.undoStack = m.undoStack[len(m.undoStack)-maxUndo:]
	}
	m.redoStack = m.redoStack[:0]
	m.modified = true
}

// recordEdit stores before/after copies of one element.
func (m *model) recordEdit(before, after Element) {
	m.recordAction(ActionEditElement, EditElementData{Element: after.Clone()}, EditElementData{Element: before})
}

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		m.errorMessage = "Nothing to undo"
		return
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	switch action.Type {
	case ActionAddElement:
		data := action.Data.(AddElementData)
		m.canvas.Remove(data.Element.GetID())
	case ActionDeleteElements:
		data := action.Data.(DeleteElementsData)
		for _, r := range data.Removed {
			m.canvas.Insert(r.index, r.element.Clone())
		}
	case ActionMoveElements:
		data := action.Data.(MoveElementsData)
		m.translateElements(data.IDs, -data.DeltaX, -data.DeltaY)
	case ActionEditElement:
		m.replaceElement(action.Inverse.(EditElementData).Element)
	case ActionReplaceDocument:
		m.applyDocument(action.Inverse.(DocumentData))
	}

	m.redoStack = append(m.redoStack, action)
	m.afterHistoryChange("Undo")
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		m.errorMessage = "Nothing to redo"
		return
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	switch action.Type {
	case ActionAddElement:
		data := action.Data.(AddElementData)
		m.canvas.Insert(data.Index, data.Element.Clone())
	case ActionDeleteElements:
		data := action.Data.(DeleteElementsData)
		for _, r := range data.Removed {
			m.canvas.Remove(r.element.GetID())
		}
	case ActionMoveElements:
		data := action.Data.(MoveElementsData)
		m.translateElements(data.IDs, data.DeltaX, data.DeltaY)
	case ActionEditElement:
		m.replaceElement(action.Data.(EditElementData).Element)
	case ActionReplaceDocument:
		m.applyDocument(action.Data.(DocumentData))
	}

	m.undoStack = append(m.undoStack, action)
	m.afterHistoryChange("Redo")
}

func (m *model) afterHistoryChange(what string) {
	m.selection.Prune(m.canvas)
	m.tableEditor.close()
	m.modified = true
	m.successMessage = what
	log.Printf("%s: %d undo, %d redo", what, len(m.undoStack), len(m.redoStack))
}

func (m *model) translateElements(ids []int, dx, dy int) {
	for _, id := range ids {
		if e := m.canvas.Get(id); e != nil {
			e.Translate(dx, dy)
		}
	}
}

func (m *model) replaceElement(e Element) {
	i := m.canvas.indexOf(e.GetID())
	if i < 0 {
		return
	}
	m.canvas.elements[i] = e.Clone()
}

func (m *model) applyDocument(doc DocumentData) {
	elements := make([]Element, len(doc.Elements))
	for i, e := range doc.Elements {
		elements[i] = e.Clone()
	}
	m.canvas.Restore(elements, doc.NextID)
	m.filename = doc.Filename
}

// replaceDocument swaps in a whole new element list as one undoable step.
func (m *model) replaceDocument(elements []Element, nextID int, filename string) {
	oldElements, oldNext := m.canvas.Snapshot()
	before := DocumentData{Elements: oldElements, NextID: oldNext, Filename: m.filename}

	m.canvas.Restore(elements, nextID)
	m.filename = filename
	newElements, newNext := m.canvas.Snapshot()
	after := DocumentData{Elements: newElements, NextID: newNext, Filename: filename}

	m.recordAction(ActionReplaceDocument, after, before)
	m.selection.Reset()
	m.tableEditor.close()
}
