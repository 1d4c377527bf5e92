package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"
)

// tableEditor is the cell cursor over one table. While editing, typed text
// is written into the cell live and recorded as a single edit on commit.
type tableEditor struct {
	active   bool
	table    *Table
	row      int
	col      int
	editing  bool
	buffer   string
	pos      int // byte offset of the text cursor in buffer
	original string
}

func (te *tableEditor) open(t *Table) {
	*te = tableEditor{active: true, table: t}
}

// close drops any uncommitted cell text.
func (te *tableEditor) close() {
	if te.editing && te.table != nil {
		te.table.SetCell(te.row, te.col, te.original)
	}
	*te = tableEditor{}
}

func (te *tableEditor) move(dRow, dCol int) {
	te.row = max(0, min(te.row+dRow, te.table.Rows-1))
	te.col = max(0, min(te.col+dCol, te.table.Cols-1))
}

func (te *tableEditor) startEdit() {
	te.editing = true
	te.original = te.table.Cell(te.row, te.col)
	te.buffer = te.original
	te.pos = len(te.buffer)
}

func (te *tableEditor) cancelEdit() {
	te.table.SetCell(te.row, te.col, te.original)
	te.editing = false
}

func (te *tableEditor) setBuffer(s string, pos int) {
	te.buffer = s
	te.pos = pos
	te.table.SetCell(te.row, te.col, s)
}

func (te *tableEditor) insert(s string) {
	te.setBuffer(te.buffer[:te.pos]+s+te.buffer[te.pos:], te.pos+len(s))
}

func (te *tableEditor) backspace() {
	head := dropLastGrapheme(te.buffer[:te.pos])
	te.setBuffer(head+te.buffer[te.pos:], len(head))
}

func (te *tableEditor) deleteForward() {
	if te.pos >= len(te.buffer) {
		return
	}
	te.setBuffer(te.buffer[:te.pos]+te.buffer[te.pos+nextGraphemeLen(te.buffer[te.pos:]):], te.pos)
}

func (te *tableEditor) cursorLeft() {
	te.pos = len(dropLastGrapheme(te.buffer[:te.pos]))
}

func (te *tableEditor) cursorRight() {
	if te.pos < len(te.buffer) {
		te.pos += nextGraphemeLen(te.buffer[te.pos:])
	}
}

// nextGraphemeLen is the byte length of the first grapheme cluster in s.
func nextGraphemeLen(s string) int {
	g := uniseg.NewGraphemes(s)
	if !g.Next() {
		return 0
	}
	_, end := g.Positions()
	return end
}

// cursor is the canvas position of the edit caret, or the origin of the
// highlighted cell when not editing.
func (te *tableEditor) cursor() (Coord, bool) {
	if !te.active || te.table == nil {
		return Coord{}, false
	}
	origin := te.table.cellOrigin(te.row, te.col)
	if te.editing {
		origin = origin.Add(utf8.RuneCountInString(te.buffer[:te.pos]), 0)
	}
	return origin, true
}

type tableEditorHandler struct{}

func (tableEditorHandler) HandleKey(m *model, msg tea.KeyMsg) EventResult {
	te := &m.tableEditor
	if !te.active {
		return ignored
	}
	if te.editing {
		switch msg.Type {
		case tea.KeyEnter:
			m.commitCell()
		case tea.KeyEsc:
			te.cancelEdit()
		case tea.KeyBackspace:
			te.backspace()
		case tea.KeyDelete:
			te.deleteForward()
		case tea.KeyLeft:
			te.cursorLeft()
		case tea.KeyRight:
			te.cursorRight()
		case tea.KeyHome:
			te.pos = 0
		case tea.KeyEnd:
			te.pos = len(te.buffer)
		case tea.KeySpace:
			te.insert(" ")
		case tea.KeyRunes:
			te.insert(string(msg.Runes))
		}
		return consumed
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		te.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		te.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		te.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		te.move(0, 1)
	case key.Matches(msg, m.keys.Enter):
		te.startEdit()
	case msg.Type == tea.KeyEsc, msg.String() == "q":
		te.close()
	}
	return consumed
}

func (tableEditorHandler) HandleMouse(m *model, ev MouseEvent) EventResult {
	return ignored
}

func (m *model) commitCell() {
	te := &m.tableEditor
	te.editing = false
	if te.buffer == te.original {
		return
	}
	before := te.table.Clone().(*Table)
	before.SetCell(te.row, te.col, te.original)
	m.recordEdit(before, te.table)
	m.successMessage = fmt.Sprintf("Updated cell (%d, %d)", te.row+1, te.col+1)
}
