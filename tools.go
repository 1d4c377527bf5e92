package main

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"
)

type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolRectangle
	ToolArrow
	ToolText
	ToolTable
)

var allTools = []Tool{ToolSelect, ToolLine, ToolRectangle, ToolArrow, ToolText, ToolTable}

func (t Tool) String() string {
	switch t {
	case ToolLine:
		return "Line"
	case ToolRectangle:
		return "Rectangle"
	case ToolArrow:
		return "Arrow"
	case ToolText:
		return "Text"
	case ToolTable:
		return "Table"
	default:
		return "Select"
	}
}

func (t Tool) Key() rune {
	switch t {
	case ToolLine:
		return 'l'
	case ToolRectangle:
		return 'r'
	case ToolArrow:
		return 'a'
	case ToolText:
		return 't'
	case ToolTable:
		return 'b'
	default:
		return 's'
	}
}

func toolForKey(r rune) (Tool, bool) {
	for _, t := range allTools {
		if t.Key() == r {
			return t, true
		}
	}
	return ToolSelect, false
}

// DrawingTool creates elements from canvas-space pointer input. Press,
// Drag, Move and Release return Ignored when the tool has nothing to do.
type DrawingTool interface {
	Press(c *Canvas, p Coord) EventResult
	Drag(c *Canvas, p Coord) EventResult
	Move(c *Canvas, p Coord) EventResult
	Release(c *Canvas, p Coord) EventResult
	HandleKey(c *Canvas, msg tea.KeyMsg) EventResult
	Preview() []RenderPoint
	Cancel()
	Active() bool
}

// dragTool draws lines and arrows: press anchors, release commits.
type dragTool struct {
	arrow   bool
	active  bool
	start   Coord
	current Coord
}

func (t *dragTool) Press(c *Canvas, p Coord) EventResult {
	t.active = true
	t.start, t.current = p, p
	return consumed
}

func (t *dragTool) Drag(c *Canvas, p Coord) EventResult {
	if !t.active {
		return ignored
	}
	t.current = p
	return consumed
}

func (t *dragTool) Move(c *Canvas, p Coord) EventResult {
	return ignored
}

// Release at the anchor cancels; a one-cell line is never created.
func (t *dragTool) Release(c *Canvas, p Coord) EventResult {
	if !t.active {
		return ignored
	}
	start := t.start
	t.Cancel()
	if p == start {
		return consumed
	}
	return finishedDrawing(c.Add(t.build(c.NextID(), start, p)))
}

func (t *dragTool) build(id int, start, end Coord) Element {
	segments := pathSegments(start, end)
	if t.arrow {
		return NewArrow(id, segments)
	}
	return NewLine(id, segments)
}

func (t *dragTool) HandleKey(c *Canvas, msg tea.KeyMsg) EventResult {
	if t.active && msg.Type == tea.KeyEsc {
		t.Cancel()
		return consumed
	}
	return ignored
}

func (t *dragTool) Preview() []RenderPoint {
	if !t.active || t.start == t.current {
		return nil
	}
	return t.build(-1, t.start, t.current).Points()
}

func (t *dragTool) Cancel() {
	*t = dragTool{arrow: t.arrow}
}

func (t *dragTool) Active() bool {
	return t.active
}

type anchorState int

const (
	anchorIdle anchorState = iota
	anchorAnchored
	anchorDragging
)

// anchoredTool draws rectangles and tables either click-move-click or
// click-drag-release. Both paths build through the same corners.
type anchoredTool struct {
	table   bool
	border  BorderStyle
	state   anchorState
	start   Coord
	current Coord
}

func (t *anchoredTool) Press(c *Canvas, p Coord) EventResult {
	switch t.state {
	case anchorIdle:
		t.state = anchorAnchored
		t.start, t.current = p, p
		return consumed
	case anchorAnchored:
		if p == t.start {
			t.Cancel()
			return consumed
		}
		return t.commit(c, p)
	default:
		t.Cancel()
		return consumed
	}
}

func (t *anchoredTool) Move(c *Canvas, p Coord) EventResult {
	if t.state != anchorAnchored {
		return ignored
	}
	t.current = p
	return consumed
}

func (t *anchoredTool) Drag(c *Canvas, p Coord) EventResult {
	if t.state == anchorIdle {
		return ignored
	}
	t.state = anchorDragging
	t.current = p
	return consumed
}

func (t *anchoredTool) Release(c *Canvas, p Coord) EventResult {
	switch t.state {
	case anchorDragging:
		if p == t.start {
			t.Cancel()
			return consumed
		}
		return t.commit(c, p)
	case anchorAnchored:
		// the release that ends the anchoring click
		return consumed
	}
	return ignored
}

func (t *anchoredTool) commit(c *Canvas, end Coord) EventResult {
	start := t.start
	t.Cancel()
	if !t.buildable(start, end) {
		return consumed
	}
	return finishedDrawing(c.Add(t.build(c.NextID(), start, end)))
}

// buildable rejects rectangles with no interior span on one axis.
func (t *anchoredTool) buildable(start, end Coord) bool {
	return t.table || (start.X != end.X && start.Y != end.Y)
}

func (t *anchoredTool) build(id int, start, end Coord) Element {
	b := boundsFromCorners(start, end)
	width, height := b.Max.X-b.Min.X, b.Max.Y-b.Min.Y
	if t.table {
		return NewTableFromDrag(id, b.Min, width, height)
	}
	r := NewRectangle(id, b.Min, width, height)
	r.BorderStyle = t.border
	return r
}

func (t *anchoredTool) HandleKey(c *Canvas, msg tea.KeyMsg) EventResult {
	if t.state != anchorIdle && msg.Type == tea.KeyEsc {
		t.Cancel()
		return consumed
	}
	return ignored
}

func (t *anchoredTool) Preview() []RenderPoint {
	if t.state == anchorIdle || !t.buildable(t.start, t.current) {
		return nil
	}
	return t.build(-1, t.start, t.current).Points()
}

func (t *anchoredTool) Cancel() {
	t.state = anchorIdle
	t.start, t.current = Coord{}, Coord{}
}

func (t *anchoredTool) Active() bool {
	return t.state != anchorIdle
}

// textTool collects one line of typed text at the pressed cell.
type textTool struct {
	active bool
	pos    Coord
	input  string
}

func (t *textTool) Press(c *Canvas, p Coord) EventResult {
	if t.active {
		return t.finish(c)
	}
	t.active = true
	t.pos = p
	t.input = ""
	return consumed
}

func (t *textTool) Drag(c *Canvas, p Coord) EventResult    { return ignored }
func (t *textTool) Move(c *Canvas, p Coord) EventResult    { return ignored }
func (t *textTool) Release(c *Canvas, p Coord) EventResult { return ignored }

func (t *textTool) HandleKey(c *Canvas, msg tea.KeyMsg) EventResult {
	if !t.active {
		return ignored
	}
	switch msg.Type {
	case tea.KeyEnter:
		return t.finish(c)
	case tea.KeyEsc:
		t.Cancel()
	case tea.KeyBackspace:
		t.input = dropLastGrapheme(t.input)
	case tea.KeySpace:
		t.input += " "
	case tea.KeyRunes:
		t.input += string(msg.Runes)
	}
	// the session owns the keyboard until it ends
	return consumed
}

// finish commits non-empty input; empty input just closes the session.
func (t *textTool) finish(c *Canvas) EventResult {
	pos, input := t.pos, t.input
	t.Cancel()
	if input == "" {
		return consumed
	}
	return finishedDrawing(c.Add(NewText(c.NextID(), pos, input)))
}

func (t *textTool) Preview() []RenderPoint {
	if !t.active {
		return nil
	}
	return NewText(-1, t.pos, t.input).Points()
}

// Cursor is where the next typed character lands.
func (t *textTool) Cursor() (Coord, bool) {
	if !t.active {
		return Coord{}, false
	}
	return t.pos.Add(utf8.RuneCountInString(t.input), 0), true
}

func (t *textTool) Cancel() {
	*t = textTool{}
}

func (t *textTool) Active() bool {
	return t.active
}

func dropLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}

// ToolState holds the active tool and one instance of each drawing tool so
// in-progress state survives re-renders.
type ToolState struct {
	active Tool
	locked bool
	line   *dragTool
	arrow  *dragTool
	rect   *anchoredTool
	table  *anchoredTool
	text   *textTool
}

func newToolState(border BorderStyle, locked bool) *ToolState {
	return &ToolState{
		active: ToolSelect,
		locked: locked,
		line:   &dragTool{},
		arrow:  &dragTool{arrow: true},
		rect:   &anchoredTool{border: border},
		table:  &anchoredTool{table: true},
		text:   &textTool{},
	}
}

// Current returns nil for the select tool.
func (ts *ToolState) Current() DrawingTool {
	switch ts.active {
	case ToolLine:
		return ts.line
	case ToolArrow:
		return ts.arrow
	case ToolRectangle:
		return ts.rect
	case ToolTable:
		return ts.table
	case ToolText:
		return ts.text
	}
	return nil
}

func (ts *ToolState) Select(t Tool) {
	if cur := ts.Current(); cur != nil {
		cur.Cancel()
	}
	ts.active = t
}

// nextTool steps through the tool list, wrapping around.
func nextTool(t Tool, step int) Tool {
	idx := 0
	for i, candidate := range allTools {
		if candidate == t {
			idx = i
		}
	}
	return allTools[(idx+step+len(allTools))%len(allTools)]
}
