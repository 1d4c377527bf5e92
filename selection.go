package main

type SelectionMode int

const (
	SelectionIdle SelectionMode = iota
	SelectionSelecting
	SelectionSelected
	SelectionMoving
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionSelecting:
		return "SELECTING"
	case SelectionSelected:
		return "SELECTED"
	case SelectionMoving:
		return "MOVING"
	default:
		return "IDLE"
	}
}

// Selection tracks the select tool's click/drag/move interaction. It never
// owns elements; every method takes the canvas it operates on.
type Selection struct {
	mode       SelectionMode
	ids        []int
	start      Coord
	current    Coord
	hasDragged bool
	moveStart  Coord
	offsetX    int
	offsetY    int
}

func (s *Selection) Mode() SelectionMode { return s.mode }
func (s *Selection) IDs() []int          { return s.ids }
func (s *Selection) HasSelection() bool  { return len(s.ids) > 0 }

func (s *Selection) IsSelected(id int) bool {
	for _, sel := range s.ids {
		if sel == id {
			return true
		}
	}
	return false
}

func (s *Selection) idSet() map[int]bool {
	set := make(map[int]bool, len(s.ids))
	for _, id := range s.ids {
		set[id] = true
	}
	return set
}

// Reset clears the selection and returns to Idle.
func (s *Selection) Reset() {
	*s = Selection{}
}

// SelectOnly replaces the selection with a single element.
func (s *Selection) SelectOnly(id int) {
	s.Reset()
	s.ids = []int{id}
	s.mode = SelectionSelected
}

// SelectIDs replaces the selection with ids; an empty list leaves Idle.
func (s *Selection) SelectIDs(ids []int) {
	s.Reset()
	if len(ids) == 0 {
		return
	}
	s.ids = append([]int(nil), ids...)
	s.mode = SelectionSelected
}

// Press handles a plain (unmodified) press at p.
func (s *Selection) Press(c *Canvas, p Coord) {
	if s.mode == SelectionSelected && s.StartMove(c, p) {
		return
	}
	s.Reset()
	s.StartSelecting(p)
}

func (s *Selection) StartSelecting(p Coord) {
	s.mode = SelectionSelecting
	s.start = p
	s.current = p
	s.hasDragged = false
}

func (s *Selection) Drag(p Coord) {
	switch s.mode {
	case SelectionSelecting:
		s.current = p
		s.hasDragged = true
	case SelectionMoving:
		s.offsetX = p.X - s.moveStart.X
		s.offsetY = p.Y - s.moveStart.Y
	}
}

// Release ends a selecting or moving gesture and returns the translation
// applied to the selection, if any.
func (s *Selection) Release(c *Canvas, p Coord) (int, int) {
	switch s.mode {
	case SelectionSelecting:
		s.current = p
		s.finishSelecting(c)
	case SelectionMoving:
		s.Drag(p)
		return s.FinishMove(c)
	}
	return 0, 0
}

func (s *Selection) finishSelecting(c *Canvas) {
	if !s.hasDragged || s.start == s.current {
		if id, ok := c.FindTopmostAt(s.start.X, s.start.Y); ok {
			s.SelectOnly(id)
		} else {
			s.Reset()
		}
		return
	}

	ids := c.FindFullyInside(boundsFromCorners(s.start, s.current))
	s.hasDragged = false
	if len(ids) == 0 {
		s.Reset()
		return
	}
	s.ids = ids
	s.mode = SelectionSelected
}

// Toggle adds or removes the element under p without touching the rest of
// the selection.
func (s *Selection) Toggle(c *Canvas, p Coord) {
	id, ok := c.FindTopmostAt(p.X, p.Y)
	if !ok {
		return
	}
	if s.IsSelected(id) {
		s.ids = removeID(s.ids, id)
	} else {
		s.ids = append(s.ids, id)
	}
	s.hasDragged = false
	s.offsetX, s.offsetY = 0, 0
	if len(s.ids) == 0 {
		s.mode = SelectionIdle
	} else {
		s.mode = SelectionSelected
	}
}

// StartMove begins moving when p lies inside any selected element.
func (s *Selection) StartMove(c *Canvas, p Coord) bool {
	for _, id := range s.ids {
		if e := c.Get(id); e != nil && e.Bounds().Contains(p.X, p.Y) {
			s.mode = SelectionMoving
			s.moveStart = p
			s.offsetX, s.offsetY = 0, 0
			return true
		}
	}
	return false
}

// MoveOffset is the uncommitted preview delta, zero unless Moving.
func (s *Selection) MoveOffset(c *Canvas) (int, int) {
	if s.mode != SelectionMoving {
		return 0, 0
	}
	return clampDelta(c, s.ids, s.offsetX, s.offsetY)
}

// FinishMove commits the move offset to every selected element.
func (s *Selection) FinishMove(c *Canvas) (int, int) {
	dx, dy := clampDelta(c, s.ids, s.offsetX, s.offsetY)
	s.offsetX, s.offsetY = 0, 0
	s.mode = SelectionSelected
	s.translate(c, dx, dy)
	return dx, dy
}

// Nudge translates the selection directly, outside the press/release
// machine.
func (s *Selection) Nudge(c *Canvas, dx, dy int) (int, int) {
	if s.mode != SelectionSelected && s.mode != SelectionMoving {
		return 0, 0
	}
	dx, dy = clampDelta(c, s.ids, dx, dy)
	s.translate(c, dx, dy)
	return dx, dy
}

func (s *Selection) translate(c *Canvas, dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	for _, id := range s.ids {
		if e := c.Get(id); e != nil {
			e.Translate(dx, dy)
		}
	}
}

// DeleteSelected removes every selected element and returns them in their
// original z-order positions.
func (s *Selection) DeleteSelected(c *Canvas) []removedElement {
	var removed []removedElement
	for i := len(c.elements) - 1; i >= 0; i-- {
		e := c.elements[i]
		if s.IsSelected(e.GetID()) {
			c.Remove(e.GetID())
			removed = append([]removedElement{{index: i, element: e}}, removed...)
		}
	}
	s.Reset()
	return removed
}

// Prune drops ids that no longer exist on the canvas.
func (s *Selection) Prune(c *Canvas) {
	kept := s.ids[:0]
	for _, id := range s.ids {
		if c.Get(id) != nil {
			kept = append(kept, id)
		}
	}
	s.ids = kept
	if len(s.ids) == 0 {
		s.Reset()
	}
}

// BoxPoints draws the drag rectangle, only while Selecting.
func (s *Selection) BoxPoints() []RenderPoint {
	if s.mode != SelectionSelecting || !s.hasDragged {
		return nil
	}
	b := boundsFromCorners(s.start, s.current)
	chars := BorderChars{
		Horizontal: '─', Vertical: '│',
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	}
	return rectanglePoints(b.Min, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, chars)
}

// clampDelta limits a translation so every element of ids stays within
// 0..maxCanvasExtent.
func clampDelta(c *Canvas, ids []int, dx, dy int) (int, int) {
	for _, id := range ids {
		e := c.Get(id)
		if e == nil {
			continue
		}
		b := e.Bounds()
		dx = min(max(dx, -b.Min.X), maxCanvasExtent-b.Max.X)
		dy = min(max(dy, -b.Min.Y), maxCanvasExtent-b.Max.Y)
	}
	return dx, dy
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type removedElement struct {
	index   int
	element Element
}
