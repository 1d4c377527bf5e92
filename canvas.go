package main

import "strings"

// Canvas owns the diagram's elements. Slice order is z-order: later
// elements draw over earlier ones and win hit tests.
type Canvas struct {
	elements []Element
	nextID   int
}

func NewCanvas() *Canvas {
	return &Canvas{elements: make([]Element, 0)}
}

// NextID hands out ids that are never reused, even after removal.
func (c *Canvas) NextID() int {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Canvas) Add(e Element) int {
	c.elements = append(c.elements, e)
	return e.GetID()
}

// Insert places e at index in z-order, clamped to the valid range.
func (c *Canvas) Insert(index int, e Element) {
	index = max(0, min(index, len(c.elements)))
	c.elements = append(c.elements, nil)
	copy(c.elements[index+1:], c.elements[index:])
	c.elements[index] = e
}

func (c *Canvas) indexOf(id int) int {
	for i, e := range c.elements {
		if e.GetID() == id {
			return i
		}
	}
	return -1
}

// Get returns nil when id is not on the canvas.
func (c *Canvas) Get(id int) Element {
	if i := c.indexOf(id); i >= 0 {
		return c.elements[i]
	}
	return nil
}

func (c *Canvas) Remove(id int) Element {
	i := c.indexOf(id)
	if i < 0 {
		return nil
	}
	removed := c.elements[i]
	c.elements = append(c.elements[:i], c.elements[i+1:]...)
	return removed
}

func (c *Canvas) Elements() []Element {
	return c.elements
}

func (c *Canvas) Len() int {
	return len(c.elements)
}

func (c *Canvas) IsEmpty() bool {
	return len(c.elements) == 0
}

// FindTopmostAt hit-tests bounding boxes from the top of the z-order down.
func (c *Canvas) FindTopmostAt(x, y int) (int, bool) {
	for i := len(c.elements) - 1; i >= 0; i-- {
		if c.elements[i].Bounds().Contains(x, y) {
			return c.elements[i].GetID(), true
		}
	}
	return 0, false
}

// FindFullyInside returns the ids whose bounds lie entirely within area.
// Partially overlapping elements are excluded.
func (c *Canvas) FindFullyInside(area Bounds) []int {
	var ids []int
	for _, e := range c.elements {
		if e.Bounds().Inside(area) {
			ids = append(ids, e.GetID())
		}
	}
	return ids
}

// Bounds is the envelope of every element, or the zero Bounds when empty.
func (c *Canvas) Bounds() Bounds {
	if len(c.elements) == 0 {
		return Bounds{}
	}
	b := c.elements[0].Bounds()
	for _, e := range c.elements[1:] {
		b = b.Union(e.Bounds())
	}
	return b
}

func (c *Canvas) RenderMap() map[Coord]rune {
	grid := make(map[Coord]rune)
	for _, e := range c.elements {
		for _, p := range e.Points() {
			grid[Coord{X: p.X, Y: p.Y}] = p.Ch
		}
	}
	return grid
}

// Snapshot deep-copies the elements for undo.
func (c *Canvas) Snapshot() ([]Element, int) {
	elements := make([]Element, len(c.elements))
	for i, e := range c.elements {
		elements[i] = e.Clone()
	}
	return elements, c.nextID
}

func (c *Canvas) Restore(elements []Element, nextID int) {
	c.elements = elements
	c.nextID = nextID
}

// RenderRegion prints the glyphs inside area, one string per row, with
// spaces where nothing is drawn.
func (c *Canvas) RenderRegion(area Bounds, include func(Element) bool) []string {
	grid := make(map[Coord]rune)
	for _, e := range c.elements {
		if include != nil && !include(e) {
			continue
		}
		for _, p := range e.Points() {
			grid[Coord{X: p.X, Y: p.Y}] = p.Ch
		}
	}

	lines := make([]string, 0, area.Max.Y-area.Min.Y+1)
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		var sb strings.Builder
		for x := area.Min.X; x <= area.Max.X; x++ {
			if ch, ok := grid[Coord{X: x, Y: y}]; ok {
				sb.WriteRune(ch)
			} else {
				sb.WriteRune(' ')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

type cellStyle int

const (
	styleNormal cellStyle = iota
	styleSelected
	stylePreview
	styleSelectionBox
	styleCursor
)

type cell struct {
	ch    rune
	style cellStyle
}

// renderOptions carries everything drawn over the stored elements.
type renderOptions struct {
	width, height int
	panX, panY    int
	selected      map[int]bool
	moveDX        int
	moveDY        int
	preview       []RenderPoint
	selectionBox  []RenderPoint
	cursor        *Coord
}

// Render rasterizes the visible viewport. Selected elements are shifted
// by the live move offset; stored geometry is not touched.
func (c *Canvas) Render(opts renderOptions) [][]cell {
	height := max(opts.height, 1)
	width := max(opts.width, 1)

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
		for j := range grid[i] {
			grid[i][j] = cell{ch: ' '}
		}
	}

	put := func(x, y int, ch rune, style cellStyle) {
		sx, sy := x-opts.panX, y-opts.panY
		if sy >= 0 && sy < height && sx >= 0 && sx < width {
			grid[sy][sx] = cell{ch: ch, style: style}
		}
	}

	for _, e := range c.elements {
		style := styleNormal
		dx, dy := 0, 0
		if opts.selected[e.GetID()] {
			style = styleSelected
			dx, dy = opts.moveDX, opts.moveDY
		}
		for _, p := range e.Points() {
			put(p.X+dx, p.Y+dy, p.Ch, style)
		}
	}
	for _, p := range opts.preview {
		put(p.X, p.Y, p.Ch, stylePreview)
	}
	for _, p := range opts.selectionBox {
		put(p.X, p.Y, p.Ch, styleSelectionBox)
	}
	if opts.cursor != nil {
		put(opts.cursor.X, opts.cursor.Y, '█', styleCursor)
	}
	return grid
}
