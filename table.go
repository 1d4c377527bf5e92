package main

import (
	"fmt"
	"unicode/utf8"
)

const (
	tableCellWidth  = 12
	tableCellHeight = 2

	tableMaxRows = 20
	tableMaxCols = 10
)

// Table is a grid of text cells. Row 0 is the header. Columns grow to fit
// their widest cell, never narrower than tableCellWidth.
type Table struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Start        Coord       `json:"start"`
	Rows         int         `json:"rows"`
	Cols         int         `json:"cols"`
	Cells        [][]string  `json:"cells"`
	HeaderBorder BorderStyle `json:"header_border"`
	BodyBorder   BorderStyle `json:"body_border"`

	bounds Bounds
}

// tableDimensions returns how many default-sized cells fit in a span.
func tableDimensions(width, height int) (rows, cols int) {
	cols = max((width-1)/(tableCellWidth+1), 1)
	rows = max((height-1)/(tableCellHeight+1), 1)
	return rows, cols
}

func defaultCellText(row, col, cols int) string {
	if row == 0 {
		return fmt.Sprintf("Header %d", col+1)
	}
	return fmt.Sprintf("Cell %d", (row-1)*cols+col+1)
}

func NewTable(id int, start Coord, rows, cols int) *Table {
	t := &Table{
		ID:           id,
		Name:         fmt.Sprintf("Table %d", id+1),
		Start:        start,
		HeaderBorder: BorderDouble,
		BodyBorder:   BorderSingle,
	}
	t.Resize(rows, cols)
	return t
}

func NewTableFromDrag(id int, start Coord, width, height int) *Table {
	rows, cols := tableDimensions(width, height)
	return NewTable(id, start, rows, cols)
}

func (t *Table) GetID() int        { return t.ID }
func (t *Table) GetName() string   { return t.Name }
func (t *Table) Kind() ElementKind { return KindTable }
func (t *Table) Bounds() Bounds    { return t.bounds }

func (t *Table) refresh() {
	t.bounds = Bounds{Min: t.Start, Max: t.Start.Add(t.Width(), t.Height())}
}

func (t *Table) columnWidths() []int {
	widths := make([]int, t.Cols)
	for i := range widths {
		widths[i] = tableCellWidth
	}
	for _, row := range t.Cells {
		for c, text := range row {
			if c < len(widths) {
				widths[c] = max(widths[c], utf8.RuneCountInString(text))
			}
		}
	}
	return widths
}

// Width is the span from the left border to the right border.
func (t *Table) Width() int {
	width := t.Cols
	for _, w := range t.columnWidths() {
		width += w
	}
	return width
}

func (t *Table) Height() int {
	return t.Rows * (tableCellHeight + 1)
}

// Resize grows or trims the cell grid, filling new cells with defaults.
func (t *Table) Resize(rows, cols int) {
	t.Rows, t.Cols = rows, cols

	for len(t.Cells) < rows {
		t.Cells = append(t.Cells, nil)
	}
	t.Cells = t.Cells[:rows]
	for r := range t.Cells {
		for len(t.Cells[r]) < cols {
			t.Cells[r] = append(t.Cells[r], defaultCellText(r, len(t.Cells[r]), cols))
		}
		t.Cells[r] = t.Cells[r][:cols]
	}
	t.refresh()
}

func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Cells) || col < 0 || col >= len(t.Cells[row]) {
		return ""
	}
	return t.Cells[row][col]
}

func (t *Table) SetCell(row, col int, text string) {
	if row < 0 || row >= len(t.Cells) || col < 0 || col >= len(t.Cells[row]) {
		return
	}
	t.Cells[row][col] = text
	t.refresh()
}

// cellOrigin is the first content cell of (row, col).
func (t *Table) cellOrigin(row, col int) Coord {
	x := t.Start.X + 1
	for i, w := range t.columnWidths() {
		if i == col {
			break
		}
		x += w + 1
	}
	return Coord{X: x, Y: t.Start.Y + row*(tableCellHeight+1) + 1}
}

func (t *Table) Translate(dx, dy int) {
	t.Start = t.Start.Add(dx, dy)
	t.refresh()
}

func (t *Table) Clone() Element {
	c := *t
	c.Cells = make([][]string, len(t.Cells))
	for i, row := range t.Cells {
		c.Cells[i] = append([]string(nil), row...)
	}
	return &c
}

func (t *Table) Points() []RenderPoint {
	widths := t.columnWidths()
	var points []RenderPoint

	for r := 0; r < t.Rows; r++ {
		for c := 0; c < t.Cols; c++ {
			origin := t.cellOrigin(r, c)
			i := 0
			for _, ch := range t.Cell(r, c) {
				points = append(points, RenderPoint{X: origin.X + i, Y: origin.Y, Ch: ch})
				i++
			}
		}
	}
	return t.appendBorders(points, widths)
}

// borderRow draws one full horizontal rule: left glyph, runs of
// horizontals separated by mid glyphs, right glyph.
func borderRow(points []RenderPoint, x, y int, widths []int, chars BorderChars, left, mid, right rune) []RenderPoint {
	points = append(points, RenderPoint{X: x, Y: y, Ch: left})
	x++
	for c, w := range widths {
		for i := 0; i < w; i++ {
			points = append(points, RenderPoint{X: x, Y: y, Ch: chars.Horizontal})
			x++
		}
		end := mid
		if c == len(widths)-1 {
			end = right
		}
		points = append(points, RenderPoint{X: x, Y: y, Ch: end})
		x++
	}
	return points
}

func (t *Table) appendBorders(points []RenderPoint, widths []int) []RenderPoint {
	x, y := t.Start.X, t.Start.Y
	header := t.HeaderBorder.Chars()
	body := t.BodyBorder.Chars()

	for r := 0; r < t.Rows; r++ {
		chars := body
		if r == 0 {
			chars = header
		}
		rowY := y + r*(tableCellHeight+1)

		if r == 0 {
			points = borderRow(points, x, rowY, widths, chars, chars.TopLeft, chars.TopT, chars.TopRight)
		}

		for dy := 1; dy <= tableCellHeight; dy++ {
			cx := x
			points = append(points, RenderPoint{X: cx, Y: rowY + dy, Ch: chars.Vertical})
			for _, w := range widths {
				cx += w + 1
				points = append(points, RenderPoint{X: cx, Y: rowY + dy, Ch: chars.Vertical})
			}
		}

		bottomY := rowY + tableCellHeight + 1
		switch {
		case r == t.Rows-1:
			points = borderRow(points, x, bottomY, widths, chars, chars.BottomLeft, chars.BottomT, chars.BottomRight)
		case r == 0 && t.HeaderBorder != t.BodyBorder:
			// A header in its own style is closed off completely.
			points = borderRow(points, x, bottomY, widths, chars, chars.BottomLeft, chars.BottomT, chars.BottomRight)
		default:
			points = borderRow(points, x, bottomY, widths, chars, chars.LeftT, chars.Cross, chars.RightT)
		}
	}
	return points
}
