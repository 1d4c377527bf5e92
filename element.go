package main

import (
	"fmt"
	"unicode/utf8"
)

type ElementKind string

const (
	KindLine      ElementKind = "Line"
	KindRectangle ElementKind = "Rectangle"
	KindArrow     ElementKind = "Arrow"
	KindText      ElementKind = "Text"
	KindTable     ElementKind = "Table"
)

// Element is implemented only by the shape types in this file and table.go.
// Bounds are cached and recomputed whenever geometry changes.
type Element interface {
	GetID() int
	GetName() string
	Kind() ElementKind
	Bounds() Bounds
	Points() []RenderPoint
	Translate(dx, dy int)
	Clone() Element

	// refresh recomputes cached bounds from the source geometry.
	refresh()
}

type Line struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Segments []Segment `json:"segments"`

	bounds Bounds
}

func NewLine(id int, segments []Segment) *Line {
	l := &Line{ID: id, Name: fmt.Sprintf("Line %d", id+1), Segments: segments}
	l.refresh()
	return l
}

func (l *Line) GetID() int        { return l.ID }
func (l *Line) GetName() string   { return l.Name }
func (l *Line) Kind() ElementKind { return KindLine }
func (l *Line) Bounds() Bounds    { return l.bounds }
func (l *Line) refresh()          { l.bounds = segmentsBounds(l.Segments) }

func (l *Line) Points() []RenderPoint {
	return mergedPathPoints(l.Segments)
}

func (l *Line) Translate(dx, dy int) {
	for i := range l.Segments {
		l.Segments[i].Translate(dx, dy)
	}
	l.refresh()
}

func (l *Line) Clone() Element {
	c := *l
	c.Segments = append([]Segment(nil), l.Segments...)
	return &c
}

type Arrow struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Segments  []Segment `json:"segments"`
	StartHead bool      `json:"start_head"`
	EndHead   bool      `json:"end_head"`

	bounds Bounds
}

func NewArrow(id int, segments []Segment) *Arrow {
	a := &Arrow{ID: id, Name: fmt.Sprintf("Arrow %d", id+1), Segments: segments, EndHead: true}
	a.refresh()
	return a
}

func (a *Arrow) GetID() int        { return a.ID }
func (a *Arrow) GetName() string   { return a.Name }
func (a *Arrow) Kind() ElementKind { return KindArrow }
func (a *Arrow) Bounds() Bounds    { return a.bounds }
func (a *Arrow) refresh()          { a.bounds = segmentsBounds(a.Segments) }

// Points blends the path like a Line, then stamps arrowheads over the
// literal endpoints. The end head points along the last segment, the start
// head points back along the first.
func (a *Arrow) Points() []RenderPoint {
	points := mergedPathPoints(a.Segments)
	if len(a.Segments) == 0 {
		return points
	}
	first := a.Segments[0]
	last := a.Segments[len(a.Segments)-1]

	heads := make(map[Coord]rune, 2)
	if a.StartHead {
		heads[first.Start] = arrowHead(first.Direction.Opposite())
	}
	if a.EndHead {
		heads[last.End()] = arrowHead(last.Direction)
	}
	for i, p := range points {
		if ch, ok := heads[Coord{X: p.X, Y: p.Y}]; ok {
			points[i].Ch = ch
		}
	}
	return points
}

func (a *Arrow) Translate(dx, dy int) {
	for i := range a.Segments {
		a.Segments[i].Translate(dx, dy)
	}
	a.refresh()
}

func (a *Arrow) Clone() Element {
	c := *a
	c.Segments = append([]Segment(nil), a.Segments...)
	return &c
}

// Rectangle spans Width x Height cells beyond Start, so the border has
// Width+1 columns.
type Rectangle struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Start       Coord       `json:"start"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	BorderStyle BorderStyle `json:"border_style"`

	bounds Bounds
}

func NewRectangle(id int, start Coord, width, height int) *Rectangle {
	r := &Rectangle{
		ID:     id,
		Name:   fmt.Sprintf("Rectangle %d", id+1),
		Start:  start,
		Width:  width,
		Height: height,
	}
	r.refresh()
	return r
}

func (r *Rectangle) GetID() int        { return r.ID }
func (r *Rectangle) GetName() string   { return r.Name }
func (r *Rectangle) Kind() ElementKind { return KindRectangle }
func (r *Rectangle) Bounds() Bounds    { return r.bounds }

func (r *Rectangle) refresh() {
	r.bounds = Bounds{Min: r.Start, Max: r.Start.Add(r.Width, r.Height)}
}

func (r *Rectangle) Points() []RenderPoint {
	return rectanglePoints(r.Start, r.Width, r.Height, r.BorderStyle.Chars())
}

func (r *Rectangle) Translate(dx, dy int) {
	r.Start = r.Start.Add(dx, dy)
	r.refresh()
}

func (r *Rectangle) Clone() Element {
	c := *r
	return &c
}

type Text struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position Coord  `json:"position"`
	Content  string `json:"text"`

	bounds Bounds
}

func NewText(id int, position Coord, content string) *Text {
	t := &Text{ID: id, Name: fmt.Sprintf("Text %d", id+1), Position: position, Content: content}
	t.refresh()
	return t
}

func (t *Text) GetID() int        { return t.ID }
func (t *Text) GetName() string   { return t.Name }
func (t *Text) Kind() ElementKind { return KindText }
func (t *Text) Bounds() Bounds    { return t.bounds }

func (t *Text) refresh() {
	width := utf8.RuneCountInString(t.Content)
	t.bounds = Bounds{Min: t.Position, Max: t.Position.Add(max(width-1, 0), 0)}
}

func (t *Text) Points() []RenderPoint {
	points := make([]RenderPoint, 0, len(t.Content))
	i := 0
	for _, ch := range t.Content {
		points = append(points, RenderPoint{X: t.Position.X + i, Y: t.Position.Y, Ch: ch})
		i++
	}
	return points
}

func (t *Text) Translate(dx, dy int) {
	t.Position = t.Position.Add(dx, dy)
	t.refresh()
}

func (t *Text) Clone() Element {
	c := *t
	return &c
}

// elementOrigin is the anchor shown and edited as x/y in the properties
// panel.
func elementOrigin(e Element) Coord {
	switch el := e.(type) {
	case *Line:
		if len(el.Segments) > 0 {
			return el.Segments[0].Start
		}
	case *Arrow:
		if len(el.Segments) > 0 {
			return el.Segments[0].Start
		}
	case *Rectangle:
		return el.Start
	case *Text:
		return el.Position
	case *Table:
		return el.Start
	}
	return e.Bounds().Min
}
