package main

import (
	"strings"
	"testing"
)

func renderElements(elements ...Element) []string {
	c := NewCanvas()
	for _, e := range elements {
		c.Add(e)
	}
	return c.RenderRegion(c.Bounds(), nil)
}

func TestRectangle_RenderFixture(t *testing.T) {
	got := renderElements(NewRectangle(0, Coord{0, 0}, 5, 3))
	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRectangle_BorderStyles(t *testing.T) {
	tests := []struct {
		style BorderStyle
		top   string
	}{
		{BorderSingle, "┌──┐"},
		{BorderDouble, "╔══╗"},
		{BorderBold, "┏━━┓"},
		{BorderRounded, "╭──╮"},
		{BorderNone, "    "},
	}
	for _, tt := range tests {
		r := NewRectangle(0, Coord{0, 0}, 3, 2)
		r.BorderStyle = tt.style
		if got := renderElements(r)[0]; got != tt.top {
			t.Fatalf("%v top edge: got %q, want %q", tt.style, got, tt.top)
		}
	}
}

func TestElements_TranslateKeepsBoundsInSync(t *testing.T) {
	elements := []Element{
		NewLine(0, pathSegments(Coord{1, 1}, Coord{6, 4})),
		NewArrow(1, pathSegments(Coord{8, 2}, Coord{8, 9})),
		NewRectangle(2, Coord{3, 3}, 4, 2),
		NewText(3, Coord{2, 7}, "héllo"),
		NewTable(4, Coord{0, 10}, 2, 2),
	}
	for _, e := range elements {
		before := e.Bounds()
		e.Translate(3, -1)
		after := e.Bounds()
		if after.Min != before.Min.Add(3, -1) || after.Max != before.Max.Add(3, -1) {
			t.Fatalf("%s bounds after translate: got %+v, want shift of %+v", e.GetName(), after, before)
		}
		for _, p := range e.Points() {
			if !after.Contains(p.X, p.Y) {
				t.Fatalf("%s point (%d,%d) outside bounds %+v", e.GetName(), p.X, p.Y, after)
			}
		}
	}
}

func TestText_BoundsCountRunes(t *testing.T) {
	txt := NewText(0, Coord{2, 1}, "añb")
	if got := txt.Bounds(); got.Max != (Coord{4, 1}) {
		t.Fatalf("bounds max: got %v, want (4,1)", got.Max)
	}
	empty := NewText(1, Coord{2, 1}, "")
	if got := empty.Bounds(); got.Min != got.Max {
		t.Fatalf("empty text bounds: got %+v", got)
	}
}

func TestArrow_Heads(t *testing.T) {
	a := NewArrow(0, pathSegments(Coord{0, 0}, Coord{4, 0}))
	if got := renderElements(a)[0]; got != "────▶" {
		t.Fatalf("default arrow: got %q", got)
	}

	a.StartHead = true
	if got := renderElements(a)[0]; got != "◀───▶" {
		t.Fatalf("double-headed arrow: got %q", got)
	}

	a.EndHead = false
	if got := renderElements(a)[0]; got != "◀────" {
		t.Fatalf("start-only arrow: got %q", got)
	}

	down := NewArrow(1, pathSegments(Coord{0, 0}, Coord{0, 2}))
	if got := renderElements(down); got[2] != "▼" {
		t.Fatalf("downward arrow: got %q", got)
	}
}

func TestElements_CloneIsDeep(t *testing.T) {
	l := NewLine(0, pathSegments(Coord{0, 0}, Coord{3, 0}))
	c := l.Clone().(*Line)
	c.Translate(5, 5)
	if l.Segments[0].Start != (Coord{0, 0}) {
		t.Fatalf("clone shares segments with original")
	}

	tbl := NewTable(1, Coord{0, 0}, 2, 2)
	ct := tbl.Clone().(*Table)
	ct.SetCell(0, 0, "changed")
	if tbl.Cell(0, 0) != "Header 1" {
		t.Fatalf("clone shares cells with original: %q", tbl.Cell(0, 0))
	}
}

func TestElementNames(t *testing.T) {
	if got := NewRectangle(0, Coord{}, 1, 1).GetName(); got != "Rectangle 1" {
		t.Fatalf("name: got %q, want %q", got, "Rectangle 1")
	}
	if got := NewText(4, Coord{}, "x").GetName(); got != "Text 5" {
		t.Fatalf("name: got %q, want %q", got, "Text 5")
	}
}
