package main

import (
	"fmt"
	"testing"
)

func TestMergeGlyph_AllDirectionSets(t *testing.T) {
	want := map[dirSet]rune{
		0:                                        orphanGlyph,
		connUp:                                   '│',
		connDown:                                 '│',
		connUp | connDown:                        '│',
		connLeft:                                 '─',
		connRight:                                '─',
		connLeft | connRight:                     '─',
		connDown | connRight:                     '┌',
		connDown | connLeft:                      '┐',
		connUp | connRight:                       '└',
		connUp | connLeft:                        '┘',
		connUp | connDown | connRight:            '├',
		connUp | connDown | connLeft:             '┤',
		connDown | connLeft | connRight:          '┬',
		connUp | connLeft | connRight:            '┴',
		connUp | connDown | connLeft | connRight: '┼',
	}
	if len(want) != 16 {
		t.Fatalf("fixture covers %d sets, want 16", len(want))
	}
	for set, ch := range want {
		if got := mergeGlyph(set); got != ch {
			t.Fatalf("mergeGlyph(%04b): got %q, want %q", set, got, ch)
		}
	}
}

// glyphConnections reads a rasterized glyph back into the directions it
// joins. Single-direction glyphs and arrowheads read back as both
// directions of their axis.
func glyphConnections(ch rune) (dirSet, bool) {
	switch ch {
	case '│', '▲', '▼':
		return connUp | connDown, true
	case '─', '◀', '▶':
		return connLeft | connRight, true
	case orphanGlyph:
		return 0, true
	}
	for set, glyph := range mergeTable {
		if glyph == ch {
			return dirSet(set), true
		}
	}
	return 0, false
}

func isArrowHead(ch rune) bool {
	return ch == '▲' || ch == '▼' || ch == '◀' || ch == '▶'
}

// rederiveGlyphs rebuilds each cell's direction set from the neighbouring
// rasterized cells that connect back to it, then merges again. Arrowheads
// are kept as drawn.
func rederiveGlyphs(grid map[Coord]rune) (map[Coord]rune, error) {
	out := make(map[Coord]rune, len(grid))
	for c, ch := range grid {
		if isArrowHead(ch) {
			out[c] = ch
			continue
		}
		var set dirSet
		for _, d := range []Direction{Up, Down, Left, Right} {
			dx, dy := d.Delta()
			n, ok := grid[c.Add(dx, dy)]
			if !ok {
				continue
			}
			conns, ok := glyphConnections(n)
			if !ok {
				return nil, fmt.Errorf("glyph %q at %v not recognized", n, c.Add(dx, dy))
			}
			if conns&dirBit(d.Opposite()) != 0 {
				set |= dirBit(d)
			}
		}
		out[c] = mergeGlyph(set)
	}
	return out, nil
}

func TestPathRasterization_IsIdempotent(t *testing.T) {
	withStart := NewArrow(7, pathSegments(Coord{1, 1}, Coord{6, 4}))
	withStart.StartHead = true

	tests := []struct {
		name string
		e    Element
	}{
		{"right then down", NewLine(0, pathSegments(Coord{0, 0}, Coord{6, 3}))},
		{"left then up", NewLine(1, pathSegments(Coord{6, 3}, Coord{0, 0}))},
		{"up then right", NewLine(2, pathSegments(Coord{0, 6}, Coord{2, 0}))},
		{"down then left", NewLine(3, pathSegments(Coord{2, 0}, Coord{0, 6}))},
		{"backtrack", NewLine(4, []Segment{
			{Start: Coord{0, 0}, Length: 4, Direction: Right},
			{Start: Coord{4, 0}, Length: 2, Direction: Left},
		})},
		{"u-turn", NewLine(5, []Segment{
			{Start: Coord{0, 0}, Length: 4, Direction: Right},
			{Start: Coord{4, 0}, Length: 2, Direction: Down},
			{Start: Coord{4, 2}, Length: 4, Direction: Left},
		})},
		{"arrow", NewArrow(6, pathSegments(Coord{0, 4}, Coord{5, 0}))},
		{"arrow with both heads", withStart},
	}
	for _, tt := range tests {
		grid := make(map[Coord]rune)
		for _, p := range tt.e.Points() {
			grid[Coord{p.X, p.Y}] = p.Ch
		}
		again, err := rederiveGlyphs(grid)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		for c, want := range grid {
			if got := again[c]; got != want {
				t.Fatalf("%s: cell %v re-merged to %q, want %q", tt.name, c, got, want)
			}
		}
	}
}

func TestMergeGlyph_ReadBackIsStable(t *testing.T) {
	for set := dirSet(0); set < 16; set++ {
		ch := mergeGlyph(set)
		conns, ok := glyphConnections(ch)
		if !ok {
			t.Fatalf("glyphConnections(%q): not recognized", ch)
		}
		if got := mergeGlyph(conns); got != ch {
			t.Fatalf("re-merge of %q: got %q", ch, got)
		}
	}
}

func TestSegmentFromCoords(t *testing.T) {
	tests := []struct {
		start, end Coord
		want       Segment
	}{
		{Coord{0, 0}, Coord{5, 0}, Segment{Start: Coord{0, 0}, Length: 5, Direction: Right}},
		{Coord{5, 2}, Coord{1, 3}, Segment{Start: Coord{5, 2}, Length: 4, Direction: Left}},
		{Coord{2, 2}, Coord{2, 0}, Segment{Start: Coord{2, 2}, Length: 2, Direction: Up}},
		// ties go vertical
		{Coord{0, 0}, Coord{3, 3}, Segment{Start: Coord{0, 0}, Length: 3, Direction: Down}},
		{Coord{4, 4}, Coord{4, 4}, Segment{Start: Coord{4, 4}, Length: 0, Direction: Down}},
	}
	for _, tt := range tests {
		if got := SegmentFromCoords(tt.start, tt.end); got != tt.want {
			t.Fatalf("SegmentFromCoords(%v, %v): got %+v, want %+v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestSegment_PointsInclusive(t *testing.T) {
	s := Segment{Start: Coord{3, 1}, Length: 3, Direction: Left}
	got := fmt.Sprint(s.Points())
	want := fmt.Sprint([]Coord{{3, 1}, {2, 1}, {1, 1}, {0, 1}})
	if got != want {
		t.Fatalf("points: got %s, want %s", got, want)
	}
	if end := s.End(); end != (Coord{0, 1}) {
		t.Fatalf("end: got %v, want (0,1)", end)
	}
}

func TestPathSegments_Elbow(t *testing.T) {
	segs := pathSegments(Coord{0, 0}, Coord{6, 2})
	if len(segs) != 2 {
		t.Fatalf("segments: got %d, want 2", len(segs))
	}
	if segs[0].Direction != Right || segs[0].Length != 6 {
		t.Fatalf("first segment: got %+v", segs[0])
	}
	if segs[1].Start != (Coord{6, 0}) || segs[1].Direction != Down || segs[1].Length != 2 {
		t.Fatalf("second segment: got %+v", segs[1])
	}

	straight := pathSegments(Coord{2, 5}, Coord{2, 1})
	if len(straight) != 1 || straight[0].Direction != Up {
		t.Fatalf("straight path: got %+v", straight)
	}
}

func TestMergedPathPoints_CornerGlyph(t *testing.T) {
	points := mergedPathPoints(pathSegments(Coord{0, 0}, Coord{3, 2}))
	grid := make(map[Coord]rune)
	for _, p := range points {
		grid[Coord{p.X, p.Y}] = p.Ch
	}
	checks := map[Coord]rune{
		{0, 0}: '─',
		{2, 0}: '─',
		{3, 0}: '┐',
		{3, 1}: '│',
		{3, 2}: '│',
	}
	for pos, want := range checks {
		if got := grid[pos]; got != want {
			t.Fatalf("glyph at %v: got %q, want %q", pos, got, want)
		}
	}
	if len(points) != 6 {
		t.Fatalf("point count: got %d, want 6 (corner counted once)", len(points))
	}
}

func TestDirection_TextRoundTrip(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", d, err)
		}
		var got Direction
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %s: %v", text, err)
		}
		if got != d {
			t.Fatalf("round trip: got %v, want %v", got, d)
		}
	}
	var d Direction
	if err := d.UnmarshalText([]byte("Sideways")); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
