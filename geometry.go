package main

// Segment is a straight axis-aligned run of Length+1 cells.
type Segment struct {
	Start     Coord     `json:"start"`
	Length    int       `json:"length"`
	Direction Direction `json:"direction"`
}

// SegmentFromCoords picks the dominant axis between start and end.
// Ties go vertical.
func SegmentFromCoords(start, end Coord) Segment {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if abs(dx) > abs(dy) {
		dir := Right
		if dx < 0 {
			dir = Left
		}
		return Segment{Start: start, Length: abs(dx), Direction: dir}
	}
	dir := Down
	if dy < 0 {
		dir = Up
	}
	return Segment{Start: start, Length: abs(dy), Direction: dir}
}

func (s Segment) End() Coord {
	dx, dy := s.Direction.Delta()
	return s.Start.Add(dx*s.Length, dy*s.Length)
}

// Points enumerates the run from Start to End inclusive.
func (s Segment) Points() []Coord {
	dx, dy := s.Direction.Delta()
	points := make([]Coord, 0, s.Length+1)
	for i := 0; i <= s.Length; i++ {
		points = append(points, s.Start.Add(dx*i, dy*i))
	}
	return points
}

func (s Segment) Bounds() Bounds {
	return boundsFromCorners(s.Start, s.End())
}

func (s *Segment) Translate(dx, dy int) {
	s.Start = s.Start.Add(dx, dy)
}

// segmentsBounds returns the zero Bounds for an empty path.
func segmentsBounds(segments []Segment) Bounds {
	if len(segments) == 0 {
		return Bounds{}
	}
	b := segments[0].Bounds()
	for _, s := range segments[1:] {
		b = b.Union(s.Bounds())
	}
	return b
}

// pathSegments builds the segments for a drag from start to end. A drag
// that moves on both axes becomes an elbow along the dominant axis first.
func pathSegments(start, end Coord) []Segment {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx == 0 || dy == 0 {
		return []Segment{SegmentFromCoords(start, end)}
	}

	var corner Coord
	if abs(dx) > abs(dy) {
		corner = Coord{X: end.X, Y: start.Y}
	} else {
		corner = Coord{X: start.X, Y: end.Y}
	}
	return []Segment{
		SegmentFromCoords(start, corner),
		SegmentFromCoords(corner, end),
	}
}

// dirSet is a bitmask of the directions a path continues in from a cell.
type dirSet uint8

const (
	connUp dirSet = 1 << iota
	connDown
	connLeft
	connRight
)

func dirBit(d Direction) dirSet {
	switch d {
	case Up:
		return connUp
	case Down:
		return connDown
	case Left:
		return connLeft
	default:
		return connRight
	}
}

// orphanGlyph is drawn for a cell with no connections, e.g. a zero-length
// segment.
const orphanGlyph = '·'

var mergeTable = [16]rune{
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

func mergeGlyph(set dirSet) rune {
	return mergeTable[set&0xF]
}

// pathConnections accumulates, for every cell of every segment, the
// directions toward its neighbouring cells on the same segment.
func pathConnections(segments []Segment) (map[Coord]dirSet, []Coord) {
	conns := make(map[Coord]dirSet)
	var order []Coord
	for _, seg := range segments {
		points := seg.Points()
		for i, p := range points {
			if _, seen := conns[p]; !seen {
				conns[p] = 0
				order = append(order, p)
			}
			if i > 0 {
				conns[p] |= dirBit(seg.Direction.Opposite())
			}
			if i < len(points)-1 {
				conns[p] |= dirBit(seg.Direction)
			}
		}
	}
	return conns, order
}

// mergedPathPoints rasterizes a multi-segment path with junction blending.
func mergedPathPoints(segments []Segment) []RenderPoint {
	conns, order := pathConnections(segments)
	points := make([]RenderPoint, 0, len(order))
	for _, p := range order {
		points = append(points, RenderPoint{X: p.X, Y: p.Y, Ch: mergeGlyph(conns[p])})
	}
	return points
}

func arrowHead(d Direction) rune {
	switch d {
	case Up:
		return '▲'
	case Down:
		return '▼'
	case Left:
		return '◀'
	default:
		return '▶'
	}
}

// rectanglePoints draws a closed border from start spanning width x height
// cells beyond start.
func rectanglePoints(start Coord, width, height int, chars BorderChars) []RenderPoint {
	left, top := start.X, start.Y
	right, bottom := left+width, top+height

	points := []RenderPoint{
		{X: left, Y: top, Ch: chars.TopLeft},
		{X: right, Y: top, Ch: chars.TopRight},
		{X: left, Y: bottom, Ch: chars.BottomLeft},
		{X: right, Y: bottom, Ch: chars.BottomRight},
	}
	for x := left + 1; x < right; x++ {
		points = append(points,
			RenderPoint{X: x, Y: top, Ch: chars.Horizontal},
			RenderPoint{X: x, Y: bottom, Ch: chars.Horizontal})
	}
	for y := top + 1; y < bottom; y++ {
		points = append(points,
			RenderPoint{X: left, Y: y, Ch: chars.Vertical},
			RenderPoint{X: right, Y: y, Ch: chars.Vertical})
	}
	return points
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
