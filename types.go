package main

import "fmt"

// Coord is a canvas cell. Canvas coordinates are never negative.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is an inclusive envelope.
type Bounds struct {
	Min Coord
	Max Coord
}

func (b Bounds) Contains(x, y int) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

// Inside reports whether b lies entirely within outer.
func (b Bounds) Inside(outer Bounds) bool {
	return b.Min.X >= outer.Min.X && b.Max.X <= outer.Max.X &&
		b.Min.Y >= outer.Min.Y && b.Max.Y <= outer.Max.Y
}

func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: Coord{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y)},
		Max: Coord{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y)},
	}
}

// boundsFromCorners normalizes two arbitrary corners into Bounds.
func boundsFromCorners(a, b Coord) Bounds {
	return Bounds{
		Min: Coord{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Coord{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	name, ok := directionNames[d]
	if !ok {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(name), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	for dir, name := range directionNames {
		if name == string(text) {
			*d = dir
			return nil
		}
	}
	return fmt.Errorf("invalid direction %q", string(text))
}

// RenderPoint is one glyph of a rasterized element.
type RenderPoint struct {
	X, Y int
	Ch   rune
}

type model struct {
	width           int
	height          int
	canvas          *Canvas
	selection       Selection
	tools           *ToolState
	activePanel     Panel
	panX            int
	panY            int
	pointer         Coord
	pointerOnCanvas bool
	help            bool
	helpScroll      int
	command         commandLine
	tableEditor     tableEditor
	toolsCursor     int
	elementsCursor  int
	propsCursor     int
	propInput       propertyInput
	undoStack       []Action
	redoStack       []Action
	filename        string
	modified        bool
	quitArmed       bool
	errorMessage    string
	successMessage  string
	config          *Config
	keys            KeyMap
	styles          Styles
}

type commandLine struct {
	active bool
	input  string
}

// propertyInput is typed entry into a numeric property field.
type propertyInput struct {
	active bool
	key    string
	input  string
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type AddElementData struct {
	Index   int
	Element Element
}

type DeleteElementsData struct {
	Removed []removedElement
}

type MoveElementsData struct {
	IDs    []int
	DeltaX int
	DeltaY int
}

type EditElementData struct {
	Element Element
}

type DocumentData struct {
	Elements []Element
	NextID   int
	Filename string
}
