package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const diagramExt = ".textdraw"

// diagramFile is the on-disk document. Elements carry only their source
// geometry; bounds and glyphs are recomputed after loading.
type diagramFile struct {
	Version  string          `json:"version"`
	Elements []taggedElement `json:"elements"`
	NextID   int             `json:"next_id"`
}

// taggedElement encodes an element as a single-key object naming its kind,
// e.g. {"Rectangle": {...}}.
type taggedElement struct {
	Element
}

func (t taggedElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[ElementKind]Element{t.Kind(): t.Element})
}

func (t *taggedElement) UnmarshalJSON(data []byte) error {
	var raw map[ElementKind]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("element must have exactly one kind, got %d", len(raw))
	}

	for kind, body := range raw {
		var e Element
		switch kind {
		case KindLine:
			e = &Line{}
		case KindRectangle:
			e = &Rectangle{}
		case KindArrow:
			e = &Arrow{EndHead: true}
		case KindText:
			e = &Text{}
		case KindTable:
			e = &Table{HeaderBorder: BorderDouble, BodyBorder: BorderSingle}
		default:
			return fmt.Errorf("unknown element kind %q", kind)
		}
		if err := json.Unmarshal(body, e); err != nil {
			return fmt.Errorf("decode %s: %w", kind, err)
		}
		if err := validateGeometry(e); err != nil {
			return fmt.Errorf("%s %d: %w", kind, e.GetID(), err)
		}
		if tbl, ok := e.(*Table); ok {
			tbl.Resize(tbl.Rows, tbl.Cols)
		}
		e.refresh()
		if b := e.Bounds(); !onCanvas(b.Min) || !onCanvas(b.Max) {
			return fmt.Errorf("%s %d lies outside the canvas", kind, e.GetID())
		}
		t.Element = e
	}
	return nil
}

func onCanvas(p Coord) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= maxCanvasExtent && p.Y <= maxCanvasExtent
}

// validateGeometry checks the source parameters before any bounds or
// glyphs are derived from them.
func validateGeometry(e Element) error {
	switch el := e.(type) {
	case *Line:
		return validateSegments(el.Segments)
	case *Arrow:
		return validateSegments(el.Segments)
	case *Rectangle:
		if el.Width < 1 || el.Height < 1 || el.Width > maxCanvasExtent || el.Height > maxCanvasExtent {
			return fmt.Errorf("invalid size %dx%d", el.Width, el.Height)
		}
	case *Table:
		if el.Rows < 1 || el.Rows > tableMaxRows || el.Cols < 1 || el.Cols > tableMaxCols {
			return fmt.Errorf("table has %dx%d cells", el.Rows, el.Cols)
		}
	}
	return nil
}

func validateSegments(segments []Segment) error {
	if len(segments) == 0 {
		return fmt.Errorf("path has no segments")
	}
	for i, s := range segments {
		if s.Length < 0 || s.Length > maxCanvasExtent {
			return fmt.Errorf("segment %d has length %d", i, s.Length)
		}
	}
	return nil
}

func (c *Canvas) encode() ([]byte, error) {
	doc := diagramFile{
		Version:  Version(),
		Elements: make([]taggedElement, len(c.elements)),
		NextID:   c.nextID,
	}
	for i, e := range c.elements {
		doc.Elements[i] = taggedElement{e}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// decodeDiagram validates a whole document before anything is applied.
func decodeDiagram(data []byte) ([]Element, int, error) {
	var doc diagramFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, 0, err
	}

	elements := make([]Element, 0, len(doc.Elements))
	seen := make(map[int]bool)
	nextID := doc.NextID
	for _, t := range doc.Elements {
		if t.Element == nil {
			return nil, 0, fmt.Errorf("empty element record")
		}
		id := t.GetID()
		if seen[id] {
			return nil, 0, fmt.Errorf("duplicate element id %d", id)
		}
		seen[id] = true
		nextID = max(nextID, id+1)
		elements = append(elements, t.Element)
	}
	return elements, nextID, nil
}

func (c *Canvas) SaveToFile(path string) error {
	data, err := c.encode()
	if err != nil {
		return fmt.Errorf("Failed to serialize diagram: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("Failed to write to file: %s: %w", path, err)
	}
	return nil
}

// LoadFromFile replaces the canvas contents only if the whole file reads
// and parses cleanly.
func (c *Canvas) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Failed to read file: %s: %w", path, err)
	}
	elements, nextID, err := decodeDiagram(data)
	if err != nil {
		return fmt.Errorf("Failed to parse diagram file: %w", err)
	}
	c.Restore(elements, nextID)
	return nil
}

// withDiagramExt appends the document extension unless already present.
func withDiagramExt(name string) string {
	if strings.HasSuffix(name, diagramExt) {
		return name
	}
	return name + diagramExt
}
