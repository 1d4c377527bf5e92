package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Character cell size in the exported image.
const (
	pngCharWidth  = 8.0
	pngCharHeight = 16.0
	pngPadding    = 2
)

func (c *Canvas) exportVisualTXT(filename string) error {
	if c.IsEmpty() {
		return fmt.Errorf("nothing to export")
	}
	text := strings.Join(c.RenderRegion(c.Bounds(), nil), "\n") + "\n"
	if err := os.WriteFile(filename, []byte(text), 0644); err != nil {
		return fmt.Errorf("Failed to write to file: %s: %w", filename, err)
	}
	return nil
}

// ExportToPNG draws the whole diagram on a white background. Line-drawing
// glyphs are stroked so borders join regardless of font coverage.
func (c *Canvas) ExportToPNG(filename string) error {
	if c.IsEmpty() {
		return fmt.Errorf("nothing to export")
	}

	b := c.Bounds()
	minX, minY := b.Min.X-pngPadding, b.Min.Y-pngPadding
	cols := b.Max.X - b.Min.X + 1 + 2*pngPadding
	rows := b.Max.Y - b.Min.Y + 1 + 2*pngPadding

	imageWidth := int(float64(cols) * pngCharWidth)
	imageHeight := int(float64(rows) * pngCharHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for pos, ch := range c.RenderMap() {
		x := float64(pos.X-minX) * pngCharWidth
		y := float64(pos.Y-minY) * pngCharHeight
		drawGlyphPNG(dc, ch, x, y)
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("Failed to write to file: %s: %w", filename, err)
	}
	return nil
}

type strokeGlyph struct {
	conns dirSet
	width float64
}

var strokeGlyphs = buildStrokeGlyphs()

func buildStrokeGlyphs() map[rune]strokeGlyph {
	glyphs := make(map[rune]strokeGlyph)
	for set, ch := range mergeTable {
		if set != 0 {
			glyphs[ch] = strokeGlyph{conns: dirSet(set), width: 1}
		}
	}
	glyphs['│'] = strokeGlyph{conns: connUp | connDown, width: 1}
	glyphs['─'] = strokeGlyph{conns: connLeft | connRight, width: 1}

	widths := map[BorderStyle]float64{BorderDouble: 3, BorderBold: 2, BorderRounded: 1}
	for style, width := range widths {
		ch := style.Chars()
		add := func(r rune, set dirSet) {
			if _, ok := glyphs[r]; !ok {
				glyphs[r] = strokeGlyph{conns: set, width: width}
			}
		}
		add(ch.Horizontal, connLeft|connRight)
		add(ch.Vertical, connUp|connDown)
		add(ch.TopLeft, connDown|connRight)
		add(ch.TopRight, connDown|connLeft)
		add(ch.BottomLeft, connUp|connRight)
		add(ch.BottomRight, connUp|connLeft)
		add(ch.Cross, connUp|connDown|connLeft|connRight)
		add(ch.LeftT, connUp|connDown|connRight)
		add(ch.RightT, connUp|connDown|connLeft)
		add(ch.TopT, connDown|connLeft|connRight)
		add(ch.BottomT, connUp|connLeft|connRight)
	}
	return glyphs
}

func drawGlyphPNG(dc *gg.Context, ch rune, x, y float64) {
	cx, cy := x+pngCharWidth/2, y+pngCharHeight/2

	if g, ok := strokeGlyphs[ch]; ok {
		dc.SetLineWidth(g.width)
		if g.conns&connUp != 0 {
			dc.DrawLine(cx, cy, cx, y)
		}
		if g.conns&connDown != 0 {
			dc.DrawLine(cx, cy, cx, y+pngCharHeight)
		}
		if g.conns&connLeft != 0 {
			dc.DrawLine(cx, cy, x, cy)
		}
		if g.conns&connRight != 0 {
			dc.DrawLine(cx, cy, x+pngCharWidth, cy)
		}
		dc.Stroke()
		return
	}

	switch ch {
	case ' ':
	case orphanGlyph:
		dc.DrawCircle(cx, cy, 1.5)
		dc.Fill()
	case '▲':
		drawTrianglePNG(dc, cx, y+3, x+1, y+pngCharHeight-3, x+pngCharWidth-1, y+pngCharHeight-3)
	case '▼':
		drawTrianglePNG(dc, cx, y+pngCharHeight-3, x+1, y+3, x+pngCharWidth-1, y+3)
	case '◀':
		drawTrianglePNG(dc, x, cy, x+pngCharWidth, cy-4, x+pngCharWidth, cy+4)
	case '▶':
		drawTrianglePNG(dc, x+pngCharWidth, cy, x, cy-4, x, cy+4)
	default:
		dc.DrawStringAnchored(string(ch), cx, cy, 0.5, 0.35)
	}
}

func drawTrianglePNG(dc *gg.Context, x1, y1, x2, y2, x3, y3 float64) {
	dc.MoveTo(x1, y1)
	dc.LineTo(x2, y2)
	dc.LineTo(x3, y3)
	dc.ClosePath()
	dc.Fill()
}

// exportFile picks the format from the extension.
func (m *model) exportFile(path string) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = m.canvas.ExportToPNG(path)
	} else {
		err = m.canvas.exportVisualTXT(path)
	}
	if err != nil {
		return err
	}
	log.Printf("exported %s", path)
	return nil
}
