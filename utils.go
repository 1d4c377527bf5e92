package main

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanClipboardText normalizes line endings, expands tabs and drops other
// control characters.
func cleanClipboardText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r >= 32 {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// clipboardLines splits cleaned text into lines, keeping interior blank
// lines but dropping trailing ones.
func clipboardLines(text string) []string {
	lines := strings.Split(cleanClipboardText(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// copyText renders the selection, or the whole diagram when nothing is
// selected, as plain text.
func (m *model) copyText() (string, error) {
	if m.canvas.IsEmpty() {
		return "", fmt.Errorf("nothing to copy")
	}
	area := m.canvas.Bounds()
	var include func(Element) bool
	if m.selection.HasSelection() {
		selected := m.selection.idSet()
		include = func(e Element) bool { return selected[e.GetID()] }
		first := true
		for _, e := range m.canvas.Elements() {
			if !include(e) {
				continue
			}
			if first {
				area, first = e.Bounds(), false
			} else {
				area = area.Union(e.Bounds())
			}
		}
	}
	return strings.Join(m.canvas.RenderRegion(area, include), "\n"), nil
}

func (m *model) copyToClipboard() error {
	text, err := m.copyText()
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	log.Printf("copied %d bytes", len(text))
	return nil
}

// pasteLines places one Text element per non-blank line at the viewport
// origin and selects them. It is a single undo step.
func (m *model) pasteLines(lines []string) int {
	elements, nextID := m.canvas.Snapshot()
	scratch := NewCanvas()
	scratch.Restore(elements, nextID)

	var ids []int
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		pos := Coord{X: m.panX, Y: m.panY + i}
		ids = append(ids, scratch.Add(NewText(scratch.NextID(), pos, line)))
	}
	if len(ids) == 0 {
		return 0
	}
	m.replaceDocument(scratch.elements, scratch.nextID, m.filename)
	m.selectTool(ToolSelect)
	m.selection.SelectIDs(ids)
	return len(ids)
}

func (m *model) pasteFromClipboard() (int, error) {
	text, err := readClipboardText()
	if err != nil {
		return 0, fmt.Errorf("clipboard: %w", err)
	}
	n := m.pasteLines(clipboardLines(text))
	if n == 0 {
		return 0, fmt.Errorf("clipboard is empty")
	}
	return n, nil
}
