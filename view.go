package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.help {
		return m.helpView()
	}

	l := m.layout()
	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.panelBox(PanelTools, l.tools, m.toolsPanelLines()),
		m.panelBox(PanelElements, l.elements, m.elementsPanelLines(l.elements.H-2)),
		m.panelBox(PanelProperties, l.properties, m.propertiesPanelLines()),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.canvasBox(l.canvas), sidebar)

	return body + "\n" + m.statusLine() + "\n" + m.helpLine()
}

func (m model) renderOptions() renderOptions {
	w, h := m.viewportSize()
	opts := renderOptions{
		width:        w,
		height:       h,
		panX:         m.panX,
		panY:         m.panY,
		selected:     m.selection.idSet(),
		selectionBox: m.selection.BoxPoints(),
	}
	opts.moveDX, opts.moveDY = m.selection.MoveOffset(m.canvas)
	if cur := m.tools.Current(); cur != nil {
		opts.preview = cur.Preview()
	}
	if p, ok := m.tools.text.Cursor(); ok && m.tools.active == ToolText {
		opts.cursor = &p
	}
	if m.tableEditor.editing {
		if p, ok := m.tableEditor.cursor(); ok {
			opts.cursor = &p
		}
	}
	return opts
}

func (m model) canvasBox(r rect) string {
	grid := m.canvas.Render(m.renderOptions())

	var hl *Coord
	if !m.tableEditor.editing {
		if p, ok := m.tableEditor.cursor(); ok {
			hl = &p
		}
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = m.renderCells(row, y, hl)
	}
	return m.panelStyle(PanelCanvas).Render(strings.Join(lines, "\n"))
}

// renderCells styles runs of equal cell style together. hl marks the
// table editor's current cell origin.
func (m model) renderCells(row []cell, y int, hl *Coord) string {
	var sb, run strings.Builder
	runStyle := styleNormal
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runStyle == styleNormal {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(m.styles.cell(runStyle).Render(run.String()))
		}
		run.Reset()
	}
	for x, c := range row {
		if hl != nil && hl.X-m.panX == x && hl.Y-m.panY == y {
			flush()
			sb.WriteString(m.styles.Cursor.Render(string(c.ch)))
			continue
		}
		if c.style != runStyle {
			flush()
			runStyle = c.style
		}
		run.WriteRune(c.ch)
	}
	flush()
	return sb.String()
}

func (m model) panelStyle(p Panel) lipgloss.Style {
	if m.activePanel == p {
		return m.styles.PanelActive
	}
	return m.styles.Panel
}

// panelBox pads or cuts lines to the panel interior and draws its border.
func (m model) panelBox(p Panel, r rect, lines []string) string {
	w, h := max(r.W-2, 1), max(r.H-2, 0)
	out := make([]string, h)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = truncate.String(lines[i], uint(w))
		}
		if pad := w - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return m.panelStyle(p).Render(strings.Join(out, "\n"))
}

func (m model) toolsPanelLines() []string {
	lines := make([]string, 0, len(allTools))
	for i, t := range allTools {
		marker := "  "
		if t == m.tools.active {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%-10s [%c]", marker, t.String(), t.Key())
		if m.activePanel == PanelTools && i == m.toolsCursor {
			line = m.styles.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m model) elementsPanelLines(height int) []string {
	elements := m.canvas.Elements()
	if len(elements) == 0 {
		return []string{m.styles.Dim.Render("(no elements)")}
	}
	offset := elementsScroll(m.elementsCursor, height)
	var lines []string
	for i := offset; i < len(elements) && len(lines) < height; i++ {
		e := elements[i]
		marker := "  "
		if m.selection.IsSelected(e.GetID()) {
			marker = "* "
		}
		line := marker + e.GetName()
		if m.activePanel == PanelElements && i == m.elementsCursor {
			line = m.styles.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m model) propertiesPanelLines() []string {
	e := m.singleSelected()
	if e == nil {
		if n := len(m.selection.IDs()); n > 1 {
			return []string{m.styles.Dim.Render(fmt.Sprintf("%d elements selected", n))}
		}
		return []string{m.styles.Dim.Render("(nothing selected)")}
	}

	lines := []string{m.styles.Title.Render(e.GetName())}
	for i, f := range elementProperties(e) {
		value := f.Display()
		if m.propInput.active && m.propInput.key == f.Key {
			value = m.propInput.input + "_"
		}
		line := fmt.Sprintf("%-14s %s", f.Label+":", value)
		if m.activePanel == PanelProperties && i == m.propsCursor {
			line = m.styles.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m model) modeString() string {
	switch {
	case m.command.active:
		return "COMMAND"
	case m.tableEditor.editing:
		return "CELL"
	case m.tableEditor.active:
		return "TABLE"
	case m.tools.active == ToolText && m.tools.text.Active():
		return "TEXT"
	case m.tools.active != ToolSelect:
		return "DRAW"
	}
	return m.selection.Mode().String()
}

func (m model) statusLine() string {
	width := max(m.width, 1)
	if m.command.active {
		return m.styles.Status.Render(padRight(":"+m.command.input+"█", width))
	}

	lock := "off"
	if m.tools.locked {
		lock = "on"
	}
	name := m.filename
	if name == "" {
		name = "[untitled]"
	}
	if m.modified {
		name += " [+]"
	}
	status := fmt.Sprintf("Mode: %s | Tool: %s | Lock: %s", m.modeString(), m.tools.active, lock)
	if m.pointerOnCanvas {
		status += fmt.Sprintf(" | %s", m.pointer)
	}
	status += " | " + name

	switch {
	case m.errorMessage != "":
		return m.styles.Status.Render(status+" | ") +
			m.styles.Error.Render(padRight(m.errorMessage, width-lipgloss.Width(status)-3))
	case m.successMessage != "":
		return m.styles.Status.Render(status+" | ") +
			m.styles.Success.Render(padRight(m.successMessage, width-lipgloss.Width(status)-3))
	}
	return m.styles.Status.Render(padRight(status, width))
}

func padRight(s string, width int) string {
	s = truncate.String(s, uint(max(width, 0)))
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// helpBindings are the hints for the current context.
func (m model) helpBindings() []key.Binding {
	k := m.keys
	switch {
	case m.tableEditor.editing:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "restore")),
		}
	case m.tableEditor.active:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "cell")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
			key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "leave table")),
		}
	case m.activePanel == PanelProperties:
		return []key.Binding{k.Up, k.Down,
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "type value")),
			k.PanelCanvas}
	case m.activePanel == PanelTools, m.activePanel == PanelElements:
		return []key.Binding{k.Up, k.Down, k.Enter, k.PanelCanvas}
	case m.selection.HasSelection():
		return []key.Binding{k.Delete,
			key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "nudge")),
			k.Undo, k.Command, k.Help}
	}
	return []key.Binding{k.NextTool, k.ToolLock, k.Undo, k.Redo, k.Command, k.Help, k.Quit}
}

func (m model) helpLine() string {
	bindings := m.helpBindings()
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = helpEntry(b)
	}
	return m.styles.HelpKey.Render(padRight(strings.Join(parts, " • "), max(m.width, 1)))
}

func (m model) helpLines() []string {
	k := m.keys
	section := func(title string, bindings ...key.Binding) []string {
		lines := []string{"", title, strings.Repeat("-", len(title))}
		for _, b := range bindings {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-16s %s", h.Key, h.Desc))
		}
		return lines
	}

	lines := []string{fmt.Sprintf("textdraw %s", Version()), "=============="}
	lines = append(lines, "", "Tools:", "------")
	for _, t := range allTools {
		lines = append(lines, fmt.Sprintf("  %-16c %s", t.Key(), t))
	}
	lines = append(lines, section("Tool control:", k.NextTool, k.PrevTool, k.ToolLock, k.Escape)...)
	lines = append(lines, section("Canvas:", k.Up, k.Down, k.Left, k.Right,
		k.PanUp, k.PanDown, k.PanLeft, k.PanRight, k.Delete, k.Enter)...)
	lines = append(lines,
		"  shift+click      toggle element in selection",
		"  drag             box-select or move selection",
		"  enter            edit the selected table")
	lines = append(lines, section("Panels:", k.PanelCanvas, k.PanelTools, k.PanelElements, k.PanelProperties)...)
	lines = append(lines, section("History:", k.Undo, k.Redo)...)
	lines = append(lines, section("General:", k.Command, k.Save, k.Open, k.Help, k.Quit)...)
	lines = append(lines, "", "Commands:", "---------",
		"  :save|:w [file]  save (.textdraw added)",
		"  :open|:e file    open a diagram",
		"  :new             empty diagram",
		"  :export file     .png image or plain text",
		"  :copy            copy selection or diagram as text",
		"  :paste           paste clipboard lines as text",
		"  :undo  :redo")
	return lines
}

func (m model) helpView() string {
	helpLines := m.helpLines()

	visibleHeight := max(m.height-1, 1)
	startLine := max(0, min(m.helpScroll, len(helpLines)-visibleHeight))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + m.styles.Status.Render(padRight(statusLine, max(m.width, 1)))
}
