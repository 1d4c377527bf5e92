package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	return model{
		canvas: NewCanvas(),
		tools:  newToolState(config.DefaultBorder, config.ToolLock),
		config: config,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

// handlers is the dispatch chain, most specific first.
func (m *model) handlers() []EventHandler {
	return []EventHandler{
		helpHandler{},
		commandHandler{},
		tableEditorHandler{},
		toolKeyHandler{},
		panelHandler{},
		canvasHandler{},
		globalHandler{},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.clearStatus()
		armed := m.quitArmed
		if dispatchKey(&m, m.handlers(), msg) {
			return m, tea.Quit
		}
		if armed {
			m.quitArmed = false
		}
		return m, nil

	case tea.MouseMsg:
		ev, ok := mouseEventFromMsg(msg)
		if !ok {
			return m, nil
		}
		if ev.Kind == MouseDown {
			m.clearStatus()
		}
		if dispatchMouse(&m, m.handlers(), ev) {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m *model) clearStatus() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) setError(err error) {
	m.errorMessage = "Error: " + err.Error()
	log.Printf("error: %v", err)
}

type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// row maps a screen y inside a bordered panel to a content row.
func (r rect) row(y int) int {
	return y - r.Y - 1
}

type layout struct {
	canvas     rect
	tools      rect
	elements   rect
	properties rect
}

func (m *model) layout() layout {
	width := max(m.width, sidebarWidth+10)
	height := max(m.height-footerHeight, len(allTools)+8)

	canvas := rect{X: 0, Y: 0, W: width - sidebarWidth, H: height}
	toolsH := len(allTools) + 2
	rest := height - toolsH
	elementsH := rest / 2
	return layout{
		canvas:     canvas,
		tools:      rect{X: canvas.W, Y: 0, W: sidebarWidth, H: toolsH},
		elements:   rect{X: canvas.W, Y: toolsH, W: sidebarWidth, H: elementsH},
		properties: rect{X: canvas.W, Y: toolsH + elementsH, W: sidebarWidth, H: rest - elementsH},
	}
}

func (l layout) panelAt(x, y int) (Panel, bool) {
	switch {
	case l.canvas.contains(x, y):
		return PanelCanvas, true
	case l.tools.contains(x, y):
		return PanelTools, true
	case l.elements.contains(x, y):
		return PanelElements, true
	case l.properties.contains(x, y):
		return PanelProperties, true
	}
	return PanelCanvas, false
}

// viewportSize is the canvas area inside its border.
func (m *model) viewportSize() (int, int) {
	c := m.layout().canvas
	return max(c.W-2, 1), max(c.H-2, 1)
}

// screenToCanvas subtracts the panel origin and border and adds the pan
// offset. ok is false outside the canvas interior.
func (m *model) screenToCanvas(x, y int) (Coord, bool) {
	c := m.layout().canvas
	vx, vy := x-c.X-1, y-c.Y-1
	w, h := m.viewportSize()
	ok := vx >= 0 && vy >= 0 && vx < w && vy < h
	vx = max(0, min(vx, w-1))
	vy = max(0, min(vy, h-1))
	return Coord{X: min(vx+m.panX, maxCanvasExtent), Y: min(vy+m.panY, maxCanvasExtent)}, ok
}

func (m *model) selectTool(t Tool) {
	if m.tools.active == ToolSelect && t != ToolSelect {
		m.selection.Reset()
	}
	m.tableEditor.close()
	m.tools.Select(t)
}

// finishDrawing records a freshly committed element and, unless the tool
// is locked, hands control back to the select tool with it selected.
func (m *model) finishDrawing(id int) {
	e := m.canvas.Get(id)
	if e == nil {
		return
	}
	m.recordAction(ActionAddElement,
		AddElementData{Index: m.canvas.indexOf(id), Element: e.Clone()},
		nil)
	m.successMessage = "Created " + e.GetName()
	log.Printf("created %s", e.GetName())

	if !m.tools.locked {
		m.tools.Select(ToolSelect)
		m.selection.SelectOnly(id)
	}
}

func (m *model) requestQuit() bool {
	if m.config.ConfirmQuit && m.modified && !m.quitArmed {
		m.quitArmed = true
		m.errorMessage = "Unsaved changes, press q again to quit"
		return false
	}
	return true
}

func (m *model) deleteSelection() {
	if !m.selection.HasSelection() {
		return
	}
	removed := m.selection.DeleteSelected(m.canvas)
	if len(removed) == 0 {
		return
	}
	m.recordAction(ActionDeleteElements, DeleteElementsData{Removed: removed}, nil)
	m.successMessage = fmt.Sprintf("Deleted %d element(s)", len(removed))
}

func (m *model) recordMove(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	ids := append([]int(nil), m.selection.IDs()...)
	m.recordAction(ActionMoveElements, MoveElementsData{IDs: ids, DeltaX: dx, DeltaY: dy}, nil)
}

// singleSelected returns the selected element when exactly one is selected.
func (m *model) singleSelected() Element {
	ids := m.selection.IDs()
	if len(ids) != 1 {
		return nil
	}
	return m.canvas.Get(ids[0])
}

func (m *model) loadFile(path string) error {
	loaded := NewCanvas()
	if err := loaded.LoadFromFile(path); err != nil {
		return err
	}
	m.replaceDocument(loaded.elements, loaded.nextID, path)
	m.modified = false
	m.panX, m.panY = 0, 0
	log.Printf("loaded %s: %d elements", path, loaded.Len())
	return nil
}

func (m *model) saveFile(path string) error {
	if err := m.canvas.SaveToFile(path); err != nil {
		return err
	}
	m.filename = path
	m.modified = false
	log.Printf("saved %s: %d elements", path, m.canvas.Len())
	return nil
}
