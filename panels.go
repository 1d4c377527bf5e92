package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// panelHandler drives the sidebar panels. Keys reach it only while a
// sidebar panel is active; presses inside a panel are always consumed.
type panelHandler struct{}

func (panelHandler) HandleKey(m *model, msg tea.KeyMsg) EventResult {
	switch m.activePanel {
	case PanelTools:
		return m.toolsPanelKey(msg)
	case PanelElements:
		return m.elementsPanelKey(msg)
	case PanelProperties:
		return m.propertiesPanelKey(msg)
	}
	return ignored
}

func (panelHandler) HandleMouse(m *model, ev MouseEvent) EventResult {
	if ev.Kind != MouseDown {
		return ignored
	}
	l := m.layout()
	panel, ok := l.panelAt(ev.X, ev.Y)
	if !ok || panel == PanelCanvas {
		return ignored
	}
	m.activePanel = panel
	m.propInput = propertyInput{}

	switch panel {
	case PanelTools:
		if row := l.tools.row(ev.Y); row >= 0 && row < len(allTools) {
			m.toolsCursor = row
			m.selectTool(allTools[row])
		}
	case PanelElements:
		row := l.elements.row(ev.Y) + elementsScroll(m.elementsCursor, l.elements.H-2)
		if row >= 0 && row < m.canvas.Len() {
			m.elementsCursor = row
			m.selectElementAt(row)
		}
	case PanelProperties:
		// line 0 is the element name
		if row := l.properties.row(ev.Y) - 1; row >= 0 {
			m.propsCursor = row
		}
	}
	return consumed
}

func (m *model) toolsPanelKey(msg tea.KeyMsg) EventResult {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.toolsCursor = max(m.toolsCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.toolsCursor = min(m.toolsCursor+1, len(allTools)-1)
	case key.Matches(msg, m.keys.Enter):
		m.selectTool(allTools[m.toolsCursor])
	default:
		return ignored
	}
	return consumed
}

func (m *model) elementsPanelKey(msg tea.KeyMsg) EventResult {
	n := m.canvas.Len()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.elementsCursor = max(m.elementsCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.elementsCursor = max(min(m.elementsCursor+1, n-1), 0)
	case key.Matches(msg, m.keys.Enter):
		m.selectElementAt(m.elementsCursor)
	case key.Matches(msg, m.keys.Delete):
		if m.elementsCursor >= n {
			return ignored
		}
		m.selectElementAt(m.elementsCursor)
		m.deleteSelection()
		m.elementsCursor = max(min(m.elementsCursor, m.canvas.Len()-1), 0)
	default:
		return ignored
	}
	return consumed
}

func (m *model) selectElementAt(index int) {
	if index < 0 || index >= m.canvas.Len() {
		return
	}
	if m.tools.active != ToolSelect {
		m.selectTool(ToolSelect)
	}
	m.selection.SelectOnly(m.canvas.Elements()[index].GetID())
}

func (m *model) propertiesPanelKey(msg tea.KeyMsg) EventResult {
	e := m.singleSelected()
	if e == nil {
		m.propInput = propertyInput{}
		return ignored
	}
	fields := elementProperties(e)
	m.propsCursor = max(min(m.propsCursor, len(fields)-1), 0)
	field := fields[m.propsCursor]

	if m.propInput.active {
		m.propertyInputKey(e, msg)
		return consumed
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.propsCursor = max(m.propsCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.propsCursor = min(m.propsCursor+1, len(fields)-1)
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		step := 1
		if key.Matches(msg, m.keys.Left) {
			step = -1
		}
		if field.Kind == FieldChoice {
			m.applyChoice(e, field.Key, cycleChoice(field, step))
		} else {
			m.applyNumber(e, field.Key, field.Number+step)
		}
	case key.Matches(msg, m.keys.Enter):
		if field.Kind == FieldNumeric {
			m.propInput = propertyInput{active: true, key: field.Key}
		} else {
			m.applyChoice(e, field.Key, cycleChoice(field, 1))
		}
	default:
		return ignored
	}
	return consumed
}

func (m *model) propertyInputKey(e Element, msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.propInput = propertyInput{}
	case tea.KeyBackspace:
		if n := len(m.propInput.input); n > 0 {
			m.propInput.input = m.propInput.input[:n-1]
		}
	case tea.KeyEnter:
		input := m.propInput
		m.propInput = propertyInput{}
		value, err := strconv.Atoi(input.input)
		if err != nil {
			m.errorMessage = "Error: not a number: " + input.input
			return
		}
		m.applyNumber(e, input.key, value)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				m.propInput.input += string(r)
			}
		}
	}
}

func (m *model) applyNumber(e Element, key string, value int) {
	before := e.Clone()
	if err := setNumericProperty(e, key, value); err != nil {
		m.setError(err)
		return
	}
	m.recordEdit(before, e)
}

func (m *model) applyChoice(e Element, key, value string) {
	before := e.Clone()
	if err := setChoiceProperty(e, key, value); err != nil {
		m.setError(err)
		return
	}
	m.recordEdit(before, e)
}

// elementsScroll keeps the cursor row visible in a list of height rows.
func elementsScroll(cursor, height int) int {
	if height <= 0 || cursor < height {
		return 0
	}
	return cursor - height + 1
}
