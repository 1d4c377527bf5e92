package main

type Panel int

const (
	PanelCanvas Panel = iota
	PanelTools
	PanelElements
	PanelProperties
)

var panelNames = []string{"Canvas", "Tools", "Elements", "Properties"}

func (p Panel) String() string {
	if int(p) < len(panelNames) {
		return panelNames[p]
	}
	return "Unknown"
}

// ResultKind is how a handler answered an event.
type ResultKind int

const (
	Ignored ResultKind = iota
	Consumed
	ActionRequested
)

// AppAction is a side-channel signal for the program loop.
type AppAction int

const (
	ActionNone AppAction = iota
	ActionQuit
	ActionFinishedDrawing
)

type ActionType int

const (
	ActionAddElement ActionType = iota
	ActionDeleteElements
	ActionMoveElements
	ActionEditElement
	ActionReplaceDocument
)

const (
	sidebarWidth = 30
	footerHeight = 2
	maxUndo      = 200

	// maxCanvasExtent bounds every canvas coordinate, both in the editor
	// and in loaded documents.
	maxCanvasExtent = 1 << 14
)
