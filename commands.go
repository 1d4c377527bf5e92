package main

import (
	"fmt"
	"log"
	"strings"
)

// executeCommand runs one ':' command line. Failures land in the status
// bar; the document is left as it was.
func (m *model) executeCommand(input string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return
	}
	name := fields[0]
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), name))
	log.Printf("command: %s", input)

	switch name {
	case "save", "s", "w":
		path := m.filename
		if arg != "" {
			path = m.config.GetSavePath(withDiagramExt(arg))
		}
		if path == "" {
			m.errorMessage = "No filename specified"
			return
		}
		if err := m.saveFile(path); err != nil {
			m.setError(err)
			return
		}
		m.successMessage = "Saved to " + path

	case "open", "o", "e":
		if arg == "" {
			m.errorMessage = "No filename specified"
			return
		}
		path := m.config.GetSavePath(arg)
		if err := m.loadFile(path); err != nil {
			m.setError(err)
			return
		}
		m.successMessage = "Loaded from " + path

	case "new":
		m.replaceDocument(nil, 0, "")
		m.modified = false
		m.panX, m.panY = 0, 0
		m.successMessage = "New diagram"

	case "export":
		if arg == "" {
			m.errorMessage = "No filename specified"
			return
		}
		path := m.config.GetSavePath(arg)
		if err := m.exportFile(path); err != nil {
			m.setError(err)
			return
		}
		m.successMessage = "Exported to " + path

	case "copy":
		if err := m.copyToClipboard(); err != nil {
			m.setError(err)
			return
		}
		m.successMessage = "Copied to clipboard"

	case "paste":
		n, err := m.pasteFromClipboard()
		if err != nil {
			m.setError(err)
			return
		}
		m.successMessage = fmt.Sprintf("Pasted %d line(s)", n)

	case "undo":
		m.undo()

	case "redo":
		m.redo()

	case "q", "quit":
		m.errorMessage = "Use 'q' key to quit"

	default:
		m.errorMessage = "Unknown command: " + name
	}
}
