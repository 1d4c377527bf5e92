package main

// handlePan scrolls the viewport. The pan offset never goes negative
// because canvas coordinates start at zero.
func (m *model) handlePan(key string, speed int) {
	dx, dy := directionDelta(key)
	m.panX = max(0, min(m.panX+dx*speed, maxCanvasExtent))
	m.panY = max(0, min(m.panY+dy*speed, maxCanvasExtent))
}

func directionDelta(key string) (int, int) {
	switch key {
	case "h", "left", "H", "shift+left":
		return -1, 0
	case "right", "shift+right":
		return 1, 0
	case "k", "up", "K", "shift+up":
		return 0, -1
	case "j", "down", "J", "shift+down":
		return 0, 1
	}
	return 0, 0
}

func getMoveSpeed(key string) int {
	switch key {
	case "H", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
