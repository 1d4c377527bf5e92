package main

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version is written into every saved document.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}
