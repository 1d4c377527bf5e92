package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var render bool
	flag.BoolVar(&render, "render", false, "render FILE to stdout without starting the editor")
	flag.BoolVar(&render, "r", false, "shorthand for -render")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: textdraw [-render] [FILE]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("textdraw", Version())
		return
	}

	file := flag.Arg(0)
	if render {
		if file == "" {
			fmt.Fprintln(os.Stderr, "Error: --render requires a file argument")
			os.Exit(1)
		}
		if err := renderFile(file, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if path := os.Getenv("TEXTDRAW_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "textdraw")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := initialModel(loadConfig())
	if file != "" {
		if err := m.loadFile(file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// opening a file is not an undoable edit
		m.undoStack = m.undoStack[:0]
		m.successMessage = "Loaded from " + file
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// renderFile prints the diagram's glyph grid over its global bounds.
func renderFile(path string, w io.Writer) error {
	canvas := NewCanvas()
	if err := canvas.LoadFromFile(path); err != nil {
		return err
	}
	if canvas.IsEmpty() {
		_, err := fmt.Fprintln(w, "(empty diagram)")
		return err
	}
	lines := canvas.RenderRegion(canvas.Bounds(), nil)
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
