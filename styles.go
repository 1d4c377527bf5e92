package main

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Panel       lipgloss.Style
	PanelActive lipgloss.Style
	Title       lipgloss.Style
	Cursor      lipgloss.Style
	Dim         lipgloss.Style

	Selected     lipgloss.Style
	Preview      lipgloss.Style
	SelectionBox lipgloss.Style
	Caret        lipgloss.Style

	Status  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	HelpKey lipgloss.Style
}

func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		Panel:       lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("240")),
		PanelActive: lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("39")),
		Title:       lipgloss.NewStyle().Bold(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("243")),

		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Preview:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		SelectionBox: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Caret:        lipgloss.NewStyle().Blink(true),

		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("236")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Background(lipgloss.Color("236")),
		HelpKey: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (s Styles) cell(style cellStyle) lipgloss.Style {
	switch style {
	case styleSelected:
		return s.Selected
	case stylePreview:
		return s.Preview
	case styleSelectionBox:
		return s.SelectionBox
	case styleCursor:
		return s.Caret
	}
	return lipgloss.NewStyle()
}
