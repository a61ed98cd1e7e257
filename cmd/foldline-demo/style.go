package main

import "github.com/charmbracelet/lipgloss"

const foldMarker = "⋯"

type style struct {
	Text   lipgloss.Style
	Fold   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

func defaultStyle() style {
	return style{
		Text:   lipgloss.NewStyle(),
		Fold:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("237")),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
