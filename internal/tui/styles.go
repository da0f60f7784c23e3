package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	heading lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}
