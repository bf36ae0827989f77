package editor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	row      lipgloss.Style
	empty    lipgloss.Style
	notice   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		row:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:    lipgloss.NewStyle().Faint(true),
		notice:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
