package captions

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	detail  lipgloss.Style
	added   lipgloss.Style
	warning lipgloss.Style
	orphan  lipgloss.Style
	path    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		orphan:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
