package captions

import (
	"fmt"

	"github.com/bnema/gallery-captioner/internal/application"
	"github.com/charmbracelet/lipgloss"
)

func renderSummary(result application.RunResult, s styles) string {
	lines := []string{
		s.title.Render("Gallery captions"),
		s.header.Render(fmt.Sprintf("images: %d  captioned: %d", len(result.Records), result.Records.Captioned())),
	}

	report := result.Report
	if len(report.Added) > 0 {
		lines = append(lines, s.added.Render(fmt.Sprintf("added: %d", len(report.Added))))
	}
	lines = append(lines, s.detail.Render(fmt.Sprintf("kept: %d", len(report.Kept))))

	if orphaned := report.Orphaned(); len(orphaned) > 0 {
		lines = append(lines, s.warning.Render(fmt.Sprintf("dropped %d caption(s) for missing images:", len(orphaned))))
		for _, record := range orphaned {
			lines = append(lines, s.orphan.Render("  "+record.Label()))
		}
	}

	if result.OutputPath != "" {
		lines = append(lines, s.path.Render("saved to "+result.OutputPath))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
