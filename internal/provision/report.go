package provision

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	detailStyle = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func statusStyle(status Status) lipgloss.Style {
	switch status {
	case StatusPass:
		return passStyle
	case StatusWarn:
		return warnStyle
	default:
		return failStyle
	}
}

// RenderReport writes the results grouped by suite followed by a summary box.
func RenderReport(w io.Writer, report Report) error {
	var b strings.Builder

	suite := ""

	for _, res := range report.Results {
		if res.Suite != suite {
			suite = res.Suite
			b.WriteString("\n" + headerStyle.Render(suite) + "\n")
		}

		label := statusStyle(res.Status).Render(fmt.Sprintf("[%s]", strings.ToUpper(res.Status.String())))
		b.WriteString(fmt.Sprintf("  %s %s %s\n", label, res.Name, detailStyle.Render(res.Detail)))
	}

	summary := strings.Join([]string{
		passStyle.Render(fmt.Sprintf("Passed: %d", report.Count(StatusPass))),
		warnStyle.Render(fmt.Sprintf("Warnings: %d", report.Count(StatusWarn))),
		failStyle.Render(fmt.Sprintf("Failed: %d", report.Count(StatusFail))),
		fmt.Sprintf("Total: %d", len(report.Results)),
	}, "\n")

	switch {
	case report.Failed():
		summary += "\n\n" + failStyle.Render("Some checks failed.")
	case report.Count(StatusWarn) > 0:
		summary += "\n\n" + warnStyle.Render("Functional, but some setup is still needed.")
	default:
		summary += "\n\n" + passStyle.Render("All checks passed.")
	}

	b.WriteString("\n" + boxStyle.Render(summary) + "\n")

	_, err := io.WriteString(w, b.String())

	return err //nolint:wrapcheck
}
