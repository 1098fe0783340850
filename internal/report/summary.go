package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/phishreport/phishreport/internal/models"
)

// Summary counts report rows per status.
type Summary struct {
	Counts map[models.Status]int
	Total  int
}

// Summarize tallies rows by status.
func Summarize(rows []models.ReportRow) Summary {
	s := Summary{Counts: make(map[models.Status]int, len(models.Statuses))}
	for _, row := range rows {
		s.Counts[row.Status]++
		s.Total++
	}
	return s
}

var (
	styleTitle     = lipgloss.NewStyle().Bold(true)
	styleLabel     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleCorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleOpen      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleNone      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Faint(true)
)

func statusStyle(status models.Status) lipgloss.Style {
	switch status {
	case models.StatusCorrectPassword:
		return styleCorrect
	case models.StatusIncorrectPassword:
		return styleIncorrect
	case models.StatusOpenLink:
		return styleOpen
	default:
		return styleNone
	}
}

// RenderSummary prints the per-status counts, one status per line, in
// report order.
func RenderSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%d row(s)", s.Total))); err != nil {
		return err
	}
	for _, status := range models.Statuses {
		count := statusStyle(status).Render(fmt.Sprintf("%4d", s.Counts[status]))
		label := styleLabel.Render(string(status))
		if _, err := fmt.Fprintf(w, "  %s  %s\n", count, label); err != nil {
			return err
		}
	}
	return nil
}
