package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rewired-gh/ttareungi-insights/internal/dashboard"
)

const cardsPerRow = 3

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			MarginRight(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Terminal writes r as styled text for an interactive terminal.
func Terminal(w io.Writer, r *dashboard.Report) error {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(r.Title))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("generated %s", r.GeneratedAt.Format(time.DateTime))))
	sb.WriteString("\n\n")

	if cards := metricCards(r.Metrics); cards != "" {
		sb.WriteString(cards)
		sb.WriteString("\n\n")
	}

	for _, t := range r.Tables {
		sb.WriteString(sectionStyle.Render(t.Title))
		sb.WriteString("\n")
		if len(t.Rows) == 0 {
			sb.WriteString(mutedStyle.Render("No data available."))
			sb.WriteString("\n\n")
			continue
		}
		sb.WriteString(renderTable(t))
		sb.WriteString("\n\n")
	}

	if len(r.Insights) > 0 {
		sb.WriteString(sectionStyle.Render("Insights"))
		sb.WriteString("\n")
		for _, insight := range r.Insights {
			sb.WriteString("  • " + insight + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func metricCards(metrics []dashboard.Metric) string {
	if len(metrics) == 0 {
		return ""
	}
	var rows []string
	for start := 0; start < len(metrics); start += cardsPerRow {
		end := min(start+cardsPerRow, len(metrics))
		cards := make([]string, 0, end-start)
		for _, m := range metrics[start:end] {
			body := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
			if m.Note != "" {
				body += "\n" + mutedStyle.Render(m.Note)
			}
			cards = append(cards, cardStyle.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTable(t dashboard.Table) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(t.Columns...).
		Rows(t.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return tbl.Render()
}
