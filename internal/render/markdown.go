package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/rewired-gh/ttareungi-insights/internal/dashboard"
)

var markdownCell = strings.NewReplacer("|", `\|`, "\n", " ")

// Markdown renders r as a Markdown document.
func Markdown(r *dashboard.Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.Title))
	sb.WriteString(fmt.Sprintf("Generated: %s | Report: %s\n\n", r.GeneratedAt.Format(time.RFC3339), r.ID))

	// Metrics
	if len(r.Metrics) > 0 {
		sb.WriteString("## Key Figures\n\n")
		writeMarkdownTable(&sb, []string{"Metric", "Value", "Note"}, metricRows(r.Metrics))
	}

	for _, t := range r.Tables {
		sb.WriteString(fmt.Sprintf("## %s\n\n", t.Title))
		if len(t.Rows) == 0 {
			sb.WriteString("No data available.\n\n")
			continue
		}
		writeMarkdownTable(&sb, t.Columns, t.Rows)
	}

	if len(r.Insights) > 0 {
		sb.WriteString("## Insights\n\n")
		for _, insight := range r.Insights {
			sb.WriteString(fmt.Sprintf("- %s\n", insight))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeMarkdownTable(sb *strings.Builder, columns []string, rows [][]string) {
	sb.WriteString("|")
	for _, c := range columns {
		sb.WriteString(" " + markdownCell.Replace(c) + " |")
	}
	sb.WriteString("\n|")
	for _, c := range columns {
		sb.WriteString(strings.Repeat("-", max(3, len(c)+2)) + "|")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString("|")
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(" " + markdownCell.Replace(cell) + " |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func metricRows(metrics []dashboard.Metric) [][]string {
	rows := make([][]string, len(metrics))
	for i, m := range metrics {
		rows[i] = []string{m.Label, m.Value, m.Note}
	}
	return rows
}
