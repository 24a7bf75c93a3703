package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rewired-gh/ttareungi-insights/internal/dashboard"
)

// CSV writes the metrics and every table of r as consecutive CSV blocks. Each
// block starts with a one-field title record and ends with an empty line.
func CSV(w io.Writer, r *dashboard.Report) error {
	cw := csv.NewWriter(w)

	blocks := make([]dashboard.Table, 0, len(r.Tables)+1)
	if len(r.Metrics) > 0 {
		blocks = append(blocks, dashboard.Table{
			Title:   "Key figures",
			Columns: []string{"Metric", "Value", "Note"},
			Rows:    metricRows(r.Metrics),
		})
	}
	blocks = append(blocks, r.Tables...)

	for i, t := range blocks {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return fmt.Errorf("failed to write separator before %q: %w", t.Title, err)
			}
		}
		if err := cw.Write([]string{t.Title}); err != nil {
			return fmt.Errorf("failed to write %q: %w", t.Title, err)
		}
		if err := cw.Write(t.Columns); err != nil {
			return fmt.Errorf("failed to write %q: %w", t.Title, err)
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return fmt.Errorf("failed to write %q: %w", t.Title, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
