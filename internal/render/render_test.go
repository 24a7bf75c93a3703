package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewired-gh/ttareungi-insights/internal/dashboard"
)

func sampleReport() *dashboard.Report {
	return &dashboard.Report{
		ID:          "3f1c2a9e-0000-4000-8000-000000000001",
		Page:        dashboard.PageForeignUsage,
		Title:       "Foreign rider usage patterns",
		GeneratedAt: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		Metrics: []dashboard.Metric{
			{Label: "2024 rentals", Value: "71,077", Note: "+10.5% year on year"},
			{Label: "Busiest weekday", Value: "Saturday"},
		},
		Tables: []dashboard.Table{
			{
				Title:   "Annual foreign rentals",
				Columns: []string{"Year", "Rentals", "Growth"},
				Rows: [][]string{
					{"2021", "19,049", "n/a"},
					{"2022", "50,762", "+166.5%"},
				},
			},
			{Title: "Empty", Columns: []string{"A"}},
		},
		Insights: []string{"Weekends see 1.4x the rentals of an average weekday"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"terminal", FormatTerminal, false},
		{"Markdown", FormatMarkdown, false},
		{" csv ", FormatCSV, false},
		{"json", FormatJSON, false},
		{"pdf", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleReport())

	assert.True(t, strings.HasPrefix(out, "# Foreign rider usage patterns\n"))
	assert.Contains(t, out, "Generated: 2025-03-01T09:30:00Z")
	assert.Contains(t, out, "## Key Figures")
	assert.Contains(t, out, "| 2024 rentals | 71,077 | +10.5% year on year |")
	assert.Contains(t, out, "| Busiest weekday | Saturday |  |")
	assert.Contains(t, out, "## Annual foreign rentals")
	assert.Contains(t, out, "| Year | Rentals | Growth |")
	assert.Contains(t, out, "| 2022 | 50,762 | +166.5% |")
	assert.Contains(t, out, "## Empty\n\nNo data available.")
	assert.Contains(t, out, "- Weekends see 1.4x the rentals of an average weekday")
}

func TestMarkdown_EscapesPipes(t *testing.T) {
	r := sampleReport()
	r.Tables = []dashboard.Table{{Title: "T", Columns: []string{"a|b"}, Rows: [][]string{{"x|y"}}}}
	out := Markdown(r)
	assert.Contains(t, out, `| a\|b |`)
	assert.Contains(t, out, `| x\|y |`)
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, sampleReport()))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Key figures"},
		{"Metric", "Value", "Note"},
		{"2024 rentals", "71,077", "+10.5% year on year"},
		{"Busiest weekday", "Saturday", ""},
		{"Annual foreign rentals"},
		{"Year", "Rentals", "Growth"},
		{"2021", "19,049", "n/a"},
		{"2022", "50,762", "+166.5%"},
		{"Empty"},
		{"A"},
	}
	assert.Equal(t, want, records)
}

var errClosed = errors.New("writer closed")

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestCSV_WriteErrorsAreWrapped(t *testing.T) {
	err := CSV(closedWriter{}, sampleReport())
	require.ErrorIs(t, err, errClosed)
	assert.Contains(t, err.Error(), "failed to write")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleReport()))

	var decoded dashboard.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	want := sampleReport()
	assert.Equal(t, want.ID, decoded.ID)
	assert.Equal(t, want.Page, decoded.Page)
	assert.True(t, want.GeneratedAt.Equal(decoded.GeneratedAt))
	assert.Equal(t, want.Metrics, decoded.Metrics)
	assert.Equal(t, want.Tables, decoded.Tables)
	assert.Equal(t, want.Insights, decoded.Insights)
	assert.Contains(t, buf.String(), "\n  \"id\"")
}

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Terminal(&buf, sampleReport()))
	out := buf.String()

	for _, want := range []string{
		"Foreign rider usage patterns",
		"2024 rentals", "71,077", "+10.5% year on year",
		"Annual foreign rentals", "Year", "50,762",
		"No data available.",
		"Insights", "Weekends see 1.4x",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_Dispatch(t *testing.T) {
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, f, sampleReport()))
			assert.NotEmpty(t, buf.String())
		})
	}

	var buf bytes.Buffer
	require.ErrorIs(t, Render(&buf, Format("xml"), sampleReport()), ErrUnknownFormat)
	require.Error(t, Render(&buf, FormatJSON, nil))
}

func TestRender_BuiltPages(t *testing.T) {
	for _, id := range dashboard.Pages() {
		t.Run(string(id), func(t *testing.T) {
			r, err := dashboard.Build(id, dashboard.DefaultOptions())
			require.NoError(t, err)
			for _, f := range Formats() {
				var buf bytes.Buffer
				require.NoError(t, Render(&buf, f, r), "format %s", f)
				if f == FormatCSV {
					assert.Contains(t, buf.String(), r.Tables[0].Title)
					continue
				}
				assert.Contains(t, buf.String(), r.Title)
			}
		})
	}
}
