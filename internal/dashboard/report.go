// Package dashboard builds the dashboard pages. Each page turns the literal
// tables of package datasets into a Report through package stats; renderers
// only ever see the finished Report.
package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rewired-gh/ttareungi-insights/internal/logger"
	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

// ErrUnknownPage is returned for a page ID outside the dashboard menu.
var ErrUnknownPage = errors.New("unknown page")

// PageID identifies one dashboard page.
type PageID string

// Dashboard pages in menu order.
const (
	PageOverview        PageID = "overview"
	PageForeignUsage    PageID = "foreign-usage"
	PageForeignRatio    PageID = "foreign-ratio"
	PageForeignStations PageID = "foreign-stations"
	PageStationPatterns PageID = "station-patterns"
	PageTouristTrend    PageID = "tourist-trend"
)

var pageTitles = map[PageID]string{
	PageOverview:        "Overview",
	PageForeignUsage:    "Foreign rider usage patterns",
	PageForeignRatio:    "Foreign share of all rentals",
	PageForeignStations: "Foreign rental and return stations",
	PageStationPatterns: "Return patterns of all riders",
	PageTouristTrend:    "Foreign visitor trends 2010-2024",
}

// Pages returns every page in menu order.
func Pages() []PageID {
	return []PageID{
		PageOverview,
		PageForeignUsage,
		PageForeignRatio,
		PageForeignStations,
		PageStationPatterns,
		PageTouristTrend,
	}
}

// Title returns the page heading.
func (id PageID) Title() string {
	return pageTitles[id]
}

// ParsePage resolves a page name as typed on the command line.
func ParsePage(name string) (PageID, error) {
	id := PageID(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := pageTitles[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	return id, nil
}

// Metric is a headline figure shown as a summary card.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note,omitempty"`
}

// Table is a titled grid of preformatted cells.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Report is one rendered-ready dashboard page.
type Report struct {
	ID          string    `json:"id"`
	Page        PageID    `json:"page"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Metrics     []Metric  `json:"metrics"`
	Tables      []Table   `json:"tables"`
	Insights    []string  `json:"insights,omitempty"`
}

func (r *Report) metric(label, value, note string) {
	r.Metrics = append(r.Metrics, Metric{Label: label, Value: value, Note: note})
}

func (r *Report) insight(format string, args ...any) {
	r.Insights = append(r.Insights, fmt.Sprintf(format, args...))
}

// Options tune the derived views of every page.
type Options struct {
	// TopN limits ranked lists such as the fastest growing stations.
	TopN int
	// Bands classify same-station return percentages into usage patterns.
	Bands []stats.Band
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		TopN:  5,
		Bands: stats.DefaultReturnPatternBands(),
	}
}

type pageBuilder func(r *Report, opts Options, classifier *stats.Classifier) error

func builderFor(id PageID) (pageBuilder, bool) {
	switch id {
	case PageOverview:
		return buildOverview, true
	case PageForeignUsage:
		return buildForeignUsage, true
	case PageForeignRatio:
		return buildForeignRatio, true
	case PageForeignStations:
		return buildForeignStations, true
	case PageStationPatterns:
		return buildStationPatterns, true
	case PageTouristTrend:
		return buildTouristTrend, true
	}
	return nil, false
}

// Build computes the report for page id.
func Build(id PageID, opts Options) (*Report, error) {
	build, ok := builderFor(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, id)
	}
	if opts.TopN < 1 {
		return nil, fmt.Errorf("%w: top-n must be at least 1, got %d", stats.ErrInvalidInput, opts.TopN)
	}
	classifier, err := stats.NewClassifier(opts.Bands)
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern classifier: %w", err)
	}

	r := &Report{
		ID:          uuid.New().String(),
		Page:        id,
		Title:       id.Title(),
		GeneratedAt: time.Now().UTC(),
	}
	if err := build(r, opts, classifier); err != nil {
		return nil, fmt.Errorf("failed to build page %s: %w", id, err)
	}

	logger.Debug("Built page %s (report %s): %d metrics, %d tables", id, r.ID, len(r.Metrics), len(r.Tables))
	return r, nil
}
