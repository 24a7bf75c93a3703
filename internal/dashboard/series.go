package dashboard

import (
	"fmt"
	"time"

	"github.com/rewired-gh/ttareungi-insights/internal/datasets"
	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

func yearSeries(values []datasets.YearValue) (*stats.TimeSeries[int], error) {
	points := make([]stats.Point[int], len(values))
	for i, yv := range values {
		points[i] = stats.Point[int]{Period: yv.Year, Value: yv.Value}
	}
	return stats.NewTimeSeries(points)
}

func monthSeries(counts []float64) (*stats.TimeSeries[time.Month], error) {
	months := make([]time.Month, len(counts))
	for i := range counts {
		months[i] = time.Month(i + 1)
	}
	return stats.SeriesOf(months, counts)
}

func weekdaySeries(counts []float64) (*stats.TimeSeries[datasets.Weekday], error) {
	return stats.SeriesOf(datasets.Weekdays(), counts)
}

func categoryDistribution(categories []datasets.Category) (*stats.Distribution, error) {
	entries := make([]stats.Entry, len(categories))
	for i, c := range categories {
		entries[i] = stats.Entry{Label: c.Label, Value: c.Value}
	}
	return stats.NewDistribution(entries)
}

func stationDistribution(counts []datasets.StationCount) (*stats.Distribution, error) {
	entries := make([]stats.Entry, len(counts))
	for i, c := range counts {
		entries[i] = stats.Entry{Label: c.Station, Value: c.Count}
	}
	return stats.NewDistribution(entries)
}

// weekSplit holds the average daily rentals on weekdays and on weekends.
type weekSplit struct {
	Year    int
	Weekday float64
	Weekend float64
}

func (s weekSplit) ratio() float64 {
	if s.Weekday == 0 {
		return 0
	}
	return s.Weekend / s.Weekday
}

// weekSplits averages weekday and weekend rentals for every year with weekday
// data, then averages those yearly figures into an overall split.
func weekSplits() ([]weekSplit, weekSplit, error) {
	var splits []weekSplit
	var overall weekSplit
	for _, year := range datasets.MonthlyYears() {
		counts, ok := datasets.ForeignWeekdayRentals(year)
		if !ok {
			continue
		}
		ts, err := weekdaySeries(counts)
		if err != nil {
			return nil, weekSplit{}, fmt.Errorf("weekday rentals %d: %w", year, err)
		}
		weekday, err := ts.WindowAverage(func(d datasets.Weekday) bool { return !d.IsWeekend() })
		if err != nil {
			return nil, weekSplit{}, err
		}
		weekend, err := ts.WindowAverage(datasets.Weekday.IsWeekend)
		if err != nil {
			return nil, weekSplit{}, err
		}
		splits = append(splits, weekSplit{Year: year, Weekday: weekday, Weekend: weekend})
		overall.Weekday += weekday
		overall.Weekend += weekend
	}
	if len(splits) == 0 {
		return nil, weekSplit{}, fmt.Errorf("%w: no weekday data", stats.ErrEmptySelection)
	}
	overall.Weekday /= float64(len(splits))
	overall.Weekend /= float64(len(splits))
	return splits, overall, nil
}
