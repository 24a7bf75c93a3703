package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rewired-gh/ttareungi-insights/internal/datasets"
	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

const (
	genderFemale     = "Female"
	genderMale       = "Male"
	genderUnrecorded = "Unrecorded"
)

func buildTouristTrend(r *Report, opts Options, _ *stats.Classifier) error {
	totals, err := yearSeries(datasets.VisitorTotals())
	if err != nil {
		return fmt.Errorf("visitor totals: %w", err)
	}
	if err := visitorTotals(r, totals); err != nil {
		return err
	}
	if err := categoryComparison(r, opts, "Age group", datasets.VisitorsByAge); err != nil {
		return fmt.Errorf("visitors by age: %w", err)
	}
	if err := categoryComparison(r, opts, "Continent", datasets.VisitorsByContinent); err != nil {
		return fmt.Errorf("visitors by continent: %w", err)
	}
	if err := genderTable(r); err != nil {
		return fmt.Errorf("visitors by gender: %w", err)
	}
	return countryTable(r, totals)
}

func visitorTotals(r *Report, totals *stats.TimeSeries[int]) error {
	first, last, peak := totals.First(), totals.Last(), totals.Peak()
	rank := 1
	for _, v := range totals.Values() {
		if v > last.Value {
			rank++
		}
	}

	r.metric(fmt.Sprintf("%d visitors", last.Period), Millions(last.Value),
		fmt.Sprintf("#%d of %d years", rank, totals.Len()))
	r.metric(fmt.Sprintf("Growth since %d", first.Period), GrowthText(totals.TotalGrowth(), 1),
		"compound "+GrowthText(totals.CompoundGrowth(), 1)+" a year")
	r.metric("Record year", strconv.Itoa(peak.Period), Millions(peak.Value)+" visitors")
	if peak.Value > 0 {
		r.metric("Recovery", Percent(last.Value/peak.Value*100, 1),
			fmt.Sprintf("of the %d record", peak.Period))
	}

	trough := totals.Trough()
	r.insight("Arrivals fell to %s in %d and recovered to %s by %d",
		Millions(trough.Value), trough.Period, Millions(last.Value), last.Period)
	return nil
}

// categoryComparison compares the two latest years of a visitor breakdown.
func categoryComparison(r *Report, opts Options, dimension string, lookup func(int) ([]datasets.Category, bool)) error {
	const baselineYear, currentYear = 2023, 2024

	before, ok := lookup(baselineYear)
	if !ok {
		return fmt.Errorf("%w: no data for %d", stats.ErrEmptySelection, baselineYear)
	}
	after, ok := lookup(currentYear)
	if !ok {
		return fmt.Errorf("%w: no data for %d", stats.ErrEmptySelection, currentYear)
	}
	baseline, err := categoryDistribution(before)
	if err != nil {
		return err
	}
	current, err := categoryDistribution(after)
	if err != nil {
		return err
	}
	comparison, err := stats.NewComparison(baseline, current, strconv.Itoa(baselineYear), strconv.Itoa(currentYear))
	if err != nil {
		return err
	}
	shifts, err := comparison.ShareShifts()
	if err != nil {
		return err
	}
	shiftByKey := make(map[string]stats.ShareShift, len(shifts))
	for _, s := range shifts {
		shiftByKey[s.Key] = s
	}

	t := Table{
		Title: fmt.Sprintf("Visitors by %s %d-%d", strings.ToLower(dimension), baselineYear, currentYear),
		Columns: []string{dimension, comparison.BaselineLabel(), comparison.CurrentLabel(), "Change %",
			"Share " + comparison.CurrentLabel(), "Share shift"},
	}
	for d := range comparison.Deltas() {
		s := shiftByKey[d.Key]
		t.AddRow(d.Key, Millions(d.Baseline), Millions(d.Current), ChangeText(d, 1),
			Percent(s.CurrentShare*100, 1), SignedPoints(s.Points, 1))
	}
	r.Tables = append(r.Tables, t)

	leader := current.Ranked()[0]
	share, err := current.ShareOf(leader.Label)
	if err != nil {
		return err
	}
	r.metric(fmt.Sprintf("Largest %s", strings.ToLower(dimension)), leader.Label,
		fmt.Sprintf("%s of %d visitors", Percent(share*100, 1), currentYear))

	growth, err := comparison.TopGrowth(opts.TopN)
	if err != nil {
		return err
	}
	if len(growth) > 0 {
		g := growth[0]
		r.insight("%s: %s added the most visitors (%s, %s)", dimension, g.Key, SignedCount(g.Delta), ChangeText(g, 1))
	}
	decline, err := comparison.TopDecline(opts.TopN)
	if err != nil {
		return err
	}
	for _, d := range decline {
		r.insight("%s: %s declined %s to %s", dimension, d.Key, ChangeText(d, 1), Count(d.Current))
	}
	return nil
}

func genderTable(r *Report) error {
	years := datasets.VisitorsByGender()
	if len(years) == 0 {
		return fmt.Errorf("%w: no gender data", stats.ErrEmptySelection)
	}

	t := Table{
		Title:   "Visitors by gender",
		Columns: []string{"Year", "Total", "Male", "Female", "Unrecorded", "Female share"},
	}
	var latest *stats.Distribution
	for _, g := range years {
		d, err := stats.DistributionOf(
			[]string{genderMale, genderFemale, genderUnrecorded},
			[]float64{g.Male, g.Female, g.Unrecorded()},
		)
		if err != nil {
			return fmt.Errorf("%d: %w", g.Year, err)
		}
		female, err := d.ShareOf(genderFemale)
		if err != nil {
			return fmt.Errorf("%d: %w", g.Year, err)
		}
		t.AddRow(strconv.Itoa(g.Year), Count(g.Total), Count(g.Male), Count(g.Female),
			Count(g.Unrecorded()), Percent(female*100, 1))
		latest = d
	}
	r.Tables = append(r.Tables, t)

	last := years[len(years)-1]
	shares, err := latest.Shares()
	if err != nil {
		return err
	}
	for _, s := range shares {
		if s.Label == genderFemale {
			r.metric(fmt.Sprintf("%d female share", last.Year), Percent(s.Percent, 1),
				fmt.Sprintf("%s female visitors", Millions(s.Value)))
		}
	}
	return nil
}

func countryTable(r *Report, totals *stats.TimeSeries[int]) error {
	countries := datasets.Countries()
	series := make([]*stats.TimeSeries[int], len(countries))
	for i, c := range countries {
		values, ok := datasets.VisitorsByCountry(c)
		if !ok {
			return fmt.Errorf("%w: no arrivals for %s", stats.ErrEmptySelection, c)
		}
		ts, err := yearSeries(values)
		if err != nil {
			return fmt.Errorf("arrivals from %s: %w", c, err)
		}
		series[i] = ts
	}

	t := Table{Title: "Visitors by year", Columns: append([]string{"Year", "Total"}, countries...)}
	for _, p := range totals.Points() {
		row := []string{strconv.Itoa(p.Period), Millions(p.Value)}
		for _, ts := range series {
			v, ok := ts.Value(p.Period)
			if !ok {
				row = append(row, notAvailable)
				continue
			}
			row = append(row, Millions(v))
		}
		t.AddRow(row...)
	}

	growth := Table{Title: "Growth by country", Columns: []string{"Country", "First year", "Latest", "Growth", "Peak year"}}
	for i, ts := range series {
		growth.AddRow(countries[i], Millions(ts.First().Value), Millions(ts.Last().Value),
			GrowthText(ts.TotalGrowth(), 1), strconv.Itoa(ts.Peak().Period))
		r.insight("%s: %s visitors in %d, %s since %d", countries[i], Millions(ts.Last().Value),
			ts.Last().Period, GrowthText(ts.TotalGrowth(), 1), ts.First().Period)
	}
	r.Tables = append(r.Tables, t, growth)
	return nil
}
