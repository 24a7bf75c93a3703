package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rewired-gh/ttareungi-insights/internal/datasets"
	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

func buildForeignStations(r *Report, opts Options, _ *stats.Classifier) error {
	years := datasets.TopStationYears()
	leaders := make(map[string]int)
	var leaderOrder []string
	var appearances *stats.Distribution
	latest := make(map[string]bool)
	for _, year := range years {
		counts, ok := datasets.ForeignTopStations(year)
		if !ok {
			return fmt.Errorf("%w: no top stations for %d", stats.ErrEmptySelection, year)
		}
		d, err := stationDistribution(counts)
		if err != nil {
			return fmt.Errorf("top stations %d: %w", year, err)
		}
		t := Table{
			Title:   fmt.Sprintf("Top rental stations %d", year),
			Columns: []string{"Rank", "Station", "Rentals"},
		}
		ranked := d.Ranked()
		for i, e := range ranked {
			t.AddRow(strconv.Itoa(i+1), e.Label, Count(e.Value))
		}
		r.Tables = append(r.Tables, t)

		if len(ranked) > 0 {
			top := ranked[0].Label
			if leaders[top] == 0 {
				leaderOrder = append(leaderOrder, top)
			}
			leaders[top]++
		}

		present, err := presence(d.Labels())
		if err != nil {
			return fmt.Errorf("top stations %d: %w", year, err)
		}
		if appearances == nil {
			appearances = present
		} else if appearances, err = appearances.Merge(present, stats.Sum); err != nil {
			return fmt.Errorf("top stations %d: %w", year, err)
		}
		clear(latest)
		for _, label := range d.Labels() {
			latest[label] = true
		}
	}
	for _, station := range leaderOrder {
		r.metric("Most rented station", station,
			fmt.Sprintf("#1 in %d of %d years", leaders[station], len(years)))
	}
	if appearances != nil {
		regulars := Table{Title: "Top five appearances", Columns: []string{"Station", "Years"}}
		found := false
		for _, e := range appearances.Ranked() {
			regulars.AddRow(e.Label, strconv.Itoa(int(e.Value)))
			if !found && leaders[e.Label] == 0 && latest[e.Label] {
				found = true
				r.metric("Consistently popular", e.Label,
					fmt.Sprintf("top five in %d of %d years", int(e.Value), len(years)))
			}
		}
		r.Tables = append(r.Tables, regulars)
	}

	period := datasets.StationGrowthPeriod()
	baselineLabel, currentLabel := strconv.Itoa(period.BaselineYear), strconv.Itoa(period.CurrentYear)
	baseline, err := stationDistribution(period.Baseline)
	if err != nil {
		return fmt.Errorf("stations %s: %w", baselineLabel, err)
	}
	current, err := stationDistribution(period.Current)
	if err != nil {
		return fmt.Errorf("stations %s: %w", currentLabel, err)
	}
	comparison, err := stats.NewComparison(baseline, current, baselineLabel, currentLabel)
	if err != nil {
		return err
	}

	changes := Table{
		Title:   fmt.Sprintf("Station growth %s-%s", baselineLabel, currentLabel),
		Columns: []string{"Station", baselineLabel, currentLabel, "Change", "Change %"},
	}
	var newcomer, fastest *stats.Delta
	bestPct := math.Inf(-1)
	for d := range comparison.Deltas() {
		changes.AddRow(d.Key, Count(d.Baseline), Count(d.Current), SignedCount(d.Delta), ChangeText(d, 1))
		if d.IsNew && (newcomer == nil || d.Current > newcomer.Current) {
			newcomer = &d
		}
		if pct, ok := d.Percent(); ok && pct > bestPct {
			fastest, bestPct = &d, pct
		}
	}
	r.Tables = append(r.Tables, changes)

	if newcomer != nil {
		r.metric("Strongest newcomer", newcomer.Key, SignedCount(newcomer.Delta)+" rentals, new in "+comparison.CurrentLabel())
	}
	if fastest != nil {
		r.metric("Fastest growth", fastest.Key, ChangeText(*fastest, 1)+" since "+comparison.BaselineLabel())
	}

	growth, err := comparison.TopGrowth(opts.TopN)
	if err != nil {
		return err
	}
	top := Table{Title: fmt.Sprintf("Top %d gains", opts.TopN), Columns: []string{"Station", "Change", "Change %"}}
	for _, d := range growth {
		top.AddRow(d.Key, SignedCount(d.Delta), ChangeText(d, 1))
	}
	r.Tables = append(r.Tables, top)

	decline, err := comparison.TopDecline(opts.TopN)
	if err != nil {
		return err
	}
	if len(decline) == 0 {
		r.insight("None of the tracked stations lost foreign rentals between %s and %s",
			comparison.BaselineLabel(), comparison.CurrentLabel())
	}
	for _, d := range decline {
		r.insight("%s lost %s rentals (%s)", d.Key, Count(-d.Delta), ChangeText(d, 1))
	}

	rental, ret := datasets.RentalReturnTop5()
	rentalRank, err := positionalDistribution(rental)
	if err != nil {
		return fmt.Errorf("rental top five: %w", err)
	}
	returnRank, err := positionalDistribution(ret)
	if err != nil {
		return fmt.Errorf("return top five: %w", err)
	}
	overlap, err := stats.NewComparison(rentalRank, returnRank, "rental", "return")
	if err != nil {
		return err
	}
	common := overlap.Common()

	pairs := Table{Title: "2024 top five by rental and by return", Columns: []string{"Rank", "Rental", "Return"}}
	for i := range max(len(rental), len(ret)) {
		pairs.AddRow(strconv.Itoa(i+1), at(rental, i), at(ret, i))
	}
	r.Tables = append(r.Tables, pairs)

	r.metric("Rental and return overlap", fmt.Sprintf("%d of %d", len(common), len(rental)),
		"stations in both 2024 top five lists")
	r.insight("Stations in both top five lists: %s", strings.Join(common, ", "))
	if newcomer != nil {
		r.insight("%s entered the %s ranking with %s rentals after not appearing in %s",
			newcomer.Key, comparison.CurrentLabel(), Count(newcomer.Current), comparison.BaselineLabel())
	}
	return nil
}

// positionalDistribution scores a ranked list so that the first entry gets
// len(labels) points and the last gets one.
func positionalDistribution(labels []string) (*stats.Distribution, error) {
	values := make([]float64, len(labels))
	for i := range labels {
		values[i] = float64(len(labels) - i)
	}
	return stats.DistributionOf(labels, values)
}

// presence scores every label one, marking a station as listed in a year.
func presence(labels []string) (*stats.Distribution, error) {
	ones := make([]float64, len(labels))
	for i := range ones {
		ones[i] = 1
	}
	return stats.DistributionOf(labels, ones)
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func buildStationPatterns(r *Report, _ Options, classifier *stats.Classifier) error {
	returns := datasets.AllRiderStationReturns()
	if len(returns) == 0 {
		return fmt.Errorf("%w: no station returns", stats.ErrEmptySelection)
	}

	labels := make([]string, len(returns))
	trips := make([]float64, len(returns))
	for i, s := range returns {
		labels[i] = s.Station
		trips[i] = s.Trips
	}
	volume, err := stats.DistributionOf(labels, trips)
	if err != nil {
		return fmt.Errorf("station trips: %w", err)
	}
	shares, err := volume.Shares()
	if err != nil {
		return err
	}

	bands := classifier.Bands()
	patternCounts := make(map[string]float64, len(bands))
	table := Table{
		Title:   "Same-station returns by station",
		Columns: []string{"Station", "Trips", "Share of trips", "Same-station return", "Pattern"},
	}
	low, high := returns[0], returns[0]
	for i, s := range returns {
		pattern, err := classifier.Classify(s.SameStationPct)
		if err != nil {
			return fmt.Errorf("station %s: %w", s.ID, err)
		}
		patternCounts[pattern]++
		if s.SameStationPct < low.SameStationPct {
			low = s
		}
		if s.SameStationPct > high.SameStationPct {
			high = s
		}
		table.AddRow(s.Station, Count(s.Trips), Percent(shares[i].Percent, 1), Percent(s.SameStationPct, 1), pattern)
	}

	bandLabels := make([]string, len(bands))
	bandCounts := make([]float64, len(bands))
	for i, b := range bands {
		bandLabels[i] = b.Label
		bandCounts[i] = patternCounts[b.Label]
	}
	patterns, err := stats.DistributionOf(bandLabels, bandCounts)
	if err != nil {
		return fmt.Errorf("pattern counts: %w", err)
	}
	dominant := patterns.Ranked()[0]

	busiest := volume.Ranked()[0]
	r.metric("Trips analyzed", Count(volume.Total()), fmt.Sprintf("%d stations, six months", volume.Len()))
	r.metric("Busiest station", busiest.Label, Count(busiest.Value)+" trips")
	r.metric("Same-station return range",
		fmt.Sprintf("%s-%s", Percent(low.SameStationPct, 1), Percent(high.SameStationPct, 1)),
		fmt.Sprintf("%s to %s", low.Station, high.Station))
	r.metric("Dominant pattern", dominant.Label,
		fmt.Sprintf("%d of %d stations", int(dominant.Value), volume.Len()))

	legend := Table{Title: "Pattern bands", Columns: []string{"Pattern", "Same-station return", "Stations"}}
	lower := 0.0
	for i, b := range bands {
		legend.AddRow(b.Label, bandRange(lower, b.Upper), strconv.Itoa(int(bandCounts[i])))
		lower = b.Upper
	}
	r.Tables = append(r.Tables, table, legend)

	r.insight("%s returns the fewest bikes to the starting station (%s), consistent with one-way trips",
		low.Station, Percent(low.SameStationPct, 1))
	r.insight("%s has the highest same-station return rate (%s), typical of leisure loops",
		high.Station, Percent(high.SameStationPct, 1))
	return nil
}

func bandRange(lower, upper float64) string {
	from := decimal.NewFromFloat(lower).String()
	if math.IsInf(upper, 1) {
		return from + "% and above"
	}
	return fmt.Sprintf("%s%% to under %s%%", from, decimal.NewFromFloat(upper).String())
}
