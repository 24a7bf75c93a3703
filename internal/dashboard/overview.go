package dashboard

import (
	"fmt"

	"github.com/rewired-gh/ttareungi-insights/internal/datasets"
	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

func buildOverview(r *Report, _ Options, _ *stats.Classifier) error {
	rentals, err := yearSeries(datasets.ForeignAnnualRentals())
	if err != nil {
		return fmt.Errorf("annual rentals: %w", err)
	}
	first, last := rentals.First(), rentals.Last()

	r.metric("Analysis period", fmt.Sprintf("%d-%d", first.Period, last.Period),
		fmt.Sprintf("%d years of foreign rentals", rentals.Len()))
	r.metric("Foreign rentals", fmt.Sprintf("%s -> %s", Count(first.Value), Count(last.Value)),
		GrowthText(rentals.TotalGrowth(), 0)+" since "+fmt.Sprint(first.Period))

	station, years, err := longestLeader()
	if err != nil {
		return err
	}
	r.metric("Top station", station, fmt.Sprintf("#1 for %d years running", years))

	_, overall, err := weekSplits()
	if err != nil {
		return err
	}
	r.metric("Weekend demand", Ratio(overall.ratio()), "weekend vs weekday average")

	totals, err := yearSeries(datasets.VisitorTotals())
	if err != nil {
		return fmt.Errorf("visitor totals: %w", err)
	}
	visitors := totals.Last()
	r.metric(fmt.Sprintf("%d visitors", visitors.Period), Millions(visitors.Value),
		GrowthText(totals.TotalGrowth(), 1)+" since "+fmt.Sprint(totals.First().Period))

	continents, ok := datasets.VisitorsByContinent(visitors.Period)
	if !ok {
		return fmt.Errorf("%w: no continent data for %d", stats.ErrEmptySelection, visitors.Period)
	}
	byContinent, err := categoryDistribution(continents)
	if err != nil {
		return err
	}
	leader := byContinent.Ranked()[0]
	share, err := byContinent.ShareOf(leader.Label)
	if err != nil {
		return err
	}
	r.metric("Largest source", leader.Label, Percent(share*100, 1)+" of visitors")

	sections := Table{Title: "Dashboard pages", Columns: []string{"Page", "Title"}}
	for _, id := range Pages() {
		if id == PageOverview {
			continue
		}
		sections.AddRow(string(id), id.Title())
	}
	r.Tables = append(r.Tables, sections)

	grew := true
	for g := range rentals.GrowthRates() {
		if rate, ok := g.Percent(); !ok || rate <= 0 {
			grew = false
		}
	}
	if grew {
		r.insight("Foreign rentals grew every year from %d to %d", first.Period, last.Period)
	}
	low := totals.Trough()
	r.insight("Foreign arrivals recovered from %s in %d to %s in %d",
		Millions(low.Value), low.Period, Millions(visitors.Value), visitors.Period)
	r.insight("%s has been the busiest station for foreign riders for %d straight years", station, years)
	return nil
}

// longestLeader returns the station ranked first in the most consecutive
// years, counting back from the latest year.
func longestLeader() (string, int, error) {
	years := datasets.TopStationYears()
	var station string
	run := 0
	for i := len(years) - 1; i >= 0; i-- {
		counts, ok := datasets.ForeignTopStations(years[i])
		if !ok {
			return "", 0, fmt.Errorf("%w: no top stations for %d", stats.ErrEmptySelection, years[i])
		}
		d, err := stationDistribution(counts)
		if err != nil {
			return "", 0, fmt.Errorf("top stations %d: %w", years[i], err)
		}
		ranked := d.Ranked()
		if len(ranked) == 0 {
			break
		}
		if station == "" {
			station = ranked[0].Label
		}
		if ranked[0].Label != station {
			break
		}
		run++
	}
	if station == "" {
		return "", 0, fmt.Errorf("%w: no station rankings", stats.ErrEmptySelection)
	}
	return station, run, nil
}
