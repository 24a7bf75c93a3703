package dashboard

import (
	"fmt"
	"strconv"

	"github.com/rewired-gh/ttareungi-insights/internal/datasets"
	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

const (
	riderGeneral = "General riders"
	riderForeign = "Foreign riders"
)

func riderDistribution(s datasets.RiderSplit) (*stats.Distribution, error) {
	return stats.DistributionOf([]string{riderGeneral, riderForeign}, []float64{s.General, s.Foreign})
}

func buildForeignRatio(r *Report, _ Options, _ *stats.Classifier) error {
	splits := datasets.RiderSplits()
	if len(splits) == 0 {
		return fmt.Errorf("%w: no rider splits", stats.ErrEmptySelection)
	}

	yearly := make([]*stats.Distribution, len(splits))
	foreignPoints := make([]stats.Point[int], len(splits))
	table := Table{
		Title:   "General and foreign rentals",
		Columns: []string{"Year", "General", "Foreign", "Total", "Foreign share"},
	}
	var shareSum float64
	rising := true
	prevShare := -1.0
	for i, s := range splits {
		d, err := riderDistribution(s)
		if err != nil {
			return fmt.Errorf("rider split %d: %w", s.Year, err)
		}
		share, err := d.ShareOf(riderForeign)
		if err != nil {
			return fmt.Errorf("rider split %d: %w", s.Year, err)
		}
		yearly[i] = d
		foreignPoints[i] = stats.Point[int]{Period: s.Year, Value: s.Foreign}
		shareSum += share * 100
		rising = rising && share > prevShare
		prevShare = share
		table.AddRow(strconv.Itoa(s.Year), Count(s.General), Count(s.Foreign), Count(d.Total()), Percent(share*100, 3))
	}

	foreign, err := stats.NewTimeSeries(foreignPoints)
	if err != nil {
		return fmt.Errorf("foreign rentals: %w", err)
	}

	first, last := splits[0], splits[len(splits)-1]
	comparison, err := stats.NewComparison(yearly[0], yearly[len(yearly)-1], strconv.Itoa(first.Year), strconv.Itoa(last.Year))
	if err != nil {
		return err
	}
	shifts, err := comparison.ShareShifts()
	if err != nil {
		return err
	}
	var foreignShift stats.ShareShift
	for _, s := range shifts {
		if s.Key == riderForeign {
			foreignShift = s
		}
	}

	r.metric(fmt.Sprintf("%d foreign share", last.Year), Percent(foreignShift.CurrentShare*100, 3),
		SignedPoints(foreignShift.Points, 3)+" since "+strconv.Itoa(first.Year))
	r.metric(fmt.Sprintf("%d foreign rentals", last.Year), Count(last.Foreign),
		GrowthText(foreign.TotalGrowth(), 1)+" since "+strconv.Itoa(first.Year))
	r.metric("Compound annual growth", GrowthText(foreign.CompoundGrowth(), 1),
		fmt.Sprintf("%d-%d", first.Year, last.Year))
	r.metric("Average foreign share", Percent(shareSum/float64(len(splits)), 3),
		fmt.Sprintf("%d-year mean", len(splits)))

	combined := yearly[0]
	for _, d := range yearly[1:] {
		if combined, err = combined.Merge(d, stats.Sum); err != nil {
			return fmt.Errorf("combine rider splits: %w", err)
		}
	}
	composition, err := combined.Shares()
	if err != nil {
		return err
	}
	total := Table{
		Title:   fmt.Sprintf("Combined %d-%d composition", first.Year, last.Year),
		Columns: []string{"Riders", "Rentals", "Share"},
	}
	for _, s := range composition {
		total.AddRow(s.Label, Count(s.Value), Percent(s.Percent, 3))
	}

	r.Tables = append(r.Tables, table, total)

	if rising {
		r.insight("Foreign riders remain a small minority at %s of all rentals, but their share rose every year",
			Percent(foreignShift.CurrentShare*100, 3))
	} else {
		r.insight("Foreign riders account for %s of all rentals in %d", Percent(foreignShift.CurrentShare*100, 3), last.Year)
	}
	for g := range foreign.GrowthRates() {
		r.insight("Foreign rentals %s: %s", g.Label, GrowthText(g, 1))
	}
	return nil
}
