package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rewired-gh/ttareungi-insights/internal/datasets"
	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

func isSpring(m time.Month) bool { return m >= time.March && m <= time.May }

func isWinter(m time.Month) bool { return m == time.December || m <= time.February }

func buildForeignUsage(r *Report, _ Options, _ *stats.Classifier) error {
	annual, err := yearSeries(datasets.ForeignAnnualRentals())
	if err != nil {
		return fmt.Errorf("annual rentals: %w", err)
	}

	last := annual.Last()
	var lastGrowth stats.Growth[int]
	annualTable := Table{Title: "Annual foreign rentals", Columns: []string{"Year", "Rentals", "Growth"}}
	annualTable.AddRow(strconv.Itoa(annual.First().Period), Count(annual.First().Value), notAvailable)
	for g := range annual.GrowthRates() {
		v, _ := annual.Value(g.To)
		annualTable.AddRow(strconv.Itoa(g.To), Count(v), GrowthText(g, 1))
		lastGrowth = g
	}

	r.metric(fmt.Sprintf("%d rentals", last.Period), Count(last.Value), GrowthText(lastGrowth, 1)+" year on year")
	r.metric(fmt.Sprintf("Growth since %d", annual.First().Period), GrowthText(annual.TotalGrowth(), 0),
		"compound "+GrowthText(annual.CompoundGrowth(), 1)+" a year")

	years := datasets.MonthlyYears()
	latest := years[len(years)-1]

	monthly := make(map[int]*stats.TimeSeries[time.Month], len(years))
	for _, year := range years {
		counts, ok := datasets.ForeignMonthlyRentals(year)
		if !ok {
			return fmt.Errorf("%w: no monthly rentals for %d", stats.ErrEmptySelection, year)
		}
		if monthly[year], err = monthSeries(counts); err != nil {
			return fmt.Errorf("monthly rentals %d: %w", year, err)
		}
	}

	weekly := make(map[int]*stats.TimeSeries[datasets.Weekday], len(years))
	for _, year := range years {
		counts, ok := datasets.ForeignWeekdayRentals(year)
		if !ok {
			return fmt.Errorf("%w: no weekday rentals for %d", stats.ErrEmptySelection, year)
		}
		if weekly[year], err = weekdaySeries(counts); err != nil {
			return fmt.Errorf("weekday rentals %d: %w", year, err)
		}
	}

	busiestDay := weekly[latest].Peak()
	busiestMonth := monthly[latest].Peak()
	r.metric("Busiest weekday", busiestDay.Period.String(), fmt.Sprintf("%s rentals in %d", Count(busiestDay.Value), latest))
	r.metric("Busiest month", busiestMonth.Period.String(), fmt.Sprintf("%s rentals in %d", Count(busiestMonth.Value), latest))

	r.Tables = append(r.Tables, annualTable)
	r.Tables = append(r.Tables, monthlyTable(years, monthly))
	r.Tables = append(r.Tables, weekdayTable(years, weekly))

	splits, overall, err := weekSplits()
	if err != nil {
		return err
	}
	split := Table{Title: "Weekday vs weekend average", Columns: []string{"Year", "Weekday", "Weekend", "Weekend / weekday"}}
	for _, s := range splits {
		split.AddRow(strconv.Itoa(s.Year), Count(s.Weekday), Count(s.Weekend), Ratio(s.ratio()))
	}
	split.AddRow("All years", Count(overall.Weekday), Count(overall.Weekend), Ratio(overall.ratio()))
	r.Tables = append(r.Tables, split)

	for _, year := range years {
		ts := monthly[year]
		spring, err := ts.WindowAverage(isSpring)
		if err != nil {
			return err
		}
		winter, err := ts.WindowAverage(isWinter)
		if err != nil {
			return err
		}
		peak, trough := ts.Peak(), ts.Trough()
		r.insight("%d: peak in %s (%s), low in %s (%s); spring months average %s rentals against %s in winter",
			year, peak.Period, Count(peak.Value), trough.Period, Count(trough.Value), Count(spring), Count(winter))
	}
	r.insight("Weekends see %s the rentals of an average weekday, pointing to leisure rather than commuting use",
		Ratio(overall.ratio()))
	return nil
}

func monthlyTable(years []int, monthly map[int]*stats.TimeSeries[time.Month]) Table {
	t := Table{Title: "Monthly foreign rentals", Columns: []string{"Month"}}
	for _, year := range years {
		t.Columns = append(t.Columns, strconv.Itoa(year))
	}
	for m := time.January; m <= time.December; m++ {
		row := []string{m.String()}
		for _, year := range years {
			v, ok := monthly[year].Value(m)
			if !ok {
				row = append(row, notAvailable)
				continue
			}
			row = append(row, Count(v))
		}
		t.AddRow(row...)
	}
	return t
}

func weekdayTable(years []int, weekly map[int]*stats.TimeSeries[datasets.Weekday]) Table {
	t := Table{Title: "Foreign rentals by weekday", Columns: []string{"Day"}}
	for _, year := range years {
		t.Columns = append(t.Columns, strconv.Itoa(year))
	}
	for _, day := range datasets.Weekdays() {
		row := []string{day.String()}
		for _, year := range years {
			v, ok := weekly[year].Value(day)
			if !ok {
				row = append(row, notAvailable)
				continue
			}
			row = append(row, Count(v))
		}
		t.AddRow(row...)
	}
	return t
}
