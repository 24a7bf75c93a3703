package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiderSplitsMatchAnnualRentals(t *testing.T) {
	annual := map[int]float64{}
	for _, yv := range ForeignAnnualRentals() {
		annual[yv.Year] = yv.Value
	}
	for _, split := range RiderSplits() {
		assert.Equal(t, annual[split.Year], split.Foreign, "year %d", split.Year)
	}
}

func TestMonthlyAndWeekdayTablesAreComplete(t *testing.T) {
	for _, year := range MonthlyYears() {
		months, ok := ForeignMonthlyRentals(year)
		require.True(t, ok, "year %d", year)
		assert.Len(t, months, 12)

		days, ok := ForeignWeekdayRentals(year)
		require.True(t, ok, "year %d", year)
		assert.Len(t, days, len(Weekdays()))
	}

	_, ok := ForeignMonthlyRentals(2021)
	assert.False(t, ok)
	_, ok = ForeignWeekdayRentals(2021)
	assert.False(t, ok)
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Weekday(?)", Weekday(0).String())
	assert.True(t, Saturday.IsWeekend())
	assert.False(t, Friday.IsWeekend())
}

func TestTablesReturnFreshValues(t *testing.T) {
	first := ForeignAnnualRentals()
	first[0].Value = 0
	assert.Equal(t, 19049.0, ForeignAnnualRentals()[0].Value)

	days, _ := ForeignWeekdayRentals(2024)
	days[0] = 0
	again, _ := ForeignWeekdayRentals(2024)
	assert.Equal(t, 9654.0, again[0])
}

func TestGenderRemainderIsNonNegative(t *testing.T) {
	for _, g := range VisitorsByGender() {
		assert.GreaterOrEqual(t, g.Unrecorded(), 0.0, "year %d", g.Year)
	}
}

func TestLongTermSeriesCoverSameYears(t *testing.T) {
	totals := VisitorTotals()
	require.Len(t, totals, 15)
	assert.Equal(t, 2010, totals[0].Year)
	assert.Equal(t, 2024, totals[len(totals)-1].Year)

	for _, country := range Countries() {
		series, ok := VisitorsByCountry(country)
		require.True(t, ok, country)
		require.Len(t, series, len(totals))
		for i := range series {
			assert.Equal(t, totals[i].Year, series[i].Year)
			assert.Less(t, series[i].Value, totals[i].Value)
		}
	}
	_, ok := VisitorsByCountry("Atlantis")
	assert.False(t, ok)
}

func TestStationGrowthAgreesWithTopStations(t *testing.T) {
	period := StationGrowthPeriod()
	require.Less(t, period.BaselineYear, period.CurrentYear)

	check := func(year int, counts []StationCount) {
		top, ok := ForeignTopStations(year)
		require.True(t, ok, "year %d", year)
		listed := map[string]float64{}
		for _, c := range counts {
			listed[c.Station] = c.Count
		}
		for _, c := range top {
			if v, ok := listed[c.Station]; ok {
				assert.Equal(t, c.Count, v, "%s in %d", c.Station, year)
			}
		}
	}
	check(period.BaselineYear, period.Baseline)
	check(period.CurrentYear, period.Current)
}
