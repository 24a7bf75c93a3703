package stats

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annualSeries(t *testing.T) *TimeSeries[int] {
	t.Helper()
	ts, err := SeriesOf([]int{2021, 2022, 2023, 2024}, []float64{19049, 50761, 64342, 71077})
	require.NoError(t, err)
	return ts
}

func TestNewTimeSeries_Validation(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point[int]
		wantErr bool
	}{
		{name: "single point", points: []Point[int]{{2021, 5}}},
		{name: "increasing periods", points: []Point[int]{{2021, 5}, {2022, 0}, {2024, 3}}},
		{name: "empty", points: nil, wantErr: true},
		{name: "duplicate period", points: []Point[int]{{2021, 5}, {2021, 6}}, wantErr: true},
		{name: "decreasing period", points: []Point[int]{{2022, 5}, {2021, 6}}, wantErr: true},
		{name: "negative value", points: []Point[int]{{2021, -1}}, wantErr: true},
		{name: "NaN value", points: []Point[int]{{2021, math.NaN()}}, wantErr: true},
		{name: "infinite value", points: []Point[int]{{2021, math.Inf(1)}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeSeries(tt.points)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, ts)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.points), ts.Len())
		})
	}
}

func TestSeriesOf_LengthMismatch(t *testing.T) {
	_, err := SeriesOf([]int{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewTimeSeries_CopiesInput(t *testing.T) {
	points := []Point[int]{{1, 10}, {2, 20}}
	ts, err := NewTimeSeries(points)
	require.NoError(t, err)

	points[0].Value = 999
	assert.Equal(t, 10.0, ts.First().Value)

	out := ts.Points()
	out[1].Value = 999
	assert.Equal(t, 20.0, ts.Last().Value)
}

func TestGrowthRates_AnnualUsage(t *testing.T) {
	rates := slices.Collect(annualSeries(t).GrowthRates())
	require.Len(t, rates, 3)

	want := []struct {
		label string
		rate  float64
	}{
		{"2021-2022", 166.48},
		{"2022-2023", 26.75},
		{"2023-2024", 10.47},
	}
	for i, w := range want {
		assert.Equal(t, w.label, rates[i].Label)
		rate, ok := rates[i].Percent()
		require.True(t, ok)
		assert.InDelta(t, w.rate, rate, 0.01, rates[i].Label)
		assert.False(t, rates[i].Undefined)
	}
}

func TestGrowthRates_FormulaAndLength(t *testing.T) {
	values := []float64{3, 0, 4, 4, 10, 1}
	periods := []int{1, 2, 3, 4, 5, 6}
	ts, err := SeriesOf(periods, values)
	require.NoError(t, err)

	rates := slices.Collect(ts.GrowthRates())
	require.Len(t, rates, len(values)-1)

	for i, g := range rates {
		prev, next := values[i], values[i+1]
		assert.Equal(t, periods[i], g.From)
		assert.Equal(t, periods[i+1], g.To)
		if prev == 0 {
			assert.True(t, g.Undefined, "growth after a zero must be flagged")
			assert.Nil(t, g.Rate)
			continue
		}
		assert.False(t, g.Undefined)
		require.NotNil(t, g.Rate)
		assert.InDelta(t, (next-prev)/prev*100, *g.Rate, 1e-9)
		assert.False(t, math.IsNaN(*g.Rate) || math.IsInf(*g.Rate, 0))
	}
}

func TestGrowthRates_SinglePointIsEmpty(t *testing.T) {
	ts, err := NewTimeSeries([]Point[string]{{"2024", 1}})
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(ts.GrowthRates()))
}

func TestGrowthRates_StopsEarly(t *testing.T) {
	var seen int
	for range annualSeries(t).GrowthRates() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestTotalAndCompoundGrowth(t *testing.T) {
	ts := annualSeries(t)

	total, ok := ts.TotalGrowth().Percent()
	require.True(t, ok)
	assert.InDelta(t, 273.13, total, 0.01)
	assert.Equal(t, "2021-2024", ts.TotalGrowth().Label)

	cagr, ok := ts.CompoundGrowth().Percent()
	require.True(t, ok)
	assert.InDelta(t, (math.Pow(71077.0/19049.0, 1.0/3)-1)*100, cagr, 1e-9)

	single, err := NewTimeSeries([]Point[int]{{2024, 5}})
	require.NoError(t, err)
	assert.True(t, single.TotalGrowth().Undefined)
	assert.True(t, single.CompoundGrowth().Undefined)

	fromZero, err := SeriesOf([]int{1, 2}, []float64{0, 5})
	require.NoError(t, err)
	assert.True(t, fromZero.TotalGrowth().Undefined)
	assert.True(t, fromZero.CompoundGrowth().Undefined)
}

func TestPeakAndTrough_EarliestWinsTies(t *testing.T) {
	ts, err := SeriesOf([]int{1, 2, 3, 4, 5}, []float64{4, 9, 1, 9, 1})
	require.NoError(t, err)

	assert.Equal(t, Point[int]{Period: 2, Value: 9}, ts.Peak())
	assert.Equal(t, Point[int]{Period: 3, Value: 1}, ts.Trough())
}

func TestWindowAverage(t *testing.T) {
	days := []string{"1-mon", "2-tue", "3-wed", "4-thu", "5-fri", "6-sat", "7-sun"}
	ts, err := SeriesOf(days, []float64{9654, 8637, 8930, 9208, 9995, 11758, 12895})
	require.NoError(t, err)

	weekend := func(p string) bool { return p >= "6" }
	weekday := func(p string) bool { return p < "6" }

	we, err := ts.WindowAverage(weekend)
	require.NoError(t, err)
	assert.InDelta(t, 12326.5, we, 1e-9)

	wd, err := ts.WindowAverage(weekday)
	require.NoError(t, err)
	assert.InDelta(t, 9284.8, wd, 1e-9)

	_, err = ts.WindowAverage(func(string) bool { return false })
	require.ErrorIs(t, err, ErrEmptySelection)

	_, err = ts.WindowAverage(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestValueLookup(t *testing.T) {
	ts := annualSeries(t)

	v, ok := ts.Value(2023)
	require.True(t, ok)
	assert.Equal(t, 64342.0, v)

	_, ok = ts.Value(2025)
	assert.False(t, ok)
	assert.Equal(t, []float64{19049, 50761, 64342, 71077}, ts.Values())
}
