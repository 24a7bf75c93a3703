package stats

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
)

// Point is a single observation of a time series.
type Point[P cmp.Ordered] struct {
	Period P       `json:"period"`
	Value  float64 `json:"value"`
}

// Growth is the relative change between two periods of a series, in percent.
// Rate is nil and Undefined is true when the earlier value is zero.
type Growth[P cmp.Ordered] struct {
	From      P        `json:"from"`
	To        P        `json:"to"`
	Label     string   `json:"label"`
	Rate      *float64 `json:"rate"`
	Undefined bool     `json:"undefined_growth"`
}

// Percent returns the growth rate and whether it is defined.
func (g Growth[P]) Percent() (float64, bool) {
	if g.Rate == nil {
		return 0, false
	}
	return *g.Rate, true
}

// TimeSeries is an ordered sequence of observations with strictly increasing periods.
type TimeSeries[P cmp.Ordered] struct {
	points []Point[P]
}

// NewTimeSeries validates points and builds a series from them. Points must be
// non-empty, in strictly increasing period order, and carry finite
// non-negative values.
func NewTimeSeries[P cmp.Ordered](points []Point[P]) (*TimeSeries[P], error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: time series needs at least one point", ErrInvalidInput)
	}
	for i, p := range points {
		if msg := checkValue(p.Value); msg != "" {
			return nil, fmt.Errorf("%w: period %v: %s", ErrInvalidInput, p.Period, msg)
		}
		if i > 0 && cmp.Compare(points[i-1].Period, p.Period) >= 0 {
			return nil, fmt.Errorf("%w: period %v must come after %v", ErrInvalidInput, p.Period, points[i-1].Period)
		}
	}
	return &TimeSeries[P]{points: slices.Clone(points)}, nil
}

// SeriesOf zips periods and values into a series. The slices must have equal length.
func SeriesOf[P cmp.Ordered](periods []P, values []float64) (*TimeSeries[P], error) {
	if len(periods) != len(values) {
		return nil, fmt.Errorf("%w: %d periods but %d values", ErrInvalidInput, len(periods), len(values))
	}
	points := make([]Point[P], len(periods))
	for i := range periods {
		points[i] = Point[P]{Period: periods[i], Value: values[i]}
	}
	return NewTimeSeries(points)
}

// Len returns the number of points.
func (ts *TimeSeries[P]) Len() int {
	return len(ts.points)
}

// Points returns a copy of the observations in period order.
func (ts *TimeSeries[P]) Points() []Point[P] {
	return slices.Clone(ts.points)
}

// Values returns a copy of the observed values in period order.
func (ts *TimeSeries[P]) Values() []float64 {
	values := make([]float64, len(ts.points))
	for i, p := range ts.points {
		values[i] = p.Value
	}
	return values
}

// Value looks up the observation for period.
func (ts *TimeSeries[P]) Value(period P) (float64, bool) {
	i, found := slices.BinarySearchFunc(ts.points, period, func(p Point[P], target P) int {
		return cmp.Compare(p.Period, target)
	})
	if !found {
		return 0, false
	}
	return ts.points[i].Value, true
}

// First returns the earliest observation.
func (ts *TimeSeries[P]) First() Point[P] {
	return ts.points[0]
}

// Last returns the latest observation.
func (ts *TimeSeries[P]) Last() Point[P] {
	return ts.points[len(ts.points)-1]
}

// GrowthRates yields the growth between each pair of consecutive periods,
// n-1 entries in period order. A series with a single point yields nothing.
func (ts *TimeSeries[P]) GrowthRates() iter.Seq[Growth[P]] {
	return func(yield func(Growth[P]) bool) {
		for i := 1; i < len(ts.points); i++ {
			if !yield(growthBetween(ts.points[i-1], ts.points[i])) {
				return
			}
		}
	}
}

// TotalGrowth returns the growth from the first to the last period.
// It is undefined for a single-point series.
func (ts *TimeSeries[P]) TotalGrowth() Growth[P] {
	first, last := ts.First(), ts.Last()
	if len(ts.points) < 2 {
		return undefinedGrowth(first, last)
	}
	return growthBetween(first, last)
}

// CompoundGrowth returns the compound per-period growth rate from the first
// to the last period: ((last/first)^(1/(n-1)) - 1) * 100.
func (ts *TimeSeries[P]) CompoundGrowth() Growth[P] {
	first, last := ts.First(), ts.Last()
	if len(ts.points) < 2 || first.Value == 0 {
		return undefinedGrowth(first, last)
	}
	steps := float64(len(ts.points) - 1)
	rate := (math.Pow(last.Value/first.Value, 1/steps) - 1) * 100
	g := undefinedGrowth(first, last)
	g.Rate, g.Undefined = &rate, false
	return g
}

// Peak returns the observation with the largest value; the earliest period wins ties.
func (ts *TimeSeries[P]) Peak() Point[P] {
	best := ts.points[0]
	for _, p := range ts.points[1:] {
		if p.Value > best.Value {
			best = p
		}
	}
	return best
}

// Trough returns the observation with the smallest value; the earliest period wins ties.
func (ts *TimeSeries[P]) Trough() Point[P] {
	best := ts.points[0]
	for _, p := range ts.points[1:] {
		if p.Value < best.Value {
			best = p
		}
	}
	return best
}

// WindowAverage returns the mean value over the periods accepted by keep.
func (ts *TimeSeries[P]) WindowAverage(keep func(P) bool) (float64, error) {
	if keep == nil {
		return 0, fmt.Errorf("%w: nil period predicate", ErrInvalidInput)
	}
	var sum float64
	var n int
	for _, p := range ts.points {
		if keep(p.Period) {
			sum += p.Value
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: no period matched the predicate", ErrEmptySelection)
	}
	return sum / float64(n), nil
}

func growthBetween[P cmp.Ordered](from, to Point[P]) Growth[P] {
	if from.Value == 0 {
		return undefinedGrowth(from, to)
	}
	rate := (to.Value - from.Value) / from.Value * 100
	return Growth[P]{
		From:  from.Period,
		To:    to.Period,
		Label: periodLabel(from.Period, to.Period),
		Rate:  &rate,
	}
}

func undefinedGrowth[P cmp.Ordered](from, to Point[P]) Growth[P] {
	return Growth[P]{
		From:      from.Period,
		To:        to.Period,
		Label:     periodLabel(from.Period, to.Period),
		Undefined: true,
	}
}

func periodLabel[P cmp.Ordered](from, to P) string {
	return fmt.Sprintf("%v-%v", from, to)
}

// checkValue returns a description of what is wrong with v, or "" when v is usable.
func checkValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "value is NaN"
	case math.IsInf(v, 0):
		return "value is infinite"
	case v < 0:
		return fmt.Sprintf("value %v is negative", v)
	}
	return ""
}
