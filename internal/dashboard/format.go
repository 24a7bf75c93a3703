package dashboard

import (
	"cmp"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

// notAvailable is printed wherever a derived figure has no defined value.
const notAvailable = "n/a"

// newEntry is printed instead of a percent change for keys with no baseline.
const newEntry = "new"

// Count formats v as a whole number with thousands separators: 71077 -> "71,077".
func Count(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// Millions formats v in millions with two decimals: 16369629 -> "16.37M".
func Millions(v float64) string {
	return decimal.NewFromFloat(v).Shift(-6).StringFixed(2) + "M"
}

// Percent formats a percentage rounded half away from zero: 10.465 -> "10.47%".
func Percent(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places) + "%"
}

// SignedPercent is Percent with an explicit plus sign on increases.
func SignedPercent(v float64, places int32) string {
	return signed(v, places) + "%"
}

// SignedPoints formats a difference of two percentages in percentage points.
func SignedPoints(v float64, places int32) string {
	return signed(v, places) + "%p"
}

// Ratio formats a multiplier: 1.3276 -> "1.3x".
func Ratio(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1) + "x"
}

// GrowthText formats a growth rate, or n/a when it is undefined.
func GrowthText[P cmp.Ordered](g stats.Growth[P], places int32) string {
	rate, ok := g.Percent()
	if !ok {
		return notAvailable
	}
	return SignedPercent(rate, places)
}

// ChangeText formats a comparison delta's percent change, or "new" for keys
// that had no baseline value.
func ChangeText(d stats.Delta, places int32) string {
	pct, ok := d.Percent()
	if !ok {
		return newEntry
	}
	return SignedPercent(pct, places)
}

// SignedCount formats an absolute change with an explicit plus sign on increases.
func SignedCount(v float64) string {
	if math.Round(v) > 0 {
		return "+" + Count(v)
	}
	return Count(v)
}

func signed(v float64, places int32) string {
	d := decimal.NewFromFloat(v).Round(places)
	if d.IsPositive() {
		return "+" + d.StringFixed(places)
	}
	return d.StringFixed(places)
}
