package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

func ptr(v float64) *float64 { return &v }

func TestCount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{71077, "71,077"},
		{226775, "226,775"},
		{16369629, "16,369,629"},
		{1234.5, "1,235"},
		{-5674, "-5,674"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.in))
	}
}

func TestMillions(t *testing.T) {
	assert.Equal(t, "16.37M", Millions(16369629))
	assert.Equal(t, "0.97M", Millions(967003))
	assert.Equal(t, "17.50M", Millions(17502756))
}

func TestPercentRoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "10.47%", Percent(10.465, 2))
	assert.Equal(t, "0.124%", Percent(0.1238, 3))
	assert.Equal(t, "80%", Percent(80.1, 0))
	assert.Equal(t, "+166.5%", SignedPercent(166.48, 1))
	assert.Equal(t, "-14.0%", SignedPercent(-13.954, 1))
	assert.Equal(t, "0.0%", SignedPercent(0.01, 1))
	assert.Equal(t, "+0.038%p", SignedPoints(0.0381, 3))
	assert.Equal(t, "1.4x", Ratio(1.3749))
}

func TestSignedCount(t *testing.T) {
	assert.Equal(t, "+857", SignedCount(857))
	assert.Equal(t, "-5,674", SignedCount(-5674))
	assert.Equal(t, "0", SignedCount(0.2))
}

func TestGrowthText(t *testing.T) {
	assert.Equal(t, "+26.8%", GrowthText(stats.Growth[int]{Rate: ptr(26.75)}, 1))
	assert.Equal(t, "n/a", GrowthText(stats.Growth[int]{Undefined: true}, 1))
}

func TestChangeText(t *testing.T) {
	assert.Equal(t, "+172.4%", ChangeText(stats.Delta{PercentChange: ptr(172.388)}, 1))
	assert.Equal(t, "new", ChangeText(stats.Delta{IsNew: true}, 1))
}
