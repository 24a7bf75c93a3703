package stats

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Delta is the change of one key between the baseline and current sides of a
// Comparison. A key missing from a side counts as zero there. PercentChange is
// nil and IsNew is true when the baseline value is zero.
type Delta struct {
	Key           string   `json:"key"`
	Baseline      float64  `json:"baseline"`
	Current       float64  `json:"current"`
	Delta         float64  `json:"delta"`
	PercentChange *float64 `json:"percent_change"`
	IsNew         bool     `json:"is_new"`
}

// Percent returns the percent change and whether it is defined.
func (d Delta) Percent() (float64, bool) {
	if d.PercentChange == nil {
		return 0, false
	}
	return *d.PercentChange, true
}

// ShareShift is the change of a key's share between both sides, with
// Points expressed in percentage points.
type ShareShift struct {
	Key           string  `json:"key"`
	BaselineShare float64 `json:"baseline_share"`
	CurrentShare  float64 `json:"current_share"`
	Points        float64 `json:"points"`
}

// Comparison pairs a baseline and a current distribution, e.g. one year
// against the next, and derives per-key changes.
type Comparison struct {
	baseline      *Distribution
	current       *Distribution
	baselineLabel string
	currentLabel  string

	// seen holds one delta per key in first-seen order: baseline keys, then
	// keys only present in current. ranked is the same set by delta descending.
	seen   []Delta
	ranked []Delta
}

// NewComparison builds a comparison of current against baseline. The key sets
// of both sides may differ.
func NewComparison(baseline, current *Distribution, baselineLabel, currentLabel string) (*Comparison, error) {
	if baseline == nil || current == nil {
		return nil, fmt.Errorf("%w: comparison needs two distributions", ErrInvalidInput)
	}

	keys := unionLabels(baseline, current)
	seen := make([]Delta, len(keys))
	for i, key := range keys {
		before, _ := baseline.Value(key)
		after, _ := current.Value(key)
		seen[i] = newDelta(key, before, after)
	}

	ranked := slices.Clone(seen)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Delta > ranked[b].Delta
	})

	return &Comparison{
		baseline:      baseline,
		current:       current,
		baselineLabel: baselineLabel,
		currentLabel:  currentLabel,
		seen:          seen,
		ranked:        ranked,
	}, nil
}

func newDelta(key string, before, after float64) Delta {
	d := Delta{
		Key:      key,
		Baseline: before,
		Current:  after,
		Delta:    after - before,
	}
	if before == 0 {
		d.IsNew = true
		return d
	}
	pct := d.Delta / before * 100
	d.PercentChange = &pct
	return d
}

// BaselineLabel returns the name of the baseline side.
func (c *Comparison) BaselineLabel() string {
	return c.baselineLabel
}

// CurrentLabel returns the name of the current side.
func (c *Comparison) CurrentLabel() string {
	return c.currentLabel
}

// Len returns the number of distinct keys across both sides.
func (c *Comparison) Len() int {
	return len(c.seen)
}

// Deltas yields one record per key, largest increase first. Equal deltas keep
// first-seen order, baseline keys before current-only keys.
func (c *Comparison) Deltas() iter.Seq[Delta] {
	return func(yield func(Delta) bool) {
		for _, d := range c.ranked {
			if !yield(d) {
				return
			}
		}
	}
}

// TopGrowth returns at most n keys that increased, largest increase first.
func (c *Comparison) TopGrowth(n int) ([]Delta, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: top-growth size %d must be at least 1", ErrInvalidInput, n)
	}
	var out []Delta
	for _, d := range c.ranked {
		if len(out) == n {
			break
		}
		if d.Delta > 0 {
			out = append(out, d)
		}
	}
	if out == nil {
		return []Delta{}, nil
	}
	return out, nil
}

// TopDecline returns at most n keys that decreased, largest decrease first.
// Equal decreases keep first-seen order.
func (c *Comparison) TopDecline(n int) ([]Delta, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: top-decline size %d must be at least 1", ErrInvalidInput, n)
	}
	out := []Delta{}
	for _, d := range c.seen {
		if d.Delta < 0 {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Delta < out[b].Delta
	})
	if n < len(out) {
		out = out[:n]
	}
	return out, nil
}

// ShareShifts returns, in first-seen order, how each key's share of its side
// moved between baseline and current.
func (c *Comparison) ShareShifts() ([]ShareShift, error) {
	if c.baseline.Total() == 0 || c.current.Total() == 0 {
		return nil, fmt.Errorf("%w: both sides need a positive total", ErrDegenerateDistribution)
	}
	shifts := make([]ShareShift, len(c.seen))
	for i, d := range c.seen {
		before := d.Baseline / c.baseline.Total()
		after := d.Current / c.current.Total()
		shifts[i] = ShareShift{
			Key:           d.Key,
			BaselineShare: before,
			CurrentShare:  after,
			Points:        (after - before) * 100,
		}
	}
	return shifts, nil
}

// Common returns the keys present on both sides, in baseline order.
func (c *Comparison) Common() []string {
	var keys []string
	for _, key := range c.baseline.Labels() {
		if _, ok := c.current.Value(key); ok {
			keys = append(keys, key)
		}
	}
	return keys
}
