package stats

import (
	"fmt"
	"slices"
	"sort"
)

// Entry is one category of a distribution.
type Entry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Share is a category together with its portion of the distribution total.
// Share is a fraction in [0, 1]; Percent is the same figure times 100.
// Rank is the 1-based position in descending value order.
type Share struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Share   float64 `json:"share"`
	Percent float64 `json:"percent"`
	Rank    int     `json:"rank"`
}

// Distribution maps unique category labels to non-negative values, keeping
// the order in which the categories were supplied.
type Distribution struct {
	entries []Entry
	index   map[string]int
	total   float64
}

// NewDistribution validates entries and builds a distribution from them.
// Labels must be non-empty and unique; values finite and non-negative.
func NewDistribution(entries []Entry) (*Distribution, error) {
	index := make(map[string]int, len(entries))
	var total float64
	for i, e := range entries {
		if e.Label == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty label", ErrInvalidInput, i)
		}
		if _, dup := index[e.Label]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidInput, e.Label)
		}
		if msg := checkValue(e.Value); msg != "" {
			return nil, fmt.Errorf("%w: label %q: %s", ErrInvalidInput, e.Label, msg)
		}
		index[e.Label] = i
		total += e.Value
	}
	return &Distribution{
		entries: slices.Clone(entries),
		index:   index,
		total:   total,
	}, nil
}

// DistributionOf zips labels and values into a distribution. The slices must
// have equal length.
func DistributionOf(labels []string, values []float64) (*Distribution, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("%w: %d labels but %d values", ErrInvalidInput, len(labels), len(values))
	}
	entries := make([]Entry, len(labels))
	for i := range labels {
		entries[i] = Entry{Label: labels[i], Value: values[i]}
	}
	return NewDistribution(entries)
}

// Len returns the number of categories.
func (d *Distribution) Len() int {
	return len(d.entries)
}

// Total returns the sum of all values.
func (d *Distribution) Total() float64 {
	return d.total
}

// Entries returns a copy of the categories in insertion order.
func (d *Distribution) Entries() []Entry {
	return slices.Clone(d.entries)
}

// Labels returns the category labels in insertion order.
func (d *Distribution) Labels() []string {
	labels := make([]string, len(d.entries))
	for i, e := range d.entries {
		labels[i] = e.Label
	}
	return labels
}

// Value returns the value recorded for label.
func (d *Distribution) Value(label string) (float64, bool) {
	i, ok := d.index[label]
	if !ok {
		return 0, false
	}
	return d.entries[i].Value, true
}

// Mean returns the average value per category.
func (d *Distribution) Mean() (float64, error) {
	if len(d.entries) == 0 {
		return 0, fmt.Errorf("%w: distribution has no categories", ErrDegenerateDistribution)
	}
	return d.total / float64(len(d.entries)), nil
}

// ShareOf returns label's value divided by the total.
func (d *Distribution) ShareOf(label string) (float64, error) {
	i, ok := d.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	if d.total == 0 {
		return 0, fmt.Errorf("%w: total is zero", ErrDegenerateDistribution)
	}
	return d.entries[i].Value / d.total, nil
}

// Shares returns every category with its share and rank, in insertion order.
func (d *Distribution) Shares() ([]Share, error) {
	if d.total == 0 {
		return nil, fmt.Errorf("%w: total is zero", ErrDegenerateDistribution)
	}
	ranks := make([]int, len(d.entries))
	for rank, i := range d.rankOrder() {
		ranks[i] = rank + 1
	}
	shares := make([]Share, len(d.entries))
	for i, e := range d.entries {
		share := e.Value / d.total
		shares[i] = Share{
			Label:   e.Label,
			Value:   e.Value,
			Share:   share,
			Percent: share * 100,
			Rank:    ranks[i],
		}
	}
	return shares, nil
}

// Ranked returns the categories in descending value order. Equal values keep
// their insertion order.
func (d *Distribution) Ranked() []Entry {
	order := d.rankOrder()
	ranked := make([]Entry, len(order))
	for pos, i := range order {
		ranked[pos] = d.entries[i]
	}
	return ranked
}

// TopN returns a new distribution holding the n largest categories in rank
// order. When n exceeds the number of categories all of them are kept.
func (d *Distribution) TopN(n int) (*Distribution, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: top-n size %d must be at least 1", ErrInvalidInput, n)
	}
	ranked := d.Ranked()
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return NewDistribution(ranked)
}

// Merge combines d with other label by label. The result holds the union of
// both label sets, d's labels first, and each value is combine(mine, theirs)
// with a missing side counted as zero.
func (d *Distribution) Merge(other *Distribution, combine func(mine, theirs float64) float64) (*Distribution, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: cannot merge with a nil distribution", ErrInvalidInput)
	}
	if combine == nil {
		return nil, fmt.Errorf("%w: nil combine function", ErrInvalidInput)
	}

	labels := unionLabels(d, other)
	merged := make([]Entry, len(labels))
	for i, label := range labels {
		mine, _ := d.Value(label)
		theirs, _ := other.Value(label)
		merged[i] = Entry{Label: label, Value: combine(mine, theirs)}
	}
	return NewDistribution(merged)
}

// Sum is a Merge combine function that adds both sides.
func Sum(mine, theirs float64) float64 {
	return mine + theirs
}

// rankOrder returns entry indexes in descending value order, stable on ties.
func (d *Distribution) rankOrder() []int {
	order := make([]int, len(d.entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return d.entries[order[a]].Value > d.entries[order[b]].Value
	})
	return order
}

// unionLabels lists every label of a followed by the labels of b that a lacks.
func unionLabels(a, b *Distribution) []string {
	labels := a.Labels()
	for _, e := range b.entries {
		if _, ok := a.index[e.Label]; !ok {
			labels = append(labels, e.Label)
		}
	}
	return labels
}
