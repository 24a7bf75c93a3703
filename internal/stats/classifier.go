package stats

import (
	"fmt"
	"math"
	"slices"
)

// Band is one labeled interval of a Classifier. It covers ratios from the
// previous band's upper bound (or 0) up to, but not including, Upper.
type Band struct {
	Upper float64 `json:"upper" mapstructure:"upper"`
	Label string  `json:"label" mapstructure:"label"`
}

// DefaultReturnPatternBands returns the bands that classify a same-station
// return percentage into usage patterns: mostly one-way trips, a mix, or
// mostly round trips.
func DefaultReturnPatternBands() []Band {
	return []Band{
		{Upper: 40, Label: "transit-pattern"},
		{Upper: 70, Label: "mixed-pattern"},
		{Upper: math.Inf(1), Label: "circular-pattern"},
	}
}

// Classifier maps a non-negative ratio to the label of the band containing it.
type Classifier struct {
	bands []Band
}

// NewClassifier validates bands and builds a classifier. Bands must be listed
// in strictly increasing upper-bound order, start above zero, and end with an
// unbounded band, so that together they partition [0, ∞).
func NewClassifier(bands []Band) (*Classifier, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: classifier needs at least one band", ErrInvalidConfiguration)
	}
	for i, b := range bands {
		if b.Label == "" {
			return nil, fmt.Errorf("%w: band %d has an empty label", ErrInvalidConfiguration, i)
		}
		if math.IsNaN(b.Upper) {
			return nil, fmt.Errorf("%w: band %q has a NaN upper bound", ErrInvalidConfiguration, b.Label)
		}
		if i == 0 && b.Upper <= 0 {
			return nil, fmt.Errorf("%w: first band %q must end above 0, got %v", ErrInvalidConfiguration, b.Label, b.Upper)
		}
		if i > 0 && b.Upper <= bands[i-1].Upper {
			return nil, fmt.Errorf("%w: band %q upper bound %v does not exceed %v",
				ErrInvalidConfiguration, b.Label, b.Upper, bands[i-1].Upper)
		}
		if i < len(bands)-1 && math.IsInf(b.Upper, 1) {
			return nil, fmt.Errorf("%w: only the last band may be unbounded, %q is not last", ErrInvalidConfiguration, b.Label)
		}
	}
	if last := bands[len(bands)-1]; !math.IsInf(last.Upper, 1) {
		return nil, fmt.Errorf("%w: last band %q must be unbounded, got %v", ErrInvalidConfiguration, last.Label, last.Upper)
	}
	return &Classifier{bands: slices.Clone(bands)}, nil
}

// Classify returns the label of the first band whose upper bound exceeds ratio.
func (c *Classifier) Classify(ratio float64) (string, error) {
	if math.IsNaN(ratio) || ratio < 0 || math.IsInf(ratio, 1) {
		return "", fmt.Errorf("%w: ratio %v must be finite and non-negative", ErrInvalidInput, ratio)
	}
	for _, b := range c.bands {
		if ratio < b.Upper {
			return b.Label, nil
		}
	}
	// Unreachable: the last band is unbounded.
	return c.bands[len(c.bands)-1].Label, nil
}

// Bands returns a copy of the configured bands.
func (c *Classifier) Bands() []Band {
	return slices.Clone(c.bands)
}
