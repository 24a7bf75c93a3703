package stats

import "errors"

// Errors returned by the stats package. They are always wrapped with context,
// so match them with errors.Is.
var (
	// ErrInvalidInput reports a malformed constructor argument or parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownCategory reports a lookup of a label the distribution does not hold.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDegenerateDistribution reports a share requested on a zero-total distribution.
	ErrDegenerateDistribution = errors.New("degenerate distribution")
	// ErrEmptySelection reports a predicate that matched no period.
	ErrEmptySelection = errors.New("empty selection")
	// ErrInvalidConfiguration reports classifier bands that do not partition [0, ∞).
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
