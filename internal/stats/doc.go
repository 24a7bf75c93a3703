// Package stats provides the summary statistics behind every dashboard page:
// growth over ordered periods, categorical shares and rankings, band
// classification of ratios, and two-sided comparisons of distributions.
//
// All four types are immutable once constructed. Accessors hand out copies,
// so a single value can be shared freely between goroutines without locking.
//
// Derived quantities that have no finite value (a growth rate over a zero
// baseline, a percent change for a key that did not exist before) are never
// reported as NaN or infinity. They are carried as a nil pointer together with
// an explicit flag so that renderers cannot silently print a bogus number.
package stats
