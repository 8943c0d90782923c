// Package render contains what all view adapters share: scale domains,
// emphasis styling and the translation of a clicked view row back into an event.
package render

import (
	"github.com/samber/lo"
)

// Domain is the value interval of a scale
type Domain struct {
	Min float64
	Max float64
}

// LinearDomain computes the domain of values. If zeroBased is set the domain
// starts at 0 instead of the minimum. pad is added to the maximum.
// ok is false for empty input; the domain is undefined then.
func LinearDomain(values []float64, zeroBased bool, pad float64) (d Domain, ok bool) {
	if len(values) == 0 {
		return Domain{}, false
	}
	d = Domain{Min: lo.Min(values), Max: lo.Max(values) + pad}
	if zeroBased {
		d.Min = 0
	}
	return d, true
}

// Extent returns the domain spanning min to max of values
func Extent(values []float64) (Domain, bool) {
	return LinearDomain(values, false, 0)
}

// Scale maps v from the domain to [rangeLo,rangeHi]. A degenerate domain maps to the
// middle of the range.
func (d Domain) Scale(v, rangeLo, rangeHi float64) float64 {
	span := d.Max - d.Min
	if span == 0 {
		return (rangeLo + rangeHi) / 2
	}
	return rangeLo + (v-d.Min)/span*(rangeHi-rangeLo)
}

// Normalize maps v to [0,1], clamped
func (d Domain) Normalize(v float64) float64 {
	return lo.Clamp(d.Scale(v, 0, 1), 0, 1)
}
