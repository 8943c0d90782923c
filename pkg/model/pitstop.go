package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/aarondl/opt/null"
)

// PitStopRecord is one timed pit stop joined with race result and circuit data.
// Columns that may be missing in the source are kept as null values.
// Duration and Position keep their raw text, see DurationSeconds.
type PitStopRecord struct {
	Season          null.Val[string] `json:"season"`
	Year            null.Val[int]    `json:"year"`
	Track           null.Val[string] `json:"track"`
	CircuitName     string           `json:"circuitName"`
	ConstructorName null.Val[string] `json:"constructorName"`
	Duration        null.Val[string] `json:"duration"`
	Position        null.Val[string] `json:"position"`
	PositionOrder   int              `json:"positionOrder"`
	Lat             float64          `json:"lat"`
	Lng             float64          `json:"lng"`
}

// DurationSeconds returns the parsed pit stop duration.
// ok is false if the value is null or not a number.
func (r *PitStopRecord) DurationSeconds() (secs float64, ok bool) {
	return parseNumber(r.Duration)
}

// PositionValue returns the parsed race position.
func (r *PitStopRecord) PositionValue() (pos float64, ok bool) {
	return parseNumber(r.Position)
}

func parseNumber(v null.Val[string]) (float64, bool) {
	s, ok := v.Get()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// YearRange is an inclusive range of seasons
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (y YearRange) Contains(year int) bool {
	return year >= y.Min && year <= y.Max
}
