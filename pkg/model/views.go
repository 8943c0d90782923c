package model

// BarRow is the mean pit stop duration of one constructor
type BarRow struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// ScatterRow is the mean pit stop duration of one constructor
// at one race (year and circuit) together with its finishing position.
type ScatterRow struct {
	Key               string  `json:"key"`
	AvgPitStopTime    float64 `json:"avgPitStopTime"`
	FinishingPosition int     `json:"finishingPosition"`
	Constructor       string  `json:"constructor"`
	Track             string  `json:"track"`
	Year              int     `json:"year"`
}

// GlobeRow is the mean pit stop duration at one circuit
type GlobeRow struct {
	Track       string  `json:"track"`
	AvgDuration float64 `json:"avgDuration"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type (
	BarView     []BarRow
	ScatterView []ScatterRow
	GlobeView   []GlobeRow
)

// Views holds the aggregated data for all three charts of one recompute.
type Views struct {
	Bar     BarView     `json:"bar"`
	Scatter ScatterView `json:"scatter"`
	Globe   GlobeView   `json:"globe"`
}

// Selection is the read-only representation of the shared filter context.
// Empty strings mean "nothing selected".
type Selection struct {
	YearRange   YearRange `json:"yearRange"`
	Track       string    `json:"track,omitempty"`
	Constructor string    `json:"constructor,omitempty"`
}

func (s Selection) HasTrack() bool       { return s.Track != "" }
func (s Selection) HasConstructor() bool { return s.Constructor != "" }

// Snapshot is handed to every view after a recompute
type Snapshot struct {
	Session   string    `json:"session"`
	Sequence  int       `json:"sequence"`
	Selection Selection `json:"selection"`
	Records   int       `json:"records"`
	Views     Views     `json:"views"`
}
