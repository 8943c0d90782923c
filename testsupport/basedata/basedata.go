package basedata

import (
	"strconv"

	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

// Circuit coordinates used by the sample records
//
//nolint:gochecknoglobals // test data
var (
	Monza       = Circuit{name: "Monza", track: "monza", lat: 45.6156, lng: 9.28111}
	Silverstone = Circuit{name: "Silverstone", track: "silverstone", lat: 52.0786, lng: -1.01694}
	Suzuka      = Circuit{name: "Suzuka", track: "suzuka", lat: 34.8431, lng: 136.541}
)

type Circuit struct {
	name  string
	track string
	lat   float64
	lng   float64
}

// Rec creates a valid record. duration is the raw text as found in the CSV.
func Rec(year int, c Circuit, constructor, duration string, positionOrder int) model.PitStopRecord {
	return model.PitStopRecord{
		Season:          null.From(strconv.Itoa(year)),
		Year:            null.From(year),
		Track:           null.From(c.track),
		CircuitName:     c.name,
		ConstructorName: null.From(constructor),
		Duration:        null.From(duration),
		Position:        null.From(strconv.Itoa(positionOrder)),
		PositionOrder:   positionOrder,
		Lat:             c.lat,
		Lng:             c.lng,
	}
}

// MonzaFerrari2015 are the two records of the documented example:
// mean duration 4.0, finishing position 1.
func MonzaFerrari2015() []model.PitStopRecord {
	return []model.PitStopRecord{
		Rec(2015, Monza, "Ferrari", "3.5", 1),
		Rec(2015, Monza, "Ferrari", "4.5", 1),
	}
}

// SampleRecords returns a small data set spanning 2014-2016 with three circuits,
// three constructors and a couple of records that must never show up in a view.
func SampleRecords() []model.PitStopRecord {
	ret := []model.PitStopRecord{
		Rec(2014, Monza, "Mercedes", "22.0", 1),
		Rec(2014, Monza, "Mercedes", "24.0", 1),
		Rec(2014, Monza, "Ferrari", "24.5", 5),
		Rec(2014, Silverstone, "Williams", "21.0", 3),
		Rec(2014, Silverstone, "Ferrari", "25.0", 6),
		Rec(2015, Monza, "Ferrari", "3.5", 1),
		Rec(2015, Monza, "Ferrari", "4.5", 1),
		Rec(2015, Monza, "Williams", "23.0", 3),
		Rec(2015, Suzuka, "Mercedes", "20.0", 2),
		Rec(2015, Suzuka, "Williams", "0", 9),
		Rec(2016, Silverstone, "Mercedes", "19.5", 1),
		Rec(2016, Suzuka, "Ferrari", "26.0", 4),
	}
	// must be dropped by the validity check
	noDuration := Rec(2015, Suzuka, "Haas", "1", 10)
	noDuration.Duration = null.Val[string]{}
	lapFormat := Rec(2016, Monza, "Haas", "1:02.345", 11)
	noPosition := Rec(2016, Monza, "Haas", "30.0", 12)
	noPosition.Position = null.Val[string]{}
	noSeason := Rec(2016, Suzuka, "Haas", "30.0", 13)
	noSeason.Season = null.Val[string]{}
	return append(ret, noDuration, lapFormat, noPosition, noSeason)
}
