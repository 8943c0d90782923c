// Package processing turns pit stop records into the aggregated views of the
// bar chart, the scatter plot and the globe.
//
// All functions are pure: they never modify the records and return new slices.
package processing

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

// IsValid reports whether a record may take part in any aggregation.
// duration, position, season, track, year and constructorName must be present,
// duration and position must be numbers.
func IsValid(r *model.PitStopRecord) bool {
	if r.Season.IsNull() || r.Track.IsNull() || r.Year.IsNull() || r.ConstructorName.IsNull() {
		return false
	}
	if _, ok := r.DurationSeconds(); !ok {
		return false
	}
	if _, ok := r.PositionValue(); !ok {
		return false
	}
	return true
}

// Compute produces all three views for the given selection
func Compute(records []model.PitStopRecord, sel model.Selection) model.Views {
	return model.Views{
		Bar:     BarView(records, sel),
		Scatter: ScatterView(records, sel),
		Globe:   GlobeView(records, sel),
	}
}

// BarView computes the mean duration per constructor, highest first.
// Only the selected track restricts the input, the selected constructor does not.
func BarView(records []model.PitStopRecord, sel model.Selection) model.BarView {
	rows := validRows(records, func(r *model.PitStopRecord) bool {
		return !sel.HasTrack() || r.CircuitName == sel.Track
	})
	groups := groupInOrder(rows, func(r *model.PitStopRecord) string {
		return r.ConstructorName.GetOrZero()
	})
	ret := make(model.BarView, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, model.BarRow{Key: g.key, Value: meanDuration(g.members)})
	}
	slices.SortStableFunc(ret, func(a, b model.BarRow) int {
		return byValueDesc(a.Value, b.Value, a.Key, b.Key)
	})
	return ret
}

// ScatterView computes one row per year, circuit and constructor.
// Both selected track and selected constructor restrict the input.
// Groups with a mean duration of exactly zero are dropped.
func ScatterView(records []model.PitStopRecord, sel model.Selection) model.ScatterView {
	rows := validRows(records, func(r *model.PitStopRecord) bool {
		return (!sel.HasTrack() || r.CircuitName == sel.Track) &&
			(!sel.HasConstructor() || r.ConstructorName.GetOrZero() == sel.Constructor)
	})
	groups := groupInOrder(rows, ScatterKey)
	ret := make(model.ScatterView, 0, len(groups))
	for _, g := range groups {
		avg := meanDuration(g.members)
		// exact zero marks missing data
		if avg == 0 {
			continue
		}
		// positionOrder is the same for all members of a group (one result per race)
		first := g.members[0]
		ret = append(ret, model.ScatterRow{
			Key:               g.key,
			AvgPitStopTime:    avg,
			FinishingPosition: first.PositionOrder,
			Constructor:       first.ConstructorName.GetOrZero(),
			Track:             first.CircuitName,
			Year:              first.Year.GetOrZero(),
		})
	}
	return ret
}

// GlobeView computes the mean duration per circuit, highest first.
// The selection never removes a circuit.
func GlobeView(records []model.PitStopRecord, _ model.Selection) model.GlobeView {
	rows := validRows(records, nil)
	groups := groupInOrder(rows, func(r *model.PitStopRecord) string {
		return r.CircuitName
	})
	ret := make(model.GlobeView, 0, len(groups))
	for _, g := range groups {
		first := g.members[0]
		ret = append(ret, model.GlobeRow{
			Track:       g.key,
			AvgDuration: meanDuration(g.members),
			Lat:         first.Lat,
			Lng:         first.Lng,
		})
	}
	slices.SortStableFunc(ret, func(a, b model.GlobeRow) int {
		return byValueDesc(a.AvgDuration, b.AvgDuration, a.Track, b.Track)
	})
	return ret
}

// ScatterKey is the group key of a scatter row, e.g. "2015_Monza_Ferrari"
func ScatterKey(r *model.PitStopRecord) string {
	return fmt.Sprintf("%d_%s_%s", r.Year.GetOrZero(), r.CircuitName, r.ConstructorName.GetOrZero())
}

type group struct {
	key     string
	members []*model.PitStopRecord
}

func validRows(
	records []model.PitStopRecord,
	pred func(r *model.PitStopRecord) bool,
) []*model.PitStopRecord {
	ret := make([]*model.PitStopRecord, 0, len(records))
	for i := range records {
		r := &records[i]
		if !IsValid(r) {
			continue
		}
		if pred != nil && !pred(r) {
			continue
		}
		ret = append(ret, r)
	}
	return ret
}

// groupInOrder groups rows by key. Groups are returned in order of their first member.
func groupInOrder(
	rows []*model.PitStopRecord,
	keyFn func(r *model.PitStopRecord) string,
) []group {
	byKey := lo.GroupBy(rows, keyFn)
	keys := lo.Uniq(lo.Map(rows, func(r *model.PitStopRecord, _ int) string {
		return keyFn(r)
	}))
	return lo.Map(keys, func(k string, _ int) group {
		return group{key: k, members: byKey[k]}
	})
}

func meanDuration(rows []*model.PitStopRecord) float64 {
	values := lo.Map(rows, func(r *model.PitStopRecord, _ int) float64 {
		v, _ := r.DurationSeconds()
		return v
	})
	return stat.Mean(values, nil)
}

func byValueDesc(a, b float64, keyA, keyB string) int {
	if c := cmp.Compare(b, a); c != 0 {
		return c
	}
	return cmp.Compare(keyA, keyB)
}
