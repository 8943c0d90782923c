package table

import (
	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

// Table is an immutable, ordered sequence of pit stop records.
// Filtering returns a new Table sharing no slice with the source.
type Table struct {
	records []model.PitStopRecord
}

func New(records []model.PitStopRecord) *Table {
	return &Table{records: records}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns the records of the table. The returned slice must not be modified.
func (t *Table) Records() []model.PitStopRecord {
	if t == nil {
		return nil
	}
	return t.records
}

// YearRange returns the smallest and largest year of all records with a year.
// ok is false if no record carries a year.
func (t *Table) YearRange() (r model.YearRange, ok bool) {
	for i := range t.Records() {
		y, has := t.records[i].Year.Get()
		if !has {
			continue
		}
		if !ok {
			r = model.YearRange{Min: y, Max: y}
			ok = true
			continue
		}
		r.Min = min(r.Min, y)
		r.Max = max(r.Max, y)
	}
	return r, ok
}

// FilterYears returns a new table with the records whose year is within r.
// Records without a year are excluded.
func (t *Table) FilterYears(r model.YearRange) *Table {
	ret := make([]model.PitStopRecord, 0, t.Len())
	for i := range t.Records() {
		if y, ok := t.records[i].Year.Get(); ok && r.Contains(y) {
			ret = append(ret, t.records[i])
		}
	}
	return New(ret)
}
