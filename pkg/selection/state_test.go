package selection

import (
	"errors"
	"testing"

	"github.com/aarondl/opt/null"
	"gotest.tools/v3/assert"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

var full = model.YearRange{Min: 2011, Max: 2024}

func TestNew(t *testing.T) {
	s := New(full)
	assert.Equal(t, s.YearRange(), full)
	assert.Assert(t, s.IsEmpty())
	assert.DeepEqual(t, s.Selection(), model.Selection{YearRange: full})
}

func TestSetYearRange(t *testing.T) {
	s := New(full)
	s.SelectTrack("Monza")
	s.SelectConstructor("Ferrari")

	changed, err := s.SetYearRange(2015, 2018)
	assert.NilError(t, err)
	assert.Assert(t, changed)
	assert.Equal(t, s.YearRange(), model.YearRange{Min: 2015, Max: 2018})
	// selection untouched
	assert.Equal(t, s.SelectedTrack(), null.From("Monza"))
	assert.Equal(t, s.SelectedConstructor(), null.From("Ferrari"))

	changed, err = s.SetYearRange(2015, 2018)
	assert.NilError(t, err)
	assert.Assert(t, !changed)

	changed, err = s.SetYearRange(2019, 2018)
	assert.Assert(t, errors.Is(err, ErrInvalidYearRange))
	assert.Assert(t, !changed)
	assert.Equal(t, s.YearRange(), model.YearRange{Min: 2015, Max: 2018})
}

//nolint:funlen // table driven
func TestTransitions(t *testing.T) {
	type step func(s *State)
	bar := func(c string) step { return func(s *State) { s.SelectConstructor(c) } }
	globe := func(tr string) step { return func(s *State) { s.SelectTrack(tr) } }
	clearAll := func(s *State) { s.ClearAll() }

	tests := []struct {
		name            string
		opts            []Option
		steps           []step
		wantTrack       string
		wantConstructor string
	}{
		{name: "bar click selects", steps: []step{bar("Ferrari")}, wantConstructor: "Ferrari"},
		{name: "bar click twice deselects", steps: []step{bar("Ferrari"), bar("Ferrari")}},
		{name: "bar click switches", steps: []step{bar("Ferrari"), bar("Mercedes")}, wantConstructor: "Mercedes"},
		{
			name:            "bar click keeps track",
			steps:           []step{globe("Monza"), bar("Ferrari"), bar("Ferrari")},
			wantTrack:       "Monza",
			wantConstructor: "",
		},
		{name: "globe click selects", steps: []step{globe("Monza")}, wantTrack: "Monza"},
		{
			name:            "selecting a track keeps the constructor",
			steps:           []step{bar("Ferrari"), globe("Monza")},
			wantTrack:       "Monza",
			wantConstructor: "Ferrari",
		},
		{
			name:            "switching tracks keeps the constructor",
			steps:           []step{globe("Monza"), bar("Ferrari"), globe("Suzuka")},
			wantTrack:       "Suzuka",
			wantConstructor: "Ferrari",
		},
		{
			name:  "deselecting the track clears the constructor",
			steps: []step{globe("Monza"), bar("Ferrari"), globe("Monza")},
		},
		{
			name:      "strict mode clears the constructor on track change",
			opts:      []Option{WithClearConstructorOnTrackChange(true)},
			steps:     []step{bar("Ferrari"), globe("Monza")},
			wantTrack: "Monza",
		},
		{
			name:  "clear all",
			steps: []step{globe("Monza"), bar("Ferrari"), clearAll},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(full, tt.opts...)
			for _, st := range tt.steps {
				st(s)
			}
			sel := s.Selection()
			assert.Equal(t, sel.Track, tt.wantTrack)
			assert.Equal(t, sel.Constructor, tt.wantConstructor)
			assert.Equal(t, sel.YearRange, full)
		})
	}
}

func TestChangedFlags(t *testing.T) {
	s := New(full)
	assert.Assert(t, !s.ClearAll())
	assert.Assert(t, !s.SelectTrack(""))
	assert.Assert(t, !s.SelectConstructor(""))
	assert.Assert(t, s.SelectConstructor("Ferrari"))
	assert.Assert(t, s.ClearAll())
	assert.Assert(t, s.IsEmpty())
}
