// Package selection holds the shared filter context of the linked views and
// the transitions triggered by user interaction.
//
// Transition rules:
//   - SelectConstructor (bar click) toggles the constructor, the track is kept.
//   - SelectTrack (globe click) toggles the track. If no track is selected
//     afterwards, the constructor is cleared as well. Selecting a new track keeps
//     the constructor unless WithClearConstructorOnTrackChange is set.
//   - ClearAll resets track and constructor.
//   - SetYearRange never touches track or constructor.
//
// Note: bar and globe clicks treat the constructor differently.
// Kept as is until product review, see DESIGN.md.
package selection

import (
	"errors"
	"fmt"

	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

var ErrInvalidYearRange = errors.New("invalid year range")

type State struct {
	yearRange                model.YearRange
	track                    null.Val[string]
	constructor              null.Val[string]
	clearConstructorOnChange bool
}

type Option func(*State)

// WithClearConstructorOnTrackChange clears the constructor on every track change,
// not only when the track gets deselected.
func WithClearConstructorOnTrackChange(enabled bool) Option {
	return func(s *State) {
		s.clearConstructorOnChange = enabled
	}
}

// New creates a state covering the full year range of the data with nothing selected
func New(full model.YearRange, opts ...Option) *State {
	ret := &State{yearRange: full}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (s *State) YearRange() model.YearRange           { return s.yearRange }
func (s *State) SelectedTrack() null.Val[string]       { return s.track }
func (s *State) SelectedConstructor() null.Val[string] { return s.constructor }

// IsEmpty reports whether neither track nor constructor is selected
func (s *State) IsEmpty() bool {
	return s.track.IsNull() && s.constructor.IsNull()
}

// Selection returns a copy of the current state for the filter engine
func (s *State) Selection() model.Selection {
	return model.Selection{
		YearRange:   s.yearRange,
		Track:       s.track.GetOrZero(),
		Constructor: s.constructor.GetOrZero(),
	}
}

// SetYearRange sets the inclusive year range. Track and constructor are kept.
func (s *State) SetYearRange(from, to int) (changed bool, err error) {
	if from > to {
		return false, fmt.Errorf("%w: %d > %d", ErrInvalidYearRange, from, to)
	}
	r := model.YearRange{Min: from, Max: to}
	if r == s.yearRange {
		return false, nil
	}
	s.yearRange = r
	return true, nil
}

// SelectConstructor toggles the constructor selection. The track is not changed.
func (s *State) SelectConstructor(name string) (changed bool) {
	if name == "" {
		return false
	}
	if v, ok := s.constructor.Get(); ok && v == name {
		s.constructor = null.Val[string]{}
	} else {
		s.constructor = null.From(name)
	}
	return true
}

// SelectTrack toggles the track selection, see package doc for the effect on
// the selected constructor.
func (s *State) SelectTrack(name string) (changed bool) {
	if name == "" {
		return false
	}
	if v, ok := s.track.Get(); ok && v == name {
		s.track = null.Val[string]{}
		s.constructor = null.Val[string]{}
		return true
	}
	s.track = null.From(name)
	if s.clearConstructorOnChange {
		s.constructor = null.Val[string]{}
	}
	return true
}

// ClearAll resets track and constructor
func (s *State) ClearAll() (changed bool) {
	changed = !s.IsEmpty()
	s.track = null.Val[string]{}
	s.constructor = null.Val[string]{}
	return changed
}
