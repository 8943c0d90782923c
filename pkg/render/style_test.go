//nolint:funlen // ok for tests
package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

func TestEmphasisFor(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		key      string
		want     Emphasis
	}{
		{"nothing selected", "", "Ferrari", Neutral},
		{"selected", "Ferrari", "Ferrari", Emphasized},
		{"other selected", "Mercedes", "Ferrari", DeEmphasized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmphasisFor(tt.selected, tt.key))
		})
	}
}

func TestBarColor(t *testing.T) {
	row := model.BarRow{Key: "Ferrari", Value: 22}
	assert.Equal(t, "#ED1C24", BarColor(model.Selection{}, row))
	assert.Equal(t, "#ED1C24", BarColor(model.Selection{Constructor: "Ferrari"}, row))
	assert.Equal(t, DeEmphasizedColor, BarColor(model.Selection{Constructor: "Williams"}, row))
	assert.Equal(t, FallbackColor, BarColor(model.Selection{}, model.BarRow{Key: "Brawn"}))
}

func TestGlobeStyle(t *testing.T) {
	view := model.GlobeView{
		{Track: "Monza", AvgDuration: 30},
		{Track: "Suzuka", AvgDuration: 20},
		{Track: "Silverstone", AvgDuration: 10},
	}
	g := NewGlobeStyler(view)
	d, ok := g.Domain()
	require.True(t, ok)
	assert.Equal(t, Domain{Min: 10, Max: 30}, d)

	neutral := g.Style(model.Selection{}, view[0])
	assert.Equal(t, GlobeStyle{
		Emphasis: Neutral, Fill: Blues(1), Stroke: DefaultStroke, Size: MaxCircleSize,
	}, neutral)

	sel := model.Selection{Track: "Suzuka"}
	selected := g.Style(sel, view[1])
	assert.Equal(t, Emphasized, selected.Emphasis)
	assert.Equal(t, SelectedStroke, selected.Stroke)
	assert.InDelta(t, 6.5*SelectedSizeFactor, selected.Size, 1e-9)

	other := g.Style(sel, view[2])
	assert.Equal(t, DeEmphasized, other.Emphasis)
	assert.Equal(t, DeEmphasizedColor, other.Fill)
	assert.InDelta(t, MinCircleSize, other.Size, 1e-9)
}

func TestGlobeStyleEmpty(t *testing.T) {
	_, ok := NewGlobeStyler(nil).Domain()
	assert.False(t, ok)
}

func TestBlues(t *testing.T) {
	assert.Equal(t, "#f7fbff", Blues(0))
	assert.Equal(t, "#08306b", Blues(1))
	assert.Equal(t, "#08306b", Blues(2), "clamped")
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, "23.46s", Seconds(23.456))
	assert.Equal(t, "0.00s", Seconds(0))
	assert.Equal(t, "16.70s", Seconds(16.7))
}

type clicks struct {
	bar, track []string
}

func (c *clicks) ClickBar(_ context.Context, name string) error {
	c.bar = append(c.bar, name)
	return nil
}

func (c *clicks) ClickTrack(_ context.Context, name string) error {
	c.track = append(c.track, name)
	return nil
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()
	c := &clicks{}
	require.NoError(t, Dispatch(ctx, c, BarChart, "Ferrari"))
	require.NoError(t, Dispatch(ctx, c, Globe, "Monza"))
	require.ErrorIs(t, Dispatch(ctx, c, ScatterChart, "2015_Monza_Ferrari"), ErrNotClickable)
	require.ErrorIs(t, Dispatch(ctx, c, ViewKind("map"), "x"), ErrNotClickable)
	assert.Equal(t, []string{"Ferrari"}, c.bar)
	assert.Equal(t, []string{"Monza"}, c.track)

	k, err := ParseViewKind("globe")
	require.NoError(t, err)
	assert.Equal(t, Globe, k)
	_, err = ParseViewKind("pie")
	assert.Error(t, err)
}
