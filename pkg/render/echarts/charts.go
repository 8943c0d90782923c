// Package echarts renders the linked views as an HTML page with go-echarts.
package echarts

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/samber/lo"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render"
)

const (
	chartWidth  = "900px"
	chartHeight = "600px"
	worldMap    = "world"
)

func subtitle(sel model.Selection) string {
	ret := fmt.Sprintf("%d-%d", sel.YearRange.Min, sel.YearRange.Max)
	if sel.HasTrack() {
		ret += " track=" + sel.Track
	}
	if sel.HasConstructor() {
		ret += " constructor=" + sel.Constructor
	}
	return ret
}

// BarChart shows the average pit stop duration per constructor as horizontal bars
func BarChart(snap *model.Snapshot) *charts.Bar {
	sel := snap.Selection
	view := snap.Views.Bar
	keys := lo.Map(view, func(r model.BarRow, _ int) string { return r.Key })
	data := lo.Map(view, func(r model.BarRow, _ int) opts.BarData {
		return opts.BarData{
			Name:      r.Key,
			Value:     r.Value,
			ItemStyle: &opts.ItemStyle{Color: render.BarColor(sel, r)},
		}
	})

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Average pit stop duration by constructor",
			Subtitle: subtitle(sel),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "seconds"}),
		// category axis runs top down so the highest average is on top
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Inverse: opts.Bool(true)}),
	)
	bar.SetXAxis(keys).
		AddSeries("avg duration", data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
		)
	bar.XYReversal()
	return bar
}

// ScatterChart plots the average pit stop time of a race against the finishing
// position. Each constructor gets its own series.
func ScatterChart(snap *model.Snapshot) *charts.Scatter {
	sel := snap.Selection
	view := snap.Views.Scatter
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Pit stop time vs finishing position",
			Subtitle: subtitle(sel),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value", Name: "avg pit stop (s)", NameLocation: "middle", NameGap: 25,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value", Name: "position", NameLocation: "middle", NameGap: 30,
		}),
	)
	constructors := lo.Uniq(lo.Map(view, func(r model.ScatterRow, _ int) string {
		return r.Constructor
	}))
	byConstructor := lo.GroupBy(view, func(r model.ScatterRow) string { return r.Constructor })
	for _, c := range constructors {
		data := lo.Map(byConstructor[c], func(r model.ScatterRow, _ int) opts.ScatterData {
			return opts.ScatterData{
				Name:  r.Key,
				Value: []interface{}{r.AvgPitStopTime, r.FinishingPosition},
			}
		})
		scatter.AddSeries(c, data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: render.ConstructorColor(c)}),
		)
	}
	return scatter
}

// GlobeChart places one circle per circuit on the world map. Size and color
// follow the average duration. Every circuit is its own series to carry its style.
func GlobeChart(snap *model.Snapshot) *charts.Geo {
	sel := snap.Selection
	view := snap.Views.Globe
	styler := render.NewGlobeStyler(view)

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Average pit stop duration by circuit",
			Subtitle: subtitle(sel),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: worldMap}),
	)
	for _, r := range view {
		style := styler.Style(sel, r)
		geo.AddSeries(r.Track, types.ChartScatter,
			[]opts.GeoData{{Name: r.Track, Value: []float64{r.Lng, r.Lat, r.AvgDuration}}},
			charts.WithScatterChartOpts(opts.ScatterChart{
				SymbolSize: int(math.Round(style.Size * 2)),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color:       style.Fill,
				BorderColor: style.Stroke,
				BorderWidth: 1,
			}),
		)
	}
	return geo
}
