package render

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

type Emphasis int

const (
	Neutral Emphasis = iota // nothing selected
	Emphasized
	DeEmphasized
)

func (e Emphasis) String() string {
	switch e {
	case Neutral:
		return "neutral"
	case Emphasized:
		return "emphasized"
	case DeEmphasized:
		return "de-emphasized"
	default:
		return fmt.Sprintf("Emphasis(%d)", int(e))
	}
}

const (
	DeEmphasizedColor = "#d3d3d3"
	FallbackColor     = "gray"
	SelectedStroke    = "orange"
	DefaultStroke     = "black"
	// SelectedSizeFactor enlarges the selected circle on the globe
	SelectedSizeFactor = 1.25
	MinCircleSize      = 2.0
	MaxCircleSize      = 11.0
)

// ConstructorColors is the palette of the charts. Keys include names that
// only occur before alias normalization.
//
//nolint:gochecknoglobals // lookup table
var ConstructorColors = map[string]string{
	"Toro Rosso":     "#0000FF",
	"Mercedes":       "#6CD3BF",
	"Red Bull":       "#1E5BC6",
	"Ferrari":        "#ED1C24",
	"Williams":       "#37BEDD",
	"Force India":    "#FF80C7",
	"Virgin":         "#c82e37",
	"Renault":        "#FFD800",
	"McLaren":        "#F58020",
	"Sauber":         "#006EFF",
	"Lotus":          "#FFB800",
	"HRT":            "#b2945e",
	"Caterham":       "#0b361f",
	"Lotus F1":       "#FFB800",
	"Marussia":       "#6E0000",
	"Manor Marussia": "#6E0000",
	"Haas F1 Team":   "#B6BABD",
	"Racing Point":   "#F596C8",
	"Aston Martin":   "#2D826D",
	"Alfa Romeo":     "#B12039",
	"AlphaTauri":     "#4E7C9B",
	"Alpine F1 Team": "#2293D1",
}

func ConstructorColor(name string) string {
	if c, ok := ConstructorColors[name]; ok {
		return c
	}
	return FallbackColor
}

// EmphasisFor returns how the primitive for key is styled given the selected key.
// An empty selected value means nothing is selected.
func EmphasisFor(selected, key string) Emphasis {
	switch {
	case selected == "":
		return Neutral
	case selected == key:
		return Emphasized
	default:
		return DeEmphasized
	}
}

// BarColor is the fill of a bar in the bar chart
func BarColor(sel model.Selection, row model.BarRow) string {
	if EmphasisFor(sel.Constructor, row.Key) == DeEmphasized {
		return DeEmphasizedColor
	}
	return ConstructorColor(row.Key)
}

// GlobeStyle describes one circle on the map
type GlobeStyle struct {
	Emphasis Emphasis
	Fill     string
	Stroke   string
	Size     float64
}

// GlobeStyler computes circle styles for one globe view
type GlobeStyler struct {
	domain Domain
	ok     bool
}

func NewGlobeStyler(view model.GlobeView) *GlobeStyler {
	values := make([]float64, 0, len(view))
	for _, r := range view {
		values = append(values, r.AvgDuration)
	}
	d, ok := Extent(values)
	return &GlobeStyler{domain: d, ok: ok}
}

// Domain returns the duration domain of the globe; ok is false for an empty view
func (g *GlobeStyler) Domain() (Domain, bool) { return g.domain, g.ok }

// Size maps a duration to the circle size range
func (g *GlobeStyler) Size(v float64) float64 {
	return g.domain.Scale(v, MinCircleSize, MaxCircleSize)
}

func (g *GlobeStyler) Style(sel model.Selection, row model.GlobeRow) GlobeStyle {
	e := EmphasisFor(sel.Track, row.Track)
	ret := GlobeStyle{
		Emphasis: e,
		Fill:     Blues(g.domain.Normalize(row.AvgDuration)),
		Stroke:   DefaultStroke,
		Size:     g.Size(row.AvgDuration),
	}
	switch e {
	case Emphasized:
		ret.Size *= SelectedSizeFactor
		ret.Stroke = SelectedStroke
	case DeEmphasized:
		ret.Fill = DeEmphasizedColor
	case Neutral:
	}
	return ret
}

// Blues is a sequential color scale from light to dark blue, t in [0,1]
func Blues(t float64) string {
	from := [3]float64{247, 251, 255}
	to := [3]float64{8, 48, 107}
	t = math.Max(0, math.Min(1, t))
	var c [3]int
	for i := range c {
		c[i] = int(math.Round(from[i] + (to[i]-from[i])*t))
	}
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Seconds formats a duration value like "23.46s"
func Seconds(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "s"
}
