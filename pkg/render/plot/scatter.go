// Package plot draws the scatter view as a static image with gonum/plot.
package plot

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

//nolint:gochecknoglobals // fixed image size
var (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch
)

// FormatOf derives the image format from the file extension
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatPNG, FormatSVG:
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", ext)
	}
}

// Scatter creates the plot of avg pit stop time against finishing position,
// one glyph set per constructor.
func Scatter(snap *model.Snapshot) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Pit stop time vs finishing position"
	p.X.Label.Text = "avg pit stop (s)"
	p.Y.Label.Text = "position"
	p.Legend.Top = true

	view := snap.Views.Scatter
	if len(view) == 0 {
		return p, nil
	}
	// finishing position 1 at the top
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	constructors := lo.Uniq(lo.Map(view, func(r model.ScatterRow, _ int) string {
		return r.Constructor
	}))
	byConstructor := lo.GroupBy(view, func(r model.ScatterRow) string { return r.Constructor })
	for _, c := range constructors {
		rows := byConstructor[c]
		pts := make(plotter.XYs, 0, len(rows))
		for _, r := range rows {
			pts = append(pts, plotter.XY{X: r.AvgPitStopTime, Y: float64(r.FinishingPosition)})
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("scatter %s: %w", c, err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Color = ParseColor(render.ConstructorColor(c))
		p.Add(s)
		p.Legend.Add(c, s)
	}
	return p, nil
}

// Write renders the scatter plot of snap in the given format to w
func Write(w io.Writer, snap *model.Snapshot, format string) error {
	p, err := Scatter(snap)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// ParseColor accepts #rrggbb values. Anything else is drawn gray.
func ParseColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Gray{Y: 128}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Image is a view that replaces an image file with every snapshot
type Image struct {
	path   string
	format string
	l      *log.Logger
}

func NewImage(path string) (*Image, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	return &Image{path: path, format: format, l: log.Default().Named("plot")}, nil
}

func (img *Image) Update(_ context.Context, snap *model.Snapshot) error {
	f, err := os.Create(img.path)
	if err != nil {
		return err
	}
	if err := Write(f, snap, img.format); err != nil {
		_ = f.Close()
		return fmt.Errorf("plot %s: %w", img.path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	img.l.Debug("image written",
		log.String("file", img.path), log.Int("rows", len(snap.Views.Scatter)))
	return nil
}
