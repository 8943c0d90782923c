package echarts

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

// Target provides the destination of one rendered page
type Target func() (io.WriteCloser, error)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// WriterTarget renders every page to w
func WriterTarget(w io.Writer) Target {
	return func() (io.WriteCloser, error) { return nopCloser{w}, nil }
}

// FileTarget replaces the file at path with every rendered page
func FileTarget(path string) Target {
	return func() (io.WriteCloser, error) {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		return os.Create(path)
	}
}

// Page is a view that renders all three charts into one HTML document
type Page struct {
	target Target
	l      *log.Logger
}

type PageOption func(*Page)

func WithLogger(l *log.Logger) PageOption {
	return func(p *Page) {
		p.l = l
	}
}

func NewPage(target Target, opts ...PageOption) *Page {
	ret := &Page{target: target, l: log.Default().Named("echarts")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Build assembles the page for a snapshot
func Build(snap *model.Snapshot) *components.Page {
	page := components.NewPage()
	page.PageTitle = "Pit stop explorer"
	page.AddCharts(
		BarChart(snap),
		ScatterChart(snap),
		GlobeChart(snap),
	)
	return page
}

func (p *Page) Update(_ context.Context, snap *model.Snapshot) error {
	w, err := p.target()
	if err != nil {
		return fmt.Errorf("echarts target: %w", err)
	}
	if err := Build(snap).Render(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("echarts render: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}
	p.l.Debug("page rendered", log.Int("sequence", snap.Sequence))
	return nil
}
