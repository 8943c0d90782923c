package echarts

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/processing"
	"github.com/mpapenbr/pitstop-explorer-go/testsupport/basedata"
)

func sampleSnapshot(sel model.Selection) *model.Snapshot {
	sel.YearRange = model.YearRange{Min: 2014, Max: 2016}
	return &model.Snapshot{
		Session:   "test",
		Sequence:  1,
		Selection: sel,
		Views:     processing.Compute(basedata.SampleRecords(), sel),
	}
}

func TestPageWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPage(WriterTarget(&buf))
	require.NoError(t, p.Update(context.Background(), sampleSnapshot(model.Selection{})))

	out := buf.String()
	for _, s := range []string{"Mercedes", "Ferrari", "Williams", "Monza", "Suzuka", "world"} {
		assert.Contains(t, out, s)
	}
}

func TestPageSelection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPage(WriterTarget(&buf))
	snap := sampleSnapshot(model.Selection{Track: "Monza", Constructor: "Ferrari"})
	require.NoError(t, p.Update(context.Background(), snap))
	out := buf.String()
	assert.Contains(t, out, "track=Monza constructor=Ferrari")
	assert.Contains(t, out, "#d3d3d3", "other bars and circuits are de-emphasized")
	assert.Contains(t, out, "orange", "selected circuit is outlined")
}

func TestPageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "views.html")
	p := NewPage(FileTarget(path))
	require.NoError(t, p.Update(context.Background(), sampleSnapshot(model.Selection{})))
	require.NoError(t, p.Update(context.Background(), sampleSnapshot(model.Selection{Track: "Suzuka"})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "track=Suzuka")
}

func TestPageTargetError(t *testing.T) {
	errTarget := errors.New("no target")
	p := NewPage(func() (io.WriteCloser, error) { return nil, errTarget })
	err := p.Update(context.Background(), sampleSnapshot(model.Selection{}))
	require.ErrorIs(t, err, errTarget)
}

func TestEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	p := NewPage(WriterTarget(&buf))
	require.NoError(t, p.Update(context.Background(), &model.Snapshot{}))
	assert.NotEmpty(t, buf.String())
}

func TestScatterSeriesPerConstructor(t *testing.T) {
	s := ScatterChart(sampleSnapshot(model.Selection{}))
	names := make([]string, 0, len(s.MultiSeries))
	for _, ser := range s.MultiSeries {
		names = append(names, ser.Name)
	}
	assert.ElementsMatch(t, []string{"Mercedes", "Ferrari", "Williams"}, names)
}

func TestBarChartHighestOnTop(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BarChart(sampleSnapshot(model.Selection{})).Render(&buf))
	assert.Contains(t, buf.String(), `"inverse":true`)
}
