package plot

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/processing"
	"github.com/mpapenbr/pitstop-explorer-go/testsupport/basedata"
)

func snapshot() *model.Snapshot {
	return &model.Snapshot{
		Views: processing.Compute(basedata.SampleRecords(), model.Selection{}),
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "out/scatter.png", want: FormatPNG},
		{path: "scatter.SVG", want: FormatSVG},
		{path: "scatter.gif", wantErr: true},
		{path: "scatter", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xED, G: 0x1C, B: 0x24, A: 255}, ParseColor("#ED1C24"))
	assert.Equal(t, color.Gray{Y: 128}, ParseColor("gray"))
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snapshot(), FormatSVG))
	assert.Contains(t, buf.String(), "<svg")
	for _, c := range []string{"Mercedes", "Ferrari", "Williams"} {
		assert.Contains(t, buf.String(), c)
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &model.Snapshot{}, FormatSVG))
	assert.NotZero(t, buf.Len())
}

func TestImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.png")
	img, err := NewImage(path)
	require.NoError(t, err)
	require.NoError(t, img.Update(context.Background(), snapshot()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	_, err = NewImage(filepath.Join(t.TempDir(), "scatter.bmp"))
	assert.Error(t, err)
}
