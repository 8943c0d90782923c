//nolint:funlen // ok for tests
package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/processing"
	"github.com/mpapenbr/pitstop-explorer-go/testsupport/basedata"
)

func snapshot() *model.Snapshot {
	sel := model.Selection{YearRange: model.YearRange{Min: 2015, Max: 2015}}
	return &model.Snapshot{
		Session:   "s1",
		Sequence:  2,
		Selection: sel,
		Records:   2,
		Views:     processing.Compute(basedata.MonzaFerrari2015(), sel),
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snapshot(), Options{Format: FormatJSON, Indent: 2}))

	var got model.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *snapshot(), got)
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want any
	}{
		{name: "single value", expr: "$.views.bar[0].key", want: "Ferrari"},
		{name: "number", expr: "$.views.scatter[0].finishingPosition", want: 1},
		{name: "descendant", expr: "$.views..avgDuration", want: 4.0},
		{name: "filter", expr: `$.views.scatter[?(@.year == 2015)].key`, want: "2015_Monza_Ferrari"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Query(snapshot(), tt.expr)
			require.NoError(t, err)
			assert.EqualValues(t, tt.want, got)
		})
	}
}

func TestQueryErrors(t *testing.T) {
	_, err := Query(snapshot(), "$.views.unknown")
	require.ErrorIs(t, err, ErrNoMatch)

	_, err = Query(snapshot(), "$.[[")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatch)
}

func TestQueryMultiple(t *testing.T) {
	got, err := Query(snapshot(), "$.views.*[*]")
	require.NoError(t, err)
	assert.Len(t, got, 3, "one row in each view")
}

func TestWriteJSONPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snapshot(), Options{Format: FormatJSON, JSONPath: "$.views.bar"}))
	var got []model.BarRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []model.BarRow{{Key: "Ferrari", Value: 4}}, got)
}

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snapshot(), Options{Format: "svg"}))
	assert.Contains(t, buf.String(), "<svg")

	err := Write(&buf, snapshot(), Options{Format: "xml"})
	require.ErrorIs(t, err, ErrUnknownFormat)

	err = Write(&buf, snapshot(), Options{Format: "png", JSONPath: "$.views"})
	require.Error(t, err)

	assert.True(t, IsValidFormat("png"))
	assert.False(t, IsValidFormat("gif"))
}
