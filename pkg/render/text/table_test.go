package text

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/processing"
	"github.com/mpapenbr/pitstop-explorer-go/testsupport/basedata"
)

func snapshot(sel model.Selection) *model.Snapshot {
	sel.YearRange = model.YearRange{Min: 2014, Max: 2016}
	return &model.Snapshot{
		Sequence:  3,
		Selection: sel,
		Records:   16,
		Views:     processing.Compute(basedata.SampleRecords(), sel),
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	assert.NilError(t, w.Update(context.Background(), snapshot(model.Selection{})))
	out := buf.String()

	assert.Check(t, is.Contains(out, "#3 years 2014-2016"))
	assert.Check(t, is.Contains(out, "track=-"))
	assert.Check(t, is.Contains(out, "16.70s"), "Ferrari average")
	assert.Check(t, is.Contains(out, "2015_Monza_Ferrari"))
	assert.Check(t, !strings.Contains(out, "*"), "nothing selected")
}

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, Print(&buf, snapshot(model.Selection{Track: "Monza", Constructor: "Ferrari"}), 0))
	lines := strings.Split(buf.String(), "\n")
	var marked []string
	for _, l := range lines {
		if strings.HasSuffix(strings.TrimSpace(l), "*") {
			marked = append(marked, strings.Fields(l)[0])
		}
	}
	assert.DeepEqual(t, []string{"Ferrari", "Monza"}, marked)
}

func TestPrintLimit(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WithLimit(1))
	assert.NilError(t, w.Update(context.Background(), snapshot(model.Selection{})))
	out := buf.String()
	assert.Check(t, is.Contains(out, "Mercedes"))
	assert.Check(t, !strings.Contains(out, "Williams"), "only the first bar")
}
