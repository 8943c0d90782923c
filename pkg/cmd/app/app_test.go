package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/config"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/coordinator"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/selection"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/table"
	"github.com/mpapenbr/pitstop-explorer-go/testsupport/basedata"
)

const (
	dataFile  = "../../table/testdata/pitstops.csv"
	aliasFile = "../../table/testdata/aliases.yml"
)

func TestLoadTable(t *testing.T) {
	tbl, err := LoadTable(config.Config{DataFile: dataFile})
	require.NoError(t, err)
	assert.Equal(t, 7, tbl.Len())

	tbl, err = LoadTable(config.Config{DataFile: dataFile, AliasFile: aliasFile})
	require.NoError(t, err)
	assert.Equal(t, "Aston Martin", tbl.Records()[3].ConstructorName.GetOrZero())

	_, err = LoadTable(config.Config{})
	require.Error(t, err)
	_, err = LoadTable(config.Config{DataFile: dataFile, AliasFile: "missing.yml"})
	require.Error(t, err)
}

func TestSelectionFlagsApply(t *testing.T) {
	tests := []struct {
		name    string
		flags   SelectionFlags
		opts    []selection.Option
		want    model.Selection
		wantErr error
	}{
		{
			name:  "defaults",
			flags: SelectionFlags{},
			want:  model.Selection{YearRange: model.YearRange{Min: 2014, Max: 2016}},
		},
		{
			name:  "all set",
			flags: SelectionFlags{From: 2015, Track: "Monza", Constructor: "Ferrari"},
			want: model.Selection{
				YearRange: model.YearRange{Min: 2015, Max: 2016},
				Track:     "Monza", Constructor: "Ferrari",
			},
		},
		{
			name:  "strict keeps constructor",
			flags: SelectionFlags{To: 2014, Track: "Monza", Constructor: "Ferrari"},
			opts:  []selection.Option{selection.WithClearConstructorOnTrackChange(true)},
			want: model.Selection{
				YearRange: model.YearRange{Min: 2014, Max: 2014},
				Track:     "Monza", Constructor: "Ferrari",
			},
		},
		{
			name:    "invalid years",
			flags:   SelectionFlags{From: 2016, To: 2015},
			wantErr: selection.ErrInvalidYearRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c := coordinator.New(table.New(basedata.SampleRecords()),
				coordinator.WithSelectionOptions(tt.opts...))
			require.NoError(t, c.Start(ctx))
			err := tt.flags.Apply(ctx, c)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Selection())
		})
	}
}

func TestSetupLogger(t *testing.T) {
	defer func(f, l string) { config.LogFilter, config.LogLevel = f, l }(
		config.LogFilter, config.LogLevel)
	defer log.ResetDefault(log.Default())

	config.LogLevel = "debug"
	config.LogFilter = "*:coordinator"
	l, err := SetupLogger()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, l.Level())

	config.LogFilter = "foo:bar"
	_, err = SetupLogger()
	require.Error(t, err)
}
