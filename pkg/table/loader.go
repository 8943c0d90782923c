package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aarondl/opt/null"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
)

// ErrMissingColumn is returned if the CSV header lacks a required column
var ErrMissingColumn = errors.New("missing column")

// nullMarker is used by the Ergast data dumps for missing values
const nullMarker = `\N`

type column struct {
	names    []string // first match wins
	required bool
}

//nolint:gochecknoglobals // column lookup
var columns = map[string]column{
	"season":          {names: []string{"season"}, required: true},
	"year":            {names: []string{"year"}, required: true},
	"track":           {names: []string{"track"}, required: true},
	"circuitName":     {names: []string{"circuitName"}, required: true},
	"constructorName": {names: []string{"constructorName"}, required: true},
	"duration":        {names: []string{"duration"}, required: true},
	"position":        {names: []string{"position"}, required: true},
	"positionOrder":   {names: []string{"positionOrder"}},
	"lat":             {names: []string{"lat_race", "lat"}},
	"lng":             {names: []string{"lng_race", "lng"}},
}

type Loader struct {
	aliases model.ConstructorAliasTable
	l       *log.Logger
}

type LoaderOption func(*Loader)

func WithAliases(aliases model.ConstructorAliasTable) LoaderOption {
	return func(ld *Loader) {
		ld.aliases = aliases
	}
}

func WithLogger(l *log.Logger) LoaderOption {
	return func(ld *Loader) {
		ld.l = l
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	ret := &Loader{
		aliases: model.DefaultConstructorAliases,
		l:       log.Default().Named("table"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// LoadFile reads the pit stop CSV file at path
func (ld *Loader) LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	t, err := ld.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Load reads CSV data with a header line. Constructor names are normalized
// with the configured alias table. Cells that cannot be parsed are stored as
// null (or zero for non-nullable columns), rows are never rejected here.
func (ld *Loader) Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = false
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]model.PitStopRecord, 0)
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		records = append(records, ld.toRecord(row, idx))
	}
	ld.l.Debug("loaded records", log.Int("count", len(records)))
	return New(records), nil
}

func resolveColumns(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	idx := make(map[string]int, len(columns))
	for key, c := range columns {
		found := false
		for _, name := range c.names {
			if i, ok := pos[name]; ok {
				idx[key] = i
				found = true
				break
			}
		}
		if !found {
			if c.required {
				return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c.names[0])
			}
			idx[key] = -1
		}
	}
	return idx, nil
}

func (ld *Loader) toRecord(row []string, idx map[string]int) model.PitStopRecord {
	cell := func(key string) null.Val[string] {
		i := idx[key]
		if i < 0 || i >= len(row) {
			return null.Val[string]{}
		}
		v := strings.TrimSpace(row[i])
		if v == "" || v == nullMarker {
			return null.Val[string]{}
		}
		return null.From(v)
	}
	text := func(key string) string {
		return cell(key).GetOrZero()
	}
	integer := func(key string) null.Val[int] {
		s, ok := cell(key).Get()
		if !ok {
			return null.Val[int]{}
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return null.Val[int]{}
		}
		return null.From(v)
	}
	float := func(key string) float64 {
		v, err := strconv.ParseFloat(text(key), 64)
		if err != nil {
			return 0
		}
		return v
	}

	rec := model.PitStopRecord{
		Season:        cell("season"),
		Year:          integer("year"),
		Track:         cell("track"),
		CircuitName:   text("circuitName"),
		Duration:      cell("duration"),
		Position:      cell("position"),
		PositionOrder: integer("positionOrder").GetOrZero(),
		Lat:           float("lat"),
		Lng:           float("lng"),
	}
	if name, ok := cell("constructorName").Get(); ok {
		rec.ConstructorName = null.From(ld.aliases.Normalize(name))
	}
	return rec
}

// LoadAliases reads a YAML mapping of raw constructor names to canonical names.
func LoadAliases(path string) (model.ConstructorAliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}
	return ParseAliases(data)
}

func ParseAliases(data []byte) (model.ConstructorAliasTable, error) {
	ret := model.ConstructorAliasTable{}
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("parse alias file: %w", err)
	}
	return ret, nil
}
