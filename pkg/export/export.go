// Package export writes a snapshot as JSON or as scatter plot image.
package export

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render/plot"
)

const FormatJSON = "json"

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrNoMatch       = errors.New("jsonpath matched nothing")
)

// Formats lists the accepted values of the format option
func Formats() []string {
	return []string{FormatJSON, plot.FormatPNG, plot.FormatSVG}
}

type Options struct {
	Format   string
	JSONPath string // only for json, empty exports the whole snapshot
	Indent   int
}

// Write exports snap to w
func Write(w io.Writer, snap *model.Snapshot, o Options) error {
	switch o.Format {
	case FormatJSON, "":
		return writeJSON(w, snap, o)
	case plot.FormatPNG, plot.FormatSVG:
		if o.JSONPath != "" {
			return fmt.Errorf("jsonpath requires format %s", FormatJSON)
		}
		return plot.Write(w, snap, o.Format)
	default:
		return fmt.Errorf("%q (use one of %v): %w", o.Format, Formats(), ErrUnknownFormat)
	}
}

// IsValidFormat reports whether format may be passed to Write
func IsValidFormat(format string) bool {
	return slices.Contains(Formats(), format)
}

func writeJSON(w io.Writer, snap *model.Snapshot, o Options) error {
	var data any
	var err error
	if o.JSONPath == "" {
		data, err = toGeneric(snap)
	} else {
		data, err = Query(snap, o.JSONPath)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, oj.JSON(data, &oj.Options{Indent: o.Indent})+"\n")
	return err
}

// Query evaluates a JSONPath expression against the JSON form of snap.
// A single match is returned as is, multiple matches as list.
func Query(snap *model.Snapshot, expr string) (any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", expr, err)
	}
	obj, err := toGeneric(snap)
	if err != nil {
		return nil, err
	}
	res := x.Get(obj)
	switch len(res) {
	case 0:
		return nil, fmt.Errorf("%s: %w", expr, ErrNoMatch)
	case 1:
		return res[0], nil
	default:
		return res, nil
	}
}

// toGeneric converts snap into maps and slices keyed by the json tags
func toGeneric(snap *model.Snapshot) (any, error) {
	data, err := oj.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return oj.Parse(data)
}
