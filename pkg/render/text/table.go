// Package text prints the views as aligned tables for terminal sessions.
package text

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render"
)

// Writer is a view printing every snapshot to out
type Writer struct {
	out   io.Writer
	limit int
}

type Option func(*Writer)

// WithLimit restricts each table to the first n rows (0: no limit)
func WithLimit(n int) Option {
	return func(w *Writer) {
		w.limit = n
	}
}

func NewWriter(out io.Writer, opts ...Option) *Writer {
	ret := &Writer{out: out}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (w *Writer) Update(_ context.Context, snap *model.Snapshot) error {
	return Print(w.out, snap, w.limit)
}

func marker(e render.Emphasis) string {
	if e == render.Emphasized {
		return "*"
	}
	return ""
}

func take[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

// Print writes the selection and all three views to out.
// Selected bars and circuits are marked with '*'.
func Print(out io.Writer, snap *model.Snapshot, limit int) error {
	sel := snap.Selection
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	p := func(format string, args ...any) {
		fmt.Fprintf(tw, format, args...)
	}

	p("#%d years %d-%d\ttrack=%s\tconstructor=%s\trecords=%d\n",
		snap.Sequence, sel.YearRange.Min, sel.YearRange.Max,
		orNone(sel.Track), orNone(sel.Constructor), snap.Records)

	p("\nCONSTRUCTOR\tAVG\t\n")
	for _, r := range take(snap.Views.Bar, limit) {
		p("%s\t%s\t%s\n", r.Key, render.Seconds(r.Value),
			marker(render.EmphasisFor(sel.Constructor, r.Key)))
	}

	p("\nRACE\tAVG\tPOS\n")
	for _, r := range take(snap.Views.Scatter, limit) {
		p("%s\t%s\t%s\n", r.Key, render.Seconds(r.AvgPitStopTime),
			strconv.Itoa(r.FinishingPosition))
	}

	p("\nCIRCUIT\tAVG\t\n")
	for _, r := range take(snap.Views.Globe, limit) {
		p("%s\t%s\t%s\n", r.Track, render.Seconds(r.AvgDuration),
			marker(render.EmphasisFor(sel.Track, r.Track)))
	}
	return tw.Flush()
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
