// Package coordinator owns the selection state and the record table of one
// session and keeps all registered views consistent.
//
// A Coordinator is not safe for concurrent use. Events are expected to be
// processed one after another; each event recomputes all views before it returns.
package coordinator

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/processing"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/selection"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/table"
)

// View receives the result of every recompute
type View interface {
	Update(ctx context.Context, snap *model.Snapshot) error
}

// ViewFunc adapts a function to the View interface
type ViewFunc func(ctx context.Context, snap *model.Snapshot) error

func (f ViewFunc) Update(ctx context.Context, snap *model.Snapshot) error {
	return f(ctx, snap)
}

const (
	EventInit       = "init"
	EventYearRange  = "year-range"
	EventBarClick   = "bar-click"
	EventTrackClick = "track-click"
	EventClearAll   = "clear-all"
	EventRefresh    = "refresh"
)

type Coordinator struct {
	full       *table.Table
	active     *table.Table
	state      *selection.State
	stateOpts  []selection.Option
	views      []View
	session    string
	sequence   int
	current    *model.Snapshot
	l          *log.Logger
	tracer     trace.Tracer
	recomputes metric.Int64Counter
}

type Option func(*Coordinator)

func WithViews(views ...View) Option {
	return func(c *Coordinator) {
		c.views = append(c.views, views...)
	}
}

func WithSelectionOptions(opts ...selection.Option) Option {
	return func(c *Coordinator) {
		c.stateOpts = append(c.stateOpts, opts...)
	}
}

func WithSessionID(id string) Option {
	return func(c *Coordinator) {
		c.session = id
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) {
		c.l = l
	}
}

// New creates a coordinator for the full table. The year range starts with the
// full range of the data, nothing is selected. No view is updated until Start.
func New(full *table.Table, opts ...Option) *Coordinator {
	ret := &Coordinator{
		full:    full,
		session: uuid.NewString(),
		l:       log.Default().Named("coordinator"),
		tracer:  otel.Tracer("psx.coordinator"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.l = ret.l.With(log.String("session", ret.session))
	yearRange, _ := full.YearRange()
	ret.state = selection.New(yearRange, ret.stateOpts...)
	ret.active = full.FilterYears(yearRange)
	ret.setupMetrics()
	return ret
}

func (c *Coordinator) setupMetrics() {
	meter := otel.GetMeterProvider().Meter("psx.coordinator")
	counter, err := meter.Int64Counter("psx.coordinator.recompute",
		metric.WithDescription("Number of view recomputations"),
		metric.WithUnit("{count}"))
	if err != nil {
		c.l.Error("failed to register metric", log.ErrorField(err))
		return
	}
	c.recomputes = counter
}

// Register adds a view. It gets the current snapshot with the next event.
func (c *Coordinator) Register(v View) {
	c.views = append(c.views, v)
}

func (c *Coordinator) Session() string { return c.session }

// Selection returns a copy of the current selection
func (c *Coordinator) Selection() model.Selection { return c.state.Selection() }

// FullYearRange is the year range covered by the loaded data
func (c *Coordinator) FullYearRange() model.YearRange {
	r, _ := c.full.YearRange()
	return r
}

// Snapshot returns the result of the latest recompute (nil before Start)
func (c *Coordinator) Snapshot() *model.Snapshot { return c.current }

// Start computes the initial views
func (c *Coordinator) Start(ctx context.Context) error {
	return c.recompute(ctx, EventInit)
}

// SetYearRange replaces the active table by the records within [from,to]
func (c *Coordinator) SetYearRange(ctx context.Context, from, to int) error {
	changed, err := c.state.SetYearRange(from, to)
	if err != nil {
		c.l.Warn("year range rejected", log.Int("from", from), log.Int("to", to))
		return err
	}
	c.active = c.full.FilterYears(c.state.YearRange())
	c.l.Debug("year range",
		log.Int("from", from), log.Int("to", to),
		log.Int("records", c.active.Len()), log.Bool("changed", changed))
	return c.recompute(ctx, EventYearRange)
}

// ClickBar toggles the constructor selection
func (c *Coordinator) ClickBar(ctx context.Context, constructor string) error {
	changed := c.state.SelectConstructor(constructor)
	c.l.Debug("bar click", log.String("constructor", constructor), log.Bool("changed", changed))
	return c.recompute(ctx, EventBarClick)
}

// ClickTrack toggles the track selection
func (c *Coordinator) ClickTrack(ctx context.Context, track string) error {
	changed := c.state.SelectTrack(track)
	c.l.Debug("track click", log.String("track", track), log.Bool("changed", changed))
	return c.recompute(ctx, EventTrackClick)
}

// ClearAll resets track and constructor selection
func (c *Coordinator) ClearAll(ctx context.Context) error {
	changed := c.state.ClearAll()
	c.l.Debug("clear all", log.Bool("changed", changed))
	return c.recompute(ctx, EventClearAll)
}

// Recompute pushes fresh views for the unchanged state to all views
func (c *Coordinator) Recompute(ctx context.Context) error {
	return c.recompute(ctx, EventRefresh)
}

// recompute derives all views from the active table and hands the result to
// every view in registration order. View errors are collected; the state is kept.
func (c *Coordinator) recompute(ctx context.Context, event string) error {
	sel := c.state.Selection()
	ctx, span := c.tracer.Start(ctx, "recompute",
		trace.WithAttributes(
			attribute.String("session", c.session),
			attribute.String("event", event),
			attribute.String("track", sel.Track),
			attribute.String("constructor", sel.Constructor),
			attribute.Int("yearFrom", sel.YearRange.Min),
			attribute.Int("yearTo", sel.YearRange.Max),
		))
	defer span.End()

	c.sequence++
	snap := &model.Snapshot{
		Session:   c.session,
		Sequence:  c.sequence,
		Selection: sel,
		Records:   c.active.Len(),
		Views:     processing.Compute(c.active.Records(), sel),
	}
	c.current = snap
	if c.recomputes != nil {
		c.recomputes.Add(ctx, 1, metric.WithAttributes(attribute.String("event", event)))
	}

	var errs []error
	for _, v := range c.views {
		if err := v.Update(ctx, snap); err != nil {
			c.l.Error("view update failed", log.String("event", event), log.ErrorField(err))
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "view update failed")
	}
	return err
}
