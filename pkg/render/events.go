package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/coordinator"
)

// ViewKind names one of the linked views
type ViewKind string

const (
	BarChart     ViewKind = "bar"
	ScatterChart ViewKind = "scatter"
	Globe        ViewKind = "globe"
)

var ErrNotClickable = errors.New("view does not accept clicks")

// Clicker receives the selection events of the clickable views
type Clicker interface {
	ClickBar(ctx context.Context, constructor string) error
	ClickTrack(ctx context.Context, track string) error
}

// Dispatch translates a click on the row identified by key into the matching event.
// The key of a bar row is the constructor, the key of a globe row is the track.
func Dispatch(ctx context.Context, c Clicker, kind ViewKind, key string) error {
	switch kind {
	case BarChart:
		return c.ClickBar(ctx, key)
	case Globe:
		return c.ClickTrack(ctx, key)
	case ScatterChart:
		return fmt.Errorf("%s: %w", kind, ErrNotClickable)
	default:
		return fmt.Errorf("unknown view %q: %w", kind, ErrNotClickable)
	}
}

// ParseViewKind accepts the names used on the command line
func ParseViewKind(s string) (ViewKind, error) {
	switch ViewKind(s) {
	case BarChart, ScatterChart, Globe:
		return ViewKind(s), nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}

// View is implemented by every adapter that renders snapshots
type View = coordinator.View
