// Package app holds the setup shared by all commands: logging, telemetry,
// loading the data and creating the coordinator.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/config"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/coordinator"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/selection"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/table"
)

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger creates the logger from the resolved config and installs it as default
func SetupLogger() (*log.Logger, error) {
	filter, err := log.ParseFilter(config.LogFilter)
	if err != nil {
		return nil, fmt.Errorf("log filter %q: %w", config.LogFilter, err)
	}
	opts := []log.Option{log.WithCaller(true), log.AddCallerSkip(1)}
	if filter != nil {
		opts = append(opts, log.WithFilter(filter))
	}
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(os.Stderr, parseLogLevel(config.LogLevel, log.InfoLevel), opts...)
	default:
		logger = log.DevLogger(os.Stderr, parseLogLevel(config.LogLevel, log.InfoLevel), opts...)
	}
	log.ResetDefault(logger)
	return logger, nil
}

// Session bundles what a command works with
type Session struct {
	Coordinator *coordinator.Coordinator
	Table       *table.Table
	telemetry   *config.Telemetry
}

// Close flushes telemetry and logs
func (s *Session) Close() {
	if s.telemetry != nil {
		s.telemetry.Shutdown()
	}
	_ = log.Sync()
}

// Open sets up logging and telemetry, loads the data file and creates the
// coordinator. Views are not updated until the coordinator is started.
func Open(ctx context.Context, views ...coordinator.View) (*Session, error) {
	if _, err := SetupLogger(); err != nil {
		return nil, err
	}
	ret := &Session{}
	if config.EnableTelemetry {
		log.Info("Enabling telemetry")
		var opts []config.TelemetryOption
		if config.TelemetryEndpoint != "" {
			opts = append(opts, config.WithEndpoint(config.TelemetryEndpoint))
		}
		t, err := config.SetupTelemetry(ctx, opts...)
		if err != nil {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		} else {
			ret.telemetry = t
		}
	}

	tbl, err := LoadTable(config.Current())
	if err != nil {
		ret.Close()
		return nil, err
	}
	ret.Table = tbl
	ret.Coordinator = coordinator.New(tbl,
		coordinator.WithViews(views...),
		coordinator.WithSelectionOptions(
			selection.WithClearConstructorOnTrackChange(config.StrictTrackClear)),
	)
	return ret, nil
}

// LoadTable reads the data file, using the alias file when configured
func LoadTable(cfg config.Config) (*table.Table, error) {
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("no data file given (use --data)")
	}
	var opts []table.LoaderOption
	if cfg.AliasFile != "" {
		aliases, err := table.LoadAliases(cfg.AliasFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, table.WithAliases(aliases))
	}
	tbl, err := table.NewLoader(opts...).LoadFile(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	r, _ := tbl.YearRange()
	log.Info("Data loaded",
		log.String("file", cfg.DataFile),
		log.Int("records", tbl.Len()),
		log.Int("from", r.Min), log.Int("to", r.Max))
	return tbl, nil
}

// SelectionFlags is the initial selection given on the command line
type SelectionFlags struct {
	From        int
	To          int
	Track       string
	Constructor string
}

// AddSelectionFlags registers the selection flags on cmd
func AddSelectionFlags(cmd *cobra.Command, s *SelectionFlags) {
	cmd.Flags().IntVar(&s.From, "from", 0, "first year (default: first year of the data)")
	cmd.Flags().IntVar(&s.To, "to", 0, "last year (default: last year of the data)")
	cmd.Flags().StringVar(&s.Track, "track", "", "selected circuit")
	cmd.Flags().StringVar(&s.Constructor, "constructor", "", "selected constructor")
}

// Apply replays the selection as events on c. Unset years keep the full range.
// The track is applied first so the constructor survives the strict track rule.
func (s SelectionFlags) Apply(ctx context.Context, c *coordinator.Coordinator) error {
	full := c.FullYearRange()
	from, to := full.Min, full.Max
	if s.From != 0 {
		from = s.From
	}
	if s.To != 0 {
		to = s.To
	}
	if from != full.Min || to != full.Max {
		if err := c.SetYearRange(ctx, from, to); err != nil {
			return err
		}
	}
	if s.Track != "" {
		if err := c.ClickTrack(ctx, s.Track); err != nil {
			return err
		}
	}
	if s.Constructor != "" {
		if err := c.ClickBar(ctx, s.Constructor); err != nil {
			return err
		}
	}
	return nil
}
