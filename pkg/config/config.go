package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	DataFile          string // path to the pit stop CSV file
	AliasFile         string // optional YAML file replacing the constructor alias table
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogFilter         string // zapfilter rules, e.g. "info+:* debug:coordinator"
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry (otlp grpc), empty: stdout
	StrictTrackClear  bool   // clear the selected constructor on every track change
)

// Config holds the configuration values which are used by the application
type Config struct {
	DataFile         string
	AliasFile        string
	StrictTrackClear bool
}

// Current returns the resolved config values
func Current() Config {
	return Config{
		DataFile:         DataFile,
		AliasFile:        AliasFile,
		StrictTrackClear: StrictTrackClear,
	}
}
