package log

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Level = zapcore.Level
	Field = zap.Field
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

type ctxKey struct{}

type Logger struct {
	l     *zap.Logger
	level zap.AtomicLevel
}

type config struct {
	zapOpts []zap.Option
	filter  zapfilter.FilterFunc
}

type Option func(*config)

func WithCaller(enabled bool) Option {
	return func(c *config) {
		c.zapOpts = append(c.zapOpts, zap.WithCaller(enabled))
	}
}

func AddCallerSkip(skip int) Option {
	return func(c *config) {
		c.zapOpts = append(c.zapOpts, zap.AddCallerSkip(skip))
	}
}

// WithFilter restricts the output by zapfilter rules, e.g. "info+:* debug:table"
func WithFilter(filter zapfilter.FilterFunc) Option {
	return func(c *config) {
		c.filter = filter
	}
}

//nolint:gochecknoglobals // default logger
var std = New(os.Stderr, InfoLevel)

// New creates a logger with json output
func New(writer io.Writer, level Level, opts ...Option) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	return newLogger(zapcore.NewJSONEncoder(encCfg), writer, level, opts...)
}

// DevLogger creates a logger with console output
func DevLogger(writer io.Writer, level Level, opts ...Option) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return newLogger(zapcore.NewConsoleEncoder(encCfg), writer, level, opts...)
}

//nolint:whitespace // editor/linter issue
func newLogger(
	enc zapcore.Encoder, writer io.Writer, level Level, opts ...Option,
) *Logger {
	if writer == nil {
		writer = os.Stderr
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	atomicLevel := zap.NewAtomicLevelAt(level)
	var core zapcore.Core = zapcore.NewCore(enc, zapcore.AddSync(writer), atomicLevel)
	if cfg.filter != nil {
		core = zapfilter.NewFilteringCore(core, cfg.filter)
	}
	return &Logger{l: zap.New(core, cfg.zapOpts...), level: atomicLevel}
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

// ParseFilter parses zapfilter rules. An empty string means no filter.
func ParseFilter(rules string) (zapfilter.FilterFunc, error) {
	if rules == "" {
		return nil, nil
	}
	return zapfilter.ParseRules(rules)
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) WithOptions(opts ...zap.Option) *Logger {
	return &Logger{l: l.l.WithOptions(opts...), level: l.level}
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...), level: l.level}
}

func (l *Logger) Level() Level {
	return l.level.Level()
}

func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level)
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func Default() *Logger {
	return std
}

// ResetDefault replaces the default logger. Not safe for concurrent use.
func ResetDefault(l *Logger) {
	std = l
}

func AddToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// GetFromContext returns the logger stored in ctx or the default logger
func GetFromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
			return l
		}
	}
	return std
}

func Debug(msg string, fields ...Field) { std.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { std.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { std.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { std.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { std.Fatal(msg, fields...) }

func Sync() error {
	if std != nil {
		return std.Sync()
	}
	return nil
}

//nolint:gochecknoglobals // field helpers
var (
	Any      = zap.Any
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Uint     = zap.Uint
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Time     = zap.Time
)

func ErrorField(err error) Field {
	return zap.Error(err)
}
