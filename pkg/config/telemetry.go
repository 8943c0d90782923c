package config

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mpapenbr/pitstop-explorer-go/log"
)

const serviceName = "psx"

type Telemetry struct {
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

type telemetryConfig struct {
	endpoint string
	writer   io.Writer
}

type TelemetryOption func(*telemetryConfig)

// WithEndpoint sends data via OTLP/gRPC to endpoint instead of writing to stdout exporters
func WithEndpoint(endpoint string) TelemetryOption {
	return func(c *telemetryConfig) {
		c.endpoint = endpoint
	}
}

// WithWriter sets the target of the stdout exporters (default: os.Stderr)
func WithWriter(w io.Writer) TelemetryOption {
	return func(c *telemetryConfig) {
		c.writer = w
	}
}

// SetupTelemetry installs global trace and meter providers.
// Call Shutdown on the result to flush pending data.
func SetupTelemetry(ctx context.Context, opts ...TelemetryOption) (*Telemetry, error) {
	cfg := &telemetryConfig{writer: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	spanExporter, metricExporter, err := createExporters(ctx, cfg)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	if err := otlpruntime.Start(
		otlpruntime.WithMinimumReadMemStatsInterval(time.Second)); err != nil {
		log.Warn("Could not start runtime metrics", log.ErrorField(err))
	}
	return &Telemetry{tracer: tp, meter: mp}, nil
}

//nolint:whitespace // editor/linter issue
func createExporters(ctx context.Context, cfg *telemetryConfig) (
	sdktrace.SpanExporter, sdkmetric.Exporter, error,
) {
	if cfg.endpoint != "" {
		spanExporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.endpoint),
			otlptracegrpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		metricExporter, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(cfg.endpoint),
			otlpmetricgrpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		return spanExporter, metricExporter, nil
	}
	spanExporter, err := stdouttrace.New(stdouttrace.WithWriter(cfg.writer))
	if err != nil {
		return nil, nil, err
	}
	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.writer))
	if err != nil {
		return nil, nil, err
	}
	return spanExporter, metricExporter, nil
}

// Shutdown flushes and stops the providers
func (t *Telemetry) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := errors.Join(
		t.tracer.Shutdown(ctx),
		t.meter.Shutdown(ctx),
	)
	if err != nil {
		log.Warn("Telemetry shutdown", log.ErrorField(err))
	}
}
