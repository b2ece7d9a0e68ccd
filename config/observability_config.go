package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/AntonStoeckl/library-circulation-go/library"
	"github.com/AntonStoeckl/library-circulation-go/library/oteladapters"
)

const (
	serviceVersion       = "1.0.0"
	instrumentationScope = "github.com/AntonStoeckl/library-circulation-go/library"
	shutdownTimeout      = 5 * time.Second
	defaultMetricsPeriod = time.Minute
)

// ErrNilLogWriter is returned when NewObservabilityConfig gets no writer.
var ErrNilLogWriter = errors.New("log writer must not be nil")

// ObservabilityOption configures NewObservabilityConfig.
type ObservabilityOption func(*observabilitySettings)

type observabilitySettings struct {
	logLevel      slog.Level
	metricsPeriod time.Duration
}

// WithLogLevel sets the minimum level of the JSON log handler. The default is slog.LevelInfo.
func WithLogLevel(level slog.Level) ObservabilityOption {
	return func(s *observabilitySettings) {
		s.logLevel = level
	}
}

// WithMetricsPeriod sets how often metrics are exported on their own, in addition to
// WriteMetrics and Shutdown. The default is one minute.
func WithMetricsPeriod(period time.Duration) ObservabilityOption {
	return func(s *observabilitySettings) {
		s.metricsPeriod = period
	}
}

// ObservabilityConfig holds the OpenTelemetry providers and the adapters built on them.
// With observability disabled only Logger is set.
type ObservabilityConfig struct {
	Logger         *oteladapters.SlogBridgeLogger
	Metrics        *oteladapters.MetricsCollector
	Tracing        *oteladapters.TracingCollector
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
	Resource       *resource.Resource
}

// NewObservabilityConfig builds the logger and, if enabled, the tracer and meter providers for serviceName.
// Logs, spans and metrics all go to logWriter as JSON, one document per line.
func NewObservabilityConfig(
	serviceName string,
	enabled bool,
	logWriter io.Writer,
	options ...ObservabilityOption,
) (*ObservabilityConfig, error) {

	if logWriter == nil {
		return nil, ErrNilLogWriter
	}

	settings := observabilitySettings{logLevel: slog.LevelInfo, metricsPeriod: defaultMetricsPeriod}
	for _, option := range options {
		option(&settings)
	}

	telemetry := newSyncWriter(logWriter)

	cfg := &ObservabilityConfig{
		Logger: oteladapters.NewSlogBridgeLoggerWithHandler(
			serviceName,
			slog.NewJSONHandler(telemetry, &slog.HandlerOptions{Level: settings.logLevel}),
		),
	}

	if !enabled {
		return cfg, nil
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	spanExporter, err := stdouttrace.New(stdouttrace.WithWriter(telemetry))
	if err != nil {
		return nil, err
	}

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(telemetry))
	if err != nil {
		return nil, err
	}

	cfg.Resource = res
	cfg.TracerProvider = trace.NewTracerProvider(
		trace.WithSyncer(spanExporter),
		trace.WithResource(res),
	)
	cfg.MeterProvider = metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter, metric.WithInterval(settings.metricsPeriod))),
		metric.WithResource(res),
	)

	cfg.Tracing = oteladapters.NewTracingCollector(cfg.TracerProvider.Tracer(instrumentationScope))
	cfg.Metrics = oteladapters.NewMetricsCollector(cfg.MeterProvider.Meter(instrumentationScope))

	return cfg, nil
}

// Enabled reports whether tracing and metrics are configured.
func (c *ObservabilityConfig) Enabled() bool {
	return c.TracerProvider != nil
}

// SystemOptions returns the library options that plug the configured adapters into a System.
func (c *ObservabilityConfig) SystemOptions() []library.Option {
	options := []library.Option{library.WithContextualLogger(c.Logger)}

	if c.Enabled() {
		options = append(options, library.WithMetrics(c.Metrics), library.WithTracing(c.Tracing))
	}

	return options
}

// WriteMetrics exports the current metric values right away.
// It does nothing when observability is disabled.
func (c *ObservabilityConfig) WriteMetrics(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	return c.MeterProvider.ForceFlush(ctx)
}

// Shutdown flushes and stops the providers. Errors of both providers are joined.
func (c *ObservabilityConfig) Shutdown() error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		c.TracerProvider.Shutdown(ctx),
		c.MeterProvider.Shutdown(ctx),
	)
}
