package oteladapters_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/library-circulation-go/library"
	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/oteladapters"
)

func Test_System_WithOTelAdapters_ExportsSpansMetricsAndLogs(t *testing.T) {
	// arrange
	exporter := tracetest.NewInMemoryExporter()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	var logs bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(
		"library",
		slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	system, err := library.NewSystem(
		library.WithClock(library.ClockFunc(func() time.Time { return now })),
		library.WithContextualLogger(logger),
		library.WithMetrics(oteladapters.NewMetricsCollector(meterProvider.Meter("library"))),
		library.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("library"))),
	)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, system.AddStudent(ctx, "S001", "Ada", "ada@uni.example", "0600000000", "S-1", "Physics"))
	require.NoError(t, system.AddBook(ctx, "978-0262033848", "Introduction to Algorithms", "Cormen", "MIT Press", 2009, 1))
	_, err = system.BorrowBook(ctx, "S001", "978-0262033848")
	require.NoError(t, err)

	// act
	_, err = system.BorrowBook(ctx, "S001", "978-0262033848")
	now = now.AddDate(0, 0, 20)
	stats := system.Statistics(ctx)

	// assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrBookUnavailable))
	assert.Equal(t, 1, stats.ActiveLoans)
	assert.Equal(t, 1, stats.OverdueLoans)

	failed := findSpanStub(t, exporter.GetSpans(), "library.borrow_book", codes.Error)
	assert.Len(t, failed.Events, 1)
	findSpanStub(t, exporter.GetSpans(), "library.statistics", codes.Ok)

	resourceMetrics := collect(t, reader)
	calls := findCounter(t, resourceMetrics, "library_operation_calls_total")
	assert.NotEmpty(t, calls.DataPoints)
	activeLoans := findGauge(t, resourceMetrics, "library_active_loans")
	require.Len(t, activeLoans.DataPoints, 1)
	assert.InDelta(t, 1.0, activeLoans.DataPoints[0].Value, 0.0001)

	assert.Contains(t, logs.String(), "library operation failed")
	assert.Contains(t, logs.String(), "notification delivered")
}

func findSpanStub(t *testing.T, spans tracetest.SpanStubs, name string, code codes.Code) tracetest.SpanStub {
	t.Helper()

	for _, span := range spans {
		if span.Name == name && span.Status.Code == code {
			return span
		}
	}

	names := make([]string, 0, len(spans))
	for _, span := range spans {
		names = append(names, span.Name)
	}

	t.Fatalf("no span %s with status %s among [%s]", name, code, strings.Join(names, ", "))

	return tracetest.SpanStub{}
}
