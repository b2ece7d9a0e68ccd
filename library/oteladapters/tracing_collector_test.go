package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/library-circulation-go/library/oteladapters"
)

func Test_TracingCollector_FinishSpan_Success(t *testing.T) {
	// arrange
	exporter, collector := givenTracingCollector()

	// act
	_, span := collector.StartSpan(context.Background(), "library.borrow_book", map[string]string{"user_id": "u1"})
	collector.FinishSpan(span, "success", map[string]string{"transaction_id": "TRX000001"})

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "library.borrow_book", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assertSpanHasAttribute(t, spans[0], "user_id", "u1")
	assertSpanHasAttribute(t, spans[0], "transaction_id", "TRX000001")
}

func Test_TracingCollector_FinishSpan_ErrorRecordsFailureEvent(t *testing.T) {
	// arrange
	exporter, collector := givenTracingCollector()

	// act
	_, span := collector.StartSpan(context.Background(), "library.return_book", nil)
	collector.FinishSpan(span, "error", map[string]string{"error": "loan transaction is closed"})

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "library.failure", spans[0].Events[0].Name)
	assert.Contains(t, spans[0].Events[0].Attributes, attribute.String("reason", "loan transaction is closed"))
}

func Test_TracingCollector_UnknownStatusBecomesAttribute(t *testing.T) {
	// arrange
	exporter, collector := givenTracingCollector()

	// act
	_, span := collector.StartSpan(context.Background(), "library.statistics", nil)
	collector.FinishSpan(span, "skipped", nil)

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assertSpanHasAttribute(t, spans[0], "status", "skipped")
}

func Test_TracingCollector_PropagatesParentSpan(t *testing.T) {
	// arrange
	exporter, collector := givenTracingCollector()

	// act
	ctx, parent := collector.StartSpan(context.Background(), "library.statistics", nil)
	_, child := collector.StartSpan(ctx, "library.check_overdue", nil)
	collector.FinishSpan(child, "success", nil)
	collector.FinishSpan(parent, "success", nil)

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
	assert.Equal(t, spans[1].SpanContext.TraceID(), spans[0].SpanContext.TraceID())
}

func Test_TracingCollector_IgnoresForeignSpanContext(t *testing.T) {
	// arrange
	exporter, collector := givenTracingCollector()

	// act
	assert.NotPanics(t, func() {
		collector.FinishSpan(foreignSpanContext{}, "success", nil)
	})

	// assert
	assert.Empty(t, exporter.GetSpans())
}

func Test_OTelSpanContext_AddAttribute(t *testing.T) {
	// arrange
	exporter, collector := givenTracingCollector()

	// act
	_, span := collector.StartSpan(context.Background(), "library.add_book", nil)
	span.AddAttribute("isbn", "978-0134190440")
	collector.FinishSpan(span, "success", nil)

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assertSpanHasAttribute(t, spans[0], "isbn", "978-0134190440")
}

type foreignSpanContext struct{}

func (foreignSpanContext) SetStatus(string)            {}
func (foreignSpanContext) AddAttribute(string, string) {}

func givenTracingCollector() (*tracetest.InMemoryExporter, *oteladapters.TracingCollector) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	return exporter, oteladapters.NewTracingCollector(provider.Tracer("library"))
}

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, expected string) {
	t.Helper()

	for _, attr := range span.Attributes {
		if string(attr.Key) == key {
			assert.Equal(t, expected, attr.Value.AsString(), "attribute %s", key)
			return
		}
	}

	t.Errorf("attribute %s not found on span %s", key, span.Name)
}
