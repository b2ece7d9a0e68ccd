package oteladapters_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/AntonStoeckl/library-circulation-go/library/oteladapters"
)

func Test_SlogBridgeLogger_WritesAllLevelsToHandler(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler("library", handler)
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "library operation started", "operation", "borrow_book")
	logger.InfoContext(ctx, "library operation succeeded", "operation", "borrow_book")
	logger.WarnContext(ctx, "book returned late", "days_late", 3)
	logger.ErrorContext(ctx, "appending to journal failed", "error", "boom")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"days_late":3`)
	assert.Contains(t, output, `"logger":"library"`)
}

func Test_SlogBridgeLogger_ServesPlainLoggerInterface(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler("library", slog.NewTextHandler(&buf, nil))

	// act
	logger.Info("notification delivered", "user_id", "u1")
	logger.Debug("filtered out by the default level")

	// assert
	assert.Contains(t, buf.String(), "notification delivered")
	assert.Contains(t, buf.String(), "user_id=u1")
	assert.NotContains(t, buf.String(), "filtered out")
}

func Test_SlogBridgeLogger_WithGlobalProvider_DoesNotPanic(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("library")

	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "library operation succeeded", "operation", "add_book")
	})
}

func Test_OTelLogger_HandlesLibraryArguments(t *testing.T) {
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("library"))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "library operation started", "operation", "return_book")
		logger.InfoContext(ctx, "library operation succeeded", "duration_ms", 1.25, "count", 2)
		logger.WarnContext(ctx, "library operation failed", "error", errors.New("book unavailable"))
		logger.ErrorContext(ctx, "appending to journal failed", "returned", true, "position", int64(7))
	})

	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "odd number of args", "user_id")
		logger.InfoContext(ctx, "non-string key", 42, "value")
	})
}
