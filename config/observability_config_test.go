package config_test

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/config"
	"github.com/AntonStoeckl/library-circulation-go/library"
)

func Test_NewObservabilityConfig_Disabled_OnlyProvidesLogger(t *testing.T) {
	// arrange
	var out bytes.Buffer

	// act
	cfg, err := config.NewObservabilityConfig("library-test", false, &out)

	// assert
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())
	assert.NotNil(t, cfg.Logger)
	assert.Nil(t, cfg.Metrics)
	assert.Nil(t, cfg.Tracing)
	assert.Len(t, cfg.SystemOptions(), 1)
	assert.NoError(t, cfg.WriteMetrics(context.Background()))
	assert.NoError(t, cfg.Shutdown())
}

func Test_NewObservabilityConfig_NilWriter(t *testing.T) {
	_, err := config.NewObservabilityConfig("library-test", true, nil)

	assert.ErrorIs(t, err, config.ErrNilLogWriter)
}

func Test_NewObservabilityConfig_Enabled_WritesLogsSpansAndMetrics(t *testing.T) {
	// arrange
	var out bytes.Buffer
	cfg, err := config.NewObservabilityConfig("library-test", true, &out, config.WithLogLevel(slog.LevelDebug))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cfg.Shutdown() })

	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	options := append(cfg.SystemOptions(), library.WithClock(library.ClockFunc(func() time.Time { return now })))
	system, err := library.NewSystem(options...)
	require.NoError(t, err)

	ctx := context.Background()

	// act
	require.NoError(t, system.AddBook(ctx, "978-0132350884", "Clean Code", "Robert C. Martin", "Prentice Hall", 2008, 2))
	system.Statistics(ctx)
	require.NoError(t, cfg.WriteMetrics(ctx))

	// assert
	lines := givenJSONLines(t, bytes.NewBuffer(out.Bytes()))

	assert.True(t, hasLine(lines, "msg", "library operation started"))
	assert.True(t, hasLine(lines, "Name", "library.add_book"))
	assert.Contains(t, out.String(), `"Name":"library_operation_calls_total"`)
	assert.Contains(t, out.String(), `"Name":"library_copies_available"`)
}

func Test_ObservabilityConfig_Shutdown_FlushesPendingMetrics(t *testing.T) {
	// arrange
	var out bytes.Buffer
	cfg, err := config.NewObservabilityConfig("library-test", true, &out, config.WithMetricsPeriod(time.Hour))
	require.NoError(t, err)

	system, err := library.NewSystem(cfg.SystemOptions()...)
	require.NoError(t, err)
	require.NoError(t, system.AddBook(context.Background(), "978-0132350884", "Clean Code", "Robert C. Martin", "Prentice Hall", 2008, 1))
	require.NotContains(t, out.String(), `"Name":"library_operation_calls_total"`)

	// act
	err = cfg.Shutdown()

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"Name":"library_operation_calls_total"`)
}

func givenJSONLines(t *testing.T, out *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any

	scanner := bufio.NewScanner(out)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, jsoniter.ConfigFastest.Unmarshal(scanner.Bytes(), &line), scanner.Text())
		lines = append(lines, line)
	}

	return lines
}

func hasLine(lines []map[string]any, key string, value string) bool {
	for _, line := range lines {
		if line[key] == value {
			return true
		}
	}

	return false
}
