package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

const defaultDaysElapsed = 12

// Config holds the command line settings of the demo.
type Config struct {
	ObservabilityEnabled bool
	LogLevel             slog.Level
	DaysElapsed          int
	JSON                 bool
}

// parseFlags parses the command line flags and returns the configuration.
func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("librarydemo", flag.ContinueOnError)

	var (
		observability = fs.Bool("observability-enabled", false, "Export OpenTelemetry spans and metrics to stderr")
		logLevel      = fs.String("log-level", "info", "Minimum log level: debug, info, warn, error")
		daysElapsed   = fs.Int("days-elapsed", defaultDaysElapsed, "Days that pass between lending and the maintenance run")
		asJSON        = fs.Bool("json", false, "Print the statistics as JSON")
	)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		return Config{}, err
	}

	if *daysElapsed < 0 {
		return Config{}, fmt.Errorf("days-elapsed must not be negative, got %d", *daysElapsed)
	}

	return Config{
		ObservabilityEnabled: *observability,
		LogLevel:             level,
		DaysElapsed:          *daysElapsed,
		JSON:                 *asJSON,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}
