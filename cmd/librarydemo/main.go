package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/config"
	"github.com/AntonStoeckl/library-circulation-go/library"
)

const serviceName = "librarydemo"

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func run(cfg Config, stdout io.Writer, stderr io.Writer) error {
	obsConfig, err := config.NewObservabilityConfig(
		serviceName,
		cfg.ObservabilityEnabled,
		stderr,
		config.WithLogLevel(cfg.LogLevel),
	)
	if err != nil {
		return fmt.Errorf("setting up observability: %w", err)
	}

	defer func() {
		if shutdownErr := obsConfig.Shutdown(); shutdownErr != nil {
			log.Printf("Observability shutdown failed: %v", shutdownErr)
		}
	}()

	clock := newScenarioClock(time.Now().UTC())

	system, err := library.NewSystem(append(obsConfig.SystemOptions(), library.WithClock(clock))...)
	if err != nil {
		return fmt.Errorf("creating library system: %w", err)
	}

	ctx := context.Background()

	if err := runScenario(ctx, system, clock, cfg.DaysElapsed, stdout); err != nil {
		return err
	}

	stats := system.Statistics(ctx)

	if err := obsConfig.WriteMetrics(ctx); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	if cfg.JSON {
		return jsoniter.ConfigFastest.NewEncoder(stdout).Encode(stats)
	}

	printStatistics(stdout, system, stats)

	return nil
}

func printStatistics(w io.Writer, system *library.System, stats library.Statistics) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, system.String())
	fmt.Fprintf(w, "  users:            %d (students=%d, teachers=%d)\n", stats.TotalUsers, stats.Students, stats.Teachers)
	fmt.Fprintf(w, "  copies:           %d (available=%d, on loan=%d)\n", stats.TotalCopies, stats.AvailableCopies, stats.CopiesOnLoan)
	fmt.Fprintf(w, "  active loans:     %d\n", stats.ActiveLoans)
	fmt.Fprintf(w, "  overdue loans:    %d\n", stats.OverdueLoans)
	fmt.Fprintf(w, "  journal entries:  %d\n", system.Journal().Len())

	history := system.NotificationHistory()
	if len(history) == 0 {
		return
	}

	fmt.Fprintln(w, "\nNotifications:")
	for _, entry := range history {
		fmt.Fprintf(w, "  %s\n", entry)
	}
}
