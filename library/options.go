package library

import (
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/journal"
)

var (
	// ErrNilClock is returned by NewSystem when WithClock is given a nil clock.
	ErrNilClock = errors.New("clock must not be nil")

	// ErrNilTransactionIDSequence is returned by NewSystem when WithTransactionIDSequence is given nil.
	ErrNilTransactionIDSequence = errors.New("transaction id sequence must not be nil")

	// ErrNilJournal is returned by NewSystem when WithJournal is given nil.
	ErrNilJournal = errors.New("journal must not be nil")

	// ErrInvalidReminderWindow is returned by NewSystem for a reminder window that is negative or inverted.
	ErrInvalidReminderWindow = errors.New("reminder window is invalid")
)

// Option defines a functional option for configuring a System.
type Option func(*System) error

// WithClock sets the time source. Defaults to the wall clock.
func WithClock(clock Clock) Option {
	return func(s *System) error {
		if clock == nil {
			return ErrNilClock
		}

		s.clock = clock

		return nil
	}
}

// WithLogger sets the logger for the System.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: start of every operation
// Info level: successful operations
// Warn level: rejected operations (business rule violations) and late returns
// Error level: internal failures like a journal that cannot serialize an event.
func WithLogger(logger Logger) Option {
	return func(s *System) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the System.
// It takes precedence over a Logger set with WithLogger.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *System) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the System.
// It will receive operation durations and call counts, notification counts and the
// loan and copy gauges computed by Statistics.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *System) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the System.
// Every mutating or scanning operation runs inside a span named "library.<operation>".
func WithTracing(collector TracingCollector) Option {
	return func(s *System) error {
		s.tracingCollector = collector
		return nil
	}
}

// WithTransactionIDSequence makes the System draw its transaction ids from sequence.
func WithTransactionIDSequence(sequence *core.TransactionIDSequence) Option {
	return func(s *System) error {
		if sequence == nil {
			return ErrNilTransactionIDSequence
		}

		s.sequence = sequence

		return nil
	}
}

// WithReminderWindow sets the range of remaining days, inclusive on both ends, for which
// SendReminders notifies a user. Defaults to 1..3.
func WithReminderWindow(minDays int, maxDays int) Option {
	return func(s *System) error {
		if minDays < 0 || maxDays < minDays {
			return ErrInvalidReminderWindow
		}

		s.reminderMinDays = minDays
		s.reminderMaxDays = maxDays

		return nil
	}
}

// WithJournal sets the journal that records the domain events of the System.
// Defaults to a new, empty journal.
func WithJournal(j *journal.Journal) Option {
	return func(s *System) error {
		if j == nil {
			return ErrNilJournal
		}

		s.journal = j

		return nil
	}
}
