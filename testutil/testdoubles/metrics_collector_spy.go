package testdoubles

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library"
)

// Instrument tells which collector method produced a SpyMeasurement.
type Instrument string

const (
	InstrumentDuration Instrument = "duration"
	InstrumentCounter  Instrument = "counter"
	InstrumentValue    Instrument = "value"
)

// SpyMeasurement is one recorded call. Duration is set for durations, Value for values.
type SpyMeasurement struct {
	Instrument Instrument
	Metric     string
	Duration   time.Duration
	Value      float64
	Labels     map[string]string
}

// MetricsCollectorSpy records every measurement in call order.
// It implements the contextual interface, so the System always calls the *Context variants.
type MetricsCollectorSpy struct {
	mu           sync.Mutex
	measurements []SpyMeasurement
	recordCalls  bool
}

// NewMetricsCollectorSpy creates a spy. With recordCalls false every call is dropped.
func NewMetricsCollectorSpy(recordCalls bool) *MetricsCollectorSpy {
	return &MetricsCollectorSpy{recordCalls: recordCalls}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.add(SpyMeasurement{Instrument: InstrumentDuration, Metric: metric, Duration: duration, Labels: labels})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.add(SpyMeasurement{Instrument: InstrumentCounter, Metric: metric, Labels: labels})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.add(SpyMeasurement{Instrument: InstrumentValue, Metric: metric, Value: value, Labels: labels})
}

func (s *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.RecordDuration(metric, duration, labels)
}

func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.IncrementCounter(metric, labels)
}

func (s *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.RecordValue(metric, value, labels)
}

func (s *MetricsCollectorSpy) add(m SpyMeasurement) {
	if !s.recordCalls {
		return
	}

	m.Labels = maps.Clone(m.Labels)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.measurements = append(s.measurements, m)
}

// Measurements returns the recorded calls of one instrument for metric, in call order.
func (s *MetricsCollectorSpy) Measurements(instrument Instrument, metric string) []SpyMeasurement {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []SpyMeasurement
	for _, m := range s.measurements {
		if m.Instrument == instrument && m.Metric == metric {
			out = append(out, m)
		}
	}

	return out
}

// CountCounter returns how often metric was incremented with at least the given labels.
func (s *MetricsCollectorSpy) CountCounter(metric string, labels map[string]string) int {
	count := 0
	for _, m := range s.Measurements(InstrumentCounter, metric) {
		if hasLabels(m.Labels, labels) {
			count++
		}
	}

	return count
}

// LastValue returns the most recent gauge value recorded for metric.
func (s *MetricsCollectorSpy) LastValue(metric string) (float64, bool) {
	values := s.Measurements(InstrumentValue, metric)
	if len(values) == 0 {
		return 0, false
	}

	return values[len(values)-1].Value, true
}

func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.measurements = nil
}

func hasLabels(labels map[string]string, want map[string]string) bool {
	for k, v := range want {
		if got, ok := labels[k]; !ok || got != v {
			return false
		}
	}

	return true
}

var _ library.ContextualMetricsCollector = (*MetricsCollectorSpy)(nil)
