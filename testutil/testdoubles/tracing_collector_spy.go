package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/library"
)

// SpySpanRecord is a snapshot of one span opened through a TracingCollectorSpy.
// SpanStatus is what the System set on the span itself, Status what it passed to FinishSpan.
type SpySpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Attributes      map[string]string
	SpanStatus      string
	Status          string
	EndAttributes   map[string]string
	Finished        bool
}

// spySpan is the library.SpanContext handed out by the spy. It records into its own SpySpanRecord.
type spySpan struct {
	owner  *TracingCollectorSpy
	record SpySpanRecord
}

func (s *spySpan) SetStatus(status string) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.record.SpanStatus = status
}

func (s *spySpan) AddAttribute(key, value string) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.record.Attributes[key] = value
}

// TracingCollectorSpy records the spans the System opens and finishes.
type TracingCollectorSpy struct {
	mu          sync.Mutex
	spans       []*spySpan
	recordCalls bool
}

// NewTracingCollectorSpy creates a spy. With recordCalls false it hands out no spans at all.
func NewTracingCollectorSpy(recordCalls bool) *TracingCollectorSpy {
	return &TracingCollectorSpy{recordCalls: recordCalls}
}

func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, library.SpanContext) {
	if !s.recordCalls {
		return ctx, nil
	}

	span := &spySpan{
		owner: s,
		record: SpySpanRecord{
			Name:            name,
			StartAttributes: maps.Clone(attrs),
			Attributes:      make(map[string]string),
		},
	}

	s.mu.Lock()
	s.spans = append(s.spans, span)
	s.mu.Unlock()

	return ctx, span
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx library.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*spySpan)
	if !ok || span.owner != s {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	span.record.Status = status
	span.record.EndAttributes = maps.Clone(attrs)
	span.record.Finished = true
}

// GetSpanRecords returns snapshots of all spans in start order.
func (s *TracingCollectorSpy) GetSpanRecords() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpySpanRecord, 0, len(s.spans))
	for _, span := range s.spans {
		records = append(records, span.snapshot())
	}

	return records
}

// FindSpanRecord returns the most recently started span with the given name.
func (s *TracingCollectorSpy) FindSpanRecord(name string) (SpySpanRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.spans) - 1; i >= 0; i-- {
		if s.spans[i].record.Name == name {
			return s.spans[i].snapshot(), true
		}
	}

	return SpySpanRecord{}, false
}

func (s *TracingCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = nil
}

func (s *spySpan) snapshot() SpySpanRecord {
	r := s.record
	r.StartAttributes = maps.Clone(r.StartAttributes)
	r.Attributes = maps.Clone(r.Attributes)
	r.EndAttributes = maps.Clone(r.EndAttributes)

	return r
}

var _ library.TracingCollector = (*TracingCollectorSpy)(nil)
