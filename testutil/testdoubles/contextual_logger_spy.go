package testdoubles

import (
	"context"
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/library"
)

// SpyLogRecord is one captured log call. Level is "debug", "info", "warn" or "error".
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// Arg returns the value logged for key, or nil.
func (r SpyLogRecord) Arg(key string) any {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if r.Args[i] == key {
			return r.Args[i+1]
		}
	}

	return nil
}

// ContextualLoggerSpy captures log calls. It serves as library.ContextualLogger and,
// through the level methods without context, as library.Logger.
type ContextualLoggerSpy struct {
	mu          sync.Mutex
	records     []SpyLogRecord
	recordCalls bool
}

func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{recordCalls: recordCalls}
}

func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) Debug(msg string, args ...any) { s.record(context.TODO(), "debug", msg, args) }
func (s *ContextualLoggerSpy) Info(msg string, args ...any)  { s.record(context.TODO(), "info", msg, args) }
func (s *ContextualLoggerSpy) Warn(msg string, args ...any)  { s.record(context.TODO(), "warn", msg, args) }
func (s *ContextualLoggerSpy) Error(msg string, args ...any) { s.record(context.TODO(), "error", msg, args) }

func (s *ContextualLoggerSpy) record(ctx context.Context, level string, msg string, args []any) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    slices.Clone(args),
		Context: ctx,
	})
}

// GetRecords returns the records of one level in call order.
func (s *ContextualLoggerSpy) GetRecords(level string) []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SpyLogRecord, 0)
	for _, r := range s.records {
		if r.Level == level {
			out = append(out, r)
		}
	}

	return out
}

// GetTotalRecordCount returns the number of records across all levels.
func (s *ContextualLoggerSpy) GetTotalRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// HasLog reports whether msg was logged at level.
func (s *ContextualLoggerSpy) HasLog(level string, msg string) bool {
	return slices.ContainsFunc(s.GetRecords(level), func(r SpyLogRecord) bool {
		return r.Message == msg
	})
}

func (s *ContextualLoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

var (
	_ library.ContextualLogger = (*ContextualLoggerSpy)(nil)
	_ library.Logger           = (*ContextualLoggerSpy)(nil)
)
