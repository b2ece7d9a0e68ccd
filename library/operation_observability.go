package library

import (
	"context"
	"maps"
	"math"
	"slices"
	"time"
)

// operation observes one library operation: it owns the tracing span, times the call and
// emits the log lines and metrics for its outcome.
type operation struct {
	s       *System
	ctx     context.Context
	name    string
	span    SpanContext
	started time.Time
}

// startOperation opens the span for the operation and logs its start at debug level.
func (s *System) startOperation(ctx context.Context, name string, attrs map[string]string) (*operation, context.Context) {
	spanAttrs := map[string]string{attrOperation: name}
	maps.Copy(spanAttrs, attrs)

	ctx, span := s.startTraceSpan(ctx, spanNamePrefix+name, spanAttrs)
	s.logDebug(ctx, logMsgOperationStarted, toLogArgs(spanAttrs)...)

	return &operation{
		s:       s,
		ctx:     ctx,
		name:    name,
		span:    span,
		started: time.Now(),
	}, ctx
}

// succeed finishes the operation with status success.
func (op *operation) succeed(attrs map[string]string) {
	duration := time.Since(op.started)

	op.s.finishTraceSpan(op.span, statusSuccess, attrs)
	op.s.recordOperationMetrics(op.ctx, op.name, statusSuccess, duration)

	logArgs := []any{attrOperation, op.name, attrDurationMS, toMilliseconds(duration)}
	logArgs = append(logArgs, toLogArgs(attrs)...)
	op.s.logInfo(op.ctx, logMsgOperationSucceeded, logArgs...)
}

// fail finishes the operation with status error and logs the error at warn level.
func (op *operation) fail(err error, attrs map[string]string) {
	duration := time.Since(op.started)

	spanAttrs := map[string]string{attrError: err.Error()}
	maps.Copy(spanAttrs, attrs)

	op.s.finishTraceSpan(op.span, statusError, spanAttrs)
	op.s.recordOperationMetrics(op.ctx, op.name, statusError, duration)

	logArgs := []any{attrOperation, op.name, attrDurationMS, toMilliseconds(duration)}
	logArgs = append(logArgs, toLogArgs(spanAttrs)...)
	op.s.logWarn(op.ctx, logMsgOperationFailed, logArgs...)
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (s *System) startTraceSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if s.tracingCollector != nil {
		return s.tracingCollector.StartSpan(ctx, name, attrs)
	}

	return ctx, nil
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (s *System) finishTraceSpan(span SpanContext, status string, attrs map[string]string) {
	if s.tracingCollector != nil && span != nil {
		span.SetStatus(status)
		s.tracingCollector.FinishSpan(span, status, attrs)
	}
}

func (s *System) recordOperationMetrics(ctx context.Context, operationName string, status string, duration time.Duration) {
	labels := map[string]string{
		attrOperation: operationName,
		attrStatus:    status,
	}

	s.recordDuration(ctx, metricOperationDuration, duration, labels)
	s.incrementCounter(ctx, metricOperationCalls, labels)
}

// recordDuration records a duration, with context if the collector supports it.
func (s *System) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metric, duration, labels)
}

// incrementCounter increments a counter, with context if the collector supports it.
func (s *System) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metric, labels)
}

// recordValue records a gauge value, with context if the collector supports it.
func (s *System) recordValue(ctx context.Context, metric string, value float64, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
		return
	}

	s.metricsCollector.RecordValue(metric, value, labels)
}

// === Logging ===
// The contextual logger wins when both loggers are configured.

func (s *System) logDebug(ctx context.Context, msg string, args ...any) {
	switch {
	case s.contextualLogger != nil:
		s.contextualLogger.DebugContext(ctx, msg, args...)
	case s.logger != nil:
		s.logger.Debug(msg, args...)
	}
}

func (s *System) logInfo(ctx context.Context, msg string, args ...any) {
	switch {
	case s.contextualLogger != nil:
		s.contextualLogger.InfoContext(ctx, msg, args...)
	case s.logger != nil:
		s.logger.Info(msg, args...)
	}
}

func (s *System) logWarn(ctx context.Context, msg string, args ...any) {
	switch {
	case s.contextualLogger != nil:
		s.contextualLogger.WarnContext(ctx, msg, args...)
	case s.logger != nil:
		s.logger.Warn(msg, args...)
	}
}

func (s *System) logError(ctx context.Context, msg string, args ...any) {
	switch {
	case s.contextualLogger != nil:
		s.contextualLogger.ErrorContext(ctx, msg, args...)
	case s.logger != nil:
		s.logger.Error(msg, args...)
	}
}

// toLogArgs flattens attrs into key/value pairs sorted by key.
func toLogArgs(attrs map[string]string) []any {
	args := make([]any, 0, 2*len(attrs))
	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		args = append(args, key, attrs[key])
	}

	return args
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
