// Package config wires the OpenTelemetry SDK and the library's OTel adapters together
// for the demo binary and for tests that want real telemetry instead of spies.
//
// Logs, spans and metrics share one io.Writer. Spans are exported by stdouttrace as they end,
// metrics by stdoutmetric periodically, on WriteMetrics and on Shutdown.
package config
