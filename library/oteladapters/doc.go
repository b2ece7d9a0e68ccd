// Package oteladapters backs the library observability interfaces with OpenTelemetry.
//
// Logging goes through the otelslog bridge (or the OTel log API directly), durations become
// histograms, counters become Int64 counters, and point-in-time values such as the number of
// active loans become gauges. Spans map the "success" and "error" statuses to OTel status codes.
package oteladapters
