// Command librarydemo runs a short circulation scenario against an in-memory library:
// it registers users, catalogs books, lends and returns copies, lets time pass,
// sends reminders and overdue notices, and prints the resulting statistics.
//
// Usage:
//
//	librarydemo [-observability-enabled] [-log-level debug|info|warn|error] [-days-elapsed N] [-json]
//
// Logs, and with -observability-enabled also spans and metrics, go to stderr as JSON lines.
// The report goes to stdout.
package main
