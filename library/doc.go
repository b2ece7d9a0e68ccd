// Package library is the circulation desk of a small library: it registers students and
// teachers, keeps the book catalog with its copy counts, lends and takes back books and
// reminds users of loans that are due soon or overdue.
//
// System is the orchestrator. It owns the registries of users, books and loan transactions
// and is the only component that mutates them. The borrowing and returning rules are
// pure Decide functions in the lending and returning packages; System projects its
// registries into their State, applies the decision and keeps Book availability, the
// user's active loans and the transaction registry consistent with each other.
//
// A System is constructed explicitly with NewSystem and passed to whoever needs it. Each
// System owns its transaction-id sequence, so independent instances (for example in tests)
// never share state. All methods are safe for concurrent use; operations are serialized.
//
// Logging, metrics and tracing are optional and plugged in through the dependency-free
// interfaces in this package. The oteladapters package implements them on OpenTelemetry.
package library
