// Package journal keeps an in-memory, append-only record of the domain events produced by
// the library.
//
// Events are stored as StorableEvents: scalars plus JSON payload and metadata, so the
// journal does not depend on the concrete event types. DomainEventFrom maps them back.
package journal
