package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent is an outcome of a library operation that is worth recording in the journal,
// successful or not.
type DomainEvent interface {
	// IsEventType returns the event type name, e.g. "BookCopyLentToUser".
	IsEventType() string

	// HasOccurredAt returns the library clock time of the operation.
	HasOccurredAt() time.Time

	// IsErrorEvent is true for rejected lending and returning attempts.
	IsErrorEvent() bool
}
