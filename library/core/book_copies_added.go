package core

import (
	"time"
)

// BookCopiesAddedEventType is the event type identifier.
const BookCopiesAddedEventType = "BookCopiesAdded"

// BookCopiesAdded represents when more copies of a title already in the catalog are acquired.
type BookCopiesAdded struct {
	EventType   EventTypeString
	ISBN        ISBNString
	Copies      int
	TotalCopies int
	OccurredAt  OccurredAtTS
}

// BuildBookCopiesAdded creates a new BookCopiesAdded event.
func BuildBookCopiesAdded(isbn ISBNString, copies int, totalCopies int, occurredAt time.Time) BookCopiesAdded {
	return BookCopiesAdded{
		EventType:   BookCopiesAddedEventType,
		ISBN:        isbn,
		Copies:      copies,
		TotalCopies: totalCopies,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopiesAdded) IsEventType() string {
	return BookCopiesAddedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopiesAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopiesAdded) IsErrorEvent() bool {
	return false
}
