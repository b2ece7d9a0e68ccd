package core

import (
	"time"
)

// BookCopyReturnedByUserEventType is the event type identifier.
const BookCopyReturnedByUserEventType = "BookCopyReturnedByUser"

// BookCopyReturnedByUser represents when a lent copy comes back. DaysLate is 0 for a timely return.
type BookCopyReturnedByUser struct {
	EventType     EventTypeString
	TransactionID TransactionIDString
	UserID        UserIDString
	ISBN          ISBNString
	DaysLate      int
	OccurredAt    OccurredAtTS
}

// BuildBookCopyReturnedByUser creates a new BookCopyReturnedByUser event.
func BuildBookCopyReturnedByUser(
	transactionID TransactionIDString,
	userID UserIDString,
	isbn ISBNString,
	daysLate int,
	occurredAt time.Time,
) BookCopyReturnedByUser {

	return BookCopyReturnedByUser{
		EventType:     BookCopyReturnedByUserEventType,
		TransactionID: transactionID,
		UserID:        userID,
		ISBN:          isbn,
		DaysLate:      daysLate,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyReturnedByUser) IsEventType() string {
	return BookCopyReturnedByUserEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReturnedByUser) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyReturnedByUser) IsErrorEvent() bool {
	return false
}
