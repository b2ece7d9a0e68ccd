package core

import (
	"time"
)

// BookCopyLentToUserEventType is the event type identifier.
const BookCopyLentToUserEventType = "BookCopyLentToUser"

// BookCopyLentToUser represents when a copy of a book is lent to a user.
type BookCopyLentToUser struct {
	EventType     EventTypeString
	TransactionID TransactionIDString
	UserID        UserIDString
	ISBN          ISBNString
	BookTitle     string
	DueDate       time.Time
	OccurredAt    OccurredAtTS
}

// BuildBookCopyLentToUser creates a new BookCopyLentToUser event.
func BuildBookCopyLentToUser(
	transactionID TransactionIDString,
	userID UserIDString,
	isbn ISBNString,
	bookTitle string,
	dueDate time.Time,
	occurredAt time.Time,
) BookCopyLentToUser {

	return BookCopyLentToUser{
		EventType:     BookCopyLentToUserEventType,
		TransactionID: transactionID,
		UserID:        userID,
		ISBN:          isbn,
		BookTitle:     bookTitle,
		DueDate:       ToOccurredAt(dueDate),
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyLentToUser) IsEventType() string {
	return BookCopyLentToUserEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyLentToUser) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyLentToUser) IsErrorEvent() bool {
	return false
}
