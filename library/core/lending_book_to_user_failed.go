package core

import (
	"time"
)

// LendingBookToUserFailedEventType is the event type identifier.
const LendingBookToUserFailedEventType = "LendingBookToUserFailed"

// LendingBookToUserFailed represents when lending a book copy to a user fails due to business rule violations.
type LendingBookToUserFailed struct {
	EventType   EventTypeString
	UserID      UserIDString
	ISBN        ISBNString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildLendingBookToUserFailed creates a new LendingBookToUserFailed event.
func BuildLendingBookToUserFailed(
	userID UserIDString,
	isbn ISBNString,
	failureInfo string,
	occurredAt time.Time,
) LendingBookToUserFailed {

	return LendingBookToUserFailed{
		EventType:   LendingBookToUserFailedEventType,
		UserID:      userID,
		ISBN:        isbn,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LendingBookToUserFailed) IsEventType() string {
	return LendingBookToUserFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LendingBookToUserFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e LendingBookToUserFailed) IsErrorEvent() bool {
	return true
}
