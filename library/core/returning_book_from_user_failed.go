package core

import (
	"time"
)

// ReturningBookFromUserFailedEventType is the event type identifier.
const ReturningBookFromUserFailedEventType = "ReturningBookFromUserFailed"

// ReturningBookFromUserFailed represents when returning a book copy fails due to business rule violations.
type ReturningBookFromUserFailed struct {
	EventType     EventTypeString
	TransactionID TransactionIDString
	FailureInfo   string
	OccurredAt    OccurredAtTS
}

// BuildReturningBookFromUserFailed creates a new ReturningBookFromUserFailed event.
func BuildReturningBookFromUserFailed(
	transactionID TransactionIDString,
	failureInfo string,
	occurredAt time.Time,
) ReturningBookFromUserFailed {

	return ReturningBookFromUserFailed{
		EventType:     ReturningBookFromUserFailedEventType,
		TransactionID: transactionID,
		FailureInfo:   failureInfo,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReturningBookFromUserFailed) IsEventType() string {
	return ReturningBookFromUserFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFromUserFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e ReturningBookFromUserFailed) IsErrorEvent() bool {
	return true
}
