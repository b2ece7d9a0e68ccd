package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// UserIDString represents a user identifier.
type UserIDString = string

// ISBNString represents an ISBN identifier.
type ISBNString = string

// TransactionIDString represents a loan transaction identifier.
type TransactionIDString = string

// EventTypeString represents the type identifier of a domain event.
type EventTypeString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// day is the unit of every loan-period calculation.
const day = 24 * time.Hour

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
