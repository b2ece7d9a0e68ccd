package lending

import (
	"fmt"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	failureReasonUserNotRegistered = "user is not registered"
	failureReasonBookNotInCatalog  = "book is not in the catalog"
	failureReasonBookUnavailable   = "no copy is left on the shelf"
	failureReasonLoanLimitReached  = "user already holds the maximum number of loans"
)

// State holds the facts Decide needs, projected from the current registries.
type State struct {
	UserIsRegistered    bool
	BookIsInCatalog     bool
	BookTitle           string
	AvailableCopies     int
	ActiveLoanCount     int
	MaxBooksAllowed     int
	MaxLoanDurationDays int
}

// Decide implements the business logic to determine whether a copy of a book may be lent to a user.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A user with UserID and a book with ISBN
//	WHEN: BorrowBook command is received
//	THEN: BookCopyLentToUser event is generated, due MaxLoanDurationDays calendar days from now
//	ERROR: "user is not registered" (core.ErrNotFound)
//	ERROR: "book is not in the catalog" (core.ErrNotFound)
//	ERROR: "no copy is left on the shelf" (core.ErrBookUnavailable)
//	ERROR: "user already holds the maximum number of loans" (core.ErrLoanLimitExceeded)
//
// The returned success event carries an empty TransactionID; the caller assigns it.
func Decide(s State, command Command) core.DecisionResult {
	if !s.UserIsRegistered {
		return fail(command, failureReasonUserNotRegistered, core.ErrNotFound)
	}

	if !s.BookIsInCatalog {
		return fail(command, failureReasonBookNotInCatalog, core.ErrNotFound)
	}

	if s.AvailableCopies <= 0 {
		return fail(command, failureReasonBookUnavailable, core.ErrBookUnavailable)
	}

	if s.ActiveLoanCount >= s.MaxBooksAllowed {
		return fail(command, failureReasonLoanLimitReached, core.ErrLoanLimitExceeded)
	}

	return core.SuccessDecision(
		core.BuildBookCopyLentToUser(
			"",
			command.UserID,
			command.ISBN,
			s.BookTitle,
			core.DueDateFor(command.OccurredAt, s.MaxLoanDurationDays),
			command.OccurredAt,
		),
	)
}

func fail(command Command, reason string, sentinel error) core.DecisionResult {
	event := core.BuildLendingBookToUserFailed(command.UserID, command.ISBN, reason, command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %s: %w", event.EventType, reason, sentinel))
}
