package returning

import (
	"fmt"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	failureReasonTransactionNotFound = "loan transaction does not exist"
	failureReasonAlreadyReturned     = "loan transaction is closed"
	failureReasonBookNotInCatalog    = "book of the loan is not in the catalog"
)

// State holds the facts Decide needs, projected from the current registries.
// Transaction is only meaningful when TransactionExists is true.
type State struct {
	TransactionExists bool
	Transaction       core.LoanTransaction
	BookIsInCatalog   bool
}

// Decide implements the business logic to determine whether a loan transaction may be closed.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A loan transaction with TransactionID
//	WHEN: ReturnBook command is received
//	THEN: BookCopyReturnedByUser event is generated, with the started days late at return time
//	ERROR: "loan transaction does not exist" (core.ErrNotFound)
//	ERROR: "loan transaction is closed" (core.ErrAlreadyReturned)
//	ERROR: "book of the loan is not in the catalog" (core.ErrNotFound)
func Decide(s State, command Command) core.DecisionResult {
	if !s.TransactionExists {
		return fail(command, failureReasonTransactionNotFound, core.ErrNotFound)
	}

	if s.Transaction.IsReturned() {
		return fail(command, failureReasonAlreadyReturned, core.ErrAlreadyReturned)
	}

	if !s.BookIsInCatalog {
		return fail(command, failureReasonBookNotInCatalog, core.ErrNotFound)
	}

	return core.SuccessDecision(
		core.BuildBookCopyReturnedByUser(
			s.Transaction.TransactionID,
			s.Transaction.UserID,
			s.Transaction.ISBN,
			s.Transaction.DaysLate(command.OccurredAt),
			command.OccurredAt,
		),
	)
}

func fail(command Command, reason string, sentinel error) core.DecisionResult {
	event := core.BuildReturningBookFromUserFailed(command.TransactionID, reason, command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %s: %w", event.EventType, reason, sentinel))
}
