package library

import (
	"context"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/lending"
	"github.com/AntonStoeckl/library-circulation-go/library/returning"
)

// BorrowBook lends a copy of the book to the user and returns the id of the new loan transaction.
//
// It fails without changing anything when the user or the book is unknown (core.ErrNotFound),
// when no copy is available (core.ErrBookUnavailable) or when the user already holds
// MaxBooksAllowed loans (core.ErrLoanLimitExceeded). A failed borrow does not consume a
// transaction id.
func (s *System) BorrowBook(ctx context.Context, userID core.UserIDString, isbn core.ISBNString) (core.TransactionIDString, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ctx := s.startOperation(ctx, operationBorrowBook, map[string]string{
		attrUserID: userID,
		attrISBN:   isbn,
	})

	command := lending.BuildCommand(userID, isbn, s.clock.Now())
	result := lending.Decide(s.lendingState(userID, isbn), command)

	if err := result.HasError(); err != nil {
		s.record(ctx, result.Event)
		op.fail(err, nil)

		return "", err
	}

	user := s.users[userID]
	book := s.books[isbn]

	trx := core.BuildLoanTransaction(
		s.sequence.Next(),
		userID,
		book.Title,
		isbn,
		command.OccurredAt,
		user.MaxLoanDurationDays(),
	)

	book.Borrow()
	s.transactions[trx.TransactionID] = &trx
	s.transactionOrder = append(s.transactionOrder, trx.TransactionID)
	user.AddLoan(trx.TransactionID)

	if lent, ok := result.Event.(core.BookCopyLentToUser); ok {
		lent.TransactionID = trx.TransactionID
		s.record(ctx, lent)
	}
	op.succeed(map[string]string{
		attrTransactionID: trx.TransactionID,
		attrDueDate:       trx.DueDate.Format(time.RFC3339),
	})

	return trx.TransactionID, nil
}

// ReturnBook closes the loan transaction: it records the return date, puts the copy back on
// the shelf and removes the loan from the user's active loans if the user is still registered.
//
// It fails without changing anything when the transaction is unknown (core.ErrNotFound),
// already returned (core.ErrAlreadyReturned) or refers to a book that is not in the catalog
// (core.ErrNotFound). A late return succeeds and is logged as a warning.
func (s *System) ReturnBook(ctx context.Context, transactionID core.TransactionIDString) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ctx := s.startOperation(ctx, operationReturnBook, map[string]string{
		attrTransactionID: transactionID,
	})

	command := returning.BuildCommand(transactionID, s.clock.Now())
	result := returning.Decide(s.returningState(transactionID), command)

	if err := result.HasError(); err != nil {
		s.record(ctx, result.Event)
		op.fail(err, nil)

		return err
	}

	trx := s.transactions[transactionID]
	trx.MarkReturned(command.OccurredAt)
	s.books[trx.ISBN].GiveBack()

	if user, ok := s.users[trx.UserID]; ok {
		user.RemoveLoan(transactionID)
	}

	s.record(ctx, result.Event)

	attrs := map[string]string{attrUserID: trx.UserID, attrISBN: trx.ISBN}
	if returned, ok := result.Event.(core.BookCopyReturnedByUser); ok && returned.DaysLate > 0 {
		attrs[attrDaysLate] = strconv.Itoa(returned.DaysLate)
		s.logWarn(ctx, logMsgLateReturn,
			attrTransactionID, transactionID,
			attrUserID, trx.UserID,
			attrDaysLate, returned.DaysLate,
		)
	}

	op.succeed(attrs)

	return nil
}

// ListActiveLoans returns copies of all unreturned transactions in creation order.
// A non-empty userID restricts the result to that user's loans.
func (s *System) ListActiveLoans(userID core.UserIDString) []core.LoanTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeLoans(userID)
}

func (s *System) activeLoans(userID core.UserIDString) []core.LoanTransaction {
	loans := make([]core.LoanTransaction, 0)

	for _, id := range s.transactionOrder {
		trx := s.transactions[id]
		if trx.IsReturned() {
			continue
		}

		if userID != "" && trx.UserID != userID {
			continue
		}

		loans = append(loans, *trx)
	}

	return loans
}

func (s *System) lendingState(userID core.UserIDString, isbn core.ISBNString) lending.State {
	state := lending.State{}

	if user, ok := s.users[userID]; ok {
		state.UserIsRegistered = true
		state.ActiveLoanCount = user.ActiveLoanCount()
		state.MaxBooksAllowed = user.MaxBooksAllowed()
		state.MaxLoanDurationDays = user.MaxLoanDurationDays()
	}

	if book, ok := s.books[isbn]; ok {
		state.BookIsInCatalog = true
		state.BookTitle = book.Title
		state.AvailableCopies = book.AvailableCopies()
	}

	return state
}

func (s *System) returningState(transactionID core.TransactionIDString) returning.State {
	state := returning.State{}

	trx, ok := s.transactions[transactionID]
	if !ok {
		return state
	}

	state.TransactionExists = true
	state.Transaction = *trx
	_, state.BookIsInCatalog = s.books[trx.ISBN]

	return state
}
