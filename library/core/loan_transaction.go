package core

import (
	"fmt"
	"math"
	"time"
)

// LoanStatus describes where a loan transaction is in its lifecycle.
type LoanStatus string

const (
	// LoanStatusActive means the book is on loan and not yet due.
	LoanStatusActive LoanStatus = "active"

	// LoanStatusOverdue means the book is on loan and the due date has passed.
	LoanStatusOverdue LoanStatus = "overdue"

	// LoanStatusReturned means the book came back. This state is terminal.
	LoanStatusReturned LoanStatus = "returned"
)

// LoanTransaction records one loan: who borrowed which book, when it is due and when it came back.
// BookTitle is a snapshot taken when the loan was created, not a live reference.
//
// The only transition is Active -> Returned, done by MarkReturned.
// All time-dependent methods take "now" as a parameter.
type LoanTransaction struct {
	TransactionID TransactionIDString
	UserID        UserIDString
	BookTitle     string
	ISBN          ISBNString
	LoanDate      time.Time
	DueDate       time.Time

	returnDate time.Time
	returned   bool
}

// BuildLoanTransaction creates an active loan that is due loanDurationDays calendar days after loanDate.
func BuildLoanTransaction(
	transactionID TransactionIDString,
	userID UserIDString,
	bookTitle string,
	isbn ISBNString,
	loanDate time.Time,
	loanDurationDays int,
) LoanTransaction {

	loanDate = ToOccurredAt(loanDate)

	return LoanTransaction{
		TransactionID: transactionID,
		UserID:        userID,
		BookTitle:     bookTitle,
		ISBN:          isbn,
		LoanDate:      loanDate,
		DueDate:       DueDateFor(loanDate, loanDurationDays),
	}
}

// DueDateFor returns the date a loan made at loanDate is due.
func DueDateFor(loanDate time.Time, loanDurationDays int) time.Time {
	return ToOccurredAt(loanDate).AddDate(0, 0, loanDurationDays)
}

// IsReturned reports whether the book came back.
func (t *LoanTransaction) IsReturned() bool {
	return t.returned
}

// ReturnDate returns the date of the return and true, or the zero time and false while the loan is active.
func (t *LoanTransaction) ReturnDate() (time.Time, bool) {
	return t.returnDate, t.returned
}

// MarkReturned closes the loan at now. It returns false, without touching the return date,
// if the loan was already returned.
func (t *LoanTransaction) MarkReturned(now time.Time) bool {
	if t.returned {
		return false
	}

	t.returnDate = ToOccurredAt(now)
	t.returned = true

	return true
}

// IsLate reports whether the loan is still active and now is past the due date.
func (t *LoanTransaction) IsLate(now time.Time) bool {
	if t.returned {
		return false
	}

	return now.After(t.DueDate)
}

// DaysLate returns 0 if the loan is not late, otherwise the started days since the due date.
func (t *LoanTransaction) DaysLate(now time.Time) int {
	if !t.IsLate(now) {
		return 0
	}

	return int(math.Ceil(float64(now.Sub(t.DueDate)) / float64(day)))
}

// DaysRemaining returns the full days until the due date. It is negative for overdue loans and 0 once returned.
func (t *LoanTransaction) DaysRemaining(now time.Time) int {
	if t.returned {
		return 0
	}

	return int(math.Floor(float64(t.DueDate.Sub(now)) / float64(day)))
}

// LoanDurationDays returns the full days between the loan date and the return date, or now while active.
func (t *LoanTransaction) LoanDurationDays(now time.Time) int {
	end := now
	if t.returned {
		end = t.returnDate
	}

	return int(math.Floor(float64(end.Sub(t.LoanDate)) / float64(day)))
}

// ReturnedLate reports whether the book came back after its due date.
func (t *LoanTransaction) ReturnedLate() bool {
	return t.returned && t.returnDate.After(t.DueDate)
}

// DaysLateAtReturn returns how many started days after the due date the book came back, or 0.
func (t *LoanTransaction) DaysLateAtReturn() int {
	if !t.ReturnedLate() {
		return 0
	}

	return int(math.Ceil(float64(t.returnDate.Sub(t.DueDate)) / float64(day)))
}

// Status returns the lifecycle state of the loan at now.
func (t *LoanTransaction) Status(now time.Time) LoanStatus {
	switch {
	case t.returned:
		return LoanStatusReturned
	case t.IsLate(now):
		return LoanStatusOverdue
	default:
		return LoanStatusActive
	}
}

// Describe renders the transaction for display, evaluated at now.
func (t *LoanTransaction) Describe(now time.Time) string {
	return fmt.Sprintf(
		"LoanTransaction(id=%s, user=%s, book='%s', status=%s)",
		t.TransactionID, t.UserID, t.BookTitle, t.Status(now),
	)
}
