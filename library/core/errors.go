package core

import "errors"

var (
	// ErrDuplicateKey is returned when a user id or an ISBN is already registered.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when a user, book or transaction lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrBookUnavailable is returned when no copy of a book is left to lend.
	ErrBookUnavailable = errors.New("book is not available")

	// ErrLoanLimitExceeded is returned when a user already holds the maximum number of loans.
	ErrLoanLimitExceeded = errors.New("user has reached the maximum number of loans")

	// ErrAlreadyReturned is returned when a loan transaction was already closed.
	ErrAlreadyReturned = errors.New("book was already returned")

	// ErrUnknownUserKind is returned by the user factory for a discriminator that matches no variant.
	ErrUnknownUserKind = errors.New("unknown user kind")

	// ErrInvalidCopyCount is returned for a negative number of copies.
	ErrInvalidCopyCount = errors.New("number of copies must not be negative")
)
