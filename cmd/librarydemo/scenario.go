package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library"
	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// scenarioClock is a library.Clock that only moves when the scenario advances it.
type scenarioClock struct {
	mu  sync.Mutex
	now time.Time
}

func newScenarioClock(start time.Time) *scenarioClock {
	return &scenarioClock{now: start}
}

func (c *scenarioClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *scenarioClock) advanceDays(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.AddDate(0, 0, days)
}

var _ library.Clock = (*scenarioClock)(nil)

const (
	isbnAlgorithms = "978-0262033848"
	isbnCleanCode  = "978-0132350884"
	isbnGoProgLang = "978-0134190440"
)

// runScenario drives the system through a typical term: registrations, catalog entries,
// loans including rejected ones, elapsed days, reminders, overdue notices and one return.
func runScenario(
	ctx context.Context,
	system *library.System,
	clock *scenarioClock,
	daysElapsed int,
	out io.Writer,
) error {

	steps := []func() error{
		func() error {
			return system.AddStudent(ctx, "S001", "Alice Martin", "alice@uni.example", "0601020304", "20250001", "Computer Science")
		},
		func() error {
			return system.AddStudent(ctx, "S002", "Bruno Costa", "bruno@uni.example", "0605060708", "20250002", "Mathematics")
		},
		func() error {
			return system.AddTeacher(ctx, "T001", "Claire Dubois", "claire@uni.example", "0609101112", "EMP-042", "Computer Science")
		},
		func() error {
			return system.AddBook(ctx, isbnAlgorithms, "Introduction to Algorithms", "Cormen et al.", "MIT Press", 2009, 2)
		},
		func() error {
			return system.AddBook(ctx, isbnCleanCode, "Clean Code", "Robert C. Martin", "Prentice Hall", 2008, 1)
		},
		func() error {
			return system.AddBook(ctx, isbnGoProgLang, "The Go Programming Language", "Donovan, Kernighan", "Addison-Wesley", 2015, 1)
		},
		func() error {
			return system.IncreaseCopies(ctx, isbnGoProgLang, 1)
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Registered %d users, catalog holds %d titles\n", len(system.ListUsers()), len(system.ListBooks(false)))

	aliceLoan, err := borrow(ctx, system, out, "S001", isbnCleanCode)
	if err != nil {
		return err
	}

	if _, err := borrow(ctx, system, out, "T001", isbnAlgorithms); err != nil {
		return err
	}

	if _, err := borrow(ctx, system, out, "S002", isbnGoProgLang); err != nil {
		return err
	}

	// Clean Code has a single copy, so Bruno is turned away.
	if _, err := borrow(ctx, system, out, "S002", isbnCleanCode); !errors.Is(err, core.ErrBookUnavailable) {
		return fmt.Errorf("expected the second Clean Code loan to be rejected, got %v", err)
	}

	clock.advanceDays(daysElapsed)
	fmt.Fprintf(out, "%d days later\n", daysElapsed)

	reminded := system.SendReminders(ctx)
	fmt.Fprintf(out, "Reminders sent for %d loan(s)\n", len(reminded))

	overdue := system.CheckOverdue(ctx)
	fmt.Fprintf(out, "Overdue notices sent for %d loan(s)\n", len(overdue))

	if err := system.ReturnBook(ctx, aliceLoan); err != nil {
		return err
	}

	if trx, ok := system.GetTransaction(aliceLoan); ok {
		fmt.Fprintf(out, "Returned: %s, days late: %d\n", trx.Describe(clock.Now()), trx.DaysLateAtReturn())
	}

	if err := system.ReturnBook(ctx, aliceLoan); !errors.Is(err, core.ErrAlreadyReturned) {
		return fmt.Errorf("expected a repeated return to be rejected, got %v", err)
	}

	return nil
}

func borrow(
	ctx context.Context,
	system *library.System,
	out io.Writer,
	userID core.UserIDString,
	isbn core.ISBNString,
) (core.TransactionIDString, error) {

	trxID, err := system.BorrowBook(ctx, userID, isbn)
	if err != nil {
		fmt.Fprintf(out, "Loan of %s to %s rejected: %v\n", isbn, userID, err)
		return "", err
	}

	trx, _ := system.GetTransaction(trxID)
	fmt.Fprintf(out, "Lent '%s' to %s as %s, due %s\n", trx.BookTitle, userID, trxID, trx.DueDate.Format(time.DateOnly))

	return trxID, nil
}
