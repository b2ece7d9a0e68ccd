package library

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/journal"
	"github.com/AntonStoeckl/library-circulation-go/library/notification"
)

// System is the library orchestrator. Create it with NewSystem.
//
// Registries keep insertion order, so listings and scans are deterministic.
// Getters and listings return copies; the only way to change state is through System.
type System struct {
	mu sync.Mutex

	users     map[core.UserIDString]*core.User
	userOrder []core.UserIDString

	books     map[core.ISBNString]*core.Book
	bookOrder []core.ISBNString

	transactions     map[core.TransactionIDString]*core.LoanTransaction
	transactionOrder []core.TransactionIDString

	observers     map[core.UserIDString]*notification.UserObserver
	notifications *notification.Manager
	journal       *journal.Journal
	sequence      *core.TransactionIDSequence

	clock           Clock
	reminderMinDays int
	reminderMaxDays int

	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewSystem creates an empty System configured by options.
func NewSystem(options ...Option) (*System, error) {
	s := &System{
		users:           make(map[core.UserIDString]*core.User),
		books:           make(map[core.ISBNString]*core.Book),
		transactions:    make(map[core.TransactionIDString]*core.LoanTransaction),
		observers:       make(map[core.UserIDString]*notification.UserObserver),
		notifications:   notification.NewManager(),
		journal:         journal.New(),
		sequence:        core.NewTransactionIDSequence(),
		clock:           ClockFunc(time.Now),
		reminderMinDays: defaultReminderMinDays,
		reminderMaxDays: defaultReminderMaxDays,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// GetUser returns a copy of the user with the given id.
func (s *System) GetUser(id core.UserIDString) (core.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return core.User{}, false
	}

	return user.Clone(), true
}

// ListUsers returns copies of all users in registration order.
func (s *System) ListUsers() []core.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]core.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id].Clone())
	}

	return users
}

// GetBook returns a copy of the book with the given ISBN.
func (s *System) GetBook(isbn core.ISBNString) (core.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return core.Book{}, false
	}

	return *book, true
}

// GetTransaction returns a copy of the loan transaction with the given id.
func (s *System) GetTransaction(id core.TransactionIDString) (core.LoanTransaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trx, ok := s.transactions[id]
	if !ok {
		return core.LoanTransaction{}, false
	}

	return *trx, true
}

// Observer returns the notification observer created for the user at registration.
func (s *System) Observer(userID core.UserIDString) (*notification.UserObserver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	observer, ok := s.observers[userID]

	return observer, ok
}

// NotificationHistory returns every overdue notice and reminder dispatched so far.
func (s *System) NotificationHistory() []string {
	return s.notifications.History()
}

// Journal returns the journal of domain events.
func (s *System) Journal() *journal.Journal {
	return s.journal
}

func (s *System) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fmt.Sprintf(
		"LibrarySystem(users=%d, books=%d, transactions=%d)",
		len(s.users), len(s.books), len(s.transactions),
	)
}

// record appends event to the journal. A failure to serialize is logged and does not
// fail the operation.
func (s *System) record(ctx context.Context, event core.DomainEvent) {
	correlationID, ok := CorrelationIDFrom(ctx)
	if !ok {
		correlationID = uuid.New()
	}

	metadata := journal.CorrelatedEventMetadata(correlationID)

	if _, err := s.journal.Append(event, metadata); err != nil {
		s.logError(ctx, logMsgJournalAppend, attrError, err.Error(), "event_type", event.IsEventType())
	}
}
