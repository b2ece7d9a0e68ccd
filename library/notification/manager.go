package notification

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// ErrObserverNotPointer is returned by Subscribe for nil observers and for observers that
// are not pointers, since those cannot be told apart by identity.
var ErrObserverNotPointer = errors.New("observer must be a non-nil pointer")

// Kind tells overdue notices and reminders apart.
type Kind string

const (
	// KindOverdue is sent for a loan whose due date has passed.
	KindOverdue Kind = "overdue"

	// KindReminder is sent for a loan that is due soon.
	KindReminder Kind = "reminder"
)

// Manager dispatches notifications to the observers subscribed for a user.
// It is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	observers map[string][]Observer
	count     int
	history   []string
}

// NewManager creates a Manager without subscribers.
func NewManager() *Manager {
	return &Manager{
		observers: make(map[string][]Observer),
	}
}

// Subscribe registers an observer. Subscribing the same observer twice has no effect.
func (m *Manager) Subscribe(observer Observer) error {
	if !isPointer(observer) {
		return fmt.Errorf("%w: %T", ErrObserverNotPointer, observer)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	userID := observer.UserID()
	if slices.Contains(m.observers[userID], observer) {
		return nil
	}

	m.observers[userID] = append(m.observers[userID], observer)
	m.count++

	return nil
}

// Unsubscribe removes an observer. Unsubscribing an unknown observer is a no-op.
func (m *Manager) Unsubscribe(observer Observer) {
	if !isPointer(observer) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	userID := observer.UserID()
	registered := m.observers[userID]

	i := slices.Index(registered, observer)
	if i < 0 {
		return
	}

	registered = slices.Delete(registered, i, i+1)
	if len(registered) == 0 {
		delete(m.observers, userID)
	} else {
		m.observers[userID] = registered
	}

	m.count--
}

// NotifyOverdue records an overdue notice and delivers it to the user's observers.
// It returns the number of observers that received the message.
func (m *Manager) NotifyOverdue(ctx context.Context, userID string, bookTitle string, daysLate int) int {
	return m.dispatch(
		ctx,
		userID,
		fmt.Sprintf("OVERDUE: user %s is %d day(s) late returning '%s'", userID, daysLate, bookTitle),
		fmt.Sprintf("You are %d day(s) late returning '%s'. Please return it as soon as possible.", daysLate, bookTitle),
	)
}

// NotifyReminder records a reminder and delivers it to the user's observers.
// It returns the number of observers that received the message.
func (m *Manager) NotifyReminder(ctx context.Context, userID string, bookTitle string, daysRemaining int) int {
	return m.dispatch(
		ctx,
		userID,
		fmt.Sprintf("REMINDER: user %s must return '%s' within %d day(s)", userID, bookTitle, daysRemaining),
		fmt.Sprintf("Reminder: please return '%s' within %d day(s).", bookTitle, daysRemaining),
	)
}

// History returns a copy of every recorded notification, oldest first.
func (m *Manager) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.history)
}

// SubscriberCount returns the number of subscribed observers.
func (m *Manager) SubscriberCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.count
}

func (m *Manager) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fmt.Sprintf("NotificationManager(observers=%d, notifications=%d)", m.count, len(m.history))
}

func (m *Manager) dispatch(ctx context.Context, userID string, record string, message string) int {
	m.mu.Lock()
	m.history = append(m.history, record)
	recipients := slices.Clone(m.observers[userID])
	m.mu.Unlock()

	// Observers are called without holding the lock.
	for _, observer := range recipients {
		observer.Notify(ctx, message)
	}

	return len(recipients)
}

func isPointer(observer Observer) bool {
	v := reflect.ValueOf(observer)

	return v.Kind() == reflect.Pointer && !v.IsNil()
}
