package notification

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

const deliveredAtLayout = "2006-01-02 15:04:05"

// Observer receives the messages addressed to one user.
// The Manager tracks observers by identity, so implementations must be pointers.
// ctx is the context of the library operation that triggered the notification.
type Observer interface {
	UserID() string
	Notify(ctx context.Context, message string)
}

// Logger is the subset of a contextual structured logger that UserObserver uses.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
}

// ObserverOption configures a UserObserver.
type ObserverOption func(*UserObserver)

// WithObserverClock sets the time source used to stamp delivered notifications.
func WithObserverClock(now func() time.Time) ObserverOption {
	return func(o *UserObserver) {
		o.now = now
	}
}

// WithObserverLogger logs every delivered notification.
func WithObserverLogger(logger Logger) ObserverOption {
	return func(o *UserObserver) {
		o.logger = logger
	}
}

// UserObserver records the notifications "emailed" to one user.
// It is safe for concurrent use.
type UserObserver struct {
	userID string
	email  string
	now    func() time.Time
	logger Logger

	mu            sync.Mutex
	notifications []string
}

// NewUserObserver creates an observer for the user with the given id and email address.
func NewUserObserver(userID string, email string, options ...ObserverOption) *UserObserver {
	o := &UserObserver{
		userID: userID,
		email:  email,
		now:    time.Now,
	}

	for _, option := range options {
		option(o)
	}

	return o
}

// UserID returns the id of the user this observer delivers to.
func (o *UserObserver) UserID() string {
	return o.userID
}

// Email returns the delivery address.
func (o *UserObserver) Email() string {
	return o.email
}

// Notify stamps the message with the current time and records it as sent.
func (o *UserObserver) Notify(ctx context.Context, message string) {
	delivered := fmt.Sprintf(
		"[%s] Email sent to %s: %s",
		o.now().UTC().Format(deliveredAtLayout), o.email, message,
	)

	o.mu.Lock()
	o.notifications = append(o.notifications, delivered)
	o.mu.Unlock()

	if o.logger != nil {
		o.logger.InfoContext(ctx, "notification delivered", "user_id", o.userID, "email", o.email, "message", message)
	}
}

// Notifications returns a copy of everything delivered so far, oldest first.
func (o *UserObserver) Notifications() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.notifications)
}

func (o *UserObserver) String() string {
	return fmt.Sprintf("UserObserver(id=%s, email=%s)", o.userID, o.email)
}
