package library

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/notification"
)

// AddStudent registers a student. It fails with core.ErrDuplicateKey if the id is taken.
func (s *System) AddStudent(
	ctx context.Context,
	id core.UserIDString,
	name string,
	email string,
	phone string,
	studentNumber string,
	major string,
) error {

	return s.AddUser(ctx, core.KindStudent, id, name, email, phone, core.UserFields{
		StudentNumber: studentNumber,
		Major:         major,
	})
}

// AddTeacher registers a teacher. It fails with core.ErrDuplicateKey if the id is taken.
func (s *System) AddTeacher(
	ctx context.Context,
	id core.UserIDString,
	name string,
	email string,
	phone string,
	employeeNumber string,
	department string,
) error {

	return s.AddUser(ctx, core.KindTeacher, id, name, email, phone, core.UserFields{
		EmployeeNumber: employeeNumber,
		Department:     department,
	})
}

// AddUser registers a user of the given kind through the user factory and subscribes an
// observer for the user's notifications.
//
// It fails without changing anything with core.ErrDuplicateKey if the id is taken and
// with core.ErrUnknownUserKind if kind matches no variant.
func (s *System) AddUser(
	ctx context.Context,
	kind core.Kind,
	id core.UserIDString,
	name string,
	email string,
	phone string,
	fields core.UserFields,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	op, ctx := s.startOperation(ctx, operationAddUser, map[string]string{
		attrUserID:   id,
		attrUserKind: string(kind),
	})

	if _, exists := s.users[id]; exists {
		err := fmt.Errorf("user %q: %w", id, core.ErrDuplicateKey)
		op.fail(err, nil)

		return err
	}

	now := s.clock.Now()

	user, err := core.BuildUser(kind, id, name, email, phone, fields, now)
	if err != nil {
		op.fail(err, nil)
		return err
	}

	observer := notification.NewUserObserver(
		id,
		email,
		notification.WithObserverClock(s.clock.Now),
		notification.WithObserverLogger(observerLogger{s: s}),
	)
	if err := s.notifications.Subscribe(observer); err != nil {
		op.fail(err, nil)
		return err
	}

	s.users[id] = &user
	s.userOrder = append(s.userOrder, id)
	s.observers[id] = observer

	s.record(ctx, core.BuildUserRegistered(user, now))
	op.succeed(nil)

	return nil
}

// observerLogger forwards the delivery logs of a UserObserver to the System's logger,
// within the span of the scan that sent the notification.
type observerLogger struct {
	s *System
}

func (l observerLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.s.logInfo(ctx, msg, args...)
}
