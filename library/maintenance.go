package library

import (
	"context"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/notification"
)

// CheckOverdue sends an overdue notice for every unreturned loan past its due date and
// returns copies of those loans in creation order.
//
// Notices are not deduplicated: every call notifies again, including the implicit call
// made by Statistics.
func (s *System) CheckOverdue(ctx context.Context) []core.LoanTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ctx := s.startOperation(ctx, operationCheckOverdue, nil)
	overdue := s.checkOverdue(ctx, s.clock.Now())
	op.succeed(map[string]string{attrCount: strconv.Itoa(len(overdue))})

	return overdue
}

// SendReminders sends a reminder for every unreturned loan with between reminderMinDays
// and reminderMaxDays full days left (1 to 3 by default) and returns copies of those loans.
// Reminders already sent are not tracked, so a second call reminds again.
func (s *System) SendReminders(ctx context.Context) []core.LoanTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ctx := s.startOperation(ctx, operationSendReminders, nil)

	now := s.clock.Now()
	reminded := make([]core.LoanTransaction, 0)

	for _, id := range s.transactionOrder {
		trx := s.transactions[id]
		if trx.IsReturned() {
			continue
		}

		daysRemaining := trx.DaysRemaining(now)
		if daysRemaining < s.reminderMinDays || daysRemaining > s.reminderMaxDays {
			continue
		}

		s.notifications.NotifyReminder(ctx, trx.UserID, trx.BookTitle, daysRemaining)
		s.incrementCounter(ctx, metricNotificationsSent, map[string]string{attrKind: string(notification.KindReminder)})
		reminded = append(reminded, *trx)
	}

	op.succeed(map[string]string{attrCount: strconv.Itoa(len(reminded))})

	return reminded
}

func (s *System) checkOverdue(ctx context.Context, now time.Time) []core.LoanTransaction {
	overdue := make([]core.LoanTransaction, 0)

	for _, id := range s.transactionOrder {
		trx := s.transactions[id]
		if trx.IsReturned() || !trx.IsLate(now) {
			continue
		}

		s.notifications.NotifyOverdue(ctx, trx.UserID, trx.BookTitle, trx.DaysLate(now))
		s.incrementCounter(ctx, metricNotificationsSent, map[string]string{attrKind: string(notification.KindOverdue)})
		overdue = append(overdue, *trx)
	}

	return overdue
}
