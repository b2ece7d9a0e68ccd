package library

import (
	"context"
	"strconv"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Statistics is a snapshot of the library's counters.
// Copy counts are summed over all titles.
type Statistics struct {
	TotalUsers      int `json:"total_users"`
	Students        int `json:"students"`
	Teachers        int `json:"teachers"`
	TotalCopies     int `json:"total_copies"`
	AvailableCopies int `json:"available_copies"`
	CopiesOnLoan    int `json:"copies_on_loan"`
	ActiveLoans     int `json:"active_loans"`
	OverdueLoans    int `json:"overdue_loans"`
}

// Statistics aggregates the counters of the library and reports the loan and copy gauges to
// the metrics collector. The overdue count comes from the same scan as CheckOverdue, so it
// dispatches overdue notices as a side effect.
func (s *System) Statistics(ctx context.Context) Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ctx := s.startOperation(ctx, operationGetStatistics, nil)

	stats := Statistics{TotalUsers: len(s.users)}

	for _, user := range s.users {
		switch user.Kind() {
		case core.KindStudent:
			stats.Students++
		case core.KindTeacher:
			stats.Teachers++
		}
	}

	for _, book := range s.books {
		stats.TotalCopies += book.TotalCopies()
		stats.AvailableCopies += book.AvailableCopies()
	}

	stats.CopiesOnLoan = stats.TotalCopies - stats.AvailableCopies
	stats.ActiveLoans = len(s.activeLoans(""))
	stats.OverdueLoans = len(s.checkOverdue(ctx, s.clock.Now()))

	s.recordValue(ctx, metricActiveLoans, float64(stats.ActiveLoans), nil)
	s.recordValue(ctx, metricOverdueLoans, float64(stats.OverdueLoans), nil)
	s.recordValue(ctx, metricCopiesAvailable, float64(stats.AvailableCopies), nil)

	op.succeed(map[string]string{
		attrActiveLoans:  strconv.Itoa(stats.ActiveLoans),
		attrOverdueLoans: strconv.Itoa(stats.OverdueLoans),
	})

	return stats
}
