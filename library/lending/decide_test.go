package lending_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/lending"
)

func Test_Decide_Success_WhenAllPreconditionsMet(t *testing.T) {
	// arrange
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	command := lending.BuildCommand("ETU001", "ISBN-A", now)

	// act
	result := lending.Decide(givenLendableState(), command)

	// assert
	assert.True(t, result.IsSuccess())
	assert.NoError(t, result.HasError())

	lentEvent, ok := result.Event.(core.BookCopyLentToUser)
	assert.True(t, ok, "Expected BookCopyLentToUser event")
	assert.Equal(t, "ETU001", lentEvent.UserID)
	assert.Equal(t, "ISBN-A", lentEvent.ISBN)
	assert.Equal(t, "Clean Code", lentEvent.BookTitle)
	assert.Empty(t, lentEvent.TransactionID)
	assert.Equal(t, time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC), lentEvent.DueDate)
}

func Test_Decide_Success_WhenUserHasOneLoanLessThanLimit(t *testing.T) {
	// arrange
	s := givenLendableState()
	s.ActiveLoanCount = s.MaxBooksAllowed - 1

	// act
	result := lending.Decide(s, lending.BuildCommand("ETU001", "ISBN-A", time.Now()))

	// assert
	assert.True(t, result.IsSuccess())
}

func Test_Decide_BusinessErrors(t *testing.T) {
	testCases := []struct {
		name             string
		mutate           func(s *lending.State)
		expectedReason   string
		expectedSentinel error
	}{
		{
			name:             "user not registered",
			mutate:           func(s *lending.State) { s.UserIsRegistered = false },
			expectedReason:   "user is not registered",
			expectedSentinel: core.ErrNotFound,
		},
		{
			name:             "book not in catalog",
			mutate:           func(s *lending.State) { s.BookIsInCatalog = false },
			expectedReason:   "book is not in the catalog",
			expectedSentinel: core.ErrNotFound,
		},
		{
			name:             "no copy available",
			mutate:           func(s *lending.State) { s.AvailableCopies = 0 },
			expectedReason:   "no copy is left on the shelf",
			expectedSentinel: core.ErrBookUnavailable,
		},
		{
			name:             "user at loan limit",
			mutate:           func(s *lending.State) { s.ActiveLoanCount = s.MaxBooksAllowed },
			expectedReason:   "user already holds the maximum number of loans",
			expectedSentinel: core.ErrLoanLimitExceeded,
		},
		{
			name: "unregistered user is reported before an unavailable book",
			mutate: func(s *lending.State) {
				s.UserIsRegistered = false
				s.AvailableCopies = 0
			},
			expectedReason:   "user is not registered",
			expectedSentinel: core.ErrNotFound,
		},
		{
			name: "unavailable book is reported before the loan limit",
			mutate: func(s *lending.State) {
				s.AvailableCopies = 0
				s.ActiveLoanCount = s.MaxBooksAllowed
			},
			expectedReason:   "no copy is left on the shelf",
			expectedSentinel: core.ErrBookUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			s := givenLendableState()
			tc.mutate(&s)
			command := lending.BuildCommand("ETU001", "ISBN-A", time.Now())

			// act
			result := lending.Decide(s, command)

			// assert
			assertErrorDecision(t, result, tc.expectedReason, tc.expectedSentinel)
		})
	}
}

func Test_Command_CommandType(t *testing.T) {
	assert.Equal(t, "BorrowBook", lending.BuildCommand("ETU001", "ISBN-A", time.Now()).CommandType())
}

func givenLendableState() lending.State {
	return lending.State{
		UserIsRegistered:    true,
		BookIsInCatalog:     true,
		BookTitle:           "Clean Code",
		AvailableCopies:     1,
		ActiveLoanCount:     0,
		MaxBooksAllowed:     5,
		MaxLoanDurationDays: 14,
	}
}

func assertErrorDecision(t *testing.T, result core.DecisionResult, expectedReason string, expectedSentinel error) {
	t.Helper()
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), expectedSentinel)
	assert.ErrorContains(t, result.HasError(), expectedReason)

	failureEvent, ok := result.Event.(core.LendingBookToUserFailed)
	assert.True(t, ok, "Expected LendingBookToUserFailed event")
	assert.Equal(t, expectedReason, failureEvent.FailureInfo)
}
