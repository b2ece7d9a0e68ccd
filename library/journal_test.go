package library_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library"
	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/journal"
)

func Test_Journal_RecordsOutcomesInOrder(t *testing.T) {
	// arrange
	system, clock := givenSystem(t)
	givenStudent(t, system, "ETU001")
	givenBook(t, system, "ISBN-A", "Clean Code", 1)
	require.NoError(t, system.IncreaseCopies(context.Background(), "ISBN-A", 1))
	id := givenLoan(t, system, "ETU001", "ISBN-A")
	_, _ = system.BorrowBook(context.Background(), "ETU404", "ISBN-A")
	clock.AdvanceDays(15)
	require.NoError(t, system.ReturnBook(context.Background(), id))
	_ = system.ReturnBook(context.Background(), id)

	// act
	events, err := journal.DomainEventsFrom(system.Journal().Events())

	// assert
	require.NoError(t, err)

	eventTypes := make([]string, 0, len(events))
	for _, event := range events {
		eventTypes = append(eventTypes, event.IsEventType())
	}

	assert.Equal(t, []string{
		core.UserRegisteredEventType,
		core.BookAddedToCatalogEventType,
		core.BookCopiesAddedEventType,
		core.BookCopyLentToUserEventType,
		core.LendingBookToUserFailedEventType,
		core.BookCopyReturnedByUserEventType,
		core.ReturningBookFromUserFailedEventType,
	}, eventTypes)

	lent, ok := events[3].(core.BookCopyLentToUser)
	require.True(t, ok)
	assert.Equal(t, id, lent.TransactionID)
	assert.Equal(t, startOfTerm.AddDate(0, 0, 14), lent.DueDate)

	returned, ok := events[5].(core.BookCopyReturnedByUser)
	require.True(t, ok)
	assert.Equal(t, 1, returned.DaysLate)

	failed, ok := events[4].(core.LendingBookToUserFailed)
	require.True(t, ok)
	assert.Equal(t, "user is not registered", failed.FailureInfo)
}

func Test_Journal_UsesCorrelationIDFromContext(t *testing.T) {
	// arrange
	system, _ := givenSystem(t)
	correlationID := uuid.New()
	ctx := library.WithCorrelationID(context.Background(), correlationID)

	// act
	require.NoError(t, system.AddStudent(ctx, "ETU001", "Alice", "alice@uni.example", "", "S-1", "Physics"))

	// assert
	events := system.Journal().Query(core.UserRegisteredEventType)
	require.Len(t, events, 1)

	metadata, err := journal.EventMetadataFrom(events[0])
	require.NoError(t, err)
	assert.Equal(t, correlationID.String(), metadata.CorrelationID)
	assert.Equal(t, correlationID.String(), metadata.CausationID)
	assert.NotEqual(t, correlationID.String(), metadata.MessageID)
}

func Test_CorrelationIDFrom_Missing(t *testing.T) {
	// act
	_, ok := library.CorrelationIDFrom(context.Background())

	// assert
	assert.False(t, ok)
}
