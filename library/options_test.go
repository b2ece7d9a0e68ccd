package library_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library"
	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/journal"
)

func Test_NewSystem_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name        string
		option      library.Option
		expectedErr error
	}{
		{name: "nil clock", option: library.WithClock(nil), expectedErr: library.ErrNilClock},
		{name: "nil sequence", option: library.WithTransactionIDSequence(nil), expectedErr: library.ErrNilTransactionIDSequence},
		{name: "nil journal", option: library.WithJournal(nil), expectedErr: library.ErrNilJournal},
		{name: "inverted reminder window", option: library.WithReminderWindow(3, 1), expectedErr: library.ErrInvalidReminderWindow},
		{name: "negative reminder window", option: library.WithReminderWindow(-1, 2), expectedErr: library.ErrInvalidReminderWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			system, err := library.NewSystem(tc.option)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, system)
		})
	}
}

func Test_NewSystem_DefaultsToWallClock(t *testing.T) {
	// arrange
	system, err := library.NewSystem()
	require.NoError(t, err)
	before := time.Now()

	// act
	require.NoError(t, system.AddStudent(context.Background(), "ETU001", "Alice", "alice@uni.example", "", "S-1", "Physics"))

	// assert
	user, _ := system.GetUser("ETU001")
	assert.WithinDuration(t, before, user.RegistrationDate, time.Minute)
}

func Test_WithTransactionIDSequence_SharedBetweenSystems(t *testing.T) {
	// arrange
	sequence := core.NewTransactionIDSequence()
	first, _ := givenSystem(t, library.WithTransactionIDSequence(sequence))
	second, _ := givenSystem(t, library.WithTransactionIDSequence(sequence))

	for _, system := range []*library.System{first, second} {
		givenStudent(t, system, "ETU001")
		givenBook(t, system, "ISBN-A", "Clean Code", 1)
	}

	// act
	firstID := givenLoan(t, first, "ETU001", "ISBN-A")
	secondID := givenLoan(t, second, "ETU001", "ISBN-A")

	// assert
	assert.Equal(t, "TRX000001", firstID)
	assert.Equal(t, "TRX000002", secondID)
}

func Test_WithTransactionIDSequence_ConcurrentBorrowsOnSharingSystemsYieldUniqueIDs(t *testing.T) {
	// arrange
	const borrowersPerSystem = 100

	sequence := core.NewTransactionIDSequence()
	first, _ := givenSystem(t, library.WithTransactionIDSequence(sequence))
	second, _ := givenSystem(t, library.WithTransactionIDSequence(sequence))
	systems := []*library.System{first, second}

	for _, system := range systems {
		givenBook(t, system, "ISBN-A", "Clean Code", borrowersPerSystem)
		for i := range borrowersPerSystem {
			givenStudent(t, system, fmt.Sprintf("ETU%03d", i))
		}
	}

	var (
		mu  sync.Mutex
		ids []string
		wg  sync.WaitGroup
	)

	// act
	for _, system := range systems {
		for i := range borrowersPerSystem {
			wg.Add(1)
			go func() {
				defer wg.Done()

				id, err := system.BorrowBook(context.Background(), fmt.Sprintf("ETU%03d", i), "ISBN-A")
				assert.NoError(t, err)

				mu.Lock()
				ids = append(ids, id)
				mu.Unlock()
			}()
		}
	}

	wg.Wait()

	// assert
	unique := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	assert.Len(t, unique, 2*borrowersPerSystem)
	assert.Equal(t, uint64(2*borrowersPerSystem), sequence.Last())
}

func Test_IndependentSystems_DoNotShareSequence(t *testing.T) {
	// arrange
	first, _ := givenSystem(t)
	second, _ := givenSystem(t)

	for _, system := range []*library.System{first, second} {
		givenStudent(t, system, "ETU001")
		givenBook(t, system, "ISBN-A", "Clean Code", 1)
	}

	// act
	firstID := givenLoan(t, first, "ETU001", "ISBN-A")
	secondID := givenLoan(t, second, "ETU001", "ISBN-A")

	// assert
	assert.Equal(t, "TRX000001", firstID)
	assert.Equal(t, "TRX000001", secondID)
}

func Test_WithJournal_UsesGivenJournal(t *testing.T) {
	// arrange
	j := journal.New()
	system, _ := givenSystem(t, library.WithJournal(j))

	// act
	givenStudent(t, system, "ETU001")

	// assert
	assert.Same(t, j, system.Journal())
	assert.Equal(t, 1, j.Len())
}
