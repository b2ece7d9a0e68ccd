package library_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library"
	"github.com/AntonStoeckl/library-circulation-go/testutil/testdoubles"
)

var startOfTerm = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

func givenSystem(t *testing.T, options ...library.Option) (*library.System, *testdoubles.FakeClock) {
	t.Helper()

	clock := testdoubles.NewFakeClock(startOfTerm)

	system, err := library.NewSystem(append([]library.Option{library.WithClock(clock)}, options...)...)
	require.NoError(t, err)

	return system, clock
}

func givenStudent(t *testing.T, system *library.System, id string) {
	t.Helper()

	err := system.AddStudent(context.Background(), id, "Student "+id, id+"@uni.example", "0600000000", "S-"+id, "Computer Science")
	require.NoError(t, err)
}

func givenTeacher(t *testing.T, system *library.System, id string) {
	t.Helper()

	err := system.AddTeacher(context.Background(), id, "Teacher "+id, id+"@uni.example", "0600000000", "E-"+id, "Mathematics")
	require.NoError(t, err)
}

func givenBook(t *testing.T, system *library.System, isbn string, title string, copies int) {
	t.Helper()

	err := system.AddBook(context.Background(), isbn, title, "Author of "+title, "Publisher", 2020, copies)
	require.NoError(t, err)
}

func givenLoan(t *testing.T, system *library.System, userID string, isbn string) string {
	t.Helper()

	id, err := system.BorrowBook(context.Background(), userID, isbn)
	require.NoError(t, err)

	return id
}
