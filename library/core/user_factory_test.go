package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

func Test_BuildUser_Student(t *testing.T) {
	// arrange
	registeredAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	fields := core.UserFields{StudentNumber: "S-1", Major: "Physics", EmployeeNumber: "ignored"}

	// act
	user, err := core.BuildUser(core.KindStudent, "ETU001", "Alice", "alice@example.org", "0600", fields, registeredAt)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.KindStudent, user.Kind())
	assert.Equal(t, core.StudentProfile{StudentNumber: "S-1", Major: "Physics"}, user.Profile)
	assert.Equal(t, time.UTC, user.RegistrationDate.Location())
	assert.True(t, registeredAt.Equal(user.RegistrationDate))
	assert.Empty(t, user.ActiveLoanIDs())
}

func Test_BuildUser_Teacher(t *testing.T) {
	// arrange
	fields := core.UserFields{EmployeeNumber: "E-7", Department: "History"}

	// act
	user, err := core.BuildUser(core.KindTeacher, "ENS001", "Bob", "bob@example.org", "0600", fields, time.Now())

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.KindTeacher, user.Kind())
	assert.Equal(t, core.TeacherProfile{EmployeeNumber: "E-7", Department: "History"}, user.Profile)
}

func Test_BuildUser_UnknownKind(t *testing.T) {
	// act
	_, err := core.BuildUser("librarian", "LIB001", "Carol", "carol@example.org", "", core.UserFields{}, time.Now())

	// assert
	assert.ErrorIs(t, err, core.ErrUnknownUserKind)
	assert.ErrorContains(t, err, "librarian")
}

func Test_ParseKind(t *testing.T) {
	testCases := []struct {
		input       string
		expected    core.Kind
		expectedErr error
	}{
		{input: "student", expected: core.KindStudent},
		{input: "teacher", expected: core.KindTeacher},
		{input: "Student", expectedErr: core.ErrUnknownUserKind},
		{input: "", expectedErr: core.ErrUnknownUserKind},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			// act
			kind, err := core.ParseKind(tc.input)

			// assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}
}
