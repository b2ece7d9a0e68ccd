package core

import (
	"fmt"
	"time"
)

// UserFields bundles the variant-specific fields accepted by BuildUser.
// Only the fields of the requested kind are used.
type UserFields struct {
	StudentNumber  string
	Major          string
	EmployeeNumber string
	Department     string
}

// ParseKind converts a discriminator string into a Kind.
func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	if _, ok := loanPolicies[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUserKind, s)
	}

	return kind, nil
}

// BuildUser is the user factory. It dispatches on kind and constructs the matching variant.
// An unknown kind is a programming error and yields ErrUnknownUserKind.
func BuildUser(
	kind Kind,
	id UserIDString,
	name string,
	email string,
	phone string,
	fields UserFields,
	registeredAt time.Time,
) (User, error) {

	var profile Profile

	switch kind {
	case KindStudent:
		profile = StudentProfile{StudentNumber: fields.StudentNumber, Major: fields.Major}
	case KindTeacher:
		profile = TeacherProfile{EmployeeNumber: fields.EmployeeNumber, Department: fields.Department}
	default:
		return User{}, fmt.Errorf("%w: %q", ErrUnknownUserKind, kind)
	}

	return User{
		ID:               id,
		Name:             name,
		Email:            email,
		Phone:            phone,
		RegistrationDate: ToOccurredAt(registeredAt),
		Profile:          profile,
	}, nil
}

// BuildStudent creates a Student through BuildUser. The kind is fixed, so it cannot fail.
func BuildStudent(
	id UserIDString,
	name string,
	email string,
	phone string,
	studentNumber string,
	major string,
	registeredAt time.Time,
) User {

	user, _ := BuildUser(KindStudent, id, name, email, phone, UserFields{StudentNumber: studentNumber, Major: major}, registeredAt)

	return user
}

// BuildTeacher creates a Teacher through BuildUser. The kind is fixed, so it cannot fail.
func BuildTeacher(
	id UserIDString,
	name string,
	email string,
	phone string,
	employeeNumber string,
	department string,
	registeredAt time.Time,
) User {

	user, _ := BuildUser(KindTeacher, id, name, email, phone, UserFields{EmployeeNumber: employeeNumber, Department: department}, registeredAt)

	return user
}
