package core

import (
	"fmt"
	"slices"
	"time"
)

// Kind discriminates the user variants.
type Kind string

const (
	// KindStudent identifies a Student.
	KindStudent Kind = "student"

	// KindTeacher identifies a Teacher.
	KindTeacher Kind = "teacher"
)

// LoanPolicy holds the borrowing limits of a user variant.
type LoanPolicy struct {
	MaxLoanDurationDays int
	MaxBooksAllowed     int
}

// loanPolicies is the dispatch table for the per-variant borrowing limits.
var loanPolicies = map[Kind]LoanPolicy{
	KindStudent: {MaxLoanDurationDays: 14, MaxBooksAllowed: 5},
	KindTeacher: {MaxLoanDurationDays: 28, MaxBooksAllowed: 10},
}

// PolicyFor returns the borrowing limits for the given kind.
func PolicyFor(kind Kind) (LoanPolicy, bool) {
	policy, ok := loanPolicies[kind]
	return policy, ok
}

// Profile is the variant-specific part of a User.
// It is sealed: StudentProfile and TeacherProfile are the only implementations.
type Profile interface {
	Kind() Kind
	isProfile()
}

// StudentProfile carries the fields only students have.
type StudentProfile struct {
	StudentNumber string
	Major         string
}

// Kind returns KindStudent.
func (StudentProfile) Kind() Kind { return KindStudent }

func (StudentProfile) isProfile() {}

// TeacherProfile carries the fields only teachers have.
type TeacherProfile struct {
	EmployeeNumber string
	Department     string
}

// Kind returns KindTeacher.
func (TeacherProfile) Kind() Kind { return KindTeacher }

func (TeacherProfile) isProfile() {}

// User is a registered library user. The variant is determined by its Profile.
type User struct {
	ID               UserIDString
	Name             string
	Email            string
	Phone            string
	RegistrationDate time.Time
	Profile          Profile

	activeLoanIDs []TransactionIDString
}

// Kind returns the variant of the user.
func (u *User) Kind() Kind {
	if u.Profile == nil {
		return ""
	}

	return u.Profile.Kind()
}

// MaxLoanDurationDays returns how many days this user may keep a book.
func (u *User) MaxLoanDurationDays() int {
	return loanPolicies[u.Kind()].MaxLoanDurationDays
}

// MaxBooksAllowed returns how many books this user may hold at the same time.
func (u *User) MaxBooksAllowed() int {
	return loanPolicies[u.Kind()].MaxBooksAllowed
}

// AddLoan appends a transaction id to the active loans unless it is already there.
func (u *User) AddLoan(transactionID TransactionIDString) {
	if !slices.Contains(u.activeLoanIDs, transactionID) {
		u.activeLoanIDs = append(u.activeLoanIDs, transactionID)
	}
}

// RemoveLoan removes a transaction id from the active loans. Unknown ids are ignored.
func (u *User) RemoveLoan(transactionID TransactionIDString) {
	if i := slices.Index(u.activeLoanIDs, transactionID); i >= 0 {
		u.activeLoanIDs = slices.Delete(u.activeLoanIDs, i, i+1)
	}
}

// ActiveLoanIDs returns a copy of the active loan ids in the order they were added.
func (u *User) ActiveLoanIDs() []TransactionIDString {
	return slices.Clone(u.activeLoanIDs)
}

// ActiveLoanCount returns the number of loans the user currently holds.
func (u *User) ActiveLoanCount() int {
	return len(u.activeLoanIDs)
}

// Clone returns a deep copy that shares no state with u.
func (u *User) Clone() User {
	c := *u
	c.activeLoanIDs = slices.Clone(u.activeLoanIDs)

	return c
}

func (u *User) String() string {
	switch p := u.Profile.(type) {
	case StudentProfile:
		return fmt.Sprintf("Student(id=%s, name=%s, number=%s, major=%s)", u.ID, u.Name, p.StudentNumber, p.Major)
	case TeacherProfile:
		return fmt.Sprintf("Teacher(id=%s, name=%s, employee=%s, department=%s)", u.ID, u.Name, p.EmployeeNumber, p.Department)
	default:
		return fmt.Sprintf("User(id=%s, name=%s, email=%s)", u.ID, u.Name, u.Email)
	}
}
