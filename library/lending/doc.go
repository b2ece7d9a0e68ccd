// Package lending implements the Borrow Book use case.
//
// The business rules live in a pure Decide function. The caller (library.System) projects
// the relevant facts about the user and the book into a State, Decide checks the
// borrowing preconditions and returns either a BookCopyLentToUser event or a
// LendingBookToUserFailed event together with an error that wraps the matching
// sentinel from the core package.
//
// The transaction id is not part of the decision. It is only assigned after a successful
// decision, so a failed borrow never consumes a number from the id sequence.
package lending
