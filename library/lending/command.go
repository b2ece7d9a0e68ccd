package lending

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "BorrowBook"
)

// Command represents the intent of a user to borrow a copy of a book.
type Command struct {
	UserID     core.UserIDString
	ISBN       core.ISBNString
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID core.UserIDString, isbn core.ISBNString, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		ISBN:       isbn,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
