package returning

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to close a loan transaction.
type Command struct {
	TransactionID core.TransactionIDString
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(transactionID core.TransactionIDString, occurredAt time.Time) Command {
	return Command{
		TransactionID: transactionID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
