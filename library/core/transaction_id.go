package core

import (
	"fmt"
	"sync/atomic"
)

// TransactionIDPrefix is the fixed tag in front of every transaction id.
const TransactionIDPrefix = "TRX"

// TransactionIDSequence generates strictly increasing transaction ids like TRX000001.
// The counter starts at zero, the first id has the number 1, and there is no reset.
// It is safe for concurrent use, so several Systems may share one sequence and still
// never hand out the same id twice.
type TransactionIDSequence struct {
	last atomic.Uint64
}

// NewTransactionIDSequence returns a sequence whose first id is TRX000001.
func NewTransactionIDSequence() *TransactionIDSequence {
	return &TransactionIDSequence{}
}

// Next consumes the next number and returns it formatted as a transaction id.
func (s *TransactionIDSequence) Next() TransactionIDString {
	return FormatTransactionID(s.last.Add(1))
}

// Last returns the most recently consumed number, 0 if none.
func (s *TransactionIDSequence) Last() uint64 {
	return s.last.Load()
}

// FormatTransactionID renders n zero-padded to 6 digits behind TransactionIDPrefix.
func FormatTransactionID(n uint64) TransactionIDString {
	return fmt.Sprintf("%s%06d", TransactionIDPrefix, n)
}
