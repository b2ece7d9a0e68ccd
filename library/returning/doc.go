// Package returning implements the Return Book use case.
//
// Like the lending package it separates the pure business rules (Decide) from the
// bookkeeping done by library.System. A late return is not a failure: it is reported
// through the DaysLate field of the BookCopyReturnedByUser event.
package returning
