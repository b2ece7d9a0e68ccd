package library

// Operation names, used as span name suffix and as the "operation" label.
const (
	operationAddUser        = "add_user"
	operationAddBook        = "add_book"
	operationIncreaseCopies = "increase_copies"
	operationBorrowBook     = "borrow_book"
	operationReturnBook     = "return_book"
	operationCheckOverdue   = "check_overdue"
	operationSendReminders  = "send_reminders"
	operationGetStatistics  = "statistics"
	spanNamePrefix          = "library."
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

const (
	defaultReminderMinDays = 1
	defaultReminderMaxDays = 3
)

// Metric names.
const (
	metricOperationDuration = "library_operation_duration_seconds"
	metricOperationCalls    = "library_operation_calls_total"
	metricNotificationsSent = "library_notifications_sent_total"
	metricActiveLoans       = "library_active_loans"
	metricOverdueLoans      = "library_overdue_loans"
	metricCopiesAvailable   = "library_copies_available"
)

// Label, span attribute and log attribute keys.
const (
	attrOperation     = "operation"
	attrStatus        = "status"
	attrKind          = "kind"
	attrError         = "error"
	attrUserID        = "user_id"
	attrUserKind      = "user_kind"
	attrISBN          = "isbn"
	attrCopies        = "copies"
	attrTransactionID = "transaction_id"
	attrDueDate       = "due_date"
	attrDaysLate      = "days_late"
	attrCount         = "count"
	attrActiveLoans   = "active_loans"
	attrOverdueLoans  = "overdue_loans"
	attrDurationMS    = "duration_ms"
)

// Log messages.
const (
	logMsgOperationStarted   = "library operation started"
	logMsgOperationSucceeded = "library operation succeeded"
	logMsgOperationFailed    = "library operation failed"
	logMsgLateReturn         = "book returned late"
	logMsgJournalAppend      = "appending to journal failed"
)
