package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the application,
// making logs easier to parse, filter, and analyze.
const (
	FieldAccountID     = "account_id"
	FieldBudgetID      = "budget_id"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldConfidence    = "confidence"
	FieldStrategy      = "strategy"
	FieldCount         = "count"
	FieldLine          = "line"
	FieldStatus        = "status"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
