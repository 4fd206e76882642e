package models

import (
	"time"
)

// TransactionCreationResult records the per-item outcome of pushing one
// missing bank transaction into the budget
type TransactionCreationResult struct {
	TransactionID string    `json:"transaction_id,omitempty"`
	Description   string    `json:"description"`
	Amount        Money     `json:"amount"`
	Date          time.Time `json:"date"`
	WasSuccessful bool      `json:"was_successful"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}

// SyncResponse aggregates the per-item creation results.
// TotalProcessed always equals SuccessfullyCreated + Failed.
type SyncResponse struct {
	TotalProcessed      int                         `json:"total_processed"`
	SuccessfullyCreated int                         `json:"successfully_created"`
	Failed              int                         `json:"failed"`
	Results             []TransactionCreationResult `json:"results"`
}
