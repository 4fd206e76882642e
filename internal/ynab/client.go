// Package ynab provides the budget-service client boundary: the interface
// the rest of the application consumes, and an HTTP implementation for the
// YNAB v1 API.
package ynab

import (
	"context"
	"time"

	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// Client is the budget-service contract. Retry policy, if any, belongs to
// the implementation; callers treat each call as a discrete,
// independently-failable unit of work.
type Client interface {
	// CreateTransaction creates a transaction in the given budget and
	// returns it with the service-assigned id. Failures are reported as
	// *ServiceError.
	CreateTransaction(ctx context.Context, budgetID string, tx models.YnabTransaction) (models.YnabTransaction, error)

	// GetTransactionsByAccountAndDateRange returns the budget transactions
	// of one account within an inclusive date range.
	GetTransactionsByAccountAndDateRange(ctx context.Context, accountID string, from, to time.Time) ([]models.YnabTransaction, error)
}
