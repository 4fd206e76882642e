// Package publisher pushes bank transactions that are missing from the
// budget into the budget service.
package publisher

import (
	"context"
	"fmt"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
	"github.com/emirfredy/ynab-syncher-sub000/internal/ynab"
)

// Publisher creates missing transactions in the budget service, one item at
// a time. Each attempt is independent; a failure on one item never aborts
// the remaining items.
type Publisher struct {
	client ynab.Client
	log    logging.Logger
}

// New creates a new Publisher
func New(client ynab.Client, logger logging.Logger) *Publisher {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Publisher{client: client, log: logger}
}

// PublishMissing attempts to create each missing bank transaction as a
// budget transaction. Client errors are caught and recorded as failed
// per-item results rather than propagated. The returned counts always sum
// to the input size, and results keep input order.
func (p *Publisher) PublishMissing(ctx context.Context, budgetID string, missing []models.BankTransaction) models.SyncResponse {
	response := models.SyncResponse{
		Results: make([]models.TransactionCreationResult, 0, len(missing)),
	}

	for _, tx := range missing {
		response.TotalProcessed++

		created, err := p.client.CreateTransaction(ctx, budgetID, toBudgetTransaction(tx))
		if err != nil {
			response.Failed++
			p.log.WithError(err).Warn("Failed to create budget transaction",
				logging.Field{Key: logging.FieldBudgetID, Value: budgetID},
				logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
			)
			response.Results = append(response.Results, models.TransactionCreationResult{
				Description:   tx.Description,
				Amount:        tx.Amount,
				Date:          tx.Date,
				WasSuccessful: false,
				ErrorMessage:  fmt.Sprintf("Failed to create transaction: %v", err),
			})
			continue
		}

		response.SuccessfullyCreated++
		response.Results = append(response.Results, models.TransactionCreationResult{
			TransactionID: created.ID,
			Description:   tx.Description,
			Amount:        tx.Amount,
			Date:          tx.Date,
			WasSuccessful: true,
		})
	}

	p.log.Info("Publish finished",
		logging.Field{Key: logging.FieldBudgetID, Value: budgetID},
		logging.Field{Key: "total", Value: response.TotalProcessed},
		logging.Field{Key: "created", Value: response.SuccessfullyCreated},
		logging.Field{Key: "failed", Value: response.Failed},
	)
	return response
}

// toBudgetTransaction shapes a bank transaction for creation in the budget.
// New transactions arrive uncleared and unapproved so they surface for
// review in the budget service.
func toBudgetTransaction(tx models.BankTransaction) models.YnabTransaction {
	return models.YnabTransaction{
		AccountID: tx.AccountID,
		Date:      tx.Date,
		Amount:    tx.Amount,
		PayeeName: tx.Merchant,
		Memo:      tx.Description,
		Category:  tx.Category,
		Cleared:   models.ClearedStatusUncleared,
	}
}
