// Package reconciler matches bank transactions against budget transactions
// and reports which bank transactions are missing from the budget.
package reconciler

import (
	"time"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// Reconciler partitions bank transactions into matched and missing under a
// selectable date-tolerance strategy. Given well-formed inputs it is a
// total function: an empty result is a valid, non-error outcome.
type Reconciler struct {
	log logging.Logger
}

// New creates a new Reconciler
func New(logger logging.Logger) *Reconciler {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Reconciler{log: logger}
}

// Reconcile partitions the bank transactions for an account and inclusive
// date range into those already present in the budget and those missing
// from it. Both input lists must already be filtered to the account and
// range by the caller.
//
// The match predicate requires exactly equal amounts and dates within the
// strategy's tolerance; payee and description text play no part, because
// bank and budget systems label the same transaction differently. Each
// budget transaction can satisfy at most one bank transaction. When several
// budget transactions are eligible, the closest date wins, with input order
// breaking ties, so duplicate bank entries and duplicate budget entries
// resolve one-to-one instead of many-to-many.
//
// Matching is one-directional: budget transactions with no corresponding
// bank transaction are not reported.
func (r *Reconciler) Reconcile(accountID string, from, to time.Time, bank []models.BankTransaction, budget []models.YnabTransaction, strategy models.ReconciliationStrategy) models.ReconciliationResult {
	consumed := make([]bool, len(budget))
	matched := make([]models.BankTransaction, 0, len(bank))
	missing := make([]models.BankTransaction, 0)

	for _, tx := range bank {
		best := -1
		bestDiff := 0
		for j, candidate := range budget {
			if consumed[j] {
				continue
			}
			if !tx.Amount.Equal(candidate.Amount) {
				continue
			}
			if !strategy.DatesMatch(tx.Date, candidate.Date) {
				continue
			}
			diff := models.DaysBetween(tx.Date, candidate.Date)
			if best == -1 || diff < bestDiff {
				best = j
				bestDiff = diff
			}
		}

		if best >= 0 {
			consumed[best] = true
			matched = append(matched, tx)
		} else {
			missing = append(missing, tx)
		}
	}

	summary := models.ReconciliationSummary{
		Strategy:                strategy,
		AccountID:               accountID,
		From:                    from,
		To:                      to,
		TotalBankTransactions:   len(bank),
		TotalBudgetTransactions: len(budget),
		MatchedCount:            len(matched),
		MissingCount:            len(missing),
	}

	r.log.Info("Reconciliation finished",
		logging.Field{Key: logging.FieldAccountID, Value: accountID},
		logging.Field{Key: logging.FieldStrategy, Value: strategy},
		logging.Field{Key: "total_bank", Value: summary.TotalBankTransactions},
		logging.Field{Key: "total_budget", Value: summary.TotalBudgetTransactions},
		logging.Field{Key: "matched", Value: summary.MatchedCount},
		logging.Field{Key: "missing", Value: summary.MissingCount},
	)

	return models.ReconciliationResult{
		Matched: matched,
		Missing: missing,
		Summary: summary,
	}
}
