package reconciler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func bankTx(id, day, amount string) models.BankTransaction {
	money, err := models.NewMoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return models.BankTransaction{ID: id, AccountID: "acc-1", Date: date(day), Amount: money}
}

func budgetTx(id, day, amount string) models.YnabTransaction {
	money, err := models.NewMoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return models.YnabTransaction{ID: id, AccountID: "acc-1", Date: date(day), Amount: money}
}

func reconcile(bank []models.BankTransaction, budget []models.YnabTransaction, strategy models.ReconciliationStrategy) models.ReconciliationResult {
	r := New(&logging.MockLogger{})
	return r.Reconcile("acc-1", date("2024-03-01"), date("2024-03-31"), bank, budget, strategy)
}

func TestReconcileStrictExactMatch(t *testing.T) {
	bank := []models.BankTransaction{
		bankTx("b1", "2024-03-10", "-42.50"),
		bankTx("b2", "2024-03-12", "-7.90"),
	}
	budget := []models.YnabTransaction{
		budgetTx("y1", "2024-03-10", "-42.50"),
	}

	result := reconcile(bank, budget, models.StrategyStrict)

	require.Len(t, result.Matched, 1)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "b1", result.Matched[0].ID)
	assert.Equal(t, "b2", result.Missing[0].ID)

	summary := result.Summary
	assert.Equal(t, models.StrategyStrict, summary.Strategy)
	assert.Equal(t, "acc-1", summary.AccountID)
	assert.Equal(t, 2, summary.TotalBankTransactions)
	assert.Equal(t, 1, summary.TotalBudgetTransactions)
	assert.Equal(t, 1, summary.MatchedCount)
	assert.Equal(t, 1, summary.MissingCount)
	assert.False(t, summary.IsFullyReconciled())
}

func TestReconcileStrictRejectsDateDrift(t *testing.T) {
	bank := []models.BankTransaction{bankTx("b1", "2024-03-10", "-42.50")}
	budget := []models.YnabTransaction{budgetTx("y1", "2024-03-11", "-42.50")}

	strict := reconcile(bank, budget, models.StrategyStrict)
	assert.Len(t, strict.Missing, 1)

	ranged := reconcile(bank, budget, models.StrategyRange)
	assert.Len(t, ranged.Matched, 1)
}

func TestReconcileRangeToleranceBoundary(t *testing.T) {
	bank := []models.BankTransaction{bankTx("b1", "2024-03-10", "-42.50")}

	within := []models.YnabTransaction{budgetTx("y1", "2024-03-13", "-42.50")}
	assert.Len(t, reconcile(bank, within, models.StrategyRange).Matched, 1)

	beyond := []models.YnabTransaction{budgetTx("y1", "2024-03-14", "-42.50")}
	assert.Len(t, reconcile(bank, beyond, models.StrategyRange).Missing, 1)
}

func TestReconcileAmountMustBeExact(t *testing.T) {
	bank := []models.BankTransaction{bankTx("b1", "2024-03-10", "-42.50")}
	budget := []models.YnabTransaction{budgetTx("y1", "2024-03-10", "-42.51")}

	result := reconcile(bank, budget, models.StrategyRange)
	assert.Len(t, result.Missing, 1)
}

func TestReconcileBudgetTransactionConsumedOnce(t *testing.T) {
	// Two identical bank entries, one budget entry: only one may match.
	bank := []models.BankTransaction{
		bankTx("b1", "2024-03-10", "-42.50"),
		bankTx("b2", "2024-03-10", "-42.50"),
	}
	budget := []models.YnabTransaction{budgetTx("y1", "2024-03-10", "-42.50")}

	result := reconcile(bank, budget, models.StrategyStrict)

	assert.Len(t, result.Matched, 1)
	assert.Len(t, result.Missing, 1)
	assert.Equal(t, "b1", result.Matched[0].ID)
}

func TestReconcileDuplicatesResolveOneToOne(t *testing.T) {
	bank := []models.BankTransaction{
		bankTx("b1", "2024-03-10", "-42.50"),
		bankTx("b2", "2024-03-10", "-42.50"),
	}
	budget := []models.YnabTransaction{
		budgetTx("y1", "2024-03-10", "-42.50"),
		budgetTx("y2", "2024-03-10", "-42.50"),
	}

	result := reconcile(bank, budget, models.StrategyStrict)

	assert.Len(t, result.Matched, 2)
	assert.Empty(t, result.Missing)
	assert.True(t, result.Summary.IsFullyReconciled())
}

func TestReconcileClosestDateWins(t *testing.T) {
	// The far candidate is listed first. If the first eligible candidate won
	// instead of the closest, b1 would consume it and leave b2 unmatched,
	// since b2 is only within tolerance of the far candidate.
	bank := []models.BankTransaction{
		bankTx("b1", "2024-03-10", "-42.50"),
		bankTx("b2", "2024-03-16", "-42.50"),
	}
	budget := []models.YnabTransaction{
		budgetTx("far", "2024-03-13", "-42.50"),
		budgetTx("near", "2024-03-11", "-42.50"),
	}

	result := reconcile(bank, budget, models.StrategyRange)

	assert.Len(t, result.Matched, 2)
	assert.Empty(t, result.Missing)
}

func TestReconcileOneDirectional(t *testing.T) {
	// Budget-only transactions are not reported anywhere.
	budget := []models.YnabTransaction{budgetTx("y1", "2024-03-10", "-42.50")}

	result := reconcile(nil, budget, models.StrategyStrict)

	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Equal(t, 1, result.Summary.TotalBudgetTransactions)
	assert.True(t, result.Summary.IsFullyReconciled())
}

func TestReconcileEmptyInputs(t *testing.T) {
	result := reconcile(nil, nil, models.StrategyStrict)

	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.True(t, result.Summary.IsFullyReconciled())
}

func TestReconcilePreservesBankOrder(t *testing.T) {
	bank := []models.BankTransaction{
		bankTx("b1", "2024-03-10", "-1.00"),
		bankTx("b2", "2024-03-11", "-2.00"),
		bankTx("b3", "2024-03-12", "-3.00"),
	}
	budget := []models.YnabTransaction{budgetTx("y1", "2024-03-11", "-2.00")}

	result := reconcile(bank, budget, models.StrategyStrict)

	require.Len(t, result.Missing, 2)
	assert.Equal(t, "b1", result.Missing[0].ID)
	assert.Equal(t, "b3", result.Missing[1].ID)
}
