package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

func storedTx(id, accountID, day string) models.BankTransaction {
	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return models.BankTransaction{ID: id, AccountID: accountID, Date: date}
}

func TestTransactionStoreSaveAndAll(t *testing.T) {
	store := NewTransactionStore()
	store.Save(
		storedTx("tx-1", "acc-1", "2024-03-10"),
		storedTx("tx-2", "acc-1", "2024-03-11"),
	)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "tx-1", all[0].ID)
	assert.Equal(t, "tx-2", all[1].ID)
}

func TestTransactionStoreSaveReplaces(t *testing.T) {
	store := NewTransactionStore()
	store.Save(storedTx("tx-1", "acc-1", "2024-03-10"))

	updated := storedTx("tx-1", "acc-1", "2024-03-10").
		WithCategory(models.NewBudgetCategory("cat-1", "Groceries"))
	store.Save(updated)

	all := store.All()
	require.Len(t, all, 1)
	assert.True(t, all[0].Category.HasMatch())
}

func TestTransactionStoreFindByIDs(t *testing.T) {
	store := NewTransactionStore()
	store.Save(
		storedTx("tx-1", "acc-1", "2024-03-10"),
		storedTx("tx-2", "acc-1", "2024-03-11"),
		storedTx("tx-3", "acc-1", "2024-03-12"),
	)

	found := store.FindByIDs([]string{"tx-3", "missing", "tx-1"})

	require.Len(t, found, 2, "unknown ids are skipped silently")
	assert.Equal(t, "tx-3", found[0].ID, "results keep requested id order")
	assert.Equal(t, "tx-1", found[1].ID)
}

func TestTransactionStoreFindByAccountAndDateRange(t *testing.T) {
	store := NewTransactionStore()
	store.Save(
		storedTx("tx-1", "acc-1", "2024-03-01"),
		storedTx("tx-2", "acc-1", "2024-03-15"),
		storedTx("tx-3", "acc-1", "2024-03-31"),
		storedTx("tx-4", "acc-1", "2024-04-01"),
		storedTx("tx-5", "acc-2", "2024-03-15"),
	)

	from, _ := time.Parse("2006-01-02", "2024-03-01")
	to, _ := time.Parse("2006-01-02", "2024-03-31")

	found := store.FindByAccountAndDateRange("acc-1", from, to)

	require.Len(t, found, 3, "range is inclusive on both ends")
	assert.Equal(t, "tx-1", found[0].ID)
	assert.Equal(t, "tx-2", found[1].ID)
	assert.Equal(t, "tx-3", found[2].ID)
}

func TestTransactionStoreEmpty(t *testing.T) {
	store := NewTransactionStore()
	assert.Empty(t, store.All())
	assert.Empty(t, store.FindByIDs([]string{"tx-1"}))
}
