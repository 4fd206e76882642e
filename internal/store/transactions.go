package store

import (
	"sync"
	"time"

	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// TransactionStore keeps imported bank transactions in memory for the
// lifetime of one run. It answers only bulk queries; per-item lookups have
// no place in the batch use cases.
type TransactionStore struct {
	mu    sync.RWMutex
	byID  map[string]models.BankTransaction
	order []string
}

// NewTransactionStore creates an empty transaction store
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		byID: make(map[string]models.BankTransaction),
	}
}

// Save stores the given transactions, replacing any with the same id
func (s *TransactionStore) Save(transactions ...models.BankTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range transactions {
		if _, exists := s.byID[tx.ID]; !exists {
			s.order = append(s.order, tx.ID)
		}
		s.byID[tx.ID] = tx
	}
}

// FindByIDs returns the transactions for the given ids in id order.
// Unknown ids are silently omitted.
func (s *TransactionStore) FindByIDs(ids []string) []models.BankTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := make([]models.BankTransaction, 0, len(ids))
	for _, id := range ids {
		if tx, ok := s.byID[id]; ok {
			found = append(found, tx)
		}
	}
	return found
}

// FindByAccountAndDateRange returns the transactions of one account whose
// date falls inside the inclusive range, in insertion order
func (s *TransactionStore) FindByAccountAndDateRange(accountID string, from, to time.Time) []models.BankTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matching := make([]models.BankTransaction, 0)
	for _, id := range s.order {
		tx := s.byID[id]
		if tx.AccountID != accountID {
			continue
		}
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		matching = append(matching, tx)
	}
	return matching
}

// All returns every stored transaction in insertion order
func (s *TransactionStore) All() []models.BankTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.BankTransaction, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.byID[id])
	}
	return all
}
