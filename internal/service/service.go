// Package service wires the sync use cases together: importing raw rows,
// batch category inference, reconciliation against the budget, and pushing
// missing transactions.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/emirfredy/ynab-syncher-sub000/internal/categorizer"
	"github.com/emirfredy/ynab-syncher-sub000/internal/importer"
	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
	"github.com/emirfredy/ynab-syncher-sub000/internal/publisher"
	"github.com/emirfredy/ynab-syncher-sub000/internal/reconciler"
	"github.com/emirfredy/ynab-syncher-sub000/internal/store"
	"github.com/emirfredy/ynab-syncher-sub000/internal/ynab"
)

// CategoryFinder supplies the categories available in the budget
type CategoryFinder interface {
	FindAllAvailableCategories() ([]models.Category, error)
}

// MappingFinder supplies the learned mappings whose pattern overlaps a
// transaction's pattern
type MappingFinder interface {
	FindMappingsForPattern(pattern models.TransactionPattern) ([]models.CategoryMapping, error)
}

// SyncService orchestrates the sync workflow over its collaborators
type SyncService struct {
	importer     *importer.Importer
	engine       *categorizer.Engine
	reconciler   *reconciler.Reconciler
	publisher    *publisher.Publisher
	transactions *store.TransactionStore
	categories   CategoryFinder
	mappings     MappingFinder
	client       ynab.Client
	log          logging.Logger
}

// NewSyncService creates a SyncService over the given collaborators
func NewSyncService(transactions *store.TransactionStore, categories CategoryFinder, mappings MappingFinder, client ynab.Client, logger logging.Logger) *SyncService {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &SyncService{
		importer:     importer.New(logger),
		engine:       categorizer.NewEngine(logger),
		reconciler:   reconciler.New(logger),
		publisher:    publisher.New(client, logger),
		transactions: transactions,
		categories:   categories,
		mappings:     mappings,
		client:       client,
		log:          logger,
	}
}

// ImportTransactions runs the import pipeline for an account and stores the
// successfully imported transactions
func (s *SyncService) ImportTransactions(accountID string, rows []importer.RawTransactionRow) (*importer.ImportResult, error) {
	result, err := s.importer.Import(accountID, rows)
	if err != nil {
		return nil, err
	}
	s.transactions.Save(result.Transactions...)
	return result, nil
}

// CategorizeTransactions infers a category for each requested transaction
// id and updates the stored transactions with the inferred categories.
//
// Ids absent from the store are skipped silently: they appear in no result
// and count toward no total. Results preserve the input id order. The
// transaction store and the category store are each consulted exactly once
// per batch regardless of its size; only the mapping lookup is per
// transaction, keyed by its pattern. Already-categorized transactions skip
// the mapping lookup entirely.
func (s *SyncService) CategorizeTransactions(ids []string) ([]models.CategoryInferenceResult, error) {
	transactions := s.transactions.FindByIDs(ids)

	categories, err := s.categories.FindAllAvailableCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load available categories: %w", err)
	}

	stats := models.NewCategorizationStats()
	results := make([]models.CategoryInferenceResult, 0, len(transactions))

	for _, tx := range transactions {
		var mappings []models.CategoryMapping
		if !tx.Category.HasMatch() {
			mappings, err = s.mappings.FindMappingsForPattern(models.ExtractPattern(tx))
			if err != nil {
				return nil, fmt.Errorf("failed to load mappings for transaction %s: %w", tx.ID, err)
			}
		}

		result := s.engine.Infer(tx, categories, mappings)
		if result.IsSuccessful() {
			s.transactions.Save(tx.WithCategory(result.Category))
		}
		stats.Record(result)
		results = append(results, result)
	}

	stats.LogSummary(s.log, "batch")
	return results, nil
}

// Reconcile compares the stored bank transactions of an account against the
// budget transactions for the same account and inclusive date range
func (s *SyncService) Reconcile(ctx context.Context, accountID string, from, to time.Time, strategy models.ReconciliationStrategy) (models.ReconciliationResult, error) {
	bank := s.transactions.FindByAccountAndDateRange(accountID, from, to)

	budget, err := s.client.GetTransactionsByAccountAndDateRange(ctx, accountID, from, to)
	if err != nil {
		return models.ReconciliationResult{}, fmt.Errorf("failed to fetch budget transactions: %w", err)
	}

	return s.reconciler.Reconcile(accountID, from, to, bank, budget, strategy), nil
}

// SyncMissing reconciles an account and pushes every missing bank
// transaction into the budget
func (s *SyncService) SyncMissing(ctx context.Context, budgetID, accountID string, from, to time.Time, strategy models.ReconciliationStrategy) (models.ReconciliationResult, models.SyncResponse, error) {
	reconciliation, err := s.Reconcile(ctx, accountID, from, to, strategy)
	if err != nil {
		return models.ReconciliationResult{}, models.SyncResponse{}, err
	}

	response := s.publisher.PublishMissing(ctx, budgetID, reconciliation.Missing)
	return reconciliation, response, nil
}
