// Package container provides dependency injection for the application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"github.com/emirfredy/ynab-syncher-sub000/internal/config"
	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/service"
	"github.com/emirfredy/ynab-syncher-sub000/internal/store"
	"github.com/emirfredy/ynab-syncher-sub000/internal/ynab"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reached through getter methods so nothing can be
// rewired after initialization.
type Container struct {
	logger       logging.Logger
	config       *config.Config
	transactions *store.TransactionStore
	categories   *store.CategoryStore
	mappings     *store.MappingStore
	client       ynab.Client
	service      *service.SyncService
}

// NewContainer creates and wires all application dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	transactions := store.NewTransactionStore()
	categories := store.NewCategoryStore(cfg.Data.CategoriesFile, logger)
	mappings := store.NewMappingStore(cfg.Data.MappingsFile, logger)
	client := ynab.NewHTTPClient(cfg.Ynab.BaseURL, cfg.Ynab.APIToken, cfg.Ynab.BudgetID, logger)

	return &Container{
		logger:       logger,
		config:       cfg,
		transactions: transactions,
		categories:   categories,
		mappings:     mappings,
		client:       client,
		service:      service.NewSyncService(transactions, categories, mappings, client, logger),
	}, nil
}

// Logger returns the application logger
func (c *Container) Logger() logging.Logger {
	return c.logger
}

// Config returns the application configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Service returns the sync service
func (c *Container) Service() *service.SyncService {
	return c.service
}

// Transactions returns the bank-transaction store
func (c *Container) Transactions() *store.TransactionStore {
	return c.transactions
}

// Client returns the budget-service client
func (c *Container) Client() ynab.Client {
	return c.client
}
