// Package syncmissing handles the sync command
package syncmissing

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/emirfredy/ynab-syncher-sub000/cmd/root"
	"github.com/emirfredy/ynab-syncher-sub000/internal/common"
	"github.com/emirfredy/ynab-syncher-sub000/internal/importer"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// Cmd represents the sync command
var Cmd = &cobra.Command{
	Use:   "sync",
	Short: "Push bank transactions missing from the budget into YNAB",
	Long: `Sync imports a raw bank CSV export, reconciles it against the YNAB
budget for the given account and date range, and creates every missing
transaction in the budget. Failures on individual transactions are reported
without aborting the remainder of the batch.`,
	Run: syncFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Input, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&root.Account, "account", "a", "", "Bank account id the rows belong to")
	Cmd.Flags().StringVarP(&root.Budget, "budget", "b", "", "YNAB budget id (default from config)")
	Cmd.Flags().StringVarP(&root.From, "from", "f", "", "Start of the date range (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&root.To, "to", "t", "", "End of the date range (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&root.Strategy, "strategy", "s", "", "Date tolerance: 'strict' or 'range' (default from config)")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("account")
	_ = Cmd.MarkFlagRequired("from")
	_ = Cmd.MarkFlagRequired("to")
}

func syncFunc(cmd *cobra.Command, args []string) {
	rows, err := common.ReadRawRows(root.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	from, err := parseDate(root.From)
	if err != nil {
		root.Log.Fatalf("Invalid --from date: %v", err)
	}
	to, err := parseDate(root.To)
	if err != nil {
		root.Log.Fatalf("Invalid --to date: %v", err)
	}

	name := root.Strategy
	if name == "" {
		name = root.Cfg.Reconciliation.Strategy
	}
	strategy, err := models.ParseReconciliationStrategy(name)
	if err != nil {
		root.Log.Fatalf("Invalid --strategy: %v", err)
	}

	budgetID := root.Budget
	if budgetID == "" {
		budgetID = root.Cfg.Ynab.BudgetID
	}
	if budgetID == "" {
		root.Log.Fatal("No budget id given: set --budget or ynab.budget_id in the config")
	}

	c := root.Wire()
	if _, err := c.Service().ImportTransactions(root.Account, rows); err != nil {
		root.Log.Fatalf("Import failed: %v", err)
	}

	reconciliation, response, err := c.Service().SyncMissing(cmd.Context(), budgetID, root.Account, from, to, strategy)
	if err != nil {
		root.Log.Fatalf("Sync failed: %v", err)
	}

	summary := reconciliation.Summary
	root.Log.Infof("Reconciled account %s: %d matched, %d missing",
		summary.AccountID, summary.MatchedCount, summary.MissingCount)
	root.Log.Infof("Sync complete: %d processed, %d created, %d failed",
		response.TotalProcessed, response.SuccessfullyCreated, response.Failed)

	for _, result := range response.Results {
		if !result.WasSuccessful {
			root.Log.Warnf("%s on %s for %s: %s",
				result.Description, result.Date.Format(importer.DateLayout),
				result.Amount.StringFixed(2), result.ErrorMessage)
		}
	}
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(importer.DateLayout, value)
}
