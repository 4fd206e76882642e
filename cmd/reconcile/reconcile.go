// Package reconcile handles the reconciliation command
package reconcile

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/emirfredy/ynab-syncher-sub000/cmd/root"
	"github.com/emirfredy/ynab-syncher-sub000/internal/common"
	"github.com/emirfredy/ynab-syncher-sub000/internal/importer"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// Cmd represents the reconcile command
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare imported bank transactions against the budget",
	Long: `Reconcile imports a raw bank CSV export and partitions its
transactions into those already present in the YNAB budget and those
missing from it, under a strict or range date-tolerance strategy.`,
	Run: reconcileFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Input, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&root.Output, "output", "o", "", "Optional CSV report file")
	Cmd.Flags().StringVarP(&root.Account, "account", "a", "", "Bank account id the rows belong to")
	Cmd.Flags().StringVarP(&root.From, "from", "f", "", "Start of the date range (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&root.To, "to", "t", "", "End of the date range (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&root.Strategy, "strategy", "s", "", "Date tolerance: 'strict' or 'range' (default from config)")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("account")
	_ = Cmd.MarkFlagRequired("from")
	_ = Cmd.MarkFlagRequired("to")
}

// Run imports the input file and performs the reconciliation
func Run(ctx context.Context) (models.ReconciliationResult, error) {
	rows, err := common.ReadRawRows(root.Input)
	if err != nil {
		return models.ReconciliationResult{}, err
	}

	from, to, strategy, err := parseWindow()
	if err != nil {
		return models.ReconciliationResult{}, err
	}

	c := root.Wire()
	if _, err := c.Service().ImportTransactions(root.Account, rows); err != nil {
		return models.ReconciliationResult{}, err
	}

	return c.Service().Reconcile(ctx, root.Account, from, to, strategy)
}

func parseWindow() (time.Time, time.Time, models.ReconciliationStrategy, error) {
	from, err := time.Parse(importer.DateLayout, root.From)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	to, err := time.Parse(importer.DateLayout, root.To)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}

	name := root.Strategy
	if name == "" {
		name = root.Cfg.Reconciliation.Strategy
	}
	strategy, err := models.ParseReconciliationStrategy(name)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	return from, to, strategy, nil
}

func reconcileFunc(cmd *cobra.Command, args []string) {
	result, err := Run(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Reconciliation failed: %v", err)
	}

	summary := result.Summary
	root.Log.Infof("Reconciled account %s with strategy '%s': %d bank / %d budget, %d matched, %d missing",
		summary.AccountID, summary.Strategy,
		summary.TotalBankTransactions, summary.TotalBudgetTransactions,
		summary.MatchedCount, summary.MissingCount)
	if summary.IsFullyReconciled() {
		root.Log.Info("Account is fully reconciled")
	}

	if root.Output != "" {
		if err := common.WriteReconciliationReport(result, root.Output); err != nil {
			root.Log.Fatalf("Error writing report: %v", err)
		}
	}
}
